// Package groth16 implements a standalone Groth16 verifier over BN254,
// along with the fixture and wire formats used by the aggregation
// benchmark harness.
package groth16

import (
	"fmt"
	"sync"

	"github.com/consensys/groth16-agg/common"

	"github.com/consensys/gnark-crypto/ecc"
	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Inputs is the vector of public inputs of a proof
type Inputs []fr.Element

// Proof is a bare Groth16 proof
type Proof struct {
	Ar  curve.G1Affine
	Bs  curve.G2Affine
	Krs curve.G1Affine
}

// VerifyingKey carries the elements of the trusted setup needed by the
// verifier. K holds the public input bases, K[0] being the constant wire.
type VerifyingKey struct {
	Alpha curve.G1Affine
	Beta  curve.G2Affine
	Gamma curve.G2Affine
	Delta curve.G2Affine
	K     []curve.G1Affine
}

// Verify runs the Groth16 pairing-product check
//
//	e(-Ar, Bs) * e(alpha, beta) * e(P, gamma) * e(Krs, delta) == 1
//
// where P = K[0] + \sum_i inputs[i] * K[i+1]
func Verify(vk *VerifyingKey, proof *Proof, inputs Inputs) error {
	kSum, err := publicContribution(vk, inputs)
	if err != nil {
		return err
	}

	var arNeg curve.G1Affine
	arNeg.Neg(&proof.Ar)

	ok, err := curve.PairingCheck(
		[]curve.G1Affine{arNeg, vk.Alpha, *kSum, proof.Krs},
		[]curve.G2Affine{proof.Bs, vk.Beta, vk.Gamma, vk.Delta},
	)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("failed pairing check")
	}
	return nil
}

// publicContribution computes the linear combination of the public inputs
// over the K bases of the verifying key
func publicContribution(vk *VerifyingKey, inputs Inputs) (*curve.G1Affine, error) {
	if len(vk.K) != len(inputs)+1 {
		return nil, fmt.Errorf("invalid input size, got %d, expected %d (public - ONE_WIRE)", len(inputs), len(vk.K)-1)
	}

	var kSum curve.G1Jac
	if len(inputs) > 0 {
		if _, err := kSum.MultiExp(vk.K[1:], inputs, ecc.MultiExpConfig{}); err != nil {
			return nil, err
		}
	}
	kSum.AddMixed(&vk.K[0])

	var kSumAff curve.G1Affine
	kSumAff.FromJacobian(&kSum)
	return &kSumAff, nil
}

// BatchVerify verifies the same proof n times in a row. The repetition is
// deliberate: it is the workload of the naive aggregation benchmark, so no
// work is shared between iterations.
func BatchVerify(vk *VerifyingKey, proof *Proof, inputs Inputs, n int) error {
	if n < 1 {
		return fmt.Errorf("invalid batch size %d", n)
	}
	for i := 0; i < n; i++ {
		if err := Verify(vk, proof, inputs); err != nil {
			return fmt.Errorf("iteration %d: %v", i, err)
		}
	}
	return nil
}

// ParallelBatchVerify is BatchVerify with the iterations split across the
// available CPUs. It agrees with BatchVerify on success and failure.
func ParallelBatchVerify(vk *VerifyingKey, proof *Proof, inputs Inputs, n int, maxCpus ...int) error {
	if n < 1 {
		return fmt.Errorf("invalid batch size %d", n)
	}

	var mu sync.Mutex
	var firstErr error

	common.Parallelize(n, func(start, stop int) {
		for i := start; i < stop; i++ {
			if err := Verify(vk, proof, inputs); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("iteration %d: %v", i, err)
				}
				mu.Unlock()
				return
			}
		}
	}, maxCpus...)

	return firstErr
}
