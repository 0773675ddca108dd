package groth16_test

import (
	"testing"

	"github.com/consensys/groth16-agg/common"
	"github.com/consensys/groth16-agg/fixtures"
	"github.com/consensys/groth16-agg/groth16"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *groth16.Artifacts {
	art, err := fixtures.Sample()
	require.NoError(t, err)
	return art
}

func TestVerify(t *testing.T) {
	art := sample(t)
	assert.NoError(t, groth16.Verify(art.VK, art.Proof, art.Inputs))
}

func TestVerifyTamperedInput(t *testing.T) {
	art := sample(t)

	tampered := make(groth16.Inputs, len(art.Inputs))
	copy(tampered, art.Inputs)
	var one fr.Element
	one.SetOne()
	tampered[0].Add(&tampered[0], &one)

	assert.Error(t, groth16.Verify(art.VK, art.Proof, tampered))
}

func TestVerifyTamperedProof(t *testing.T) {
	art := sample(t)

	// Negating Ar keeps the point valid but breaks the pairing equation
	tampered := *art.Proof
	tampered.Ar.Neg(&tampered.Ar)

	assert.Error(t, groth16.Verify(art.VK, &tampered, art.Inputs))
}

func TestVerifyTamperedVK(t *testing.T) {
	art := sample(t)

	// Negated points stay on the curve, only the pairing equation breaks
	tampered := *art.VK
	tampered.Alpha.Neg(&tampered.Alpha)
	assert.Error(t, groth16.Verify(&tampered, art.Proof, art.Inputs))

	tampered = *art.VK
	tampered.K = append([]curve.G1Affine{}, art.VK.K...)
	tampered.K[1].Neg(&tampered.K[1])
	assert.Error(t, groth16.Verify(&tampered, art.Proof, art.Inputs))
}

func TestVerifyInputSizeMismatch(t *testing.T) {
	art := sample(t)

	tooMany := append(append(groth16.Inputs{}, art.Inputs...), fr.Element{})
	assert.Error(t, groth16.Verify(art.VK, art.Proof, tooMany))
	assert.Error(t, groth16.Verify(art.VK, art.Proof, nil))
}

func TestBatchVerify(t *testing.T) {
	art := sample(t)

	assert.NoError(t, groth16.BatchVerify(art.VK, art.Proof, art.Inputs, 1))
	assert.NoError(t, groth16.BatchVerify(art.VK, art.Proof, art.Inputs, 3))
	assert.Error(t, groth16.BatchVerify(art.VK, art.Proof, art.Inputs, 0))
	assert.Error(t, groth16.BatchVerify(art.VK, art.Proof, art.Inputs, -4))
}

func TestParallelBatchVerify(t *testing.T) {
	art := sample(t)

	assert.NoError(t, groth16.ParallelBatchVerify(art.VK, art.Proof, art.Inputs, 8))
	assert.Error(t, groth16.ParallelBatchVerify(art.VK, art.Proof, art.Inputs, 0))

	// Parallel and sequential must agree on failure
	tampered := *art.Proof
	tampered.Ar.Neg(&tampered.Ar)
	assert.Error(t, groth16.ParallelBatchVerify(art.VK, &tampered, art.Inputs, 8))
}

func TestProofID(t *testing.T) {
	art := sample(t)

	id1, err := groth16.ProofID(art.Proof)
	require.NoError(t, err)
	id2, err := groth16.ProofID(art.Proof)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	tampered := *art.Proof
	tampered.Ar.Neg(&tampered.Ar)
	id3, err := groth16.ProofID(&tampered)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id3)

	hexID, err := groth16.ProofIDHex(art.Proof)
	require.NoError(t, err)
	assert.Len(t, hexID, 64)
}

func BenchmarkVerify(b *testing.B) {
	art, err := fixtures.Sample()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	common.ProfileTrace(b, false, false, func() {
		for i := 0; i < b.N; i++ {
			_ = groth16.Verify(art.VK, art.Proof, art.Inputs)
		}
	})
}
