// Package fixtures produces real benchmark artifacts: a Groth16 proof of
// a MiMC preimage, its verifying key and its public inputs, exported into
// the fixture format the host loads.
package fixtures

import (
	"path/filepath"
	"sync"

	g16 "github.com/consensys/groth16-agg/groth16"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	frmimc "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"github.com/consensys/gnark/backend/groth16"
	groth16bn254 "github.com/consensys/gnark/backend/groth16/bn254"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/std/hash/mimc"
)

// Circuit proves knowledge of a MiMC preimage of a public hash
type Circuit struct {
	PreImage frontend.Variable
	Hash     frontend.Variable `gnark:",public"`
}

func (c *Circuit) Define(api frontend.API) error {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}
	h.Write(c.PreImage)
	api.AssertIsEqual(c.Hash, h.Sum())
	return nil
}

// Generate compiles and sets up the circuit, proves one assignment, and
// returns the artifacts in the verifier library's types.
func Generate() (*g16.Artifacts, error) {
	var preImage fr.Element
	if _, err := preImage.SetRandom(); err != nil {
		return nil, err
	}

	// Native MiMC of the preimage is the public input
	h := frmimc.NewMiMC()
	b := preImage.Bytes()
	if _, err := h.Write(b[:]); err != nil {
		return nil, err
	}
	var hash fr.Element
	hash.SetBytes(h.Sum(nil))

	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &Circuit{})
	if err != nil {
		return nil, err
	}

	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, err
	}

	witness, err := frontend.NewWitness(&Circuit{PreImage: preImage, Hash: hash}, ecc.BN254.ScalarField())
	if err != nil {
		return nil, err
	}

	proof, err := groth16.Prove(ccs, pk, witness)
	if err != nil {
		return nil, err
	}

	public, err := witness.Public()
	if err != nil {
		return nil, err
	}
	inputs := g16.Inputs(public.Vector().(fr.Vector))

	proofBn := proof.(*groth16bn254.Proof)
	vkBn := vk.(*groth16bn254.VerifyingKey)

	return &g16.Artifacts{
		Proof: &g16.Proof{
			Ar:  proofBn.Ar,
			Bs:  proofBn.Bs,
			Krs: proofBn.Krs,
		},
		VK: &g16.VerifyingKey{
			Alpha: vkBn.G1.Alpha,
			Beta:  vkBn.G2.Beta,
			Gamma: vkBn.G2.Gamma,
			Delta: vkBn.G2.Delta,
			K:     vkBn.G1.K,
		},
		Inputs: inputs,
	}, nil
}

// WriteFiles generates artifacts and writes proof.json, vk.json and
// inputs.json under dir. It returns the three paths in that order.
func WriteFiles(dir string) (proofPath, vkPath, inputsPath string, err error) {
	art, err := Generate()
	if err != nil {
		return "", "", "", err
	}

	proofPath = filepath.Join(dir, "proof.json")
	vkPath = filepath.Join(dir, "vk.json")
	inputsPath = filepath.Join(dir, "inputs.json")

	if err = g16.WriteJSON(proofPath, art.Proof); err != nil {
		return
	}
	if err = g16.WriteJSON(vkPath, art.VK); err != nil {
		return
	}
	err = g16.WriteJSON(inputsPath, art.Inputs)
	return
}

var (
	sampleOnce sync.Once
	sample     *g16.Artifacts
	sampleErr  error
)

// Sample returns artifacts generated once per process. The circuit setup
// and proving take a while, tests share the result.
func Sample() (*g16.Artifacts, error) {
	sampleOnce.Do(func() {
		sample, sampleErr = Generate()
	})
	return sample, sampleErr
}
