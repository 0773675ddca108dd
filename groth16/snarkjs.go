package groth16

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/vocdoni/go-snark/parsers"
	"github.com/vocdoni/go-snark/verifier"
)

// SnarkJSProof is the proof layout emitted by snarkjs: projective
// 3-coordinate arrays with a trivial z.
type SnarkJSProof struct {
	PiA      []string   `json:"pi_a"`
	PiB      [][]string `json:"pi_b"`
	PiC      []string   `json:"pi_c"`
	Protocol string     `json:"protocol"`
}

// SnarkJSVerificationKey is the verification key layout emitted by snarkjs
type SnarkJSVerificationKey struct {
	Protocol string     `json:"protocol"`
	Curve    string     `json:"curve"`
	NPublic  int        `json:"nPublic"`
	VkAlpha1 []string   `json:"vk_alpha_1"`
	VkBeta2  [][]string `json:"vk_beta_2"`
	VkGamma2 [][]string `json:"vk_gamma_2"`
	VkDelta2 [][]string `json:"vk_delta_2"`
	IC       [][]string `json:"IC"`
}

func (p *Proof) ToSnarkJS() *SnarkJSProof {
	a := g1ToJSON(&p.Ar)
	b := g2ToJSON(&p.Bs)
	c := g1ToJSON(&p.Krs)
	return &SnarkJSProof{
		PiA:      []string{a[0], a[1], "1"},
		PiB:      [][]string{{b[0][0], b[0][1]}, {b[1][0], b[1][1]}, {"1", "0"}},
		PiC:      []string{c[0], c[1], "1"},
		Protocol: "groth16",
	}
}

func (vk *VerifyingKey) ToSnarkJS() *SnarkJSVerificationKey {
	alpha := g1ToJSON(&vk.Alpha)
	beta := g2ToJSON(&vk.Beta)
	gamma := g2ToJSON(&vk.Gamma)
	delta := g2ToJSON(&vk.Delta)

	ic := make([][]string, len(vk.K))
	for i := range vk.K {
		k := g1ToJSON(&vk.K[i])
		ic[i] = []string{k[0], k[1], "1"}
	}

	g2Proj := func(j g2JSON) [][]string {
		return [][]string{{j[0][0], j[0][1]}, {j[1][0], j[1][1]}, {"1", "0"}}
	}

	return &SnarkJSVerificationKey{
		Protocol: "groth16",
		Curve:    "bn128",
		NPublic:  len(vk.K) - 1,
		VkAlpha1: []string{alpha[0], alpha[1], "1"},
		VkBeta2:  g2Proj(beta),
		VkGamma2: g2Proj(gamma),
		VkDelta2: g2Proj(delta),
		IC:       ic,
	}
}

// VerifyGoSnark runs the same verification through the go-snark backend,
// as a differential check against the gnark-crypto pairing.
func VerifyGoSnark(vk *VerifyingKey, proof *Proof, inputs Inputs) error {
	if len(vk.K) != len(inputs)+1 {
		return fmt.Errorf("invalid input size, got %d, expected %d (public - ONE_WIRE)", len(inputs), len(vk.K)-1)
	}

	proofJSON, err := json.Marshal(proof.ToSnarkJS())
	if err != nil {
		return err
	}
	vkJSON, err := json.Marshal(vk.ToSnarkJS())
	if err != nil {
		return err
	}

	sp, err := parsers.ParseProof(proofJSON)
	if err != nil {
		return fmt.Errorf("go-snark proof: %v", err)
	}
	svk, err := parsers.ParseVk(vkJSON)
	if err != nil {
		return fmt.Errorf("go-snark vk: %v", err)
	}

	signals := make([]*big.Int, len(inputs))
	for i := range inputs {
		signals[i] = new(big.Int)
		inputs[i].BigInt(signals[i])
	}

	if !verifier.Verify(svk, sp, signals) {
		return fmt.Errorf("failed pairing check")
	}
	return nil
}
