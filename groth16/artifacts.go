package groth16

import "fmt"

// Artifacts is one benchmark workload: a proof, its verifying key and its
// public inputs.
type Artifacts struct {
	VK     *VerifyingKey
	Proof  *Proof
	Inputs Inputs
}

// LoadArtifacts reads the three fixture files
func LoadArtifacts(proofPath, vkPath, inputsPath string) (*Artifacts, error) {
	proof, err := LoadProof(proofPath)
	if err != nil {
		return nil, fmt.Errorf("loading proof: %v", err)
	}
	vk, err := LoadVerifyingKey(vkPath)
	if err != nil {
		return nil, fmt.Errorf("loading verifying key: %v", err)
	}
	inputs, err := LoadInputs(inputsPath)
	if err != nil {
		return nil, fmt.Errorf("loading inputs: %v", err)
	}
	return &Artifacts{VK: vk, Proof: proof, Inputs: inputs}, nil
}
