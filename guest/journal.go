package guest

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/consensys/groth16-agg/groth16"

	"golang.org/x/crypto/sha3"
)

// Journal is the guest's committed output. It binds the exact workload
// (which proof, how many repetitions, which public inputs) so the host can
// reject an answer that does not match what it submitted.
type Journal struct {
	ProofID   string `json:"proof_id"`
	BatchSize uint32 `json:"batch_size"`
	NumInputs int    `json:"num_inputs"`
	Digest    string `json:"digest"`
}

// NewJournal computes the journal for an input, without verifying it
func NewJournal(in *Input) (*Journal, error) {
	id, err := groth16.ProofID(&in.Proof)
	if err != nil {
		return nil, err
	}
	return &Journal{
		ProofID:   hex.EncodeToString(id[:]),
		BatchSize: in.BatchSize,
		NumInputs: len(in.Inputs),
		Digest:    hex.EncodeToString(Digest(id, in.BatchSize, in.Inputs)),
	}, nil
}

// Digest is sha3-256 over (proof id || batch size || public inputs)
func Digest(proofID [32]byte, batchSize uint32, inputs groth16.Inputs) []byte {
	h := sha3.New256()
	h.Write(proofID[:])

	var sizeBuf [4]byte
	binary.LittleEndian.PutUint32(sizeBuf[:], batchSize)
	h.Write(sizeBuf[:])

	for i := range inputs {
		b := inputs[i].Bytes()
		h.Write(b[:])
	}
	return h.Sum(nil)
}
