// Package guest is the program driven by the benchmark host: it decodes a
// batch size, a set of public inputs, one proof and one verifying key from
// its input stream, verifies the proof batch-size times, and commits a
// journal binding what it verified. It is written against plain readers
// and writers so the host can run it in-process or as a subprocess.
package guest

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"github.com/consensys/groth16-agg/groth16"
)

// Input is everything the host hands to the guest, in stream order
type Input struct {
	BatchSize uint32
	Inputs    groth16.Inputs
	Proof     groth16.Proof
	VK        groth16.VerifyingKey
}

func (in *Input) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, binary.LittleEndian, in.BatchSize); err != nil {
		return 0, err
	}
	n := int64(4)
	for _, v := range []io.WriterTo{in.Inputs, &in.Proof, &in.VK} {
		written, err := v.WriteTo(w)
		n += written
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// ReadInput decodes a guest input stream. Field order matches what the
// host writes: batch size, inputs, proof, verifying key.
func ReadInput(r io.Reader) (*Input, error) {
	var in Input
	if err := binary.Read(r, binary.LittleEndian, &in.BatchSize); err != nil {
		return nil, fmt.Errorf("batch size: %v", err)
	}
	if _, err := in.Inputs.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("inputs: %v", err)
	}
	if _, err := in.Proof.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("proof: %v", err)
	}
	if _, err := in.VK.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("verifying key: %v", err)
	}
	return &in, nil
}

// Run verifies the proof BatchSize times and returns the journal. The
// batch is a simulation of aggregating BatchSize identical proofs, so
// every iteration runs the full check.
func Run(in *Input) (*Journal, error) {
	if in.BatchSize < 1 {
		return nil, fmt.Errorf("invalid batch size %d", in.BatchSize)
	}
	for i := uint32(0); i < in.BatchSize; i++ {
		if err := groth16.Verify(&in.VK, &in.Proof, in.Inputs); err != nil {
			return nil, fmt.Errorf("iteration %d: %v", i, err)
		}
	}
	return NewJournal(in)
}

// Exec is the guest entrypoint: decode the input stream, run the batch,
// commit the journal as JSON on the output stream.
func Exec(r io.Reader, w io.Writer) error {
	in, err := ReadInput(r)
	if err != nil {
		return err
	}
	journal, err := Run(in)
	if err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(journal)
}
