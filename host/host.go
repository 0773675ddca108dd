// Package host drives the aggregation benchmark: it loads the fixture
// artifacts, hands them to a guest executor, times the run, and checks the
// returned journal against the submitted input.
package host

import (
	"log"
	"math"
	"time"

	"github.com/consensys/groth16-agg/common"
	"github.com/consensys/groth16-agg/groth16"
	"github.com/consensys/groth16-agg/guest"

	"github.com/pkg/errors"
)

type Host struct {
	exec Executor
	log  *log.Logger
}

func New(exec Executor) *Host {
	return &Host{
		exec: exec,
		log:  common.NewLogger("host"),
	}
}

// Run executes one batch of n repeated verifications and reports timing.
// The journal returned by the guest must bind the submitted input.
func (h *Host) Run(art *groth16.Artifacts, n int) (*Report, error) {
	// The guest reads the batch size as a u32
	if n < 1 || int64(n) > math.MaxUint32 {
		return nil, errors.Errorf("invalid batch size %d", n)
	}

	in := &guest.Input{
		BatchSize: uint32(n),
		Inputs:    art.Inputs,
		Proof:     *art.Proof,
		VK:        *art.VK,
	}
	expected, err := guest.NewJournal(in)
	if err != nil {
		return nil, errors.Wrap(err, "computing expected journal")
	}

	h.log.Printf("Batch size: %d", n)
	h.log.Printf("Public input length: %d", len(art.Inputs))

	start := time.Now()
	journal, err := h.exec.Execute(in)
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}

	if *journal != *expected {
		return nil, errors.Errorf("journal mismatch: got %+v, expected %+v", journal, expected)
	}

	h.log.Printf("Verification time: %v", elapsed)

	return &Report{
		N:         n,
		NumInputs: len(art.Inputs),
		ProofID:   journal.ProofID,
		Executor:  h.exec.Name(),
		Elapsed:   elapsed,
		Verified:  true,
	}, nil
}
