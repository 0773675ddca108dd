package host

import (
	"fmt"
	"time"
)

// Report is the outcome of one benchmark run
type Report struct {
	N         int
	NumInputs int
	ProofID   string
	Executor  string
	Elapsed   time.Duration
	Verified  bool
}

func (r *Report) String() string {
	return fmt.Sprintf("n=%d inputs=%d executor=%s elapsed=%v verified=%v proof=%s",
		r.N, r.NumInputs, r.Executor, r.Elapsed, r.Verified, r.ProofID)
}
