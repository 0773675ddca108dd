package host

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"

	"github.com/consensys/groth16-agg/guest"

	"github.com/pkg/errors"
)

// Executor runs a guest input to completion and returns its journal
type Executor interface {
	Name() string
	Execute(in *guest.Input) (*guest.Journal, error)
}

// InProcess runs the guest in the host process, through the same encoded
// streams the subprocess executor uses.
type InProcess struct{}

func (InProcess) Name() string { return "in-process" }

func (InProcess) Execute(in *guest.Input) (*guest.Journal, error) {
	var input bytes.Buffer
	if _, err := in.WriteTo(&input); err != nil {
		return nil, errors.Wrap(err, "encoding guest input")
	}

	var output bytes.Buffer
	if err := guest.Exec(&input, &output); err != nil {
		return nil, err
	}

	var journal guest.Journal
	if err := json.Unmarshal(output.Bytes(), &journal); err != nil {
		return nil, errors.Wrap(err, "decoding journal")
	}
	return &journal, nil
}

// Subprocess runs the guest binary in its own process, the input stream on
// stdin and the journal on stdout. This is the isolation boundary the zkVM
// host/guest hand-off has.
type Subprocess struct {
	GuestBin string
}

func (s Subprocess) Name() string { return "subprocess" }

func (s Subprocess) Execute(in *guest.Input) (*guest.Journal, error) {
	var input bytes.Buffer
	if _, err := in.WriteTo(&input); err != nil {
		return nil, errors.Wrap(err, "encoding guest input")
	}

	var output bytes.Buffer
	cmd := exec.Command(s.GuestBin)
	cmd.Stdin = &input
	cmd.Stdout = &output
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrapf(err, "running guest %s", s.GuestBin)
	}

	var journal guest.Journal
	if err := json.Unmarshal(output.Bytes(), &journal); err != nil {
		return nil, errors.Wrap(err, "decoding journal")
	}
	return &journal, nil
}
