package guest_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/consensys/groth16-agg/fixtures"
	"github.com/consensys/groth16-agg/guest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInput(t *testing.T, batchSize uint32) *guest.Input {
	art, err := fixtures.Sample()
	require.NoError(t, err)
	return &guest.Input{
		BatchSize: batchSize,
		Inputs:    art.Inputs,
		Proof:     *art.Proof,
		VK:        *art.VK,
	}
}

func TestInputStreamRoundTrip(t *testing.T) {
	in := sampleInput(t, 4)

	var buf bytes.Buffer
	_, err := in.WriteTo(&buf)
	require.NoError(t, err)

	decoded, err := guest.ReadInput(&buf)
	require.NoError(t, err)
	assert.Equal(t, in.BatchSize, decoded.BatchSize)
	assert.Equal(t, in.Inputs, decoded.Inputs)
	assert.Equal(t, in.Proof, decoded.Proof)
	assert.Equal(t, in.VK, decoded.VK)
}

func TestReadInputTruncated(t *testing.T) {
	in := sampleInput(t, 1)

	var buf bytes.Buffer
	_, err := in.WriteTo(&buf)
	require.NoError(t, err)

	_, err = guest.ReadInput(bytes.NewReader(buf.Bytes()[:8]))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	in := sampleInput(t, 3)

	journal, err := guest.Run(in)
	require.NoError(t, err)

	expected, err := guest.NewJournal(in)
	require.NoError(t, err)
	assert.Equal(t, expected, journal)
	assert.Equal(t, uint32(3), journal.BatchSize)
	assert.Equal(t, len(in.Inputs), journal.NumInputs)
}

func TestRunZeroBatch(t *testing.T) {
	in := sampleInput(t, 0)
	_, err := guest.Run(in)
	assert.Error(t, err)
}

func TestRunInvalidProof(t *testing.T) {
	in := sampleInput(t, 2)
	in.Proof.Ar.Neg(&in.Proof.Ar)

	_, err := guest.Run(in)
	assert.Error(t, err)
}

func TestExec(t *testing.T) {
	in := sampleInput(t, 2)

	var input bytes.Buffer
	_, err := in.WriteTo(&input)
	require.NoError(t, err)

	var output bytes.Buffer
	require.NoError(t, guest.Exec(&input, &output))

	var journal guest.Journal
	require.NoError(t, json.Unmarshal(output.Bytes(), &journal))

	expected, err := guest.NewJournal(in)
	require.NoError(t, err)
	assert.Equal(t, *expected, journal)
}

// The journal must change when any bound quantity changes
func TestJournalBindsInput(t *testing.T) {
	base, err := guest.NewJournal(sampleInput(t, 2))
	require.NoError(t, err)

	other, err := guest.NewJournal(sampleInput(t, 3))
	require.NoError(t, err)
	assert.NotEqual(t, base.Digest, other.Digest)

	tampered := sampleInput(t, 2)
	tampered.Proof.Ar.Neg(&tampered.Proof.Ar)
	tamperedJournal, err := guest.NewJournal(tampered)
	require.NoError(t, err)
	assert.NotEqual(t, base.ProofID, tamperedJournal.ProofID)
	assert.NotEqual(t, base.Digest, tamperedJournal.Digest)
}
