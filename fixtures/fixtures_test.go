package fixtures_test

import (
	"testing"

	"github.com/consensys/groth16-agg/fixtures"
	"github.com/consensys/groth16-agg/groth16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleVerifies(t *testing.T) {
	art, err := fixtures.Sample()
	require.NoError(t, err)

	// One public input: the MiMC hash
	assert.Len(t, art.Inputs, 1)
	assert.Len(t, art.VK.K, 2)
	assert.NoError(t, groth16.Verify(art.VK, art.Proof, art.Inputs))
}

func TestWriteFilesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	proofPath, vkPath, inputsPath, err := fixtures.WriteFiles(dir)
	require.NoError(t, err)

	art, err := groth16.LoadArtifacts(proofPath, vkPath, inputsPath)
	require.NoError(t, err)
	assert.NoError(t, groth16.Verify(art.VK, art.Proof, art.Inputs))
}
