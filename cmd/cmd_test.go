package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fluxlab/convergence"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	addInputFlags(cmd.Flags())
	cmd.Flags().StringP("scheme", "s", "dg", "")
	return cmd
}

func TestParseIntList(t *testing.T) {
	vals, err := parseIntList("10,20, 40")
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 40}, vals)
	_, err = parseIntList("10,twenty")
	assert.Error(t, err)
}

func TestProcessInput(t *testing.T) {
	{
		cmd := newTestCmd()
		ip, err := processInput(cmd)
		require.NoError(t, err)
		assert.Equal(t, "dg", ip.Scheme)
		assert.Equal(t, []int{10, 20, 40, 80, 160, 320, 640}, ip.Resolutions)
	}
	{
		dir := t.TempDir()
		fileName := filepath.Join(dir, "input.yaml")
		require.NoError(t, os.WriteFile(fileName, []byte(`
Title: "From file"
Scheme: fv-weno5
FinalTime: 0.3
`), 0644))
		cmd := newTestCmd()
		require.NoError(t, cmd.Flags().Set("inputConditionsFile", fileName))
		require.NoError(t, cmd.Flags().Set("resolutions", "8,16"))
		require.NoError(t, cmd.Flags().Set("n", "1"))
		ip, err := processInput(cmd)
		require.NoError(t, err)
		assert.Equal(t, "From file", ip.Title)
		assert.Equal(t, "fv-weno5", ip.Scheme)
		assert.Equal(t, 0.3, ip.FinalTime)
		assert.Equal(t, []int{8, 16}, ip.Resolutions)
		assert.Equal(t, 1, ip.PolynomialOrder)
	}
	{
		cmd := newTestCmd()
		require.NoError(t, cmd.Flags().Set("scheme", "nope"))
		_, err := processInput(cmd)
		assert.Error(t, err)
	}
}

func TestRunBatch(t *testing.T) {
	cmd := newTestCmd()
	require.NoError(t, cmd.Flags().Set("resolutions", "10,20"))
	require.NoError(t, cmd.Flags().Set("maxIterations", "1000"))
	ip, err := processInput(cmd)
	require.NoError(t, err)
	dir := t.TempDir()
	studies, err := runBatch(ip, []string{"godunov", "dg"}, dir)
	require.NoError(t, err)
	require.Equal(t, 2, len(studies))
	assert.FileExists(t, filepath.Join(dir, "order_dg.txt"))
	{
		// A scheme that runs out of iterations is skipped
		ip.MaxIterations = 2
		studies, err = runBatch(ip, []string{"godunov"}, "")
		require.NoError(t, err)
		assert.Equal(t, 0, len(studies))
	}
	{
		fileName := filepath.Join(dir, "study.csv")
		require.NoError(t, writeStudies(fileName, []*convergence.Study{convergence.NewStudy("x", 0)}))
		f, err := os.Open(fileName)
		require.NoError(t, err)
		defer f.Close()
		read, err := convergence.ReadStudyCSV(f)
		require.NoError(t, err)
		assert.Equal(t, 0, len(read))
	}
}
