package convergence

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fluxlab/types"
)

func TestError(t *testing.T) {
	u1 := []float64{1, 2, 3, 4}
	u2 := []float64{1, 1, 5, 4}
	{
		e, err := Error(u1, u2, 0.5, types.Norm_Linf)
		require.NoError(t, err)
		assert.Equal(t, 2., e)
	}
	{
		e, err := Error(u1, u2, 0.5, types.Norm_L1)
		require.NoError(t, err)
		assert.InDelta(t, 1.5, e, 1.e-15)
	}
	{
		e, err := Error(u1, u2, 0.5, types.Norm_L2)
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt(2.5), e, 1.e-15)
	}
	{
		n, err := ErrorNorms(u1, u2, 0.5)
		require.NoError(t, err)
		assert.Equal(t, 2., n.Get(types.Norm_Linf))
		assert.InDelta(t, 1.5, n.Get(types.Norm_L1), 1.e-15)
	}
	{
		_, err := Error(u1, u2[:3], 0.5, types.Norm_L2)
		assert.True(t, errors.Is(err, ErrLengthMismatch))
	}
}

func TestOrder(t *testing.T) {
	{
		// Second order series
		res := []int{10, 20, 40, 80}
		errs := []float64{1, 0.25, 0.0625, 0.015625}
		order, err := Order(errs, res)
		require.NoError(t, err)
		assert.Equal(t, 0., order[0])
		for _, o := range order[1:] {
			assert.InDelta(t, 2., o, 1.e-12)
		}
	}
	{
		order, err := Order([]float64{1, 0.5}, []int{10, 30})
		require.NoError(t, err)
		assert.InDelta(t, math.Log(2)/math.Log(3), order[1], 1.e-14)
	}
	{
		_, err := Order([]float64{1, 2}, []int{10})
		assert.True(t, errors.Is(err, ErrLengthMismatch))
		_, err = Order([]float64{1}, []int{10})
		assert.True(t, errors.Is(err, ErrTooFewSamples))
		_, err = Order([]float64{1, 2}, []int{0, 10})
		assert.True(t, errors.Is(err, ErrBadResolution))
	}
}

func TestStudyTable(t *testing.T) {
	cs := NewStudy("godunov", 0)
	cs.Add(10, Norms{L1: 0.1, L2: 0.2, Linf: 0.4})
	cs.Add(20, Norms{L1: 0.05, L2: 0.1, Linf: 0.2})
	{
		o, err := cs.Orders()
		require.NoError(t, err)
		assert.InDelta(t, 1., o.L1[1], 1.e-12)
		assert.InDelta(t, 1., o.Linf[1], 1.e-12)
	}
	{
		var buf bytes.Buffer
		require.NoError(t, cs.WriteTable(&buf, '&'))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Equal(t, 3, len(lines))
		header := strings.Fields(strings.ReplaceAll(lines[0], "&", " "))
		assert.Equal(t, []string{"n", "error_1", "order", "error_2", "order", "error_inf", "order"}, header)
		row := strings.Fields(strings.ReplaceAll(lines[2], "&", " "))
		assert.Equal(t, []string{"20", "5.00e-02", "1.00", "1.00e-01", "1.00", "2.00e-01", "1.00"}, row)
		row = strings.Fields(strings.ReplaceAll(lines[1], "&", " "))
		assert.Equal(t, "0.00", row[2])
	}
	{
		one := NewStudy("one", 0)
		one.Add(10, Norms{})
		assert.True(t, errors.Is(one.WriteTable(&bytes.Buffer{}, ' '), ErrTooFewSamples))
	}
	{
		dir := t.TempDir()
		fileName := filepath.Join(dir, "table.txt")
		require.NoError(t, cs.WriteTableFile(fileName, ' '))
		b, err := os.ReadFile(fileName)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(b), "error_inf"))
		assert.NoError(t, cs.WriteTableFile("", ' '))
		assert.Error(t, cs.WriteTableFile(filepath.Join(dir, "missing", "table.txt"), ' '))
	}
}

func TestStudyCSV(t *testing.T) {
	a := NewStudy("dg", 2)
	a.Add(10, Norms{L1: 1.5e-3, L2: 2.5e-3, Linf: 1.e-2})
	a.Add(20, Norms{L1: 1.9e-4, L2: 3.1e-4, Linf: 1.3e-3})
	b := NewStudy("dg", 1)
	b.Add(10, Norms{L1: 1.e-2, L2: 2.e-2, Linf: 3.e-2})
	var buf bytes.Buffer
	require.NoError(t, WriteStudyCSV(&buf, a, b))
	studies, err := ReadStudyCSV(&buf)
	require.NoError(t, err)
	require.Equal(t, 2, len(studies))
	assert.Equal(t, a, studies[0])
	assert.Equal(t, b, studies[1])
	{
		_, err = ReadStudyCSV(strings.NewReader("title,order,n,error_1,error_2,error_inf\nx,1,ten,1,1,1\n"))
		assert.Error(t, err)
	}
}

func TestExport(t *testing.T) {
	{
		var buf bytes.Buffer
		require.NoError(t, Export(&buf, ' ', []float64{0, 0.5, 1}, []float64{1, 2}, []float64{3, 4, 5}))
		assert.Equal(t, "0 1 3\n0.5 2 4\n", buf.String())
	}
	{
		var buf bytes.Buffer
		require.NoError(t, Export(&buf, ',', []float64{-1.25}, []float64{2}))
		assert.Equal(t, "-1.25,2\n", buf.String())
	}
	{
		dir := t.TempDir()
		fileName := filepath.Join(dir, "plot.dat")
		require.NoError(t, ExportFile(fileName, ' ', []float64{1}, []float64{2}))
		b, err := os.ReadFile(fileName)
		require.NoError(t, err)
		assert.Equal(t, "1 2\n", string(b))
		assert.NoError(t, ExportFile("", ' ', []float64{1}))
	}
}
