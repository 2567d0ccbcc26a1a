package geometry1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/fluxlab/utils"
)

func TestPeriodicMesh1D(t *testing.T) {
	{
		m := NewPeriodicMesh1D(-math.Pi, math.Pi, 10)
		assert.InDelta(t, 2*math.Pi/10, m.Dx, 1.e-14)
		assert.Equal(t, 10, len(m.X))
		assert.InDelta(t, -math.Pi+0.5*m.Dx, m.X[0], 1.e-14)
		xl, xr := m.CellBounds(9)
		assert.InDelta(t, math.Pi, xr, 1.e-12)
		assert.InDelta(t, math.Pi-m.Dx, xl, 1.e-12)
	}
	for _, K := range []int{1, 2, 3, 7, 64} {
		m := NewPeriodicMesh1D(0, 1, K)
		for k := 0; k < K; k++ {
			pi := utils.NewPeriodicIndex(K, k)
			assert.Equal(t, [2]int{pi.L(), pi.R()}, m.EToE[k], "K = %d, k = %d", K, k)
			// Left face meets the neighbor's right face and vice versa
			assert.Equal(t, [2]int{1, 0}, m.EToF[k], "K = %d, k = %d", K, k)
		}
	}
	assert.Panics(t, func() { NewPeriodicMesh1D(0, 1, 0) })
	assert.Panics(t, func() { NewPeriodicMesh1D(1, 1, 4) })
}
