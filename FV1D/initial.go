package FV1D

import (
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/notargets/fluxlab/geometry1D"
	"github.com/notargets/fluxlab/utils"
)

// CellAverages integrates f over every cell with an n point Gauss-Legendre
// rule and divides by the cell width
func CellAverages(f func(x float64) float64, m *geometry1D.Mesh1D, n int) (u utils.Vector) {
	u = utils.NewVector(m.K)
	for k := range u.DataP {
		xl, xr := m.CellBounds(k)
		u.DataP[k] = quad.Fixed(f, xl, xr, n, quad.Legendre{}, 0) / m.Dx
	}
	return
}

// PointValues samples f at the cell centers
func PointValues(f func(x float64) float64, m *geometry1D.Mesh1D) (u utils.Vector) {
	u = utils.NewVector(m.K)
	for k, x := range m.X {
		u.DataP[k] = f(x)
	}
	return
}
