package DG1D

import (
	"fmt"
	"math"

	"github.com/notargets/fluxlab/convergence"
	"github.com/notargets/fluxlab/geometry1D"
	"github.com/notargets/fluxlab/utils"
)

// Project computes the modal coefficients of f on every cell, the L2
// projection onto P_0..P_N evaluated with the quadrature rule:
//
//	c_j = (2j+1)/2 Σ_g w_g f(x_k + ξ_g dx/2) P_j(ξ_g)
func Project(f func(x float64) float64, m *geometry1D.Mesh1D, N int, rule *QuadratureRule) (u utils.Vector) {
	var (
		Np = N + 1
	)
	u = utils.NewVector(m.K * Np)
	for k, xc := range m.X {
		for j := 0; j < Np; j++ {
			sum := rule.Integrate(func(r float64) float64 {
				return f(xc+0.5*r*m.Dx) * LegendreP(j, r)
			})
			u.DataP[k*Np+j] = sum * float64(2*j+1) / 2.
		}
	}
	return
}

// CellCoefficients returns the N+1 modal coefficients of cell k
func CellCoefficients(u utils.Vector, N, k int) []float64 {
	Np := N + 1
	return u.DataP[k*Np : (k+1)*Np]
}

// NumCells is the number of cells held by a modal state with N+1 modes per cell
func NumCells(u utils.Vector, N int) (K int) {
	Np := N + 1
	if u.Len()%Np != 0 {
		panic(fmt.Errorf("state length %d is not a multiple of %d modes", u.Len(), Np))
	}
	return u.Len() / Np
}

// EvaluateCells evaluates every cell's polynomial at the reference location xi
func EvaluateCells(u utils.Vector, N int, xi float64) (vals []float64) {
	K := NumCells(u, N)
	vals = make([]float64, K)
	for k := 0; k < K; k++ {
		vals[k] = EvalModes(CellCoefficients(u, N, k), xi)
	}
	return
}

// MidpointValues samples the solution at the cell centers
func MidpointValues(u utils.Vector, N int) []float64 {
	return EvaluateCells(u, N, 0)
}

// CellMeans returns coefficient 0 of every cell
func CellMeans(u utils.Vector, N int) (means []float64) {
	K := NumCells(u, N)
	means = make([]float64, K)
	for k := range means {
		means[k] = u.DataP[k*(N+1)]
	}
	return
}

// QuadratureErrors measures u against exact at the quadrature points of every
// cell. Linf is the maximum pointwise difference, L1 and L2 are the
// quadrature approximations of the integral norms over the domain.
func QuadratureErrors(u utils.Vector, N int, exact func(x float64) float64,
	m *geometry1D.Mesh1D, rule *QuadratureRule) (e convergence.Norms) {
	if NumCells(u, N) != m.K {
		panic(fmt.Errorf("state holds %d cells, mesh has %d", NumCells(u, N), m.K))
	}
	for k, xc := range m.X {
		coeffs := CellCoefficients(u, N, k)
		for g, r := range rule.R {
			diff := math.Abs(EvalModes(coeffs, r) - exact(xc+0.5*m.Dx*r))
			e.Linf = math.Max(e.Linf, diff)
			e.L1 += rule.W[g] * diff * 0.5 * m.Dx
			e.L2 += rule.W[g] * diff * diff * 0.5 * m.Dx
		}
	}
	e.L2 = math.Sqrt(e.L2)
	return
}
