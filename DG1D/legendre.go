package DG1D

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MaxDegree is the highest Legendre polynomial with a closed form here
const MaxDegree = 6

// LegendreP evaluates the Legendre polynomial P_n at x in [-1,1]
func LegendreP(n int, x float64) float64 {
	x2 := x * x
	switch n {
	case 0:
		return 1
	case 1:
		return x
	case 2:
		return (3*x2 - 1) / 2.
	case 3:
		return (5*x2 - 3) * x / 2.
	case 4:
		return ((35*x2-30)*x2 + 3) / 8.
	case 5:
		return ((63*x2-70)*x2 + 15) * x / 8.
	case 6:
		return (((231*x2-315)*x2+105)*x2 - 5) / 16.
	}
	panic(fmt.Errorf("legendre polynomial degree %d out of range [0,%d]", n, MaxDegree))
}

// GradLegendreP evaluates dP_n/dx at x
func GradLegendreP(n int, x float64) float64 {
	x2 := x * x
	switch n {
	case 0:
		return 0
	case 1:
		return 1
	case 2:
		return 3 * x
	case 3:
		return (15*x2 - 3) / 2.
	case 4:
		return (140*x2 - 60) * x / 8.
	case 5:
		return ((315*x2-210)*x2 + 15) / 8.
	case 6:
		return ((1386*x2-1260)*x2 + 210) * x / 16.
	}
	panic(fmt.Errorf("legendre polynomial degree %d out of range [0,%d]", n, MaxDegree))
}

// EvalModes sums coeffs[j]·P_j(xi) over the modes of one cell
func EvalModes(coeffs []float64, xi float64) (u float64) {
	for j, c := range coeffs {
		u += c * LegendreP(j, xi)
	}
	return
}

// Vandermonde1D is the len(R) x N+1 matrix V[i][j] = P_j(R[i])
func Vandermonde1D(N int, R []float64) (V *mat.Dense) {
	V = mat.NewDense(len(R), N+1, nil)
	for i, r := range R {
		for j := 0; j <= N; j++ {
			V.Set(i, j, LegendreP(j, r))
		}
	}
	return
}

// GradVandermonde1D is the len(R) x N+1 matrix Vr[i][j] = P_j'(R[i])
func GradVandermonde1D(N int, R []float64) (Vr *mat.Dense) {
	Vr = mat.NewDense(len(R), N+1, nil)
	for i, r := range R {
		for j := 0; j <= N; j++ {
			Vr.Set(i, j, GradLegendreP(j, r))
		}
	}
	return
}
