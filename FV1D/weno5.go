package FV1D

import (
	"github.com/notargets/fluxlab/utils"
)

const (
	// WENOEpsilon keeps the nonlinear weights finite on flat data
	WENOEpsilon = 1.e-6
)

var (
	// Linear weights of the three candidate stencils {i-2..i}, {i-1..i+1}, {i..i+2}
	dLeft  = [3]float64{3. / 10., 3. / 5., 1. / 10.}
	dRight = [3]float64{1. / 10., 3. / 5., 3. / 10.}
)

// WENO5 is the fifth order Jiang-Shu reconstruction of a periodic sequence of
// cell values. ul[i] and ur[i] are the reconstructed values at the left and
// right edges of cell i. An optional parallel degree splits the cell loop
// over goroutines.
func WENO5(u []float64, ParallelDegreeO ...int) (ul, ur []float64) {
	var (
		n              = len(u)
		ParallelDegree = 1
	)
	if len(ParallelDegreeO) != 0 {
		ParallelDegree = ParallelDegreeO[0]
	}
	ul, ur = make([]float64, n), make([]float64, n)
	if n == 0 {
		return
	}
	utils.NewPartitionMap(ParallelDegree, n).ParallelRange(func(kMin, kMax int) {
		for i := kMin; i < kMax; i++ {
			ul[i], ur[i] = weno5Cell(u, utils.NewPeriodicIndex(n, i))
		}
	})
	return
}

func weno5Cell(u []float64, idx utils.PeriodicIndex) (ul, ur float64) {
	var (
		um2, um1, u0 = u[idx.L(2)], u[idx.L()], u[idx.C()]
		up1, up2     = u[idx.R()], u[idx.R(2)]
		beta         [3]float64
		aL, aR       [3]float64
		sumL, sumR   float64
	)
	// Smoothness indicators
	beta[0] = smoothness(um2-2*um1+u0, um2-4*um1+3*u0)
	beta[1] = smoothness(um1-2*u0+up1, um1-up1)
	beta[2] = smoothness(u0-2*up1+up2, 3*u0-4*up1+up2)
	for r := 0; r < 3; r++ {
		den := (beta[r] + WENOEpsilon) * (beta[r] + WENOEpsilon)
		aL[r] = dLeft[r] / den
		aR[r] = dRight[r] / den
		sumL += aL[r]
		sumR += aR[r]
	}
	// Candidate values at the left edge
	ul0 := -1./6.*um2 + 5./6.*um1 + 1./3.*u0
	ul1 := 1./3.*um1 + 5./6.*u0 - 1./6.*up1
	ul2 := 11./6.*u0 - 7./6.*up1 + 1./3.*up2
	// and at the right edge
	ur0 := 1./3.*um2 - 7./6.*um1 + 11./6.*u0
	ur1 := -1./6.*um1 + 5./6.*u0 + 1./3.*up1
	ur2 := 1./3.*u0 + 5./6.*up1 - 1./6.*up2

	ul = (aL[0]*ul0 + aL[1]*ul1 + aL[2]*ul2) / sumL
	ur = (aR[0]*ur0 + aR[1]*ur1 + aR[2]*ur2) / sumR
	return
}

func smoothness(a, b float64) float64 {
	return 13./12.*a*a + 1./4.*b*b
}
