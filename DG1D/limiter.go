package DG1D

import (
	"math"

	"github.com/notargets/fluxlab/geometry1D"
	"github.com/notargets/fluxlab/utils"
)

// TVBLimiter is the TVB corrected minmod limiter acting on the cell edge
// values of a modal solution. Jumps smaller than M·dx² are left alone, M = 0
// limits everywhere.
type TVBLimiter struct {
	M float64
}

// Minmod returns a1 when |a1| < threshold. Otherwise it returns the argument
// of least magnitude when all three share a sign and zero when they don't.
// changed reports whether the result differs from a1.
func Minmod(a1, a2, a3, threshold float64) (r float64, changed bool) {
	if math.Abs(a1) < threshold {
		return a1, false
	}
	switch {
	case a1 > 0 && a2 > 0 && a3 > 0:
		return math.Min(a1, math.Min(a2, a3)), a1 > a2 || a1 > a3
	case a1 < 0 && a2 < 0 && a3 < 0:
		return math.Max(a1, math.Max(a2, a3)), a1 < a2 || a1 < a3
	}
	return 0, a1 != 0
}

// LimitEdges limits the left and right edge values of a cell with mean
// uMean between neighbor means uMeanL and uMeanR.
func (lim TVBLimiter) LimitEdges(ul, ur, uMeanL, uMean, uMeanR, dx float64) (ulNew, urNew float64, changed bool) {
	var (
		threshold  = lim.M * dx * dx
		dR, dL     = uMeanR - uMean, uMean - uMeanL
		tmp1, tmp2 float64
		c1, c2     bool
	)
	tmp1, c1 = Minmod(ur-uMean, dR, dL, threshold)
	tmp2, c2 = Minmod(uMean-ul, dR, dL, threshold)
	return uMean - tmp2, uMean + tmp1, c1 || c2
}

// Recover rebuilds the modal coefficients of a cell from its mean and the
// limited edge values. Modes above 2 are dropped.
func Recover(coeffs []float64, mean, left, right float64) {
	N := len(coeffs) - 1
	switch {
	case N == 0:
		coeffs[0] = mean
	case N == 1:
		coeffs[0] = mean
		coeffs[1] = mean - left
	default:
		coeffs[0] = mean
		coeffs[1] = 0.5 * (right - left)
		coeffs[2] = 0.5*(left+right) - mean
		for j := 3; j <= N; j++ {
			coeffs[j] = 0
		}
	}
}

// Limit returns a limited copy of u and the number of cells that changed.
// Edge values and means are taken from u, so the result does not depend on
// the order in which cells are visited.
func (lim TVBLimiter) Limit(u utils.Vector, m *geometry1D.Mesh1D, N int) (uLim utils.Vector, nLimited int) {
	var (
		K      = NumCells(u, N)
		ul     = EvaluateCells(u, N, -1)
		ur     = EvaluateCells(u, N, 1)
		uMean  = CellMeans(u, N)
		EToE   = m.EToE
		kL, kR int
	)
	uLim = u.Copy()
	for k := 0; k < K; k++ {
		kL, kR = EToE[k][0], EToE[k][1]
		left, right, changed := lim.LimitEdges(ul[k], ur[k], uMean[kL], uMean[k], uMean[kR], m.Dx)
		if !changed {
			continue
		}
		Recover(CellCoefficients(uLim, N, k), uMean[k], left, right)
		nLimited++
	}
	return
}
