// Package convergence measures discretization errors against a reference
// solution and turns a refinement series of errors into observed orders of
// accuracy.
package convergence

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/fluxlab/types"
)

var (
	ErrLengthMismatch = errors.New("length mismatch")
	ErrTooFewSamples  = errors.New("need at least two samples")
	ErrBadResolution  = errors.New("resolution must be positive")
)

// Norms holds the three error norms of one solution
type Norms struct {
	L1, L2, Linf float64
}

func (n Norms) Get(kind types.NormType) float64 {
	switch kind {
	case types.Norm_L1:
		return n.L1
	case types.Norm_L2:
		return n.L2
	default:
		return n.Linf
	}
}

// Error is the discrete norm of u1-u2 on a grid of spacing dx: the maximum
// for Linf, Σ|Δ|dx for L1 and sqrt(ΣΔ²dx) for L2.
func Error(u1, u2 []float64, dx float64, kind types.NormType) (e float64, err error) {
	if len(u1) != len(u2) {
		err = fmt.Errorf("error: %w, %d and %d", ErrLengthMismatch, len(u1), len(u2))
		return
	}
	if len(u1) == 0 {
		return
	}
	switch kind {
	case types.Norm_Linf:
		e = floats.Distance(u1, u2, math.Inf(1))
	case types.Norm_L1:
		e = floats.Distance(u1, u2, 1) * dx
	case types.Norm_L2:
		e = floats.Distance(u1, u2, 2) * math.Sqrt(dx)
	default:
		err = fmt.Errorf("unknown norm %v", kind)
	}
	return
}

// ErrorNorms computes all three norms of u1-u2
func ErrorNorms(u1, u2 []float64, dx float64) (n Norms, err error) {
	if n.L1, err = Error(u1, u2, dx, types.Norm_L1); err != nil {
		return
	}
	if n.L2, err = Error(u1, u2, dx, types.Norm_L2); err != nil {
		return
	}
	n.Linf, err = Error(u1, u2, dx, types.Norm_Linf)
	return
}

// Order returns the observed order between successive refinements,
//
//	order[k] = -ln(e[k-1]/e[k]) / ln(N[k-1]/N[k])
//
// with order[0] = 0.
func Order(errs []float64, resolutions []int) (order []float64, err error) {
	if len(errs) != len(resolutions) {
		err = fmt.Errorf("order: %w, %d errors and %d resolutions",
			ErrLengthMismatch, len(errs), len(resolutions))
		return
	}
	if len(errs) <= 1 {
		err = fmt.Errorf("order: %w, have %d", ErrTooFewSamples, len(errs))
		return
	}
	for _, n := range resolutions {
		if n <= 0 {
			err = fmt.Errorf("order: %w, have %d", ErrBadResolution, n)
			return
		}
	}
	order = make([]float64, len(errs))
	for k := 1; k < len(errs); k++ {
		order[k] = -math.Log(errs[k-1]/errs[k]) /
			math.Log(float64(resolutions[k-1])/float64(resolutions[k]))
	}
	return
}
