package Burgers1D

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrPastBreaking  = errors.New("solution is past the breaking time")
	ErrNoConvergence = errors.New("newton iteration did not converge")
)

// Exact is the smooth solution of u_t + (u²/2)_x = 0 from the initial
// condition u0(x) = A + B·sin(C·x + D). Along characteristics u satisfies the
// implicit relation u = A + B·sin(C·(x - u·t) + D), solved here by Newton
// iteration. It is single valued until the breaking time 1/|B·C|.
type Exact struct {
	A, B, C, D float64
	Tol        float64
	MaxIter    int
}

func NewExact(a, b, c, d, tol float64) Exact {
	return Exact{A: a, B: b, C: c, D: d, Tol: tol, MaxIter: 100}
}

// DefaultExact is u0 = 0.5 + sin(x)
func DefaultExact() Exact {
	return NewExact(0.5, 1, 1, 0, 1.e-10)
}

func (e Exact) Init(x float64) float64 {
	return e.A + e.B*math.Sin(e.C*x+e.D)
}

// BreakingTime is when the first shock forms, +Inf for a constant state
func (e Exact) BreakingTime() float64 {
	bc := math.Abs(e.B * e.C)
	if bc == 0 {
		return math.Inf(1)
	}
	return 1. / bc
}

// Eval solves for u(x, t) without checking the breaking time. The last
// iterate is returned when Newton does not converge.
func (e Exact) Eval(x, t float64) float64 {
	u, _ := e.solve(x, t)
	return u
}

// EvalChecked is Eval restricted to times before the breaking time
func (e Exact) EvalChecked(x, t float64) (u float64, err error) {
	if t >= e.BreakingTime() {
		err = fmt.Errorf("%w: t = %v, breaking at %v", ErrPastBreaking, t, e.BreakingTime())
		return
	}
	return e.solve(x, t)
}

func (e Exact) solve(x, t float64) (u float64, err error) {
	var (
		maxIter = e.MaxIter
		tol     = e.Tol
	)
	if maxIter <= 0 {
		maxIter = 100
	}
	if tol <= 0 {
		tol = 1.e-10
	}
	// Start from the value carried by the mean speed
	u = e.Init(x - e.A*t)
	for i := 0; i < maxIter; i++ {
		phase := e.C*(x-u*t) + e.D
		g := u - e.A - e.B*math.Sin(phase)
		dg := 1 + e.B*e.C*t*math.Cos(phase)
		du := g / dg
		u -= du
		if math.Abs(du) < tol {
			return
		}
	}
	err = fmt.Errorf("%w: x = %v, t = %v", ErrNoConvergence, x, t)
	return
}
