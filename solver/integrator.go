package solver

import (
	"errors"
	"fmt"

	"github.com/notargets/fluxlab/types"
)

var (
	ErrIterationExceeded = errors.New("iteration exceeds")
	ErrOperatorUnset     = errors.New("spatial operator is not set")
)

// DefaultMaxIterations bounds the number of steps Run will take before it
// gives up on reaching the end time.
const DefaultMaxIterations = 50_000_000

// Field is the vector space the integrator marches in. Every method returns a
// new value and leaves the receiver untouched.
type Field[S any] interface {
	Add(S) S
	Subtract(S) S
	Scale(alpha float64) S
	AddScaled(alpha float64, a S) S
	Copy() S
}

// Operator is a spatial discretization. GetDT must be strictly positive for
// any admissible state and OpL must not retain or modify its input.
// The three hooks are identity in Hooks, which operators embed.
type Operator[S Field[S], M any] interface {
	GetDT(u S, m M, t float64) float64
	OpL(u S, m M, t float64) S
	PreProcess(u S, m M, t float64) S
	PostProcess(u S, m M, t float64) S
	PostProcessStage(u S, m M, t float64) S
}

// Nillable is implemented by operators held through a pointer so that a
// typed nil bound to the interface is still reported as unset
type Nillable interface {
	IsNil() bool
}

func unset(op any) bool {
	if op == nil {
		return true
	}
	if n, ok := op.(Nillable); ok {
		return n.IsNil()
	}
	return false
}

// Hooks supplies identity pre/post processing for operators that need none
type Hooks[S any, M any] struct{}

func (Hooks[S, M]) PreProcess(u S, _ M, _ float64) S       { return u }
func (Hooks[S, M]) PostProcess(u S, _ M, _ float64) S      { return u }
func (Hooks[S, M]) PostProcessStage(u S, _ M, _ float64) S { return u }

type Integrator[S Field[S], M any] struct {
	Op            Operator[S, M]
	Method        types.IntegratorType
	MaxIterations int
}

func NewIntegrator[S Field[S], M any](op Operator[S, M], method types.IntegratorType) *Integrator[S, M] {
	return &Integrator[S, M]{
		Op:            op,
		Method:        method,
		MaxIterations: DefaultMaxIterations,
	}
}

// Run marches u0 until the local clock, which starts at zero, reaches tend.
// When tend <= t0 u0 is returned as is.
func (it *Integrator[S, M]) Run(u0 S, m M, t0, tend float64) (u S, err error) {
	if unset(it.Op) {
		err = ErrOperatorUnset
		return
	}
	u = u0
	if tend <= t0 {
		return
	}
	var (
		t        float64
		stop     bool
		maxIters = it.MaxIterations
		iter     int
	)
	if maxIters <= 0 {
		maxIters = DefaultMaxIterations
	}
	for iter = 0; iter < maxIters && !stop; iter++ {
		u, t, stop = it.update(u, m, t, tend)
	}
	if !stop {
		err = fmt.Errorf("%w: %d steps, clock at %g of %g", ErrIterationExceeded, iter, t, tend)
	}
	return
}

func (it *Integrator[S, M]) update(u S, m M, t, tend float64) (uNew S, tNew float64, stop bool) {
	dt := it.Op.GetDT(u, m, t)
	if t+dt >= tend && t < tend {
		dt = tend - t
		stop = true
	}
	switch it.Method {
	case types.Integrator_Euler:
		uNew = it.eulerStep(u, m, t, dt)
	default:
		uNew = it.ssprk3Step(u, m, t, dt)
	}
	tNew = t + dt
	return
}

func (it *Integrator[S, M]) eulerStep(u S, m M, t, dt float64) S {
	var (
		op = it.Op
	)
	un := op.PreProcess(u, m, t)
	u1 := un.AddScaled(dt, op.OpL(un, m, t))
	return op.PostProcess(u1, m, t)
}

func (it *Integrator[S, M]) ssprk3Step(u S, m M, t, dt float64) S {
	var (
		op = it.Op
	)
	un := op.PreProcess(u, m, t)

	u1 := un.AddScaled(dt, op.OpL(un, m, t))
	u1 = op.PostProcessStage(u1, m, t)

	// u2 = 3/4 un + 1/4 (u1 + dt L(u1))
	u2 := un.Scale(3. / 4.).AddScaled(1./4., u1.AddScaled(dt, op.OpL(u1, m, t+dt)))
	u2 = op.PostProcessStage(u2, m, t+dt)

	// u3 = 1/3 un + 2/3 (u2 + dt L(u2))
	u3 := un.Scale(1. / 3.).AddScaled(2./3., u2.AddScaled(dt, op.OpL(u2, m, t+0.5*dt)))
	u3 = op.PostProcessStage(u3, m, t+0.5*dt)

	return op.PostProcess(u3, m, t+dt)
}
