package FV1D

import (
	"fmt"
	"math"

	"github.com/notargets/fluxlab/flux"
	"github.com/notargets/fluxlab/geometry1D"
	"github.com/notargets/fluxlab/solver"
	"github.com/notargets/fluxlab/utils"
)

type hooks = solver.Hooks[utils.Vector, *geometry1D.Mesh1D]

// GodunovOperator is the first order finite volume scheme with the exact
// Riemann flux, meant for explicit Euler stepping
type GodunovOperator struct {
	hooks
	Flux flux.ConvexFlux
	CFL  float64 // 0.5 if unset
}

func NewGodunovOperator(fl flux.ConvexFlux) *GodunovOperator {
	return &GodunovOperator{Flux: fl, CFL: 0.5}
}

func (op *GodunovOperator) String() string { return fmt.Sprintf("Godunov(%v)", op.Flux) }

func (op *GodunovOperator) IsNil() bool { return op == nil }

func (op *GodunovOperator) GetDT(u utils.Vector, m *geometry1D.Mesh1D, _ float64) float64 {
	cfl := op.CFL
	if cfl <= 0 {
		cfl = 0.5
	}
	return cfl * m.Dx / flux.MaxSpeed(op.Flux, u.DataP)
}

func (op *GodunovOperator) OpL(u utils.Vector, m *geometry1D.Mesh1D, _ float64) (rhs utils.Vector) {
	var (
		n = checkLen(u, m)
		U = u.DataP
	)
	rhs = utils.NewVector(n)
	for i := 0; i < n; i++ {
		idx := utils.NewPeriodicIndex(n, i)
		fHatL := flux.Godunov(op.Flux, U[idx.L()], U[idx.C()])
		fHatR := flux.Godunov(op.Flux, U[idx.C()], U[idx.R()])
		rhs.DataP[i] = (fHatL - fHatR) / m.Dx
	}
	return
}

// WENO5Operator is the finite volume scheme on cell averages, WENO5 edge
// values coupled by the local Lax-Friedrichs flux
type WENO5Operator struct {
	hooks
	Flux           flux.Flux
	CFL            float64 // 1 if unset
	ParallelDegree int
}

func NewWENO5Operator(fl flux.Flux) *WENO5Operator {
	return &WENO5Operator{Flux: fl, CFL: 1, ParallelDegree: 1}
}

func (op *WENO5Operator) String() string { return fmt.Sprintf("FV-WENO5(%v)", op.Flux) }

func (op *WENO5Operator) IsNil() bool { return op == nil }

// GetDT is dx^(5/3)/(2·max|f'(u)|), small enough for the third order
// integrator to keep up with the fifth order reconstruction
func (op *WENO5Operator) GetDT(u utils.Vector, m *geometry1D.Mesh1D, _ float64) float64 {
	return wenoDT(op.CFL, op.Flux, u, m)
}

func (op *WENO5Operator) OpL(u utils.Vector, m *geometry1D.Mesh1D, _ float64) (rhs utils.Vector) {
	var (
		n      = checkLen(u, m)
		ul, ur = WENO5(u.DataP, op.ParallelDegree)
	)
	rhs = utils.NewVector(n)
	for i := 0; i < n; i++ {
		idx := utils.NewPeriodicIndex(n, i)
		fHatL := flux.LaxFriedrichs(op.Flux, ur[idx.L()], ul[idx.C()])
		fHatR := flux.LaxFriedrichs(op.Flux, ur[idx.C()], ul[idx.R()])
		rhs.DataP[i] = (fHatL - fHatR) / m.Dx
	}
	return
}

// WENO5SplitOperator is the conservative finite difference scheme on point
// values. The flux is split globally, f± = ½(f(u) ± αu) with α = max|f'(u)|,
// f+ is reconstructed upwind from the left and f- from the right.
type WENO5SplitOperator struct {
	hooks
	Flux           flux.Flux
	CFL            float64 // 1 if unset
	ParallelDegree int
}

func NewWENO5SplitOperator(fl flux.Flux) *WENO5SplitOperator {
	return &WENO5SplitOperator{Flux: fl, CFL: 1, ParallelDegree: 1}
}

func (op *WENO5SplitOperator) String() string { return fmt.Sprintf("FD-WENO5(%v)", op.Flux) }

func (op *WENO5SplitOperator) IsNil() bool { return op == nil }

func (op *WENO5SplitOperator) GetDT(u utils.Vector, m *geometry1D.Mesh1D, _ float64) float64 {
	return wenoDT(op.CFL, op.Flux, u, m)
}

func (op *WENO5SplitOperator) OpL(u utils.Vector, m *geometry1D.Mesh1D, _ float64) (rhs utils.Vector) {
	var (
		n            = checkLen(u, m)
		alpha        = flux.MaxSpeed(op.Flux, u.DataP)
		fPlus        = make([]float64, n)
		fMinus       = make([]float64, n)
		fPlusR       []float64
		fMinusL      []float64
		fHatL, fHatR float64
	)
	for i, v := range u.DataP {
		f := op.Flux.F(v)
		fPlus[i] = 0.5 * (f + alpha*v)
		fMinus[i] = 0.5 * (f - alpha*v)
	}
	_, fPlusR = WENO5(fPlus, op.ParallelDegree)
	fMinusL, _ = WENO5(fMinus, op.ParallelDegree)
	rhs = utils.NewVector(n)
	for i := 0; i < n; i++ {
		idx := utils.NewPeriodicIndex(n, i)
		fHatL = fPlusR[idx.L()] + fMinusL[idx.C()]
		fHatR = fPlusR[idx.C()] + fMinusL[idx.R()]
		rhs.DataP[i] = (fHatL - fHatR) / m.Dx
	}
	return
}

func wenoDT(cfl float64, fl flux.Flux, u utils.Vector, m *geometry1D.Mesh1D) float64 {
	if cfl <= 0 {
		cfl = 1
	}
	return cfl * math.Pow(m.Dx, 5./3.) / (2 * flux.MaxSpeed(fl, u.DataP))
}

func checkLen(u utils.Vector, m *geometry1D.Mesh1D) int {
	if u.Len() != m.K {
		panic(fmt.Errorf("state length %d does not match %d cells", u.Len(), m.K))
	}
	return m.K
}
