package Burgers1D

import (
	"fmt"

	"github.com/notargets/fluxlab/DG1D"
	"github.com/notargets/fluxlab/FV1D"
	"github.com/notargets/fluxlab/InputParameters"
	"github.com/notargets/fluxlab/convergence"
	"github.com/notargets/fluxlab/flux"
	"github.com/notargets/fluxlab/geometry1D"
	"github.com/notargets/fluxlab/solver"
	"github.com/notargets/fluxlab/types"
	"github.com/notargets/fluxlab/utils"
)

// Scheme couples a spatial operator with the way its state is initialized,
// measured and sampled
type Scheme struct {
	Type      types.SchemeType
	Method    types.IntegratorType
	N         int // Polynomial order of the modal schemes
	QuadOrder int
	Op        solver.Operator[utils.Vector, *geometry1D.Mesh1D]
	rule      *DG1D.QuadratureRule
}

// SchemeConfig selects and tunes a scheme
type SchemeConfig struct {
	Type           types.SchemeType
	Method         types.IntegratorType
	N              int
	QuadOrder      int
	TVBM           float64
	CFL            float64
	ParallelDegree int
}

func NewScheme(sc SchemeConfig, fl flux.Flux) (s *Scheme, err error) {
	s = &Scheme{
		Type:      sc.Type,
		Method:    sc.Method,
		N:         sc.N,
		QuadOrder: sc.QuadOrder,
		rule:      DG1D.NewQuadratureRule(sc.QuadOrder),
	}
	if sc.Type == types.Scheme_DG_TVB && sc.Method != types.Integrator_SSPRK3 {
		return nil, fmt.Errorf("%w: %v needs the %v integrator, have %v",
			InputParameters.ErrInvalidInput, sc.Type, types.Integrator_SSPRK3, sc.Method)
	}
	switch sc.Type {
	case types.Scheme_FV_Godunov:
		cvx, ok := fl.(flux.ConvexFlux)
		if !ok {
			return nil, fmt.Errorf("%v needs a convex flux, have %v", sc.Type, fl)
		}
		op := FV1D.NewGodunovOperator(cvx)
		if sc.CFL > 0 {
			op.CFL = sc.CFL
		}
		s.Op = op
	case types.Scheme_FV_WENO5:
		op := FV1D.NewWENO5Operator(fl)
		op.CFL, op.ParallelDegree = sc.CFL, sc.ParallelDegree
		s.Op = op
	case types.Scheme_FD_WENO5:
		op := FV1D.NewWENO5SplitOperator(fl)
		op.CFL, op.ParallelDegree = sc.CFL, sc.ParallelDegree
		s.Op = op
	case types.Scheme_DG, types.Scheme_DG_TVB:
		if sc.N < 0 || sc.N > DG1D.MaxDegree {
			return nil, fmt.Errorf("polynomial order %d out of range [0,%d]", sc.N, DG1D.MaxDegree)
		}
		dg := DG1D.NewOperator(sc.N, fl, sc.QuadOrder)
		if sc.CFL > 0 {
			dg.CFL = sc.CFL
		}
		dg.ParallelDegree = max(sc.ParallelDegree, 1)
		s.Op = dg
		if sc.Type == types.Scheme_DG_TVB {
			s.Op = &DG1D.LimitedOperator{Operator: dg, Limiter: DG1D.TVBLimiter{M: sc.TVBM}}
		}
	default:
		return nil, fmt.Errorf("unknown scheme %v", sc.Type)
	}
	return
}

func (s *Scheme) Modal() bool {
	return s.Type == types.Scheme_DG || s.Type == types.Scheme_DG_TVB
}

// Initialize discretizes f: modal projection, Gauss cell averages or point
// values at the cell centers depending on the scheme
func (s *Scheme) Initialize(f func(x float64) float64, m *geometry1D.Mesh1D) utils.Vector {
	switch {
	case s.Modal():
		return DG1D.Project(f, m, s.N, s.rule)
	case s.Type == types.Scheme_FD_WENO5:
		return FV1D.PointValues(f, m)
	default:
		return FV1D.CellAverages(f, m, s.QuadOrder)
	}
}

// Errors measures u against exact in the discrete sense that matches the
// scheme's state
func (s *Scheme) Errors(u utils.Vector, exact func(x float64) float64, m *geometry1D.Mesh1D) (e convergence.Norms, err error) {
	if s.Modal() {
		return DG1D.QuadratureErrors(u, s.N, exact, m, s.rule), nil
	}
	return convergence.ErrorNorms(u.DataP, s.Initialize(exact, m).DataP, m.Dx)
}

// Sample returns one value per cell for plotting: the midpoint value of the
// modal schemes, the state itself otherwise
func (s *Scheme) Sample(u utils.Vector) []float64 {
	if s.Modal() {
		return DG1D.MidpointValues(u, s.N)
	}
	return u.DataP
}

// Reference is what Sample would return for the exact solution: point values
// at the centers for the modal and finite difference schemes, cell averages
// for the finite volume ones
func (s *Scheme) Reference(exact func(x float64) float64, m *geometry1D.Mesh1D) []float64 {
	if s.Modal() {
		return FV1D.PointValues(exact, m).DataP
	}
	return s.Initialize(exact, m).DataP
}

func (s *Scheme) String() string {
	if s.Modal() {
		return fmt.Sprintf("%v P%d, %v", s.Type, s.N, s.Method)
	}
	return fmt.Sprintf("%v, %v", s.Type, s.Method)
}
