package DG1D

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/fluxlab/flux"
	"github.com/notargets/fluxlab/geometry1D"
	"github.com/notargets/fluxlab/solver"
	"github.com/notargets/fluxlab/utils"
)

// Operator is the modal discontinuous Galerkin residual of degree N with a
// local Lax-Friedrichs flux at the cell interfaces. The state holds K blocks
// of N+1 Legendre coefficients, coefficient 0 of each block is the cell mean.
type Operator struct {
	solver.Hooks[utils.Vector, *geometry1D.Mesh1D]
	N, Np          int
	Flux           flux.Flux
	Rule           *QuadratureRule
	CFL            float64    // Scales the time step, 1 if unset
	ParallelDegree int        // Number of goroutines used to assemble the residual
	V, Vr          *mat.Dense // Modes to quadrature point values and derivatives
	VEdge          *mat.Dense // Modes to values at r = -1 and r = 1
	VCenter        *mat.Dense // Modes to the value at r = 0
}

func NewOperator(N int, fl flux.Flux, quadOrder int) (op *Operator) {
	if N < 0 || N > MaxDegree {
		panic(fmt.Errorf("polynomial order %d out of range [0,%d]", N, MaxDegree))
	}
	rule := NewQuadratureRule(quadOrder)
	op = &Operator{
		N:              N,
		Np:             N + 1,
		Flux:           fl,
		Rule:           rule,
		CFL:            1,
		ParallelDegree: 1,
		V:              Vandermonde1D(N, rule.R),
		Vr:             GradVandermonde1D(N, rule.R),
		VEdge:          Vandermonde1D(N, []float64{-1, 1}),
		VCenter:        Vandermonde1D(N, []float64{0}),
	}
	return
}

func (op *Operator) String() string {
	return fmt.Sprintf("DG(P%d, %v)", op.N, op.Flux)
}

func (op *Operator) IsNil() bool { return op == nil }

// coefficients views the state as a K x Np matrix without copying
func (op *Operator) coefficients(u utils.Vector, m *geometry1D.Mesh1D) (Uc *mat.Dense) {
	if u.Len() != m.K*op.Np {
		panic(fmt.Errorf("state length %d does not match %d cells of %d modes", u.Len(), m.K, op.Np))
	}
	return mat.NewDense(m.K, op.Np, u.DataP)
}

// GetDT is dx/((2N+1)·max|f'(u)|) with the speed taken at the cell centers.
// For N > 2 dx is replaced by dx^((N+1)/3) to keep the temporal error of the
// third order integrator below the spatial one.
func (op *Operator) GetDT(u utils.Vector, m *geometry1D.Mesh1D, _ float64) (dt float64) {
	var (
		Uc      = op.coefficients(u, m)
		center  mat.Dense
		dfMax   float64
		dx      = m.Dx
		cfl     = op.CFL
		coeffDG = float64(2*op.N + 1)
	)
	center.Mul(Uc, op.VCenter.T())
	for k := 0; k < m.K; k++ {
		dfMax = math.Max(dfMax, math.Abs(op.Flux.DF(center.At(k, 0))))
	}
	if op.N > 2 {
		dx = math.Pow(dx, float64(op.N+1)/3.)
	}
	if cfl <= 0 {
		cfl = 1
	}
	dt = cfl * dx / (coeffDG * dfMax)
	return
}

// OpL assembles the weak form residual of every mode j of every cell,
//
//	L_j = (2j+1)/dx (Σ_g w_g f(u(ξ_g)) P_j'(ξ_g) - f̂_r P_j(1) + f̂_l P_j(-1))
func (op *Operator) OpL(u utils.Vector, m *geometry1D.Mesh1D, _ float64) (rhs utils.Vector) {
	var (
		Uc    = op.coefficients(u, m)
		K, Np = m.K, op.Np
		Ue    = mat.NewDense(K, 2, nil) // Values at faces 0 and 1
		pm    = utils.NewPartitionMap(op.ParallelDegree, K)
		W     = op.Rule.W
		fl    = op.Flux
	)
	rhs = utils.NewVector(K * Np)
	L := mat.NewDense(K, Np, rhs.DataP)
	// Edge values first, the interface fluxes need the neighbors'
	pm.ParallelRange(func(kMin, kMax int) {
		Ue.Slice(kMin, kMax, 0, 2).(*mat.Dense).Mul(Uc.Slice(kMin, kMax, 0, Np), op.VEdge.T())
	})
	pm.ParallelRange(func(kMin, kMax int) {
		var (
			Fq mat.Dense
		)
		Fq.Mul(Uc.Slice(kMin, kMax, 0, Np), op.V.T())
		Fq.Apply(func(_, g int, v float64) float64 {
			return W[g] * fl.F(v)
		}, &Fq)
		Lb := L.Slice(kMin, kMax, 0, Np).(*mat.Dense)
		Lb.Mul(&Fq, op.Vr)
		for k := kMin; k < kMax; k++ {
			kL, kR := m.EToE[k][0], m.EToE[k][1]
			fL, fR := m.EToF[k][0], m.EToF[k][1]
			fHatL := flux.LaxFriedrichs(fl, Ue.At(kL, fL), Ue.At(k, 0))
			fHatR := flux.LaxFriedrichs(fl, Ue.At(k, 1), Ue.At(kR, fR))
			sign := 1.
			for j := 0; j < Np; j++ {
				// P_j(1) = 1, P_j(-1) = (-1)^j
				Lb.Set(k-kMin, j, float64(2*j+1)/m.Dx*(Lb.At(k-kMin, j)-fHatR+sign*fHatL))
				sign = -sign
			}
		}
	})
	return
}

// LimitedOperator applies the TVB limiter after every Runge-Kutta stage
type LimitedOperator struct {
	*Operator
	Limiter TVBLimiter
}

func NewLimitedOperator(N int, fl flux.Flux, quadOrder int, M float64) *LimitedOperator {
	return &LimitedOperator{
		Operator: NewOperator(N, fl, quadOrder),
		Limiter:  TVBLimiter{M: M},
	}
}

func (op *LimitedOperator) String() string {
	return fmt.Sprintf("DG-TVB(P%d, M=%v, %v)", op.N, op.Limiter.M, op.Flux)
}

func (op *LimitedOperator) IsNil() bool { return op == nil || op.Operator == nil }

func (op *LimitedOperator) PostProcessStage(u utils.Vector, m *geometry1D.Mesh1D, _ float64) utils.Vector {
	uLim, _ := op.Limiter.Limit(u, m, op.N)
	return uLim
}
