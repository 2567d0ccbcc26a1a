package solver

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fluxlab/types"
	"github.com/notargets/fluxlab/utils"
)

type decayMesh struct {
	dt float64
}

// decay is du/dt = -u with a fixed step
type decay struct {
	Hooks[utils.Vector, decayMesh]
}

func (decay) GetDT(_ utils.Vector, m decayMesh, _ float64) float64 { return m.dt }

func (decay) OpL(u utils.Vector, _ decayMesh, _ float64) utils.Vector { return u.Scale(-1) }

// boxed is a pointer operator, the way the scheme operators are bound
type boxed struct {
	decay
}

func (b *boxed) IsNil() bool { return b == nil }

// traced records the order and times of every call
type traced struct {
	decay
	calls []string
	times []float64
}

func (tr *traced) PreProcess(u utils.Vector, _ decayMesh, t float64) utils.Vector {
	tr.calls = append(tr.calls, "pre")
	tr.times = append(tr.times, t)
	return u
}

func (tr *traced) PostProcess(u utils.Vector, _ decayMesh, t float64) utils.Vector {
	tr.calls = append(tr.calls, "post")
	tr.times = append(tr.times, t)
	return u
}

func (tr *traced) PostProcessStage(u utils.Vector, _ decayMesh, t float64) utils.Vector {
	tr.calls = append(tr.calls, "stage")
	tr.times = append(tr.times, t)
	return u
}

func runDecay(t *testing.T, method types.IntegratorType, dt float64) float64 {
	it := NewIntegrator[utils.Vector, decayMesh](decay{}, method)
	u, err := it.Run(utils.NewVector(1, []float64{1}), decayMesh{dt: dt}, 0, 1)
	require.NoError(t, err)
	return math.Abs(u.DataP[0] - math.Exp(-1))
}

func TestIntegratorOrder(t *testing.T) {
	{
		e1, e2 := runDecay(t, types.Integrator_Euler, 0.01), runDecay(t, types.Integrator_Euler, 0.005)
		assert.InDelta(t, 1., math.Log2(e1/e2), 0.05)
	}
	{
		e1, e2 := runDecay(t, types.Integrator_SSPRK3, 0.02), runDecay(t, types.Integrator_SSPRK3, 0.01)
		assert.InDelta(t, 3., math.Log2(e1/e2), 0.1)
	}
}

func TestIntegratorLandsOnEndTime(t *testing.T) {
	// 0.3 does not divide 1, the last step must be clamped to 0.1
	tr := &traced{}
	it := NewIntegrator[utils.Vector, decayMesh](tr, types.Integrator_Euler)
	u, err := it.Run(utils.NewVector(1, []float64{1}), decayMesh{dt: 0.3}, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.7*0.7*0.7*0.9, u.DataP[0], 1.e-14)
	assert.Equal(t, []string{"pre", "post", "pre", "post", "pre", "post", "pre", "post"}, tr.calls)
	assert.InDeltaSlice(t, []float64{0, 0, 0.3, 0.3, 0.6, 0.6, 0.9, 0.9}, tr.times, 1.e-14)
}

func TestIntegratorRK3Hooks(t *testing.T) {
	tr := &traced{}
	it := NewIntegrator[utils.Vector, decayMesh](tr, types.Integrator_SSPRK3)
	_, err := it.Run(utils.NewVector(1, []float64{1}), decayMesh{dt: 0.5}, 0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []string{"pre", "stage", "stage", "stage", "post"}, tr.calls)
	assert.InDeltaSlice(t, []float64{0, 0, 0.5, 0.25, 0.5}, tr.times, 1.e-14)
}

func TestIntegratorNoOp(t *testing.T) {
	it := NewIntegrator[utils.Vector, decayMesh](decay{}, types.Integrator_SSPRK3)
	u0 := utils.NewVector(2, []float64{1, 2})
	u, err := it.Run(u0, decayMesh{dt: 0.1}, 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, u0.DataP, u.DataP)
	u, err = it.Run(u0, decayMesh{dt: 0.1}, 2, 1)
	assert.NoError(t, err)
	assert.Equal(t, u0.DataP, u.DataP)
}

func TestIntegratorFailures(t *testing.T) {
	{ // A step that never reaches the end time
		it := NewIntegrator[utils.Vector, decayMesh](decay{}, types.Integrator_Euler)
		it.MaxIterations = 100
		_, err := it.Run(utils.NewVector(1, []float64{1}), decayMesh{dt: 1.e-9}, 0, 1)
		assert.True(t, errors.Is(err, ErrIterationExceeded))
	}
	{ // A zero step
		it := NewIntegrator[utils.Vector, decayMesh](decay{}, types.Integrator_SSPRK3)
		it.MaxIterations = 10
		_, err := it.Run(utils.NewVector(1, []float64{1}), decayMesh{dt: 0}, 0, 1)
		assert.ErrorIs(t, err, ErrIterationExceeded)
	}
	{ // No operator bound, reported at Run
		it := &Integrator[utils.Vector, decayMesh]{}
		_, err := it.Run(utils.NewVector(1), decayMesh{dt: 1}, 0, 1)
		assert.ErrorIs(t, err, ErrOperatorUnset)
	}
	{ // A typed nil pointer bound to the interface
		var b *boxed
		it := NewIntegrator[utils.Vector, decayMesh](b, types.Integrator_SSPRK3)
		assert.NotPanics(t, func() {
			_, err := it.Run(utils.NewVector(1), decayMesh{dt: 1}, 0, 1)
			assert.ErrorIs(t, err, ErrOperatorUnset)
		})
		it = NewIntegrator[utils.Vector, decayMesh](&boxed{}, types.Integrator_Euler)
		_, err := it.Run(utils.NewVector(1, []float64{1}), decayMesh{dt: 0.5}, 0, 1)
		assert.NoError(t, err)
	}
}
