package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeriodicIndex(t *testing.T) {
	pi := NewPeriodicIndex(5, 0)
	assert.Equal(t, 0, pi.C())
	assert.Equal(t, 4, pi.L())
	assert.Equal(t, 3, pi.L(2))
	assert.Equal(t, 1, pi.R())
	assert.Equal(t, 2, pi.R(2))
	pi = NewPeriodicIndex(5, 4)
	assert.Equal(t, 0, pi.R())
	assert.Equal(t, 1, pi.R(2))
	assert.Equal(t, 3, pi.L())
	// Strides larger than the array wrap more than once
	assert.Equal(t, 4, NewPeriodicIndex(5, 1).L(12))
	assert.Equal(t, 3, NewPeriodicIndex(5, 1).R(12))
}

func TestVector(t *testing.T) {
	a := NewVector(3, []float64{1, 2, 3})
	b := NewVector(3, []float64{4, 5, 6})
	c := a.Add(b)
	assert.Equal(t, []float64{5, 7, 9}, c.DataP)
	assert.Equal(t, []float64{1, 2, 3}, a.DataP) // operands untouched
	assert.Equal(t, []float64{3, 3, 3}, b.Subtract(a).DataP)
	assert.Equal(t, []float64{2, 4, 6}, a.Scale(2).DataP)
	assert.Equal(t, []float64{9, 12, 15}, a.AddScaled(2, b).DataP)
	d := a.Copy()
	d.DataP[0] = 100
	assert.Equal(t, 1., a.DataP[0])
	assert.Panics(t, func() { a.Add(NewVector(2)) })
}

func TestLinspace(t *testing.T) {
	x, dx := LinspaceMid(0, 1, 4)
	assert.InDeltaSlice(t, []float64{0.125, 0.375, 0.625, 0.875}, x, 1.e-14)
	assert.InDelta(t, 0.25, dx, 1.e-14)
	x, _ = LinspaceMid(0, 1, 0)
	assert.Nil(t, x)
}
