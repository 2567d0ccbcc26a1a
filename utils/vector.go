package utils

import (
	"gonum.org/v1/gonum/mat"
)

// Vector is the discrete solution state threaded through the time integrator.
// The arithmetic methods never modify the receiver, each returns a new Vector,
// so an "old" and a "new" state can not alias within an integration stage.
// Operands of unequal length panic with mat.ErrShape.
type Vector struct {
	V     *mat.VecDense
	DataP []float64
}

func NewVector(N int, dataO ...[]float64) Vector {
	var (
		data []float64
	)
	if len(dataO) != 0 {
		data = dataO[0]
		if len(data) != N {
			panic(mat.ErrShape)
		}
	} else {
		data = make([]float64, N)
	}
	return Vector{
		V:     mat.NewVecDense(N, data),
		DataP: data,
	}
}

// NewVectorFrom copies data into a new Vector
func NewVectorFrom(data []float64) Vector {
	d := make([]float64, len(data))
	copy(d, data)
	return NewVector(len(d), d)
}

func (v Vector) Len() int { return len(v.DataP) }

func (v Vector) Copy() Vector {
	return NewVectorFrom(v.DataP)
}

func (v Vector) Add(a Vector) Vector {
	r := NewVector(v.Len())
	r.V.AddVec(v.V, a.V)
	return r
}

func (v Vector) Subtract(a Vector) Vector {
	r := NewVector(v.Len())
	r.V.SubVec(v.V, a.V)
	return r
}

// Scale returns alpha*v
func (v Vector) Scale(alpha float64) Vector {
	r := NewVector(v.Len())
	r.V.ScaleVec(alpha, v.V)
	return r
}

// AddScaled returns v + alpha*a
func (v Vector) AddScaled(alpha float64, a Vector) Vector {
	r := NewVector(v.Len())
	r.V.AddScaledVec(v.V, alpha, a.V)
	return r
}
