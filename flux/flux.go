// Package flux holds the physical flux functions and the numerical fluxes that
// couple the left and right states at a cell interface.
package flux

import "math"

// Flux is a physical flux f(u) and its derivative, the wave speed
type Flux interface {
	F(u float64) float64
	DF(u float64) float64
}

// ConvexFlux is a convex flux with its minimum at SonicPoint, which is what
// the exact Godunov flux needs.
type ConvexFlux interface {
	Flux
	SonicPoint() float64
}

// Burgers is f(u) = u²/2
type Burgers struct{}

func (Burgers) F(u float64) float64  { return 0.5 * u * u }
func (Burgers) DF(u float64) float64 { return u }
func (Burgers) SonicPoint() float64  { return 0 }
func (Burgers) String() string       { return "Burgers" }

// Advection is f(u) = A·u
type Advection struct {
	A float64
}

func (a Advection) F(u float64) float64  { return a.A * u }
func (a Advection) DF(_ float64) float64 { return a.A }

// SonicPoint places the minimum of the linear flux at the far end of the
// line, which turns the Godunov flux into upwinding
func (a Advection) SonicPoint() float64 {
	if a.A >= 0 {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

func (a Advection) String() string { return "Advection" }

// LaxFriedrichs is the local Lax-Friedrichs flux
// ½(f(ul)+f(ur)) - ½·max(|f'(ul)|,|f'(ur)|)·(ur-ul)
func LaxFriedrichs(fl Flux, ul, ur float64) float64 {
	c := math.Max(math.Abs(fl.DF(ul)), math.Abs(fl.DF(ur)))
	return 0.5*(fl.F(ul)+fl.F(ur)) - 0.5*c*(ur-ul)
}

// Godunov is the exact Riemann flux of a convex flux: the minimum of f over
// [ul, ur] when ul <= ur, the maximum over [ur, ul] otherwise.
func Godunov(fl ConvexFlux, ul, ur float64) float64 {
	if ul <= ur {
		us := fl.SonicPoint()
		switch {
		case us < ul:
			return fl.F(ul)
		case us > ur:
			return fl.F(ur)
		default:
			return fl.F(us)
		}
	}
	return math.Max(fl.F(ul), fl.F(ur))
}

// MaxSpeed returns max|f'(u)| over u
func MaxSpeed(fl Flux, u []float64) (c float64) {
	for _, val := range u {
		if s := math.Abs(fl.DF(val)); s > c {
			c = s
		}
	}
	return
}
