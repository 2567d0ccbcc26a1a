package DG1D

import (
	"fmt"
	"strconv"

	"github.com/patrickmn/go-cache"
	"gonum.org/v1/gonum/integrate/quad"
)

// QuadratureRule is an Order point Gauss-Legendre rule on [-1,1]. Rules are
// shared between callers, R and W must be treated as read only.
type QuadratureRule struct {
	Order int
	R, W  []float64
}

var rules = cache.New(cache.NoExpiration, 0)

func NewQuadratureRule(order int) (qr *QuadratureRule) {
	if order < 1 {
		panic(fmt.Errorf("quadrature order must be positive, have %d", order))
	}
	key := strconv.Itoa(order)
	if cached, found := rules.Get(key); found {
		return cached.(*QuadratureRule)
	}
	qr = &QuadratureRule{
		Order: order,
		R:     make([]float64, order),
		W:     make([]float64, order),
	}
	quad.Legendre{}.FixedLocations(qr.R, qr.W, -1, 1)
	rules.Set(key, qr, cache.NoExpiration)
	return
}

// Integrate approximates the integral of f over [-1,1]
func (qr *QuadratureRule) Integrate(f func(r float64) float64) (sum float64) {
	for i, r := range qr.R {
		sum += qr.W[i] * f(r)
	}
	return
}

