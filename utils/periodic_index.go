package utils

// PeriodicIndex relates cell I of a periodic array of length N to its
// neighbors. It never owns the array it indexes.
type PeriodicIndex struct {
	N, I int
}

func NewPeriodicIndex(N, I int) PeriodicIndex {
	return PeriodicIndex{N: N, I: I}
}

// C is the center index
func (pi PeriodicIndex) C() int { return pi.I }

// L returns the index step cells to the left, step defaults to 1
func (pi PeriodicIndex) L(stepO ...int) int {
	return wrap(pi.I-step(stepO), pi.N)
}

// R returns the index step cells to the right, step defaults to 1
func (pi PeriodicIndex) R(stepO ...int) int {
	return wrap(pi.I+step(stepO), pi.N)
}

func step(stepO []int) int {
	if len(stepO) == 0 {
		return 1
	}
	return stepO[0]
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
