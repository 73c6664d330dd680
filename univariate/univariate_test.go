package univariate

import "math"

// quadratic is a·x² + b·x + c together with its first two derivatives
type quadratic struct {
	a float64
	b float64
	c float64
}

func (q quadratic) F(x float64) float64 {
	return q.a*x*x + q.b*x + q.c
}

func (q quadratic) J(x float64) float64 {
	return 2*q.a*x + q.b
}

func (q quadratic) H(x float64) float64 {
	return 2 * q.a
}

// doubleRoot has a double root (and its minimum) at x = 1
var doubleRoot = quadratic{a: 1, b: -2, c: 1}

type cubic struct {
	c float64
}

func (q cubic) F(x float64) float64 {
	return x*x*x - q.c
}

func (q cubic) J(x float64) float64 {
	return 3 * x * x
}

func (q cubic) Root() float64 {
	return math.Cbrt(q.c)
}

func arctanDeriv(x float64) float64 {
	return 1 / (1 + x*x)
}

func zero(x float64) float64 {
	return 0
}
