package cmd

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Polynomial holds coefficients from the highest degree down to the
// constant term
type Polynomial []float64

// ParsePolynomial reads comma separated coefficients, highest degree first
func ParsePolynomial(s string) (Polynomial, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("no polynomial coefficients given")
	}
	fields := strings.Split(s, ",")
	p := make(Polynomial, len(fields))
	for i, field := range fields {
		c, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "coefficient %d", i)
		}
		p[i] = c
	}
	return p, nil
}

// Eval evaluates the polynomial at x by Horner's rule
func (p Polynomial) Eval(x float64) float64 {
	var v float64
	for _, c := range p {
		v = v*x + c
	}
	return v
}

// Deriv returns the derivative. The derivative of a constant is the zero
// polynomial.
func (p Polynomial) Deriv() Polynomial {
	if len(p) <= 1 {
		return Polynomial{0}
	}
	degree := len(p) - 1
	d := make(Polynomial, degree)
	for i := range d {
		d[i] = float64(degree-i) * p[i]
	}
	return d
}
