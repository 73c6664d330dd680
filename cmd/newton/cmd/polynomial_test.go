package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolynomial(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected Polynomial
		err      bool
	}{
		"quadratic":   {input: "1,-2,1", expected: Polynomial{1, -2, 1}},
		"spaces":      {input: " 3 , 0.5", expected: Polynomial{3, 0.5}},
		"constant":    {input: "7", expected: Polynomial{7}},
		"empty":       {input: "  ", err: true},
		"not a float": {input: "1,a", err: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := ParsePolynomial(tc.input)
			if tc.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, p)
		})
	}
}

func TestPolynomialEval(t *testing.T) {
	p := Polynomial{1, -2, 1}
	assert.Equal(t, 9.0, p.Eval(4))
	assert.Equal(t, 0.0, p.Eval(1))
	assert.Equal(t, 7.0, Polynomial{7}.Eval(3))
	assert.Equal(t, 0.0, Polynomial{}.Eval(3))
}

func TestPolynomialDeriv(t *testing.T) {
	p := Polynomial{2, 0, -3, 5}
	assert.Equal(t, Polynomial{6, 0, -3}, p.Deriv())
	assert.Equal(t, Polynomial{12, 0}, p.Deriv().Deriv())
	assert.Equal(t, Polynomial{0}, Polynomial{5}.Deriv())
	assert.Equal(t, Polynomial{0}, Polynomial{}.Deriv())
}
