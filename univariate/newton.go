package univariate

import (
	"github.com/btracey/newton/common"
)

// Newton applies the update x ← x - F(x)/J(x) * StepSize, one step per call
// to Iterate. A StepSize below one gives damped Newton iteration.
//
// A zero derivative is not guarded against; the resulting Inf or NaN
// propagates into the next iterate.
type Newton struct {
	StepSize float64

	f Func
	j Func

	loc  float64
	fLoc float64
}

func NewNewton(stepSize float64) *Newton {
	return &Newton{
		StepSize: stepSize,
	}
}

func (n *Newton) Init(f, j Func, initLoc, initF float64) error {
	if n.StepSize == 0 {
		return common.InvalidArgument("StepSize", n.StepSize, "newton step is zero")
	}
	n.f = f
	n.j = j
	n.loc = initLoc
	n.fLoc = initF
	return nil
}

// Iterate moves to the next location and returns it together with the value
// of F there. Each call evaluates J once and F once.
func (n *Newton) Iterate() (loc, f float64, nFunEvals int, err error) {
	n.loc -= n.fLoc / n.j(n.loc) * n.StepSize
	n.fLoc = n.f(n.loc)
	return n.loc, n.fLoc, 2, nil
}

// Status always continues; stopping is decided by the Helper
func (n *Newton) Status() common.Status { return common.Continue }
