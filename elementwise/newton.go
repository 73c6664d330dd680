package elementwise

import (
	"gonum.org/v1/gonum/mat"

	"github.com/btracey/newton/common"
)

// Newton applies x ← x - F(x)/J(x) * StepSize to every element at once.
// Division is elementwise and a zero derivative is not guarded against.
type Newton struct {
	StepSize float64

	f Func
	j Func

	loc   *mat.VecDense
	fLoc  *mat.VecDense
	deriv *mat.VecDense
	step  *mat.VecDense
}

func NewNewton(stepSize float64) *Newton {
	return &Newton{
		StepSize: stepSize,
	}
}

func (n *Newton) Init(f, j Func, initLoc, initF []float64) error {
	if n.StepSize == 0 {
		return common.InvalidArgument("StepSize", n.StepSize, "newton step is zero")
	}
	if len(initLoc) == 0 {
		return common.InvalidArgument("initLoc", initLoc, "empty location")
	}
	if len(initF) != len(initLoc) {
		return common.InvalidArgument("initF", len(initF), "length does not match the location")
	}
	dim := len(initLoc)
	n.f = f
	n.j = j
	n.loc = mat.NewVecDense(dim, clone(initLoc))
	n.fLoc = mat.NewVecDense(dim, clone(initF))
	n.deriv = mat.NewVecDense(dim, nil)
	n.step = mat.NewVecDense(dim, nil)
	return nil
}

// Iterate moves to the next location and puts it and the value of F there
// in place in loc and f. Each call evaluates J once and F once.
func (n *Newton) Iterate(loc, f []float64) (nFunEvals int, err error) {
	n.j(n.deriv.RawVector().Data, n.loc.RawVector().Data)

	n.step.DivElemVec(n.fLoc, n.deriv)
	n.loc.AddScaledVec(n.loc, -n.StepSize, n.step)

	n.f(n.fLoc.RawVector().Data, n.loc.RawVector().Data)

	copy(loc, n.loc.RawVector().Data)
	copy(f, n.fLoc.RawVector().Data)
	return 2, nil
}

// Status always continues; stopping is decided by the Helper
func (n *Newton) Status() common.Status { return common.Continue }
