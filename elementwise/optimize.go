package elementwise

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/btracey/newton/common"
)

// ConvergenceError is returned when the iteration budget runs out before
// every |F_i(x)| drops below the tolerance. It matches
// common.ErrRootNotFound.
type ConvergenceError struct {
	Loc        []float64 // Last iterate
	F          []float64 // Value of the target function at Loc
	Residual   float64   // Largest |F_i| at Loc
	Iterations int
	Status     common.Status
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("elementwise: %v after %d iterations (%v): residual=%v, x=%v",
		common.ErrRootNotFound, e.Iterations, e.Status, e.Residual, e.Loc)
}

func (e *ConvergenceError) Unwrap() error {
	return common.ErrRootNotFound
}

// Wrapper is a convenience wrapper around Newton that allows more
// fine-grained control over the progress of the iteration. See FindRoot
// for example usage
type Wrapper struct {
	newton *Newton
	helper *Helper
}

func NewWrapper(newton *Newton) *Wrapper {
	return &Wrapper{
		newton: newton,
		helper: NewHelper(),
	}
}

func (w *Wrapper) Init(settings *Settings, f, j Func, initLoc []float64) error {
	if settings == nil {
		settings = DefaultSettings()
	}
	settings = settings.fill()
	if err := settings.CommonSettings.Validate(); err != nil {
		return err
	}
	if err := settings.RootSettings.Validate(); err != nil {
		return err
	}
	if len(initLoc) == 0 {
		return common.InvalidArgument("initLoc", initLoc, "empty location")
	}

	var nFunEvals int
	initF := settings.InitialValue
	if initF != nil && len(initF) != len(initLoc) {
		return common.InvalidArgument("InitialValue", len(initF), "length does not match the location")
	}
	// A NaN anywhere means the value is not actually known
	if initF == nil || floats.HasNaN(initF) {
		initF = make([]float64, len(initLoc))
		f(initF, initLoc)
		nFunEvals = 1
	}

	if err := w.newton.Init(f, j, initLoc, initF); err != nil {
		return err
	}
	return w.helper.Init(settings, initLoc, initF, nFunEvals)
}

func (w *Wrapper) Status() common.Status {
	return common.CheckStatus(w.helper, w.newton)
}

// Iterate performs one update, putting the new location and the value of F
// there in place in loc and f
func (w *Wrapper) Iterate(loc, f []float64) error {
	nFunEvals, err := w.newton.Iterate(loc, f)
	if err != nil {
		return errors.Wrap(err, "error iterating newton")
	}
	if err := w.helper.Iterate(loc, f, nFunEvals); err != nil {
		return errors.Wrap(err, "error writing progress")
	}
	return nil
}

func (w *Wrapper) Result(status common.Status) *Result {
	return w.helper.Result(status)
}

// FindRoot searches for x such that every |f_i(x)| < settings.FunctionAbsTol
// by elementwise Newton iteration from initLoc, using j as the elementwise
// derivative of f. initLoc is not modified. If settings is nil,
// DefaultSettings are used.
//
// Unless AllowUnconverged is set, running out of iterations returns a
// *ConvergenceError describing the last iterate.
func FindRoot(f, j Func, initLoc []float64, settings *Settings) (*Result, error) {
	if f == nil {
		return nil, common.InvalidArgument("F", nil, "function is nil")
	}
	if j == nil {
		return nil, common.InvalidArgument("J", nil, "derivative is nil")
	}

	if settings == nil {
		settings = DefaultSettings()
	}
	settings = settings.fill()

	wrapper := NewWrapper(NewNewton(settings.StepSize))

	err := wrapper.Init(settings, f, j, initLoc)
	if err != nil {
		return nil, errors.Wrap(err, "error initializing")
	}
	loc := make([]float64, len(initLoc))
	fLoc := make([]float64, len(initLoc))

	var status common.Status
	for {
		status = wrapper.Status()
		if status != common.Continue {
			break
		}

		if err := wrapper.Iterate(loc, fLoc); err != nil {
			return nil, err
		}
	}
	result := wrapper.Result(status)
	if !status.Converged() && !settings.AllowUnconverged {
		return nil, &ConvergenceError{
			Loc:        result.Loc,
			F:          result.F,
			Residual:   result.Residual,
			Iterations: result.Iterations,
			Status:     status,
		}
	}
	return result, nil
}

// Minimize finds a stationary point of f by finding a root of its
// elementwise gradient grad, with hess as the elementwise second
// derivative. The iteration is exactly FindRoot(grad, hess, initLoc,
// settings). f is only evaluated once at the result to fill Obj and may be
// nil.
func Minimize(f, grad, hess Func, initLoc []float64, settings *Settings) (*Result, error) {
	result, err := FindRoot(grad, hess, initLoc, settings)
	if err != nil {
		return nil, err
	}
	if f != nil {
		result.Obj = make([]float64, len(result.Loc))
		f(result.Obj, result.Loc)
	}
	return result, nil
}
