package univariate

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/btracey/newton/common"
)

// ConvergenceError is returned when the iteration budget runs out before
// |F(x)| drops below the tolerance. It matches common.ErrRootNotFound.
type ConvergenceError struct {
	Loc        float64 // Last iterate
	F          float64 // Value of the target function at Loc
	Iterations int
	Status     common.Status
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("univariate: %v after %d iterations (%v): x=%v, F(x)=%v",
		common.ErrRootNotFound, e.Iterations, e.Status, e.Loc, e.F)
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

func (w *Wrapper) Init(settings *Settings, f, j Func, initLoc float64) error {
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

	var nFunEvals int
	var initF float64
	if settings.InitialValue != nil && !math.IsNaN(*settings.InitialValue) {
		initF = *settings.InitialValue
	} else {
		initF = f(initLoc)
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

func (w *Wrapper) Iterate() (loc, f float64, err error) {
	var nFunEvals int
	loc, f, nFunEvals, err = w.newton.Iterate()
	if err != nil {
		return loc, f, errors.Wrap(err, "error iterating newton")
	}
	if err := w.helper.Iterate(loc, f, nFunEvals); err != nil {
		return loc, f, errors.Wrap(err, "error writing progress")
	}
	return loc, f, nil
}

func (w *Wrapper) Result(status common.Status) *Result {
	return w.helper.Result(status)
}

// FindRoot searches for x such that |f(x)| < settings.FunctionAbsTol by
// Newton iteration from initLoc, using j as the derivative of f. If settings
// is nil, DefaultSettings are used.
//
// Unless AllowUnconverged is set, running out of iterations returns a
// *ConvergenceError describing the last iterate.
func FindRoot(f, j Func, initLoc float64, settings *Settings) (*Result, error) {
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

	var status common.Status
	for {
		status = wrapper.Status()
		if status != common.Continue {
			break
		}

		_, _, err := wrapper.Iterate()
		if err != nil {
			return nil, err
		}
	}
	result := wrapper.Result(status)
	if !status.Converged() && !settings.AllowUnconverged {
		return nil, &ConvergenceError{
			Loc:        result.Loc,
			F:          result.F,
			Iterations: result.Iterations,
			Status:     status,
		}
	}
	return result, nil
}

// Minimize finds a stationary point of f by finding a root of its gradient
// grad, with hess as the derivative of the gradient. The iteration is exactly
// FindRoot(grad, hess, initLoc, settings); the stationary point may be a
// maximum. f is only evaluated once at the result to fill Obj and may be nil.
func Minimize(f, grad, hess Func, initLoc float64, settings *Settings) (*Result, error) {
	result, err := FindRoot(grad, hess, initLoc, settings)
	if err != nil {
		return nil, err
	}
	if f != nil {
		result.Obj = f(result.Loc)
	}
	return result, nil
}
