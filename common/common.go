package common

import (
	"math"

	"github.com/btracey/newton/write"
)

// RootSettings controls the Newton update and its stopping criterion
type RootSettings struct {
	FunctionAbsTol   float64 // Iteration stops once |F(x)| is below this value
	StepSize         float64 // Multiplier on the Newton step. Values below one damp the iteration
	Record           bool    // Keep every iterate in the result
	AllowUnconverged bool    // Return the last iterate instead of an error when the budget runs out
}

func DefaultRootSettings() *RootSettings {
	return &RootSettings{
		FunctionAbsTol: 1e-10,
		StepSize:       1,
	}
}

// Validate checks that the settings can drive an iteration
func (r *RootSettings) Validate() error {
	if math.IsNaN(r.FunctionAbsTol) || r.FunctionAbsTol < 0 {
		return InvalidArgument("FunctionAbsTol", r.FunctionAbsTol, "must be a non-negative number")
	}
	if r.StepSize == 0 || math.IsNaN(r.StepSize) || math.IsInf(r.StepSize, 0) {
		return InvalidArgument("StepSize", r.StepSize, "must be finite and non-zero")
	}
	return nil
}

// Residual is a helper for root finders tracking the size of F(x)
type Residual struct {
	toler *UniToler
}

func NewResidual() *Residual {
	return &Residual{
		toler: &UniToler{},
	}
}

func (r *Residual) Init(settings *RootSettings, initResidual float64) {
	r.toler.Init(settings.FunctionAbsTol, initResidual)
}

func (r *Residual) Iterate(residual float64) {
	r.toler.Add(residual)
}

func (r *Residual) Status() Status {
	if r.toler.AbsConverged() {
		return FunctionAbsTol
	}
	return Continue
}

// CommonSettings is a set of options available to all root finders
type CommonSettings struct {
	MaximumIterations int // Sets the maximum number of Newton updates that can occur
	*write.WriteSettings
}

// DefaultCommonSettings returns the default settings for the common structure
func DefaultCommonSettings() *CommonSettings {
	return &CommonSettings{
		MaximumIterations: 1000,
		WriteSettings:     write.DefaultWriteSettings(),
	}
}

// Validate checks that the settings can drive an iteration
func (c *CommonSettings) Validate() error {
	if c.MaximumIterations < 0 {
		return InvalidArgument("MaximumIterations", c.MaximumIterations, "outside allowed range [0, Inf)")
	}
	return nil
}

// CommonResult is a list of results from the common structure
type CommonResult struct {
	Iterations          int    // Total number of updates applied
	FunctionEvaluations int    // Total number of evaluations of F and its derivative
	Status              Status // How did the root finder end
}

// Common provides routines for controlling the settings provided by common.
type Common struct {
	iter     int
	funEvals int

	settings *CommonSettings

	*write.Display
}

// NewCommon creates a new Common structure, and adds itself to the display
func NewCommon() *Common {
	c := &Common{
		Display: write.NewDisplay(),
	}
	c.AddDataAdder(c)
	return c
}

// Init initializes all of the values in common at the start of the run.
// nFunEvals is the number of evaluations spent before the first update.
func (c *Common) Init(settings *CommonSettings, nFunEvals int) error {
	c.iter = 0
	c.funEvals = nFunEvals

	c.settings = settings

	ws := c.settings.WriteSettings
	if ws == nil {
		ws = write.DefaultWriteSettings()
	}
	return c.Display.Init(ws)
}

// AppendWriteData adds the components of common to the display structure
func (c *Common) AppendWriteData(d []*write.Value) []*write.Value {
	d = append(d, &write.Value{Heading: "Iter", Value: c.iter})
	d = append(d, &write.Value{Heading: "FnEval", Value: c.funEvals})
	return d
}

// Status checks if the iteration budget has been spent
func (c *Common) Status() Status {
	if c.iter >= c.settings.MaximumIterations {
		return MaximumIterations
	}
	return Continue
}

// Result returns the results from the common structure
func (c *Common) Result(status Status) *CommonResult {
	return &CommonResult{
		Iterations:          c.iter,
		FunctionEvaluations: c.funEvals,
		Status:              status,
	}
}

// Iterate performs an iteration of the common structure, incrementing
// the iteration, appending the number of function evaluations, and
// writing to the writers
func (c *Common) Iterate(nFunEvals int) error {
	c.iter++
	c.funEvals += nFunEvals
	return c.Display.Iterate()
}
