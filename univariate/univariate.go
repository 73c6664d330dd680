package univariate

import (
	"math"

	"github.com/btracey/newton/common"
	"github.com/btracey/newton/write"
)

// Func is a scalar function of one variable, such as a target function or
// one of its derivatives
type Func func(x float64) float64

// Settings is a structure containing settings for univariate
// root finders
type Settings struct {
	*common.CommonSettings
	*common.RootSettings
	InitialValue *float64 // The value of F at the initial location, if already known. Nil or NaN means it is evaluated
}

// DefaultSettings returns the default settings for univariate root finders:
// at most 1000 updates, an absolute tolerance of 1e-10 on |F(x)| and an
// undamped step.
func DefaultSettings() *Settings {
	return &Settings{
		CommonSettings: common.DefaultCommonSettings(),
		RootSettings:   common.DefaultRootSettings(),
	}
}

func (s *Settings) fill() *Settings {
	def := DefaultSettings()
	out := *s
	if out.CommonSettings == nil {
		out.CommonSettings = def.CommonSettings
	}
	if out.RootSettings == nil {
		out.RootSettings = def.RootSettings
	}
	return &out
}

// Helper is a helper struct for root finders. Not intended for use by
// callers of FindRoot, but exported to aid others who are driving the
// iteration by hand
//
// Implementers should call Init() at the beginning of a run and should call
// Status() to check tolerances. At the end of every iteration should call
// Iterate()
type Helper struct {
	*common.Common
	*common.Residual

	record  bool
	history []float64

	locCurr float64
	fCurr   float64
}

// NewHelper creates a new univariate helper and adds itself to the data adders
func NewHelper() *Helper {
	u := &Helper{
		Common:   common.NewCommon(),
		Residual: common.NewResidual(),
	}
	u.AddDataAdder(u)
	return u
}

func (u *Helper) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Loc", Value: u.locCurr})
	v = append(v, &write.Value{Heading: "F", Value: u.fCurr})
	return v
}

func (u *Helper) Init(s *Settings, initLoc, initF float64, nFunEvals int) error {
	u.locCurr = initLoc
	u.fCurr = initF

	u.record = s.Record
	u.history = nil
	if u.record {
		u.history = append(u.history, initLoc)
	}

	u.Residual.Init(s.RootSettings, math.Abs(initF))
	return u.Common.Init(s.CommonSettings, nFunEvals)
}

func (u *Helper) Iterate(loc, f float64, nFunEvals int) error {
	u.locCurr = loc
	u.fCurr = f
	if u.record {
		u.history = append(u.history, loc)
	}
	u.Residual.Iterate(math.Abs(f))
	return u.Common.Iterate(nFunEvals)
}

// Status reports convergence before the iteration budget, so a root found
// by the last allowed update still counts
func (u *Helper) Status() common.Status {
	return common.CheckStatus(u.Residual, u.Common)
}

func (u *Helper) Result(status common.Status) *Result {
	return &Result{
		CommonResult: u.Common.Result(status),
		Loc:          u.locCurr,
		F:            u.fCurr,
		History:      u.history,
		Obj:          math.NaN(),
	}
}

type Result struct {
	*common.CommonResult
	Loc     float64   // Last iterate
	F       float64   // Value of the target function at Loc
	History []float64 // Initial location followed by every iterate, when recorded
	Obj     float64   // Objective at Loc. Only set by Minimize, NaN otherwise
}
