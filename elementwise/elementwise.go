// Package elementwise finds roots and stationary points of functions acting
// independently on every element of a fixed-length slice. Element i of the
// result depends only on element i of the input, so no Jacobian matrix is
// formed; the derivative is the slice of per-element derivatives.
package elementwise

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/btracey/newton/common"
	"github.com/btracey/newton/write"
)

// Func evaluates a function elementwise at x and puts the result in place
// in dst. dst and x have the same length.
type Func func(dst, x []float64)

// Settings is a structure containing settings for elementwise
// root finders
type Settings struct {
	*common.CommonSettings
	*common.RootSettings
	InitialValue []float64 // The value of F at the initial location, if already known. Nil or any NaN means it is evaluated
}

// DefaultSettings returns the default settings for elementwise root finders.
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

// residualNorm is the largest |F_i|. A NaN anywhere makes the whole
// residual NaN so that it can never pass the tolerance.
func residualNorm(f []float64) float64 {
	if floats.HasNaN(f) {
		return math.NaN()
	}
	return floats.Norm(f, math.Inf(1))
}

// Helper is a helper struct for root finders. Not intended for use by
// callers of FindRoot, but exported to aid others who are driving the
// iteration by hand
type Helper struct {
	*common.Common
	*common.Residual

	record  bool
	history [][]float64

	locCurr  []float64
	fCurr    []float64
	residual float64
}

// NewHelper creates a new elementwise helper and adds itself to the data adders
func NewHelper() *Helper {
	u := &Helper{
		Common:   common.NewCommon(),
		Residual: common.NewResidual(),
	}
	u.AddDataAdder(u)
	return u
}

// AppendWriteData hands out a copy of the location, since writers may keep
// the value after the next iteration overwrites the helper's buffer
func (u *Helper) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Loc", Value: clone(u.locCurr)})
	v = append(v, &write.Value{Heading: "Residual", Value: u.residual})
	return v
}

func (u *Helper) Init(s *Settings, initLoc, initF []float64, nFunEvals int) error {
	u.locCurr = resize(u.locCurr, len(initLoc))
	copy(u.locCurr, initLoc)
	u.fCurr = resize(u.fCurr, len(initF))
	copy(u.fCurr, initF)
	u.residual = residualNorm(initF)

	u.record = s.Record
	u.history = nil
	if u.record {
		u.history = append(u.history, clone(initLoc))
	}

	u.Residual.Init(s.RootSettings, u.residual)
	return u.Common.Init(s.CommonSettings, nFunEvals)
}

func (u *Helper) Iterate(loc, f []float64, nFunEvals int) error {
	copy(u.locCurr, loc)
	copy(u.fCurr, f)
	u.residual = residualNorm(f)
	if u.record {
		u.history = append(u.history, clone(loc))
	}
	u.Residual.Iterate(u.residual)
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
		Loc:          clone(u.locCurr),
		F:            clone(u.fCurr),
		Residual:     u.residual,
		History:      u.history,
	}
}

type Result struct {
	*common.CommonResult
	Loc      []float64   // Last iterate
	F        []float64   // Value of the target function at Loc
	Residual float64     // Largest |F_i| at Loc
	History  [][]float64 // Initial location followed by every iterate, when recorded
	Obj      []float64   // Objective at Loc. Only set by Minimize
}

func resize(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}
	return s[:n]
}

func clone(s []float64) []float64 {
	c := make([]float64, len(s))
	copy(c, s)
	return c
}
