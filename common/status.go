package common

// Statuser is anything that can decide whether the iteration is over
type Statuser interface {
	Status() Status
}

// CheckStatus asks each statuser in order and returns the first answer
// other than Continue
func CheckStatus(cs ...Statuser) Status {
	for _, s := range cs {
		if status := s.Status(); status != Continue {
			return status
		}
	}
	return Continue
}

// Status says whether a root search should keep going. Continue is zero,
// positive values mean the search converged and negative values mean it
// stopped without converging.
type Status int

const (
	Continue Status = iota
	// FunctionAbsTol means |F(x)| fell below the absolute tolerance
	FunctionAbsTol
)

const (
	_                        = iota
	MaximumIterations Status = -1 * iota
)

func (s Status) String() string {
	switch s {
	case Continue:
		return "Continue"
	case FunctionAbsTol:
		return "FunctionAbsTol"
	case MaximumIterations:
		return "MaximumIterations"
	}
	return "UnregisteredStatus"
}

// Converged reports whether s signals successful convergence
func (s Status) Converged() bool {
	return s > Continue
}
