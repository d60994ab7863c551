package odds

import (
	"math"

	"github.com/katalvlaran/c3po/navigate"
)

// EscapeChance is the probability of slipping past one bounty-hunter
// encounter.
const EscapeChance = 0.9

// Success returns the probability of surviving the given number of
// encounters, 0.9^k. Non-positive counts yield 1.0.
func Success(encounters int) float64 {
	if encounters <= 0 {
		return 1.0
	}

	return math.Pow(EscapeChance, float64(encounters))
}

// FromResult maps a planner result to a success probability in [0, 1]:
// 0.0 for a nil or infeasible result, 0.9^k otherwise.
func FromResult(r *navigate.Result) float64 {
	if r == nil || !r.Feasible {
		return 0.0
	}

	return Success(r.Encounters)
}
