package c3po

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/c3po/navigate"
	"github.com/katalvlaran/c3po/odds"
)

// FormatItinerary renders a planner result as a day-by-day report:
//
//	Day 0: depart Tatooine (fuel 6/6)
//	Day 6: travel to Hoth (fuel 0/6) — bounty hunters!
//	Day 7: refuel on Hoth (fuel 6/6) — bounty hunters!
//	Day 8: travel to Endor (fuel 5/6)
//
//	Encounters: 2
//	Success probability: 81.0%
//
// Infeasible results yield a single fixed line. A feasible result without
// a recorded path (planned without navigate.WithReturnPath) reports only
// the totals.
func FormatItinerary(res *navigate.Result, autonomy int) string {
	if res == nil || !res.Feasible {
		return "No viable itinerary: the countdown expires before any arrival."
	}

	var b strings.Builder
	for _, step := range res.Path {
		fmt.Fprintf(&b, "Day %d: %s (fuel %d/%d)", step.Day, describe(step), step.Fuel, autonomy)
		if step.Encounter {
			b.WriteString(" — bounty hunters!")
		}
		b.WriteByte('\n')
	}
	if len(res.Path) > 0 {
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Encounters: %d\n", res.Encounters)
	fmt.Fprintf(&b, "Success probability: %.1f%%\n", odds.FromResult(res)*100)

	return b.String()
}

func describe(step navigate.Step) string {
	switch step.Action {
	case navigate.Travel:
		return "travel to " + step.Planet
	case navigate.Refuel:
		return "refuel on " + step.Planet
	case navigate.Wait:
		return "wait on " + step.Planet
	default:
		return "depart " + step.Planet
	}
}
