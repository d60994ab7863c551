// Package navigate defines the planner's options, result types, and
// sentinel errors.
package navigate

import (
	"context"
	"errors"
)

// Sentinel errors returned by Plan for invalid input.
var (
	// ErrNilGalaxy is returned when the route network is nil.
	ErrNilGalaxy = errors.New("navigate: galaxy is nil")

	// ErrNilSchedule is returned when the hunter schedule is nil.
	ErrNilSchedule = errors.New("navigate: schedule is nil")

	// ErrBadAutonomy is returned when the fuel autonomy is not positive.
	ErrBadAutonomy = errors.New("navigate: autonomy must be positive")

	// ErrBadCountdown is returned when the countdown is negative.
	ErrBadCountdown = errors.New("navigate: countdown must be non-negative")
)

// Action identifies how an itinerary step was produced.
type Action uint8

const (
	// Depart marks the initial state at the origin on day 0.
	Depart Action = iota

	// Travel is a hyperspace jump to an adjacent planet.
	Travel

	// Refuel is a one-day stop that resets fuel to full autonomy.
	Refuel

	// Wait is a one-day stop that leaves fuel unchanged.
	Wait
)

// String returns the lower-case action name.
func (a Action) String() string {
	switch a {
	case Depart:
		return "depart"
	case Travel:
		return "travel"
	case Refuel:
		return "refuel"
	case Wait:
		return "wait"
	default:
		return "unknown"
	}
}

// Step is one realized state of the chosen itinerary.
// Encounter reports whether bounty hunters were met on this step's day.
type Step struct {
	Action    Action
	Planet    string
	Day       int
	Fuel      int
	Encounter bool
}

// Result is the outcome of one Plan invocation.
//
// When Feasible is false no itinerary reaches the destination within the
// countdown; Encounters and ArrivalDay are then meaningless and Path is
// nil. When Feasible is true, Encounters is the true minimum over the
// whole reachable state space, and Path holds the canonical itinerary if
// WithReturnPath was given (nil otherwise).
type Result struct {
	Feasible   bool
	Encounters int
	ArrivalDay int
	Path       []Step
}

// Option configures Plan via functional arguments.
type Option func(*Options)

// Options holds the planner's tunable parameters.
type Options struct {
	// Ctx allows cancellation between expansion rounds.
	Ctx context.Context

	// ReturnPath records predecessor links and reconstructs the
	// canonical itinerary into Result.Path.
	ReturnPath bool
}

// DefaultOptions returns the planner defaults: background context and no
// path reconstruction.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context checked once per dequeued state.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReturnPath enables predecessor recording and itinerary
// reconstruction.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}
