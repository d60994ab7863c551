package c3po

import (
	"github.com/katalvlaran/c3po/empire"
	"github.com/katalvlaran/c3po/galaxy"
	"github.com/katalvlaran/c3po/mission"
	"github.com/katalvlaran/c3po/navigate"
	"github.com/katalvlaran/c3po/odds"
)

// The mission endpoints are fixed by the briefing.
const (
	Origin      = "Tatooine"
	Destination = "Endor"
)

// C3PO evaluates mission odds against one loaded ship configuration.
// A single instance may evaluate many empire files, concurrently if
// desired; it holds no mutable state after construction.
type C3PO struct {
	galaxy   *galaxy.Galaxy
	autonomy int
}

// New loads a millennium-falcon.json file (inline routes or a SQLite
// route store) and builds the validated route network.
func New(falconPath string) (*C3PO, error) {
	f, err := mission.LoadFalcon(falconPath)
	if err != nil {
		return nil, err
	}

	return FromFalcon(f)
}

// FromFalcon builds a droid from already decoded ship data.
// The origin and destination must exist in the route network.
func FromFalcon(f *mission.Falcon) (*C3PO, error) {
	if f.Autonomy <= 0 {
		return nil, navigate.ErrBadAutonomy
	}
	g, err := f.Galaxy()
	if err != nil {
		return nil, err
	}
	if err = g.Require(Origin, Destination); err != nil {
		return nil, err
	}

	return &C3PO{galaxy: g, autonomy: f.Autonomy}, nil
}

// Autonomy returns the ship's fuel autonomy in days.
func (c *C3PO) Autonomy() int { return c.autonomy }

// GiveMeTheOdds loads an empire.json file and returns the mission success
// probability: 0.9^k for the minimum achievable encounter count k, or 0.0
// when Endor cannot be reached within the countdown.
func (c *C3PO) GiveMeTheOdds(empirePath string) (float64, error) {
	res, err := c.evaluate(empirePath)
	if err != nil {
		return 0, err
	}

	return odds.FromResult(res), nil
}

// Plan is GiveMeTheOdds with the full planner result: the probability
// plus the canonical itinerary for verbose reporting.
func (c *C3PO) Plan(empirePath string) (*navigate.Result, float64, error) {
	res, err := c.evaluate(empirePath, navigate.WithReturnPath())
	if err != nil {
		return nil, 0, err
	}

	return res, odds.FromResult(res), nil
}

func (c *C3PO) evaluate(empirePath string, opts ...navigate.Option) (*navigate.Result, error) {
	intel, err := mission.LoadEmpire(empirePath)
	if err != nil {
		return nil, err
	}
	sched, err := empire.NewSchedule(intel.Sightings)
	if err != nil {
		return nil, err
	}

	return navigate.Plan(c.galaxy, sched, Origin, Destination, c.autonomy, intel.Countdown, opts...)
}
