package empire

import (
	"errors"
	"fmt"
)

// Sentinel errors returned during intel validation.
var (
	// ErrInvalidSighting is returned for a sighting with an empty planet
	// name or a negative day.
	ErrInvalidSighting = errors.New("empire: invalid bounty hunter sighting")

	// ErrNegativeCountdown is returned when the countdown is negative.
	ErrNegativeCountdown = errors.New("empire: countdown must be non-negative")
)

// Sighting reports bounty hunters on a planet on a given day
// (day 0 is mission start).
type Sighting struct {
	Planet string
	Day    int
}

// Intel is the decoded Empire intelligence: the days left on the
// countdown and every known bounty-hunter sighting.
type Intel struct {
	Countdown int
	Sightings []Sighting
}

// Validate checks the countdown and every sighting, returning the first
// violation as a wrapped sentinel error.
func (in Intel) Validate() error {
	if in.Countdown < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeCountdown, in.Countdown)
	}
	for i, s := range in.Sightings {
		if err := s.validate(); err != nil {
			return fmt.Errorf("sighting %d: %w", i, err)
		}
	}

	return nil
}

func (s Sighting) validate() error {
	if s.Planet == "" {
		return fmt.Errorf("%w: empty planet name", ErrInvalidSighting)
	}
	if s.Day < 0 {
		return fmt.Errorf("%w: day %d on %q", ErrInvalidSighting, s.Day, s.Planet)
	}

	return nil
}

// presence is one dangerous (planet, day) pair.
type presence struct {
	planet string
	day    int
}

// Schedule answers O(1) presence queries over a set of sightings.
// Build it with NewSchedule; it is read-only afterwards.
type Schedule struct {
	set map[presence]struct{}
}

// NewSchedule validates the sightings and builds the presence set.
// Duplicate sightings collapse into a single entry.
//
// Complexity: O(S) time and space for S sightings.
func NewSchedule(sightings []Sighting) (*Schedule, error) {
	set := make(map[presence]struct{}, len(sightings))
	for i, s := range sightings {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("sighting %d: %w", i, err)
		}
		set[presence{planet: s.Planet, day: s.Day}] = struct{}{}
	}

	return &Schedule{set: set}, nil
}

// HasHunters reports whether bounty hunters are on planet on the given day.
func (s *Schedule) HasHunters(planet string, day int) bool {
	_, ok := s.set[presence{planet: planet, day: day}]
	return ok
}

// Len returns the number of distinct (planet, day) presences.
func (s *Schedule) Len() int { return len(s.set) }
