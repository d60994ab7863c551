// Package empire holds the intercepted intelligence a mission plans
// against: the Death Star countdown and the bounty-hunter sightings that
// make a (planet, day) pair dangerous.
//
// A Schedule is a set built from the sighting list, so the planner can ask
// "are hunters on Hoth on day 7?" in O(1). Duplicate sightings are
// idempotent; days beyond any plausible countdown are stored untouched —
// they simply never match a reachable state.
//
// Validation happens at construction and follows set semantics afterwards:
// a sighting needs a non-empty planet and a non-negative day
// (ErrInvalidSighting), and a countdown must be non-negative
// (ErrNegativeCountdown). Planet names are not checked against any route
// network here; hunters may well camp on planets the ship can never reach.
package empire
