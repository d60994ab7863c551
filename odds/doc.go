// Package odds converts a minimum encounter count into a mission success
// probability.
//
// Every bounty-hunter encounter carries an independent 10% capture
// chance, so a mission surviving k encounters succeeds with probability
// 0.9^k. An infeasible mission — no itinerary reaches the destination
// within the countdown — has probability 0.0, which is distinct from the
// zero-encounter feasible case (probability 1.0): no feasible mission
// ever evaluates to 0.0.
package odds
