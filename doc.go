// Package c3po computes the odds that the Millennium Falcon reaches
// Endor before the Death Star countdown expires.
//
// Given the ship's fuel autonomy and the galaxy's hyperspace routes
// (millennium-falcon.json), and the Empire's countdown plus bounty-hunter
// schedule (empire.json), it plans the itinerary that minimizes hunter
// encounters under the fuel and deadline constraints, then reports the
// success probability 0.9^k for k unavoidable encounters — or 0.0 when no
// itinerary can arrive in time.
//
//	droid, err := c3po.New("millennium-falcon.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, err := droid.GiveMeTheOdds("empire.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p) // e.g. 0.81
//
// The work is organized under focused subpackages:
//
//	galaxy/   — validated bidirectional route network
//	empire/   — countdown and bounty-hunter presence set
//	navigate/ — minimum-encounter state-space planner (the core)
//	odds/     — encounter count → success probability
//	mission/  — millennium-falcon.json / empire.json / SQLite route store
//
// This package is the thin facade tying them together, mirroring the
// droid's interface: load the ship once, evaluate any number of
// intercepted Empire plans against it. Evaluations share no mutable
// state and may run concurrently.
package c3po
