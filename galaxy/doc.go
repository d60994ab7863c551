// Package galaxy models the route network the mission planner runs on:
// planets connected by bidirectional hyperspace lanes with integer
// travel times measured in days.
//
// Overview:
//
//   - A Galaxy is built once from a validated []Route and is read-only
//     afterwards. Every route is symmetric: adding Tatooine→Dagobah (6)
//     also makes Dagobah→Tatooine (6) traversable.
//   - Neighbor sequences preserve route insertion order. The order carries
//     no routing semantics, but it is deterministic, which pins down which
//     of several equally risky itineraries the planner reports.
//   - Connected reports plain reachability, ignoring fuel and deadlines.
//     The planner uses it to reject hopeless origin/destination pairs
//     before exploring the full state space.
//
// Validation:
//
//   - Travel times must be positive integers; endpoints must be non-empty
//     and distinct (no self-loops). Violations surface as ErrInvalidRoute.
//   - Looking up a planet that no route mentions yields ErrUnknownPlanet.
//
// Complexity:
//
//   - New: O(R) for R routes.
//   - Neighbors, HasPlanet: O(1) map lookups.
//   - Connected: O(V + E) breadth-first sweep.
package galaxy
