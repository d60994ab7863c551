// Package navigate implements the mission planner: a breadth-first search
// over (planet, day, fuel) states that finds the minimum number of
// bounty-hunter encounters any itinerary can achieve from an origin to a
// destination within a countdown, under a fuel autonomy that bounds
// single-jump travel.
//
// State space and actions:
//
//   - A state is (planet, day, fuel, encounters). The planner starts at
//     (origin, day 0, full tank, 0) and applies three actions:
//     – Travel: jump to an adjacent planet, costing its travel time in
//     both days and fuel; legal only if fuel covers the jump and the
//     arrival day does not pass the countdown.
//     – Refuel: stay one day, tank resets to full autonomy.
//     – Wait: stay one day, tank unchanged.
//   - An encounter is charged against the state an action lands in: one
//     check per completed action, at (planet-after, day-after). A travel
//     leg is checked once, on its arrival day only — not once per day in
//     transit.
//
// Minimality, not speed:
//
//	Reaching the destination early proves nothing about encounters — a
//	slower itinerary that loiters on a safe planet may slip past every
//	hunter. The planner therefore keeps exploring until the whole state
//	space up to the countdown is exhausted, and only then reports the
//	minimum encounter count among all arrival states. Arrival states are
//	terminal: a mission ends the day the ship reaches the destination.
//
// Pruning:
//
//	A best-known table maps (planet, day, fuel) to the fewest encounters
//	seen for that key. A transition is enqueued only when it strictly
//	improves the table (or the key is absent), so the table only ever
//	decreases and the explored space is bounded by
//	O(planets × countdown × autonomy) keys. States that already carry as
//	many encounters as the best arrival found are dropped outright, since
//	encounters never decrease along an itinerary.
//
// Path reconstruction:
//
//	With WithReturnPath, every table improvement also records the
//	predecessor key and the action taken, forming a tree rooted at the
//	start state. The reported itinerary is canonical: among equally risky
//	alternatives it follows whichever transition was recorded first, with
//	actions evaluated as Travel (in adjacency order), then Refuel, then
//	Wait.
//
// Infeasibility:
//
//	If no state reaches the destination within the countdown, Plan returns
//	a Result with Feasible == false. That is a normal outcome, not an
//	error, and is distinct from a feasible zero-encounter mission.
//
// Complexity:
//
//   - Time:  O(P × D × F × (deg + 2)) — each of the O(P×D×F) keys expands
//     a bounded action set, amortized once per strict improvement.
//   - Space: O(P × D × F) for the table, queue, and predecessor links.
//
// The search is single-threaded and owns its table and queue for the
// duration of one call; separate calls share nothing and may run
// concurrently.
package navigate
