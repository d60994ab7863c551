package navigate

import (
	"github.com/katalvlaran/c3po/empire"
	"github.com/katalvlaran/c3po/galaxy"
)

// unreachable is the encounter count before any arrival has been seen.
const unreachable = int(^uint(0) >> 1)

// stateKey identifies a search state up to its encounter count.
// Different fuel levels on the same (planet, day) are distinct keys.
type stateKey struct {
	planet string
	day    int
	fuel   int
}

// queued is one pending expansion: a key plus the encounters it was
// enqueued with. Stale entries (the table has improved since) are skipped
// on dequeue.
type queued struct {
	key        stateKey
	encounters int
}

// cameFrom is one predecessor link of the reconstruction tree.
type cameFrom struct {
	prev      stateKey
	action    Action
	encounter bool
}

// walker owns the mutable search state of a single Plan invocation.
type walker struct {
	galaxy      *galaxy.Galaxy
	schedule    *empire.Schedule
	destination string
	autonomy    int
	countdown   int
	opts        Options

	queue []queued
	best  map[stateKey]int      // best-known encounters per key
	prev  map[stateKey]cameFrom // nil unless ReturnPath

	arrival        stateKey // first arrival achieving bestEncounters
	bestEncounters int
}

// Plan searches for the itinerary from origin to destination that
// minimizes bounty-hunter encounters while respecting the fuel autonomy
// and arriving within countdown days.
//
// Validation (in order): g non-nil (ErrNilGalaxy), sched non-nil
// (ErrNilSchedule), autonomy > 0 (ErrBadAutonomy), countdown ≥ 0
// (ErrBadCountdown), origin and destination present in g
// (galaxy.ErrUnknownPlanet).
//
// An infeasible mission — no arrival within the countdown — is a normal
// result with Feasible == false, not an error. The only runtime error is
// a cancelled context supplied via WithContext.
func Plan(g *galaxy.Galaxy, sched *empire.Schedule, origin, destination string, autonomy, countdown int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGalaxy
	}
	if sched == nil {
		return nil, ErrNilSchedule
	}
	if autonomy <= 0 {
		return nil, ErrBadAutonomy
	}
	if countdown < 0 {
		return nil, ErrBadCountdown
	}
	if err := g.Require(origin, destination); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Planets in different components can never meet, whatever the
	// countdown; skip the state-space walk entirely.
	if !g.Connected(origin, destination) {
		return &Result{}, nil
	}

	w := &walker{
		galaxy:         g,
		schedule:       sched,
		destination:    destination,
		autonomy:       autonomy,
		countdown:      countdown,
		opts:           o,
		best:           make(map[stateKey]int),
		bestEncounters: unreachable,
	}
	if o.ReturnPath {
		w.prev = make(map[stateKey]cameFrom)
	}

	start := stateKey{planet: origin, day: 0, fuel: autonomy}
	w.best[start] = 0
	w.queue = append(w.queue, queued{key: start})

	if err := w.run(); err != nil {
		return nil, err
	}

	if w.bestEncounters == unreachable {
		return &Result{}, nil
	}
	res := &Result{
		Feasible:   true,
		Encounters: w.bestEncounters,
		ArrivalDay: w.arrival.day,
	}
	if o.ReturnPath {
		res.Path = w.reconstruct(start)
	}

	return res, nil
}

// run drains the queue, expanding every non-stale state until the space
// up to the countdown is exhausted.
func (w *walker) run() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		cur := w.queue[0]
		w.queue = w.queue[1:]

		// Stale: a strictly better value for this key was enqueued later.
		if w.best[cur.key] < cur.encounters {
			continue
		}

		// Arrival is terminal; keep the first itinerary achieving a
		// strictly lower count so ties resolve to the earliest recorded.
		if cur.key.planet == w.destination {
			if cur.encounters < w.bestEncounters {
				w.bestEncounters = cur.encounters
				w.arrival = cur.key
			}

			continue
		}

		// Encounters never decrease along an itinerary, so anything
		// already at the best arrival count cannot improve on it.
		if cur.encounters >= w.bestEncounters {
			continue
		}

		w.expand(cur)
	}

	return nil
}

// expand offers every legal transition out of cur, in the canonical
// order: Travel along each hyperlane in adjacency order, then Refuel,
// then Wait.
func (w *walker) expand(cur queued) {
	for _, lane := range w.galaxy.Neighbors(cur.key.planet) {
		if lane.Days > cur.key.fuel {
			continue // tank cannot cover the jump
		}
		day := cur.key.day + lane.Days
		if day > w.countdown {
			continue // would arrive after the countdown
		}
		w.offer(cur, stateKey{planet: lane.To, day: day, fuel: cur.key.fuel - lane.Days}, Travel)
	}

	if day := cur.key.day + 1; day <= w.countdown {
		w.offer(cur, stateKey{planet: cur.key.planet, day: day, fuel: w.autonomy}, Refuel)
		w.offer(cur, stateKey{planet: cur.key.planet, day: day, fuel: cur.key.fuel}, Wait)
	}
}

// offer applies the encounter check at the state being entered and
// enqueues it when it strictly improves the best-known table. Predecessor
// links are (re)recorded on exactly those improvements, so each key keeps
// the first transition that achieved its current minimum.
func (w *walker) offer(from queued, to stateKey, act Action) {
	met := w.schedule.HasHunters(to.planet, to.day)
	encounters := from.encounters
	if met {
		encounters++
	}

	if known, ok := w.best[to]; ok && known <= encounters {
		return
	}
	w.best[to] = encounters
	if w.prev != nil {
		w.prev[to] = cameFrom{prev: from.key, action: act, encounter: met}
	}
	w.queue = append(w.queue, queued{key: to, encounters: encounters})
}

// reconstruct walks the predecessor tree from the recorded arrival back
// to the start state and returns the itinerary in forward order.
func (w *walker) reconstruct(start stateKey) []Step {
	var rev []Step
	key := w.arrival
	for key != start {
		link, ok := w.prev[key]
		if !ok {
			break // the tree is rooted at start
		}
		rev = append(rev, Step{
			Action:    link.action,
			Planet:    key.planet,
			Day:       key.day,
			Fuel:      key.fuel,
			Encounter: link.encounter,
		})
		key = link.prev
	}
	rev = append(rev, Step{Action: Depart, Planet: start.planet, Day: 0, Fuel: start.fuel})

	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
