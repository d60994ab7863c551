package galaxy

import "fmt"

// Galaxy is an immutable, undirected, weighted route network.
// Build it with New; all methods are read-only afterwards.
type Galaxy struct {
	adjacency map[string][]Hyperlane
	planets   []string // insertion order, for deterministic enumeration
	routes    int
}

// New builds a Galaxy from a list of bidirectional routes.
// Each route is validated before insertion:
//
//   - both endpoints must be non-empty and distinct,
//   - the travel time must be a positive integer.
//
// Returns ErrNoRoutes for an empty list and a wrapped ErrInvalidRoute
// (with the offending index) for the first malformed entry.
//
// Complexity: O(R) time and space for R routes.
func New(routes []Route) (*Galaxy, error) {
	if len(routes) == 0 {
		return nil, ErrNoRoutes
	}

	g := &Galaxy{
		adjacency: make(map[string][]Hyperlane, len(routes)),
		routes:    len(routes),
	}
	for i, r := range routes {
		if r.Origin == "" || r.Destination == "" {
			return nil, fmt.Errorf("%w: route %d has an empty endpoint", ErrInvalidRoute, i)
		}
		if r.Origin == r.Destination {
			return nil, fmt.Errorf("%w: route %d is a self-loop on %q", ErrInvalidRoute, i, r.Origin)
		}
		if r.TravelTime <= 0 {
			return nil, fmt.Errorf("%w: route %d (%s–%s) has travel time %d, want > 0",
				ErrInvalidRoute, i, r.Origin, r.Destination, r.TravelTime)
		}

		g.addPlanet(r.Origin)
		g.addPlanet(r.Destination)
		// Symmetric adjacency: one entry per direction.
		g.adjacency[r.Origin] = append(g.adjacency[r.Origin], Hyperlane{To: r.Destination, Days: r.TravelTime})
		g.adjacency[r.Destination] = append(g.adjacency[r.Destination], Hyperlane{To: r.Origin, Days: r.TravelTime})
	}

	return g, nil
}

// addPlanet registers an endpoint the first time a route mentions it.
func (g *Galaxy) addPlanet(id string) {
	if _, seen := g.adjacency[id]; !seen {
		g.adjacency[id] = nil
		g.planets = append(g.planets, id)
	}
}

// Neighbors returns the hyperlanes leaving planet, in route insertion
// order. The returned slice is shared; callers must not mutate it.
// Unknown planets yield an empty sequence.
func (g *Galaxy) Neighbors(planet string) []Hyperlane {
	return g.adjacency[planet]
}

// HasPlanet reports whether any route mentions the given planet.
func (g *Galaxy) HasPlanet(planet string) bool {
	_, ok := g.adjacency[planet]
	return ok
}

// Planets returns all planet ids in first-mention order.
func (g *Galaxy) Planets() []string {
	out := make([]string, len(g.planets))
	copy(out, g.planets)

	return out
}

// RouteCount returns the number of routes the network was built from.
func (g *Galaxy) RouteCount() int { return g.routes }

// Require verifies that every given planet exists in the network,
// returning a wrapped ErrUnknownPlanet for the first miss.
func (g *Galaxy) Require(planets ...string) error {
	for _, p := range planets {
		if !g.HasPlanet(p) {
			return fmt.Errorf("%w: %q", ErrUnknownPlanet, p)
		}
	}

	return nil
}

// Connected reports whether any sequence of hyperlanes joins from and to,
// ignoring travel times, fuel, and deadlines. It answers only whether the
// two planets share a connected component.
//
// Complexity: O(V + E) breadth-first sweep.
func (g *Galaxy) Connected(from, to string) bool {
	if !g.HasPlanet(from) || !g.HasPlanet(to) {
		return false
	}
	if from == to {
		return true
	}

	visited := map[string]bool{from: true}
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, lane := range g.adjacency[cur] {
			if lane.To == to {
				return true
			}
			if !visited[lane.To] {
				visited[lane.To] = true
				queue = append(queue, lane.To)
			}
		}
	}

	return false
}
