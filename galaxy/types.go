// Package galaxy defines the route-network types and their sentinel errors.
package galaxy

import "errors"

// Sentinel errors returned during Galaxy construction and lookups.
var (
	// ErrNoRoutes is returned when New receives an empty route list.
	ErrNoRoutes = errors.New("galaxy: route list is empty")

	// ErrInvalidRoute is returned for a route with an empty endpoint,
	// identical endpoints, or a non-positive travel time.
	ErrInvalidRoute = errors.New("galaxy: invalid route")

	// ErrUnknownPlanet is returned when a requested planet does not
	// appear in any route of the network.
	ErrUnknownPlanet = errors.New("galaxy: planet not found")
)

// Route is one bidirectional hyperspace lane between two planets.
// TravelTime is the number of days a jump takes, in either direction.
type Route struct {
	Origin      string
	Destination string
	TravelTime  int
}

// Hyperlane is a single adjacency entry: the neighboring planet and the
// days needed to jump there.
type Hyperlane struct {
	To   string
	Days int
}
