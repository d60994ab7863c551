package mission

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/c3po/galaxy"
)

// ErrParse wraps every structural decoding failure: unreadable file,
// malformed JSON, missing required field, unusable route database.
var ErrParse = errors.New("mission: invalid mission data")

// Falcon is the decoded ship description: fuel autonomy plus the route
// network it can fly.
type Falcon struct {
	Autonomy int
	Routes   []galaxy.Route
}

// falconJSON mirrors the millennium-falcon.json document. Pointer fields
// distinguish "absent" from zero values so missing fields fail fast.
type falconJSON struct {
	Autonomy *int        `json:"autonomy"`
	Routes   []routeJSON `json:"routes"`
	RoutesDB string      `json:"routes_db"`
}

// routeJSON accepts both travel-time spellings seen in the wild.
type routeJSON struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	TravelTime      int    `json:"travel_time"`
	TravelTimeCamel int    `json:"travelTime"`
}

func (r routeJSON) route() galaxy.Route {
	days := r.TravelTime
	if days == 0 {
		days = r.TravelTimeCamel
	}

	return galaxy.Route{Origin: r.Origin, Destination: r.Destination, TravelTime: days}
}

// LoadFalcon reads and decodes a millennium-falcon.json file.
//
// Exactly one route source must be present: an inline "routes" array or a
// "routes_db" SQLite path (resolved relative to the falcon file when not
// absolute). Decoding failures return a wrapped ErrParse; the route
// entries themselves are validated later by galaxy.New.
func LoadFalcon(path string) (*Falcon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var doc falconJSON
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	if doc.Autonomy == nil {
		return nil, fmt.Errorf("%w: %s: missing required field %q", ErrParse, path, "autonomy")
	}

	f := &Falcon{Autonomy: *doc.Autonomy}
	switch {
	case len(doc.Routes) > 0 && doc.RoutesDB != "":
		return nil, fmt.Errorf("%w: %s: %q and %q are mutually exclusive", ErrParse, path, "routes", "routes_db")
	case len(doc.Routes) > 0:
		f.Routes = make([]galaxy.Route, len(doc.Routes))
		for i, r := range doc.Routes {
			f.Routes[i] = r.route()
		}
	case doc.RoutesDB != "":
		dbPath := doc.RoutesDB
		if !filepath.IsAbs(dbPath) {
			dbPath = filepath.Join(filepath.Dir(path), dbPath)
		}
		if f.Routes, err = loadRouteStore(dbPath); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s: missing %q or %q", ErrParse, path, "routes", "routes_db")
	}

	return f, nil
}

// Galaxy builds the validated route network for this ship.
func (f *Falcon) Galaxy() (*galaxy.Galaxy, error) {
	return galaxy.New(f.Routes)
}
