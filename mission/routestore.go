package mission

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/c3po/galaxy"
)

// loadRouteStore reads every row of the routes table from a SQLite
// database. Row order is preserved so neighbor enumeration stays
// deterministic across runs.
func loadRouteStore(path string) ([]galaxy.Route, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open route database %s: %v", ErrParse, path, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT origin, destination, travel_time FROM routes ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("%w: query route database %s: %v", ErrParse, path, err)
	}
	defer rows.Close()

	var routes []galaxy.Route
	for rows.Next() {
		var r galaxy.Route
		if err = rows.Scan(&r.Origin, &r.Destination, &r.TravelTime); err != nil {
			return nil, fmt.Errorf("%w: scan route database %s: %v", ErrParse, path, err)
		}
		routes = append(routes, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read route database %s: %v", ErrParse, path, err)
	}

	return routes, nil
}
