// Package mission decodes the two input files of a mission evaluation
// into the typed models the planner consumes.
//
// millennium-falcon.json describes the ship and the route network:
//
//	{
//	  "autonomy": 6,
//	  "routes": [
//	    {"origin": "Tatooine", "destination": "Dagobah", "travel_time": 6}
//	  ]
//	}
//
// Instead of inline routes, the file may name a SQLite database holding a
// routes table (columns origin, destination, travel_time):
//
//	{"autonomy": 6, "routes_db": "universe.db"}
//
// A relative routes_db path is resolved against the directory of the
// falcon file itself. Both "travel_time" and "travelTime" spellings are
// accepted for inline routes.
//
// empire.json carries the intercepted intelligence:
//
//	{
//	  "countdown": 7,
//	  "bounty_hunters": [{"planet": "Hoth", "day": 6}]
//	}
//
// Decoding fails fast: missing fields, malformed JSON, unreadable files,
// or an unusable database all surface as a wrapped ErrParse before any
// planning runs. Semantic validation (positive travel times, non-negative
// days) is delegated to the galaxy and empire packages, whose sentinel
// errors pass through unchanged.
package mission
