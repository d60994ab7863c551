package c3po_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c3po"
	"github.com/katalvlaran/c3po/galaxy"
	"github.com/katalvlaran/c3po/mission"
)

const falconJSON = `{
	"autonomy": 6,
	"routes": [
		{"origin": "Tatooine", "destination": "Dagobah", "travel_time": 6},
		{"origin": "Dagobah", "destination": "Endor", "travel_time": 4},
		{"origin": "Dagobah", "destination": "Hoth", "travel_time": 1},
		{"origin": "Hoth", "destination": "Endor", "travel_time": 1},
		{"origin": "Tatooine", "destination": "Hoth", "travel_time": 6}
	]
}`

const hunterList = `[
	{"planet": "Hoth", "day": 6},
	{"planet": "Hoth", "day": 7},
	{"planet": "Hoth", "day": 8}
]`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func empireJSON(countdown string) string {
	return `{"countdown": ` + countdown + `, "bounty_hunters": ` + hunterList + `}`
}

// TestGiveMeTheOdds_ReferenceMissions runs the four canonical missions
// end to end through the file-based facade.
func TestGiveMeTheOdds_ReferenceMissions(t *testing.T) {
	dir := t.TempDir()
	droid, err := c3po.New(writeFile(t, dir, "millennium-falcon.json", falconJSON))
	require.NoError(t, err)
	require.Equal(t, 6, droid.Autonomy())

	cases := []struct {
		countdown string
		want      float64
	}{
		{"7", 0.0},
		{"8", 0.81},
		{"9", 0.9},
		{"10", 1.0},
	}
	for _, tc := range cases {
		path := writeFile(t, dir, "empire-"+tc.countdown+".json", empireJSON(tc.countdown))
		got, err := droid.GiveMeTheOdds(path)
		require.NoError(t, err)
		require.InDelta(t, tc.want, got, 1e-12, "countdown %s", tc.countdown)
	}
}

// TestGiveMeTheOdds_Concurrent evaluates missions in parallel against one
// droid; evaluations must not share mutable state.
func TestGiveMeTheOdds_Concurrent(t *testing.T) {
	dir := t.TempDir()
	droid, err := c3po.New(writeFile(t, dir, "millennium-falcon.json", falconJSON))
	require.NoError(t, err)
	path := writeFile(t, dir, "empire.json", empireJSON("8"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := droid.GiveMeTheOdds(path)
			if err != nil || math.Abs(got-0.81) > 1e-12 {
				t.Errorf("concurrent evaluation: got %v, %v", got, err)
			}
		}()
	}
	wg.Wait()
}

// TestPlan_Itinerary checks the verbose path and its rendering.
func TestPlan_Itinerary(t *testing.T) {
	dir := t.TempDir()
	droid, err := c3po.New(writeFile(t, dir, "millennium-falcon.json", falconJSON))
	require.NoError(t, err)

	res, p, err := droid.Plan(writeFile(t, dir, "empire.json", empireJSON("8")))
	require.NoError(t, err)
	require.True(t, res.Feasible)
	require.Equal(t, 2, res.Encounters)
	require.InDelta(t, 0.81, p, 1e-12)
	require.NotEmpty(t, res.Path)
	require.Equal(t, "Endor", res.Path[len(res.Path)-1].Planet)

	report := c3po.FormatItinerary(res, droid.Autonomy())
	require.Contains(t, report, "Day 0: depart Tatooine (fuel 6/6)")
	require.Contains(t, report, "bounty hunters!")
	require.Contains(t, report, "Encounters: 2")
	require.Contains(t, report, "Success probability: 81.0%")
}

// TestPlan_Infeasible renders the fixed no-itinerary line.
func TestPlan_Infeasible(t *testing.T) {
	dir := t.TempDir()
	droid, err := c3po.New(writeFile(t, dir, "millennium-falcon.json", falconJSON))
	require.NoError(t, err)

	res, p, err := droid.Plan(writeFile(t, dir, "empire.json", empireJSON("7")))
	require.NoError(t, err)
	require.False(t, res.Feasible)
	require.Zero(t, p)
	require.True(t, strings.HasPrefix(c3po.FormatItinerary(res, droid.Autonomy()), "No viable itinerary"))
}

// TestNew_Errors covers construction failures.
func TestNew_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := c3po.New(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, mission.ErrParse)

	// A network that never mentions Endor cannot host the mission.
	noEndor := `{"autonomy": 6, "routes": [{"origin": "Tatooine", "destination": "Hoth", "travel_time": 6}]}`
	_, err = c3po.New(writeFile(t, dir, "no-endor.json", noEndor))
	require.ErrorIs(t, err, galaxy.ErrUnknownPlanet)

	badRoute := `{"autonomy": 6, "routes": [{"origin": "Tatooine", "destination": "Endor", "travel_time": 0}]}`
	_, err = c3po.New(writeFile(t, dir, "bad-route.json", badRoute))
	require.ErrorIs(t, err, galaxy.ErrInvalidRoute)
}
