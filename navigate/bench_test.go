package navigate_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/c3po/empire"
	"github.com/katalvlaran/c3po/galaxy"
	"github.com/katalvlaran/c3po/navigate"
)

// BenchmarkPlan_Classic measures the planner on the reference network.
func BenchmarkPlan_Classic(b *testing.B) {
	g, err := galaxy.New([]galaxy.Route{
		{Origin: "Tatooine", Destination: "Dagobah", TravelTime: 6},
		{Origin: "Dagobah", Destination: "Endor", TravelTime: 4},
		{Origin: "Dagobah", Destination: "Hoth", TravelTime: 1},
		{Origin: "Hoth", Destination: "Endor", TravelTime: 1},
		{Origin: "Tatooine", Destination: "Hoth", TravelTime: 6},
	})
	if err != nil {
		b.Fatal(err)
	}
	sched, err := empire.NewSchedule([]empire.Sighting{
		{Planet: "Hoth", Day: 6}, {Planet: "Hoth", Day: 7}, {Planet: "Hoth", Day: 8},
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = navigate.Plan(g, sched, "Tatooine", "Endor", 6, 10)
	}
}

// BenchmarkPlan_Chain measures a long chain that forces periodic refuels.
func BenchmarkPlan_Chain(b *testing.B) {
	const n = 60
	routes := make([]galaxy.Route, 0, n)
	for i := 0; i < n; i++ {
		routes = append(routes, galaxy.Route{
			Origin:      fmt.Sprintf("p%d", i),
			Destination: fmt.Sprintf("p%d", i+1),
			TravelTime:  2,
		})
	}
	g, err := galaxy.New(routes)
	if err != nil {
		b.Fatal(err)
	}
	sched, err := empire.NewSchedule(nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = navigate.Plan(g, sched, "p0", fmt.Sprintf("p%d", n), 4, 200)
	}
}

// BenchmarkPlan_RandomSparse measures a sparse random network with a
// dense hunter schedule, with and without path reconstruction.
func BenchmarkPlan_RandomSparse(b *testing.B) {
	const planets = 40
	const lanes = 90
	rnd := rand.New(rand.NewSource(42))

	routes := make([]galaxy.Route, 0, lanes+planets-1)
	// a spanning chain keeps everything in one component
	for i := 0; i < planets-1; i++ {
		routes = append(routes, galaxy.Route{
			Origin:      fmt.Sprintf("p%d", i),
			Destination: fmt.Sprintf("p%d", i+1),
			TravelTime:  1 + rnd.Intn(3),
		})
	}
	for len(routes) < lanes {
		u, v := rnd.Intn(planets), rnd.Intn(planets)
		if u == v {
			continue
		}
		routes = append(routes, galaxy.Route{
			Origin:      fmt.Sprintf("p%d", u),
			Destination: fmt.Sprintf("p%d", v),
			TravelTime:  1 + rnd.Intn(4),
		})
	}
	g, err := galaxy.New(routes)
	if err != nil {
		b.Fatal(err)
	}

	sightings := make([]empire.Sighting, 0, 200)
	for i := 0; i < 200; i++ {
		sightings = append(sightings, empire.Sighting{
			Planet: fmt.Sprintf("p%d", rnd.Intn(planets)),
			Day:    rnd.Intn(40),
		})
	}
	sched, err := empire.NewSchedule(sightings)
	if err != nil {
		b.Fatal(err)
	}

	b.Run("NoPath", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = navigate.Plan(g, sched, "p0", fmt.Sprintf("p%d", planets-1), 5, 40)
		}
	})
	b.Run("ReturnPath", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = navigate.Plan(g, sched, "p0", fmt.Sprintf("p%d", planets-1), 5, 40,
				navigate.WithReturnPath())
		}
	})
}
