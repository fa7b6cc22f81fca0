// Command routedemo builds a scenario from a JSON file (or a hardcoded
// default), runs one Route() pass, and prints every route's resulting
// polyline and group id, timed the way cmd/graph-builder and cmd/merger
// report phase timings.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/orthonet/gridrouter/internal/scenario"
	"github.com/orthonet/gridrouter/pkg/geometry"
	"github.com/orthonet/gridrouter/pkg/router"
)

func main() {
	scenarioFile := flag.String("scenario", "", "Path to a JSON scenario file (obstacles + routes)")
	gridStep := flag.Float64("step", 10, "Grid spacing")
	diagonal := flag.Bool("diagonal", false, "Allow diagonal moves")
	bus := flag.Bool("bus", false, "Enable bus-sharing cost reduction")
	debugLevel := flag.Int("debug", 0, "Router debug log level (0, 1 or 2)")
	flag.Parse()

	var s *scenario.Scenario
	if *scenarioFile != "" {
		loaded, err := scenario.Load(*scenarioFile)
		if err != nil {
			log.Fatalf("loading scenario: %v", err)
		}
		s = loaded
	} else {
		s = defaultScenario()
	}

	opts := router.DefaultOptions(*gridStep)
	opts.Diagonal = *diagonal
	opts.Bus = *bus

	rt, err := router.NewRouter(opts)
	if err != nil {
		log.Fatalf("configuring router: %v", err)
	}
	rt.SetDebugLevel(*debugLevel)

	for _, obstacle := range s.Obstacles {
		rt.AddObstacle(obstacle)
	}

	type result struct {
		index   int
		groupID int
		path    []geometry.Point
	}
	results := make([]result, len(s.Routes))
	for i, spec := range s.Routes {
		i := i
		_, err := rt.AddRoute(router.Fixed(spec.Start()), router.Fixed(spec.Goal()), func(route *router.Route, path []geometry.Point) {
			groupID, _ := route.GroupID()
			results[i] = result{index: i, groupID: groupID, path: path}
		})
		if err != nil {
			log.Fatalf("adding route %d: %v", i, err)
		}
	}

	start := time.Now()
	rt.Route()
	elapsed := time.Since(start)
	fmt.Printf("[TIME] route: %s\n", elapsed)

	for _, r := range results {
		fmt.Printf("route %d (group %d): %v\n", r.index, r.groupID, r.path)
	}
}

func defaultScenario() *scenario.Scenario {
	return &scenario.Scenario{
		Obstacles: []geometry.Rectangle{
			{Left: 40, Top: -20, Right: 60, Bottom: 20},
		},
		Routes: []scenario.RouteSpec{
			{StartX: 0, StartY: 0, GoalX: 100, GoalY: 0},
			{StartX: 0, StartY: 30, GoalX: 100, GoalY: 30},
		},
	}
}
