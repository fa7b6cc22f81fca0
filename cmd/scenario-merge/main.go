// Command scenario-merge reads multiple JSON scenario files, merges them
// the way road.Merger.Merge fuses connected road segments, runs one
// Route() pass over the merged result, and writes the merged scenario
// plus every computed polyline to a JSON output file.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/orthonet/gridrouter/internal/scenario"
	"github.com/orthonet/gridrouter/pkg/geometry"
	"github.com/orthonet/gridrouter/pkg/router"
)

func saveOutput(filename string, out *mergedOutput) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewEncoder(file).Encode(out)
}

type mergedOutput struct {
	Scenario *scenario.Scenario `json:"scenario"`
	Paths    [][]geometry.Point `json:"paths"`
	GroupIDs []int              `json:"groupIds"`
}

func main() {
	output := flag.String("o", "merged.json", "Output file path")
	gridStep := flag.Float64("step", 10, "Grid spacing")
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		log.Fatal("usage: scenario-merge [-o out.json] [-step n] scenario1.json scenario2.json ...")
	}

	scenarios := make([]*scenario.Scenario, 0, len(inputs))
	for _, path := range inputs {
		s, err := scenario.Load(path)
		if err != nil {
			log.Fatalf("loading %s: %v", path, err)
		}
		scenarios = append(scenarios, s)
	}

	merged := scenario.Merge(scenarios...)

	rt, err := router.NewRouter(router.DefaultOptions(*gridStep))
	if err != nil {
		log.Fatalf("configuring router: %v", err)
	}
	for _, obstacle := range merged.Obstacles {
		rt.AddObstacle(obstacle)
	}

	paths := make([][]geometry.Point, len(merged.Routes))
	groupIDs := make([]int, len(merged.Routes))
	for i, spec := range merged.Routes {
		i := i
		_, err := rt.AddRoute(router.Fixed(spec.Start()), router.Fixed(spec.Goal()), func(route *router.Route, path []geometry.Point) {
			paths[i] = path
			groupIDs[i], _ = route.GroupID()
		})
		if err != nil {
			log.Fatalf("adding route %d: %v", i, err)
		}
	}

	rt.Route()

	out := &mergedOutput{Scenario: merged, Paths: paths, GroupIDs: groupIDs}
	if err := saveOutput(*output, out); err != nil {
		log.Fatalf("writing %s: %v", *output, err)
	}
	log.Printf("merged %d scenarios into %s: %d obstacles, %d routes", len(scenarios), *output, len(merged.Obstacles), len(merged.Routes))
}
