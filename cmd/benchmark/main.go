// Command benchmark generates a synthetic obstacle/route scenario,
// runs repeated Route() passes, and reports pop/push/relaxation counts
// the way the teacher's benchmark reports Dijkstra/CH pq pops and edge
// relaxations, with an equivalent -cpu pprof flag.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"github.com/orthonet/gridrouter/pkg/geometry"
	"github.com/orthonet/gridrouter/pkg/router"
)

func main() {
	numObstacles := flag.Int("obstacles", 20, "How many obstacles to generate")
	numRoutes := flag.Int("routes", 50, "How many routes to generate")
	passes := flag.Int("passes", 5, "How many Route() passes to run")
	gridStep := flag.Float64("step", 10, "Grid spacing")
	random := flag.Bool("random", false, "Seed the generator from the current time instead of a fixed seed")
	cpuProfile := flag.String("cpu", "", "Write a CPU profile to this file")
	flag.Parse()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	seed := int64(0)
	if *random {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	rt, err := router.NewRouter(router.DefaultOptions(*gridStep))
	if err != nil {
		log.Fatalf("configuring router: %v", err)
	}

	const span = 1000.0
	for i := 0; i < *numObstacles; i++ {
		left := rng.Float64() * span
		top := rng.Float64() * span
		rt.AddObstacle(geometry.Rectangle{
			Left: left, Top: top,
			Right: left + 10 + rng.Float64()*20, Bottom: top + 10 + rng.Float64()*20,
		})
	}
	for i := 0; i < *numRoutes; i++ {
		start := geometry.Point{X: rng.Float64() * span, Y: rng.Float64() * span}
		goal := geometry.Point{X: rng.Float64() * span, Y: rng.Float64() * span}
		if _, err := rt.AddRoute(router.Fixed(start), router.Fixed(goal), func(*router.Route, []geometry.Point) {}); err != nil {
			log.Fatalf("adding route %d: %v", i, err)
		}
	}

	var totalElapsed time.Duration
	for p := 0; p < *passes; p++ {
		start := time.Now()
		rt.Route()
		elapsed := time.Since(start)
		totalElapsed += elapsed
		stats := rt.LastSearchStats()
		fmt.Printf("[%2d] pass time = %s, pqPops=%d pqPushes=%d relaxed=%d\n", p, elapsed, stats.PqPops, stats.PqPushes, stats.Relaxed)
	}
	fmt.Printf("average pass time: %s\n", totalElapsed/time.Duration(*passes))
}
