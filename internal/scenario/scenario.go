// Package scenario loads, merges and saves the obstacle/route fixtures
// the demo CLIs and HTTP façade operate on. It is grounded on
// internal/pbf's ExportRoadJson (plain os.Create + json.Encoder) and
// road.Merger's endpoint-sharing merge, rewritten from a road-segment
// network to a flat list of obstacles and routes.
package scenario

import (
	"encoding/json"
	"os"
	"slices"

	"github.com/orthonet/gridrouter/pkg/geometry"
)

// RouteSpec is the JSON-serializable description of one route's fixed
// endpoints, used by file-backed scenarios where PointSources never move.
type RouteSpec struct {
	StartX float64 `json:"startX"`
	StartY float64 `json:"startY"`
	GoalX  float64 `json:"goalX"`
	GoalY  float64 `json:"goalY"`
}

// Start returns the spec's start point.
func (s RouteSpec) Start() geometry.Point { return geometry.Point{X: s.StartX, Y: s.StartY} }

// Goal returns the spec's goal point.
func (s RouteSpec) Goal() geometry.Point { return geometry.Point{X: s.GoalX, Y: s.GoalY} }

// Scenario is a complete obstacle/route fixture.
type Scenario struct {
	Obstacles []geometry.Rectangle `json:"obstacles"`
	Routes    []RouteSpec          `json:"routes"`
}

// Load reads a scenario from a JSON file.
func Load(filename string) (*Scenario, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var s Scenario
	if err := json.NewDecoder(file).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes a scenario to a JSON file, in the same os.Create +
// json.NewEncoder(file).Encode idiom used to export merged road networks.
func Save(filename string, s *Scenario) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewEncoder(file).Encode(s)
}

// Merge combines multiple scenarios into one, the way road.Merger.Merge
// fuses connected road segments: here there is no endpoint-sharing
// structure to exploit, so merging is a straight append with obstacle
// deduplication (an obstacle already present by value is not repeated).
func Merge(scenarios ...*Scenario) *Scenario {
	merged := &Scenario{}
	for _, s := range scenarios {
		if s == nil {
			continue
		}
		for _, obstacle := range s.Obstacles {
			if !slices.Contains(merged.Obstacles, obstacle) {
				merged.Obstacles = append(merged.Obstacles, obstacle)
			}
		}
		merged.Routes = append(merged.Routes, s.Routes...)
	}
	return merged
}
