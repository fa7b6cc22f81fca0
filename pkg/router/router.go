// Package router is the public surface described by spec.md §4.8: add
// obstacles, add routes, extend limits, trigger (re)routing. It is
// grounded on pkg/routing.Router's add/configure/compute shape, rewritten
// from a static-road-graph navigator (pick an algorithm once, query many
// times) to a router whose grid is rebuilt and whose routes re-see each
// other's footprints on every Route() pass.
package router

import (
	"log"
	"sort"

	"github.com/orthonet/gridrouter/internal/spatial"
	"github.com/orthonet/gridrouter/pkg/geometry"
	"github.com/orthonet/gridrouter/pkg/grid"
	"github.com/orthonet/gridrouter/pkg/netgroup"
)

// Router holds every obstacle and route registered against it and
// computes orthogonal/diagonal paths for all of them on each Route()
// call. A Router is a plain value; multiple instances are fully
// independent (spec.md §9, "Global state: none").
type Router struct {
	options Options

	limits            geometry.Rectangle
	limitsInitialized bool
	obstacles         []geometry.Rectangle
	obstacleCost      float64

	routes []*Route

	grid     *grid.Grid
	allocate bool

	debugLevel int
	lastStats  searchStats
}

// SearchStats reports aggregate A* search effort across every route in
// the most recent Route() pass, the way path.Navigator exposes
// GetPqPops/GetPqUpdates/GetEdgeRelaxations for a benchmark to print.
type SearchStats struct {
	PqPops   int
	PqPushes int
	Relaxed  int
}

// LastSearchStats returns the search effort counters from the most
// recent Route() pass.
func (rt *Router) LastSearchStats() SearchStats {
	return SearchStats{PqPops: rt.lastStats.pqPops, PqPushes: rt.lastStats.pqPushes, Relaxed: rt.lastStats.relaxed}
}

// NewRouter validates opts and returns a ready-to-use Router.
func NewRouter(opts Options) (*Router, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Router{options: opts}, nil
}

// SetDebugLevel controls log.Printf verbosity during Route(): 0 is
// silent, 1 logs one line at the start and one at the end of each pass,
// 2 additionally logs one line per per-route search, in the style of
// UniversalDijkstra's debugLevel.
func (rt *Router) SetDebugLevel(level int) { rt.debugLevel = level }

// Options returns the router's current configuration. Callers may read
// it, mutate the fields spec.md §4.8 allows mutation of (Diagonal, Bus,
// Distance) via SetOptions.
func (rt *Router) Options() Options { return rt.options }

// SetOptions replaces the router's configuration. Geometry-affecting
// fields (GridStep, Margin) changing here does not retroactively resize
// already-registered obstacles' headroom until the next ExtendLimits or
// AddObstacle call.
func (rt *Router) SetOptions(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	rt.options = opts
	return nil
}

// AddObstacle registers an obstacle rectangle, extends the exploration
// limits to keep it clear of the edge, and recomputes the obstacle
// traversal penalty.
func (rt *Router) AddObstacle(rect geometry.Rectangle) {
	rt.obstacles = append(rt.obstacles, rect)
	rt.extendLimits(rect)
}

// AddRoute registers a new route and returns it. onChange must not be
// nil; start and goal must not be nil.
func (rt *Router) AddRoute(start, goal PointSource, onChange OnChange) (*Route, error) {
	if onChange == nil {
		return nil, errNilOnChange
	}
	if start == nil || goal == nil {
		return nil, errNilPoint
	}
	r := newRoute(start, goal, onChange)
	rt.extendLimits(endpointBounds(start.Point(), goal.Point()))
	rt.routes = append(rt.routes, r)
	return r, nil
}

// ExtendLimits enlarges the exploration area when rect comes within
// Options.Margin of any edge: the limits grow to cover rect with
// Options.GridStep of headroom on the left edge and Options.Margin on the
// other three. Calling it with a rectangle already strictly inside the
// current limits minus the margin is a no-op (spec.md §8 property 6).
func (rt *Router) ExtendLimits(rect geometry.Rectangle) {
	rt.extendLimits(rect)
}

func endpointBounds(a, b geometry.Point) geometry.Rectangle {
	r := geometry.Rectangle{Left: a.X, Top: a.Y, Right: a.X, Bottom: a.Y}
	return r.Union(geometry.Rectangle{Left: b.X, Top: b.Y, Right: b.X, Bottom: b.Y})
}

func (rt *Router) extendLimits(rect geometry.Rectangle) {
	if !rt.limitsInitialized {
		rt.limits = rect.Expand(rt.options.GridStep, rt.options.Margin)
		rt.limitsInitialized = true
		rt.allocate = true
		rt.recomputeObstacleCost()
		return
	}

	margin := rt.options.Margin
	needsGrowth := rect.Left-rt.limits.Left < margin ||
		rt.limits.Right-rect.Right < margin ||
		rect.Top-rt.limits.Top < margin ||
		rt.limits.Bottom-rect.Bottom < margin
	if !needsGrowth {
		return
	}

	rt.limits = rt.limits.Union(rect).Expand(rt.options.GridStep, rt.options.Margin)
	rt.allocate = true
	rt.recomputeObstacleCost()
}

// recomputeObstacleCost follows spec.md §4.4's formula: large enough that
// any path through an obstacle cell costs more than any obstacle-free
// detour within the grid, so obstacles are a soft rather than a hard
// blocker.
func (rt *Router) recomputeObstacleCost() {
	width, height := rt.limits.Width(), rt.limits.Height()
	rt.obstacleCost = width*height/rt.options.GridStep + width + height
}

// Route performs a full reroute pass: it (re)allocates the grid if
// needed, marks obstacle cells, assigns group ids, sorts routes by
// endpoint distance, and runs one A* search per route in that order,
// invoking each route's callback exactly once (spec.md §2, §5).
func (rt *Router) Route() {
	if len(rt.routes) == 0 {
		return
	}

	if rt.debugLevel >= 1 {
		log.Printf("gridrouter: pass start, %d routes, %d obstacles", len(rt.routes), len(rt.obstacles))
	}

	obstacleIndex := spatial.Build(rt.obstacles, rt.limits)
	if rt.grid == nil || rt.allocate {
		rt.grid = grid.New(rt.limits, rt.options.GridStep, obstacleIndex)
		rt.allocate = false
	} else {
		rt.grid.Reinit(rt.limits, obstacleIndex)
	}

	endpoints := make([]netgroup.Endpoints, len(rt.routes))
	for i, r := range rt.routes {
		endpoints[i] = r
	}
	netgroup.Assign(endpoints)

	ordered := make([]*Route, len(rt.routes))
	copy(ordered, rt.routes)
	distance := rt.options.resolvedDistance()
	sort.SliceStable(ordered, func(i, j int) bool {
		return distance(ordered[i].Start(), ordered[i].Goal()) < distance(ordered[j].Start(), ordered[j].Goal())
	})

	var stats searchStats
	for i, route := range ordered {
		if rt.debugLevel >= 2 {
			groupID, _ := route.GroupID()
			log.Printf("gridrouter: route %d/%d, group=%d", i+1, len(ordered), groupID)
		}
		path := findPath(rt.grid, route, rt.options, rt.obstacleCost, &stats)
		path = postProcess(path, route.Start(), route.Goal())
		route.onChange(route, path)
	}

	rt.lastStats = stats
	if rt.debugLevel >= 1 {
		log.Printf("gridrouter: pass done, pqPops=%d pqPushes=%d relaxed=%d", stats.pqPops, stats.pqPushes, stats.relaxed)
	}
}

// Limits returns the current exploration area.
func (rt *Router) Limits() geometry.Rectangle { return rt.limits }

// Obstacles returns a copy of the registered obstacle list.
func (rt *Router) Obstacles() []geometry.Rectangle {
	out := make([]geometry.Rectangle, len(rt.obstacles))
	copy(out, rt.obstacles)
	return out
}

// Routes returns the registered routes in registration order.
func (rt *Router) Routes() []*Route {
	out := make([]*Route, len(rt.routes))
	copy(out, rt.routes)
	return out
}
