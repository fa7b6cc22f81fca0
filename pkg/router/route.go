package router

import "github.com/orthonet/gridrouter/pkg/geometry"

// PointSource is a live coordinate accessor. Routes are re-read from
// their start/goal sources on every Route() pass so a route follows its
// endpoints when they move (spec.md §3) - the Go expression of the
// design note's "store endpoints as a closure returning current x,y, or
// as a two-method accessor interface" resolution of the cyclic-reference
// open question.
type PointSource interface {
	Point() geometry.Point
}

// Fixed adapts a static point into a PointSource, for callers whose
// endpoints never move.
type Fixed geometry.Point

// Point implements PointSource.
func (f Fixed) Point() geometry.Point { return geometry.Point(f) }

// FuncSource adapts a closure into a PointSource.
type FuncSource func() geometry.Point

// Point implements PointSource.
func (f FuncSource) Point() geometry.Point { return f() }

// OnChange is invoked exactly once per Route() pass with the route's
// resulting polyline. The callback must not mutate router state
// (spec.md §6).
type OnChange func(route *Route, path []geometry.Point)

// Route is a single start-goal net. GroupID is assigned by the router on
// the first pass it is encountered without one and persists thereafter
// (spec.md §4.3).
type Route struct {
	start, goal PointSource
	onChange    OnChange

	groupID         int
	groupIDAssigned bool
}

func newRoute(start, goal PointSource, onChange OnChange) *Route {
	return &Route{start: start, goal: goal, onChange: onChange, groupID: -1}
}

// Start returns the route's current start coordinate.
func (r *Route) Start() geometry.Point { return r.start.Point() }

// Goal returns the route's current goal coordinate.
func (r *Route) Goal() geometry.Point { return r.goal.Point() }

// GroupID implements netgroup.Endpoints.
func (r *Route) GroupID() (int, bool) { return r.groupID, r.groupIDAssigned }

// SetGroupID implements netgroup.Endpoints.
func (r *Route) SetGroupID(id int) {
	r.groupID = id
	r.groupIDAssigned = true
}
