package router

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/orthonet/gridrouter/pkg/geometry"
)

func newTestRouter(t *testing.T, gridStep float64) *Router {
	t.Helper()
	rt, err := NewRouter(DefaultOptions(gridStep))
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	return rt
}

func collect(t *testing.T) (OnChange, func() []geometry.Point) {
	t.Helper()
	var got []geometry.Point
	calls := 0
	return func(route *Route, path []geometry.Point) {
		calls++
		if calls > 1 {
			t.Fatalf("onChange invoked %d times, want at most 1 per Route() call", calls)
		}
		got = path
	}, func() []geometry.Point { return got }
}

// S1: a straight shot between two axis-aligned points with no obstacles
// produces a two-point polyline at exactly the start and goal.
func TestStraightShot(t *testing.T) {
	rt := newTestRouter(t, 10)
	onChange, path := collect(t)
	start := geometry.Point{X: 0, Y: 0}
	goal := geometry.Point{X: 100, Y: 0}
	if _, err := rt.AddRoute(Fixed(start), Fixed(goal), onChange); err != nil {
		t.Fatalf("AddRoute: %v", err)
	}

	rt.Route()

	got := path()
	if len(got) < 2 {
		t.Fatalf("path has %d points, want at least 2", len(got))
	}
	if got[0] != start {
		t.Errorf("first point = %v, want %v", got[0], start)
	}
	if got[len(got)-1] != goal {
		t.Errorf("last point = %v, want %v", got[len(got)-1], goal)
	}
	for _, p := range got {
		if p.Y != 0 {
			t.Errorf("point %v left the straight line y=0", p)
		}
	}
}

// S2: routing around a box between start and goal still reaches the goal
// and never passes through the obstacle's interior.
func TestRouteAroundObstacle(t *testing.T) {
	rt := newTestRouter(t, 10)
	rt.AddObstacle(geometry.Rectangle{Left: 40, Top: -20, Right: 60, Bottom: 20})

	onChange, path := collect(t)
	start := geometry.Point{X: 0, Y: 0}
	goal := geometry.Point{X: 100, Y: 0}
	if _, err := rt.AddRoute(Fixed(start), Fixed(goal), onChange); err != nil {
		t.Fatalf("AddRoute: %v", err)
	}

	rt.Route()

	got := path()
	obstacle := geometry.Rectangle{Left: 40, Top: -20, Right: 60, Bottom: 20}
	for _, p := range got {
		if obstacle.Contains(p) {
			t.Errorf("path point %v falls inside the obstacle", p)
		}
	}
	if got[len(got)-1] != goal {
		t.Errorf("last point = %v, want %v", got[len(got)-1], goal)
	}
}

// Group equivalence: two routes sharing a start point end up in the same
// group.
func TestSharedEndpointGroupsTogether(t *testing.T) {
	rt := newTestRouter(t, 10)
	shared := geometry.Point{X: 0, Y: 0}

	onChangeA, _ := collect(t)
	onChangeB, _ := collect(t)
	routeA, err := rt.AddRoute(Fixed(shared), Fixed(geometry.Point{X: 100, Y: 0}), onChangeA)
	if err != nil {
		t.Fatalf("AddRoute A: %v", err)
	}
	routeB, err := rt.AddRoute(Fixed(shared), Fixed(geometry.Point{X: 0, Y: 100}), onChangeB)
	if err != nil {
		t.Fatalf("AddRoute B: %v", err)
	}

	rt.Route()

	idA, okA := routeA.GroupID()
	idB, okB := routeB.GroupID()
	if !okA || !okB {
		t.Fatalf("expected both routes to have a group id assigned")
	}
	if idA != idB {
		t.Errorf("routes sharing an endpoint got different group ids: %d vs %d", idA, idB)
	}
}

// S3: with bus sharing enabled, two routes from a shared start that both
// need to travel east before diverging reuse the shorter route's corridor
// instead of taking an equally-short but unmarked path, since reusing a
// same-group node is strictly cheaper than a fresh one once BusGain is in
// play (pkg/router/pathfinder.go's relaxedCost crossing/bus-gain term).
func TestBusSharingReusesShorterRoutesCorridor(t *testing.T) {
	opts := DefaultOptions(10)
	opts.Bus = true
	rt, err := NewRouter(opts)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}

	shared := geometry.Point{X: 0, Y: 0}
	onChangeA, pathA := collect(t)
	onChangeB, pathB := collect(t)
	if _, err := rt.AddRoute(Fixed(shared), Fixed(geometry.Point{X: 50, Y: 0}), onChangeA); err != nil {
		t.Fatalf("AddRoute A: %v", err)
	}
	if _, err := rt.AddRoute(Fixed(shared), Fixed(geometry.Point{X: 50, Y: 50}), onChangeB); err != nil {
		t.Fatalf("AddRoute B: %v", err)
	}

	rt.Route()

	wantA := []geometry.Point{{X: 0, Y: 0}, {X: 50, Y: 0}}
	if diff := cmp.Diff(wantA, pathA()); diff != "" {
		t.Errorf("route A path mismatch (-want +got):\n%s", diff)
	}

	wantB := []geometry.Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}}
	if diff := cmp.Diff(wantB, pathB()); diff != "" {
		t.Errorf("route B path mismatch (-want +got):\n%s", diff)
	}
}

// S4: two routes with no shared endpoints that are forced to cross still
// both reach their goals and do in fact pass through the shared grid node,
// which pathfinder_test.go's relaxedCost tests confirm costs CrossCost.
func TestCrossingRoutesBothReachGoals(t *testing.T) {
	rt := newTestRouter(t, 10)

	onChangeA, pathA := collect(t)
	onChangeB, pathB := collect(t)
	if _, err := rt.AddRoute(Fixed(geometry.Point{X: 0, Y: 0}), Fixed(geometry.Point{X: 100, Y: 0}), onChangeA); err != nil {
		t.Fatalf("AddRoute A: %v", err)
	}
	if _, err := rt.AddRoute(Fixed(geometry.Point{X: 50, Y: -50}), Fixed(geometry.Point{X: 50, Y: 50}), onChangeB); err != nil {
		t.Fatalf("AddRoute B: %v", err)
	}

	rt.Route()

	wantA := []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}
	if diff := cmp.Diff(wantA, pathA()); diff != "" {
		t.Errorf("route A path mismatch (-want +got):\n%s", diff)
	}
	wantB := []geometry.Point{{X: 50, Y: -50}, {X: 50, Y: 50}}
	if diff := cmp.Diff(wantB, pathB()); diff != "" {
		t.Errorf("route B path mismatch (-want +got):\n%s", diff)
	}

	crossing := geometry.Point{X: 50, Y: 0}
	if !passesThrough(pathA(), crossing) {
		t.Errorf("route A never passes through the crossing node %v", crossing)
	}
	if !passesThrough(pathB(), crossing) {
		t.Errorf("route B never passes through the crossing node %v", crossing)
	}
}

// passesThrough reports whether p lies on one of the polyline's segments,
// endpoints included. postProcess drops collinear interior points, so a
// node the search walked through need not be a vertex of the polyline.
func passesThrough(points []geometry.Point, p geometry.Point) bool {
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		if geometry.Cross(a, p, b) == 0 && endpointBounds(a, b).Contains(p) {
			return true
		}
	}
	return false
}

// S6: with diagonal moves enabled, a route whose goal lies on a pure
// 45-degree line from its start collapses to a single straight segment.
func TestDiagonalStraightSegment(t *testing.T) {
	opts := DefaultOptions(10)
	opts.Diagonal = true
	rt, err := NewRouter(opts)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}

	onChange, path := collect(t)
	start := geometry.Point{X: 0, Y: 0}
	goal := geometry.Point{X: 50, Y: 50}
	if _, err := rt.AddRoute(Fixed(start), Fixed(goal), onChange); err != nil {
		t.Fatalf("AddRoute: %v", err)
	}

	rt.Route()

	want := []geometry.Point{start, goal}
	if diff := cmp.Diff(want, path()); diff != "" {
		t.Errorf("diagonal path mismatch (-want +got):\n%s", diff)
	}
}

// S5: moving an endpoint between passes changes the resulting polyline's
// endpoint without requiring a new AddRoute call.
func TestMovingEndpointReroutesOnNextPass(t *testing.T) {
	rt := newTestRouter(t, 10)
	goalX := 100.0
	goalSource := FuncSource(func() geometry.Point { return geometry.Point{X: goalX, Y: 0} })

	onChange, path := collect(t)
	if _, err := rt.AddRoute(Fixed(geometry.Point{X: 0, Y: 0}), goalSource, onChange); err != nil {
		t.Fatalf("AddRoute: %v", err)
	}

	rt.Route()
	first := path()
	if got := first[len(first)-1]; got.X != 100 {
		t.Fatalf("first pass last point = %v, want X=100", got)
	}

	goalX = 200
	onChange2, path2 := collect(t)
	rt.routes[0].onChange = onChange2
	rt.Route()

	second := path2()
	if got := second[len(second)-1]; got.X != 200 {
		t.Errorf("second pass last point = %v, want X=200", got)
	}
}

// Universal property: Route() invokes each route's callback exactly once
// per pass, and endpoints in the returned polyline match the live source
// coordinates exactly (not grid-quantised).
func TestEndpointFidelity(t *testing.T) {
	rt := newTestRouter(t, 10)
	start := geometry.Point{X: 3, Y: 7}
	goal := geometry.Point{X: 93, Y: 41}
	onChange, path := collect(t)
	if _, err := rt.AddRoute(Fixed(start), Fixed(goal), onChange); err != nil {
		t.Fatalf("AddRoute: %v", err)
	}

	rt.Route()

	got := path()
	if got[0] != start {
		t.Errorf("start = %v, want %v", got[0], start)
	}
	if got[len(got)-1] != goal {
		t.Errorf("goal = %v, want %v", got[len(got)-1], goal)
	}
}

// Property: ExtendLimits is idempotent for a rectangle already strictly
// inside the current limits minus the margin. The obstacle gives limits
// {-10,-20,120,120}; the extend rectangle is at least 50 from every edge.
func TestExtendLimitsIdempotent(t *testing.T) {
	rt := newTestRouter(t, 10)
	rt.AddObstacle(geometry.Rectangle{Left: 0, Top: 0, Right: 100, Bottom: 100})
	before := rt.Limits()
	rt.allocate = false

	rt.ExtendLimits(geometry.Rectangle{Left: 40, Top: 40, Right: 60, Bottom: 60})

	if rt.Limits() != before {
		t.Errorf("limits changed on a no-op extend: before %v, after %v", before, rt.Limits())
	}
	if rt.allocate {
		t.Errorf("allocate flag set on a no-op extend")
	}
}

// AddRoute rejects a nil callback.
func TestAddRouteRejectsNilCallback(t *testing.T) {
	rt := newTestRouter(t, 10)
	_, err := rt.AddRoute(Fixed(geometry.Point{}), Fixed(geometry.Point{X: 1}), nil)
	if err == nil {
		t.Fatal("expected an error for a nil onChange callback")
	}
}

func TestNewRouterRejectsInvalidOptions(t *testing.T) {
	opts := DefaultOptions(10)
	opts.GridStep = 0
	if _, err := NewRouter(opts); err == nil {
		t.Fatal("expected an error for a non-positive grid step")
	}
}
