package router

import (
	"slices"

	"github.com/orthonet/gridrouter/pkg/geometry"
	"github.com/orthonet/gridrouter/pkg/grid"
	"github.com/orthonet/gridrouter/pkg/queue"
)

// searchStats mirrors the counters path.Navigator exposes
// (GetPqPops/GetPqUpdates/GetEdgeRelaxations) so a caller benchmarking
// the router can see search effort the same way the teacher's benchmark
// CLI reports Dijkstra/CH performance.
type searchStats struct {
	pqPops   int
	pqPushes int
	relaxed  int
}

// findPath runs one A* search for route against g, applying every cost
// component from spec.md §4.5, then returns the grid-aligned point chain
// from the nearest-start node to the node the search actually ended on
// (the goal node if reached, otherwise the last node popped).
func findPath(g *grid.Grid, route *Route, opts Options, obstacleCost float64, stats *searchStats) []geometry.Point {
	g.ResetSearch()

	distance := opts.resolvedDistance()
	startNode := g.Nearest(route.Start())
	goalNode := g.Nearest(route.Goal())
	goalPoint := geometry.Point{X: goalNode.X, Y: goalNode.Y}

	open := queue.NewMinHeap[*grid.Node]()
	startNode.G = 0
	startNode.F = distance(geometry.Point{X: startNode.X, Y: startNode.Y}, goalPoint)
	startNode.Visited = true
	open.Push(startNode)
	stats.pqPushes++

	current := startNode
	for open.Len() > 0 {
		current = open.Pop()
		stats.pqPops++
		if current == goalNode {
			break
		}
		current.Closed = true

		for _, n := range g.Neighbours(current, opts.Diagonal) {
			stats.relaxed++
			candidateG := relaxedCost(g, current, n, goalPoint, route, opts, obstacleCost, distance)

			if !n.Visited {
				n.Parent = g.IndexOf(current)
				n.G = candidateG
				n.F = candidateG + distance(geometry.Point{X: n.X, Y: n.Y}, goalPoint)
				n.Visited = true
				open.Push(n)
				stats.pqPushes++
			} else if candidateG < n.G {
				n.Parent = g.IndexOf(current)
				n.G = candidateG
				n.F = candidateG + distance(geometry.Point{X: n.X, Y: n.Y}, goalPoint)
				if queue.InHeap(n) {
					open.Rescore(n)
				}
			}
		}
	}

	chain := walkChain(g, current, route)
	return chain
}

// relaxedCost computes the candidate g-score for moving current -> n,
// applying the turn, obstacle, proximity/group-bias and crossing/bus-gain
// terms described in spec.md §4.5.
func relaxedCost(g *grid.Grid, current, n *grid.Node, goal geometry.Point, route *Route, opts Options, obstacleCost float64, distance DistanceFunc) float64 {
	currentPoint := geometry.Point{X: current.X, Y: current.Y}
	nPoint := geometry.Point{X: n.X, Y: n.Y}
	cost := current.G + distance(currentPoint, nPoint)

	if current.Parent != -1 {
		parent := g.NodeAt(current.Parent)
		parentPoint := geometry.Point{X: parent.X, Y: parent.Y}
		if geometry.Cross(parentPoint, currentPoint, nPoint) != 0 {
			cost += opts.TurnCost
		}
	}

	if n.Obstacle {
		cost += obstacleCost
	}

	groupID, _ := route.GroupID()
	for _, m := range g.Neighbours(n, opts.Diagonal) {
		_, inGroup := m.Groups[groupID]
		if !opts.Bus || !inGroup {
			cost += opts.ProximityCost * float64(m.GroupCount)
		}
		if m.Obstacle {
			cost += opts.ProximityCost
		}
	}

	if _, inGroup := n.Groups[groupID]; opts.Bus && inGroup {
		cost -= opts.BusGain
	} else {
		cost += opts.CrossCost * float64(n.GroupCount)
	}

	return cost
}

// walkChain walks the parent chain from end back to its root, marking
// each visited node with route's group id (spec.md §4.5 step 5), and
// returns the chain in start-to-end order.
func walkChain(g *grid.Grid, end *grid.Node, route *Route) []geometry.Point {
	groupID, _ := route.GroupID()

	var reversed []geometry.Point
	for n := end; n != nil; {
		reversed = append(reversed, geometry.Point{X: n.X, Y: n.Y})
		if _, seen := n.Groups[groupID]; !seen {
			n.Groups[groupID] = struct{}{}
			n.GroupCount++
		}
		n = g.NodeAt(n.Parent)
	}

	slices.Reverse(reversed)
	return reversed
}
