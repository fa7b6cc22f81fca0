package router

import "github.com/orthonet/gridrouter/pkg/geometry"

// postProcess turns a grid-aligned point sequence into the clean polyline
// the callback receives: collinear interior points removed, then the
// inner vertices and the endpoints themselves shifted onto the route's
// live (non-quantised) coordinates. Grounded on the collinearity test
// used to simplify traced polylines before vectorizing them, adapted
// from a distance-threshold simplification to an exact elimination since
// the grid never produces near-collinear noise, only exactly collinear
// runs.
func postProcess(points []geometry.Point, start, goal geometry.Point) []geometry.Point {
	points = eliminateCollinear(points)
	alignEndpoints(points, start, goal)
	anchorEndpoints(points, start, goal)
	return points
}

func eliminateCollinear(points []geometry.Point) []geometry.Point {
	for i := 1; i < len(points)-1; {
		if geometry.Cross(points[i-1], points[i], points[i+1]) == 0 {
			points = append(points[:i], points[i+1:]...)
			continue
		}
		i++
	}
	return points
}

func alignEndpoints(points []geometry.Point, start, goal geometry.Point) {
	if len(points) < 2 {
		return
	}
	if points[1].X == points[0].X {
		points[1].X = start.X
	} else if points[1].Y == points[0].Y {
		points[1].Y = start.Y
	}

	last := len(points) - 1
	if points[last-1].X == points[last].X {
		points[last-1].X = goal.X
	} else if points[last-1].Y == points[last].Y {
		points[last-1].Y = goal.Y
	}
}

func anchorEndpoints(points []geometry.Point, start, goal geometry.Point) {
	if len(points) == 0 {
		return
	}
	points[0] = start
	points[len(points)-1] = goal
}
