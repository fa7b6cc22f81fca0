// Package spatial accelerates obstacle-containment queries for the grid
// and router packages. It is a pure performance accessory: every query it
// answers could also be answered (more slowly) by a linear scan over the
// obstacle list, which is exactly what it falls back to for the candidates
// a quadtree query narrows down to.
package spatial

import (
	"math"

	"github.com/asim/quadtree"

	"github.com/orthonet/gridrouter/pkg/geometry"
)

// ObstacleIndex answers "does this point lie inside any obstacle" queries
// against the current obstacle rectangle list, using a quadtree keyed on
// obstacle centers the way pathTree in a schematic cleaner indexes path
// endpoints: broad-phase by a quadtree range query, narrow-phase by an
// exact containment test on the handful of candidates it returns.
type ObstacleIndex struct {
	tree        *quadtree.QuadTree
	maxHalfSpan float64
}

// Build constructs an index over obstacles. limits must contain every
// obstacle rectangle; it becomes the quadtree's bounding region.
func Build(obstacles []geometry.Rectangle, limits geometry.Rectangle) *ObstacleIndex {
	width := limits.Width()
	height := limits.Height()
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	center := limits.Center()
	aabb := quadtree.NewAABB(
		quadtree.NewPoint(center.X, center.Y, nil),
		quadtree.NewPoint(width/2, height/2, nil),
	)
	idx := &ObstacleIndex{tree: quadtree.New(aabb, 4, nil)}
	for _, obstacle := range obstacles {
		c := obstacle.Center()
		idx.tree.Insert(quadtree.NewPoint(c.X, c.Y, obstacle))
		halfSpan := math.Max(obstacle.Width(), obstacle.Height()) / 2
		if halfSpan > idx.maxHalfSpan {
			idx.maxHalfSpan = halfSpan
		}
	}
	return idx
}

// ContainsPoint reports whether (x, y) lies within the inclusive bounds of
// any indexed obstacle.
func (idx *ObstacleIndex) ContainsPoint(x, y float64) bool {
	if idx == nil || idx.tree == nil {
		return false
	}
	search := geometry.Point{X: x, Y: y}
	span := idx.maxHalfSpan
	if span <= 0 {
		return false
	}
	candidates := idx.tree.Search(quadtree.NewAABB(
		quadtree.NewPoint(x, y, nil),
		quadtree.NewPoint(span, span, nil),
	))
	for _, candidate := range candidates {
		rect, ok := candidate.Data().(geometry.Rectangle)
		if ok && rect.Contains(search) {
			return true
		}
	}
	return false
}
