// Package geometry provides the rectangle and point primitives shared by
// the grid, the group resolver and the router.
package geometry

import "math"

// Point is a coordinate in exploration-area space.
type Point struct {
	X, Y float64
}

// Rectangle is an axis-aligned bound: Left <= Right, Top <= Bottom. The
// containment tests below treat all four edges as inclusive.
type Rectangle struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent of the rectangle.
func (r Rectangle) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of the rectangle.
func (r Rectangle) Height() float64 { return r.Bottom - r.Top }

// Contains reports whether p lies within the rectangle's inclusive bounds.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// ContainsRect reports whether other lies inside r; shared edges count as
// inside.
func (r Rectangle) ContainsRect(other Rectangle) bool {
	return other.Left >= r.Left && other.Right <= r.Right &&
		other.Top >= r.Top && other.Bottom <= r.Bottom
}

// Center returns the rectangle's midpoint.
func (r Rectangle) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rectangle) Union(other Rectangle) Rectangle {
	return Rectangle{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Expand grows r by margin on the top, right and bottom edges and by left on
// the left edge, matching the asymmetric headroom extendLimits applies.
func (r Rectangle) Expand(left, margin float64) Rectangle {
	return Rectangle{
		Left:   r.Left - left,
		Top:    r.Top - margin,
		Right:  r.Right + margin,
		Bottom: r.Bottom + margin,
	}
}

// Manhattan returns the taxicab distance between p and q.
func Manhattan(p, q Point) float64 {
	return math.Abs(p.X-q.X) + math.Abs(p.Y-q.Y)
}

// Diagonal returns the octile (chebyshev-with-diagonal-credit) distance
// between p and q: diagonal moves are charged sqrt(2), straight moves 1.
func Diagonal(p, q Point) float64 {
	dx := math.Abs(p.X - q.X)
	dy := math.Abs(p.Y - q.Y)
	return math.Abs(dx-dy) + math.Min(dx, dy)*math.Sqrt2
}

// Cross returns the Z component of the cross product of (b-a) and (c-b),
// zero iff a, b, c are collinear.
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
}
