// Package grid implements the uniform lattice the router searches over:
// allocation, obstacle marking, and neighbour enumeration. Its allocation
// strategy - columns/rows computed up front, nodes stored in one flat
// slice indexed by row*columns+col - is grounded on the dense offset-array
// layout of an adjacency-array graph, adapted here from a static road
// network to a grid that is rebuilt fresh on every routing pass.
package grid

import (
	"math"

	"github.com/orthonet/gridrouter/internal/spatial"
	"github.com/orthonet/gridrouter/pkg/geometry"
	"github.com/orthonet/gridrouter/pkg/queue"
)

// Node is one lattice point. Parent is stored as a node index rather than
// a pointer, per the cyclic-reference note in the router's design: a
// search tree of indices has no reference cycles and packs into cache
// lines better than a tree of pointers.
type Node struct {
	queue.Item

	Col, Row int
	X, Y     float64
	Obstacle bool

	// Transient search fields, reset at the start of every per-route search.
	G, F      float64
	Parent    int // -1 if none
	Visited   bool
	Closed    bool

	// Persistent fields, reset when the grid is (re)initialized at the
	// start of a Route() pass.
	GroupCount int
	Groups     map[int]struct{}
}

// Score implements queue.Scored; the open heap orders nodes by F = G + h.
func (n *Node) Score() float64 { return n.F }

// Grid is the lattice overlaid on the current exploration limits.
type Grid struct {
	Columns, Rows int
	Step          float64
	Limits        geometry.Rectangle
	Nodes         []*Node
}

// New allocates a grid covering limits at the given spacing. obstacles is
// an already-built spatial index (see internal/spatial); pass nil for no
// obstacles.
func New(limits geometry.Rectangle, step float64, obstacles *spatial.ObstacleIndex) *Grid {
	g := &Grid{Step: step}
	g.init(limits, obstacles)
	return g
}

// Reallocate rebuilds the grid's node array for a new (larger) limits
// rectangle. The router itself builds a fresh grid with New when its
// limits grew, and does not call this method.
func (g *Grid) Reallocate(limits geometry.Rectangle, obstacles *spatial.ObstacleIndex) {
	g.init(limits, obstacles)
}

// Reinit replaces every node with a fresh one, in a newly allocated node
// slice sized from limits - used when the limits did not grow but a new
// Route() pass still needs a clean obstacle/groups snapshot.
func (g *Grid) Reinit(limits geometry.Rectangle, obstacles *spatial.ObstacleIndex) {
	g.init(limits, obstacles)
}

func (g *Grid) init(limits geometry.Rectangle, obstacles *spatial.ObstacleIndex) {
	g.Limits = limits
	columns := int(math.Floor(limits.Width()/g.Step)) + 1
	rows := int(math.Floor(limits.Height()/g.Step)) + 1
	if columns < 1 {
		columns = 1
	}
	if rows < 1 {
		rows = 1
	}
	g.Columns, g.Rows = columns, rows
	g.Nodes = make([]*Node, columns*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			x := limits.Left + float64(col)*g.Step
			y := limits.Top + float64(row)*g.Step
			obstacle := obstacles != nil && obstacles.ContainsPoint(x, y)
			g.Nodes[row*columns+col] = &Node{
				Col: col, Row: row, X: x, Y: y,
				Obstacle: obstacle,
				Parent:   -1,
				Groups:   make(map[int]struct{}),
			}
		}
	}
}

// ResetSearch clears the transient per-search fields of every node. Called
// at the start of every per-route A* search (spec invariant 5).
func (g *Grid) ResetSearch() {
	for _, n := range g.Nodes {
		n.Parent = -1
		n.Visited = false
		n.Closed = false
		n.G, n.F = 0, 0
	}
}

// At returns the node at (col, row).
func (g *Grid) At(col, row int) *Node {
	return g.Nodes[row*g.Columns+col]
}

// IndexOf returns n's flat index into g.Nodes, the representation used
// for Node.Parent chains so a search tree is a set of indices rather than
// a web of pointers.
func (g *Grid) IndexOf(n *Node) int { return n.Row*g.Columns + n.Col }

// NodeAt returns the node at flat index idx, or nil if idx is -1.
func (g *Grid) NodeAt(idx int) *Node {
	if idx < 0 {
		return nil
	}
	return g.Nodes[idx]
}

// Nearest rounds p to the nearest grid coordinate, clamped into
// [0,Columns-1] x [0,Rows-1] so an out-of-area endpoint never causes an
// out-of-bounds access (spec.md §7).
func (g *Grid) Nearest(p geometry.Point) *Node {
	col := int(math.Round((p.X - g.Limits.Left) / g.Step))
	row := int(math.Round((p.Y - g.Limits.Top) / g.Step))
	col = clamp(col, 0, g.Columns-1)
	row = clamp(row, 0, g.Rows-1)
	return g.At(col, row)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Neighbours returns the admissible 8-(or 4-)connected neighbours of n,
// excluding closed nodes. Diagonal neighbours are included only when
// diagonal is true.
func (g *Grid) Neighbours(n *Node, diagonal bool) []*Node {
	neighbours := make([]*Node, 0, 8)
	minCol, maxCol := max(n.Col-1, 0), min(n.Col+1, g.Columns-1)
	minRow, maxRow := max(n.Row-1, 0), min(n.Row+1, g.Rows-1)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if col == n.Col && row == n.Row {
				continue
			}
			isDiagonal := col != n.Col && row != n.Row
			if isDiagonal && !diagonal {
				continue
			}
			candidate := g.At(col, row)
			if candidate.Closed {
				continue
			}
			neighbours = append(neighbours, candidate)
		}
	}
	return neighbours
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
