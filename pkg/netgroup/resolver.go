// Package netgroup assigns each route a groupId such that routes sharing
// an endpoint coordinate end up in the same group. The assignment walks
// the "shares an endpoint" graph depth-first, the same shape
// road.Merger.Merge uses to walk the "shares an endpoint" graph of road
// segments and fuse connected ones - here routes are fused into a group
// id instead of a single merged segment.
package netgroup

import "github.com/orthonet/gridrouter/pkg/geometry"

// Endpoints is the minimal view of a route the resolver needs: its start
// and goal points, and whether it already carries a group id.
type Endpoints interface {
	Start() geometry.Point
	Goal() geometry.Point
	GroupID() (id int, assigned bool)
	SetGroupID(id int)
}

// Assign walks routes in order; every route lacking a group id gets one
// equal to its own index, which is then propagated to every later route
// sharing a start/goal coordinate with it, recursively. Because group ids
// persist across calls (spec.md §4.3 / §9), routes that already carry an
// id are left untouched and do not pass their id on to unassigned routes
// that share one of their endpoints.
func Assign(routes []Endpoints) {
	pointIndex := make(map[geometry.Point][]int, len(routes)*2)
	for i, r := range routes {
		pointIndex[r.Start()] = append(pointIndex[r.Start()], i)
		pointIndex[r.Goal()] = append(pointIndex[r.Goal()], i)
	}

	for i, r := range routes {
		if _, assigned := r.GroupID(); assigned {
			continue
		}
		propagate(routes, pointIndex, i, i)
	}
}

// propagate assigns groupID to routes[i], which must not yet carry a
// group id, and recurses into every unassigned route sharing one of
// routes[i]'s endpoints. Routes that already carry a (necessarily
// different, since group ids are sticky) id are left alone - that is how
// an earlier group boundary survives a later route touching the same
// point.
func propagate(routes []Endpoints, pointIndex map[geometry.Point][]int, i, groupID int) {
	r := routes[i]
	r.SetGroupID(groupID)

	for _, point := range [2]geometry.Point{r.Start(), r.Goal()} {
		for _, j := range pointIndex[point] {
			if j == i {
				continue
			}
			if _, assigned := routes[j].GroupID(); assigned {
				continue
			}
			propagate(routes, pointIndex, j, groupID)
		}
	}
}
