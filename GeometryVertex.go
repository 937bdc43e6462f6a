package engine2d

import (
	"fmt"
	"math"
)

const noEdge = -1

/// A point on the boundary of a Polygon. Endpoint vertexes define the path of
/// the polygon and are shared by the previous edge (edge1) and the next edge
/// (edge2). Decorated mid-point vertexes are generated on curved edges to
/// sample the curve for collision testing; both of their edges are the edge
/// they lie on.
type Vertex struct {
	id       int
	locBody  Vec2
	endPoint bool
	edge1    int
	edge2    int
	body     *Polygon
}

func makeVertex(body *Polygon, id int, locBody Vec2, endPoint bool) Vertex {
	return Vertex{
		id:       id,
		locBody:  locBody,
		endPoint: endPoint,
		edge1:    noEdge,
		edge2:    noEdge,
		body:     body,
	}
}

func (v *Vertex) GetID() int {
	return v.id
}

/// Location in body coordinates.
func (v *Vertex) LocBody() Vec2 {
	return v.locBody
}

func (v *Vertex) IsEndPoint() bool {
	return v.endPoint
}

func (v *Vertex) GetBody() *Polygon {
	return v.body
}

/// The edge ending at this vertex, or nil while the path is still open.
func (v *Vertex) GetEdge1() Edge {
	if v.edge1 == noEdge {
		return nil
	}
	return v.body.edges[v.edge1]
}

/// The edge starting at this vertex, or nil while the path is still open.
func (v *Vertex) GetEdge2() Edge {
	if v.edge2 == noEdge {
		return nil
	}
	return v.body.edges[v.edge2]
}

/// Signed radius of curvature at this vertex: positive for convex, negative
/// for concave, +Inf on a straight edge or at a sharp corner. An endpoint
/// joining two arcs of the same circle is not a corner.
func (v *Vertex) GetCurvature() float64 {
	e1 := v.GetEdge1()
	e2 := v.GetEdge2()
	switch {
	case e1 == nil && e2 == nil:
		return math.Inf(1)
	case e1 == nil:
		return e2.GetCurvature()
	case e2 == nil || !v.endPoint || e1 == e2:
		return e1.GetCurvature()
	}
	c1, ok1 := e1.(*CircularEdge)
	c2, ok2 := e2.(*CircularEdge)
	if ok1 && ok2 && c1.outsideIsOut == c2.outsideIsOut &&
		math.Abs(c1.radius-c2.radius) < CircleTolerance &&
		Vec2Distance(c1.centerBody, c2.centerBody) < CircleTolerance {
		return c1.GetCurvature()
	}
	return math.Inf(1)
}

func (v *Vertex) String() string {
	kind := "mid"
	if v.endPoint {
		kind = "end"
	}
	return fmt.Sprintf("Vertex{id: %d, %s, locBody: %v, edge1: %d, edge2: %d}", v.id, kind, v.locBody, v.edge1, v.edge2)
}
