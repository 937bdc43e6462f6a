package engine2d

import (
	"math"

	"github.com/golang/geo/r2"
)

/// The closed set of edge variants.
type EdgeKind uint8

const (
	EdgeKindStraight EdgeKind = iota
	EdgeKindCircular
	edgeKindCount
)

func (k EdgeKind) String() string {
	switch k {
	case EdgeKindStraight:
		return "straight"
	case EdgeKindCircular:
		return "circular"
	}
	return "unknown"
}

/// An Edge is one segment of the boundary of a Polygon, running from
/// vertex1 to vertex2 in the direction the path is traversed. Points passed
/// to and returned from edge methods are in the body coordinates of the
/// owning Polygon unless the name says otherwise.
/// The only implementations are *StraightEdge and *CircularEdge.
type Edge interface {
	GetKind() EdgeKind

	/// Position of this edge in its polygon's edge list.
	GetIndex() int
	GetBody() *Polygon
	GetVertex1() *Vertex
	GetVertex2() *Vertex

	/// Auxiliary mid-point vertexes sampling a curved edge. Empty for
	/// straight edges.
	GetDecoratedVertexes() []*Vertex

	/// Signed radius of curvature: positive convex, negative concave, +Inf
	/// for straight.
	GetCurvature() float64

	/// Center and radius of a circle enclosing the edge, used for proximity
	/// rejection.
	GetCentroidBody() Vec2
	GetCentroidWorld() Vec2
	GetCentroidRadius() float64
	GetBoundsBody() r2.Rect

	/// Worst deviation between the edge and the polyline through its
	/// vertexes.
	ChordError() float64

	/// Maximum distance between the edge and the chord joining its ends.
	DepthOfArc() float64

	/// Distance from p to the farthest point of the edge.
	MaxDistanceTo(pBody Vec2) float64

	/// Signed distance along the local normal, positive outside the body.
	/// +Inf when p does not project onto the edge.
	DistanceToPoint(pBody Vec2) float64

	/// Signed distance to the infinite extension of the edge.
	DistanceToLine(pBody Vec2) float64

	/// Outward unit normal at the point on the edge nearest p.
	GetNormalBody(pBody Vec2) Vec2

	/// Point on the edge nearest p.
	GetPointOnEdge(pBody Vec2) Vec2

	/// Intersection points of the edge with the segment p1 to p2.
	Intersection(p1Body, p2Body Vec2) []Vec2

	BodyToEdge(pBody Vec2) Vec2
	EdgeToBody(pEdge Vec2) Vec2

	/// Returns true when the enclosing circles of the two edges come within
	/// swellage of each other.
	IntersectionPossible(other Edge, swellage float64) bool

	/// Tests this edge against an edge of another body, appending any
	/// contact or collision found.
	TestCollisionEdge(collisions []Collision, other Edge, time float64) []Collision

	/// Tests whether a vertex of another body crossed into this edge while
	/// moving from pBodyOld to pBody, appending the collision found.
	TestCollisionVertex(collisions []Collision, v *Vertex, pBody, pBodyOld Vec2, time float64) []Collision

	/// Returns a contact when v lies within distTol outside this edge, else nil.
	FindVertexContact(v *Vertex, pBody Vec2, distTol float64) *CornerEdgeCollision

	/// Recomputes a collision whose primary edge is this edge from the exact
	/// geometry of both edges at the current body positions.
	ImproveAccuracyEdge(rbc *RigidBodyCollision, other Edge) error

	String() string

	setIndex(index int)
	setVertex2(index int)
}

/// Fields and behavior shared by every edge variant.
type edgeBase struct {
	body           *Polygon
	index          int
	vertex1        int
	vertex2        int
	centroidBody   Vec2
	centroidRadius float64
}

func makeEdgeBase(body *Polygon, vertex1, vertex2 int) edgeBase {
	return edgeBase{
		body:    body,
		index:   noEdge,
		vertex1: vertex1,
		vertex2: vertex2,
	}
}

func (e *edgeBase) GetIndex() int {
	return e.index
}

func (e *edgeBase) GetBody() *Polygon {
	return e.body
}

func (e *edgeBase) GetVertex1() *Vertex {
	return &e.body.vertices[e.vertex1]
}

func (e *edgeBase) GetVertex2() *Vertex {
	return &e.body.vertices[e.vertex2]
}

func (e *edgeBase) GetCentroidBody() Vec2 {
	return e.centroidBody
}

func (e *edgeBase) GetCentroidWorld() Vec2 {
	return e.body.BodyToWorld(e.centroidBody)
}

/// A polygon with a special edge reports zero for every other edge.
func (e *edgeBase) GetCentroidRadius() float64 {
	if e.body.specialEdge != noEdge {
		if e.index == e.body.specialEdge {
			return e.body.specialRadius
		}
		return 0
	}
	return e.centroidRadius
}

func (e *edgeBase) active() bool {
	return e.body.specialEdge == noEdge || e.body.specialEdge == e.index
}

func (e *edgeBase) IntersectionPossible(other Edge, swellage float64) bool {
	if !e.active() || !other.GetBody().isActiveEdge(other) {
		return false
	}
	dist := Vec2Distance(e.GetCentroidWorld(), other.GetCentroidWorld())
	return dist <= e.GetCentroidRadius()+other.GetCentroidRadius()+swellage
}

func (e *edgeBase) setIndex(index int) {
	e.index = index
}

func (e *edgeBase) setVertex2(index int) {
	e.vertex2 = index
}

///////////////////////////////////////////////////////////////////////////////
/// Pairwise dispatch
///////////////////////////////////////////////////////////////////////////////

type edgeTestFunc func(collisions []Collision, self, other Edge, time float64) []Collision

type edgeImproveFunc func(rbc *RigidBodyCollision, self, other Edge) error

var edgeTests [edgeKindCount][edgeKindCount]edgeTestFunc

var edgeImprovers [edgeKindCount][edgeKindCount]edgeImproveFunc

func init() {
	// Straight against straight needs no edge test: the vertex tests find
	// every contact between two polygonal boundaries.
	edgeTests[EdgeKindStraight][EdgeKindStraight] = func(collisions []Collision, self, other Edge, time float64) []Collision {
		return collisions
	}
	edgeTests[EdgeKindStraight][EdgeKindCircular] = func(collisions []Collision, self, other Edge, time float64) []Collision {
		return CircleStraightTestCollision(collisions, other.(*CircularEdge), self.(*StraightEdge), time)
	}
	edgeTests[EdgeKindCircular][EdgeKindStraight] = func(collisions []Collision, self, other Edge, time float64) []Collision {
		return CircleStraightTestCollision(collisions, self.(*CircularEdge), other.(*StraightEdge), time)
	}
	edgeTests[EdgeKindCircular][EdgeKindCircular] = func(collisions []Collision, self, other Edge, time float64) []Collision {
		return CircleCircleTestCollision(collisions, self.(*CircularEdge), other.(*CircularEdge), time)
	}

	// Edge/edge collisions always have the curved edge as primary edge.
	edgeImprovers[EdgeKindStraight][EdgeKindStraight] = illegalImprove
	edgeImprovers[EdgeKindStraight][EdgeKindCircular] = illegalImprove
	edgeImprovers[EdgeKindCircular][EdgeKindStraight] = func(rbc *RigidBodyCollision, self, other Edge) error {
		return CircleStraightImproveAccuracy(rbc, self.(*CircularEdge), other.(*StraightEdge))
	}
	edgeImprovers[EdgeKindCircular][EdgeKindCircular] = func(rbc *RigidBodyCollision, self, other Edge) error {
		return CircleCircleImproveAccuracy(rbc, self.(*CircularEdge), other.(*CircularEdge))
	}
}

func illegalImprove(rbc *RigidBodyCollision, self, other Edge) error {
	assert(false, "improve accuracy with straight primary edge")
	return nil
}

func testCollisionEdge(collisions []Collision, self, other Edge, time float64) []Collision {
	return edgeTests[self.GetKind()][other.GetKind()](collisions, self, other, time)
}

func improveAccuracyEdge(rbc *RigidBodyCollision, self, other Edge) error {
	return edgeImprovers[self.GetKind()][other.GetKind()](rbc, self, other)
}

func rectFromVec2(points ...Vec2) r2.Rect {
	rect := r2.EmptyRect()
	for _, p := range points {
		rect = rect.AddPoint(r2.Point{X: p.X, Y: p.Y})
	}
	return rect
}

func isFinite(d float64) bool {
	return !math.IsInf(d, 0) && !math.IsNaN(d)
}
