package engine2d

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

/// A straight line segment from vertex1 to vertex2. The outside of the body
/// is the side with larger body y coordinate when outsideIsUp is true; for a
/// vertical edge "up" means larger body x coordinate.
type StraightEdge struct {
	edgeBase

	outsideIsUp bool

	/// Unit vector from vertex1 towards vertex2.
	direction Vec2

	/// Outward unit normal.
	normalBody Vec2

	length float64
}

func newStraightEdge(body *Polygon, vertex1, vertex2 int, outsideIsUp bool) (*StraightEdge, error) {
	p1 := body.vertices[vertex1].locBody
	p2 := body.vertices[vertex2].locBody
	length := Vec2Distance(p1, p2)
	if length < CircleTolerance {
		return nil, fmt.Errorf("straight edge from %v to %v: %w", p1, p2, ErrDegenerateEdge)
	}

	edge := &StraightEdge{
		edgeBase:    makeEdgeBase(body, vertex1, vertex2),
		outsideIsUp: outsideIsUp,
		length:      length,
	}
	edge.direction = p2.Sub(p1).Scale(1.0 / length)

	normal := edge.direction.Skew()
	vertical := math.Abs(p2.X-p1.X) < CircleTolerance
	if vertical {
		if (normal.X > 0) != outsideIsUp {
			normal = normal.Negate()
		}
	} else if (normal.Y > 0) != outsideIsUp {
		normal = normal.Negate()
	}
	edge.normalBody = normal

	edge.centroidBody = p1.Add(p2).Scale(0.5)
	edge.centroidRadius = length / 2

	return edge, nil
}

func (edge *StraightEdge) GetKind() EdgeKind {
	return EdgeKindStraight
}

func (edge *StraightEdge) IsOutsideIsUp() bool {
	return edge.outsideIsUp
}

func (edge *StraightEdge) GetLength() float64 {
	return edge.length
}

func (edge *StraightEdge) GetDecoratedVertexes() []*Vertex {
	return nil
}

func (edge *StraightEdge) GetCurvature() float64 {
	return math.Inf(1)
}

func (edge *StraightEdge) ChordError() float64 {
	return 0
}

func (edge *StraightEdge) DepthOfArc() float64 {
	return 0
}

func (edge *StraightEdge) GetBoundsBody() r2.Rect {
	return rectFromVec2(edge.GetVertex1().locBody, edge.GetVertex2().locBody)
}

func (edge *StraightEdge) MaxDistanceTo(pBody Vec2) float64 {
	return math.Max(
		Vec2Distance(pBody, edge.GetVertex1().locBody),
		Vec2Distance(pBody, edge.GetVertex2().locBody),
	)
}

/// Edge coordinates have vertex1 at the origin and the edge along the
/// positive x-axis.
func (edge *StraightEdge) BodyToEdge(pBody Vec2) Vec2 {
	d := pBody.Sub(edge.GetVertex1().locBody)
	return MakeVec2(Vec2Dot(d, edge.direction), Vec2Dot(d, edge.direction.Skew()))
}

func (edge *StraightEdge) EdgeToBody(pEdge Vec2) Vec2 {
	return edge.GetVertex1().locBody.
		Add(edge.direction.Scale(pEdge.X)).
		Add(edge.direction.Skew().Scale(pEdge.Y))
}

func (edge *StraightEdge) DistanceToLine(pBody Vec2) float64 {
	return Vec2Dot(edge.normalBody, pBody.Sub(edge.GetVertex1().locBody))
}

func (edge *StraightEdge) DistanceToPoint(pBody Vec2) float64 {
	t := Vec2Dot(edge.direction, pBody.Sub(edge.GetVertex1().locBody))
	if t < 0 || t > edge.length {
		return math.Inf(1)
	}
	return edge.DistanceToLine(pBody)
}

func (edge *StraightEdge) GetNormalBody(pBody Vec2) Vec2 {
	return edge.normalBody
}

func (edge *StraightEdge) GetPointOnEdge(pBody Vec2) Vec2 {
	p1 := edge.GetVertex1().locBody
	t := Vec2Dot(edge.direction, pBody.Sub(p1))
	t = math.Max(0, math.Min(edge.length, t))
	return p1.Add(edge.direction.Scale(t))
}

// p = p1 + t * r
// v = v1 + s * e
// dot(normal, p - v1) = 0
func (edge *StraightEdge) Intersection(p1Body, p2Body Vec2) []Vec2 {
	v1 := edge.GetVertex1().locBody
	r := p2Body.Sub(p1Body)

	numerator := Vec2Dot(edge.normalBody, v1.Sub(p1Body))
	denominator := Vec2Dot(edge.normalBody, r)
	if denominator == 0.0 {
		return nil
	}

	t := numerator / denominator
	if t < 0.0 || 1.0 < t {
		return nil
	}

	q := p1Body.Add(r.Scale(t))
	s := Vec2Dot(q.Sub(v1), edge.direction)
	if s < 0.0 || edge.length < s {
		return nil
	}
	return []Vec2{q}
}

func (edge *StraightEdge) TestCollisionEdge(collisions []Collision, other Edge, time float64) []Collision {
	return testCollisionEdge(collisions, edge, other, time)
}

func (edge *StraightEdge) TestCollisionVertex(collisions []Collision, v *Vertex, pBody, pBodyOld Vec2, time float64) []Collision {
	if c := testVertexCrossing(edge, v, pBody, pBodyOld, time); c != nil {
		return AddCollision(collisions, c)
	}
	return collisions
}

func (edge *StraightEdge) FindVertexContact(v *Vertex, pBody Vec2, distTol float64) *CornerEdgeCollision {
	return findVertexContact(edge, v, pBody, distTol)
}

func (edge *StraightEdge) ImproveAccuracyEdge(rbc *RigidBodyCollision, other Edge) error {
	return improveAccuracyEdge(rbc, edge, other)
}

func (edge *StraightEdge) String() string {
	return fmt.Sprintf("StraightEdge{index: %d, body: %q, v1: %v, v2: %v, outsideIsUp: %v}",
		edge.index, edge.body.GetName(), edge.GetVertex1().locBody, edge.GetVertex2().locBody, edge.outsideIsUp)
}
