package engine2d

import (
	"fmt"
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

/// An arc of a circle from vertex1 to vertex2, traversed clockwise or
/// counter-clockwise about the center. When outsideIsOut is true the edge is
/// convex: the outside of the circle is the outside of the body. Otherwise
/// the edge is concave.
///
/// Every point of the arc has an angle, possibly after adding 2*pi, within
/// [angleLow, angleHigh]. angleLow is in [-pi, pi] and angleHigh is within
/// 2*pi of angleLow.
type CircularEdge struct {
	edgeBase

	centerBody     Vec2
	radius         float64
	clockwise      bool
	outsideIsOut   bool
	completeCircle bool

	startAngle  float64
	finishAngle float64
	arcRange    r1.Interval

	depth float64

	/// Angle between adjacent decorated vertexes.
	decorationAngle float64
	decorated       []Vertex
}

func newCircularEdge(body *Polygon, vertex1, vertex2 int, center Vec2, clockwise, outsideIsOut bool, spacing float64) (*CircularEdge, error) {
	p1 := body.vertices[vertex1].locBody
	p2 := body.vertices[vertex2].locBody

	radius := Vec2Distance(center, p1)
	r2 := Vec2Distance(center, p2)
	if math.Abs(radius-r2) > CircleTolerance {
		return nil, fmt.Errorf("circular edge center %v, radii %g and %g: %w", center, radius, r2, ErrUnequalRadius)
	}
	if radius < CircleTolerance {
		return nil, fmt.Errorf("circular edge center %v: %w", center, ErrRadiusTooSmall)
	}

	edge := &CircularEdge{
		edgeBase:     makeEdgeBase(body, vertex1, vertex2),
		centerBody:   center,
		radius:       radius,
		clockwise:    clockwise,
		outsideIsOut: outsideIsOut,
	}

	edge.startAngle = p1.Sub(center).Angle()
	edge.finishAngle = p2.Sub(center).Angle()

	var low, high float64
	if Vec2Distance(p1, p2) <= CircleTolerance {
		edge.completeCircle = true
		edge.finishAngle = edge.startAngle + 2*math.Pi
		low = edge.startAngle
		high = edge.finishAngle
	} else {
		if clockwise {
			low = edge.finishAngle
			high = edge.startAngle
		} else {
			low = edge.startAngle
			high = edge.finishAngle
		}
		if high < low {
			high += 2 * math.Pi
		}
	}
	edge.arcRange = r1.Interval{Lo: low, Hi: high}

	arc := edge.arcRange.Length()
	edge.depth = radius * (1 - math.Cos(arc/2))

	edge.decorate(spacing)

	if arc >= math.Pi {
		edge.centroidBody = center
		edge.centroidRadius = radius
	} else {
		edge.centroidBody = p1.Add(p2).Scale(0.5)
		edge.centroidRadius = Vec2Distance(p1, p2) / 2
	}
	return edge, nil
}

/// Decorated vertexes are spaced uniformly in angle, at most
/// MaxDecorationAngle apart and at most spacing apart along the arc.
func (edge *CircularEdge) decorate(spacing float64) {
	arc := edge.arcRange.Length()
	step := math.Min(MaxDecorationAngle, spacing/edge.radius)
	n := int(math.Ceil(arc/step - 1e-9))
	if n < 1 {
		n = 1
	}
	edge.decorationAngle = arc / float64(n)
	edge.decorated = make([]Vertex, 0, n-1)
	for i := 1; i < n; i++ {
		var angle float64
		if edge.clockwise {
			angle = edge.arcRange.Hi - float64(i)*edge.decorationAngle
		} else {
			angle = edge.arcRange.Lo + float64(i)*edge.decorationAngle
		}
		loc := edge.centerBody.Add(MakeVec2FromAngle(angle).Scale(edge.radius))
		edge.decorated = append(edge.decorated, makeVertex(edge.body, noEdge, loc, false))
	}
}

func (edge *CircularEdge) setIndex(index int) {
	edge.edgeBase.setIndex(index)
	for i := range edge.decorated {
		edge.decorated[i].edge1 = index
		edge.decorated[i].edge2 = index
	}
}

func (edge *CircularEdge) GetKind() EdgeKind {
	return EdgeKindCircular
}

func (edge *CircularEdge) GetCenterBody() Vec2 {
	return edge.centerBody
}

func (edge *CircularEdge) GetCenterWorld() Vec2 {
	return edge.body.BodyToWorld(edge.centerBody)
}

func (edge *CircularEdge) GetRadius() float64 {
	return edge.radius
}

func (edge *CircularEdge) IsClockwise() bool {
	return edge.clockwise
}

func (edge *CircularEdge) IsOutsideIsOut() bool {
	return edge.outsideIsOut
}

func (edge *CircularEdge) IsCompleteCircle() bool {
	return edge.completeCircle
}

func (edge *CircularEdge) GetStartAngle() float64 {
	return edge.startAngle
}

func (edge *CircularEdge) GetFinishAngle() float64 {
	return edge.finishAngle
}

func (edge *CircularEdge) GetAngleLow() float64 {
	return edge.arcRange.Lo
}

func (edge *CircularEdge) GetAngleHigh() float64 {
	return edge.arcRange.Hi
}

func (edge *CircularEdge) GetDecoratedVertexes() []*Vertex {
	res := make([]*Vertex, len(edge.decorated))
	for i := range edge.decorated {
		res[i] = &edge.decorated[i]
	}
	return res
}

func (edge *CircularEdge) GetCurvature() float64 {
	if edge.outsideIsOut {
		return edge.radius
	}
	return -edge.radius
}

/// Largest distance between the arc and the chord joining two adjacent
/// decorated vertexes.
func (edge *CircularEdge) ChordError() float64 {
	return edge.radius * (1 - math.Cos(edge.decorationAngle/2))
}

func (edge *CircularEdge) DepthOfArc() float64 {
	return edge.depth
}

/// Is the angle of p about the center within the arc?
func (edge *CircularEdge) IsWithinArc(pBody Vec2) bool {
	if edge.completeCircle {
		return true
	}
	return edge.containsAngle(pBody.Sub(edge.centerBody).Angle())
}

func (edge *CircularEdge) containsAngle(angle float64) bool {
	if angle < edge.arcRange.Lo {
		angle += 2 * math.Pi
	}
	return edge.arcRange.Contains(angle)
}

/// IsWithinArc for a point in world coordinates.
func (edge *CircularEdge) IsWithinArc2(pWorld Vec2) bool {
	if edge.completeCircle {
		return true
	}
	return edge.IsWithinArc(edge.body.WorldToBody(pWorld))
}

/// Is p within the arc rotated by pi about the center?
func (edge *CircularEdge) IsWithinReflectedArc(pBody Vec2) bool {
	return edge.IsWithinArc(edge.centerBody.Scale(2).Sub(pBody))
}

/// IsWithinReflectedArc for a point in world coordinates.
func (edge *CircularEdge) IsWithinReflectedArc2(pWorld Vec2) bool {
	return edge.IsWithinReflectedArc(edge.body.WorldToBody(pWorld))
}

func (edge *CircularEdge) GetBoundsBody() r2.Rect {
	rect := rectFromVec2(edge.GetVertex1().locBody, edge.GetVertex2().locBody)
	for i := 0; i < 4; i++ {
		angle := float64(i) * math.Pi / 2
		if edge.completeCircle || edge.containsAngle(NormalizeAngle(angle)) {
			p := edge.centerBody.Add(MakeVec2FromAngle(angle).Scale(edge.radius))
			rect = rect.AddPoint(r2.Point{X: p.X, Y: p.Y})
		}
	}
	return rect
}

func (edge *CircularEdge) MaxDistanceTo(pBody Vec2) float64 {
	d := pBody.Sub(edge.centerBody)
	length := d.Length()
	if length < Epsilon {
		return edge.radius
	}
	far := edge.centerBody.Sub(d.Scale(edge.radius / length))
	if edge.IsWithinArc(far) {
		return length + edge.radius
	}
	return math.Max(
		Vec2Distance(pBody, edge.GetVertex1().locBody),
		Vec2Distance(pBody, edge.GetVertex2().locBody),
	)
}

/// Edge coordinates are body coordinates translated to put the center at
/// the origin.
func (edge *CircularEdge) BodyToEdge(pBody Vec2) Vec2 {
	return pBody.Sub(edge.centerBody)
}

func (edge *CircularEdge) EdgeToBody(pEdge Vec2) Vec2 {
	return pEdge.Add(edge.centerBody)
}

func (edge *CircularEdge) DistanceToLine(pBody Vec2) float64 {
	length := Vec2Distance(pBody, edge.centerBody)
	if edge.outsideIsOut {
		return length - edge.radius
	}
	return edge.radius - length
}

func (edge *CircularEdge) DistanceToPoint(pBody Vec2) float64 {
	if !edge.IsWithinArc(pBody) {
		return math.Inf(1)
	}
	return edge.DistanceToLine(pBody)
}

/// The normal is undefined at the center of the circle.
func (edge *CircularEdge) GetNormalBody(pBody Vec2) Vec2 {
	d := pBody.Sub(edge.centerBody)
	assert(d.Length() > Epsilon, "normal requested at center of circle")
	n := d.Normalize()
	if !edge.outsideIsOut {
		n = n.Negate()
	}
	return n
}

func (edge *CircularEdge) GetPointOnEdge(pBody Vec2) Vec2 {
	d := pBody.Sub(edge.centerBody)
	length := d.Length()
	if length > Epsilon {
		q := edge.centerBody.Add(d.Scale(edge.radius / length))
		if edge.IsWithinArc(q) {
			return q
		}
	}
	p1 := edge.GetVertex1().locBody
	p2 := edge.GetVertex2().locBody
	if Vec2DistanceSquared(pBody, p1) <= Vec2DistanceSquared(pBody, p2) {
		return p1
	}
	return p2
}

// p = p1 + t * d
// |p - center|^2 = radius^2
func (edge *CircularEdge) Intersection(p1Body, p2Body Vec2) []Vec2 {
	d := p2Body.Sub(p1Body)
	f := p1Body.Sub(edge.centerBody)
	a := Vec2Dot(d, d)
	if a < Epsilon {
		return nil
	}
	b := 2 * Vec2Dot(f, d)
	c := Vec2Dot(f, f) - edge.radius*edge.radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}

	sq := math.Sqrt(disc)
	ts := []float64{(-b - sq) / (2 * a)}
	if sq > 0 {
		ts = append(ts, (-b+sq)/(2*a))
	}

	var res []Vec2
	for _, t := range ts {
		if t < 0 || t > 1 {
			continue
		}
		q := p1Body.Add(d.Scale(t))
		if edge.IsWithinArc(q) {
			res = append(res, q)
		}
	}
	return res
}

func (edge *CircularEdge) TestCollisionEdge(collisions []Collision, other Edge, time float64) []Collision {
	return testCollisionEdge(collisions, edge, other, time)
}

func (edge *CircularEdge) TestCollisionVertex(collisions []Collision, v *Vertex, pBody, pBodyOld Vec2, time float64) []Collision {
	if c := testVertexCrossing(edge, v, pBody, pBodyOld, time); c != nil {
		return AddCollision(collisions, c)
	}
	return collisions
}

func (edge *CircularEdge) FindVertexContact(v *Vertex, pBody Vec2, distTol float64) *CornerEdgeCollision {
	return findVertexContact(edge, v, pBody, distTol)
}

func (edge *CircularEdge) ImproveAccuracyEdge(rbc *RigidBodyCollision, other Edge) error {
	return improveAccuracyEdge(rbc, edge, other)
}

func (edge *CircularEdge) String() string {
	return fmt.Sprintf("CircularEdge{index: %d, body: %q, center: %v, radius: %g, clockwise: %v, outsideIsOut: %v, angles: [%g, %g]}",
		edge.index, edge.body.GetName(), edge.centerBody, edge.radius, edge.clockwise, edge.outsideIsOut,
		edge.arcRange.Lo, edge.arcRange.Hi)
}
