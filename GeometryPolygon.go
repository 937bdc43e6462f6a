package engine2d

import (
	"fmt"
	"io"
	"math"

	"github.com/golang/geo/r2"
)

/// A rigid body whose boundary is one or more closed paths of edges.
/// Polygons are assembled with a PolygonBuilder; once finished the
/// vertex/edge structure never changes. Only the body transform, the
/// non-collide sets, the tolerances and the elasticity may change afterwards.
///
/// Body coordinates are the coordinates the polygon was built in. The center
/// of mass sits at cmBody in body coordinates and at the position in world
/// coordinates.
type Polygon struct {
	name string

	vertices []Vertex
	edges    []Edge

	/// Index of the starting vertex of each closed path.
	paths []int

	finished bool

	centroidBody   Vec2
	centroidRadius float64
	bounds         r2.Rect
	minHeight      float64

	specialEdge   int
	specialRadius float64

	nonCollideBodies map[*Polygon]struct{}
	nonCollideEdges  map[Edge]struct{}

	cmBody     Vec2
	mass       float64
	moment     float64
	elasticity float64
	dragPoints []Vec2

	xf              Transform
	velocity        Vec2
	angularVelocity float64

	xfOld  Transform
	hasOld bool

	tolerances Tolerances
}

func newPolygon(name string) *Polygon {
	return &Polygon{
		name:             name,
		specialEdge:      noEdge,
		nonCollideBodies: make(map[*Polygon]struct{}),
		nonCollideEdges:  make(map[Edge]struct{}),
		mass:             1,
		elasticity:       1,
		xf:               MakeTransform(),
		xfOld:            MakeTransform(),
		tolerances:       DefaultTolerances(),
		bounds:           r2.EmptyRect(),
	}
}

func (p *Polygon) GetName() string {
	return p.name
}

func (p *Polygon) IsFinished() bool {
	return p.finished
}

///////////////////////////////////////////////////////////////////////////////
/// Coordinates
///////////////////////////////////////////////////////////////////////////////

func (p *Polygon) BodyToWorld(pBody Vec2) Vec2 {
	return TransformVec2Mul(p.xf, pBody.Sub(p.cmBody))
}

func (p *Polygon) WorldToBody(pWorld Vec2) Vec2 {
	return TransformVec2MulT(p.xf, pWorld).Add(p.cmBody)
}

func (p *Polygon) RotateBodyToWorld(vBody Vec2) Vec2 {
	return RotVec2Mul(p.xf.Q, vBody)
}

func (p *Polygon) RotateWorldToBody(vWorld Vec2) Vec2 {
	return RotVec2MulT(p.xf.Q, vWorld)
}

/// Position of the body as of the last SaveOldCoords. Falls back to the
/// current position when no old coordinates were saved.
func (p *Polygon) BodyToWorldOld(pBody Vec2) Vec2 {
	if !p.hasOld {
		return p.BodyToWorld(pBody)
	}
	return TransformVec2Mul(p.xfOld, pBody.Sub(p.cmBody))
}

func (p *Polygon) WorldToBodyOld(pWorld Vec2) Vec2 {
	if !p.hasOld {
		return p.WorldToBody(pWorld)
	}
	return TransformVec2MulT(p.xfOld, pWorld).Add(p.cmBody)
}

/// Remember the current transform; called once per step before collision
/// detection.
func (p *Polygon) SaveOldCoords() {
	p.xfOld = p.xf
	p.hasOld = true
}

func (p *Polygon) EraseOldCoords() {
	p.hasOld = false
}

func (p *Polygon) HasOldCoords() bool {
	return p.hasOld
}

func (p *Polygon) GetPosition() Vec2 {
	return p.xf.P
}

func (p *Polygon) GetAngle() float64 {
	return p.xf.Q.GetAngle()
}

func (p *Polygon) GetTransform() Transform {
	return p.xf
}

/// Set the world position of the center of mass and the angle.
func (p *Polygon) SetPosition(position Vec2, angle float64) {
	p.xf = MakeTransformFromPositionAndAngle(position, angle)
}

func (p *Polygon) AlignTo(pBody, pWorld Vec2, angle float64) {
	q := MakeRotFromAngle(angle)
	p.xf = Transform{
		P: pWorld.Sub(RotVec2Mul(q, pBody.Sub(p.cmBody))),
		Q: q,
	}
}

func (p *Polygon) SetVelocity(velocity Vec2, angularVelocity float64) {
	p.velocity = velocity
	p.angularVelocity = angularVelocity
}

func (p *Polygon) GetLinearVelocity() Vec2 {
	return p.velocity
}

func (p *Polygon) GetAngularVelocity() float64 {
	return p.angularVelocity
}

func (p *Polygon) GetVelocity(pWorld Vec2) Vec2 {
	return p.velocity.Add(Vec2CrossScalarVector(p.angularVelocity, pWorld.Sub(p.xf.P)))
}

///////////////////////////////////////////////////////////////////////////////
/// Mass and tolerances
///////////////////////////////////////////////////////////////////////////////

func (p *Polygon) GetMass() float64 {
	return p.mass
}

/// Set the mass; the moment of inertia scales with it.
func (p *Polygon) SetMass(mass float64) {
	if p.mass > 0 {
		p.moment *= mass / p.mass
	}
	p.mass = mass
}

func (p *Polygon) GetMomentAboutCM() float64 {
	return p.moment
}

func (p *Polygon) SetMomentAboutCM(moment float64) {
	p.moment = moment
}

func (p *Polygon) GetCenterOfMassBody() Vec2 {
	return p.cmBody
}

func (p *Polygon) GetDragPoints() []Vec2 {
	return append([]Vec2(nil), p.dragPoints...)
}

func (p *Polygon) GetElasticity() float64 {
	return p.elasticity
}

func (p *Polygon) SetElasticity(elasticity float64) {
	p.elasticity = elasticity
}

func (p *Polygon) GetTolerances() Tolerances {
	return p.tolerances
}

func (p *Polygon) SetTolerances(t Tolerances) error {
	if err := t.Validate(); err != nil {
		return err
	}
	p.tolerances = t
	return nil
}

func (p *Polygon) GetDistanceTol() float64 {
	return p.tolerances.DistanceTol
}

func (p *Polygon) GetVelocityTol() float64 {
	return p.tolerances.VelocityTol
}

func (p *Polygon) GetAccuracy() float64 {
	return p.tolerances.Accuracy
}

///////////////////////////////////////////////////////////////////////////////
/// Structure
///////////////////////////////////////////////////////////////////////////////

/// Endpoint vertexes followed by the decorated vertexes of each curved edge.
func (p *Polygon) GetVertexes() []*Vertex {
	res := make([]*Vertex, 0, len(p.vertices))
	for i := range p.vertices {
		res = append(res, &p.vertices[i])
	}
	for _, e := range p.edges {
		res = append(res, e.GetDecoratedVertexes()...)
	}
	return res
}

func (p *Polygon) GetEdges() []Edge {
	return append([]Edge(nil), p.edges...)
}

func (p *Polygon) GetEdge(index int) (Edge, error) {
	if index < 0 || index >= len(p.edges) {
		return nil, fmt.Errorf("edge %d of %q: %w", index, p.name, ErrEdgeIndex)
	}
	return p.edges[index], nil
}

func (p *Polygon) GetPaths() int {
	return len(p.paths)
}

func (p *Polygon) GetBoundsBody() r2.Rect {
	return p.bounds
}

/// World space axis aligned box containing the body at its current position.
func (p *Polygon) GetBoundsWorld() r2.Rect {
	return p.boundsWorld(p.BodyToWorld)
}

/// Box containing the body at its current and old positions.
func (p *Polygon) GetSweptBoundsWorld() r2.Rect {
	rect := p.GetBoundsWorld()
	if p.hasOld {
		rect = rect.Union(p.boundsWorld(p.BodyToWorldOld))
	}
	return rect
}

func (p *Polygon) boundsWorld(toWorld func(Vec2) Vec2) r2.Rect {
	rect := r2.EmptyRect()
	for _, v := range p.bounds.Vertices() {
		w := toWorld(MakeVec2(v.X, v.Y))
		rect = rect.AddPoint(r2.Point{X: w.X, Y: w.Y})
	}
	return rect
}

func (p *Polygon) GetCentroidBody() Vec2 {
	return p.centroidBody
}

func (p *Polygon) GetCentroidWorld() Vec2 {
	return p.BodyToWorld(p.centroidBody)
}

func (p *Polygon) GetCentroidRadius() float64 {
	return p.centroidRadius
}

/// Smallest distance from the center of mass to the line of any edge.
func (p *Polygon) GetMinHeight() float64 {
	return p.minHeight
}

func (p *Polygon) computeMinHeight() float64 {
	h := math.Inf(1)
	for _, e := range p.edges {
		d := math.Abs(e.DistanceToLine(p.cmBody))
		if d < h {
			h = d
		}
	}
	return h
}

///////////////////////////////////////////////////////////////////////////////
/// Special edge
///////////////////////////////////////////////////////////////////////////////

/// Make the straight edge at index the only edge tested for collisions.
/// radius replaces the centroid radius of that edge and should enclose the
/// whole body.
func (p *Polygon) SetSpecialEdge(index int, radius float64) error {
	e, err := p.GetEdge(index)
	if err != nil {
		return err
	}
	if e.GetKind() != EdgeKindStraight {
		return fmt.Errorf("edge %d of %q: %w", index, p.name, ErrNotStraightEdge)
	}
	p.specialEdge = index
	p.specialRadius = radius
	return nil
}

/// The special edge, or nil when the polygon has none.
func (p *Polygon) GetSpecialEdge() *StraightEdge {
	if p.specialEdge == noEdge {
		return nil
	}
	return p.edges[p.specialEdge].(*StraightEdge)
}

func (p *Polygon) isActiveEdge(e Edge) bool {
	return p.specialEdge == noEdge || p.specialEdge == e.GetIndex()
}

///////////////////////////////////////////////////////////////////////////////
/// Non-collide sets
///////////////////////////////////////////////////////////////////////////////

/// Exempt each pair of this polygon and other from collision testing.
func (p *Polygon) AddNonCollide(others ...*Polygon) {
	for _, other := range others {
		p.nonCollideBodies[other] = struct{}{}
		other.nonCollideBodies[p] = struct{}{}
	}
}

func (p *Polygon) RemoveNonCollide(others ...*Polygon) {
	for _, other := range others {
		delete(p.nonCollideBodies, other)
		delete(other.nonCollideBodies, p)
	}
}

func (p *Polygon) DoesNotCollide(other *Polygon) bool {
	if p == other {
		return true
	}
	_, ok := p.nonCollideBodies[other]
	return ok
}

/// Exempt edges of other bodies from colliding with this polygon's edges.
func (p *Polygon) AddNonCollideEdge(edges ...Edge) {
	for _, e := range edges {
		p.nonCollideEdges[e] = struct{}{}
	}
}

func (p *Polygon) NonCollideEdge(e Edge) bool {
	_, ok := p.nonCollideEdges[e]
	return ok
}

///////////////////////////////////////////////////////////////////////////////
/// Consistency
///////////////////////////////////////////////////////////////////////////////

/// Verifies that every path is a single cycle through the vertex/edge links
/// back to its starting vertex, and that every edge belongs to exactly one
/// path.
func (p *Polygon) CheckConsistent() error {
	if len(p.edges) == 0 {
		return fmt.Errorf("polygon %q: %w", p.name, ErrEmptyPolygon)
	}
	visited := make([]bool, len(p.edges))
	count := 0
	for _, start := range p.paths {
		v := start
		for {
			e := p.vertices[v].edge2
			if e == noEdge {
				return fmt.Errorf("polygon %q: vertex %d has no next edge: %w", p.name, v, ErrInconsistentPath)
			}
			edge := p.edges[e]
			if edge.GetVertex1().id != v {
				return fmt.Errorf("polygon %q: edge %d does not start at vertex %d: %w", p.name, e, v, ErrInconsistentPath)
			}
			if visited[e] {
				return fmt.Errorf("polygon %q: edge %d visited twice: %w", p.name, e, ErrInconsistentPath)
			}
			visited[e] = true
			count++
			next := edge.GetVertex2().id
			if p.vertices[next].edge1 != e {
				return fmt.Errorf("polygon %q: vertex %d does not end edge %d: %w", p.name, next, e, ErrInconsistentPath)
			}
			v = next
			if v == start {
				break
			}
		}
	}
	if count != len(p.edges) {
		return fmt.Errorf("polygon %q: %d of %d edges on a path: %w", p.name, count, len(p.edges), ErrInconsistentPath)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
/// Collision
///////////////////////////////////////////////////////////////////////////////

/// Appends the contacts and collisions between this polygon and other using
/// a default Detector.
func (p *Polygon) CheckCollision(collisions []Collision, other *Polygon, time float64) []Collision {
	return MakeDetector().CheckCollision(collisions, p, other, time)
}

func (p *Polygon) Dump(w io.Writer) {
	fmt.Fprintf(w, "Polygon %q\n", p.name)
	fmt.Fprintf(w, "  position %v angle %g mass %g moment %g\n", p.GetPosition(), p.GetAngle(), p.mass, p.moment)
	fmt.Fprintf(w, "  centroid %v radius %g minHeight %g\n", p.centroidBody, p.centroidRadius, p.minHeight)
	for _, e := range p.edges {
		fmt.Fprintf(w, "  %v\n", e)
	}
	for _, v := range p.GetVertexes() {
		fmt.Fprintf(w, "  %v\n", v)
	}
}

func (p *Polygon) String() string {
	return fmt.Sprintf("Polygon{name: %q, edges: %d, vertexes: %d, position: %v, angle: %g}",
		p.name, len(p.edges), len(p.vertices), p.GetPosition(), p.GetAngle())
}
