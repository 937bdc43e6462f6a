package engine2d

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

/// Assembles a Polygon one path at a time:
///
///	b := NewPolygonBuilder("block")
///	b.StartPath(MakeVec2(-1, -1))
///	b.AddStraightEdge(MakeVec2(1, -1), false)
///	...
///	poly, err := b.Finish()
///
/// Each new edge must start at the last vertex of the open path. An edge
/// ending at the first vertex of the path closes it. After Finish the
/// builder is spent and every method returns ErrFinished.
type PolygonBuilder struct {
	poly *Polygon

	pathOpen   bool
	pathStart  int
	lastVertex int
}

func NewPolygonBuilder(name string) *PolygonBuilder {
	return &PolygonBuilder{
		poly:       newPolygon(name),
		pathStart:  noEdge,
		lastVertex: noEdge,
	}
}

/// Tolerances must be set before adding curved edges since the decoration
/// spacing is fixed when an edge is made.
func (b *PolygonBuilder) SetTolerances(t Tolerances) error {
	if b.poly == nil {
		return ErrFinished
	}
	return b.poly.SetTolerances(t)
}

/// Begin a new path at p, closing the current path first.
func (b *PolygonBuilder) StartPath(p Vec2) (int, error) {
	if b.poly == nil {
		return noEdge, ErrFinished
	}
	if b.pathOpen {
		if err := b.ClosePath(); err != nil {
			return noEdge, err
		}
	}
	v := b.AddVertex(p)
	b.pathOpen = true
	b.pathStart = v
	b.lastVertex = v
	b.poly.paths = append(b.poly.paths, v)
	return v, nil
}

/// Add a free endpoint vertex at p and return its index.
func (b *PolygonBuilder) AddVertex(p Vec2) int {
	assert(b.poly != nil, "add vertex to finished polygon")
	index := len(b.poly.vertices)
	b.poly.vertices = append(b.poly.vertices, makeVertex(b.poly, index, p, true))
	return index
}

func (b *PolygonBuilder) GetVertexBody(index int) Vec2 {
	return b.poly.vertices[index].locBody
}

func (b *PolygonBuilder) checkVertex(index int) error {
	if b.poly == nil {
		return ErrFinished
	}
	if index < 0 || index >= len(b.poly.vertices) {
		return fmt.Errorf("vertex %d: %w", index, ErrVertexMismatch)
	}
	return nil
}

func (b *PolygonBuilder) MakeStraightEdge(vertex1, vertex2 int, outsideIsUp bool) (*StraightEdge, error) {
	if err := b.checkVertex(vertex1); err != nil {
		return nil, err
	}
	if err := b.checkVertex(vertex2); err != nil {
		return nil, err
	}
	return newStraightEdge(b.poly, vertex1, vertex2, outsideIsUp)
}

func (b *PolygonBuilder) MakeCircularEdge(vertex1, vertex2 int, center Vec2, clockwise, outsideIsOut bool) (*CircularEdge, error) {
	if err := b.checkVertex(vertex1); err != nil {
		return nil, err
	}
	if err := b.checkVertex(vertex2); err != nil {
		return nil, err
	}
	return newCircularEdge(b.poly, vertex1, vertex2, center, clockwise, outsideIsOut, b.poly.tolerances.Spacing)
}

/// Append e to the open path. e must start at the last vertex of the path.
func (b *PolygonBuilder) AddEdge(e Edge) error {
	if b.poly == nil {
		return ErrFinished
	}
	if !b.pathOpen {
		return ErrNoOpenPath
	}
	if e.GetBody() != b.poly {
		return fmt.Errorf("edge belongs to %q: %w", e.GetBody().GetName(), ErrVertexMismatch)
	}
	v1 := e.GetVertex1().id
	v2 := e.GetVertex2().id
	if v1 != b.lastVertex {
		return fmt.Errorf("edge starts at vertex %d, path ends at vertex %d: %w", v1, b.lastVertex, ErrVertexMismatch)
	}

	index := len(b.poly.edges)
	e.setIndex(index)
	b.poly.edges = append(b.poly.edges, e)
	b.poly.vertices[v1].edge2 = index
	b.poly.vertices[v2].edge1 = index
	b.lastVertex = v2
	if v2 == b.pathStart {
		b.pathOpen = false
	}
	return nil
}

/// The vertex an edge ending at p should end on: the path's first vertex
/// when p is within tolerance of it, otherwise a new vertex.
func (b *PolygonBuilder) endVertex(p Vec2, tolerance float64) int {
	if Vec2Distance(p, b.poly.vertices[b.pathStart].locBody) <= tolerance {
		return b.pathStart
	}
	return b.AddVertex(p)
}

func (b *PolygonBuilder) openCheck() error {
	if b.poly == nil {
		return ErrFinished
	}
	if !b.pathOpen {
		return ErrNoOpenPath
	}
	return nil
}

/// Add a straight edge from the last vertex of the open path to p.
func (b *PolygonBuilder) AddStraightEdge(p Vec2, outsideIsUp bool) (*StraightEdge, error) {
	if err := b.openCheck(); err != nil {
		return nil, err
	}
	start := len(b.poly.vertices)
	v2 := b.endVertex(p, PathCloseTolerance)
	e, err := b.MakeStraightEdge(b.lastVertex, v2, outsideIsUp)
	if err == nil {
		err = b.AddEdge(e)
	}
	if err != nil {
		b.poly.vertices = b.poly.vertices[:start]
		return nil, err
	}
	return e, nil
}

/// Add a circular arc from the last vertex of the open path to p about
/// center. An arc ending where it starts is a full circle.
func (b *PolygonBuilder) AddCircularEdge(p, center Vec2, clockwise, outsideIsOut bool) (*CircularEdge, error) {
	if err := b.openCheck(); err != nil {
		return nil, err
	}
	// Only an end point that coincides with the start makes a full circle.
	start := len(b.poly.vertices)
	v2 := b.endVertex(p, CircleTolerance)
	e, err := b.MakeCircularEdge(b.lastVertex, v2, center, clockwise, outsideIsOut)
	if err == nil {
		err = b.AddEdge(e)
	}
	if err != nil {
		b.poly.vertices = b.poly.vertices[:start]
		return nil, err
	}
	return e, nil
}

/// Add a circular arc of the given radius from the last vertex of the open
/// path to p. Of the two possible centers, aboveRight picks the one above the
/// chord, or to the right of a vertical chord.
func (b *PolygonBuilder) AddCircularEdge2(p Vec2, radius float64, aboveRight, clockwise, outsideIsOut bool) (*CircularEdge, error) {
	if err := b.openCheck(); err != nil {
		return nil, err
	}
	p1 := b.poly.vertices[b.lastVertex].locBody
	center, err := findArcCenter(p1, p, radius, aboveRight)
	if err != nil {
		return nil, err
	}
	return b.AddCircularEdge(p, center, clockwise, outsideIsOut)
}

// The center lies on the perpendicular bisector of the chord p1-p2 at
// distance sqrt(r^2 - h^2) from the chord midpoint, h being half the chord.
func findArcCenter(p1, p2 Vec2, radius float64, aboveRight bool) (Vec2, error) {
	chord := p2.Sub(p1)
	length := chord.Length()
	h := length / 2
	if radius < h-CircleTolerance {
		return Vec2{}, fmt.Errorf("radius %g for chord of length %g: %w", radius, length, ErrRadiusTooSmall)
	}
	d := math.Sqrt(math.Max(0, radius*radius-h*h))
	mid := p1.Add(p2).Scale(0.5)

	if math.Abs(chord.X) < CircleTolerance {
		if aboveRight {
			return mid.Add(MakeVec2(d, 0)), nil
		}
		return mid.Sub(MakeVec2(d, 0)), nil
	}

	perp := chord.Skew().Scale(1 / length)
	if perp.Y < 0 {
		perp = perp.Negate()
	}
	if aboveRight {
		return mid.Add(perp.Scale(d)), nil
	}
	return mid.Sub(perp.Scale(d)), nil
}

/// Close the open path. When the last vertex duplicates the first vertex of
/// the path the two are merged.
func (b *PolygonBuilder) ClosePath() error {
	if b.poly == nil {
		return ErrFinished
	}
	if !b.pathOpen {
		return nil
	}
	last := b.lastVertex
	start := b.pathStart
	vertices := b.poly.vertices
	if last == start || Vec2Distance(vertices[last].locBody, vertices[start].locBody) > PathCloseTolerance {
		return fmt.Errorf("path of %q from vertex %d ends at vertex %d: %w", b.poly.name, start, last, ErrPathNotClosed)
	}

	e := vertices[last].edge1
	b.poly.edges[e].setVertex2(start)
	vertices[start].edge1 = e
	vertices[last].edge1 = noEdge
	if last == len(vertices)-1 {
		b.poly.vertices = vertices[:last]
	}
	b.lastVertex = start
	b.pathOpen = false
	return nil
}

/// Freeze the polygon: close any open path, check the structure, compute
/// derived geometry and hand over the finished Polygon.
func (b *PolygonBuilder) Finish() (*Polygon, error) {
	if b.poly == nil {
		return nil, ErrFinished
	}
	if b.pathOpen {
		if err := b.ClosePath(); err != nil {
			return nil, err
		}
	}
	p := b.poly
	if err := p.CheckConsistent(); err != nil {
		return nil, err
	}

	id := len(p.vertices)
	for _, e := range p.edges {
		for _, v := range e.GetDecoratedVertexes() {
			v.id = id
			id++
		}
	}

	p.bounds = r2.EmptyRect()
	for _, e := range p.edges {
		p.bounds = p.bounds.AddRect(e.GetBoundsBody())
	}

	center := p.bounds.Center()
	p.cmBody = MakeVec2(center.X, center.Y)
	size := p.bounds.Size()
	p.moment = p.mass * (size.X*size.X + size.Y*size.Y) / 12
	p.dragPoints = []Vec2{p.cmBody}
	p.xf = MakeTransformFromPositionAndAngle(p.cmBody, 0)

	centroid, radius, err := computeCentroid(p)
	if err != nil {
		return nil, fmt.Errorf("polygon %q: %w", p.name, err)
	}
	p.centroidBody = centroid
	p.centroidRadius = radius
	p.minHeight = p.computeMinHeight()

	p.finished = true
	b.poly = nil
	return p, nil
}
