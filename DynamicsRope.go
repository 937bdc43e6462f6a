package engine2d

import (
	"fmt"
	"io"
	"math"
)

var RopeMode = struct {
	Rope uint8
	Rod  uint8
}{
	Rope: 0,
	Rod:  1,
}

/// Rope definition. A RestLength of zero takes the distance between the
/// attachment points at construction.
type RopeDef struct {
	ConnectorDef

	RestLength float64

	/// RopeMode.Rope or RopeMode.Rod.
	Mode uint8
}

func MakeRopeDef() RopeDef {
	res := RopeDef{}
	res.Name = "rope"
	res.Mode = RopeMode.Rope
	return res
}

/// A rope or rod between two attachment points. A rope only pulls: it is
/// active when stretched to within distanceTol of its rest length. A rod
/// keeps the attachment points exactly the rest length apart.
///
/// The rope behaves like a concave circle of radius equal to its length
/// centered at the attachment point on body1, with the attachment point on
/// body2 as a point object inside it. The collision normal points from
/// the attachment point on body2 toward the one on body1.
type Rope struct {
	connectorBase
	restLength float64
	mode       uint8
}

func NewRope(def RopeDef) (*Rope, error) {
	if err := def.validate(); err != nil {
		return nil, err
	}
	if def.Mode != RopeMode.Rope && def.Mode != RopeMode.Rod {
		return nil, fmt.Errorf("rope %q mode %d: %w", def.Name, def.Mode, ErrBadConnector)
	}
	if def.RestLength < 0 || math.IsNaN(def.RestLength) {
		return nil, fmt.Errorf("rope %q rest length %g: %w", def.Name, def.RestLength, ErrBadConnector)
	}
	rope := &Rope{
		connectorBase: makeConnectorBase(def.ConnectorDef),
		restLength:    def.RestLength,
		mode:          def.Mode,
	}
	if rope.restLength == 0 {
		rope.restLength = rope.GetLength()
	}
	if rope.restLength < Epsilon {
		return nil, fmt.Errorf("rope %q has zero length: %w", def.Name, ErrBadConnector)
	}
	return rope, nil
}

func (rope *Rope) IsRod() bool {
	return rope.mode == RopeMode.Rod
}

func (rope *Rope) GetRestLength() float64 {
	return rope.restLength
}

/// Current distance between the attachment points.
func (rope *Rope) GetLength() float64 {
	return Vec2Distance(rope.GetAttach1World(), rope.GetAttach2World())
}

/// How far the rope is stretched beyond its rest length.
func (rope *Rope) GetStretch() float64 {
	return rope.GetLength() - rope.restLength
}

func (rope *Rope) AddCollision(collisions []Collision, time float64) []Collision {
	if !rope.IsRod() {
		tol, _, _ := rope.tolerances()
		if rope.GetLength() < rope.restLength-tol {
			return collisions
		}
	}
	return append(collisions, rope.makeCollision(rope, rope.body2, rope.body1, time))
}

func (rope *Rope) UpdateCollision(c *ConnectorCollision) {
	p1 := rope.GetAttach1World()
	p2 := rope.GetAttach2World()
	v := p1.Sub(p2)
	length := v.Length()
	normal := MakeVec2(0, 1)
	if length > Epsilon {
		normal = v.Scale(1 / length)
	}

	c.Normal = normal
	c.Impact1 = p2
	c.Impact2 = p1
	c.HasImpact2 = true
	c.Distance = rope.restLength - length
	c.BallObject = false
	c.BallNormal = true
	c.Radius1 = 0
	if rope.IsRod() {
		c.Radius2 = -rope.restLength
	} else {
		c.Radius2 = -length
	}
	c.Joint = rope.IsRod()
	c.Contact = c.Joint || (c.Distance >= 0 && c.Distance <= c.DistanceTol)
}

/// Moves body2 along the line between the attachment points until the
/// rope is at its rest length. A slack rope is left alone.
func (rope *Rope) Align() {
	p1 := rope.GetAttach1World()
	p2 := rope.GetAttach2World()
	v := p2.Sub(p1)
	length := v.Length()
	if !rope.IsRod() {
		tol, _, _ := rope.tolerances()
		if length <= rope.restLength-tol/2 {
			return
		}
	}
	angle := -math.Pi / 2
	if length > Epsilon {
		angle = v.Angle()
	}
	target := p1.Add(MakeVec2FromAngle(angle).Scale(rope.restLength))
	rope.body2.AlignTo(rope.attach2, target, rope.body2.GetAngle())
}

func (rope *Rope) Dump(w io.Writer) {
	kind := "rope"
	if rope.IsRod() {
		kind = "rod"
	}
	fmt.Fprintf(w, "%s %q\n", kind, rope.name)
	fmt.Fprintf(w, "  body1 %s attach %v world %v\n", rope.body1.GetName(), rope.attach1, rope.GetAttach1World())
	fmt.Fprintf(w, "  body2 %s attach %v world %v\n", rope.body2.GetName(), rope.attach2, rope.GetAttach2World())
	fmt.Fprintf(w, "  restLength %g length %g stretch %g\n", rope.restLength, rope.GetLength(), rope.GetStretch())
}

func (rope *Rope) String() string {
	return fmt.Sprintf("Rope{name: %q, rod: %v, restLength: %g, length: %g}", rope.name, rope.IsRod(), rope.restLength, rope.GetLength())
}
