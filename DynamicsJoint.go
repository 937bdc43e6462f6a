package engine2d

import "fmt"

var CoordType = struct {
	Body  uint8
	World uint8
}{
	Body:  0,
	World: 1,
}

/// Joint definition. Normal is in world coordinates or in body2
/// coordinates according to NormalType.
type JointDef struct {
	ConnectorDef

	NormalType uint8
	Normal     Vec2
}

func MakeJointDef() JointDef {
	res := JointDef{}
	res.Name = "joint"
	res.NormalType = CoordType.World
	res.Normal = MakeVec2(0, 1)
	return res
}

/// A bilateral constraint keeping the two attachment points together along
/// the joint normal. A pair of joints with perpendicular normals pins two
/// bodies together at a point.
type Joint struct {
	connectorBase
	normalType uint8
	normal     Vec2
}

func NewJoint(def JointDef) (*Joint, error) {
	if err := def.validate(); err != nil {
		return nil, err
	}
	if def.NormalType != CoordType.Body && def.NormalType != CoordType.World {
		return nil, fmt.Errorf("joint %q normal type %d: %w", def.Name, def.NormalType, ErrBadConnector)
	}
	if def.Normal.Length() < Epsilon {
		return nil, fmt.Errorf("joint %q has zero normal: %w", def.Name, ErrBadConnector)
	}
	return &Joint{
		connectorBase: makeConnectorBase(def.ConnectorDef),
		normalType:    def.NormalType,
		normal:        def.Normal.Normalize(),
	}, nil
}

/// The joint normal in world coordinates.
func (joint *Joint) GetNormalWorld() Vec2 {
	if joint.normalType == CoordType.Body {
		return joint.body2.RotateBodyToWorld(joint.normal)
	}
	return joint.normal
}

func (joint *Joint) AddCollision(collisions []Collision, time float64) []Collision {
	return append(collisions, joint.makeCollision(joint, joint.body1, joint.body2, time))
}

func (joint *Joint) UpdateCollision(c *ConnectorCollision) {
	p1 := joint.GetAttach1World()
	p2 := joint.GetAttach2World()
	n := joint.GetNormalWorld()

	c.Normal = n
	c.Impact1 = p1
	c.Impact2 = p2
	c.HasImpact2 = true
	c.Distance = Vec2Dot(p1.Sub(p2), n)
	c.BallObject = false
	c.BallNormal = false
	c.Radius1 = 0
	c.Radius2 = 0
	c.Joint = true
	c.Contact = true
}

/// Moves body2 so that its attachment point coincides with body1's.
func (joint *Joint) Align() {
	joint.body2.AlignTo(joint.attach2, joint.GetAttach1World(), joint.body2.GetAngle())
}

func (joint *Joint) String() string {
	return fmt.Sprintf("Joint{name: %q, normal: %v, gap: %v}", joint.name, joint.GetNormalWorld(),
		joint.GetAttach1World().Sub(joint.GetAttach2World()))
}
