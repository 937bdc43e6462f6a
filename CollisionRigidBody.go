package engine2d

import (
	"fmt"
	"math"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
/// Collision records
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// A contact or collision between two rigid bodies found during one
/// detection pass. Records are created fresh each pass, appended to a caller
/// supplied slice and discarded by the solver at the end of the step.
type Collision interface {
	/// Fields common to every kind of collision.
	Base() *RigidBodyCollision

	/// Recompute distance, normal and impact points from the current body
	/// positions.
	UpdateCollision(time float64)

	String() string
}

/// The normal points out of the normal body towards the primary body.
/// Distances are negative when the bodies interpenetrate.
type RigidBodyCollision struct {
	PrimaryBody RigidBody
	NormalBody  RigidBody

	/// Impact point on the primary body, world coordinates.
	Impact1 Vec2

	/// Impact point on the normal body; only valid when HasImpact2.
	Impact2    Vec2
	HasImpact2 bool

	/// World unit normal.
	Normal Vec2

	Distance float64

	/// Whether the impact is on a curved part of the primary body and of the
	/// normal body. The radii are signed: positive convex, negative concave.
	BallObject bool
	BallNormal bool
	Radius1    float64
	Radius2    float64

	/// A resting contact rather than an impact.
	Contact bool

	/// A bilateral constraint that is always a contact.
	Joint bool

	DetectedTime float64
	UpdateTime   float64

	DistanceTol float64
	VelocityTol float64
	Accuracy    float64

	/// Name of the test that produced this record.
	Creator string
}

func makeRigidBodyCollision(primary, normal RigidBody, time float64, creator string) RigidBodyCollision {
	return RigidBodyCollision{
		PrimaryBody:  primary,
		NormalBody:   normal,
		DetectedTime: time,
		UpdateTime:   time,
		DistanceTol:  primary.GetDistanceTol(),
		VelocityTol:  primary.GetVelocityTol(),
		Accuracy:     primary.GetAccuracy(),
		Creator:      creator,
	}
}

func (c *RigidBodyCollision) Base() *RigidBodyCollision {
	return c
}

func (c *RigidBodyCollision) GetDetectedTime() float64 {
	return c.DetectedTime
}

func (c *RigidBodyCollision) SetDetectedTime(time float64) {
	c.DetectedTime = time
}

func (c *RigidBodyCollision) IsContact() bool {
	return c.Contact
}

/// The gap the solver aims to leave between bodies after a collision.
func (c *RigidBodyCollision) TargetGap() float64 {
	if c.Joint {
		return 0
	}
	return c.DistanceTol / 2
}

/// Is the distance close enough to the target gap to handle this collision?
/// With allowTiny, any small positive gap below the target also counts.
func (c *RigidBodyCollision) CloseEnough(allowTiny bool) bool {
	if c.Contact || c.Joint {
		return true
	}
	target := c.TargetGap()
	if allowTiny && c.Distance > 0 && c.Distance < target {
		return true
	}
	return math.Abs(c.Distance-target) <= c.Accuracy*target
}

func (c *RigidBodyCollision) IsColliding() bool {
	return !c.Contact && c.Distance < 0
}

/// Relative velocity of the impact points along the normal. Negative when
/// the bodies approach each other.
func (c *RigidBodyCollision) NormalVelocity() float64 {
	v1 := c.PrimaryBody.GetVelocity(c.Impact1)
	p2 := c.Impact1
	if c.HasImpact2 {
		p2 = c.Impact2
	}
	v2 := c.NormalBody.GetVelocity(p2)
	return Vec2Dot(v1.Sub(v2), c.Normal)
}

/// Two collisions between the same bodies with nearly the same normal and
/// impact point are the same collision found by different tests.
func (c *RigidBodyCollision) similarTo(other *RigidBodyCollision) bool {
	if c.PrimaryBody != other.PrimaryBody || c.NormalBody != other.NormalBody {
		return false
	}
	if Vec2Dot(c.Normal, other.Normal) <= 0.9 {
		return false
	}
	return Vec2Distance(c.Impact1, other.Impact1) < 10*c.DistanceTol
}

func (c *RigidBodyCollision) UpdateCollision(time float64) {
	c.UpdateTime = time
}

func (c *RigidBodyCollision) String() string {
	kind := "collision"
	if c.Contact {
		kind = "contact"
	}
	return fmt.Sprintf("%s{%s primary: %s, normal: %s, distance: %.6f, normal: %v, impact1: %v, radius1: %g, radius2: %g, time: %g}",
		c.Creator, kind, c.PrimaryBody.GetName(), c.NormalBody.GetName(), c.Distance, c.Normal, c.Impact1,
		c.Radius1, c.Radius2, c.DetectedTime)
}

/// Appends c to collisions unless a similar collision is already present.
/// Of two similar collisions the one with the smaller distance is kept.
func AddCollision(collisions []Collision, c Collision) []Collision {
	base := c.Base()
	for i, existing := range collisions {
		if !existing.Base().similarTo(base) {
			continue
		}
		if base.Distance < existing.Base().Distance {
			collisions[i] = c
		}
		return collisions
	}
	return append(collisions, c)
}

///////////////////////////////////////////////////////////////////////////////
/// Edge against edge
///////////////////////////////////////////////////////////////////////////////

/// Collision between a curved primary edge and another edge.
type EdgeEdgeCollision struct {
	RigidBodyCollision
	PrimaryEdge Edge
	NormalEdge  Edge
}

/// Refinement errors are not returned here; Detector.UpdateCollision
/// counts and logs them.
func (c *EdgeEdgeCollision) UpdateCollision(time float64) {
	c.RigidBodyCollision.UpdateCollision(time)
	_ = c.improveAccuracy()
}

func (c *EdgeEdgeCollision) improveAccuracy() error {
	return c.PrimaryEdge.ImproveAccuracyEdge(&c.RigidBodyCollision, c.NormalEdge)
}

func (c *EdgeEdgeCollision) String() string {
	return fmt.Sprintf("EdgeEdge%s primary edge %d, normal edge %d", c.RigidBodyCollision.String(),
		c.PrimaryEdge.GetIndex(), c.NormalEdge.GetIndex())
}

///////////////////////////////////////////////////////////////////////////////
/// Vertex against edge
///////////////////////////////////////////////////////////////////////////////

/// Collision between a vertex of the primary body and an edge of the normal
/// body.
type CornerEdgeCollision struct {
	RigidBodyCollision
	Vertex     *Vertex
	NormalEdge Edge
}

func (c *CornerEdgeCollision) UpdateCollision(time float64) {
	c.RigidBodyCollision.UpdateCollision(time)
	cornerEdgeGeometry(&c.RigidBodyCollision, c.Vertex, c.NormalEdge)
}

func (c *CornerEdgeCollision) String() string {
	return fmt.Sprintf("CornerEdge%s vertex %d, normal edge %d", c.RigidBodyCollision.String(),
		c.Vertex.GetID(), c.NormalEdge.GetIndex())
}

///////////////////////////////////////////////////////////////////////////////
/// Vertex against vertex
///////////////////////////////////////////////////////////////////////////////

/// Collision between a vertex of the primary body and an endpoint vertex of
/// the normal body. The normal is fixed in the normal body's frame when the
/// collision is found.
type CornerCornerCollision struct {
	RigidBodyCollision
	Vertex       *Vertex
	NormalVertex *Vertex
	normalBody   Vec2
}

func (c *CornerCornerCollision) UpdateCollision(time float64) {
	c.RigidBodyCollision.UpdateCollision(time)
	cornerCornerGeometry(&c.RigidBodyCollision, c.Vertex, c.NormalVertex, c.normalBody)
}

func (c *CornerCornerCollision) String() string {
	return fmt.Sprintf("CornerCorner%s vertex %d, normal vertex %d", c.RigidBodyCollision.String(),
		c.Vertex.GetID(), c.NormalVertex.GetID())
}

///////////////////////////////////////////////////////////////////////////////
/// Connector
///////////////////////////////////////////////////////////////////////////////

/// Collision synthesized by a connector such as a rope or joint.
type ConnectorCollision struct {
	RigidBodyCollision
	Connector Connector
}

func (c *ConnectorCollision) UpdateCollision(time float64) {
	c.RigidBodyCollision.UpdateCollision(time)
	c.Connector.UpdateCollision(c)
}

func (c *ConnectorCollision) String() string {
	return fmt.Sprintf("Connector%s connector %s", c.RigidBodyCollision.String(), c.Connector.GetName())
}
