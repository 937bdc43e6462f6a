package engine2d

import "fmt"

/// A connector joins two bodies and synthesizes the collisions that keep
/// them joined. Connectors are immutable after construction.
type Connector interface {
	GetName() string
	GetBody1() RigidBody
	GetBody2() RigidBody

	/// Appends the connector's collision when it is active.
	AddCollision(collisions []Collision, time float64) []Collision

	/// Recomputes c from the current body positions.
	UpdateCollision(c *ConnectorCollision)

	/// Moves body2 so that the connector is satisfied.
	Align()
}

/// Connector definitions are used to construct connectors.
type ConnectorDef struct {
	Name string

	/// The first attached body and the attachment point in its body
	/// coordinates.
	Body1       RigidBody
	Attach1Body Vec2

	/// The second attached body and the attachment point in its body
	/// coordinates.
	Body2       RigidBody
	Attach2Body Vec2

	/// Set this flag to true if the attached bodies should collide.
	CollideConnected bool
}

func (def ConnectorDef) validate() error {
	if def.Body1 == nil || def.Body2 == nil {
		return fmt.Errorf("connector %q missing body: %w", def.Name, ErrBadConnector)
	}
	if def.Body1 == def.Body2 {
		return fmt.Errorf("connector %q joins %s to itself: %w", def.Name, def.Body1.GetName(), ErrBadConnector)
	}
	return nil
}

type connectorBase struct {
	name    string
	body1   RigidBody
	attach1 Vec2
	body2   RigidBody
	attach2 Vec2
}

func makeConnectorBase(def ConnectorDef) connectorBase {
	if !def.CollideConnected {
		p1, ok1 := def.Body1.(*Polygon)
		p2, ok2 := def.Body2.(*Polygon)
		if ok1 && ok2 {
			p1.AddNonCollide(p2)
		}
	}
	return connectorBase{
		name:    def.Name,
		body1:   def.Body1,
		attach1: def.Attach1Body,
		body2:   def.Body2,
		attach2: def.Attach2Body,
	}
}

func (c *connectorBase) GetName() string {
	return c.name
}

func (c *connectorBase) GetBody1() RigidBody {
	return c.body1
}

func (c *connectorBase) GetBody2() RigidBody {
	return c.body2
}

func (c *connectorBase) GetAttach1Body() Vec2 {
	return c.attach1
}

func (c *connectorBase) GetAttach2Body() Vec2 {
	return c.attach2
}

func (c *connectorBase) GetAttach1World() Vec2 {
	return c.body1.BodyToWorld(c.attach1)
}

func (c *connectorBase) GetAttach2World() Vec2 {
	return c.body2.BodyToWorld(c.attach2)
}

// The smaller tolerances of the two bodies.
func (c *connectorBase) tolerances() (distanceTol, velocityTol, accuracy float64) {
	distanceTol = minFloat(c.body1.GetDistanceTol(), c.body2.GetDistanceTol())
	velocityTol = minFloat(c.body1.GetVelocityTol(), c.body2.GetVelocityTol())
	accuracy = minFloat(c.body1.GetAccuracy(), c.body2.GetAccuracy())
	return
}

func (c *connectorBase) makeCollision(self Connector, primary, normal RigidBody, time float64) *ConnectorCollision {
	res := &ConnectorCollision{
		RigidBodyCollision: makeRigidBodyCollision(primary, normal, time, c.name),
		Connector:          self,
	}
	res.DistanceTol, res.VelocityTol, res.Accuracy = c.tolerances()
	self.UpdateCollision(res)
	return res
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
