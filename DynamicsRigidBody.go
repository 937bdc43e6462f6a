package engine2d

import "math"

/// The rigid body abstraction consumed by collision detection and connectors.
/// Body coordinates are fixed to the body; world coordinates are fixed to
/// the simulation.
type RigidBody interface {
	GetName() string

	/// Transform a point from body to world coordinates.
	BodyToWorld(pBody Vec2) Vec2

	/// Transform a point from world to body coordinates.
	WorldToBody(pWorld Vec2) Vec2

	/// Rotate a direction from body to world coordinates.
	RotateBodyToWorld(vBody Vec2) Vec2

	/// Rotate a direction from world to body coordinates.
	RotateWorldToBody(vWorld Vec2) Vec2

	/// World location of the center of mass.
	GetPosition() Vec2
	GetAngle() float64

	/// Velocity of the body point currently at pWorld.
	GetVelocity(pWorld Vec2) Vec2

	GetMass() float64
	GetDistanceTol() float64
	GetVelocityTol() float64
	GetAccuracy() float64

	/// Move the body so that body point pBody is at world point pWorld with
	/// the given angle.
	AlignTo(pBody, pWorld Vec2, angle float64)
}

/// The Scrim is the immovable background that connectors attach to when
/// they are anchored to the world. Body and world coordinates coincide.
type Scrim struct {
	tolerances Tolerances
}

func MakeScrim() Scrim {
	return Scrim{
		tolerances: DefaultTolerances(),
	}
}

func NewScrim() *Scrim {
	res := MakeScrim()
	return &res
}

func (s *Scrim) GetName() string {
	return "scrim"
}

func (s *Scrim) BodyToWorld(pBody Vec2) Vec2 {
	return pBody
}

func (s *Scrim) WorldToBody(pWorld Vec2) Vec2 {
	return pWorld
}

func (s *Scrim) RotateBodyToWorld(vBody Vec2) Vec2 {
	return vBody
}

func (s *Scrim) RotateWorldToBody(vWorld Vec2) Vec2 {
	return vWorld
}

func (s *Scrim) GetPosition() Vec2 {
	return MakeVec2(0, 0)
}

func (s *Scrim) GetAngle() float64 {
	return 0
}

func (s *Scrim) GetVelocity(pWorld Vec2) Vec2 {
	return MakeVec2(0, 0)
}

func (s *Scrim) GetMass() float64 {
	return math.Inf(1)
}

func (s *Scrim) GetDistanceTol() float64 {
	return s.tolerances.DistanceTol
}

func (s *Scrim) GetVelocityTol() float64 {
	return s.tolerances.VelocityTol
}

func (s *Scrim) GetAccuracy() float64 {
	return s.tolerances.Accuracy
}

func (s *Scrim) SetTolerances(t Tolerances) {
	s.tolerances = t
}

/// The scrim never moves.
func (s *Scrim) AlignTo(pBody, pWorld Vec2, angle float64) {}
