package engine2d

import (
	"fmt"
	"math"
)

/// Closest approach of two circular edges in world coordinates.
type circleCircleGeometry struct {
	/// Unit normal pointing out of the normal (other) edge's body.
	normal Vec2

	/// Impact points on self and on other.
	impact1 Vec2
	impact2 Vec2

	distance float64
}

// At least one of the edges must be convex.
func computeCircleCircle(self, other *CircularEdge) (circleCircleGeometry, bool) {
	cs := self.GetCenterWorld()
	co := other.GetCenterWorld()
	rs := self.radius
	ro := other.radius

	d := cs.Sub(co)
	length := d.Length()
	if length < CircleTolerance {
		return circleCircleGeometry{}, false
	}
	u := d.Scale(1 / length)

	var g circleCircleGeometry
	switch {
	case self.outsideIsOut && other.outsideIsOut:
		g.normal = u
		g.impact1 = cs.Sub(u.Scale(rs))
		g.impact2 = co.Add(u.Scale(ro))
		g.distance = length - rs - ro

	case !self.outsideIsOut:
		// other is inside self
		g.normal = u.Negate()
		g.impact1 = cs.Sub(u.Scale(rs))
		g.impact2 = co.Sub(u.Scale(ro))
		g.distance = rs - ro - length

	default:
		// self is inside other
		g.normal = u.Negate()
		g.impact1 = cs.Add(u.Scale(rs))
		g.impact2 = co.Add(u.Scale(ro))
		g.distance = ro - rs - length
	}
	return g, true
}

/// Tests two circular edges on different bodies. self becomes the primary
/// edge of any collision found.
func CircleCircleTestCollision(collisions []Collision, self, other *CircularEdge, time float64) []Collision {
	if !self.outsideIsOut && !other.outsideIsOut {
		return collisions
	}

	if self.outsideIsOut && other.outsideIsOut {
		if !self.IsWithinArc2(other.GetCenterWorld()) || !other.IsWithinArc2(self.GetCenterWorld()) {
			return collisions
		}
	} else {
		convex, concave := self, other
		if !self.outsideIsOut {
			convex, concave = other, self
		}
		if convex.radius > concave.radius {
			return collisions
		}
		if !concave.IsWithinArc2(convex.GetCenterWorld()) {
			return collisions
		}
		if !convex.IsWithinReflectedArc2(concave.GetCenterWorld()) {
			return collisions
		}
	}

	g, ok := computeCircleCircle(self, other)
	if !ok {
		return collisions
	}
	if g.distance > self.body.GetDistanceTol() {
		return collisions
	}
	if g.distance < -math.Max(self.depth, other.depth) {
		return collisions
	}

	c := &EdgeEdgeCollision{
		RigidBodyCollision: makeRigidBodyCollision(self.body, other.body, time, "CircleCircle"),
		PrimaryEdge:        self,
		NormalEdge:         other,
	}
	c.Contact = g.distance >= 0
	c.BallObject = true
	c.BallNormal = true
	c.HasImpact2 = true
	setCircleCircle(&c.RigidBodyCollision, self, other, g)
	return AddCollision(collisions, c)
}

// Contacts add half the gap to each signed radius.
func setCircleCircle(rbc *RigidBodyCollision, self, other *CircularEdge, g circleCircleGeometry) {
	rbc.Normal = g.normal
	rbc.Impact1 = g.impact1
	rbc.Impact2 = g.impact2
	rbc.Distance = g.distance
	rbc.Radius1 = self.GetCurvature()
	rbc.Radius2 = other.GetCurvature()
	if rbc.Contact {
		rbc.Radius1 += g.distance / 2
		rbc.Radius2 += g.distance / 2
	}
}

/// Recomputes rbc from the exact geometry of the two circles. Returns
/// ErrAccuracyAssumption when a collision turns out not to penetrate.
/// rbc is left unchanged when both arcs are concave.
func CircleCircleImproveAccuracy(rbc *RigidBodyCollision, self, other *CircularEdge) error {
	if !self.outsideIsOut && !other.outsideIsOut {
		return nil
	}
	g, ok := computeCircleCircle(self, other)
	if !ok {
		return nil
	}
	rbc.HasImpact2 = true
	rbc.BallObject = true
	rbc.BallNormal = true
	setCircleCircle(rbc, self, other, g)
	if !rbc.Contact && g.distance >= 0 {
		return fmt.Errorf("circle %d of %s and circle %d of %s at distance %g: %w",
			self.index, self.body.GetName(), other.index, other.body.GetName(), g.distance, ErrAccuracyAssumption)
	}
	return nil
}
