package engine2d

import (
	"fmt"
)

type circleStraightGeometry struct {
	normal   Vec2
	impact1  Vec2
	impact2  Vec2
	distance float64
}

// The point of a convex circle nearest a straight line is at
// center - normal * radius.
func computeCircleStraight(circle *CircularEdge, straight *StraightEdge, withinSpan bool) (circleStraightGeometry, bool) {
	centerWorld := circle.GetCenterWorld()
	centerBody := straight.body.WorldToBody(centerWorld)
	if withinSpan && !isFinite(straight.DistanceToPoint(centerBody)) {
		return circleStraightGeometry{}, false
	}
	h := straight.DistanceToLine(centerBody)
	n := straight.body.RotateBodyToWorld(straight.normalBody)

	var g circleStraightGeometry
	g.normal = n
	g.distance = h - circle.radius
	g.impact1 = centerWorld.Sub(n.Scale(circle.radius))
	g.impact2 = g.impact1.Sub(n.Scale(g.distance))
	return g, true
}

/// Tests a circular edge against a straight edge of another body. The
/// circular edge is always the primary edge. Concave arcs never touch a
/// straight edge along its length; their contacts come from vertex tests.
func CircleStraightTestCollision(collisions []Collision, circle *CircularEdge, straight *StraightEdge, time float64) []Collision {
	if !circle.outsideIsOut {
		return collisions
	}
	g, ok := computeCircleStraight(circle, straight, true)
	if !ok {
		return collisions
	}
	if !circle.IsWithinArc2(g.impact1) {
		return collisions
	}
	if g.distance > circle.body.GetDistanceTol() || g.distance < -circle.depth {
		return collisions
	}

	c := &EdgeEdgeCollision{
		RigidBodyCollision: makeRigidBodyCollision(circle.body, straight.body, time, "CircleStraight"),
		PrimaryEdge:        circle,
		NormalEdge:         straight,
	}
	c.Contact = g.distance >= 0
	setCircleStraight(&c.RigidBodyCollision, circle, g)
	return AddCollision(collisions, c)
}

func setCircleStraight(rbc *RigidBodyCollision, circle *CircularEdge, g circleStraightGeometry) {
	rbc.Normal = g.normal
	rbc.Impact1 = g.impact1
	rbc.Impact2 = g.impact2
	rbc.HasImpact2 = true
	rbc.Distance = g.distance
	rbc.BallObject = true
	rbc.BallNormal = false
	rbc.Radius1 = circle.radius
	rbc.Radius2 = 0
}

/// Recomputes rbc against the infinite line through the straight edge.
/// rbc is left unchanged for a concave arc.
func CircleStraightImproveAccuracy(rbc *RigidBodyCollision, circle *CircularEdge, straight *StraightEdge) error {
	if !circle.outsideIsOut {
		return nil
	}
	g, _ := computeCircleStraight(circle, straight, false)
	setCircleStraight(rbc, circle, g)
	if !rbc.Contact && g.distance >= 0 {
		return fmt.Errorf("circle %d of %s and line %d of %s at distance %g: %w",
			circle.index, circle.body.GetName(), straight.index, straight.body.GetName(), g.distance, ErrAccuracyAssumption)
	}
	return nil
}
