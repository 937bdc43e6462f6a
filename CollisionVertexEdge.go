package engine2d

import "math"

///////////////////////////////////////////////////////////////////////////////
/// Vertex against edge testing
///
/// A vertex of one polygon collides with an edge of another when, between
/// the old and the current body positions, the vertex crossed the edge from
/// outside to inside. When the crossing point is at an endpoint vertex of
/// the edge and the moving vertex is itself an endpoint, the collision is
/// between two corners. An endpoint vertex that is just outside an edge is
/// a contact.
///////////////////////////////////////////////////////////////////////////////

/// Returns the collision of v crossing edge while moving from pBodyOld to
/// pBody, both in the edge's body coordinates, or nil.
func testVertexCrossing(edge Edge, v *Vertex, pBody, pBodyOld Vec2, time float64) Collision {
	if edge.DistanceToLine(pBody) >= 0 {
		return nil
	}
	if edge.DistanceToLine(pBodyOld) < 0 {
		return nil
	}
	points := edge.Intersection(pBodyOld, pBody)
	if len(points) == 0 {
		return nil
	}
	q := points[0]
	for _, pt := range points[1:] {
		if Vec2DistanceSquared(pt, pBodyOld) < Vec2DistanceSquared(q, pBodyOld) {
			q = pt
		}
	}

	tol := v.body.GetDistanceTol()
	if v.endPoint {
		for _, w := range []*Vertex{edge.GetVertex1(), edge.GetVertex2()} {
			if Vec2Distance(q, w.locBody) > tol {
				continue
			}
			var normalBody Vec2
			if d := pBodyOld.Sub(w.locBody); d.Length() > Epsilon {
				normalBody = d.Normalize()
			} else {
				normalBody = edge.GetNormalBody(w.locBody)
			}
			c := &CornerCornerCollision{
				RigidBodyCollision: makeRigidBodyCollision(v.body, edge.GetBody(), time, "CornerCorner"),
				Vertex:             v,
				NormalVertex:       w,
				normalBody:         normalBody,
			}
			cornerCornerGeometry(&c.RigidBodyCollision, v, w, normalBody)
			return c
		}
	}

	c := &CornerEdgeCollision{
		RigidBodyCollision: makeRigidBodyCollision(v.body, edge.GetBody(), time, "CornerEdge"),
		Vertex:             v,
		NormalEdge:         edge,
	}
	cornerEdgeGeometry(&c.RigidBodyCollision, v, edge)
	return c
}

/// Returns a contact when v, at pBody in the edge's body coordinates, lies
/// outside edge within distTol, else nil.
func findVertexContact(edge Edge, v *Vertex, pBody Vec2, distTol float64) *CornerEdgeCollision {
	d := edge.DistanceToPoint(pBody)
	if !isFinite(d) || d < 0 || d > distTol {
		return nil
	}
	c := &CornerEdgeCollision{
		RigidBodyCollision: makeRigidBodyCollision(v.body, edge.GetBody(), 0, "CornerEdgeContact"),
		Vertex:             v,
		NormalEdge:         edge,
	}
	c.Contact = true
	cornerEdgeGeometry(&c.RigidBodyCollision, v, edge)
	return c
}

func cornerEdgeGeometry(rbc *RigidBodyCollision, v *Vertex, edge Edge) {
	body := edge.GetBody()
	pWorld := v.body.BodyToWorld(v.locBody)
	pBody := body.WorldToBody(pWorld)
	normalBody := edge.GetNormalBody(pBody)
	d := edge.DistanceToLine(pBody)

	rbc.Impact1 = pWorld
	rbc.Impact2 = body.BodyToWorld(pBody.Sub(normalBody.Scale(d)))
	rbc.HasImpact2 = true
	rbc.Normal = body.RotateBodyToWorld(normalBody)
	rbc.Distance = d

	r1 := v.GetCurvature()
	rbc.BallObject = !math.IsInf(r1, 0)
	rbc.Radius1 = 0
	if rbc.BallObject {
		rbc.Radius1 = r1
	}
	r2 := edge.GetCurvature()
	rbc.BallNormal = !math.IsInf(r2, 0)
	rbc.Radius2 = 0
	if rbc.BallNormal {
		rbc.Radius2 = r2
	}
}

func cornerCornerGeometry(rbc *RigidBodyCollision, v, w *Vertex, normalBody Vec2) {
	pWorld := v.body.BodyToWorld(v.locBody)
	wWorld := w.body.BodyToWorld(w.locBody)
	n := w.body.RotateBodyToWorld(normalBody)

	rbc.Impact1 = pWorld
	rbc.Impact2 = wWorld
	rbc.HasImpact2 = true
	rbc.Normal = n
	rbc.Distance = Vec2Dot(pWorld.Sub(wWorld), n)
	rbc.BallObject = false
	rbc.BallNormal = false
	rbc.Radius1 = 0
	rbc.Radius2 = 0
}

/// Tests every vertex of p against the edges of q.
func checkVertexes(collisions []Collision, p, q *Polygon, time float64, counter Counter) []Collision {
	tol := p.GetDistanceTol()
	if special := q.GetSpecialEdge(); special != nil {
		return checkVertexesSpecial(collisions, p, q, special, time, counter)
	}

	qCentroid := q.GetCentroidWorld()
	qRadius := q.GetCentroidRadius()
	for _, v := range p.GetVertexes() {
		pWorld := p.BodyToWorld(v.locBody)
		if Vec2Distance(pWorld, qCentroid) > qRadius+tol {
			continue
		}
		pBody := q.WorldToBody(pWorld)
		pBodyOld := q.WorldToBodyOld(p.BodyToWorldOld(v.locBody))

		hit := false
		for _, e := range q.edges {
			if p.NonCollideEdge(e) {
				continue
			}
			counter.Count(CounterVertexEdgeTests)
			before := len(collisions)
			collisions = e.TestCollisionVertex(collisions, v, pBody, pBodyOld, time)
			if len(collisions) != before {
				hit = true
			}
		}
		if hit || !v.endPoint {
			continue
		}

		var best *CornerEdgeCollision
		for _, e := range q.edges {
			if p.NonCollideEdge(e) {
				continue
			}
			c := e.FindVertexContact(v, pBody, tol)
			if c != nil && (best == nil || c.Distance < best.Distance) {
				best = c
			}
		}
		if best != nil {
			best.SetDetectedTime(time)
			best.UpdateTime = time
			collisions = AddCollision(collisions, best)
		}
	}
	return collisions
}

// Against a special edge only the half plane below its line counts, within
// the span of the edge and the special radius.
func checkVertexesSpecial(collisions []Collision, p, q *Polygon, special *StraightEdge, time float64, counter Counter) []Collision {
	if p.NonCollideEdge(special) {
		return collisions
	}
	tol := p.GetDistanceTol()
	center := special.GetCentroidWorld()
	radius := special.GetCentroidRadius()
	for _, v := range p.GetVertexes() {
		pWorld := p.BodyToWorld(v.locBody)
		if Vec2Distance(pWorld, center) > radius+tol {
			continue
		}
		counter.Count(CounterVertexEdgeTests)
		pBody := q.WorldToBody(pWorld)
		if !isFinite(special.DistanceToPoint(pBody)) {
			continue
		}
		d := special.DistanceToLine(pBody)
		if d > tol || (d >= 0 && !v.endPoint) {
			continue
		}
		c := &CornerEdgeCollision{
			RigidBodyCollision: makeRigidBodyCollision(p, q, time, "CornerEdgeSpecial"),
			Vertex:             v,
			NormalEdge:         special,
		}
		c.Contact = d >= 0
		cornerEdgeGeometry(&c.RigidBodyCollision, v, special)
		collisions = AddCollision(collisions, c)
	}
	return collisions
}
