package engine2d_test

import (
	"testing"

	"github.com/ByteArena/engine2d"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestCornerEdgeCrossing(t *testing.T) {
	ground := mustBlock(t, "ground", 4, 1, engine2d.MakeVec2(0, 0))
	box := mustBlock(t, "box", 1, 1, engine2d.MakeVec2(0, 1.05))
	box.SaveOldCoords()
	box.SetPosition(engine2d.MakeVec2(0, 0.95), 0)

	got := engine2d.MakeDetector().CheckCollision(nil, ground, box, 0)
	if len(got) != 2 {
		t.Fatalf("expected two corner collisions, got %v", got)
	}
	for _, c := range got {
		ce, ok := c.(*engine2d.CornerEdgeCollision)
		if !ok {
			t.Fatalf("expected corner/edge collision, got %T", c)
		}
		if ce.PrimaryBody != engine2d.RigidBody(box) || ce.NormalBody != engine2d.RigidBody(ground) {
			t.Fatalf("bodies: %v", ce)
		}
		if ce.Contact || !scalar.EqualWithinAbs(ce.Distance, -0.05, tol) {
			t.Fatalf("distance: %v", ce)
		}
		if !vecNear(ce.Normal, engine2d.MakeVec2(0, 1), tol) {
			t.Fatalf("normal: got=%v", ce.Normal)
		}
		if ce.NormalEdge.GetIndex() != 2 || !ce.Vertex.IsEndPoint() {
			t.Fatalf("edge %d vertex %v", ce.NormalEdge.GetIndex(), ce.Vertex)
		}
		if !scalar.EqualWithinAbs(ce.Impact2.Y, 0.5, tol) || ce.BallObject || ce.BallNormal {
			t.Fatalf("impact2 should be on the edge: %v", ce)
		}
	}
}

func TestCornerEdgeContact(t *testing.T) {
	ground := mustBlock(t, "ground", 4, 1, engine2d.MakeVec2(0, 0))
	box := mustBlock(t, "box", 1, 1, engine2d.MakeVec2(0, 1.005))

	got := engine2d.MakeDetector().CheckCollision(nil, ground, box, 0)
	if len(got) != 2 {
		t.Fatalf("expected two contacts, got %v", got)
	}
	for _, c := range got {
		b := c.Base()
		if !b.Contact || b.Creator != "CornerEdgeContact" {
			t.Fatalf("got %v", b)
		}
		if !scalar.EqualWithinAbs(b.Distance, 0.005, tol) {
			t.Fatalf("distance: got=%v", b.Distance)
		}
	}

	box.SetPosition(engine2d.MakeVec2(0, 1.02), 0)
	if got := engine2d.MakeDetector().CheckCollision(nil, ground, box, 0); len(got) != 0 {
		t.Fatalf("gap beyond tolerance: got %v", got)
	}
}

func TestCornerCorner(t *testing.T) {
	a := mustBlock(t, "a", 2, 2, engine2d.MakeVec2(0, 0))
	b := mustBlock(t, "b", 1, 1, engine2d.MakeVec2(1.6, 1.6))
	b.SaveOldCoords()
	b.SetPosition(engine2d.MakeVec2(1.485, 1.49), 0)

	got := engine2d.MakeDetector().CheckCollision(nil, a, b, 0)
	if len(got) != 2 {
		t.Fatalf("expected two corner/corner collisions, got %v", got)
	}
	primaries := map[string]bool{}
	for _, c := range got {
		cc, ok := c.(*engine2d.CornerCornerCollision)
		if !ok {
			t.Fatalf("expected corner/corner collision, got %v", c)
		}
		if cc.Distance >= 0 || cc.Contact {
			t.Fatalf("expected penetration: %v", cc)
		}
		if !cc.Vertex.IsEndPoint() || !cc.NormalVertex.IsEndPoint() {
			t.Fatalf("corners must be end points: %v", cc)
		}
		if !scalar.EqualWithinAbs(cc.Normal.Length(), 1, tol) {
			t.Fatalf("normal not unit: %v", cc.Normal)
		}
		primaries[cc.PrimaryBody.GetName()] = true
	}
	if !primaries["a"] || !primaries["b"] {
		t.Fatalf("each body should be primary once: %v", primaries)
	}

	// Moving back out leaves the normal fixed and makes the gap positive.
	b.SetPosition(engine2d.MakeVec2(1.6, 1.6), 0)
	for _, c := range got {
		c.UpdateCollision(1)
		if c.Base().Distance <= 0 || c.Base().UpdateTime != 1 {
			t.Fatalf("after separating: %v", c)
		}
	}
}

func TestDecoratedVertexRefinedByArc(t *testing.T) {
	block := mustBlock(t, "block", 4, 1, engine2d.MakeVec2(0, 0))
	ball := mustBall(t, "ball", 0.5, engine2d.MakeVec2(0, 1.05))
	ball.SaveOldCoords()
	ball.SetPosition(engine2d.MakeVec2(0, 0.95), 0)

	got := engine2d.MakeDetector().CheckCollision(nil, block, ball, 0)
	if len(got) == 0 {
		t.Fatalf("expected collisions")
	}
	var decorated *engine2d.CornerEdgeCollision
	for _, c := range got {
		if !vecNear(c.Base().Normal, engine2d.MakeVec2(0, 1), tol) {
			t.Fatalf("normal: %v", c)
		}
		if c.Base().Distance < -0.05-tol {
			t.Fatalf("deeper than the ball: %v", c)
		}
		if ce, ok := c.(*engine2d.CornerEdgeCollision); ok && !ce.Vertex.IsEndPoint() {
			decorated = ce
		}
	}
	if decorated == nil {
		t.Fatalf("expected a collision of a decorated vertex, got %v", got)
	}
	if err := engine2d.MakeDetector().ImproveAccuracy(decorated); err != nil {
		t.Fatalf("ImproveAccuracy: %v", err)
	}
	if !scalar.EqualWithinAbs(decorated.Distance, -0.05, tol) || decorated.Radius1 != 0.5 {
		t.Fatalf("refined by the arc: %v", decorated)
	}
}

func TestWallSpecialEdge(t *testing.T) {
	wall, err := engine2d.MakeWall("wall", 10, 1)
	if err != nil {
		t.Fatalf("MakeWall: %v", err)
	}
	ball := mustBall(t, "ball", 0.5, engine2d.MakeVec2(3, 0.98))

	got := engine2d.MakeDetector().CheckCollision(nil, ball, wall, 0)
	if len(got) != 1 {
		t.Fatalf("expected one collision, got %v", got)
	}
	c := got[0].Base()
	if c.Creator != "CircleStraight" || !scalar.EqualWithinAbs(c.Distance, -0.02, tol) {
		t.Fatalf("got %v", c)
	}

	box := mustBlock(t, "box", 1, 1, engine2d.MakeVec2(-2, 1.004))
	got = engine2d.MakeDetector().CheckCollision(nil, box, wall, 0)
	if len(got) != 2 {
		t.Fatalf("box corners on the wall: got %v", got)
	}
	for _, c := range got {
		b := c.Base()
		if b.Creator != "CornerEdgeSpecial" || !b.Contact || !scalar.EqualWithinAbs(b.Distance, 0.004, tol) {
			t.Fatalf("got %v", b)
		}
	}
}

func TestDecoratedVertexOnConcaveArc(t *testing.T) {
	bowl, err := engine2d.MakeConcaveBlock("bowl", 4, 2, 2.5)
	if err != nil {
		t.Fatalf("MakeConcaveBlock: %v", err)
	}
	// the arc dips to the body origin, where a decorated vertex sits
	pin := mustBlock(t, "pin", 0.2, 1, engine2d.MakeVec2(0, 0.51))
	pin.SaveOldCoords()
	pin.SetPosition(engine2d.MakeVec2(0, 0.45), 0)

	var found *engine2d.CornerEdgeCollision
	for _, c := range engine2d.MakeDetector().CheckCollision(nil, bowl, pin, 0) {
		if ce, ok := c.(*engine2d.CornerEdgeCollision); ok && !ce.Vertex.IsEndPoint() && ce.PrimaryBody == engine2d.RigidBody(bowl) {
			found = ce
		}
	}
	if found == nil {
		t.Fatalf("expected a collision of the arc's lowest vertex")
	}

	cases := []struct {
		name    string
		improve func(c *engine2d.CornerEdgeCollision) error
	}{
		{"detector", func(c *engine2d.CornerEdgeCollision) error {
			return engine2d.MakeDetector().ImproveAccuracy(c)
		}},
		{"arc against line", func(c *engine2d.CornerEdgeCollision) error {
			return engine2d.CircleStraightImproveAccuracy(&c.RigidBodyCollision,
				c.Vertex.GetEdge1().(*engine2d.CircularEdge), c.NormalEdge.(*engine2d.StraightEdge))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.improve(found); err != nil {
				t.Fatalf("improve: %v", err)
			}
			if !scalar.EqualWithinAbs(found.Distance, -0.05, 1e-9) {
				t.Fatalf("distance: got=%v want=-0.05", found.Distance)
			}
			if !scalar.EqualWithinAbs(found.Radius1, -2.5, 1e-9) {
				t.Fatalf("radius1: got=%v want=-2.5", found.Radius1)
			}
			if !vecNear(found.Impact1, engine2d.MakeVec2(0, 0), 1e-9) || !vecNear(found.Normal, engine2d.MakeVec2(0, -1), tol) {
				t.Fatalf("impact1=%v normal=%v", found.Impact1, found.Normal)
			}
		})
	}
}
