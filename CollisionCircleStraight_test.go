package engine2d_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ByteArena/engine2d"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestCircleStraight(t *testing.T) {
	cases := []struct {
		name     string
		position engine2d.Vec2
		found    bool
		contact  bool
		distance float64
	}{
		{"resting", engine2d.MakeVec2(0, 1.004), true, true, 0.004},
		{"sunk", engine2d.MakeVec2(0, 0.95), true, false, -0.05},
		{"above", engine2d.MakeVec2(0, 1.1), false, false, 0},
		{"beyond the end", engine2d.MakeVec2(3, 0.9), false, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			block := mustBlock(t, "block", 4, 1, engine2d.MakeVec2(0, 0))
			ball := mustBall(t, "ball", 0.5, tc.position)
			top := block.GetEdges()[2].(*engine2d.StraightEdge)

			got := engine2d.CircleStraightTestCollision(nil, circularEdge(t, ball, 0), top, 0)
			if !tc.found {
				if len(got) != 0 {
					t.Fatalf("expected no collision, got %v", got)
				}
				return
			}
			if len(got) != 1 {
				t.Fatalf("expected one collision, got %v", got)
			}
			c := got[0].Base()
			if c.Creator != "CircleStraight" || c.Contact != tc.contact {
				t.Fatalf("got %v", c)
			}
			if !scalar.EqualWithinAbs(c.Distance, tc.distance, tol) {
				t.Fatalf("distance: got=%v want=%v", c.Distance, tc.distance)
			}
			if !vecNear(c.Normal, engine2d.MakeVec2(0, 1), tol) {
				t.Fatalf("normal: got=%v", c.Normal)
			}
			if !vecNear(c.Impact1, tc.position.Sub(engine2d.MakeVec2(0, 0.5)), tol) {
				t.Fatalf("impact1: got=%v", c.Impact1)
			}
			if !vecNear(c.Impact2, engine2d.MakeVec2(tc.position.X, 0.5), tol) {
				t.Fatalf("impact2: got=%v", c.Impact2)
			}
			if c.Radius1 != 0.5 || c.Radius2 != 0 || !c.BallObject || c.BallNormal {
				t.Fatalf("radii: %v", c)
			}
		})
	}
}

func TestCircleStraightRotatedBlock(t *testing.T) {
	block := mustBlock(t, "block", 4, 1, engine2d.MakeVec2(0, 0))
	block.SetPosition(engine2d.MakeVec2(0, 0), math.Pi/2)
	ball := mustBall(t, "ball", 0.5, engine2d.MakeVec2(-1.003, 0))
	// the top edge now faces -x
	top := block.GetEdges()[2].(*engine2d.StraightEdge)
	got := engine2d.CircleStraightTestCollision(nil, circularEdge(t, ball, 0), top, 0)
	if len(got) != 1 {
		t.Fatalf("expected contact, got %v", got)
	}
	c := got[0].Base()
	if !c.Contact || !scalar.EqualWithinAbs(c.Distance, 0.003, 1e-9) || !vecNear(c.Normal, engine2d.MakeVec2(-1, 0), 1e-9) {
		t.Fatalf("got %v", c)
	}
}

func TestConcaveArcIgnoresStraightEdge(t *testing.T) {
	bowl, err := engine2d.MakeConcaveBlock("bowl", 2, 2, 2)
	if err != nil {
		t.Fatalf("MakeConcaveBlock: %v", err)
	}
	block := mustBlock(t, "block", 1, 1, engine2d.MakeVec2(0, 1.2))
	bottom := block.GetEdges()[0].(*engine2d.StraightEdge)
	if got := engine2d.CircleStraightTestCollision(nil, circularEdge(t, bowl, 2), bottom, 0); len(got) != 0 {
		t.Fatalf("concave arc against straight edge: got %v", got)
	}
}

func TestCircleStraightImproveAccuracy(t *testing.T) {
	block := mustBlock(t, "block", 4, 1, engine2d.MakeVec2(0, 0))
	ball := mustBall(t, "ball", 0.5, engine2d.MakeVec2(0, 0.95))
	got := block.CheckCollision(nil, ball, 0)
	if len(got) != 1 {
		t.Fatalf("expected one collision, got %v", got)
	}
	detector := engine2d.MakeDetector()

	// Refinement uses the whole line of the edge, past its end points.
	ball.SetPosition(engine2d.MakeVec2(10, 0.9), 0)
	if err := detector.ImproveAccuracy(got[0]); err != nil {
		t.Fatalf("ImproveAccuracy: %v", err)
	}
	if d := got[0].Base().Distance; !scalar.EqualWithinAbs(d, -0.1, tol) {
		t.Fatalf("distance: got=%v want=-0.1", d)
	}

	ball.SetPosition(engine2d.MakeVec2(0, 2), 0)
	if err := detector.ImproveAccuracy(got[0]); !errors.Is(err, engine2d.ErrAccuracyAssumption) {
		t.Fatalf("got=%v want ErrAccuracyAssumption", err)
	}
}
