package engine2d_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ByteArena/engine2d"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestJoint(t *testing.T) {
	ball := mustBall(t, "ball", 0.5, engine2d.MakeVec2(1.2, 1.5))
	def := engine2d.MakeJointDef()
	def.Body1 = engine2d.NewScrim()
	def.Attach1Body = engine2d.MakeVec2(1, 1)
	def.Body2 = ball
	def.Normal = engine2d.MakeVec2(2, 0)
	joint, err := engine2d.NewJoint(def)
	if err != nil {
		t.Fatalf("NewJoint: %v", err)
	}
	if !vecNear(joint.GetNormalWorld(), engine2d.MakeVec2(1, 0), tol) {
		t.Fatalf("normal should be normalized: got=%v", joint.GetNormalWorld())
	}

	got := joint.AddCollision(nil, 0)
	if len(got) != 1 {
		t.Fatalf("a joint always reports a collision, got %v", got)
	}
	c := got[0].Base()
	if !c.Joint || !c.Contact || c.BallObject || c.BallNormal {
		t.Fatalf("got %v", c)
	}
	if !scalar.EqualWithinAbs(c.Distance, -0.2, tol) {
		t.Fatalf("distance: got=%v want=-0.2", c.Distance)
	}
	if c.TargetGap() != 0 || !c.CloseEnough(false) {
		t.Fatalf("joints aim for zero gap: %v", c)
	}

	joint.Align()
	if !vecNear(ball.GetPosition(), engine2d.MakeVec2(1, 1), tol) {
		t.Fatalf("position after align: got=%v", ball.GetPosition())
	}
	got[0].UpdateCollision(1)
	if !scalar.EqualWithinAbs(got[0].Base().Distance, 0, tol) {
		t.Fatalf("distance after align: got=%v", got[0].Base().Distance)
	}
}

func TestJointBodyNormal(t *testing.T) {
	ball := mustBall(t, "ball", 0.5, engine2d.MakeVec2(1.2, 1.5))
	ball.SetPosition(engine2d.MakeVec2(1.2, 1.5), math.Pi/2)
	def := engine2d.MakeJointDef()
	def.Body1 = engine2d.NewScrim()
	def.Attach1Body = engine2d.MakeVec2(1, 1)
	def.Body2 = ball
	def.NormalType = engine2d.CoordType.Body
	def.Normal = engine2d.MakeVec2(1, 0)
	joint, err := engine2d.NewJoint(def)
	if err != nil {
		t.Fatalf("NewJoint: %v", err)
	}
	if !vecNear(joint.GetNormalWorld(), engine2d.MakeVec2(0, 1), tol) {
		t.Fatalf("normal follows body2: got=%v", joint.GetNormalWorld())
	}
	got := joint.AddCollision(nil, 0)
	if d := got[0].Base().Distance; !scalar.EqualWithinAbs(d, -0.5, tol) {
		t.Fatalf("distance: got=%v want=-0.5", d)
	}
}

func TestJointErrors(t *testing.T) {
	ball := mustBall(t, "ball", 0.5, engine2d.MakeVec2(0, 0))
	cases := []struct {
		name string
		def  func(def *engine2d.JointDef)
	}{
		{"zero normal", func(def *engine2d.JointDef) { def.Normal = engine2d.MakeVec2(0, 0) }},
		{"bad normal type", func(def *engine2d.JointDef) { def.NormalType = 9 }},
		{"same body", func(def *engine2d.JointDef) { def.Body2 = def.Body1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def := engine2d.MakeJointDef()
			def.Body1 = engine2d.NewScrim()
			def.Body2 = ball
			tc.def(&def)
			if _, err := engine2d.NewJoint(def); !errors.Is(err, engine2d.ErrBadConnector) {
				t.Fatalf("got=%v want ErrBadConnector", err)
			}
		})
	}
}
