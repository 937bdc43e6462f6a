package engine2d_test

import (
	"fmt"
	"testing"

	"github.com/ByteArena/engine2d"
	"github.com/pmezard/go-difflib/difflib"
)

const expectedReport = `== balls colliding
CircleCircle collision ball1/ball2 distance=-0.0500 normal=(0.000, -1.000) impact1=(0.000, 1.000) radius1=1.0000 radius2=1.0000
== balls in contact
CircleCircle contact ball1/ball3 distance=0.0050 normal=(0.000, -1.000) impact1=(0.000, 1.000) radius1=1.0025 radius2=1.0025
== ball on block
CircleStraight contact ball/block distance=0.0040 normal=(0.000, 1.000) impact1=(0.000, 0.504) radius1=0.5000 radius2=0.0000
== ball on rope
rope collision ball/scrim distance=-0.0960 normal=(0.000, 1.000) impact1=(0.000, 1.004) radius1=0.0000 radius2=-3.9960
`

func describeCollision(c engine2d.Collision) string {
	b := c.Base()
	kind := "collision"
	if b.Contact {
		kind = "contact"
	}
	return fmt.Sprintf("%s %s %s/%s distance=%.4f normal=(%.3f, %.3f) impact1=(%.3f, %.3f) radius1=%.4f radius2=%.4f\n",
		b.Creator, kind, b.PrimaryBody.GetName(), b.NormalBody.GetName(), b.Distance,
		b.Normal.X, b.Normal.Y, b.Impact1.X, b.Impact1.Y, b.Radius1, b.Radius2)
}

func mustBall(t *testing.T, name string, radius float64, position engine2d.Vec2) *engine2d.Polygon {
	t.Helper()
	p, err := engine2d.MakeBall(name, radius)
	if err != nil {
		t.Fatalf("MakeBall(%q): %v", name, err)
	}
	p.SetPosition(position, 0)
	return p
}

func mustBlock(t *testing.T, name string, width, height float64, position engine2d.Vec2) *engine2d.Polygon {
	t.Helper()
	p, err := engine2d.MakeBlock(name, width, height)
	if err != nil {
		t.Fatalf("MakeBlock(%q): %v", name, err)
	}
	p.SetPosition(position, 0)
	return p
}

func TestCollisionReport(t *testing.T) {
	detector := engine2d.MakeDetector()
	output := ""

	report := func(title string, collisions []engine2d.Collision) {
		output += "== " + title + "\n"
		for _, c := range collisions {
			output += describeCollision(c)
		}
	}

	// Two unit balls overlapping by 0.05.
	{
		ball1 := mustBall(t, "ball1", 1, engine2d.MakeVec2(0, 0))
		ball2 := mustBall(t, "ball2", 1, engine2d.MakeVec2(0, 1.95))
		report("balls colliding", detector.FindCollisions(nil, []*engine2d.Polygon{ball1, ball2}, nil, 0))
	}

	// Two unit balls separated by a gap smaller than the distance tolerance.
	{
		ball1 := mustBall(t, "ball1", 1, engine2d.MakeVec2(0, 0))
		ball3 := mustBall(t, "ball3", 1, engine2d.MakeVec2(0, 2.005))
		report("balls in contact", detector.FindCollisions(nil, []*engine2d.Polygon{ball1, ball3}, nil, 0))
	}

	// A ball resting on a block.
	{
		block := mustBlock(t, "block", 4, 1, engine2d.MakeVec2(0, 0))
		ball := mustBall(t, "ball", 0.5, engine2d.MakeVec2(0, 1.004))
		report("ball on block", detector.FindCollisions(nil, []*engine2d.Polygon{block, ball}, nil, 0))
	}

	// A ball hanging from a stretched rope.
	{
		ball := mustBall(t, "ball", 0.5, engine2d.MakeVec2(0, 1.004))
		def := engine2d.MakeRopeDef()
		def.Body1 = engine2d.NewScrim()
		def.Attach1Body = engine2d.MakeVec2(0, 5)
		def.Body2 = ball
		def.RestLength = 3.9
		rope, err := engine2d.NewRope(def)
		if err != nil {
			t.Fatalf("NewRope: %v", err)
		}
		report("ball on rope", detector.FindCollisions(nil, []*engine2d.Polygon{ball}, []engine2d.Connector{rope}, 0))
	}

	if output != expectedReport {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(expectedReport),
			B:        difflib.SplitLines(output),
			FromFile: "Expected",
			ToFile:   "Current",
			Context:  0,
		}
		text, _ := difflib.GetUnifiedDiffString(diff)
		t.Fatalf("collision report does not match. Failure: \n%s", text)
	}
}
