package engine2d

import "math"

/// Factories for common shapes. Each is centered on the body origin unless
/// noted and uses default tolerances.

/// A width by height rectangle. Edge 0 is the bottom, 1 the right side,
/// 2 the top and 3 the left side.
func MakeBlock(name string, width, height float64) (*Polygon, error) {
	b := NewPolygonBuilder(name)
	if err := addBlockPath(b, width, height, nil); err != nil {
		return nil, err
	}
	return b.Finish()
}

// When top is non-nil it builds the top edge in place of a straight one.
func addBlockPath(b *PolygonBuilder, width, height float64, top func(p Vec2) error) error {
	w := width / 2
	h := height / 2
	if _, err := b.StartPath(MakeVec2(-w, -h)); err != nil {
		return err
	}
	if _, err := b.AddStraightEdge(MakeVec2(w, -h), false); err != nil {
		return err
	}
	if _, err := b.AddStraightEdge(MakeVec2(w, h), true); err != nil {
		return err
	}
	if top != nil {
		if err := top(MakeVec2(-w, h)); err != nil {
			return err
		}
	} else if _, err := b.AddStraightEdge(MakeVec2(-w, h), true); err != nil {
		return err
	}
	_, err := b.AddStraightEdge(MakeVec2(-w, -h), false)
	return err
}

/// A disk of the given radius: one convex full circle edge.
func MakeBall(name string, radius float64) (*Polygon, error) {
	b := NewPolygonBuilder(name)
	if _, err := b.StartPath(MakeVec2(radius, 0)); err != nil {
		return nil, err
	}
	if _, err := b.AddCircularEdge(MakeVec2(radius, 0), MakeVec2(0, 0), false, true); err != nil {
		return nil, err
	}
	return b.Finish()
}

/// A block whose top edge is its only collision edge. The special edge
/// radius reaches from the middle of the top to the bottom corners.
func MakeWall(name string, width, height float64) (*Polygon, error) {
	p, err := MakeBlock(name, width, height)
	if err != nil {
		return nil, err
	}
	if err := p.SetSpecialEdge(2, math.Hypot(width/2, height)); err != nil {
		return nil, err
	}
	return p, nil
}

/// The upper half of a disk: a straight bottom edge from (-r, 0) to (r, 0)
/// and a convex arc back over the top.
func MakeHalfDisk(name string, radius float64) (*Polygon, error) {
	b := NewPolygonBuilder(name)
	if _, err := b.StartPath(MakeVec2(-radius, 0)); err != nil {
		return nil, err
	}
	if _, err := b.AddStraightEdge(MakeVec2(radius, 0), false); err != nil {
		return nil, err
	}
	if _, err := b.AddCircularEdge(MakeVec2(-radius, 0), MakeVec2(0, 0), false, true); err != nil {
		return nil, err
	}
	return b.Finish()
}

/// A rectangle whose top edge is a concave arc of the given radius dipping
/// into the block. radius must be at least width/2.
func MakeConcaveBlock(name string, width, height, radius float64) (*Polygon, error) {
	b := NewPolygonBuilder(name)
	top := func(p Vec2) error {
		_, err := b.AddCircularEdge2(p, radius, true, true, false)
		return err
	}
	if err := addBlockPath(b, width, height, top); err != nil {
		return nil, err
	}
	return b.Finish()
}
