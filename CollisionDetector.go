package engine2d

import (
	"errors"
	"log"

	"github.com/golang/geo/r2"
)

/// Names of the events reported to a Counter.
const (
	CounterBodyPairTests   = "body-pair-tests"
	CounterVertexEdgeTests = "vertex-edge-tests"
	CounterEdgeEdgeTests   = "edge-edge-tests"
	CounterAccuracyFailed  = "accuracy-assumption-failed"
)

/// Counter receives a call every time the detector performs a test.
/// Implement this to collect statistics.
type Counter interface {
	Count(name string)
}

/// CounterFunc adapts an ordinary function to the Counter interface.
type CounterFunc func(name string)

func (f CounterFunc) Count(name string) {
	f(name)
}

type nopCounter struct{}

func (nopCounter) Count(name string) {}

/// Finds the contacts and collisions between polygons.
type Detector struct {
	/// Receives test counts. May be nil.
	Counter Counter

	/// Receives debug messages when Debug is set. May be nil.
	Logger *log.Logger

	Debug bool
}

func MakeDetector() Detector {
	return Detector{
		Counter: nopCounter{},
	}
}

func NewDetector() *Detector {
	res := MakeDetector()
	return &res
}

func (d Detector) counter() Counter {
	if d.Counter == nil {
		return nopCounter{}
	}
	return d.Counter
}

func (d Detector) debugf(format string, args ...interface{}) {
	if d.Debug && d.Logger != nil {
		d.Logger.Printf(format, args...)
	}
}

/// Appends the contacts and collisions between p and q.
func (d Detector) CheckCollision(collisions []Collision, p, q *Polygon, time float64) []Collision {
	if p.DoesNotCollide(q) {
		return collisions
	}
	counter := d.counter()
	counter.Count(CounterBodyPairTests)

	tol := p.GetDistanceTol()
	dist := Vec2Distance(p.GetCentroidWorld(), q.GetCentroidWorld())
	if dist > p.GetCentroidRadius()+q.GetCentroidRadius()+tol {
		return collisions
	}

	collisions = checkVertexes(collisions, p, q, time, counter)
	collisions = checkVertexes(collisions, q, p, time, counter)

	for _, e1 := range p.edges {
		if !p.isActiveEdge(e1) || q.NonCollideEdge(e1) {
			continue
		}
		for _, e2 := range q.edges {
			if !q.isActiveEdge(e2) || p.NonCollideEdge(e2) {
				continue
			}
			if !e1.IntersectionPossible(e2, tol) {
				continue
			}
			counter.Count(CounterEdgeEdgeTests)
			collisions = e1.TestCollisionEdge(collisions, e2, time)
		}
	}
	return collisions
}

/// Appends the contacts and collisions among bodies followed by those of
/// the connectors. Pairs whose swept bounding boxes do not overlap are
/// skipped.
func (d Detector) FindCollisions(collisions []Collision, bodies []*Polygon, connectors []Connector, time float64) []Collision {
	bounds := make([]r2.Rect, len(bodies))
	for i, b := range bodies {
		bounds[i] = b.GetSweptBoundsWorld().ExpandedByMargin(b.GetDistanceTol())
	}
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			if !bounds[i].Intersects(bounds[j]) {
				continue
			}
			collisions = d.CheckCollision(collisions, bodies[i], bodies[j], time)
		}
	}
	for _, c := range connectors {
		collisions = c.AddCollision(collisions, time)
	}
	return collisions
}

/// Refines a collision found from sampled geometry using the exact geometry
/// of the edges involved. Collisions of a decorated vertex on a convex arc
/// are refined with that arc. Other collisions are recomputed at the current
/// body positions.
func (d Detector) ImproveAccuracy(c Collision) error {
	var err error
	switch c := c.(type) {
	case *EdgeEdgeCollision:
		err = c.improveAccuracy()
	case *CornerEdgeCollision:
		if arc, ok := c.Vertex.GetEdge1().(*CircularEdge); ok && !c.Vertex.endPoint && arc.outsideIsOut {
			err = arc.ImproveAccuracyEdge(&c.RigidBodyCollision, c.NormalEdge)
			break
		}
		c.UpdateCollision(c.UpdateTime)
	default:
		c.UpdateCollision(c.Base().UpdateTime)
	}
	if errors.Is(err, ErrAccuracyAssumption) {
		d.counter().Count(CounterAccuracyFailed)
		d.debugf("improve accuracy: %v", err)
	}
	return err
}

/// Recomputes c at time and refines it like ImproveAccuracy, reporting the
/// refinement failures that Collision.UpdateCollision drops.
func (d Detector) UpdateCollision(c Collision, time float64) error {
	c.Base().UpdateTime = time
	return d.ImproveAccuracy(c)
}
