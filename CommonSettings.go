package engine2d

import (
	"errors"
	"math"
)

func assert(a bool, msg string) {
	if !a {
		panic("engine2d: " + msg)
	}
}

const MaxFloat = math.MaxFloat64
const Epsilon = 1e-14

/// @file
/// Global tuning constants. Lengths are in simulation length units.
///

/// Both defining vertices of a circular edge must be this close to being
/// equidistant from the center. Vertices closer than this make a full circle.
const CircleTolerance = 1e-10

/// Convergence tolerance for the centroid search.
const CentroidTolerance = 1e-6

/// Closing vertex of a path must be this close to the starting vertex.
const PathCloseTolerance = 1e-8

/// Coarsest spacing allowed between decorated vertices on a curved edge.
const MaxDecorationAngle = math.Pi / 4

/// Collision tolerances carried by every rigid body.
type Tolerances struct {
	/// Maximum gap still counted as a contact.
	DistanceTol float64

	/// Maximum normal velocity still counted as a resting contact.
	VelocityTol float64

	/// Fraction of the target gap within which a collision counts as close enough.
	Accuracy float64

	/// Distance between decorated mid-point vertices on curved edges.
	Spacing float64
}

func DefaultTolerances() Tolerances {
	return Tolerances{
		DistanceTol: 0.01,
		VelocityTol: 0.5,
		Accuracy:    0.6,
		Spacing:     0.3,
	}
}

func (t Tolerances) Validate() error {
	if !(t.DistanceTol > 0) || !(t.VelocityTol > 0) || !(t.Spacing > 0) {
		return ErrBadTolerance
	}
	if !(t.Accuracy > 0 && t.Accuracy <= 1) {
		return ErrBadTolerance
	}
	return nil
}

var (
	ErrUnequalRadius        = errors.New("center is not equidistant from the two end points")
	ErrRadiusTooSmall       = errors.New("radius too small to reach both end points")
	ErrDegenerateEdge       = errors.New("edge has zero length")
	ErrNoOpenPath           = errors.New("no open path")
	ErrVertexMismatch       = errors.New("edge does not start at the last vertex of the open path")
	ErrPathNotClosed        = errors.New("path does not end at its starting vertex")
	ErrInconsistentPath     = errors.New("path is not a single cycle")
	ErrFinished             = errors.New("polygon is finished")
	ErrEmptyPolygon         = errors.New("polygon has no edges")
	ErrCentroidNotConverged = errors.New("centroid search did not converge")
	ErrNotStraightEdge      = errors.New("special edge must be a straight edge")
	ErrEdgeIndex            = errors.New("edge index out of range")
	ErrBadTolerance         = errors.New("tolerance out of range")
	ErrAccuracyAssumption   = errors.New("improved collision is not penetrating")
	ErrBadConnector         = errors.New("invalid connector definition")
)
