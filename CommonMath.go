package engine2d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

///////////////////////////////////////////////////////////////////////////////
/// A 2D vector. Vectors are values: every operation returns a new vector.
///////////////////////////////////////////////////////////////////////////////
type Vec2 struct {
	X, Y float64
}

func MakeVec2(xIn, yIn float64) Vec2 {
	return Vec2{
		X: xIn,
		Y: yIn,
	}
}

func NewVec2(xIn, yIn float64) *Vec2 {
	res := MakeVec2(xIn, yIn)
	return &res
}

/// Unit vector with the given angle from the x-axis.
func MakeVec2FromAngle(angle float64) Vec2 {
	return MakeVec2(math.Cos(angle), math.Sin(angle))
}

/// Negate this vector.
func (v Vec2) Negate() Vec2 {
	return MakeVec2(-v.X, -v.Y)
}

func (v Vec2) Add(other Vec2) Vec2 {
	return MakeVec2(v.X+other.X, v.Y+other.Y)
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return MakeVec2(v.X-other.X, v.Y-other.Y)
}

func (v Vec2) Scale(a float64) Vec2 {
	return MakeVec2(a*v.X, a*v.Y)
}

/// Get the length of this vector (the norm).
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

/// Get the length squared. For performance, use this instead of
/// Vec2.Length (if possible).
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

/// Angle from the x-axis in (-pi, pi].
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

/// Convert this vector into a unit vector. A zero length vector has no
/// direction, so this panics.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	assert(length > Epsilon, "normalize of zero length vector")
	return v.Scale(1.0 / length)
}

/// Rotate counter-clockwise by the given angle in radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	return RotVec2Mul(MakeRotFromAngle(angle), v)
}

/// Get the skew vector such that dot(skew_vec, other) == cross(vec, other)
func (v Vec2) Skew() Vec2 {
	return MakeVec2(-v.Y, v.X)
}

/// Does this vector contain finite coordinates?
func (v Vec2) IsValid() bool {
	return IsValid(v.X) && IsValid(v.Y)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

/// This function is used to ensure that a floating point number is not a NaN or infinity.
func IsValid(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

/// Perform the dot product on two vectors.
func Vec2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

/// Perform the cross product on two vectors. In 2D this produces a scalar.
func Vec2Cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

/// Perform the cross product on a scalar and a vector. In 2D this produces
/// a vector.
func Vec2CrossScalarVector(s float64, a Vec2) Vec2 {
	return MakeVec2(-s*a.Y, s*a.X)
}

func Vec2Distance(a, b Vec2) float64 {
	return b.Sub(a).Length()
}

func Vec2DistanceSquared(a, b Vec2) float64 {
	return b.Sub(a).LengthSquared()
}

/// Returns true when both coordinates differ by at most tol.
func Vec2NearEqual(a, b Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

///////////////////////////////////////////////////////////////////////////////
/// Rotation
///////////////////////////////////////////////////////////////////////////////
type Rot struct {
	angle float64
	m     mgl64.Mat2
}

/// Identity rotation.
func MakeRot() Rot {
	return Rot{
		angle: 0,
		m:     mgl64.Ident2(),
	}
}

/// Initialize from an angle in radians
func MakeRotFromAngle(anglerad float64) Rot {
	return Rot{
		angle: anglerad,
		m:     mgl64.Rotate2D(anglerad),
	}
}

/// Get the angle in radians
func (r Rot) GetAngle() float64 {
	return r.angle
}

/// Get the x-axis
func (r Rot) GetXAxis() Vec2 {
	return RotVec2Mul(r, MakeVec2(1, 0))
}

/// Get the y-axis
func (r Rot) GetYAxis() Vec2 {
	return RotVec2Mul(r, MakeVec2(0, 1))
}

/// Rotate a vector
func RotVec2Mul(q Rot, v Vec2) Vec2 {
	w := q.m.Mul2x1(mgl64.Vec2{v.X, v.Y})
	return MakeVec2(w.X(), w.Y())
}

/// Inverse rotate a vector
func RotVec2MulT(q Rot, v Vec2) Vec2 {
	w := q.m.Transpose().Mul2x1(mgl64.Vec2{v.X, v.Y})
	return MakeVec2(w.X(), w.Y())
}

///////////////////////////////////////////////////////////////////////////////
/// A transform contains translation and rotation. It is used to represent
/// the position and orientation of rigid frames.
///////////////////////////////////////////////////////////////////////////////
type Transform struct {
	P Vec2
	Q Rot
}

/// Identity transform.
func MakeTransform() Transform {
	return Transform{
		P: MakeVec2(0, 0),
		Q: MakeRot(),
	}
}

/// Initialize using a position vector and an angle.
func MakeTransformFromPositionAndAngle(position Vec2, anglerad float64) Transform {
	return Transform{
		P: position,
		Q: MakeRotFromAngle(anglerad),
	}
}

func TransformVec2Mul(T Transform, v Vec2) Vec2 {
	return RotVec2Mul(T.Q, v).Add(T.P)
}

func TransformVec2MulT(T Transform, v Vec2) Vec2 {
	return RotVec2MulT(T.Q, v.Sub(T.P))
}

/// Returns the equivalent angle in [-pi, pi).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
