package spatialmath

import (
	"math"

	"github.com/pkg/errors"
)

// See here for a thorough explanation: https://en.wikipedia.org/wiki/Axis%E2%80%93angle_representation
// An orientation can be expressed by an axis, i.e. a line from the origin to a point (rx, ry, rz) on the unit
// sphere, and a rotation theta around that axis.

// ErrZeroAxis is returned when an axis angle has no direction to rotate about.
var ErrZeroAxis = errors.New("cannot normalize axis angle with zero length axis")

// R4AA represents an R4 axis angle.
type R4AA struct {
	Theta float64
	RX    float64
	RY    float64
	RZ    float64
}

// NewR4AA returns the axis angle representing no rotation.
func NewR4AA() R4AA {
	return R4AA{Theta: 0, RX: 0, RY: 0, RZ: 1}
}

// Normalize returns r4 with its axis scaled onto the unit sphere.
func (r4 R4AA) Normalize() (R4AA, error) {
	norm := math.Sqrt(r4.RX*r4.RX + r4.RY*r4.RY + r4.RZ*r4.RZ)
	if norm == 0 {
		return R4AA{}, ErrZeroAxis
	}
	return R4AA{Theta: r4.Theta, RX: r4.RX / norm, RY: r4.RY / norm, RZ: r4.RZ / norm}, nil
}

// ToQuat converts an R4 axis angle to a unit quaternion. The axis does not need to be normalized.
// See: https://www.euclideanspace.com/maths/geometry/rotations/conversions/angleToQuaternion/index.htm
func (r4 R4AA) ToQuat() (Quaternion, error) {
	unit, err := r4.Normalize()
	if err != nil {
		return Quaternion{}, err
	}
	sinA := math.Sin(unit.Theta / 2)
	return Quaternion{
		W: math.Cos(unit.Theta / 2),
		X: unit.RX * sinA,
		Y: unit.RY * sinA,
		Z: unit.RZ * sinA,
	}, nil
}

// QuatToR4AA converts a unit quaternion to an R4 axis angle in the same way the C++ Eigen library does.
// https://eigen.tuxfamily.org/dox/AngleAxis_8h_source.html
// A quaternion with no vector part yields the x axis.
func QuatToR4AA(q Quaternion) R4AA {
	denom := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)

	angle := 2 * math.Atan2(denom, math.Abs(q.W))
	if q.W < 0 {
		angle *= -1
	}

	if denom < 1e-6 {
		return R4AA{angle, 1, 0, 0}
	}
	return R4AA{angle, q.X / denom, q.Y / denom, q.Z / denom}
}

// AxisAngles returns q in axis angle representation.
func (q Quaternion) AxisAngles() R4AA {
	return QuatToR4AA(q)
}
