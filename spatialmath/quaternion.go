// Package spatialmath defines a quaternion value type and its conversions to and from 3x3 rotation matrices.
package spatialmath

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
)

var (
	// ErrZeroNormInverse is returned when inverting a quaternion whose squared norm is exactly zero.
	ErrZeroNormInverse = errors.New("cannot invert a quaternion with zero norm")
	// ErrZeroNormNormalize is returned when normalizing a quaternion whose norm is exactly zero.
	ErrZeroNormNormalize = errors.New("cannot normalize a quaternion with zero norm")
)

// Quaternion is a four component hypercomplex number with scalar part W and vector part (X, Y, Z).
// It is a plain value: every operation returns a new Quaternion and none modifies its receiver.
// Because it only holds float64 fields, == on two Quaternions agrees with Equal and the type may be
// used as a map key.
type Quaternion struct {
	W float64
	X float64
	Y float64
	Z float64
}

// NewQuaternion returns the quaternion (w, x, y, z).
func NewQuaternion(w, x, y, z float64) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// Identity returns the quaternion representing no rotation.
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// FromNumber converts a gonum quaternion.
func FromNumber(n quat.Number) Quaternion {
	return Quaternion{W: n.Real, X: n.Imag, Y: n.Jmag, Z: n.Kmag}
}

// Number returns q as a gonum quaternion.
func (q Quaternion) Number() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

// FromMgl converts a mathgl quaternion.
func FromMgl(m mgl64.Quat) Quaternion {
	return Quaternion{W: m.W, X: m.V[0], Y: m.V[1], Z: m.V[2]}
}

// Mgl returns q as a mathgl quaternion.
func (q Quaternion) Mgl() mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

// Add returns the componentwise sum a+b.
func Add(a, b Quaternion) Quaternion {
	return FromNumber(quat.Add(a.Number(), b.Number()))
}

// Sub returns the componentwise difference a-b.
func Sub(a, b Quaternion) Quaternion {
	return FromNumber(quat.Sub(a.Number(), b.Number()))
}

// Mul returns the Hamilton product a*b. The product is not commutative.
//
//	w = w1w2 - x1x2 - y1y2 - z1z2
//	x = w1x2 + x1w2 + y1z2 - z1y2
//	y = w1y2 - x1z2 + y1w2 + z1x2
//	z = w1z2 + x1y2 - y1x2 + z1w2
func Mul(a, b Quaternion) Quaternion {
	return FromNumber(quat.Mul(a.Number(), b.Number()))
}

// Add returns q+o.
func (q Quaternion) Add(o Quaternion) Quaternion {
	return Add(q, o)
}

// Sub returns q-o.
func (q Quaternion) Sub(o Quaternion) Quaternion {
	return Sub(q, o)
}

// Mul returns the Hamilton product q*o.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Mul(q, o)
}

// Scale returns q with every component multiplied by f.
func (q Quaternion) Scale(f float64) Quaternion {
	return FromNumber(quat.Scale(f, q.Number()))
}

// Negate returns -q, which encodes the same rotation as q.
func (q Quaternion) Negate() Quaternion {
	return q.Scale(-1)
}

// Conjugate returns (w, -x, -y, -z).
func (q Quaternion) Conjugate() Quaternion {
	return FromNumber(quat.Conj(q.Number()))
}

func (q Quaternion) normSquared() float64 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Norm returns the Euclidean length of q taken as a 4-vector.
// quat.Abs rescales to avoid overflow, which can change the last bits, so the sum of squares is used directly.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.normSquared())
}

// Inverse returns the conjugate of q divided by its squared norm.
// Only an exactly zero squared norm is rejected; a tiny but nonzero quaternion yields a large finite result.
func (q Quaternion) Inverse() (Quaternion, error) {
	n := q.normSquared()
	if n == 0 {
		return Quaternion{}, ErrZeroNormInverse
	}
	return q.Conjugate().Scale(1 / n), nil
}

// Normalize returns q scaled to unit length.
func (q Quaternion) Normalize() (Quaternion, error) {
	n := q.Norm()
	if n == 0 {
		return Quaternion{}, ErrZeroNormNormalize
	}
	return q.Scale(1 / n), nil
}

// Equal reports whether all four components of q and o are equal under IEEE-754 comparison.
// There is no tolerance; NaN components are never equal.
func (q Quaternion) Equal(o Quaternion) bool {
	return q.W == o.W && q.X == o.X && q.Y == o.Y && q.Z == o.Z
}

// NotEqual is the negation of Equal.
func (q Quaternion) NotEqual(o Quaternion) bool {
	return !q.Equal(o)
}

// Hash returns a hash of q consistent with Equal: quaternions that are Equal hash identically.
func (q Quaternion) Hash() uint64 {
	var buf [32]byte
	for i, f := range [4]float64{q.W, q.X, q.Y, q.Z} {
		// -0 == +0, so both must hash the same.
		if f == 0 {
			f = 0
		}
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	return xxhash.Sum64(buf[:])
}

// QuaternionAlmostEqual reports whether each component of a and b differs by no more than tol.
// a and -a are not considered almost equal; see SameRotation.
func QuaternionAlmostEqual(a, b Quaternion, tol float64) bool {
	return math.Abs(a.W-b.W) <= tol &&
		math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// SameRotation reports whether a and b encode the same rotation within tol, allowing for the double cover.
func SameRotation(a, b Quaternion, tol float64) bool {
	return QuaternionAlmostEqual(a, b, tol) || QuaternionAlmostEqual(a, b.Negate(), tol)
}

// String renders q as "Quaternion(W: w, X: x, Y: y, Z: z)" using the shortest text that round trips each component.
func (q Quaternion) String() string {
	return "Quaternion(W: " + formatFloat(q.W) +
		", X: " + formatFloat(q.X) +
		", Y: " + formatFloat(q.Y) +
		", Z: " + formatFloat(q.Z) + ")"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
