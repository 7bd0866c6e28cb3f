package spatialmath

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

// RotationMatrix is a 3x3 rotation matrix stored in row-major order, so rm[row][col].
// Nothing checks that a RotationMatrix is orthonormal with determinant +1.
type RotationMatrix [3][3]float64

// RotationMatrix implements mat.Matrix so it can be used with gonum directly.
var _ mat.Matrix = RotationMatrix{}

// RotationMatrixFromMat3 converts a column-major mathgl matrix.
func RotationMatrixFromMat3(m mgl64.Mat3) RotationMatrix {
	var rm RotationMatrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rm[i][j] = m.At(i, j)
		}
	}
	return rm
}

// QuatToRotationMatrix converts q to a rotation matrix. q is assumed to already be a unit quaternion; it is
// not normalized first, so a non-unit q produces a matrix that is not a proper rotation.
func QuatToRotationMatrix(q Quaternion) RotationMatrix {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	return RotationMatrix{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	}
}

// RotationMatrix returns the rotation matrix of the unit quaternion q.
func (q Quaternion) RotationMatrix() RotationMatrix {
	return QuatToRotationMatrix(q)
}

// RotationMatrixToQuat converts a rotation matrix to a quaternion using Shepperd's method: the trace picks which
// component is computed from a square root so that the divisor stays away from zero.
// The branch order and strict comparisons matter. For degenerate inputs such as 180 degree rotations, a different
// tie-break produces the other sign of the double cover.
// The input is not validated: a matrix that is not a rotation gives a quaternion that does not encode it, and NaN
// entries propagate to the result.
func RotationMatrixToQuat(m RotationMatrix) Quaternion {
	trace := m.Trace()

	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		return Quaternion{
			W: 0.25 / s,
			X: (m[2][1] - m[1][2]) * s,
			Y: (m[0][2] - m[2][0]) * s,
			Z: (m[1][0] - m[0][1]) * s,
		}
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := 2 * math.Sqrt(1+m[0][0]-m[1][1]-m[2][2])
		return Quaternion{
			W: (m[2][1] - m[1][2]) / s,
			X: 0.25 * s,
			Y: (m[0][1] + m[1][0]) / s,
			Z: (m[0][2] + m[2][0]) / s,
		}
	case m[1][1] > m[2][2]:
		s := 2 * math.Sqrt(1+m[1][1]-m[0][0]-m[2][2])
		return Quaternion{
			W: (m[0][2] - m[2][0]) / s,
			X: (m[0][1] + m[1][0]) / s,
			Y: 0.25 * s,
			Z: (m[1][2] + m[2][1]) / s,
		}
	default:
		s := 2 * math.Sqrt(1+m[2][2]-m[0][0]-m[1][1])
		return Quaternion{
			W: (m[1][0] - m[0][1]) / s,
			X: (m[0][2] + m[2][0]) / s,
			Y: (m[1][2] + m[2][1]) / s,
			Z: 0.25 * s,
		}
	}
}

// Quaternion returns the quaternion encoding the rotation rm.
func (rm RotationMatrix) Quaternion() Quaternion {
	return RotationMatrixToQuat(rm)
}

// Dims returns 3, 3.
func (rm RotationMatrix) Dims() (r, c int) {
	return 3, 3
}

// At returns the element at row i, column j.
func (rm RotationMatrix) At(i, j int) float64 {
	return rm[i][j]
}

// T returns the transpose as a mat.Matrix. Use Transpose for a RotationMatrix value.
func (rm RotationMatrix) T() mat.Matrix {
	return mat.Transpose{Matrix: rm}
}

// Transpose returns the transposed matrix, which is the inverse rotation for a proper rotation matrix.
func (rm RotationMatrix) Transpose() RotationMatrix {
	var t RotationMatrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[j][i] = rm[i][j]
		}
	}
	return t
}

// Row returns row i.
func (rm RotationMatrix) Row(i int) [3]float64 {
	return rm[i]
}

// Trace returns the sum of the diagonal.
func (rm RotationMatrix) Trace() float64 {
	return rm[0][0] + rm[1][1] + rm[2][2]
}

// Det returns the determinant, which is +1 for a proper rotation.
func (rm RotationMatrix) Det() float64 {
	return mat.Det(rm)
}

// Dense copies rm into a new gonum dense matrix.
func (rm RotationMatrix) Dense() *mat.Dense {
	data := make([]float64, 0, 9)
	for _, row := range rm {
		data = append(data, row[:]...)
	}
	return mat.NewDense(3, 3, data)
}

// Mat3 returns rm as a column-major mathgl matrix.
func (rm RotationMatrix) Mat3() mgl64.Mat3 {
	return mgl64.Mat3FromRows(
		mgl64.Vec3(rm[0]),
		mgl64.Vec3(rm[1]),
		mgl64.Vec3(rm[2]),
	)
}

// String renders the matrix one row per line with space separated values.
func (rm RotationMatrix) String() string {
	rows := make([]string, 0, 3)
	for _, row := range rm {
		rows = append(rows, formatFloat(row[0])+" "+formatFloat(row[1])+" "+formatFloat(row[2]))
	}
	return strings.Join(rows, "\n")
}
