package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// FromQuatNumber rounds a gonum quaternion to a Quaternion.
func FromQuatNumber(q quat.Number) Quaternion {
	return Quaternion{float32(q.Real), float32(q.Imag), float32(q.Jmag), float32(q.Kmag)}
}

// QuatNumber widens q to a gonum quaternion.
func (q Quaternion) QuatNumber() quat.Number {
	return quat.Number{Real: float64(q.R), Imag: float64(q.I), Jmag: float64(q.J), Kmag: float64(q.K)}
}

// FromMgl converts a mathgl quaternion.
func FromMgl(q mgl32.Quat) Quaternion {
	return Quaternion{q.W, q.V[0], q.V[1], q.V[2]}
}

// Mgl converts q to a mathgl quaternion.
func (q Quaternion) Mgl() mgl32.Quat {
	return mgl32.Quat{W: q.R, V: mgl32.Vec3{q.I, q.J, q.K}}
}

// NewQuaternionFromAxisAngle returns the unit quaternion rotating theta radians about axis.
// The axis does not need to be normalized. A zero axis gives the identity.
// See: https://www.euclideanspace.com/maths/geometry/rotations/conversions/angleToQuaternion/index.htm
func NewQuaternionFromAxisAngle(axis r3.Vector, theta float64) Quaternion {
	if axis.Norm() == 0 {
		return Identity()
	}
	axis = axis.Normalize()
	sinA := math.Sin(theta / 2)
	return Quaternion{
		float32(math.Cos(theta / 2)),
		float32(axis.X * sinA),
		float32(axis.Y * sinA),
		float32(axis.Z * sinA),
	}
}

// Rotate returns v rotated by q, computed as q * (0, v) * conj(q). q should be a unit quaternion.
func (q Quaternion) Rotate(v r3.Vector) r3.Vector {
	p := Quaternion{0, float32(v.X), float32(v.Y), float32(v.Z)}
	rotated := q.Mul(p).Mul(q.Conj())
	return r3.Vector{X: float64(rotated.I), Y: float64(rotated.J), Z: float64(rotated.K)}
}
