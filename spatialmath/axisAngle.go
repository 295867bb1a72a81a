package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/ikmath/utils"
)

// See here for a thorough explanation: https://en.wikipedia.org/wiki/Axis%E2%80%93angle_representation
// An orientation can be expressed by an axis, i.e. a line from the origin to a point on the unit sphere,
// represented by (rx, ry, rz), and a rotation around that axis, theta.
// These four numbers can be used as-is (R4), or they can be converted to R3, where theta is multiplied by each of
// the unit sphere components to give a vector whose length is theta and whose direction is the original axis.

// R4AA represents an R4 axis angle. Theta is in radians.
type R4AA struct {
	Theta float64 `json:"th"`
	RX    float64 `json:"x"`
	RY    float64 `json:"y"`
	RZ    float64 `json:"z"`
}

// NewR4AA returns the axis angle signifying no rotation.
func NewR4AA() *R4AA {
	return &R4AA{Theta: 0, RX: 0, RY: 0, RZ: 1}
}

// Axis returns the rotation axis.
func (r4 *R4AA) Axis() r3.Vector {
	return r3.Vector{X: r4.RX, Y: r4.RY, Z: r4.RZ}
}

// ToR3 converts an R4 angle axis to R3.
func (r4 *R4AA) ToR3() r3.Vector {
	return r4.Axis().Mul(r4.Theta)
}

// ToQuat converts an R4 axis angle to a unit quaternion.
func (r4 *R4AA) ToQuat() Quaternion {
	return NewQuaternionFromAxisAngle(r4.Axis(), r4.Theta)
}

// Normalize scales the x, y, and z components of a R4 axis angle to be on the unit sphere.
// A zero axis is replaced by the z axis.
func (r4 *R4AA) Normalize() {
	norm := r4.Axis().Norm()
	if norm == 0 {
		r4.RX, r4.RY, r4.RZ = 0, 0, 1
		return
	}
	r4.RX /= norm
	r4.RY /= norm
	r4.RZ /= norm
}

// R3ToR4 converts an R3 angle axis to R4.
func R3ToR4(aa r3.Vector) *R4AA {
	theta := aa.Norm()
	if theta == 0 {
		return NewR4AA()
	}
	return &R4AA{theta, aa.X / theta, aa.Y / theta, aa.Z / theta}
}

// AxisAngles returns the rotation of q, which should be a unit quaternion, as an axis angle
// with Theta in [0, 2*pi].
func (q Quaternion) AxisAngles() *R4AA {
	cosHalf := utils.Clamp(float64(q.R), -1, 1)
	sinHalf := math.Sqrt(1 - cosHalf*cosHalf)
	if sinHalf < 1e-6 {
		return NewR4AA()
	}
	return &R4AA{
		Theta: 2 * math.Acos(cosHalf),
		RX:    float64(q.I) / sinHalf,
		RY:    float64(q.J) / sinHalf,
		RZ:    float64(q.K) / sinHalf,
	}
}
