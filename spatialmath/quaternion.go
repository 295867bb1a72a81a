// Package spatialmath defines the quaternion type used for orientation math in inverse kinematics.
package spatialmath

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"

	"go.viam.com/ikmath/utils"
)

const (
	// zeroEpsilon is the magnitude below which Zero snaps a component to exactly 0.
	zeroEpsilon = 0.0001

	// rightAngleEpsilon is how close, in degrees, an angle must be to 90 to be treated as a right angle.
	rightAngleEpsilon = 1e-4
)

// Quaternion is a single precision quaternion with scalar part R and imaginary parts I, J and K.
// Nothing forces it to be a unit quaternion; call Normalized before treating it as a rotation.
type Quaternion struct {
	R, I, J, K float32
}

// NewQuaternion returns the quaternion r + i*I + j*J + k*K.
func NewQuaternion(r, i, j, k float32) Quaternion {
	return Quaternion{R: r, I: i, J: j, K: k}
}

// Identity returns the quaternion signifying no rotation.
func Identity() Quaternion {
	return Quaternion{R: 1}
}

// Set overwrites all four components of q.
func (q *Quaternion) Set(r, i, j, k float32) {
	q.R = r
	q.I = i
	q.J = j
	q.K = k
}

// Length returns the Euclidean norm of q.
func (q Quaternion) Length() float32 {
	return float32(math.Sqrt(float64(q.R*q.R + q.I*q.I + q.J*q.J + q.K*q.K)))
}

// Normalized returns q scaled to unit length. The zero quaternion yields NaN components.
func (q Quaternion) Normalized() Quaternion {
	l := q.Length()
	return Quaternion{q.R / l, q.I / l, q.J / l, q.K / l}
}

// Conj returns the conjugate of q, which is its inverse when q is a unit quaternion.
func (q Quaternion) Conj() Quaternion {
	return Quaternion{q.R, -q.I, -q.J, -q.K}
}

// Neg returns -q.
func (q Quaternion) Neg() Quaternion {
	return Quaternion{-q.R, -q.I, -q.J, -q.K}
}

// Add returns q + b.
func (q Quaternion) Add(b Quaternion) Quaternion {
	return Quaternion{q.R + b.R, q.I + b.I, q.J + b.J, q.K + b.K}
}

// Sub returns q - b.
func (q Quaternion) Sub(b Quaternion) Quaternion {
	return q.Add(b.Neg())
}

// Mul returns the Hamilton product q * b. The product does not commute, so
// rotating p by rot is written rot.Mul(p).Mul(rot.Conj()).
func (q Quaternion) Mul(b Quaternion) Quaternion {
	var res Quaternion
	res.R = q.R*b.R - (q.I*b.I + q.J*b.J + q.K*b.K)
	res.I = q.R*b.I + b.R*q.I + q.J*b.K - q.K*b.J
	res.J = q.R*b.J + b.R*q.J + q.K*b.I - q.I*b.K
	res.K = q.R*b.K + b.R*q.K + q.I*b.J - q.J*b.I
	return res
}

// Scale multiplies every component of q by s.
func (q Quaternion) Scale(s float32) Quaternion {
	return Quaternion{q.R * s, q.I * s, q.J * s, q.K * s}
}

// Scale64 is Scale for a double precision factor, which is rounded to float32 first.
func (q Quaternion) Scale64(s float64) Quaternion {
	return q.Scale(float32(s))
}

// Div returns q scaled by 1/b. Dividing by zero yields infinite or NaN components.
func (q Quaternion) Div(b float64) Quaternion {
	return q.Scale(float32(1 / b))
}

// Dot returns the four dimensional dot product of q and b.
func (q Quaternion) Dot(b Quaternion) float32 {
	return q.R*b.R + q.I*b.I + q.J*b.J + q.K*b.K
}

// dot64 is Dot accumulated in float64.
func (q Quaternion) dot64(b Quaternion) float64 {
	return float64(q.R)*float64(b.R) + float64(q.I)*float64(b.I) + float64(q.J)*float64(b.J) + float64(q.K)*float64(b.K)
}

// AngleBetween returns the angle in degrees between q and other treated as 4D vectors.
// The cosine is clamped to [-1, 1] so rounding never pushes it outside the domain of acos.
func (q Quaternion) AngleBetween(other Quaternion) float64 {
	cos := q.dot64(other) / math.Sqrt(q.dot64(q)*other.dot64(other))
	return utils.RadToDeg(math.Acos(utils.Clamp(cos, -1, 1)))
}

// AngleRelativeTo is AngleRelativeToAxis around the k axis.
func (q Quaternion) AngleRelativeTo(other Quaternion) float64 {
	return q.AngleRelativeToAxis(other, Quaternion{0, 0, 0, 1})
}

// AngleRelativeToAxis returns the angle in degrees from q to other folded into [0, 360),
// using axis to decide the direction of rotation.
//
// q is rotated by a fixed probe (90 degrees, or 45 degrees when q and other are
// already at a right angle) around axis. If the probe moves q more than a right angle
// away from other, the rotation is taken to run the other way around the axis.
func (q Quaternion) AngleRelativeToAxis(other, axis Quaternion) float64 {
	theta := q.AngleBetween(other)
	rightAngle := utils.Float64AlmostEqual(theta, 90, rightAngleEpsilon)

	// half of the probe angle
	ro := utils.DegToRad(90. / 2.)
	if rightAngle {
		ro = utils.DegToRad(45. / 2.)
	}

	sin := math.Sin(ro)
	rot := Quaternion{
		float32(math.Cos(ro)),
		float32(float64(axis.I) * sin),
		float32(float64(axis.J) * sin),
		float32(float64(axis.K) * sin),
	}
	reversed := other.AngleBetween(rot.Mul(q).Mul(rot.Conj())) > 90

	switch {
	case rightAngle && reversed:
		return 270
	case rightAngle:
		return 90
	case reversed:
		return 360 - theta
	default:
		return theta
	}
}

// Zero snaps every component of q with magnitude below 0.0001 to exactly 0.
func (q *Quaternion) Zero() {
	q.R = utils.SnapToZero(q.R, zeroEpsilon)
	q.I = utils.SnapToZero(q.I, zeroEpsilon)
	q.J = utils.SnapToZero(q.J, zeroEpsilon)
	q.K = utils.SnapToZero(q.K, zeroEpsilon)
}

// Zeroed returns a copy of q with Zero applied, leaving q untouched.
func (q Quaternion) Zeroed() Quaternion {
	q.Zero()
	return q
}

// AlmostEqual reports whether every component of q is within tol of the same component of other.
func (q Quaternion) AlmostEqual(other Quaternion, tol float64) bool {
	return utils.Float64AlmostEqual(float64(q.R), float64(other.R), tol) &&
		utils.Float64AlmostEqual(float64(q.I), float64(other.I), tol) &&
		utils.Float64AlmostEqual(float64(q.J), float64(other.J), tol) &&
		utils.Float64AlmostEqual(float64(q.K), float64(other.K), tol)
}

// String renders the four components separated by spaces. It is meant for diagnostics only.
func (q Quaternion) String() string {
	parts := make([]string, 0, 4)
	for _, c := range []float32{q.R, q.I, q.J, q.K} {
		if c == 0 {
			c = 0
		}
		parts = append(parts, strconv.FormatFloat(float64(c), 'g', -1, 32))
	}
	return strings.Join(parts, " ")
}

// Print writes q to stdout.
func (q Quaternion) Print() {
	fmt.Println(q.String())
}

// MarshalLogObject lets a quaternion be logged as a structured zap field.
func (q Quaternion) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat32("r", q.R)
	enc.AddFloat32("i", q.I)
	enc.AddFloat32("j", q.J)
	enc.AddFloat32("k", q.K)
	return nil
}
