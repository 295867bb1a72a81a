package spatialmath

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestR4AA(t *testing.T) {
	th := math.Pi / 4
	aa45x := &R4AA{th, 1, 0, 0}

	q := aa45x.ToQuat()
	test.That(t, q.R, test.ShouldAlmostEqual, math.Cos(th/2), 1e-6)
	test.That(t, q.I, test.ShouldAlmostEqual, math.Sin(th/2), 1e-6)
	test.That(t, q.J, test.ShouldEqual, float32(0))
	test.That(t, q.K, test.ShouldEqual, float32(0))

	back := q.AxisAngles()
	test.That(t, back.Theta, test.ShouldAlmostEqual, th, 1e-6)
	test.That(t, back.RX, test.ShouldAlmostEqual, 1, 1e-6)
	test.That(t, back.RY, test.ShouldAlmostEqual, 0)
	test.That(t, back.RZ, test.ShouldAlmostEqual, 0)

	test.That(t, Identity().AxisAngles(), test.ShouldResemble, NewR4AA())
}

func TestR4AANormalize(t *testing.T) {
	aa := &R4AA{1, 0, 3, 4}
	aa.Normalize()
	test.That(t, aa.RY, test.ShouldAlmostEqual, 0.6)
	test.That(t, aa.RZ, test.ShouldAlmostEqual, 0.8)

	zero := &R4AA{1, 0, 0, 0}
	zero.Normalize()
	test.That(t, zero.Axis(), test.ShouldResemble, r3.Vector{Z: 1})
}

func TestR3R4(t *testing.T) {
	r3aa := r3.Vector{X: 0, Y: 1.5, Z: -2}
	r4 := R3ToR4(r3aa)
	test.That(t, r4.Theta, test.ShouldAlmostEqual, 2.5)
	test.That(t, r4.ToR3().Sub(r3aa).Norm(), test.ShouldAlmostEqual, 0)
	test.That(t, R3ToR4(r3.Vector{}), test.ShouldResemble, NewR4AA())

	// the same rotation through both parameterizations moves a vector to the same place
	v := r3.Vector{X: 1, Y: 2, Z: 3}
	viaQuat := r4.ToQuat().Rotate(v)
	viaAxisAngle := r4.ToQuat().AxisAngles().ToQuat().Rotate(v)
	test.That(t, viaQuat.Sub(viaAxisAngle).Norm(), test.ShouldAlmostEqual, 0, 1e-5)
}

func TestR4AAJSON(t *testing.T) {
	data, err := json.Marshal(&R4AA{1, 0, 0, 1})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldEqual, `{"th":1,"x":0,"y":0,"z":1}`)

	var aa R4AA
	test.That(t, json.Unmarshal(data, &aa), test.ShouldBeNil)
	test.That(t, aa, test.ShouldResemble, R4AA{1, 0, 0, 1})
}
