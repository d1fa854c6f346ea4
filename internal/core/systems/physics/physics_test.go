package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func drawVec(t *rapid.T, label string) Vec3 {
	return Vec3{
		X: rapid.Float64Range(-1000, 1000).Draw(t, label+".x"),
		Y: rapid.Float64Range(-1000, 1000).Draw(t, label+".y"),
		Z: rapid.Float64Range(-1000, 1000).Draw(t, label+".z"),
	}
}

func TestDistance_Symmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawVec(t, "a")
		b := drawVec(t, "b")
		if Distance(a, b) != Distance(b, a) {
			t.Fatalf("distance not symmetric: %v vs %v", Distance(a, b), Distance(b, a))
		}
		if Distance(a, a) != 0 {
			t.Fatalf("distance to self is %v", Distance(a, a))
		}
	})
}

func TestBearing_Opposite(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawVec(t, "a")
		angle := rapid.Float64Range(0, 2*math.Pi).Draw(t, "angle")
		radius := rapid.Float64Range(0.01, 1000).Draw(t, "radius")
		b := a.Add(FromAngle(angle, radius))

		diff := NormalizeAngle(Bearing(a, b) - Bearing(b, a) - math.Pi)
		if math.Min(diff, 2*math.Pi-diff) > 1e-9 {
			t.Fatalf("bearing(a,b)=%v bearing(b,a)=%v", Bearing(a, b), Bearing(b, a))
		}
	})
}

func TestDistance_IgnoresZ(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(Vec3{X: 0, Y: 0, Z: 100}, Vec3{X: 3, Y: 4, Z: -7}), 1e-12)
}

func TestBearing(t *testing.T) {
	origin := Vec3{}
	assert.InDelta(t, 0, Bearing(origin, V2(1, 0)), 1e-12)
	assert.InDelta(t, math.Pi/2, Bearing(origin, V2(0, 1)), 1e-12)
	assert.InDelta(t, math.Pi, Bearing(origin, V2(-1, 0)), 1e-12)
	assert.Equal(t, 0.0, Bearing(origin, origin))
}

func TestNormalize2(t *testing.T) {
	v := V2(3, 4).Normalize2()
	assert.InDelta(t, 1.0, v.Length2(), 1e-12)
	assert.Equal(t, Vec3{}, Vec3{}.Normalize2())
}

func TestDegrees(t *testing.T) {
	assert.InDelta(t, 180.0, Degrees(math.Pi), 1e-12)
	assert.InDelta(t, -90.0, Degrees(-math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi/4, Radians(45), 1e-12)
}
