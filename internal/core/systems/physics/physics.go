package physics

// Planar geometry for the arena. Positions arrive in 3D but all force and
// bearing math ignores Z.

import "math"

// Vec3 is an immutable position or force value.
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// V2 builds a planar vector with Z = 0.
func V2(x, y float64) Vec3 { return Vec3{X: x, Y: y} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z} }
func (v Vec3) Scale(k float64) Vec3 { return Vec3{X: v.X * k, Y: v.Y * k, Z: v.Z * k} }
func (v Vec3) Length2() float64     { return math.Hypot(v.X, v.Y) }
func (v Vec3) Flat() Vec3           { return Vec3{X: v.X, Y: v.Y} }
func (v Vec3) Equal2(o Vec3) bool   { return v.X == o.X && v.Y == o.Y }

// Normalize2 returns the planar unit vector of v. A zero vector stays zero.
func (v Vec3) Normalize2() Vec3 {
	l := v.Length2()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / l, Y: v.Y / l}
}

// Distance computes the Euclidean distance between two points using X and Y only.
func Distance(a, b Vec3) float64 { return math.Hypot(b.X-a.X, b.Y-a.Y) }

// Distance2 computes Euclidean distance between two 2D points.
func Distance2(x1, y1, x2, y2 float64) float64 { return math.Hypot(x2-x1, y2-y1) }

// Bearing is the atan2 angle in radians of (to - from). It is 0 when the
// points coincide, so callers must guard tiny distances before using it as a
// force direction.
func Bearing(from, to Vec3) float64 { return math.Atan2(to.Y-from.Y, to.X-from.X) }

// FromAngle returns a planar vector of the given magnitude pointing at angle.
func FromAngle(angle, magnitude float64) Vec3 {
	return Vec3{X: math.Cos(angle) * magnitude, Y: math.Sin(angle) * magnitude}
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// NormalizeAngle keeps angle in [0, 2π).
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}
