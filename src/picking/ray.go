package picking

import "math"

// Vec3 is a float64 3D vector in world space
type Vec3 struct {
	X, Y, Z float64
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// parallelEpsilon is the smallest |Dir.Z| still treated as crossing a z plane
const parallelEpsilon = 1e-9

type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// IntersectPlane returns the distance along the ray to the plane z = planeZ.
// ok is false when the ray is parallel to the plane or points away from it.
func (r Ray) IntersectPlane(planeZ float64) (float64, bool) {
	if math.Abs(r.Dir.Z) < parallelEpsilon {
		return 0, false
	}
	d := (planeZ - r.Origin.Z) / r.Dir.Z
	if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, false
	}
	return d, true
}

func (r Ray) PointAt(d float64) Vec3 {
	return V3Add(r.Origin, V3Scale(r.Dir, d))
}
