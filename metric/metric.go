// Package metric — TSPLIB distance formulas.
//
// Design:
//   - Plain float64 arguments, no point abstraction: callers pass the
//     components they have, formulas stay allocation-free.
//   - Deterministic and side-effect free; no validation (NaN in, NaN out).
//
// Complexity: every function is O(1).
package metric

import "math"

// EarthRadius is the sphere radius (in km) fixed by the TSPLIB
// specification for geographical distances.
const EarthRadius = 6378.388

// Euclidean2D returns the 2D Euclidean distance between (x1,y1) and (x2,y2).
func Euclidean2D(x1, y1, x2, y2 float64) float64 {
	dx, dy := x1-x2, y1-y2
	return math.Sqrt(dx*dx + dy*dy)
}

// Euclidean3D returns the 3D Euclidean distance between two points.
func Euclidean3D(x1, y1, z1, x2, y2, z2 float64) float64 {
	dx, dy, dz := x1-x2, y1-y2, z1-z2
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Manhattan2D returns the 2D Manhattan distance between two points.
func Manhattan2D(x1, y1, x2, y2 float64) float64 {
	return math.Abs(x1-x2) + math.Abs(y1-y2)
}

// Manhattan3D returns the 3D Manhattan distance between two points.
func Manhattan3D(x1, y1, z1, x2, y2, z2 float64) float64 {
	return math.Abs(x1-x2) + math.Abs(y1-y2) + math.Abs(z1-z2)
}

// Max2D returns the 2D maximum (Chebyshev) distance between two points.
func Max2D(x1, y1, x2, y2 float64) float64 {
	return math.Max(math.Abs(x1-x2), math.Abs(y1-y2))
}

// Max3D returns the 3D maximum (Chebyshev) distance between two points.
func Max3D(x1, y1, z1, x2, y2, z2 float64) float64 {
	return math.Max(math.Abs(x1-x2), math.Max(math.Abs(y1-y2), math.Abs(z1-z2)))
}

// CeilEuclidean2D returns the 2D Euclidean distance rounded to the nearest
// integer, as used by CEIL_2D instances.
func CeilEuclidean2D(x1, y1, x2, y2 float64) float64 {
	return math.Round(Euclidean2D(x1, y1, x2, y2))
}

// Geographical returns the great-circle distance between two points whose
// components encode latitude/longitude as DDD.MM (degrees and minutes).
//
// Each component is converted to radians via PI·(deg + 5·min/3)/180, then
// the spherical law of cosines is applied on a sphere of radius EarthRadius;
// the TSPLIB reference adds 1 to the result.
func Geographical(x1, y1, x2, y2 float64) float64 {
	latA, lonA := toRadians(x1), toRadians(y1)
	latB, lonB := toRadians(x2), toRadians(y2)

	q1 := math.Cos(lonA - lonB)
	q2 := math.Cos(latA - latB)
	q3 := math.Cos(latA + latB)
	q4 := math.Acos(0.5 * ((1+q1)*q2 - (1-q1)*q3))

	return EarthRadius*q4 + 1
}

// toRadians converts a DDD.MM degrees-and-minutes value to radians.
func toRadians(x float64) float64 {
	deg := math.Trunc(x)
	min := x - deg
	return math.Pi * (deg + 5*min/3) / 180
}

// ATT returns the pseudo-Euclidean distance of the AT&T datasets
// (att48, att532): √((Δx² + Δy²)/10).
func ATT(x1, y1, x2, y2 float64) float64 {
	dx, dy := x1-x2, y1-y2
	return math.Sqrt((dx*dx + dy*dy) / 10)
}

// XRay1 returns the crystallography distance, version 1. The x axis is a
// rotation angle, so its difference wraps at 360 degrees; the result is the
// dominant axis motion scaled by 100.
func XRay1(x1, y1, z1, x2, y2, z2 float64) float64 {
	dx := math.Abs(x1 - x2)
	p := math.Min(dx, math.Abs(dx-360))
	c := math.Abs(y1 - y2)
	t := math.Abs(z1 - z2)
	return 100 * math.Max(p, math.Max(c, t))
}

// XRay2 returns the crystallography distance, version 2: as XRay1 but with
// per-axis speeds 1.25, 1.5 and 1.15.
func XRay2(x1, y1, z1, x2, y2, z2 float64) float64 {
	dx := math.Abs(x1 - x2)
	p := math.Min(dx, math.Abs(dx-360))
	c := math.Abs(y1 - y2)
	t := math.Abs(z1 - z2)
	return 100 * math.Max(p/1.25, math.Max(c/1.5, t/1.15))
}
