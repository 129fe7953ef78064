// Package metric provides the pure distance functions of the TSPLIB format.
//
// Every function is a side-effect-free formula over raw coordinates:
//
//   - Euclidean2D / Euclidean3D — √Σ(Δᵢ²)
//   - Manhattan2D / Manhattan3D — Σ|Δᵢ|
//   - Max2D / Max3D             — max|Δᵢ| (Chebyshev)
//   - CeilEuclidean2D           — Euclidean rounded to the nearest integer
//   - Geographical              — great-circle distance on the TSPLIB sphere
//   - ATT                       — pseudo-Euclidean att48/att532 distance
//   - XRay1 / XRay2             — crystallography distances with a wrapped
//     rotation axis
//
// The parser dispatches into this package via WeightKind.Cost; the functions
// are exported so distance math is usable without parsing anything.
package metric
