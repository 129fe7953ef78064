// Package metric_test validates the TSPLIB distance formulas.
// Focus:
//  1. Euclidean/Manhattan/Chebyshev variants on hand-checkable triangles.
//  2. CeilEuclidean2D rounds to the nearest integer in both directions.
//  3. ATT is the pseudo-Euclidean √((Δx²+Δy²)/10).
//  4. Geographical interprets DDD.MM components, is symmetric, and reports
//     the reference's +1 offset at zero separation.
//  5. XRay axis wrap at 360 degrees and the version-2 axis speeds.
package metric_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplib/metric"
)

func TestEuclidean(t *testing.T) {
	require.Equal(t, 5.0, metric.Euclidean2D(0, 0, 3, 4))
	require.Equal(t, 5.0, metric.Euclidean2D(3, 4, 0, 0))
	require.Equal(t, 3.0, metric.Euclidean3D(0, 0, 0, 1, 2, 2))
	require.Equal(t, 0.0, metric.Euclidean2D(1.5, -2.5, 1.5, -2.5))
}

func TestManhattan(t *testing.T) {
	require.Equal(t, 7.0, metric.Manhattan2D(0, 0, 3, 4))
	require.Equal(t, 7.0, metric.Manhattan2D(3, 4, 0, 0))
	require.Equal(t, 5.0, metric.Manhattan3D(0, 0, 0, 1, 2, 2))
}

func TestMax(t *testing.T) {
	require.Equal(t, 4.0, metric.Max2D(0, 0, 3, 4))
	require.Equal(t, 4.0, metric.Max2D(3, 4, 0, 0))
	require.Equal(t, 5.0, metric.Max3D(0, 0, 0, 1, 5, 2))
}

func TestCeilEuclidean2D_RoundsToNearest(t *testing.T) {
	// √2 ≈ 1.414 rounds down, √8 ≈ 2.828 rounds up.
	require.Equal(t, 1.0, metric.CeilEuclidean2D(0, 0, 1, 1))
	require.Equal(t, 3.0, metric.CeilEuclidean2D(0, 0, 2, 2))
	require.Equal(t, 5.0, metric.CeilEuclidean2D(0, 0, 3, 4))
}

func TestATT(t *testing.T) {
	// Δx²+Δy² = 10, so the scaled distance is exactly 1.
	require.Equal(t, 1.0, metric.ATT(0, 0, 1, 3))
	require.InDelta(t, 3.16227766, metric.ATT(0, 0, 10, 0), 1e-8)
}

func TestGeographical(t *testing.T) {
	// Zero separation reports the reference's +1 offset.
	require.InDelta(t, 1.0, metric.Geographical(38.24, 20.42, 38.24, 20.42), 1e-9)

	// 0.30 in DDD.MM is 30 minutes = half a degree of longitude; along the
	// equator that arc is EarthRadius·(π/360) km.
	want := metric.EarthRadius*(0.5*3.14159265358979/180) + 1
	require.InDelta(t, want, metric.Geographical(0, 0, 0, 0.30), 1e-3)

	// Symmetric in its arguments.
	ab := metric.Geographical(38.24, 20.42, 39.57, 26.15)
	ba := metric.Geographical(39.57, 26.15, 38.24, 20.42)
	require.InDelta(t, ab, ba, 1e-9)
	require.Greater(t, ab, 1.0)
}

func TestXRay_AxisWrap(t *testing.T) {
	// 355° to 5° is 10° through the wrap, not 350°.
	require.Equal(t, 1000.0, metric.XRay1(355, 0, 0, 5, 0, 0))
	require.Equal(t, 800.0, metric.XRay2(355, 0, 0, 5, 0, 0))

	// Without wrap the dominant axis wins.
	require.Equal(t, 700.0, metric.XRay1(0, 3, 0, 4, 10, 2))
	require.InDelta(t, 400.0, metric.XRay2(0, 3, 0, 5, 9, 2), 1e-9)
}
