// Package tsplib_test validates the individual data-section parsers.
// Focus:
//  1. TOUR_SECTION: a single trailing sentinel yields one tour; repeated
//     sentinel-closed runs yield one tour each, and a doubled sentinel
//     terminates the section cleanly.
//  2. DEPOT_SECTION collapses duplicates into a set.
//  3. NODE_COORD_SECTION honors the coordinate shape (3-D variants, the
//     NO_COORDS contradiction, the shape-unknown case) and counts lines
//     against DIMENSION.
//  4. DISPLAY_DATA_SECTION is always 2-D and ordered.
//  5. FIXED_EDGES_SECTION shares the edge-pair line shape.
//  6. Dimension-bounded sections starved of lines fail with
//     ErrUnexpectedEOF.
package tsplib_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplib"
)

func TestTourSection_SingleTour(t *testing.T) {
	const text = `
NAME: route
TYPE: TOUR
TOUR_SECTION
4 3 2 1
-1
EOF
`
	p, err := tsplib.ParseString(text)
	require.NoError(t, err)

	require.Len(t, p.Tours(), 1)
	require.Equal(t, []int{4, 3, 2, 1}, p.Tours()[0])
}

func TestTourSection_MultipleToursAndDoubledSentinel(t *testing.T) {
	const text = `
NAME: routes
TYPE: TOUR
TOUR_SECTION
1 2
3
-1
4 5 6
-1
-1
EOF
`
	p, err := tsplib.ParseString(text)
	require.NoError(t, err)

	require.Len(t, p.Tours(), 2)
	require.Equal(t, []int{1, 2, 3}, p.Tours()[0])
	require.Equal(t, []int{4, 5, 6}, p.Tours()[1])
}

func TestTourSection_NonNumericToken(t *testing.T) {
	const text = `
NAME: bad
TYPE: TOUR
TOUR_SECTION
1 2 x
-1
EOF
`
	_, err := tsplib.ParseString(text)
	require.ErrorIs(t, err, tsplib.ErrInvalidNumber)
}

func TestDepotSection_DuplicatesCollapse(t *testing.T) {
	const text = `
NAME: vrp
TYPE: CVRP
DIMENSION: 3
CAPACITY: 10
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 0
2 1 0
3 0 1
DEPOT_SECTION
1
2
1
-1
EOF
`
	p, err := tsplib.ParseString(text)
	require.NoError(t, err)

	require.Len(t, p.Depots(), 2)
	require.Contains(t, p.Depots(), 1)
	require.Contains(t, p.Depots(), 2)
}

func TestNodeCoordSection_ThreeDimensional(t *testing.T) {
	const text = `
NAME: cube
TYPE: TSP
DIMENSION: 2
EDGE_WEIGHT_TYPE: EUC_3D
NODE_COORD_SECTION
1 0 0 0
2 1 2 2
EOF
`
	p, err := tsplib.ParseString(text)
	require.NoError(t, err)

	require.Equal(t, tsplib.Coord3D, p.CoordKind())
	pt := p.NodeCoords()[2]
	require.Equal(t, []float64{1, 2, 2}, pt.Pos())
	require.Equal(t, 2.0, pt.Z())
	require.Equal(t, 3.0, p.Weight(1, 2))
}

func TestNodeCoordSection_NoCoordsContradiction(t *testing.T) {
	const text = `
NAME: odd
TYPE: TSP
DIMENSION: 2
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_TYPE: NO_COORDS
NODE_COORD_SECTION
1 0 0
2 1 1
EOF
`
	_, err := tsplib.ParseString(text)
	require.ErrorIs(t, err, tsplib.ErrInvalidEntry)
}

func TestNodeCoordSection_ShapeUnknownForExplicit(t *testing.T) {
	// EXPLICIT implies no coordinate shape; the section needs an explicit
	// NODE_COORD_TYPE to be decodable.
	const text = `
NAME: odd
TYPE: TSP
DIMENSION: 2
EDGE_WEIGHT_TYPE: EXPLICIT
EDGE_WEIGHT_FORMAT: FULL_MATRIX
NODE_COORD_SECTION
1 0 0
2 1 1
EOF
`
	_, err := tsplib.ParseString(text)
	require.ErrorIs(t, err, tsplib.ErrMissingEntry)
	require.Contains(t, err.Error(), "NODE_COORD_TYPE")
}

func TestNodeCoordSection_StarvedOfLines(t *testing.T) {
	const text = `
NAME: short
TYPE: TSP
DIMENSION: 3
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 0
2 1 1
`
	_, err := tsplib.ParseString(text)
	require.ErrorIs(t, err, tsplib.ErrUnexpectedEOF)
}

func TestEdgeDataSection_FormatEntryMissing(t *testing.T) {
	const text = `
NAME: hcp
TYPE: HCP
DIMENSION: 3
EDGE_DATA_SECTION
1 2
-1
EOF
`
	_, err := tsplib.ParseString(text)
	require.ErrorIs(t, err, tsplib.ErrMissingEntry)
	require.Contains(t, err.Error(), "EDGE_DATA_FORMAT")
}

func TestFixedEdgesSection_SharedPairShape(t *testing.T) {
	const text = `
NAME: pinned
TYPE: TSP
DIMENSION: 3
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 0
2 3 4
3 6 0
FIXED_EDGES_SECTION
1 2
2 3
-1
EOF
`
	p, err := tsplib.ParseString(text)
	require.NoError(t, err)

	require.Equal(t, []tsplib.Edge{{From: 1, To: 2}, {From: 2, To: 3}}, p.FixedEdges())
}

func TestDisplayDataSection_OrderedTwoD(t *testing.T) {
	const text = `
NAME: shown
TYPE: TSP
DIMENSION: 2
EDGE_WEIGHT_TYPE: EUC_3D
DISPLAY_DATA_TYPE: TWOD_DISPLAY
NODE_COORD_SECTION
1 0 0 0
2 1 2 2
DISPLAY_DATA_SECTION
1 10 20
2 30 40
EOF
`
	p, err := tsplib.ParseString(text)
	require.NoError(t, err)

	require.Equal(t, tsplib.Display2D, p.DisplayKind())
	require.Len(t, p.DisplayCoords(), 2)
	require.Equal(t, 1, p.DisplayCoords()[0].ID())
	require.Equal(t, []float64{30, 40}, p.DisplayCoords()[1].Pos())
}
