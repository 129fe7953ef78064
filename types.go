// SPDX-License-Identifier: MIT

// Package tsplib: closed format enumerations and small value types.
//
// Each enumeration mirrors one TSPLIB specification keyword and comes with
// two conversions, used by different call sites:
//
//   - a strict Parse<X>(token) that fails with ErrInvalidInput on an
//     unrecognized token (used while handling "KEY: value" lines);
//   - a lenient <X>FromToken(token) that falls back to the Undefined
//     sentinel (for callers classifying tokens without failing).
//
// The zero value of every enumeration is its Undefined sentinel, so a
// Problem built from a file that omitted a keyword still answers weight
// queries (returning a conventional 0 for undefined/custom kinds).

package tsplib

import "github.com/katalvlaran/tsplib/metric"

// Kind is the TYPE specifier of a dataset.
type Kind int

const (
	// KindUndefined means the problem type is not available.
	KindUndefined Kind = iota
	// KindTSP is the symmetric travelling salesman problem.
	KindTSP
	// KindATSP is the asymmetric travelling salesman problem.
	KindATSP
	// KindSOP is the sequential ordering problem.
	KindSOP
	// KindHCP is the Hamiltonian cycle problem.
	KindHCP
	// KindCVRP is the capacitated vehicle routing problem.
	KindCVRP
	// KindTour is a collection of tours.
	KindTour
)

// ParseKind converts a TYPE token, failing on unrecognized input.
func ParseKind(token string) (Kind, error) {
	if k := KindFromToken(token); k != KindUndefined {
		return k, nil
	}
	return KindUndefined, invalidInput(KeyType, token)
}

// KindFromToken converts a TYPE token, defaulting to KindUndefined.
func KindFromToken(token string) Kind {
	switch token {
	case "TSP":
		return KindTSP
	case "ATSP":
		return KindATSP
	case "SOP":
		return KindSOP
	case "HCP":
		return KindHCP
	case "CVRP":
		return KindCVRP
	case "TOUR":
		return KindTour
	default:
		return KindUndefined
	}
}

// String returns the TSPLIB token for k.
func (k Kind) String() string {
	switch k {
	case KindTSP:
		return "TSP"
	case KindATSP:
		return "ATSP"
	case KindSOP:
		return "SOP"
	case KindHCP:
		return "HCP"
	case KindCVRP:
		return "CVRP"
	case KindTour:
		return "TOUR"
	default:
		return "UNDEFINED"
	}
}

// WeightKind is the EDGE_WEIGHT_TYPE specifier: how edge weights are
// calculated (or that they are given explicitly).
type WeightKind int

const (
	// WeightUndefined means no distance function is given.
	WeightUndefined WeightKind = iota
	// WeightExplicit means weights are listed in EDGE_WEIGHT_SECTION.
	WeightExplicit
	// WeightEuc2D is the two-dimensional Euclidean distance.
	WeightEuc2D
	// WeightEuc3D is the three-dimensional Euclidean distance.
	WeightEuc3D
	// WeightMax2D is the two-dimensional maximum (Chebyshev) distance.
	WeightMax2D
	// WeightMax3D is the three-dimensional maximum (Chebyshev) distance.
	WeightMax3D
	// WeightMan2D is the two-dimensional Manhattan distance.
	WeightMan2D
	// WeightMan3D is the three-dimensional Manhattan distance.
	WeightMan3D
	// WeightCeil2D is the rounded two-dimensional Euclidean distance.
	WeightCeil2D
	// WeightGeo is the geographical great-circle distance.
	WeightGeo
	// WeightATT is the scaled Euclidean distance of the att48/att532 sets.
	WeightATT
	// WeightXRay1 is the crystallography distance, version 1.
	WeightXRay1
	// WeightXRay2 is the crystallography distance, version 2.
	WeightXRay2
	// WeightCustom (SPECIAL) is a distance function defined by the caller.
	WeightCustom
)

// ParseWeightKind converts an EDGE_WEIGHT_TYPE token, failing on
// unrecognized input.
func ParseWeightKind(token string) (WeightKind, error) {
	if w := WeightKindFromToken(token); w != WeightUndefined {
		return w, nil
	}
	return WeightUndefined, invalidInput(KeyWeightType, token)
}

// WeightKindFromToken converts an EDGE_WEIGHT_TYPE token, defaulting to
// WeightUndefined.
func WeightKindFromToken(token string) WeightKind {
	switch token {
	case "EXPLICIT":
		return WeightExplicit
	case "EUC_2D":
		return WeightEuc2D
	case "EUC_3D":
		return WeightEuc3D
	case "MAX_2D":
		return WeightMax2D
	case "MAX_3D":
		return WeightMax3D
	case "MAN_2D":
		return WeightMan2D
	case "MAN_3D":
		return WeightMan3D
	case "CEIL_2D":
		return WeightCeil2D
	case "GEO":
		return WeightGeo
	case "ATT":
		return WeightATT
	case "XRAY1":
		return WeightXRay1
	case "XRAY2":
		return WeightXRay2
	case "SPECIAL":
		return WeightCustom
	default:
		return WeightUndefined
	}
}

// String returns the TSPLIB token for w.
func (w WeightKind) String() string {
	switch w {
	case WeightExplicit:
		return "EXPLICIT"
	case WeightEuc2D:
		return "EUC_2D"
	case WeightEuc3D:
		return "EUC_3D"
	case WeightMax2D:
		return "MAX_2D"
	case WeightMax3D:
		return "MAX_3D"
	case WeightMan2D:
		return "MAN_2D"
	case WeightMan3D:
		return "MAN_3D"
	case WeightCeil2D:
		return "CEIL_2D"
	case WeightGeo:
		return "GEO"
	case WeightATT:
		return "ATT"
	case WeightXRay1:
		return "XRAY1"
	case WeightXRay2:
		return "XRAY2"
	case WeightCustom:
		return "SPECIAL"
	default:
		return "UNDEFINED"
	}
}

// Cost computes the distance between two coordinate vectors under w.
// Vectors are truncated to the dimensionality w requires; missing components
// read as 0. WeightExplicit, WeightCustom and WeightUndefined return 0 —
// explicit weights live in the stored matrix, not in a formula.
func (w WeightKind) Cost(a, b []float64) float64 {
	switch w {
	case WeightEuc2D:
		return metric.Euclidean2D(at(a, 0), at(a, 1), at(b, 0), at(b, 1))
	case WeightEuc3D:
		return metric.Euclidean3D(at(a, 0), at(a, 1), at(a, 2), at(b, 0), at(b, 1), at(b, 2))
	case WeightMax2D:
		return metric.Max2D(at(a, 0), at(a, 1), at(b, 0), at(b, 1))
	case WeightMax3D:
		return metric.Max3D(at(a, 0), at(a, 1), at(a, 2), at(b, 0), at(b, 1), at(b, 2))
	case WeightMan2D:
		return metric.Manhattan2D(at(a, 0), at(a, 1), at(b, 0), at(b, 1))
	case WeightMan3D:
		return metric.Manhattan3D(at(a, 0), at(a, 1), at(a, 2), at(b, 0), at(b, 1), at(b, 2))
	case WeightCeil2D:
		return metric.CeilEuclidean2D(at(a, 0), at(a, 1), at(b, 0), at(b, 1))
	case WeightGeo:
		return metric.Geographical(at(a, 0), at(a, 1), at(b, 0), at(b, 1))
	case WeightATT:
		return metric.ATT(at(a, 0), at(a, 1), at(b, 0), at(b, 1))
	case WeightXRay1:
		return metric.XRay1(at(a, 0), at(a, 1), at(a, 2), at(b, 0), at(b, 1), at(b, 2))
	case WeightXRay2:
		return metric.XRay2(at(a, 0), at(a, 1), at(a, 2), at(b, 0), at(b, 1), at(b, 2))
	default:
		return 0
	}
}

// at reads component i of a coordinate vector, 0 when absent.
func at(v []float64, i int) float64 {
	if i < len(v) {
		return v[i]
	}
	return 0
}

// WeightFormat is the EDGE_WEIGHT_FORMAT specifier: how an explicit weight
// matrix is laid out in EDGE_WEIGHT_SECTION.
type WeightFormat int

const (
	// FormatUndefined means no storage layout was declared.
	FormatUndefined WeightFormat = iota
	// FormatFunction means weights are computed, not stored.
	FormatFunction
	// FormatFullMatrix stores the full n×n matrix row-wise.
	FormatFullMatrix
	// FormatUpperRow stores the upper triangle row-wise, no diagonal.
	FormatUpperRow
	// FormatLowerRow stores the lower triangle row-wise, no diagonal.
	FormatLowerRow
	// FormatUpperDiagRow stores the upper triangle row-wise with diagonal.
	FormatUpperDiagRow
	// FormatLowerDiagRow stores the lower triangle row-wise with diagonal.
	FormatLowerDiagRow
	// FormatUpperCol stores the upper triangle column-wise, no diagonal.
	FormatUpperCol
	// FormatLowerCol stores the lower triangle column-wise, no diagonal.
	FormatLowerCol
	// FormatUpperDiagCol stores the upper triangle column-wise with diagonal.
	FormatUpperDiagCol
	// FormatLowerDiagCol stores the lower triangle column-wise with diagonal.
	FormatLowerDiagCol
)

// ParseWeightFormat converts an EDGE_WEIGHT_FORMAT token, failing on
// unrecognized input.
func ParseWeightFormat(token string) (WeightFormat, error) {
	if f := WeightFormatFromToken(token); f != FormatUndefined {
		return f, nil
	}
	return FormatUndefined, invalidInput(KeyWeightFormat, token)
}

// WeightFormatFromToken converts an EDGE_WEIGHT_FORMAT token, defaulting to
// FormatUndefined.
func WeightFormatFromToken(token string) WeightFormat {
	switch token {
	case "FUNCTION":
		return FormatFunction
	case "FULL_MATRIX":
		return FormatFullMatrix
	case "UPPER_ROW":
		return FormatUpperRow
	case "LOWER_ROW":
		return FormatLowerRow
	case "UPPER_DIAG_ROW":
		return FormatUpperDiagRow
	case "LOWER_DIAG_ROW":
		return FormatLowerDiagRow
	case "UPPER_COL":
		return FormatUpperCol
	case "LOWER_COL":
		return FormatLowerCol
	case "UPPER_DIAG_COL":
		return FormatUpperDiagCol
	case "LOWER_DIAG_COL":
		return FormatLowerDiagCol
	default:
		return FormatUndefined
	}
}

// String returns the TSPLIB token for f.
func (f WeightFormat) String() string {
	switch f {
	case FormatFunction:
		return "FUNCTION"
	case FormatFullMatrix:
		return "FULL_MATRIX"
	case FormatUpperRow:
		return "UPPER_ROW"
	case FormatLowerRow:
		return "LOWER_ROW"
	case FormatUpperDiagRow:
		return "UPPER_DIAG_ROW"
	case FormatLowerDiagRow:
		return "LOWER_DIAG_ROW"
	case FormatUpperCol:
		return "UPPER_COL"
	case FormatLowerCol:
		return "LOWER_COL"
	case FormatUpperDiagCol:
		return "UPPER_DIAG_COL"
	case FormatLowerDiagCol:
		return "LOWER_DIAG_COL"
	default:
		return "UNDEFINED"
	}
}

// EdgeFormat is the EDGE_DATA_FORMAT specifier: how graph edges are listed
// when the graph is not complete.
type EdgeFormat int

const (
	// EdgeFormatUndefined means no edge listing format was declared.
	EdgeFormatUndefined EdgeFormat = iota
	// EdgeFormatEdgeList lists edges as node pairs, one per line.
	EdgeFormatEdgeList
	// EdgeFormatAdjList lists adjacency runs. Recognized but not decoded.
	EdgeFormatAdjList
)

// ParseEdgeFormat converts an EDGE_DATA_FORMAT token, failing on
// unrecognized input.
func ParseEdgeFormat(token string) (EdgeFormat, error) {
	if f := EdgeFormatFromToken(token); f != EdgeFormatUndefined {
		return f, nil
	}
	return EdgeFormatUndefined, invalidInput(KeyEdgeFormat, token)
}

// EdgeFormatFromToken converts an EDGE_DATA_FORMAT token, defaulting to
// EdgeFormatUndefined.
func EdgeFormatFromToken(token string) EdgeFormat {
	switch token {
	case "EDGE_LIST":
		return EdgeFormatEdgeList
	case "ADJ_LIST":
		return EdgeFormatAdjList
	default:
		return EdgeFormatUndefined
	}
}

// String returns the TSPLIB token for f.
func (f EdgeFormat) String() string {
	switch f {
	case EdgeFormatEdgeList:
		return "EDGE_LIST"
	case EdgeFormatAdjList:
		return "ADJ_LIST"
	default:
		return "UNDEFINED"
	}
}

// CoordKind is the NODE_COORD_TYPE specifier: the shape of stored node
// coordinates.
type CoordKind int

const (
	// CoordUndefined means the coordinate shape is not available.
	CoordUndefined CoordKind = iota
	// Coord2D means two-dimensional coordinates.
	Coord2D
	// Coord3D means three-dimensional coordinates.
	Coord3D
	// CoordNone means nodes have no coordinates.
	CoordNone
)

// ParseCoordKind converts a NODE_COORD_TYPE token, failing on unrecognized
// input.
func ParseCoordKind(token string) (CoordKind, error) {
	if c := CoordKindFromToken(token); c != CoordUndefined {
		return c, nil
	}
	return CoordUndefined, invalidInput(KeyCoordType, token)
}

// CoordKindFromToken converts a NODE_COORD_TYPE token, defaulting to
// CoordUndefined.
func CoordKindFromToken(token string) CoordKind {
	switch token {
	case "TWOD_COORDS":
		return Coord2D
	case "THREED_COORDS":
		return Coord3D
	case "NO_COORDS":
		return CoordNone
	default:
		return CoordUndefined
	}
}

// CoordKindForWeight derives the coordinate shape implied by a weight
// formula: planar formulas imply 2-D points, spatial formulas 3-D points,
// everything else (explicit, custom, undefined) no implication. Used to
// default the coordinate shape when NODE_COORD_TYPE is absent.
func CoordKindForWeight(w WeightKind) CoordKind {
	switch w {
	case WeightEuc2D, WeightMax2D, WeightMan2D, WeightCeil2D, WeightGeo, WeightATT:
		return Coord2D
	case WeightEuc3D, WeightMax3D, WeightMan3D:
		return Coord3D
	default:
		return CoordUndefined
	}
}

// String returns the TSPLIB token for c.
func (c CoordKind) String() string {
	switch c {
	case Coord2D:
		return "TWOD_COORDS"
	case Coord3D:
		return "THREED_COORDS"
	case CoordNone:
		return "NO_COORDS"
	default:
		return "UNDEFINED"
	}
}

// DisplayKind is the DISPLAY_DATA_TYPE specifier: how nodes should be
// displayed.
type DisplayKind int

const (
	// DisplayUndefined means no display information is available.
	DisplayUndefined DisplayKind = iota
	// DisplayCoord displays nodes by their stored coordinates.
	DisplayCoord
	// Display2D displays nodes by explicit 2-D display coordinates.
	Display2D
	// DisplayNone suppresses display.
	DisplayNone
)

// ParseDisplayKind converts a DISPLAY_DATA_TYPE token, failing on
// unrecognized input.
func ParseDisplayKind(token string) (DisplayKind, error) {
	if d := DisplayKindFromToken(token); d != DisplayUndefined {
		return d, nil
	}
	return DisplayUndefined, invalidInput(KeyDisplayType, token)
}

// DisplayKindFromToken converts a DISPLAY_DATA_TYPE token, defaulting to
// DisplayUndefined.
func DisplayKindFromToken(token string) DisplayKind {
	switch token {
	case "COORD_DISPLAY":
		return DisplayCoord
	case "TWOD_DISPLAY":
		return Display2D
	case "NO_DISPLAY":
		return DisplayNone
	default:
		return DisplayUndefined
	}
}

// String returns the TSPLIB token for d.
func (d DisplayKind) String() string {
	switch d {
	case DisplayCoord:
		return "COORD_DISPLAY"
	case Display2D:
		return "TWOD_DISPLAY"
	case DisplayNone:
		return "NO_DISPLAY"
	default:
		return "UNDEFINED"
	}
}

// Point is a node coordinate: a positive identifier plus 2 or 3 components.
type Point struct {
	id  int
	pos []float64
}

// NewPoint constructs a point from an identifier and components.
func NewPoint(id int, pos ...float64) Point {
	return Point{id: id, pos: pos}
}

// ID returns the point's node identifier.
func (p Point) ID() int { return p.id }

// Pos returns the point's components. Callers must not mutate it.
func (p Point) Pos() []float64 { return p.pos }

// X returns the first component, 0 when absent.
func (p Point) X() float64 { return at(p.pos, 0) }

// Y returns the second component, 0 when absent.
func (p Point) Y() float64 { return at(p.pos, 1) }

// Z returns the third component, 0 when absent.
func (p Point) Z() float64 { return at(p.pos, 2) }

// Edge is a required or listed connection between two node identifiers.
type Edge struct {
	From int
	To   int
}
