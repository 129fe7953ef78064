// SPDX-License-Identifier: MIT

// Package tsplib: the immutable parse result.
//
// A Problem is produced once by the builder, after validation; it has no
// mutators and is safe to share read-only across goroutines. Accessors that
// return maps or slices hand out the internal storage for cheapness —
// callers must treat it as read-only.

package tsplib

import (
	"fmt"
	"strings"
)

// Problem is a parsed, validated TSPLIB instance.
type Problem struct {
	// Specification part.
	name         string
	kind         Kind
	comment      string
	dim          int
	capacity     int
	weightKind   WeightKind
	weightFormat WeightFormat
	edgeFormat   EdgeFormat
	coordKind    CoordKind
	dispKind     DisplayKind

	// Data part.
	nodeCoords  map[int]Point
	depots      map[int]struct{}
	demands     map[int]float64
	edges       []Edge
	fixedEdges  []Edge
	dispCoords  []Point
	edgeWeights [][]float64
	tours       [][]int
}

// Name returns the NAME entry.
func (p *Problem) Name() string { return p.name }

// Kind returns the TYPE entry.
func (p *Problem) Kind() Kind { return p.kind }

// Comment returns the COMMENT entry, empty when absent.
func (p *Problem) Comment() string { return p.comment }

/// Dimension returns the DIMENSION entry: the number of nodes.
func (p *Problem) Dimension() int { return p.dim }

// Capacity returns the CAPACITY entry. Meaningful only for CVRP instances.
func (p *Problem) Capacity() int { return p.capacity }

// WeightKind returns how edge weights are calculated.
func (p *Problem) WeightKind() WeightKind { return p.weightKind }

// WeightFormat returns how explicit edge weights are stored.
func (p *Problem) WeightFormat() WeightFormat { return p.weightFormat }

// EdgeFormat returns how graph edges are listed.
func (p *Problem) EdgeFormat() EdgeFormat { return p.edgeFormat }

// CoordKind returns the shape of stored node coordinates.
func (p *Problem) CoordKind() CoordKind { return p.coordKind }

// DisplayKind returns how nodes should be displayed.
func (p *Problem) DisplayKind() DisplayKind { return p.dispKind }

// NodeCoords returns node coordinates keyed by identifier. Identifiers need
// not be contiguous or start at 1.
func (p *Problem) NodeCoords() map[int]Point { return p.nodeCoords }

// Depots returns the set of depot node identifiers.
func (p *Problem) Depots() map[int]struct{} { return p.depots }

// Demands returns node demands keyed by identifier.
func (p *Problem) Demands() map[int]float64 { return p.demands }

// Edges returns the EDGE_DATA_SECTION edge list.
func (p *Problem) Edges() []Edge { return p.edges }

// FixedEdges returns edges that must appear in any solution.
func (p *Problem) FixedEdges() []Edge { return p.fixedEdges }

// DisplayCoords returns the ordered 2-D points of DISPLAY_DATA_SECTION.
func (p *Problem) DisplayCoords() []Point { return p.dispCoords }

// EdgeWeights returns the raw stored weight rows. The row shape depends on
// WeightFormat; use Weight for pairwise lookups.
func (p *Problem) EdgeWeights() [][]float64 { return p.edgeWeights }

// Tours returns the parsed tour collection, one identifier sequence per
// tour.
func (p *Problem) Tours() [][]int { return p.tours }

// String renders the specification fields and raw data collections for
// debugging.
func (p *Problem) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Spec: %s %s dim=%d cap=%d %s %s %s %s %s\n",
		p.name, p.kind, p.dim, p.capacity,
		p.weightKind, p.weightFormat, p.edgeFormat, p.coordKind, p.dispKind)
	fmt.Fprintf(&sb, "Data: coords=%d depots=%d demands=%d edges=%d fixed=%d display=%d weight_rows=%d tours=%d",
		len(p.nodeCoords), len(p.depots), len(p.demands),
		len(p.edges), len(p.fixedEdges), len(p.dispCoords),
		len(p.edgeWeights), len(p.tours))
	return sb.String()
}
