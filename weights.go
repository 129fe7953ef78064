// SPDX-License-Identifier: MIT

// Package tsplib: edge-weight storage decoder and pairwise lookup.
//
// EDGE_WEIGHT_SECTION stores a weight matrix in one of eleven compact
// layouts. The decoder derives the row shape from (format, DIMENSION),
// drains whitespace-separated tokens across as many lines as needed, and
// slices the flat token stream into ragged rows. The lookup side maps a
// general (a, b) pair onto the correct stored cell with pure index
// arithmetic — the full matrix is never materialized.
//
// Index transforms, for storage rows w and 0-based a, b:
//
//	FULL_MATRIX                     w[a][b]
//	UPPER_ROW / LOWER_COL           a<b: w[a][b-a-1]   a>b: w[b][a-b-1]   a==b: 0
//	UPPER_DIAG_ROW / LOWER_DIAG_COL w[min][max-min]
//	LOWER_ROW / UPPER_COL           a<b: w[b-1][a]     a>b: w[a-1][b]     a==b: 0
//	LOWER_DIAG_ROW / UPPER_DIAG_COL w[max][min]

package tsplib

import (
	"strconv"
	"strings"
)

// weightRowLengths returns the stored row lengths implied by a format and
// dimension n, in row order. Function and Undefined store nothing.
func weightRowLengths(f WeightFormat, n int) []int {
	var lens []int
	switch f {
	case FormatFullMatrix:
		lens = make([]int, n)
		for r := 0; r < n; r++ {
			lens[r] = n
		}
	case FormatUpperRow, FormatLowerCol:
		// n-1, n-2, …, 1
		for l := n - 1; l >= 1; l-- {
			lens = append(lens, l)
		}
	case FormatLowerRow, FormatUpperCol:
		// 1, 2, …, n-1
		for l := 1; l <= n-1; l++ {
			lens = append(lens, l)
		}
	case FormatUpperDiagRow, FormatLowerDiagCol:
		// n, n-1, …, 1
		for l := n; l >= 1; l-- {
			lens = append(lens, l)
		}
	case FormatLowerDiagRow, FormatUpperDiagCol:
		// 1, 2, …, n
		for l := 1; l <= n; l++ {
			lens = append(lens, l)
		}
	}
	return lens
}

// parseEdgeWeightSection drains numeric tokens until the count the declared
// format demands is reached, then partitions them into rows.
//
// Known format deviation: some published SOP datasets prepend a redundant
// dimension value to this section. When the collected token count equals
// DIMENSION+1 the first token is discarded; no other off-by-one deviation
// is tolerated.
func (b *builder) parseEdgeWeightSection(cur *lineCursor) error {
	if err := b.validateSpec(); err != nil {
		return err
	}

	lens := weightRowLengths(b.weightFormat, b.dim)
	total := 0
	for _, l := range lens {
		total += l
	}

	flat := make([]float64, 0, total)
	for len(flat) < total {
		line, ok := cur.next()
		if !ok {
			return unexpectedEOF(SecEdgeWeight)
		}
		for _, tok := range strings.Fields(strings.TrimSpace(line)) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return invalidNumber(SecEdgeWeight, tok)
			}
			flat = append(flat, v)
		}
	}

	if len(flat) == b.dim+1 {
		flat = flat[1:]
	}

	rows := make([][]float64, 0, len(lens))
	off := 0
	for _, l := range lens {
		rows = append(rows, flat[off:off+l])
		off += l
	}

	b.weights, b.weightsSet = rows, true
	return nil
}

// Weight returns the edge weight between two nodes.
//
// For explicit weight kinds a and b are 0-based storage indices and must
// lie in [0, Dimension); out-of-range indices are a caller error. For
// formula kinds a and b are node identifiers looked up in the coordinate
// map; absent identifiers yield 0 (deliberate leniency — use WeightStrict
// to surface them). Undefined and custom kinds always yield 0.
func (p *Problem) Weight(a, b int) float64 {
	if p.weightKind == WeightExplicit {
		return p.explicitWeight(a, b)
	}

	na, okA := p.nodeCoords[a]
	nb, okB := p.nodeCoords[b]
	if !okA || !okB {
		return 0
	}
	return p.weightKind.Cost(na.pos, nb.pos)
}

// WeightStrict is Weight with the unknown-node edge case surfaced: indices
// outside the stored matrix or identifiers without coordinates return
// ErrUnknownNode instead of a silent 0.
func (p *Problem) WeightStrict(a, b int) (float64, error) {
	if p.weightKind == WeightExplicit {
		if a < 0 || a >= p.dim {
			return 0, unknownNode(a)
		}
		if b < 0 || b >= p.dim {
			return 0, unknownNode(b)
		}
		return p.explicitWeight(a, b), nil
	}

	na, ok := p.nodeCoords[a]
	if !ok {
		return 0, unknownNode(a)
	}
	nb, ok := p.nodeCoords[b]
	if !ok {
		return 0, unknownNode(b)
	}
	return p.weightKind.Cost(na.pos, nb.pos), nil
}

// explicitWeight resolves (a, b) against the stored rows per the declared
// layout. The triangular transforms exploit symmetry; only FULL_MATRIX can
// represent an asymmetric instance.
func (p *Problem) explicitWeight(a, b int) float64 {
	w := p.edgeWeights
	switch p.weightFormat {
	case FormatFullMatrix:
		return w[a][b]

	case FormatUpperRow, FormatLowerCol:
		switch {
		case a < b:
			return w[a][b-a-1]
		case a > b:
			return w[b][a-b-1]
		default:
			return 0
		}

	case FormatUpperDiagRow, FormatLowerDiagCol:
		if a < b {
			return w[a][b-a]
		}
		return w[b][a-b]

	case FormatLowerRow, FormatUpperCol:
		switch {
		case a < b:
			return w[b-1][a]
		case a > b:
			return w[a-1][b]
		default:
			return 0
		}

	case FormatLowerDiagRow, FormatUpperDiagCol:
		if a < b {
			return w[b][a]
		}
		return w[a][b]

	default:
		// FUNCTION and UNDEFINED store nothing.
		return 0
	}
}
