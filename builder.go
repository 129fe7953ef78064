// SPDX-License-Identifier: MIT

// Package tsplib: builder orchestration.
//
// The builder drives the line-by-line scan: each trimmed, non-empty line is
// either a "KEY: value" specification entry (sets one scalar field) or a
// section header (delegates to the matching section parser in sections.go,
// which pulls further lines from the same cursor). A line starting with
// "EOF" terminates the scan; anything unrecognized is ErrInvalidEntry.
// build() then validates the accumulated state and assembles the immutable
// Problem, defaulting every unset optional field.

package tsplib

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseString parses TSPLIB text held in memory.
func ParseString(s string, opts ...Option) (*Problem, error) {
	b := newBuilder(gatherOptions(opts...))
	return b.run(newStringCursor(s))
}

// ParseReader parses TSPLIB text from an arbitrary stream.
func ParseReader(r io.Reader, opts ...Option) (*Problem, error) {
	cur, err := newReaderCursor(r)
	if err != nil {
		return nil, err
	}
	b := newBuilder(gatherOptions(opts...))
	return b.run(cur)
}

// ParseFile parses the TSPLIB file at path. A directory path yields
// ErrNotAFile, a distinct condition from plain I/O failure.
func ParseFile(path string, opts ...Option) (*Problem, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: open: %w", err)
	}
	defer f.Close()

	return ParseReader(f, opts...)
}

// builder accumulates optional fields and collections while scanning.
// Explicit *Set flags mirror "was this keyword present at all", which the
// validator needs to tell a missing entry apart from an invalid one.
type builder struct {
	opts Options

	// Specification part.
	name          string
	nameSet       bool
	kind          Kind
	kindSet       bool
	comment       string
	dim           int
	dimSet        bool
	capacity      int
	capSet        bool
	weightKind    WeightKind
	weightKindSet bool
	weightFormat  WeightFormat
	edgeFormat    EdgeFormat
	edgeFormatSet bool
	coordKind     CoordKind
	dispKind      DisplayKind

	// Data part. The *Set flags record that a section appeared, even if it
	// decoded into an empty collection.
	coords     map[int]Point
	coordsSet  bool
	depots     map[int]struct{}
	demands    map[int]float64
	edges      []Edge
	fixedEdges []Edge
	dispCoords []Point
	weights    [][]float64
	weightsSet bool
	tours      [][]int
	toursSet   bool
}

func newBuilder(opts Options) *builder {
	return &builder{opts: opts}
}

// run scans the cursor to completion and builds the Problem.
func (b *builder) run(cur *lineCursor) (*Problem, error) {
	for {
		raw, ok := cur.next()
		if !ok {
			break
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, tokEOF) {
			break
		}

		var err error
		if idx := strings.IndexByte(line, ':'); idx >= 0 {
			key := strings.TrimSpace(line[:idx])
			val := strings.TrimSpace(line[idx+1:])
			err = b.setSpec(key, val, line)
		} else {
			err = b.parseSection(strings.Fields(line)[0], line, cur)
		}
		if err != nil {
			return nil, err
		}
	}

	return b.build()
}

// setSpec stores one specification entry. Unknown keys are ErrInvalidEntry
// carrying the raw line; enumeration values fail with ErrInvalidInput.
func (b *builder) setSpec(key, val, line string) error {
	var err error
	switch key {
	case KeyName:
		b.name, b.nameSet = val, true
	case KeyType:
		if b.kind, err = ParseKind(val); err != nil {
			return err
		}
		b.kindSet = true
	case KeyComment:
		// Single line only; a repeated COMMENT overwrites the previous one.
		b.comment = val
	case KeyDimension:
		if b.dim, err = strconv.Atoi(val); err != nil {
			return invalidNumber(KeyDimension, val)
		}
		b.dimSet = true
	case KeyCapacity:
		if b.capacity, err = strconv.Atoi(val); err != nil {
			return invalidNumber(KeyCapacity, val)
		}
		b.capSet = true
	case KeyWeightType:
		if b.weightKind, err = ParseWeightKind(val); err != nil {
			return err
		}
		b.weightKindSet = true
		// Default the coordinate shape from the weight formula; an explicit
		// NODE_COORD_TYPE entry later in the file overrides it.
		b.coordKind = CoordKindForWeight(b.weightKind)
	case KeyWeightFormat:
		if b.weightFormat, err = ParseWeightFormat(val); err != nil {
			return err
		}
	case KeyEdgeFormat:
		if b.edgeFormat, err = ParseEdgeFormat(val); err != nil {
			return err
		}
		b.edgeFormatSet = true
	case KeyCoordType:
		if b.coordKind, err = ParseCoordKind(val); err != nil {
			return err
		}
	case KeyDisplayType:
		if b.dispKind, err = ParseDisplayKind(val); err != nil {
			return err
		}
	default:
		return invalidEntry(line)
	}
	return nil
}

// parseSection routes a section header to its parser. Unknown headers are
// ErrInvalidEntry carrying the raw line.
func (b *builder) parseSection(header, line string, cur *lineCursor) error {
	switch header {
	case SecNodeCoord:
		return b.parseNodeCoordSection(cur)
	case SecDepot:
		return b.parseDepotSection(cur)
	case SecDemand:
		return b.parseDemandSection(cur)
	case SecEdgeData:
		return b.parseEdgeDataSection(cur)
	case SecFixedEdges:
		return b.parseFixedEdgesSection(cur)
	case SecDisplayData:
		return b.parseDisplayDataSection(cur)
	case SecTour:
		return b.parseTourSection(cur)
	case SecEdgeWeight:
		return b.parseEdgeWeightSection(cur)
	default:
		return invalidEntry(line)
	}
}

// build validates the accumulated state and assembles the Problem,
// supplying an empty default for every unset optional collection.
func (b *builder) build() (*Problem, error) {
	if err := b.validateSpec(); err != nil {
		return nil, err
	}
	if err := b.validateData(); err != nil {
		return nil, err
	}

	p := &Problem{
		name:         b.name,
		kind:         b.kind,
		comment:      b.comment,
		dim:          b.dim,
		capacity:     b.capacity,
		weightKind:   b.weightKind,
		weightFormat: b.weightFormat,
		edgeFormat:   b.edgeFormat,
		coordKind:    b.coordKind,
		dispKind:     b.dispKind,
		nodeCoords:   b.coords,
		depots:       b.depots,
		demands:      b.demands,
		edges:        b.edges,
		fixedEdges:   b.fixedEdges,
		dispCoords:   b.dispCoords,
		edgeWeights:  b.weights,
		tours:        b.tours,
	}
	if p.nodeCoords == nil {
		p.nodeCoords = map[int]Point{}
	}
	if p.depots == nil {
		p.depots = map[int]struct{}{}
	}
	if p.demands == nil {
		p.demands = map[int]float64{}
	}

	return p, nil
}
