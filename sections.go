// SPDX-License-Identifier: MIT

// Package tsplib: data-section parsers.
//
// Common shape: each parser receives the shared line cursor and mutates
// exactly one builder field. Dimension-bounded sections consume exactly
// DIMENSION records; sentinel-terminated sections consume lines until one
// begins with "-1". Every token-to-number conversion is fallible and
// surfaces ErrInvalidNumber — section parsing never panics on input.
//
// Sections that depend on DIMENSION or the coordinate shape re-validate the
// specification part first, so a missing prerequisite aborts with a typed
// error instead of failing deeper in the parse.

package tsplib

import (
	"fmt"
	"strconv"
	"strings"
)

// parseNodeCoordSection reads exactly DIMENSION "id x y [z]" lines into the
// coordinate map, keyed by identifier. The component count follows the
// coordinate shape (explicit NODE_COORD_TYPE or the shape derived from
// EDGE_WEIGHT_TYPE).
func (b *builder) parseNodeCoordSection(cur *lineCursor) error {
	if err := b.validateSpec(); err != nil {
		return err
	}

	var components int
	switch b.coordKind {
	case Coord2D:
		components = 2
	case Coord3D:
		components = 3
	case CoordNone:
		return invalidEntry(KeyCoordType)
	default:
		return missingEntry(KeyCoordType)
	}

	coords := make(map[int]Point, b.dim)
	for i := 0; i < b.dim; i++ {
		line, ok := cur.next()
		if !ok {
			return unexpectedEOF(SecNodeCoord)
		}
		pt, err := parseCoordLine(strings.Fields(strings.TrimSpace(line)), components)
		if err != nil {
			return err
		}
		coords[pt.ID()] = pt
	}

	b.coords, b.coordsSet = coords, true
	return nil
}

// parseCoordLine decodes "id c1 .. cN" into a Point with N components.
func parseCoordLine(fields []string, components int) (Point, error) {
	if len(fields) < components+1 {
		return Point{}, invalidEntry(strings.Join(fields, " "))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Point{}, invalidNumber(SecNodeCoord, fields[0])
	}
	pos := make([]float64, components)
	for i := 0; i < components; i++ {
		if pos[i], err = strconv.ParseFloat(fields[i+1], 64); err != nil {
			return Point{}, invalidNumber(SecNodeCoord, fields[i+1])
		}
	}
	return Point{id: id, pos: pos}, nil
}

// parseDepotSection collects single node identifiers into a set until the
// sentinel; duplicates collapse.
func (b *builder) parseDepotSection(cur *lineCursor) error {
	if err := b.validateSpec(); err != nil {
		return err
	}

	depots := make(map[int]struct{})
	for {
		line, ok := cur.next()
		if !ok {
			return unexpectedEOF(SecDepot)
		}
		s := strings.TrimSpace(line)
		if strings.HasPrefix(s, tokSentinel) {
			break
		}
		id, err := strconv.Atoi(s)
		if err != nil {
			return invalidNumber(SecDepot, s)
		}
		depots[id] = struct{}{}
	}

	b.depots = depots
	return nil
}

// parseDemandSection reads exactly DIMENSION "id demand" pairs. Depot nodes
// appear here too, with demand 0.
func (b *builder) parseDemandSection(cur *lineCursor) error {
	if err := b.validateSpec(); err != nil {
		return err
	}

	demands := make(map[int]float64, b.dim)
	for i := 0; i < b.dim; i++ {
		line, ok := cur.next()
		if !ok {
			return unexpectedEOF(SecDemand)
		}
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) < 2 {
			return invalidEntry(line)
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return invalidNumber(SecDemand, fields[0])
		}
		demand, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return invalidNumber(SecDemand, fields[1])
		}
		demands[id] = demand
	}

	b.demands = demands
	return nil
}

// parseEdgeDataSection appends "from to" pairs until the sentinel. Only the
// EDGE_LIST variant is decoded; ADJ_LIST is recognized but unsupported, and
// a missing or undefined EDGE_DATA_FORMAT is an error.
func (b *builder) parseEdgeDataSection(cur *lineCursor) error {
	if !b.edgeFormatSet {
		return missingEntry(KeyEdgeFormat)
	}
	switch b.edgeFormat {
	case EdgeFormatEdgeList:
		edges, err := parseEdgePairs(cur, SecEdgeData)
		if err != nil {
			return err
		}
		b.edges = append(b.edges, edges...)
		return nil
	case EdgeFormatAdjList:
		return fmt.Errorf("%w: %s", ErrUnsupported, EdgeFormatAdjList)
	default:
		return invalidEntry(KeyEdgeFormat)
	}
}

// parseFixedEdgesSection appends required "from to" pairs until the
// sentinel; identical line shape to EDGE_DATA_SECTION, independent field.
func (b *builder) parseFixedEdgesSection(cur *lineCursor) error {
	edges, err := parseEdgePairs(cur, SecFixedEdges)
	if err != nil {
		return err
	}
	b.fixedEdges = edges
	return nil
}

// parseEdgePairs consumes "from to" lines until the sentinel.
func parseEdgePairs(cur *lineCursor, section string) ([]Edge, error) {
	var edges []Edge
	for {
		line, ok := cur.next()
		if !ok {
			return nil, unexpectedEOF(section)
		}
		s := strings.TrimSpace(line)
		if strings.HasPrefix(s, tokSentinel) {
			return edges, nil
		}
		fields := strings.Fields(s)
		if len(fields) < 2 {
			return nil, invalidEntry(line)
		}
		from, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, invalidNumber(section, fields[0])
		}
		to, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, invalidNumber(section, fields[1])
		}
		edges = append(edges, Edge{From: from, To: to})
	}
}

// parseDisplayDataSection reads exactly DIMENSION "id x y" lines into an
// ordered point sequence. Display coordinates are always 2-D, independent
// of the node coordinate shape.
func (b *builder) parseDisplayDataSection(cur *lineCursor) error {
	if err := b.validateSpec(); err != nil {
		return err
	}

	points := make([]Point, 0, b.dim)
	for i := 0; i < b.dim; i++ {
		line, ok := cur.next()
		if !ok {
			return unexpectedEOF(SecDisplayData)
		}
		pt, err := parseCoordLine(strings.Fields(strings.TrimSpace(line)), 2)
		if err != nil {
			return err
		}
		points = append(points, pt)
	}

	b.dispCoords = points
	return nil
}

// parseTourSection accumulates whitespace-separated node identifiers into
// the current tour and closes it at each "-1" sentinel. After a close it
// peeks one line ahead: another sentinel or a non-digit ends the section, a
// digit starts the next tour. This reproduces both single-tour files (ids,
// then a trailing sentinel) and multi-tour files (repeated sentinel-closed
// runs).
func (b *builder) parseTourSection(cur *lineCursor) error {
	if err := b.validateSpec(); err != nil {
		return err
	}

	var (
		tours [][]int
		tour  []int
	)
	for {
		line, ok := cur.next()
		if !ok {
			break
		}
		s := strings.TrimSpace(line)

		if strings.HasPrefix(s, tokSentinel) {
			tours = append(tours, tour)
			tour = nil

			peeked, more := cur.peek()
			if !more {
				break
			}
			p := strings.TrimSpace(peeked)
			if strings.HasPrefix(p, tokSentinel) {
				// Second consecutive sentinel closes the section; consume it
				// so the dispatch loop never sees it.
				_, _ = cur.next()
				break
			}
			if len(p) == 0 || !isDigit(p[0]) {
				// Anything else (EOF, a new section) stays for the dispatcher.
				break
			}
			continue
		}

		for _, tok := range strings.Fields(s) {
			id, err := strconv.Atoi(tok)
			if err != nil {
				return invalidNumber(SecTour, tok)
			}
			tour = append(tour, id)
		}
	}

	b.tours, b.toursSet = tours, true
	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
