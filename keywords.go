// SPDX-License-Identifier: MIT

// Package tsplib: keyword and section-header tokens of the TSPLIB format.
// Single source of truth for every string literal the dispatcher, the
// section parsers and the validators agree on.

package tsplib

// Specification keywords ("KEY: value" lines). Case-sensitive, exact tokens.
const (
	KeyName         = "NAME"
	KeyType         = "TYPE"
	KeyComment      = "COMMENT"
	KeyDimension    = "DIMENSION"
	KeyCapacity     = "CAPACITY"
	KeyWeightType   = "EDGE_WEIGHT_TYPE"
	KeyWeightFormat = "EDGE_WEIGHT_FORMAT"
	KeyEdgeFormat   = "EDGE_DATA_FORMAT"
	KeyCoordType    = "NODE_COORD_TYPE"
	KeyDisplayType  = "DISPLAY_DATA_TYPE"
)

// Section headers (standalone lines introducing a data section).
const (
	SecNodeCoord   = "NODE_COORD_SECTION"
	SecDepot       = "DEPOT_SECTION"
	SecDemand      = "DEMAND_SECTION"
	SecEdgeData    = "EDGE_DATA_SECTION"
	SecFixedEdges  = "FIXED_EDGES_SECTION"
	SecDisplayData = "DISPLAY_DATA_SECTION"
	SecTour        = "TOUR_SECTION"
	SecEdgeWeight  = "EDGE_WEIGHT_SECTION"
)

// tokEOF terminates specification scanning; tokSentinel terminates
// variable-length sections.
const (
	tokEOF      = "EOF"
	tokSentinel = "-1"
)
