// SPDX-License-Identifier: MIT

// Package tsplib: specification and data validation.
//
// Two passes, both failing fast on the first violated rule:
//
//  1. validateSpec — is the specification part self-consistent for the
//     declared problem type? Run before any data section that depends on
//     DIMENSION or the coordinate shape, and again at build time.
//  2. validateData — did the data part actually supply what the declared
//     weight kind promises? Run only at build time.
//
// Every violation is a sentinel wrap naming the implicated keyword, so
// callers can distinguish "missing" (errors.Is ErrMissingEntry) from
// "present but unusable" (errors.Is ErrInvalidEntry).

package tsplib

// validateSpec cross-checks the specification fields required by the
// declared problem type.
//
// Rules, in order of precedence:
//   - NAME must be set; TYPE must be set and recognized.
//   - TSP/ATSP/CVRP/SOP require EDGE_WEIGHT_TYPE (set and not UNDEFINED);
//     CVRP additionally requires CAPACITY.
//   - HCP requires EDGE_DATA_FORMAT (set and not UNDEFINED).
//   - Every type except TOUR requires DIMENSION.
func (b *builder) validateSpec() error {
	if !b.nameSet {
		return missingEntry(KeyName)
	}
	if !b.kindSet {
		return missingEntry(KeyType)
	}

	switch b.kind {
	case KindTSP, KindATSP, KindCVRP, KindSOP:
		if !b.weightKindSet {
			return missingEntry(KeyWeightType)
		}
		if b.weightKind == WeightUndefined {
			return invalidEntry(KeyWeightType)
		}
		if b.kind == KindCVRP && !b.capSet {
			return missingEntry(KeyCapacity)
		}
	case KindHCP:
		if !b.edgeFormatSet {
			return missingEntry(KeyEdgeFormat)
		}
		if b.edgeFormat == EdgeFormatUndefined {
			return invalidEntry(KeyEdgeFormat)
		}
	case KindTour:
		// No weight configuration required for a bare tour collection.
	default:
		return invalidEntry(KeyType)
	}

	if b.kind != KindTour && !b.dimSet {
		return missingEntry(KeyDimension)
	}

	return nil
}

// validateData checks that the parsed sections satisfy the declared weight
// configuration: explicit weights demand EDGE_WEIGHT_SECTION, formula
// weights demand NODE_COORD_SECTION, and a TOUR instance must carry at
// least one tour.
func (b *builder) validateData() error {
	if b.kind == KindTour && !b.toursSet {
		return missingEntry(SecTour)
	}

	if b.weightKindSet {
		if b.weightKind == WeightExplicit {
			if !b.weightsSet {
				return missingEntry(SecEdgeWeight)
			}
		} else if !b.coordsSet {
			return missingEntry(SecNodeCoord)
		}
	}

	// Opt-in strict mode: a coordinate-based instance must cover every node
	// identifier in 1..DIMENSION, so Weight can never silently miss.
	if b.opts.StrictNodes && b.weightKindSet && b.weightKind != WeightExplicit {
		for id := 1; id <= b.dim; id++ {
			if _, ok := b.coords[id]; !ok {
				return unknownNode(id)
			}
		}
	}

	return nil
}
