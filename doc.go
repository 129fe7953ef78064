// Package tsplib parses TSPLIB-formatted text into validated, strongly-typed
// problem instances and answers pairwise edge-weight queries against them.
//
// TSPLIB is the de-facto plain-text format for combinatorial routing
// instances (symmetric/asymmetric TSP, sequential ordering, Hamiltonian
// cycle, capacitated vehicle routing, and raw tour collections). A file has
// two parts:
//
//   - a specification part: "KEY: value" lines (NAME, TYPE, DIMENSION, …)
//     describing the instance and how its data is encoded;
//   - a data part: sections (NODE_COORD_SECTION, EDGE_WEIGHT_SECTION, …)
//     holding coordinates, demands, tours or a compactly stored weight matrix.
//
// Entry points:
//
//	p, err := tsplib.ParseFile("berlin52.tsp")
//	p, err := tsplib.ParseString(text)
//	p, err := tsplib.ParseReader(r)
//
// A successful parse yields an immutable *Problem. Problem.Weight(a, b)
// reconstructs the pairwise distance function from whichever of the eleven
// on-disk encodings the file declared — a full matrix, one of eight
// triangular row/col layouts with or without the diagonal, or a closed-form
// geometric formula over node coordinates (see the metric subpackage).
//
// Design:
//   - Deterministic, single-threaded, log-free: one call consumes one input
//     source to completion and returns a Problem or a typed error.
//   - Strict sentinels: every failure matches a package sentinel via
//     errors.Is (ErrMissingEntry, ErrInvalidEntry, ErrInvalidInput,
//     ErrInvalidNumber, …); no panics on user input.
//   - The produced Problem is safe to share read-only across goroutines.
//
// This package is a parser, not a solver: it does not optimize tours or
// build graph structures beyond the declared storage.
package tsplib
