// SPDX-License-Identifier: MIT

// Package tsplib: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// parser. All routines MUST return these sentinels and tests MUST check them
// via errors.Is. No routine panics on malformed input; panics are reserved
// for programmer errors in private helpers (if any).

package tsplib

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "tsplib: ..." for consistency and to allow
// easy grepping across logs. When context is essential (the keyword, the raw
// line, the offending token), wrap with fmt.Errorf("...: %w", ErrX) at the
// failure site — callers still match with errors.Is.

var (
	// ErrMissingEntry is returned when an entry required by the declared
	// problem type is absent from the specification or data part. The wrapped
	// message names the missing keyword.
	ErrMissingEntry = errors.New("tsplib: missing entry")

	// ErrInvalidEntry is returned for a line that is neither a recognized
	// specification keyword nor a section header, or for a section line that
	// does not have the shape its section requires. The wrapped message
	// carries the raw line or the implicated keyword.
	ErrInvalidEntry = errors.New("tsplib: invalid entry")

	// ErrInvalidInput is returned when a keyword's value fails enumeration
	// conversion. The wrapped message names the key and the rejected token.
	ErrInvalidInput = errors.New("tsplib: invalid input")

	// ErrInvalidNumber is returned when a token expected to be numeric does
	// not parse. Distinct from ErrInvalidEntry so callers can tell a
	// malformed number apart from a structurally wrong line.
	ErrInvalidNumber = errors.New("tsplib: invalid number")

	// ErrUnexpectedEOF is returned when a data section runs out of input
	// before consuming the records its contract demands.
	ErrUnexpectedEOF = errors.New("tsplib: unexpected end of input")

	// ErrUnsupported is returned for format variants the parser recognizes
	// but does not decode (currently ADJ_LIST edge data).
	ErrUnsupported = errors.New("tsplib: unsupported format")

	// ErrUnknownNode is returned by strict weight queries when a node
	// identifier has no stored coordinate or lies outside the stored matrix.
	ErrUnknownNode = errors.New("tsplib: unknown node")

	// ErrNotAFile is returned by ParseFile when the path names a directory.
	// Deliberately distinct from plain I/O failure.
	ErrNotAFile = errors.New("tsplib: path is a directory")
)

// missingEntry wraps ErrMissingEntry with the keyword that was required.
func missingEntry(key string) error {
	return fmt.Errorf("%w: %s", ErrMissingEntry, key)
}

// invalidEntry wraps ErrInvalidEntry with the raw line or implicated keyword.
func invalidEntry(line string) error {
	return fmt.Errorf("%w: %q", ErrInvalidEntry, line)
}

// invalidInput wraps ErrInvalidInput with the key and the rejected token.
func invalidInput(key, token string) error {
	return fmt.Errorf("%w: %s: %q", ErrInvalidInput, key, token)
}

// invalidNumber wraps ErrInvalidNumber with the context keyword and token.
func invalidNumber(key, token string) error {
	return fmt.Errorf("%w: %s: %q", ErrInvalidNumber, key, token)
}

// unexpectedEOF wraps ErrUnexpectedEOF with the section that starved.
func unexpectedEOF(section string) error {
	return fmt.Errorf("%w: %s", ErrUnexpectedEOF, section)
}

// unknownNode wraps ErrUnknownNode with the offending identifier.
func unknownNode(id int) error {
	return fmt.Errorf("%w: %d", ErrUnknownNode, id)
}
