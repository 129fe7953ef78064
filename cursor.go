// SPDX-License-Identifier: MIT

// Package tsplib: peekable line cursor shared by the builder and the
// section parsers.
//
// The TOUR_SECTION grammar needs one line of lookahead (peek the next line
// to decide whether the current tour continues or the section ends), so the
// cursor exposes an explicit, non-consuming peek in addition to next.
// Input is materialized into a line slice up front: TSPLIB instances are
// small relative to the decoded weight matrix, and an index over a slice
// keeps both operations O(1) with no rescanning.

package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single input line. Weight rows in the wild stay far
// below this; the limit only guards against pathological unbroken input.
const maxLineBytes = 1 << 20

// lineCursor walks a materialized line sequence.
type lineCursor struct {
	lines []string
	pos   int
}

// newStringCursor builds a cursor over the lines of s.
func newStringCursor(s string) *lineCursor {
	return &lineCursor{lines: strings.Split(s, "\n")}
}

// newReaderCursor drains r into a cursor. I/O failures are wrapped so the
// caller can still reach the underlying error with errors.Is/As.
func newReaderCursor(r io.Reader) (*lineCursor, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tsplib: read: %w", err)
	}

	return &lineCursor{lines: lines}, nil
}

// next returns the next line and advances; ok is false once input is
// exhausted.
func (c *lineCursor) next() (line string, ok bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	line = c.lines[c.pos]
	c.pos++
	return line, true
}

// peek returns the next line without consuming it.
func (c *lineCursor) peek() (line string, ok bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	return c.lines[c.pos], true
}
