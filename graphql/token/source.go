/**
 * Copyright (c) 2026, The graphql-js Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package token

import (
	"unicode/utf8"
)

// SourceLocationInfo expands a SourceLocation into a source name with line and column numbers.
// Both line and column are 1-indexed.
type SourceLocationInfo struct {
	Name   string
	Line   uint
	Column uint
}

// Source represents a GraphQL source text.
type Source struct {
	name string
	body []byte
}

// NewSource initializes a Source from a document string. The name is used to identify the source
// in error messages; it defaults to "GraphQL request" when empty.
func NewSource(body string, name string) *Source {
	if len(name) == 0 {
		name = "GraphQL request"
	}
	return &Source{
		name: name,
		body: []byte(body),
	}
}

// Name returns the name given to the source.
func (source *Source) Name() string {
	return source.name
}

// Body returns the source text in a byte sequence.
func (source *Source) Body() []byte {
	return source.body
}

// Size returns the body size in bytes.
func (source *Source) Size() uint {
	return uint(len(source.body))
}

// At returns the byte at the given position, or 0 if the position is past the end of the body.
func (source *Source) At(pos uint) byte {
	if pos >= source.Size() {
		return 0
	}
	return source.body[pos]
}

// RuneAt decodes the rune at the given position. It also returns the number of bytes occupied by
// the rune. A rune of -1 indicates <EOF>.
func (source *Source) RuneAt(pos uint) (rune, uint) {
	if pos >= source.Size() {
		return -1, 0
	}

	// Fast path: characters below RuneSelf are represented as themselves in a single byte.
	c := source.body[pos]
	if c < utf8.RuneSelf {
		return rune(c), 1
	}

	r, n := utf8.DecodeRune(source.body[pos:])
	return r, uint(n)
}

// LocationFromPos returns the SourceLocation representing the given byte position in the body.
func (source *Source) LocationFromPos(pos uint) SourceLocation {
	if pos > source.Size() {
		panic("illegal byte position value")
	}
	return SourceLocation(pos + 1)
}

// LocationInfoOf computes a SourceLocationInfo for the given SourceLocation.
func (source *Source) LocationInfoOf(loc SourceLocation) SourceLocationInfo {
	if !loc.IsValid() {
		return SourceLocationInfo{
			Name: source.Name(),
		}
	}

	var (
		line   uint = 1
		column uint = 1
		pos         = uint(loc) - 1
	)
	if pos > source.Size() {
		pos = source.Size()
	}

	var i uint
	for i < pos {
		switch source.body[i] {
		case '\r':
			if i+1 < source.Size() && source.body[i+1] == '\n' {
				// "\r\n" counts as one line terminator. A location pointing at the "\n" itself reports the
				// next line with column 0, matching graphql-js.
				i++
				if i == pos {
					line++
					column = 0
				}
			} else {
				line++
				column = 1
				i++
			}

		case '\n':
			line++
			column = 1
			i++

		default:
			column++
			i++
		}
	}

	return SourceLocationInfo{
		Name:   source.Name(),
		Line:   line,
		Column: column,
	}
}
