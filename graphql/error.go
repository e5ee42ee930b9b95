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

package graphql

import (
	"fmt"

	"github.com/mariam1019/graphql-js/graphql/token"

	"github.com/json-iterator/go"
)

// ErrKind classifies an Error.
type ErrKind uint8

// Enumeration of ErrKind
const (
	ErrKindOther      ErrKind = iota // Unclassified error.
	ErrKindSyntax                    // A syntax error in the GraphQL source.
	ErrKindValidation                // A structural violation detected while building a schema.
	ErrKindCoercion                  // A literal value incompatible with its target type.
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindSyntax:
		return "syntax error"
	case ErrKindValidation:
		return "validation error"
	case ErrKindCoercion:
		return "coercion error"
	}
	return "unknown error kind"
}

// ErrorLocation contains a line number and a column number pointing at the beginning of an
// associated syntax element. Both are 1-indexed.
type ErrorLocation struct {
	Line   uint `json:"line"`
	Column uint `json:"column"`
}

// Error is the error type reported by every component in this package. The Message text is part
// of the observable contract: callers (and tests) match it verbatim.
type Error struct {
	// Message describes the error for human consumption.
	Message string

	// Kind classifies the error.
	Kind ErrKind

	// Locations points into the source text when the error originates from one or more syntax
	// elements. It is empty for errors raised against hand-built ASTs.
	Locations []ErrorLocation
}

var _ error = (*Error)(nil)

// Error implements the error interface. It returns the bare message so callers can match the
// enumerated error texts exactly.
func (e *Error) Error() string {
	return e.Message
}

// MarshalJSON serializes the error into the standard GraphQL error format.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(struct {
		Message   string          `json:"message"`
		Locations []ErrorLocation `json:"locations,omitempty"`
	}{
		Message:   e.Message,
		Locations: e.Locations,
	})
}

// NewError creates an unclassified Error with the given message.
func NewError(message string) *Error {
	return &Error{
		Message: message,
		Kind:    ErrKindOther,
	}
}

// NewSyntaxError creates an Error for an offending position in the given source.
func NewSyntaxError(source *token.Source, location token.SourceLocation, message string) *Error {
	info := source.LocationInfoOf(location)
	return &Error{
		Message: fmt.Sprintf("Syntax Error %s (%d:%d) %s", info.Name, info.Line, info.Column, message),
		Kind:    ErrKindSyntax,
		Locations: []ErrorLocation{
			{Line: info.Line, Column: info.Column},
		},
	}
}

// NewValidationError creates an Error for a structural violation found during schema
// construction.
func NewValidationError(message string) *Error {
	return &Error{
		Message: message,
		Kind:    ErrKindValidation,
	}
}

// NewCoercionError creates an Error for a literal value that cannot be coerced into its target
// type.
func NewCoercionError(message string) *Error {
	return &Error{
		Message: message,
		Kind:    ErrKindCoercion,
	}
}
