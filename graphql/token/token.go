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
	"fmt"
)

// Kind describes the different kinds of tokens that the lexer emits.
type Kind int

// Enumeration of Kind
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Appendix-Grammar-Summary.Lexical-Tokens
const (
	// <EOF>
	KindEOF Kind = iota + 1
	// !
	KindBang
	// $
	KindDollar
	// &
	KindAmp
	// (
	KindLeftParen
	// )
	KindRightParen
	// ...
	KindSpread
	// :
	KindColon
	// =
	KindEquals
	// @
	KindAt
	// [
	KindLeftBracket
	// ]
	KindRightBracket
	// {
	KindLeftBrace
	// |
	KindPipe
	// }
	KindRightBrace
	// Ref: https://facebook.github.io/graphql/June2018/#Name
	KindName
	// Ref: https://facebook.github.io/graphql/June2018/#IntValue
	KindInt
	// Ref: https://facebook.github.io/graphql/June2018/#FloatValue
	KindFloat
	// Ref: https://facebook.github.io/graphql/June2018/#StringValue
	KindString
	// Ref: https://facebook.github.io/graphql/June2018/#sec-Comments
	KindComment
)

var _ fmt.Stringer = Kind(0)

func (kind Kind) String() string {
	switch kind {
	case KindEOF:
		return "<EOF>"
	case KindBang:
		return "!"
	case KindDollar:
		return "$"
	case KindAmp:
		return "&"
	case KindLeftParen:
		return "("
	case KindRightParen:
		return ")"
	case KindSpread:
		return "..."
	case KindColon:
		return ":"
	case KindEquals:
		return "="
	case KindAt:
		return "@"
	case KindLeftBracket:
		return "["
	case KindRightBracket:
		return "]"
	case KindLeftBrace:
		return "{"
	case KindPipe:
		return "|"
	case KindRightBrace:
		return "}"
	case KindName:
		return "Name"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindComment:
		return "Comment"
	}
	panic("unsupported token kind")
}

// SourceLocation encodes a position in a source file. It lives in the context of a Source. Its
// value is a 1-indexed byte offset relative to the beginning of the source body. Given a
// SourceLocation loc and a Source s, s.LocationInfoOf(loc) expands it into line and column
// numbers.
type SourceLocation uint

// NoSourceLocation is a special SourceLocation that doesn't exist in any source. It is the zero
// value of SourceLocation so nodes built by hand (e.g., in tests) carry it implicitly.
const NoSourceLocation SourceLocation = 0

// IsValid returns true if the SourceLocation refers to an actual position.
func (location SourceLocation) IsValid() bool {
	return location != NoSourceLocation
}

// Token represents a lexical token scanned from a Source.
type Token struct {
	// The kind of Token.
	Kind Kind

	// For punctuation tokens this is empty. For other kinds of token, this is the interpreted value
	// of the token (e.g., a string token carries its unquoted contents).
	Value string

	// The position at which this Token begins in the source
	Location SourceLocation
}

// Description describes a token as a string for use in error messages.
func (tok Token) Description() string {
	if len(tok.Value) > 0 {
		return fmt.Sprintf(`%s "%s"`, tok.Kind.String(), tok.Value)
	}
	return tok.Kind.String()
}
