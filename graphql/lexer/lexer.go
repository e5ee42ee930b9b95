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

package lexer

import (
	"fmt"
	"strings"

	"github.com/mariam1019/graphql-js/graphql"
	"github.com/mariam1019/graphql-js/graphql/token"
)

// Lexer is a stateful stream generator: every time it is advanced, it returns the next token in
// the Source. Assuming the source lexes, the final token emitted will be of kind EOF, after which
// the lexer repeatedly returns the same EOF token whenever advanced.
//
// Comment tokens are emitted (not skipped) so the parser can attach leading comment blocks to
// definitions as their descriptions.
type Lexer struct {
	source *token.Source

	// Byte position in the source at which the next token starts
	pos uint
}

// New initializes a Lexer for the given Source.
func New(source *token.Source) *Lexer {
	return &Lexer{
		source: source,
	}
}

// Source returns the source being lexed.
func (lexer *Lexer) Source() *token.Source {
	return lexer.source
}

// Advance returns the next token in the source, skipping ignored characters (white space, commas
// and line terminators) but not comments.
func (lexer *Lexer) Advance() (token.Token, error) {
	lexer.skipIgnored()

	source := lexer.source
	pos := lexer.pos
	if pos >= source.Size() {
		return token.Token{
			Kind:     token.KindEOF,
			Location: source.LocationFromPos(pos),
		}, nil
	}

	c := source.At(pos)
	switch c {
	case '!':
		return lexer.makePunctuator(token.KindBang), nil
	case '$':
		return lexer.makePunctuator(token.KindDollar), nil
	case '&':
		return lexer.makePunctuator(token.KindAmp), nil
	case '(':
		return lexer.makePunctuator(token.KindLeftParen), nil
	case ')':
		return lexer.makePunctuator(token.KindRightParen), nil
	case ':':
		return lexer.makePunctuator(token.KindColon), nil
	case '=':
		return lexer.makePunctuator(token.KindEquals), nil
	case '@':
		return lexer.makePunctuator(token.KindAt), nil
	case '[':
		return lexer.makePunctuator(token.KindLeftBracket), nil
	case ']':
		return lexer.makePunctuator(token.KindRightBracket), nil
	case '{':
		return lexer.makePunctuator(token.KindLeftBrace), nil
	case '|':
		return lexer.makePunctuator(token.KindPipe), nil
	case '}':
		return lexer.makePunctuator(token.KindRightBrace), nil

	case '.':
		if source.At(pos+1) == '.' && source.At(pos+2) == '.' {
			tok := token.Token{
				Kind:     token.KindSpread,
				Location: source.LocationFromPos(pos),
			}
			lexer.pos += 3
			return tok, nil
		}
		return token.Token{}, lexer.unexpectedCharacterError(pos)

	case '#':
		return lexer.lexComment(), nil

	case '"':
		return lexer.lexString()

	case '-':
		return lexer.lexNumber()
	}

	switch {
	case c >= '0' && c <= '9':
		return lexer.lexNumber()
	case isNameStart(c):
		return lexer.lexName(), nil
	}

	return token.Token{}, lexer.unexpectedCharacterError(pos)
}

// skipIgnored consumes white space, line terminators, commas and the UTF-8 BOM.
func (lexer *Lexer) skipIgnored() {
	source := lexer.source
	for lexer.pos < source.Size() {
		switch source.At(lexer.pos) {
		case ' ', '\t', ',', '\n', '\r':
			lexer.pos++
		case 0xEF:
			// Possible byte order mark (EF BB BF).
			if source.At(lexer.pos+1) == 0xBB && source.At(lexer.pos+2) == 0xBF {
				lexer.pos += 3
			} else {
				return
			}
		default:
			return
		}
	}
}

func (lexer *Lexer) makePunctuator(kind token.Kind) token.Token {
	tok := token.Token{
		Kind:     kind,
		Location: lexer.source.LocationFromPos(lexer.pos),
	}
	lexer.pos++
	return tok
}

// lexComment reads a comment token. The token value is the comment text after the leading "#",
// with at most one leading space removed.
func (lexer *Lexer) lexComment() token.Token {
	source := lexer.source
	start := lexer.pos

	// Skip "#".
	pos := start + 1
	for pos < source.Size() {
		c := source.At(pos)
		if c == '\n' || c == '\r' {
			break
		}
		pos++
	}

	value := string(source.Body()[start+1 : pos])
	value = strings.TrimPrefix(value, " ")

	lexer.pos = pos
	return token.Token{
		Kind:     token.KindComment,
		Value:    value,
		Location: source.LocationFromPos(start),
	}
}

// lexName reads a name token: /[_A-Za-z][_0-9A-Za-z]*/.
func (lexer *Lexer) lexName() token.Token {
	source := lexer.source
	start := lexer.pos

	pos := start + 1
	for pos < source.Size() && isNameContinue(source.At(pos)) {
		pos++
	}

	lexer.pos = pos
	return token.Token{
		Kind:     token.KindName,
		Value:    string(source.Body()[start:pos]),
		Location: source.LocationFromPos(start),
	}
}

// lexNumber reads an int or float token.
//
// Reference: https://facebook.github.io/graphql/June2018/#IntValue
func (lexer *Lexer) lexNumber() (token.Token, error) {
	source := lexer.source
	start := lexer.pos
	pos := start
	isFloat := false

	if source.At(pos) == '-' {
		pos++
	}

	if source.At(pos) == '0' {
		pos++
		if c := source.At(pos); c >= '0' && c <= '9' {
			return token.Token{}, lexer.syntaxError(pos,
				fmt.Sprintf("Invalid number, unexpected digit after 0: %s.", lexer.printCharAt(pos)))
		}
	} else {
		var err error
		pos, err = lexer.consumeDigits(pos)
		if err != nil {
			return token.Token{}, err
		}
	}

	if source.At(pos) == '.' {
		isFloat = true
		pos++
		var err error
		pos, err = lexer.consumeDigits(pos)
		if err != nil {
			return token.Token{}, err
		}
	}

	if c := source.At(pos); c == 'e' || c == 'E' {
		isFloat = true
		pos++
		if c := source.At(pos); c == '+' || c == '-' {
			pos++
		}
		var err error
		pos, err = lexer.consumeDigits(pos)
		if err != nil {
			return token.Token{}, err
		}
	}

	kind := token.KindInt
	if isFloat {
		kind = token.KindFloat
	}

	lexer.pos = pos
	return token.Token{
		Kind:     kind,
		Value:    string(source.Body()[start:pos]),
		Location: source.LocationFromPos(start),
	}, nil
}

// consumeDigits consumes at least one digit starting at pos and returns the position of the first
// non-digit.
func (lexer *Lexer) consumeDigits(pos uint) (uint, error) {
	source := lexer.source
	c := source.At(pos)
	if c < '0' || c > '9' {
		return 0, lexer.syntaxError(pos,
			fmt.Sprintf("Invalid number, expected digit but got: %s.", lexer.printCharAt(pos)))
	}
	for {
		pos++
		if c := source.At(pos); c < '0' || c > '9' {
			return pos, nil
		}
	}
}

// lexString reads a quoted string token. Escape sequences are interpreted into the token value.
//
// Reference: https://facebook.github.io/graphql/June2018/#StringValue
func (lexer *Lexer) lexString() (token.Token, error) {
	source := lexer.source
	start := lexer.pos

	var builder strings.Builder
	pos := start + 1
	for {
		if pos >= source.Size() {
			return token.Token{}, lexer.syntaxError(pos, "Unterminated string.")
		}

		c := source.At(pos)
		switch {
		case c == '"':
			lexer.pos = pos + 1
			return token.Token{
				Kind:     token.KindString,
				Value:    builder.String(),
				Location: source.LocationFromPos(start),
			}, nil

		case c == '\n' || c == '\r':
			return token.Token{}, lexer.syntaxError(pos, "Unterminated string.")

		case c == '\\':
			pos++
			switch source.At(pos) {
			case '"':
				builder.WriteByte('"')
			case '\\':
				builder.WriteByte('\\')
			case '/':
				builder.WriteByte('/')
			case 'b':
				builder.WriteByte('\b')
			case 'f':
				builder.WriteByte('\f')
			case 'n':
				builder.WriteByte('\n')
			case 'r':
				builder.WriteByte('\r')
			case 't':
				builder.WriteByte('\t')
			case 'u':
				r, err := lexer.lexUnicodeEscape(pos + 1)
				if err != nil {
					return token.Token{}, err
				}
				builder.WriteRune(r)
				pos += 4
			default:
				return token.Token{}, lexer.syntaxError(pos,
					fmt.Sprintf(`Invalid character escape sequence: \%s.`, lexer.printCharAt(pos)))
			}
			pos++

		case c < 0x20 && c != '\t':
			return token.Token{}, lexer.syntaxError(pos,
				fmt.Sprintf("Invalid character within String: %s.", lexer.printCharAt(pos)))

		default:
			builder.WriteByte(c)
			pos++
		}
	}
}

// lexUnicodeEscape interprets the 4 hexadecimal digits starting at pos as a rune.
func (lexer *Lexer) lexUnicodeEscape(pos uint) (rune, error) {
	var r rune
	for i := uint(0); i < 4; i++ {
		c := lexer.source.At(pos + i)
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = rune(c - '0')
		case c >= 'a' && c <= 'f':
			d = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = rune(c-'A') + 10
		default:
			return 0, lexer.syntaxError(pos+i,
				fmt.Sprintf("Invalid character escape sequence: %s.", lexer.printCharAt(pos+i)))
		}
		r = r<<4 | d
	}
	return r, nil
}

// printCharAt renders the character at the given position for an error message.
func (lexer *Lexer) printCharAt(pos uint) string {
	source := lexer.source
	if pos >= source.Size() {
		return token.KindEOF.String()
	}
	r, _ := source.RuneAt(pos)
	if r < 0x7F && r >= 0x20 {
		return fmt.Sprintf(`"%c"`, r)
	}
	return fmt.Sprintf(`\u%04X`, r)
}

func (lexer *Lexer) syntaxError(pos uint, message string) error {
	if pos > lexer.source.Size() {
		pos = lexer.source.Size()
	}
	return graphql.NewSyntaxError(lexer.source, lexer.source.LocationFromPos(pos), message)
}

func (lexer *Lexer) unexpectedCharacterError(pos uint) error {
	return lexer.syntaxError(pos,
		fmt.Sprintf("Cannot parse the unexpected character %s.", lexer.printCharAt(pos)))
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameContinue(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}
