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

package lexer_test

import (
	"github.com/mariam1019/graphql-js/graphql/lexer"
	"github.com/mariam1019/graphql-js/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func lexOne(body string) (token.Token, error) {
	return lexer.New(token.NewSource(body, "")).Advance()
}

func lexAll(body string) ([]token.Token, error) {
	l := lexer.New(token.NewSource(body, ""))
	var tokens []token.Token
	for {
		tok, err := l.Advance()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.KindEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

var _ = Describe("Lexer", func() {
	It("lexes an empty source to EOF", func() {
		tok, err := lexOne("")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(tok.Kind).Should(Equal(token.KindEOF))
	})

	It("keeps returning EOF once exhausted", func() {
		l := lexer.New(token.NewSource("x", ""))

		tok, err := l.Advance()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(tok.Kind).Should(Equal(token.KindName))

		for i := 0; i < 3; i++ {
			tok, err = l.Advance()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tok.Kind).Should(Equal(token.KindEOF))
		}
	})

	It("skips white space, commas and a byte order mark", func() {
		tok, err := lexOne("\xef\xbb\xbf \t\n,,  foo  ")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(tok.Kind).Should(Equal(token.KindName))
		Expect(tok.Value).Should(Equal("foo"))
	})

	It("lexes punctuators", func() {
		tokens, err := lexAll("! $ & ( ) ... : = @ [ ] { | }")
		Expect(err).ShouldNot(HaveOccurred())

		kinds := make([]token.Kind, len(tokens))
		for i, tok := range tokens {
			kinds[i] = tok.Kind
		}
		Expect(kinds).Should(Equal([]token.Kind{
			token.KindBang,
			token.KindDollar,
			token.KindAmp,
			token.KindLeftParen,
			token.KindRightParen,
			token.KindSpread,
			token.KindColon,
			token.KindEquals,
			token.KindAt,
			token.KindLeftBracket,
			token.KindRightBracket,
			token.KindLeftBrace,
			token.KindPipe,
			token.KindRightBrace,
		}))
	})

	It("rejects an incomplete spread", func() {
		_, err := lexOne("..")
		Expect(err).Should(HaveOccurred())
	})

	It("lexes names", func() {
		tokens, err := lexAll("simple _underscore with_123_digits")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(tokens).Should(HaveLen(3))
		Expect(tokens[0].Value).Should(Equal("simple"))
		Expect(tokens[1].Value).Should(Equal("_underscore"))
		Expect(tokens[2].Value).Should(Equal("with_123_digits"))
	})

	Describe("numbers", func() {
		It("lexes integers", func() {
			for _, body := range []string{"0", "4", "-4", "9876", "-9876"} {
				tok, err := lexOne(body)
				Expect(err).ShouldNot(HaveOccurred(), "lexing %q", body)
				Expect(tok.Kind).Should(Equal(token.KindInt))
				Expect(tok.Value).Should(Equal(body))
			}
		})

		It("lexes floats", func() {
			for _, body := range []string{"4.123", "-4.123", "0.123", "123e4", "123E4", "123e-4", "123e+4", "-1.123e4"} {
				tok, err := lexOne(body)
				Expect(err).ShouldNot(HaveOccurred(), "lexing %q", body)
				Expect(tok.Kind).Should(Equal(token.KindFloat))
				Expect(tok.Value).Should(Equal(body))
			}
		})

		It("rejects malformed numbers", func() {
			for _, body := range []string{"00", "+1", "1.", ".123", "1.A", "-A", "1.0e", "1.0eA"} {
				_, err := lexAll(body)
				Expect(err).Should(HaveOccurred(), "lexing %q", body)
			}
		})
	})

	Describe("strings", func() {
		It("lexes simple strings", func() {
			tok, err := lexOne(`"simple"`)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tok.Kind).Should(Equal(token.KindString))
			Expect(tok.Value).Should(Equal("simple"))
		})

		It("interprets escape sequences", func() {
			tok, err := lexOne(`"escaped \n\r\b\t\f"`)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tok.Value).Should(Equal("escaped \n\r\b\t\f"))

			tok, err = lexOne(`"slashes \\ \/"`)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tok.Value).Should(Equal(`slashes \ /`))

			tok, err = lexOne(`"unicode ሴ噸邫췯"`)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tok.Value).Should(Equal("unicode ሴ噸邫췯"))
		})

		It("rejects unterminated strings", func() {
			_, err := lexOne(`"no end quote`)
			Expect(err).Should(HaveOccurred())

			_, err = lexOne("\"multi\nline\"")
			Expect(err).Should(HaveOccurred())
		})

		It("rejects bad escape sequences", func() {
			_, err := lexOne(`"bad \z esc"`)
			Expect(err).Should(HaveOccurred())

			_, err = lexOne(`"bad \u1 esc"`)
			Expect(err).Should(HaveOccurred())
		})
	})

	Describe("comments", func() {
		It("emits comment tokens", func() {
			tokens, err := lexAll("# a comment\nfoo")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tokens).Should(HaveLen(2))
			Expect(tokens[0].Kind).Should(Equal(token.KindComment))
			Expect(tokens[0].Value).Should(Equal("a comment"))
			Expect(tokens[1].Value).Should(Equal("foo"))
		})

		It("strips at most one leading space", func() {
			tokens, err := lexAll("#comment\n#  spaced")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tokens[0].Value).Should(Equal("comment"))
			Expect(tokens[1].Value).Should(Equal(" spaced"))
		})

		It("lexes a comment ending at EOF", func() {
			tokens, err := lexAll("# the end")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tokens).Should(HaveLen(1))
			Expect(tokens[0].Value).Should(Equal("the end"))
		})
	})

	It("reports unexpected characters with positions", func() {
		_, err := lexOne("?")
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(Equal(
			`Syntax Error GraphQL request (1:1) Cannot parse the unexpected character "?".`))
	})

	It("records token locations", func() {
		tokens, err := lexAll("foo bar")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(tokens[0].Location).Should(Equal(token.SourceLocation(1)))
		Expect(tokens[1].Location).Should(Equal(token.SourceLocation(5)))
	})
})
