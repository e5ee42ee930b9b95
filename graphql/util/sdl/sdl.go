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

// Package sdl builds schemas directly from SDL source text.
package sdl

import (
	"github.com/mariam1019/graphql-js/graphql"
	"github.com/mariam1019/graphql-js/graphql/parser"
	"github.com/mariam1019/graphql-js/graphql/token"
)

// BuildSchema parses the given SDL text and builds a schema from it.
func BuildSchema(body string) (*graphql.Schema, error) {
	document, err := parser.Parse(token.NewSource(body, ""))
	if err != nil {
		return nil, err
	}
	return graphql.BuildSchema(document)
}

// MustBuildSchema is a convenience function equivalent to BuildSchema but panics on failure
// instead of returning an error.
func MustBuildSchema(body string) *graphql.Schema {
	schema, err := BuildSchema(body)
	if err != nil {
		panic(err)
	}
	return schema
}
