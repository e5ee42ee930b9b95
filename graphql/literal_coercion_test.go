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

package graphql_test

import (
	"github.com/mariam1019/graphql-js/graphql"
	"github.com/mariam1019/graphql-js/graphql/ast"
	"github.com/mariam1019/graphql-js/internal/util"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// literal parses the given value in an argument position and returns its AST.
func literal(value string) ast.Value {
	document := parseDocument("{ f(x: " + value + ") }")
	operation := document.Definitions[0].(*ast.OperationDefinition)
	field := operation.SelectionSet[0].(*ast.Field)
	return field.Arguments[0].Value
}

func coerce(t graphql.Type, value string) (interface{}, error) {
	return graphql.CoerceLiteralValue(t, literal(value))
}

var _ = Describe("CoerceLiteralValue", func() {
	var schema *graphql.Schema

	BeforeEach(func() {
		schema = buildSchema(util.Dedent(`
			type Query {
				f(p: Point, d: Direction): String
			}

			input Point {
				x: Int = 1
				y: Int!
			}

			enum Direction {
				NORTH
				SOUTH
			}`))
	})

	It("coerces scalar literals", func() {
		Expect(coerce(graphql.Int, "42")).Should(Equal(42))
		Expect(coerce(graphql.Float, "3.14")).Should(Equal(3.14))
		Expect(coerce(graphql.Float, "2")).Should(Equal(2.0))
		Expect(coerce(graphql.String, `"hi"`)).Should(Equal("hi"))
		Expect(coerce(graphql.Boolean, "false")).Should(Equal(false))
		Expect(coerce(graphql.ID, `"4"`)).Should(Equal("4"))
		Expect(coerce(graphql.ID, "4")).Should(Equal("4"))
	})

	It("rejects mismatched scalar literals", func() {
		_, err := coerce(graphql.Int, `"42"`)
		Expect(err).Should(MatchError(`Int cannot represent non-integer value: "42"`))

		_, err = coerce(graphql.Int, "3.14")
		Expect(err).Should(MatchError("Int cannot represent non-integer value: 3.14"))

		_, err = coerce(graphql.Int, "2147483648")
		Expect(err).Should(HaveOccurred())
	})

	It("coerces null to nil for nullable types", func() {
		value, err := coerce(graphql.Int, "null")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(BeNil())
	})

	It("rejects null for non-null types", func() {
		_, err := coerce(graphql.NewNonNullOfType(graphql.Int), "null")
		Expect(err).Should(MatchError(`Expected value of type "Int!", found null.`))
	})

	It("rejects variables", func() {
		_, err := coerce(graphql.Int, "$var")
		Expect(err).Should(MatchError(`Variable "$var" cannot be used in a constant value.`))
	})

	It("coerces enum names and rejects unknown ones", func() {
		direction := schema.Type("Direction").(*graphql.Enum)

		value, err := graphql.CoerceLiteralValue(direction, literal("NORTH"))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal("NORTH"))

		_, err = graphql.CoerceLiteralValue(direction, literal("WEST"))
		Expect(err).Should(MatchError(`Value "WEST" does not exist in "Direction" enum.`))
	})

	It("coerces lists element-wise", func() {
		value, err := coerce(graphql.NewListOfType(graphql.Int), "[1, 2, 3]")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal([]interface{}{1, 2, 3}))
	})

	It("wraps a single value into a one-element list", func() {
		value, err := coerce(graphql.NewListOfType(graphql.Int), "3")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal([]interface{}{3}))
	})

	It("coerces input objects and applies field defaults", func() {
		point := schema.Type("Point").(*graphql.InputObject)

		value, err := graphql.CoerceLiteralValue(point, literal("{x: 2, y: 3}"))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal(map[string]interface{}{"x": 2, "y": 3}))

		value, err = graphql.CoerceLiteralValue(point, literal("{y: 3}"))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal(map[string]interface{}{"x": 1, "y": 3}))
	})

	It("rejects unknown input object fields", func() {
		point := schema.Type("Point").(*graphql.InputObject)

		_, err := graphql.CoerceLiteralValue(point, literal("{y: 3, z: 4}"))
		Expect(err).Should(MatchError(`Field "z" is not defined by type "Point".`))
	})

	It("rejects input objects missing a required field", func() {
		point := schema.Type("Point").(*graphql.InputObject)

		_, err := graphql.CoerceLiteralValue(point, literal("{x: 2}"))
		Expect(err).Should(MatchError(`Field "y" of required type "Int!" was not provided.`))
	})
})
