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

package parser_test

import (
	"github.com/mariam1019/graphql-js/graphql/ast"
	"github.com/mariam1019/graphql-js/graphql/parser"
	"github.com/mariam1019/graphql-js/graphql/token"
	"github.com/mariam1019/graphql-js/internal/util"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func parse(body string) (ast.Document, error) {
	return parser.Parse(token.NewSource(body, ""))
}

func mustParse(body string) ast.Document {
	document, err := parse(body)
	Expect(err).ShouldNot(HaveOccurred())
	return document
}

var _ = Describe("Parser", func() {
	Describe("executable definitions", func() {
		It("parses the query shorthand", func() {
			document := mustParse("{ field }")
			Expect(document.Definitions).Should(HaveLen(1))

			operation, ok := document.Definitions[0].(*ast.OperationDefinition)
			Expect(ok).Should(BeTrue())
			Expect(operation.Operation).Should(Equal(ast.OperationTypeQuery))
			Expect(operation.Name.IsUndefined()).Should(BeTrue())
			Expect(operation.SelectionSet).Should(HaveLen(1))
		})

		It("parses a named operation with variables and directives", func() {
			document := mustParse(`
				query FetchUser($id: ID!, $full: Boolean = false) @cached {
					user: node(id: $id) @include(if: $full) {
						name
					}
				}`)

			operation := document.Definitions[0].(*ast.OperationDefinition)
			Expect(operation.Name.Value).Should(Equal("FetchUser"))
			Expect(operation.VariableDefinitions).Should(HaveLen(2))
			Expect(operation.VariableDefinitions[0].Variable.Name.Value).Should(Equal("id"))
			Expect(operation.VariableDefinitions[1].DefaultValue).Should(Equal(ast.BooleanValue{
				Value: false,
				Loc:   operation.VariableDefinitions[1].DefaultValue.Location(),
			}))
			Expect(operation.Directives).Should(HaveLen(1))
			Expect(operation.Directives[0].Name.Value).Should(Equal("cached"))

			field := operation.SelectionSet[0].(*ast.Field)
			Expect(field.Alias.Value).Should(Equal("user"))
			Expect(field.Name.Value).Should(Equal("node"))
			Expect(field.ResponseKey()).Should(Equal("user"))
			Expect(field.Arguments).Should(HaveLen(1))
			Expect(field.SelectionSet).Should(HaveLen(1))
		})

		It("parses fragment definitions and spreads", func() {
			document := mustParse(`
				query {
					hero {
						...heroFields
						... on Droid {
							primaryFunction
						}
					}
				}

				fragment heroFields on Character {
					name
				}`)

			Expect(document.Definitions).Should(HaveLen(2))

			hero := document.Definitions[0].(*ast.OperationDefinition).SelectionSet[0].(*ast.Field)
			spread, ok := hero.SelectionSet[0].(*ast.FragmentSpread)
			Expect(ok).Should(BeTrue())
			Expect(spread.Name.Value).Should(Equal("heroFields"))

			inline, ok := hero.SelectionSet[1].(*ast.InlineFragment)
			Expect(ok).Should(BeTrue())
			Expect(inline.TypeCondition.Name.Value).Should(Equal("Droid"))

			fragment := document.Definitions[1].(*ast.FragmentDefinition)
			Expect(fragment.Name.Value).Should(Equal("heroFields"))
			Expect(fragment.TypeCondition.Name.Value).Should(Equal("Character"))
		})
	})

	Describe("type system definitions", func() {
		It("parses a schema definition", func() {
			document := mustParse(util.Dedent(`
				schema {
					query: QueryRoot
					mutation: MutationRoot
				}`))

			schemaDef := document.Definitions[0].(*ast.SchemaDefinition)
			Expect(schemaDef.OperationTypes).Should(HaveLen(2))
			Expect(schemaDef.OperationTypes[0].Operation).Should(Equal(ast.OperationTypeQuery))
			Expect(schemaDef.OperationTypes[0].Type.Name.Value).Should(Equal("QueryRoot"))
			Expect(schemaDef.OperationTypes[1].Operation).Should(Equal(ast.OperationTypeMutation))
		})

		It("rejects an unknown operation type in a schema definition", func() {
			_, err := parse("schema { mutatoin: M }")
			Expect(err).Should(HaveOccurred())
		})

		It("parses an object type with interfaces, arguments and wrapped types", func() {
			document := mustParse(util.Dedent(`
				type Person implements NamedEntity & ValuedEntity {
					name(family: Boolean = true): String!
					friends(first: Int): [Person!]
				}`))

			def := document.Definitions[0].(*ast.ObjectTypeDefinition)
			Expect(def.Name.Value).Should(Equal("Person"))
			Expect(def.Interfaces).Should(HaveLen(2))
			Expect(def.Interfaces[0].Name.Value).Should(Equal("NamedEntity"))
			Expect(def.Interfaces[1].Name.Value).Should(Equal("ValuedEntity"))
			Expect(def.Fields).Should(HaveLen(2))

			name := def.Fields[0]
			Expect(name.Arguments).Should(HaveLen(1))
			Expect(name.Arguments[0].DefaultValue).ShouldNot(BeNil())
			nonNull, ok := name.Type.(ast.NonNullType)
			Expect(ok).Should(BeTrue())
			Expect(ast.PrintType(nonNull)).Should(Equal("String!"))

			friends := def.Fields[1]
			Expect(ast.PrintType(friends.Type)).Should(Equal("[Person!]"))
		})

		It("parses scalar, interface, union, enum and input definitions", func() {
			document := mustParse(util.Dedent(`
				scalar DateTime @specified

				interface NamedEntity {
					name: String
				}

				union SearchResult = Photo | Person

				enum Direction {
					NORTH
					SOUTH
				}

				input Point {
					x: Int!
					y: Int = 0
				}`))

			Expect(document.Definitions).Should(HaveLen(5))

			scalar := document.Definitions[0].(*ast.ScalarTypeDefinition)
			Expect(scalar.Name.Value).Should(Equal("DateTime"))
			Expect(scalar.Directives).Should(HaveLen(1))

			iface := document.Definitions[1].(*ast.InterfaceTypeDefinition)
			Expect(iface.Fields).Should(HaveLen(1))

			union := document.Definitions[2].(*ast.UnionTypeDefinition)
			Expect(union.Types).Should(HaveLen(2))
			Expect(union.Types[0].Name.Value).Should(Equal("Photo"))

			enum := document.Definitions[3].(*ast.EnumTypeDefinition)
			Expect(enum.Values).Should(HaveLen(2))
			Expect(enum.Values[0].Name.Value).Should(Equal("NORTH"))

			input := document.Definitions[4].(*ast.InputObjectTypeDefinition)
			Expect(input.Fields).Should(HaveLen(2))
			Expect(input.Fields[1].DefaultValue).ShouldNot(BeNil())
		})

		It("accepts a leading pipe in union members and directive locations", func() {
			document := mustParse(util.Dedent(`
				union SearchResult =
					| Photo
					| Person

				directive @example on
					| FIELD_DEFINITION
					| OBJECT`))

			union := document.Definitions[0].(*ast.UnionTypeDefinition)
			Expect(union.Types).Should(HaveLen(2))

			directive := document.Definitions[1].(*ast.DirectiveDefinition)
			Expect(directive.Locations).Should(HaveLen(2))
			Expect(directive.Locations[0].Value).Should(Equal("FIELD_DEFINITION"))
		})

		It("parses a directive definition with arguments", func() {
			document := mustParse(`directive @length(max: Int = 100) on FIELD_DEFINITION`)

			directive := document.Definitions[0].(*ast.DirectiveDefinition)
			Expect(directive.Name.Value).Should(Equal("length"))
			Expect(directive.Arguments).Should(HaveLen(1))
			Expect(directive.Arguments[0].Name.Value).Should(Equal("max"))
			Expect(directive.Arguments[0].DefaultValue).ShouldNot(BeNil())
		})
	})

	Describe("descriptions from comment blocks", func() {
		It("attaches the comment block immediately preceding a definition", func() {
			document := mustParse(util.Dedent(`
				# A simple GraphQL schema which is well described.
				type QueryRoot {
					# Retrieve the current user.
					# Supports impersonation.
					me: String
				}`))

			def := document.Definitions[0].(*ast.ObjectTypeDefinition)
			Expect(def.Description).Should(Equal("A simple GraphQL schema which is well described."))
			Expect(def.Fields[0].Description).Should(Equal(
				"Retrieve the current user.\nSupports impersonation."))
		})

		It("does not attach a stale comment block", func() {
			document := mustParse(util.Dedent(`
				type A {
					f: String
					# trailing remark
				}

				type B {
					g: String
				}`))

			// The remark trails A's last field; B carries it only if it immediately precedes B, which
			// it does not (the closing brace intervenes).
			b := document.Definitions[1].(*ast.ObjectTypeDefinition)
			Expect(b.Description).Should(Equal(""))
		})

		It("attaches comments to enum values and input fields", func() {
			document := mustParse(util.Dedent(`
				enum Direction {
					# Toward the top of the map.
					NORTH
					SOUTH
				}

				input Point {
					# Horizontal offset.
					x: Int
				}`))

			enum := document.Definitions[0].(*ast.EnumTypeDefinition)
			Expect(enum.Values[0].Description).Should(Equal("Toward the top of the map."))
			Expect(enum.Values[1].Description).Should(Equal(""))

			input := document.Definitions[1].(*ast.InputObjectTypeDefinition)
			Expect(input.Fields[0].Description).Should(Equal("Horizontal offset."))
		})
	})

	Describe("values", func() {
		It("parses all value kinds", func() {
			document := mustParse(
				`{ f(a: 1, b: 1.5, c: "str", d: true, e: null, g: WEST, h: [1, 2], i: {x: 1}, j: $var) }`)

			field := document.Definitions[0].(*ast.OperationDefinition).SelectionSet[0].(*ast.Field)
			args := field.Arguments
			Expect(args).Should(HaveLen(9))

			Expect(args.Get("a").Value.Interface()).Should(Equal(int32(1)))
			Expect(args.Get("b").Value.Interface()).Should(Equal(1.5))
			Expect(args.Get("c").Value.Interface()).Should(Equal("str"))
			Expect(args.Get("d").Value.Interface()).Should(Equal(true))
			Expect(args.Get("e").Value.Interface()).Should(BeNil())
			Expect(args.Get("g").Value.Interface()).Should(Equal("WEST"))
			Expect(args.Get("h").Value.Interface()).Should(Equal([]interface{}{int32(1), int32(2)}))
			Expect(args.Get("i").Value.Interface()).Should(Equal(map[string]interface{}{"x": int32(1)}))

			_, isVariable := args.Get("j").Value.(ast.Variable)
			Expect(isVariable).Should(BeTrue())
		})
	})

	Describe("errors", func() {
		It("reports unexpected tokens", func() {
			_, err := parse("type")
			Expect(err).Should(HaveOccurred())

			_, err = parse("type Foo { field }")
			Expect(err).Should(HaveOccurred())

			_, err = parse("}")
			Expect(err).Should(HaveOccurred())
		})

		It("rejects an empty selection set", func() {
			_, err := parse("{ }")
			Expect(err).Should(HaveOccurred())
		})
	})
})
