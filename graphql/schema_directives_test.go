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
	"sync"

	"github.com/mariam1019/graphql-js/graphql"
	"github.com/mariam1019/graphql-js/internal/util"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Schema directives", func() {
	It("provides skip, include and deprecated by default", func() {
		schema := buildSchema(`type Query { str: String }`)

		Expect(schema.Directives()).Should(HaveLen(3))
		Expect(schema.Directive("skip")).Should(BeIdenticalTo(graphql.SkipDirective))
		Expect(schema.Directive("include")).Should(BeIdenticalTo(graphql.IncludeDirective))
		Expect(schema.Directive("deprecated")).Should(BeIdenticalTo(graphql.DeprecatedDirective))
	})

	It("adds declared directives to the defaults", func() {
		schema := buildSchema(util.Dedent(`
			directive @auth(role: String = "viewer") on FIELD_DEFINITION

			type Query { str: String }`))

		Expect(schema.Directives()).Should(HaveLen(4))

		auth := schema.Directive("auth")
		Expect(auth).ShouldNot(BeNil())
		Expect(auth.Locations()).Should(Equal([]graphql.DirectiveLocation{
			graphql.DirectiveLocationFieldDefinition,
		}))
		Expect(auth.Args().Get("role").DefaultValue()).Should(Equal("viewer"))
	})

	It("replaces a default directive declared in the document", func() {
		schema := buildSchema(util.Dedent(`
			directive @skip(if: Boolean!) on FIELD

			type Query { str: String }`))

		Expect(schema.Directives()).Should(HaveLen(3))
		skip := schema.Directive("skip")
		Expect(skip).ShouldNot(BeIdenticalTo(graphql.SkipDirective))
		Expect(skip.Locations()).Should(Equal([]graphql.DirectiveLocation{
			graphql.DirectiveLocationField,
		}))
	})

	Describe("applications", func() {
		It("records directives applied to type definitions", func() {
			schema := buildSchema(util.Dedent(`
				directive @tag(name: String) on OBJECT | SCALAR

				scalar Slug @tag(name: "url")

				type Query @tag(name: "root") {
					str: String
				}`))

			slug := schema.Type("Slug").(*graphql.Scalar)
			Expect(slug.Directives().IsApplied("tag")).Should(BeTrue())
			Expect(slug.Directives().DirectiveArgs("tag")).Should(Equal(map[string]interface{}{
				"name": "url",
			}))

			Expect(schema.Query().Directives().DirectiveArgs("tag")).Should(Equal(map[string]interface{}{
				"name": "root",
			}))
		})

		It("records applications of undeclared directives", func() {
			schema := buildSchema(`type Query { str: String @whatever(x: 1) }`)

			directives := schema.Query().Fields().Get("str").Directives()
			Expect(directives.IsApplied("whatever")).Should(BeTrue())
			Expect(directives.DirectiveArgs("whatever")).Should(Equal(map[string]interface{}{
				"x": int32(1),
			}))
		})

		It("keeps repeated applications and reports the first", func() {
			schema := buildSchema(util.Dedent(`
				scalar S @tag(v: 1) @tag(v: 2)

				type Query { s: S }`))

			directives := schema.Type("S").(*graphql.Scalar).Directives()
			Expect(directives).Should(HaveLen(2))
			Expect(directives.DirectiveArgs("tag")).Should(Equal(map[string]interface{}{
				"v": int32(1),
			}))
			Expect(directives[1].ArgValues()).Should(Equal(map[string]interface{}{
				"v": int32(2),
			}))
		})

		It("coerces supplied arguments against the declared signature", func() {
			schema := buildSchema(util.Dedent(`
				directive @limit(max: Int) on FIELD_DEFINITION

				type Query {
					str: String @limit(max: 5)
				}`))

			directives := schema.Query().Fields().Get("str").Directives()
			Expect(directives.DirectiveArgs("limit")).Should(Equal(map[string]interface{}{
				"max": 5,
			}))
		})

		It("rejects an argument that does not coerce against the declaration", func() {
			err := buildSchemaError(`type Query { old: String @deprecated(reason: 123) }`)
			Expect(err).Should(MatchError("String cannot represent a non string value: 123"))

			err = buildSchemaError(util.Dedent(`
				directive @limit(max: Int) on FIELD_DEFINITION

				type Query {
					str: String @limit(max: "five")
				}`))
			Expect(err).Should(MatchError(`Int cannot represent non-integer value: "five"`))
		})

		It("fills omitted arguments from declared defaults", func() {
			schema := buildSchema(util.Dedent(`
				directive @auth(role: String = "viewer") on FIELD_DEFINITION

				type Query {
					str: String @auth
				}`))

			directives := schema.Query().Fields().Get("str").Directives()
			Expect(directives.DirectiveArgs("auth")).Should(Equal(map[string]interface{}{
				"role": "viewer",
			}))

			// The application itself supplied no arguments.
			Expect(directives.Get("auth").Args()).Should(BeEmpty())
		})

		It("records directives applied to the schema definition", func() {
			schema := buildSchema(util.Dedent(`
				schema @experimental {
					query: Query
				}

				type Query { str: String }`))

			Expect(schema.SchemaDirectives().IsApplied("experimental")).Should(BeTrue())
		})
	})

	It("shares the built-in definitions across concurrent builds", func() {
		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				schema := buildSchema(`type Query { old: String @deprecated }`)
				Expect(schema.Directive("deprecated")).Should(BeIdenticalTo(graphql.DeprecatedDirective))
				old := schema.Query().Fields().Get("old")
				Expect(old.DeprecationReason()).Should(Equal(graphql.DefaultDeprecationReason))
			}()
		}
		wg.Wait()
	})

	Describe("deprecation", func() {
		It("reads the reason from the deprecated directive", func() {
			schema := buildSchema(util.Dedent(`
				type Query {
					old: String @deprecated(reason: "Use new.")
					current: String
				}`))

			old := schema.Query().Fields().Get("old")
			Expect(old.IsDeprecated()).Should(BeTrue())
			Expect(old.DeprecationReason()).Should(Equal("Use new."))

			current := schema.Query().Fields().Get("current")
			Expect(current.IsDeprecated()).Should(BeFalse())
			Expect(current.DeprecationReason()).Should(Equal(""))
		})

		It("defaults the reason when omitted", func() {
			schema := buildSchema(`type Query { old: String @deprecated }`)

			old := schema.Query().Fields().Get("old")
			Expect(old.IsDeprecated()).Should(BeTrue())
			Expect(old.DeprecationReason()).Should(Equal(graphql.DefaultDeprecationReason))
		})

		It("applies to enum values", func() {
			schema := buildSchema(util.Dedent(`
				type Query { dir: Direction }

				enum Direction {
					NORTH
					UP @deprecated(reason: "Too ambitious.")
				}`))

			values := schema.Type("Direction").(*graphql.Enum).Values()
			Expect(values.Get("NORTH").IsDeprecated()).Should(BeFalse())
			up := values.Get("UP")
			Expect(up.IsDeprecated()).Should(BeTrue())
			Expect(up.DeprecationReason()).Should(Equal("Too ambitious."))
		})
	})
})
