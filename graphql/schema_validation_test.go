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
	"github.com/mariam1019/graphql-js/graphql/ast"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func schemaDefOf(operations ...ast.OperationType) *ast.SchemaDefinition {
	operationTypes := make([]*ast.OperationTypeDefinition, len(operations))
	for i, operation := range operations {
		operationTypes[i] = &ast.OperationTypeDefinition{
			Operation: operation,
			Type:      ast.NamedType{Name: ast.Name{Value: "SomeType"}},
		}
	}
	return &ast.SchemaDefinition{OperationTypes: operationTypes}
}

var _ = Describe("Schema validation", func() {
	Describe("schemaDefinitionIn", func() {
		It("returns nil for a document without a schema definition", func() {
			document := ast.Document{
				Definitions: []ast.Definition{
					&ast.ObjectTypeDefinition{Name: ast.Name{Value: "Query"}},
				},
			}
			schemaDef, err := schemaDefinitionIn(document)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(schemaDef).Should(BeNil())
		})

		It("returns the single schema definition", func() {
			def := schemaDefOf(ast.OperationTypeQuery)
			document := ast.Document{Definitions: []ast.Definition{def}}

			schemaDef, err := schemaDefinitionIn(document)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(schemaDef).Should(BeIdenticalTo(def))
		})

		It("rejects a second schema definition", func() {
			document := ast.Document{
				Definitions: []ast.Definition{
					schemaDefOf(ast.OperationTypeQuery),
					schemaDefOf(ast.OperationTypeQuery),
				},
			}
			_, err := schemaDefinitionIn(document)
			Expect(err).Should(MatchError("Must provide only one schema definition."))
		})
	})

	Describe("rootTypeNames", func() {
		It("maps each declared operation to its type name", func() {
			roots, err := rootTypeNames(schemaDefOf(
				ast.OperationTypeQuery, ast.OperationTypeMutation))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(roots).Should(HaveLen(2))
			Expect(roots[ast.OperationTypeQuery]).Should(Equal("SomeType"))
		})

		It("rejects a repeated operation", func() {
			_, err := rootTypeNames(schemaDefOf(
				ast.OperationTypeQuery, ast.OperationTypeQuery))
			Expect(err).Should(MatchError("Must provide only one query type in schema."))

			_, err = rootTypeNames(schemaDefOf(
				ast.OperationTypeQuery,
				ast.OperationTypeSubscription,
				ast.OperationTypeSubscription))
			Expect(err).Should(MatchError("Must provide only one subscription type in schema."))
		})
	})

	Describe("validateQueryRoot", func() {
		typeDefs := func(names ...string) map[string]ast.TypeDefinition {
			defs := make(map[string]ast.TypeDefinition, len(names))
			for _, name := range names {
				defs[name] = &ast.ObjectTypeDefinition{Name: ast.Name{Value: name}}
			}
			return defs
		}

		It("accepts a schema definition that declares a query root", func() {
			roots := map[ast.OperationType]string{ast.OperationTypeQuery: "SomeType"}
			err := validateQueryRoot(schemaDefOf(ast.OperationTypeQuery), roots, typeDefs())
			Expect(err).ShouldNot(HaveOccurred())
		})

		It("rejects a schema definition without a query root", func() {
			roots := map[ast.OperationType]string{ast.OperationTypeMutation: "SomeType"}
			err := validateQueryRoot(schemaDefOf(ast.OperationTypeMutation), roots, typeDefs("Query"))
			Expect(err).Should(MatchError(
				"Must provide schema definition with query type or a type named Query."))
		})

		It("falls back to a type named Query without a schema definition", func() {
			Expect(validateQueryRoot(nil, nil, typeDefs("Query"))).Should(Succeed())

			err := validateQueryRoot(nil, nil, typeDefs("NotQuery"))
			Expect(err).Should(MatchError(
				"Must provide schema definition with query type or a type named Query."))
		})
	})
})
