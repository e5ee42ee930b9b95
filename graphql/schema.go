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
)

// Schema Definition
//
// A Schema is created by supplying the root types of each type of operation, query and mutation
// (optional). A schema definition is then supplied to the validator and executor.
//
// A Schema built by BuildSchema is immutable: every deferred structure has been forced, so a
// schema may be read from any number of goroutines without synchronization.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Schema
type Schema struct {
	query        *Object
	mutation     *Object
	subscription *Object

	// All named types reachable in the schema, keyed by name, plus the order their definitions
	// appeared in the document (built-in scalars excluded from the order).
	typeMap   map[string]Type
	typeOrder []string

	// Directive definitions the schema understands: the three built-ins merged with the document's
	// declarations under replace-on-name-collision semantics.
	directives DirectiveList

	// Object types per abstract (interface or union) type name
	possibleTypes map[string][]*Object

	// Names of document-declared directives, in order
	declaredDirectives []string

	// The schema definition from the document, when there was one, and the directives applied on
	// it
	schemaDef        *ast.SchemaDefinition
	schemaDirectives AppliedDirectives
}

// Query returns the root object type for query operations.
func (schema *Schema) Query() *Object {
	return schema.query
}

// Mutation returns the root object type for mutation operations, or nil if the schema does not
// support mutations.
func (schema *Schema) Mutation() *Object {
	return schema.mutation
}

// Subscription returns the root object type for subscription operations, or nil if the schema
// does not support subscriptions.
func (schema *Schema) Subscription() *Object {
	return schema.subscription
}

// Type looks up a named type in the schema, or returns nil when no type with the given name
// exists.
func (schema *Schema) Type(name string) Type {
	return schema.typeMap[name]
}

// TypeMap returns all named types in the schema, keyed by name.
func (schema *Schema) TypeMap() map[string]Type {
	return schema.typeMap
}

// Directives returns the directive definitions the schema understands.
func (schema *Schema) Directives() DirectiveList {
	return schema.directives
}

// Directive looks up a directive definition by name, or returns nil.
func (schema *Schema) Directive(name string) *Directive {
	return schema.directives.Get(name)
}

// SchemaDirectives returns the directives applied on the schema definition, or nil when the
// document had no schema definition.
func (schema *Schema) SchemaDirectives() AppliedDirectives {
	return schema.schemaDirectives
}

// PossibleTypes returns the object types that an abstract type (an Interface or a Union) could
// resolve to at runtime: the union's members, or the objects declaring the interface in their
// implements list. The result is nil for any other type.
func (schema *Schema) PossibleTypes(t AbstractType) []*Object {
	return schema.possibleTypes[t.Name()]
}
