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

// Deprecation contains information about deprecation for a field or an enum value.
//
// See https://facebook.github.io/graphql/June2018/#sec-Deprecation.
type Deprecation struct {
	// Reason provides a description of why the subject is deprecated.
	Reason string
}

// Defined returns true if the deprecation is active.
func (d *Deprecation) Defined() bool {
	return d != nil
}

// AppliedArgument is one argument supplied to a directive application in the document, carrying
// both the literal as written and its plain Go value.
type AppliedArgument struct {
	Name    string
	Value   interface{}
	Literal ast.Value
}

// AppliedDirective records one application of a directive on a schema element (e.g.,
// "@deprecated(reason: ...)" on a field definition). Applications of directives the schema never
// declares are recorded all the same; the type system tracks what the document says, it does not
// police it.
type AppliedDirective struct {
	name string

	// Arguments written at the application site, in source order
	args []*AppliedArgument

	// Argument values including defaults declared by the directive definition for arguments the
	// application omitted
	argValues map[string]interface{}
}

// Name of the applied directive.
func (d *AppliedDirective) Name() string {
	return d.name
}

// Args returns the arguments written at the application site, in source order. Defaults supplied
// by the directive definition do not appear here.
func (d *AppliedDirective) Args() []*AppliedArgument {
	return d.args
}

// ArgValues returns the argument values for the application, with defaults declared by the
// directive definition filled in for omitted arguments.
func (d *AppliedDirective) ArgValues() map[string]interface{} {
	return d.argValues
}

// AppliedDirectives is the ordered record of directive applications on one schema element. A
// directive may legitimately appear more than once; every application is retained in source order.
type AppliedDirectives []*AppliedDirective

// IsApplied returns true when at least one application of the named directive is recorded.
func (directives AppliedDirectives) IsApplied(name string) bool {
	return directives.Get(name) != nil
}

// Get returns the first application of the named directive, or nil.
func (directives AppliedDirectives) Get(name string) *AppliedDirective {
	for _, directive := range directives {
		if directive.name == name {
			return directive
		}
	}
	return nil
}

// DirectiveArgs returns the argument values of the first application of the named directive
// (defaults filled in), or nil when the directive is not applied.
func (directives AppliedDirectives) DirectiveArgs(name string) map[string]interface{} {
	if directive := directives.Get(name); directive != nil {
		return directive.argValues
	}
	return nil
}

// Deprecation projects the applied-directive record into deprecation state: non-nil exactly when
// a deprecated directive is applied, with the reason taken from its arguments. There is no
// separate deprecation flag anywhere in the type system; this projection is the single source of
// truth.
func (directives AppliedDirectives) Deprecation() *Deprecation {
	directive := directives.Get("deprecated")
	if directive == nil {
		return nil
	}
	deprecation := &Deprecation{}
	if reason, ok := directive.argValues["reason"].(string); ok {
		deprecation.Reason = reason
	}
	return deprecation
}
