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

// DefaultDeprecationReason is the reason attached to a deprecated directive applied without an
// explicit one.
const DefaultDeprecationReason = "No longer supported"

// SkipDirective is used to conditionally exclude fields or fragments during execution.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec--skip
var SkipDirective = NewDirective(DirectiveConfig{
	Name:        "skip",
	Description: "Directs the executor to skip this field or fragment when the `if` argument is true.",
	Locations: []DirectiveLocation{
		DirectiveLocationField,
		DirectiveLocationFragmentSpread,
		DirectiveLocationInlineFragment,
	},
	Args: ArgumentList{
		{
			name:        "if",
			description: "Skipped when true.",
			ttype:       NewNonNullOfType(Boolean),
		},
	},
})

// IncludeDirective is used to conditionally include fields or fragments during execution.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec--include
var IncludeDirective = NewDirective(DirectiveConfig{
	Name:        "include",
	Description: "Directs the executor to include this field or fragment only when the `if` argument is true.",
	Locations: []DirectiveLocation{
		DirectiveLocationField,
		DirectiveLocationFragmentSpread,
		DirectiveLocationInlineFragment,
	},
	Args: ArgumentList{
		{
			name:        "if",
			description: "Included when true.",
			ttype:       NewNonNullOfType(Boolean),
		},
	},
})

// DeprecatedDirective marks schema elements as no longer supported.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec--deprecated
var DeprecatedDirective = NewDirective(DirectiveConfig{
	Name:        "deprecated",
	Description: "Marks an element of a GraphQL schema as no longer supported.",
	Locations: []DirectiveLocation{
		DirectiveLocationFieldDefinition,
		DirectiveLocationEnumValue,
	},
	Args: ArgumentList{
		{
			name: "reason",
			description: "Explains why this element was deprecated, usually also including a " +
				"suggestion for how to access supported similar data.",
			ttype:          String,
			hasDefault:     true,
			defaultCoerced: true,
			defaultValue:   DefaultDeprecationReason,
		},
	},
})

// StandardDirectives returns the directives every schema carries unless the document declares a
// directive of the same name, which then replaces the built-in.
func StandardDirectives() DirectiveList {
	return DirectiveList{
		SkipDirective,
		IncludeDirective,
		DeprecatedDirective,
	}
}
