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

// DirectiveLocation specifies where a directive may legally be applied.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Directives
type DirectiveLocation string

// Executable directive locations
const (
	DirectiveLocationQuery              DirectiveLocation = "QUERY"
	DirectiveLocationMutation           DirectiveLocation = "MUTATION"
	DirectiveLocationSubscription       DirectiveLocation = "SUBSCRIPTION"
	DirectiveLocationField              DirectiveLocation = "FIELD"
	DirectiveLocationFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"
)

// Type system directive locations
const (
	DirectiveLocationSchema               DirectiveLocation = "SCHEMA"
	DirectiveLocationScalar               DirectiveLocation = "SCALAR"
	DirectiveLocationObject               DirectiveLocation = "OBJECT"
	DirectiveLocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface            DirectiveLocation = "INTERFACE"
	DirectiveLocationUnion                DirectiveLocation = "UNION"
	DirectiveLocationEnum                 DirectiveLocation = "ENUM"
	DirectiveLocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	DirectiveLocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// Directive is the definition of a directive a schema understands: its name, the locations it may
// be applied at, and the arguments it accepts. Contrast with AppliedDirective, which is one use of
// a directive on a schema element.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Directives
type Directive struct {
	name        string
	description string
	locations   []DirectiveLocation

	structure thunk
	args      ArgumentList
}

// DirectiveConfig provides specification to define a directive.
type DirectiveConfig struct {
	Name        string
	Description string
	Locations   []DirectiveLocation
	Args        ArgumentList
}

// NewDirective defines a directive from the given config.
func NewDirective(config DirectiveConfig) *Directive {
	directive := &Directive{
		name:        config.Name,
		description: config.Description,
		locations:   config.Locations,
		args:        config.Args,
	}
	return directive
}

// Name of the directive.
func (d *Directive) Name() string {
	return d.name
}

// Description of the directive.
func (d *Directive) Description() string {
	return d.description
}

// Locations at which the directive may be applied.
func (d *Directive) Locations() []DirectiveLocation {
	return d.locations
}

// Args returns the arguments accepted by the directive, in definition order.
func (d *Directive) Args() ArgumentList {
	d.structure.resolve()
	return d.args
}

func (d *Directive) String() string {
	return "@" + d.name
}

// DirectiveList is an ordered collection of directive definitions.
type DirectiveList []*Directive

// Get finds the directive with the given name, or returns nil.
func (directives DirectiveList) Get(name string) *Directive {
	for _, directive := range directives {
		if directive.name == name {
			return directive
		}
	}
	return nil
}
