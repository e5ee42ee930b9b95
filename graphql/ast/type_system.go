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

package ast

import (
	"github.com/mariam1019/graphql-js/graphql/token"
)

// This file contains the AST nodes for the type system definition language (SDL).
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System

// TypeDefinition is implemented by the definition nodes that introduce a named type: scalar,
// object, interface, union, enum and input object definitions. Schema definitions, directive
// definitions, operations and fragments are NOT type definitions and must never satisfy a
// type-name lookup.
type TypeDefinition interface {
	Definition

	// TypeName returns the name the definition introduces.
	TypeName() string

	// TypeDescription returns the description attached to the definition, or an empty string.
	TypeDescription() string

	// TypeDirectives returns the directives applied to the definition.
	TypeDirectives() Directives

	// typeDefinitionNode is a special mark to ensure only type definition nodes can be assigned to
	// a TypeDefinition.
	typeDefinitionNode()
}

var (
	_ TypeDefinition = (*ScalarTypeDefinition)(nil)
	_ TypeDefinition = (*ObjectTypeDefinition)(nil)
	_ TypeDefinition = (*InterfaceTypeDefinition)(nil)
	_ TypeDefinition = (*UnionTypeDefinition)(nil)
	_ TypeDefinition = (*EnumTypeDefinition)(nil)
	_ TypeDefinition = (*InputObjectTypeDefinition)(nil)
)

//===----------------------------------------------------------------------------------------====//
// 3.2 Schema Definition
//===----------------------------------------------------------------------------------------====//

// SchemaDefinition declares the root operation types of the schema.
//
// Reference: https://facebook.github.io/graphql/June2018/#SchemaDefinition
type SchemaDefinition struct {
	Directives     Directives
	OperationTypes []*OperationTypeDefinition
	Loc            token.SourceLocation
}

var _ Definition = (*SchemaDefinition)(nil)

// Location implements Node.
func (definition *SchemaDefinition) Location() token.SourceLocation {
	return definition.Loc
}

func (*SchemaDefinition) definitionNode() {}

// OperationTypeDefinition binds an operation kind to the named type serving as its root.
//
// Reference: https://facebook.github.io/graphql/June2018/#OperationTypeDefinition
type OperationTypeDefinition struct {
	Operation OperationType
	Type      NamedType
	Loc       token.SourceLocation
}

var _ Node = (*OperationTypeDefinition)(nil)

// Location implements Node.
func (definition *OperationTypeDefinition) Location() token.SourceLocation {
	return definition.Loc
}

//===----------------------------------------------------------------------------------------====//
// 3.4 Scalars
//===----------------------------------------------------------------------------------------====//

// ScalarTypeDefinition declares a custom scalar type.
//
// Reference: https://facebook.github.io/graphql/June2018/#ScalarTypeDefinition
type ScalarTypeDefinition struct {
	Description string
	Name        Name
	Directives  Directives
	Loc         token.SourceLocation
}

// Location implements Node.
func (definition *ScalarTypeDefinition) Location() token.SourceLocation {
	return definition.Loc
}

func (*ScalarTypeDefinition) definitionNode()     {}
func (*ScalarTypeDefinition) typeDefinitionNode() {}

// TypeName implements TypeDefinition.
func (definition *ScalarTypeDefinition) TypeName() string { return definition.Name.Value }

// TypeDescription implements TypeDefinition.
func (definition *ScalarTypeDefinition) TypeDescription() string { return definition.Description }

// TypeDirectives implements TypeDefinition.
func (definition *ScalarTypeDefinition) TypeDirectives() Directives { return definition.Directives }

//===----------------------------------------------------------------------------------------====//
// 3.6 Objects
//===----------------------------------------------------------------------------------------====//

// ObjectTypeDefinition declares an object type.
//
// Reference: https://facebook.github.io/graphql/June2018/#ObjectTypeDefinition
type ObjectTypeDefinition struct {
	Description string
	Name        Name
	Interfaces  []NamedType
	Directives  Directives
	Fields      []*FieldDefinition
	Loc         token.SourceLocation
}

// Location implements Node.
func (definition *ObjectTypeDefinition) Location() token.SourceLocation {
	return definition.Loc
}

func (*ObjectTypeDefinition) definitionNode()     {}
func (*ObjectTypeDefinition) typeDefinitionNode() {}

// TypeName implements TypeDefinition.
func (definition *ObjectTypeDefinition) TypeName() string { return definition.Name.Value }

// TypeDescription implements TypeDefinition.
func (definition *ObjectTypeDefinition) TypeDescription() string { return definition.Description }

// TypeDirectives implements TypeDefinition.
func (definition *ObjectTypeDefinition) TypeDirectives() Directives { return definition.Directives }

// FieldDefinition declares a field on an object or interface type.
//
// Reference: https://facebook.github.io/graphql/June2018/#FieldDefinition
type FieldDefinition struct {
	Description string
	Name        Name
	Arguments   []*InputValueDefinition
	Type        Type
	Directives  Directives
}

var _ Node = (*FieldDefinition)(nil)

// Location implements Node.
func (definition *FieldDefinition) Location() token.SourceLocation {
	return definition.Name.Loc
}

// InputValueDefinition declares an argument of a field or directive, or a field of an input
// object type.
//
// Reference: https://facebook.github.io/graphql/June2018/#InputValueDefinition
type InputValueDefinition struct {
	Description  string
	Name         Name
	Type         Type
	DefaultValue Value
	Directives   Directives
}

var _ Node = (*InputValueDefinition)(nil)

// Location implements Node.
func (definition *InputValueDefinition) Location() token.SourceLocation {
	return definition.Name.Loc
}

//===----------------------------------------------------------------------------------------====//
// 3.7 Interfaces
//===----------------------------------------------------------------------------------------====//

// InterfaceTypeDefinition declares an interface type.
//
// Reference: https://facebook.github.io/graphql/June2018/#InterfaceTypeDefinition
type InterfaceTypeDefinition struct {
	Description string
	Name        Name
	Directives  Directives
	Fields      []*FieldDefinition
	Loc         token.SourceLocation
}

// Location implements Node.
func (definition *InterfaceTypeDefinition) Location() token.SourceLocation {
	return definition.Loc
}

func (*InterfaceTypeDefinition) definitionNode()     {}
func (*InterfaceTypeDefinition) typeDefinitionNode() {}

// TypeName implements TypeDefinition.
func (definition *InterfaceTypeDefinition) TypeName() string { return definition.Name.Value }

// TypeDescription implements TypeDefinition.
func (definition *InterfaceTypeDefinition) TypeDescription() string { return definition.Description }

// TypeDirectives implements TypeDefinition.
func (definition *InterfaceTypeDefinition) TypeDirectives() Directives {
	return definition.Directives
}

//===----------------------------------------------------------------------------------------====//
// 3.8 Unions
//===----------------------------------------------------------------------------------------====//

// UnionTypeDefinition declares a union type.
//
// Reference: https://facebook.github.io/graphql/June2018/#UnionTypeDefinition
type UnionTypeDefinition struct {
	Description string
	Name        Name
	Directives  Directives
	Types       []NamedType
	Loc         token.SourceLocation
}

// Location implements Node.
func (definition *UnionTypeDefinition) Location() token.SourceLocation {
	return definition.Loc
}

func (*UnionTypeDefinition) definitionNode()     {}
func (*UnionTypeDefinition) typeDefinitionNode() {}

// TypeName implements TypeDefinition.
func (definition *UnionTypeDefinition) TypeName() string { return definition.Name.Value }

// TypeDescription implements TypeDefinition.
func (definition *UnionTypeDefinition) TypeDescription() string { return definition.Description }

// TypeDirectives implements TypeDefinition.
func (definition *UnionTypeDefinition) TypeDirectives() Directives { return definition.Directives }

//===----------------------------------------------------------------------------------------====//
// 3.9 Enums
//===----------------------------------------------------------------------------------------====//

// EnumTypeDefinition declares an enum type with a fixed ordered list of values.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumTypeDefinition
type EnumTypeDefinition struct {
	Description string
	Name        Name
	Directives  Directives
	Values      []*EnumValueDefinition
	Loc         token.SourceLocation
}

// Location implements Node.
func (definition *EnumTypeDefinition) Location() token.SourceLocation {
	return definition.Loc
}

func (*EnumTypeDefinition) definitionNode()     {}
func (*EnumTypeDefinition) typeDefinitionNode() {}

// TypeName implements TypeDefinition.
func (definition *EnumTypeDefinition) TypeName() string { return definition.Name.Value }

// TypeDescription implements TypeDefinition.
func (definition *EnumTypeDefinition) TypeDescription() string { return definition.Description }

// TypeDirectives implements TypeDefinition.
func (definition *EnumTypeDefinition) TypeDirectives() Directives { return definition.Directives }

// EnumValueDefinition declares one value of an enum type.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumValueDefinition
type EnumValueDefinition struct {
	Description string
	Name        Name
	Directives  Directives
}

var _ Node = (*EnumValueDefinition)(nil)

// Location implements Node.
func (definition *EnumValueDefinition) Location() token.SourceLocation {
	return definition.Name.Loc
}

//===----------------------------------------------------------------------------------------====//
// 3.10 Input Objects
//===----------------------------------------------------------------------------------------====//

// InputObjectTypeDefinition declares an input object type.
//
// Reference: https://facebook.github.io/graphql/June2018/#InputObjectTypeDefinition
type InputObjectTypeDefinition struct {
	Description string
	Name        Name
	Directives  Directives
	Fields      []*InputValueDefinition
	Loc         token.SourceLocation
}

// Location implements Node.
func (definition *InputObjectTypeDefinition) Location() token.SourceLocation {
	return definition.Loc
}

func (*InputObjectTypeDefinition) definitionNode()     {}
func (*InputObjectTypeDefinition) typeDefinitionNode() {}

// TypeName implements TypeDefinition.
func (definition *InputObjectTypeDefinition) TypeName() string { return definition.Name.Value }

// TypeDescription implements TypeDefinition.
func (definition *InputObjectTypeDefinition) TypeDescription() string {
	return definition.Description
}

// TypeDirectives implements TypeDefinition.
func (definition *InputObjectTypeDefinition) TypeDirectives() Directives {
	return definition.Directives
}

//===----------------------------------------------------------------------------------------====//
// 3.13 Directive Definitions
//===----------------------------------------------------------------------------------------====//

// DirectiveDefinition declares a directive, its argument signature and its valid locations.
//
// Reference: https://facebook.github.io/graphql/June2018/#DirectiveDefinition
type DirectiveDefinition struct {
	Description string
	Name        Name
	Arguments   []*InputValueDefinition
	Locations   []Name
	Loc         token.SourceLocation
}

var _ Definition = (*DirectiveDefinition)(nil)

// Location implements Node.
func (definition *DirectiveDefinition) Location() token.SourceLocation {
	return definition.Loc
}

func (*DirectiveDefinition) definitionNode() {}
