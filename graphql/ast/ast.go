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
	"math"
	"strconv"

	"github.com/mariam1019/graphql-js/graphql/token"
)

// Node represents a node in an AST from parsing a GraphQL document.
type Node interface {
	// Location indicates the position in the source at which the Node begins.
	Location() token.SourceLocation
}

// Name represents a name.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Names
type Name struct {
	Value string
	Loc   token.SourceLocation
}

var _ Node = Name{}

// Location implements Node.
func (node Name) Location() token.SourceLocation {
	return node.Loc
}

// IsUndefined returns true for the zero Name, used by optional name slots (e.g., an anonymous
// operation).
func (node Name) IsUndefined() bool {
	return len(node.Value) == 0 && !node.Loc.IsValid()
}

//===----------------------------------------------------------------------------------------====//
// 2.2 Document
//===----------------------------------------------------------------------------------------====//

// Document represents a complete GraphQL document: an ordered sequence of definitions, each
// either executable (operation, fragment) or representative of the type system.
//
// Reference: https://facebook.github.io/graphql/June2018/#Document
type Document struct {
	Definitions []Definition
}

// Definition represents a GraphQL Definition.
//
// Reference: https://facebook.github.io/graphql/June2018/#Definition
type Definition interface {
	Node

	// definitionNode is a special mark to ensure only definition nodes can be assigned to a
	// Definition.
	definitionNode()
}

//===----------------------------------------------------------------------------------------====//
// 2.3 Operations
//===----------------------------------------------------------------------------------------====//

// OperationType specifies the kind of operation the definition models.
//
// Reference: https://facebook.github.io/graphql/June2018/#OperationType
type OperationType string

// Enumeration of OperationType
const (
	OperationTypeQuery        OperationType = "query"
	OperationTypeMutation     OperationType = "mutation"
	OperationTypeSubscription OperationType = "subscription"
)

// OperationDefinition represents a GraphQL operation. It is an executable definition and never a
// type definition: a type-name lookup must not be satisfied by an operation, even one whose name
// collides with a type.
//
// Reference: https://facebook.github.io/graphql/June2018/#OperationDefinition
type OperationDefinition struct {
	Operation           OperationType
	Name                Name
	VariableDefinitions []*VariableDefinition
	Directives          Directives
	SelectionSet        SelectionSet
	Loc                 token.SourceLocation
}

var _ Definition = (*OperationDefinition)(nil)

// Location implements Node.
func (definition *OperationDefinition) Location() token.SourceLocation {
	return definition.Loc
}

func (*OperationDefinition) definitionNode() {}

// VariableDefinition defines a variable taken by an operation.
//
// Reference: https://facebook.github.io/graphql/June2018/#VariableDefinition
type VariableDefinition struct {
	Variable     Variable
	Type         Type
	DefaultValue Value
	Loc          token.SourceLocation
}

var _ Node = (*VariableDefinition)(nil)

// Location implements Node.
func (definition *VariableDefinition) Location() token.SourceLocation {
	return definition.Loc
}

//===----------------------------------------------------------------------------------------====//
// 2.4 Selection Sets
//===----------------------------------------------------------------------------------------====//

// SelectionSet specifies the information to be fetched.
//
// Reference: https://facebook.github.io/graphql/June2018/#SelectionSet
type SelectionSet []Selection

// Selection represents a field or a set of fields.
//
// Reference: https://facebook.github.io/graphql/June2018/#Selection
type Selection interface {
	Node

	// selectionNode is a special mark to ensure only selection nodes can be assigned to a
	// Selection.
	selectionNode()
}

var (
	_ Selection = (*Field)(nil)
	_ Selection = (*FragmentSpread)(nil)
	_ Selection = (*InlineFragment)(nil)
)

// Field describes a field selection.
//
// Reference: https://facebook.github.io/graphql/June2018/#Field
type Field struct {
	// Alias specifies a different key for the field value in the response object.
	Alias Name

	Name         Name
	Arguments    Arguments
	Directives   Directives
	SelectionSet SelectionSet
}

// ResponseKey returns the key under which the field value appears in the response object: the
// alias when one is given, the field name otherwise.
func (node *Field) ResponseKey() string {
	if !node.Alias.IsUndefined() {
		return node.Alias.Value
	}
	return node.Name.Value
}

// Location implements Node.
func (node *Field) Location() token.SourceLocation {
	if !node.Alias.IsUndefined() {
		return node.Alias.Loc
	}
	return node.Name.Loc
}

func (*Field) selectionNode() {}

//===----------------------------------------------------------------------------------------====//
// 2.6 Arguments
//===----------------------------------------------------------------------------------------====//

// Arguments specifies a list of Arguments.
type Arguments []*Argument

// Get finds the argument with the given name, or returns nil.
func (nodes Arguments) Get(name string) *Argument {
	for _, node := range nodes {
		if node.Name.Value == name {
			return node
		}
	}
	return nil
}

// An Argument is an argument given to a field or a directive.
//
// Reference: https://facebook.github.io/graphql/June2018/#Argument
type Argument struct {
	Name  Name
	Value Value
}

var _ Node = (*Argument)(nil)

// Location implements Node.
func (node *Argument) Location() token.SourceLocation {
	return node.Name.Loc
}

//===----------------------------------------------------------------------------------------====//
// 2.8 Fragments
//===----------------------------------------------------------------------------------------====//

// FragmentDefinition represents a reusable selection of fields. Like an operation, it is never a
// type definition.
//
// Reference: https://facebook.github.io/graphql/June2018/#FragmentDefinition
type FragmentDefinition struct {
	Name          Name
	TypeCondition NamedType
	Directives    Directives
	SelectionSet  SelectionSet
	Loc           token.SourceLocation
}

var _ Definition = (*FragmentDefinition)(nil)

// Location implements Node.
func (definition *FragmentDefinition) Location() token.SourceLocation {
	return definition.Loc
}

func (*FragmentDefinition) definitionNode() {}

// FragmentSpread adds the set of fields defined by a fragment to a selection set.
//
// Reference: https://facebook.github.io/graphql/June2018/#FragmentSpread
type FragmentSpread struct {
	Name       Name
	Directives Directives
	Loc        token.SourceLocation
}

// Location implements Node.
func (node *FragmentSpread) Location() token.SourceLocation {
	return node.Loc
}

func (*FragmentSpread) selectionNode() {}

// InlineFragment defines a fragment inline within a selection set.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Inline-Fragments
type InlineFragment struct {
	TypeCondition NamedType
	Directives    Directives
	SelectionSet  SelectionSet
	Loc           token.SourceLocation
}

// HasTypeCondition returns true if the inline fragment specifies a type condition.
func (node *InlineFragment) HasTypeCondition() bool {
	return !node.TypeCondition.Name.IsUndefined()
}

// Location implements Node.
func (node *InlineFragment) Location() token.SourceLocation {
	return node.Loc
}

func (*InlineFragment) selectionNode() {}

//===----------------------------------------------------------------------------------------====//
// 2.9 Input Values
//===----------------------------------------------------------------------------------------====//

// Value represents a node containing a literal input value.
//
// Reference: https://facebook.github.io/graphql/June2018/#Value
type Value interface {
	Node

	// Interface returns the plain Go representation of the literal, without reference to any
	// target type.
	Interface() interface{}

	// valueNode is a special mark to ensure only value nodes can be assigned to a Value.
	valueNode()
}

// The following implement the Value interface.
var (
	_ Value = Variable{}
	_ Value = IntValue{}
	_ Value = FloatValue{}
	_ Value = StringValue{}
	_ Value = BooleanValue{}
	_ Value = NullValue{}
	_ Value = EnumValue{}
	_ Value = ListValue{}
	_ Value = ObjectValue{}
)

// IntValue represents an integer literal.
//
// Reference: https://facebook.github.io/graphql/June2018/#IntValue
type IntValue struct {
	// Literal is the integer in its source spelling.
	Literal string
	Loc     token.SourceLocation
}

// Location implements Node.
func (value IntValue) Location() token.SourceLocation { return value.Loc }

// Interface implements Value.
func (value IntValue) Interface() interface{} {
	v, err := value.Int32Value()
	if err != nil {
		return int32(0)
	}
	return v
}

func (IntValue) valueNode() {}

// String returns the literal in its source spelling.
func (value IntValue) String() string { return value.Literal }

// Int32Value parses the literal into an int32.
func (value IntValue) Int32Value() (int32, error) {
	v, err := strconv.ParseInt(value.Literal, 10, 32)
	return int32(v), err
}

// FloatValue represents a float literal.
//
// Reference: https://facebook.github.io/graphql/June2018/#FloatValue
type FloatValue struct {
	// Literal is the float in its source spelling.
	Literal string
	Loc     token.SourceLocation
}

// Location implements Node.
func (value FloatValue) Location() token.SourceLocation { return value.Loc }

// Interface implements Value.
func (value FloatValue) Interface() interface{} {
	v, err := value.FloatValue()
	if err != nil {
		return math.NaN()
	}
	return v
}

func (FloatValue) valueNode() {}

// String returns the literal in its source spelling.
func (value FloatValue) String() string { return value.Literal }

// FloatValue parses the literal into a float64.
func (value FloatValue) FloatValue() (float64, error) {
	return strconv.ParseFloat(value.Literal, 64)
}

// StringValue represents a string literal.
//
// Reference: https://facebook.github.io/graphql/June2018/#StringValue
type StringValue struct {
	// Value is the string contents with quotes removed and escape sequences interpreted.
	Value string
	Loc   token.SourceLocation
}

// Location implements Node.
func (value StringValue) Location() token.SourceLocation { return value.Loc }

// Interface implements Value.
func (value StringValue) Interface() interface{} { return value.Value }

func (StringValue) valueNode() {}

// BooleanValue represents a boolean literal.
//
// Reference: https://facebook.github.io/graphql/June2018/#BooleanValue
type BooleanValue struct {
	Value bool
	Loc   token.SourceLocation
}

// Location implements Node.
func (value BooleanValue) Location() token.SourceLocation { return value.Loc }

// Interface implements Value.
func (value BooleanValue) Interface() interface{} { return value.Value }

func (BooleanValue) valueNode() {}

// NullValue represents the keyword "null".
//
// Reference: https://facebook.github.io/graphql/June2018/#NullValue
type NullValue struct {
	Loc token.SourceLocation
}

// Location implements Node.
func (value NullValue) Location() token.SourceLocation { return value.Loc }

// Interface implements Value.
func (value NullValue) Interface() interface{} { return nil }

func (NullValue) valueNode() {}

// EnumValue represents an enum value literal: a name that is neither "true", "false" nor "null".
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumValue
type EnumValue struct {
	Value string
	Loc   token.SourceLocation
}

// Location implements Node.
func (value EnumValue) Location() token.SourceLocation { return value.Loc }

// Interface implements Value.
func (value EnumValue) Interface() interface{} { return value.Value }

func (EnumValue) valueNode() {}

// ListValue represents a list literal.
//
// Reference: https://facebook.github.io/graphql/June2018/#ListValue
type ListValue struct {
	Values []Value
	Loc    token.SourceLocation
}

// Location implements Node.
func (value ListValue) Location() token.SourceLocation { return value.Loc }

// Interface implements Value.
func (value ListValue) Interface() interface{} {
	result := make([]interface{}, len(value.Values))
	for i := range value.Values {
		result[i] = value.Values[i].Interface()
	}
	return result
}

func (ListValue) valueNode() {}

// ObjectValue represents an input object literal.
//
// Reference: https://facebook.github.io/graphql/June2018/#ObjectValue
type ObjectValue struct {
	Fields []*ObjectField
	Loc    token.SourceLocation
}

// Location implements Node.
func (value ObjectValue) Location() token.SourceLocation { return value.Loc }

// Interface implements Value.
func (value ObjectValue) Interface() interface{} {
	values := make(map[string]interface{}, len(value.Fields))
	for _, field := range value.Fields {
		values[field.Name.Value] = field.Value.Interface()
	}
	return values
}

func (ObjectValue) valueNode() {}

// ObjectField assigns a value to a field within an object literal.
//
// Reference: https://facebook.github.io/graphql/June2018/#ObjectField
type ObjectField struct {
	Name  Name
	Value Value
}

// Variable refers to a variable by name.
//
// Reference: https://facebook.github.io/graphql/June2018/#Variable
type Variable struct {
	Name Name
	Loc  token.SourceLocation
}

// Location implements Node.
func (value Variable) Location() token.SourceLocation { return value.Loc }

// Interface implements Value.
func (value Variable) Interface() interface{} { return value.Name.Value }

func (Variable) valueNode() {}

//===----------------------------------------------------------------------------------------====//
// 2.11 Type References
//===----------------------------------------------------------------------------------------====//

// Type describes a reference to a type of data.
//
//	Type
//		NamedType
//		ListType
//		NonNullType
//
// Reference: https://facebook.github.io/graphql/June2018/#Type
type Type interface {
	Node

	// typeNode is a special mark to ensure only type nodes can be assigned to a Type.
	typeNode()
}

var (
	_ Type = NamedType{}
	_ Type = ListType{}
	_ Type = NonNullType{}
)

// NullableType is a Type that can be wrapped in a NonNullType: a NamedType or a ListType.
type NullableType interface {
	Type
	nullableTypeNode()
}

var (
	_ NullableType = NamedType{}
	_ NullableType = ListType{}
)

// NamedType refers to a type by name.
type NamedType struct {
	Name Name
}

// Location implements Node.
func (t NamedType) Location() token.SourceLocation { return t.Name.Loc }

func (NamedType) typeNode()         {}
func (NamedType) nullableTypeNode() {}

// ListType refers to a list type of an item type.
type ListType struct {
	ItemType Type
	Loc      token.SourceLocation
}

// Location implements Node.
func (t ListType) Location() token.SourceLocation { return t.Loc }

func (ListType) typeNode()         {}
func (ListType) nullableTypeNode() {}

// NonNullType refers to a type that does not accept a null value.
type NonNullType struct {
	Type NullableType
	Loc  token.SourceLocation
}

// Location implements Node.
func (t NonNullType) Location() token.SourceLocation { return t.Loc }

func (NonNullType) typeNode() {}

//===----------------------------------------------------------------------------------------====//
// 2.12 Directives
//===----------------------------------------------------------------------------------------====//

// Directives specifies a list of directive applications.
type Directives []*Directive

// Directive applies a GraphQL directive to the enclosing element.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Language.Directives
type Directive struct {
	Name      Name
	Arguments Arguments
	Loc       token.SourceLocation
}

var _ Node = (*Directive)(nil)

// Location implements Node.
func (node *Directive) Location() token.SourceLocation {
	return node.Loc
}
