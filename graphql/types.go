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
	"fmt"
	"sync"

	"github.com/mariam1019/graphql-js/graphql/ast"
)

// Type is implemented by every GraphQL type: the six named kinds (Scalar, Object, Interface,
// Union, Enum and InputObject) plus the two wrapping kinds (List and NonNull).
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Types
type Type interface {
	// String representation when printing the type
	fmt.Stringer

	// graphqlType is a special mark to indicate a Type. It makes sure that only a set of object can
	// be assigned to Type.
	graphqlType()
}

// TypeWithName is implemented by the definition of a named type.
type TypeWithName interface {
	// Name of the defining type
	Name() string
}

// TypeWithDescription is implemented by the types that provide description.
type TypeWithDescription interface {
	// Description provides documentation for the type. For a type built from an SDL document this is
	// the verbatim text of the comment block immediately preceding the definition, or empty when
	// there was none.
	Description() string
}

// TypeWithDirectives is implemented by schema elements that record the directives applied to their
// definition.
type TypeWithDirectives interface {
	// Directives lists the directive applications on the definition, in source order.
	Directives() AppliedDirectives
}

// WrappingType is a type that wraps another type. There are two wrapping types in GraphQL: List
// and NonNull.
//
// Reference: https://facebook.github.io/graphql/draft/#sec-Wrapping-Types
type WrappingType interface {
	Type

	// UnwrappedType returns the type that is wrapped by this type.
	UnwrappedType() Type

	graphqlWrappingType()
}

// LeafType can represent a leaf value where execution of the GraphQL hierarchical queries
// terminates. Only Scalar and Enum are valid leaf types.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
type LeafType interface {
	Type
	TypeWithName

	// CoerceResultValue coerces the given value to be returned as result of a field with the type.
	CoerceResultValue(value interface{}) (interface{}, error)

	graphqlLeafType()
}

// AbstractType indicates a GraphQL abstract type, namely Interface and Union.
type AbstractType interface {
	Type
	TypeWithName

	graphqlAbstractType()
}

//===----------------------------------------------------------------------------------------====//
// Thunk
//===----------------------------------------------------------------------------------------====//

// thunk memoizes a deferred structure computation. The wrapped function runs at most once;
// subsequent (and concurrent) resolutions observe the first outcome. BuildSchema forces every
// thunk before the schema is handed out, so accessors on a built schema never see an unresolved
// thunk.
type thunk struct {
	once sync.Once
	fn   func() error
	err  error
}

func (t *thunk) resolve() error {
	t.once.Do(func() {
		if t.fn != nil {
			fn := t.fn
			t.fn = nil
			t.err = fn()
		}
	})
	return t.err
}

//===----------------------------------------------------------------------------------------====//
// Scalar
//===----------------------------------------------------------------------------------------====//

// ScalarResultCoercer coerces a resolved value into a value representable in the Scalar type, per
// "Result Coercion" in https://facebook.github.io/graphql/June2018/#sec-Scalars.
type ScalarResultCoercer func(value interface{}) (interface{}, error)

// ScalarLiteralCoercer coerces a literal value appearing in a document (e.g., an argument default)
// into the Go value held by the type system, per "Input Coercion" in the scalar section of the
// specification.
type ScalarLiteralCoercer func(value ast.Value) (interface{}, error)

// Scalar Type Definition
//
// The leaf values of any request and input values to arguments are Scalars (or Enums) and are
// defined with a name and a series of functions used to parse input and to ensure validity.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
type Scalar struct {
	name           string
	description    string
	directives     AppliedDirectives
	resultCoercer  ScalarResultCoercer
	literalCoercer ScalarLiteralCoercer
}

// ScalarConfig provides specification to define a scalar type.
type ScalarConfig struct {
	Name        string
	Description string
	Directives  AppliedDirectives

	// ResultCoercer serializes a resolved value; when nil the value passes through unchanged.
	ResultCoercer ScalarResultCoercer

	// LiteralCoercer parses a literal from a document; when nil any literal is accepted and its
	// plain Go representation is taken (the behavior of a scalar declared in SDL without any
	// client-provided coercion).
	LiteralCoercer ScalarLiteralCoercer
}

// NewScalar defines a scalar type from the given config.
func NewScalar(config ScalarConfig) *Scalar {
	return &Scalar{
		name:           config.Name,
		description:    config.Description,
		directives:     config.Directives,
		resultCoercer:  config.ResultCoercer,
		literalCoercer: config.LiteralCoercer,
	}
}

// Name implements TypeWithName.
func (t *Scalar) Name() string {
	return t.name
}

// Description implements TypeWithDescription.
func (t *Scalar) Description() string {
	return t.description
}

// Directives implements TypeWithDirectives.
func (t *Scalar) Directives() AppliedDirectives {
	return t.directives
}

// CoerceResultValue implements LeafType.
func (t *Scalar) CoerceResultValue(value interface{}) (interface{}, error) {
	if t.resultCoercer == nil {
		return value, nil
	}
	return t.resultCoercer(value)
}

// CoerceLiteralValue coerces a literal in a document into a value of the scalar type.
func (t *Scalar) CoerceLiteralValue(value ast.Value) (interface{}, error) {
	if t.literalCoercer == nil {
		return value.Interface(), nil
	}
	return t.literalCoercer(value)
}

func (t *Scalar) String() string {
	return t.name
}

func (t *Scalar) graphqlType()     {}
func (t *Scalar) graphqlLeafType() {}

//===----------------------------------------------------------------------------------------====//
// Object
//===----------------------------------------------------------------------------------------====//

// Object Type Definition
//
// GraphQL queries are hierarchical and composed, describing a tree of information. While Scalar
// types describe the leaf values of these hierarchical queries, Objects describe the intermediate
// levels.
//
// Objects participate in cyclic references (a field of an Object may name the Object itself, or a
// type that in turn refers back). The compound structure is therefore computed through a
// memoize-once thunk installed by the schema builder; the builder forces the thunk before the
// schema escapes.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Objects
type Object struct {
	name        string
	description string
	directives  AppliedDirectives

	structure  thunk
	fields     FieldList
	interfaces []*Interface
}

// Name implements TypeWithName.
func (t *Object) Name() string {
	return t.name
}

// Description implements TypeWithDescription.
func (t *Object) Description() string {
	return t.description
}

// Directives implements TypeWithDirectives.
func (t *Object) Directives() AppliedDirectives {
	return t.directives
}

// Fields returns the fields in the object, in definition order.
func (t *Object) Fields() FieldList {
	t.structure.resolve()
	return t.fields
}

// Interfaces returns the interfaces implemented by the object type.
func (t *Object) Interfaces() []*Interface {
	t.structure.resolve()
	return t.interfaces
}

func (t *Object) String() string {
	return t.name
}

func (t *Object) graphqlType() {}

//===----------------------------------------------------------------------------------------====//
// Interface
//===----------------------------------------------------------------------------------------====//

// Interface Type Definition
//
// When a field can return one of a heterogeneous set of types, an Interface type is used to
// describe what types are possible and what fields are in common across all types.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Interfaces
type Interface struct {
	name        string
	description string
	directives  AppliedDirectives

	structure thunk
	fields    FieldList
}

// Name implements TypeWithName.
func (t *Interface) Name() string {
	return t.name
}

// Description implements TypeWithDescription.
func (t *Interface) Description() string {
	return t.description
}

// Directives implements TypeWithDirectives.
func (t *Interface) Directives() AppliedDirectives {
	return t.directives
}

// Fields returns the set of fields that need to be provided when implementing this interface.
func (t *Interface) Fields() FieldList {
	t.structure.resolve()
	return t.fields
}

func (t *Interface) String() string {
	return t.name
}

func (t *Interface) graphqlType()         {}
func (t *Interface) graphqlAbstractType() {}

//===----------------------------------------------------------------------------------------====//
// Union
//===----------------------------------------------------------------------------------------====//

// Union Type Definition
//
// When a field can return one of a heterogeneous set of types, a Union type is used to describe
// what types are possible as well as providing a function to determine which type is actually used
// when the field is resolved.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Unions
type Union struct {
	name        string
	description string
	directives  AppliedDirectives

	structure thunk
	types     []*Object
}

// Name implements TypeWithName.
func (t *Union) Name() string {
	return t.name
}

// Description implements TypeWithDescription.
func (t *Union) Description() string {
	return t.description
}

// Directives implements TypeWithDirectives.
func (t *Union) Directives() AppliedDirectives {
	return t.directives
}

// PossibleTypes returns the member object types of the union, in definition order.
func (t *Union) PossibleTypes() []*Object {
	t.structure.resolve()
	return t.types
}

func (t *Union) String() string {
	return t.name
}

func (t *Union) graphqlType()         {}
func (t *Union) graphqlAbstractType() {}

//===----------------------------------------------------------------------------------------====//
// Enum
//===----------------------------------------------------------------------------------------====//

// Enum Type Definition
//
// Some leaf values of requests and input values are Enums. GraphQL serializes Enum values as
// strings, however internally Enums can be represented by any kind of type, often integers.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Enums
type Enum struct {
	name        string
	description string
	directives  AppliedDirectives
	values      EnumValueList
}

// EnumValue provides definition for a value in enum.
type EnumValue struct {
	name        string
	description string
	directives  AppliedDirectives
	value       interface{}
}

// Name of the enum value.
func (v *EnumValue) Name() string {
	return v.name
}

// Description of the enum value.
func (v *EnumValue) Description() string {
	return v.description
}

// Directives lists the directive applications on the enum value definition.
func (v *EnumValue) Directives() AppliedDirectives {
	return v.directives
}

// Value returns the internal value to be used when the enum value is read from a document.
func (v *EnumValue) Value() interface{} {
	return v.value
}

// IsDeprecated returns true when a deprecated directive is applied on the enum value.
func (v *EnumValue) IsDeprecated() bool {
	return v.directives.Deprecation() != nil
}

// DeprecationReason returns the reason carried by the deprecated directive applied on the enum
// value, or empty when the value is not deprecated.
func (v *EnumValue) DeprecationReason() string {
	if deprecation := v.directives.Deprecation(); deprecation != nil {
		return deprecation.Reason
	}
	return ""
}

// EnumValueList is an ordered collection of enum values.
type EnumValueList []*EnumValue

// Get finds the value with the given name, or returns nil.
func (values EnumValueList) Get(name string) *EnumValue {
	for _, value := range values {
		if value.name == name {
			return value
		}
	}
	return nil
}

// Name implements TypeWithName.
func (t *Enum) Name() string {
	return t.name
}

// Description implements TypeWithDescription.
func (t *Enum) Description() string {
	return t.description
}

// Directives implements TypeWithDirectives.
func (t *Enum) Directives() AppliedDirectives {
	return t.directives
}

// Values returns the values in the enum, in definition order.
func (t *Enum) Values() EnumValueList {
	return t.values
}

// CoerceResultValue implements LeafType. The internal value must match one of the enum's values;
// the result is the value's name.
func (t *Enum) CoerceResultValue(value interface{}) (interface{}, error) {
	for _, enumValue := range t.values {
		if enumValue.value == value {
			return enumValue.name, nil
		}
	}
	return nil, NewError(fmt.Sprintf(`Enum "%s" cannot represent value: %v`, t.name, value))
}

func (t *Enum) String() string {
	return t.name
}

func (t *Enum) graphqlType()     {}
func (t *Enum) graphqlLeafType() {}

//===----------------------------------------------------------------------------------------====//
// InputObject
//===----------------------------------------------------------------------------------------====//

// InputObject Type Definition
//
// An input object defines a structured collection of fields which may be supplied as an input
// value, such as a field argument default.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Input-Objects
type InputObject struct {
	name        string
	description string
	directives  AppliedDirectives

	structure thunk
	fields    InputFieldList
}

// Name implements TypeWithName.
func (t *InputObject) Name() string {
	return t.name
}

// Description implements TypeWithDescription.
func (t *InputObject) Description() string {
	return t.description
}

// Directives implements TypeWithDirectives.
func (t *InputObject) Directives() AppliedDirectives {
	return t.directives
}

// Fields returns the fields in the input object, in definition order.
func (t *InputObject) Fields() InputFieldList {
	t.structure.resolve()
	return t.fields
}

func (t *InputObject) String() string {
	return t.name
}

func (t *InputObject) graphqlType() {}

//===----------------------------------------------------------------------------------------====//
// List
//===----------------------------------------------------------------------------------------====//

// List wraps another type to indicate a collection of that type.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.List
type List struct {
	elementType Type
}

// NewListOfType creates a List wrapping the given type.
func NewListOfType(elementType Type) *List {
	return &List{elementType: elementType}
}

// ElementType returns the type of the elements in the list.
func (t *List) ElementType() Type {
	return t.elementType
}

// UnwrappedType implements WrappingType.
func (t *List) UnwrappedType() Type {
	return t.elementType
}

func (t *List) String() string {
	return "[" + t.elementType.String() + "]"
}

func (t *List) graphqlType()         {}
func (t *List) graphqlWrappingType() {}

//===----------------------------------------------------------------------------------------====//
// NonNull
//===----------------------------------------------------------------------------------------====//

// NonNull wraps another type to disallow the null value.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Non-Null
type NonNull struct {
	innerType Type
}

// NewNonNullOfType creates a NonNull wrapping the given type. The wrapped type must itself be
// nullable; the parser guarantees this for types read from a document.
func NewNonNullOfType(innerType Type) *NonNull {
	return &NonNull{innerType: innerType}
}

// InnerType returns the type wrapped by the NonNull.
func (t *NonNull) InnerType() Type {
	return t.innerType
}

// UnwrappedType implements WrappingType.
func (t *NonNull) UnwrappedType() Type {
	return t.innerType
}

func (t *NonNull) String() string {
	return t.innerType.String() + "!"
}

func (t *NonNull) graphqlType()         {}
func (t *NonNull) graphqlWrappingType() {}

//===----------------------------------------------------------------------------------------====//
// Field, Argument and InputField
//===----------------------------------------------------------------------------------------====//

// Field defines a field in an Object or Interface type.
type Field struct {
	name        string
	description string
	ttype       Type
	args        ArgumentList
	directives  AppliedDirectives
}

// Name of the field.
func (f *Field) Name() string {
	return f.name
}

// Description of the field.
func (f *Field) Description() string {
	return f.description
}

// Type of the value yielded by the field.
func (f *Field) Type() Type {
	return f.ttype
}

// Args returns the arguments accepted by the field, in definition order.
func (f *Field) Args() ArgumentList {
	return f.args
}

// Directives lists the directive applications on the field definition.
func (f *Field) Directives() AppliedDirectives {
	return f.directives
}

// IsDeprecated returns true when a deprecated directive is applied on the field.
func (f *Field) IsDeprecated() bool {
	return f.directives.Deprecation() != nil
}

// DeprecationReason returns the reason carried by the deprecated directive applied on the field,
// or empty when the field is not deprecated.
func (f *Field) DeprecationReason() string {
	if deprecation := f.directives.Deprecation(); deprecation != nil {
		return deprecation.Reason
	}
	return ""
}

// FieldList is an ordered collection of fields.
type FieldList []*Field

// Get finds the field with the given name, or returns nil.
func (fields FieldList) Get(name string) *Field {
	for _, field := range fields {
		if field.name == name {
			return field
		}
	}
	return nil
}

// Argument defines an argument accepted by a field or a directive.
type Argument struct {
	name        string
	description string
	ttype       Type
	directives  AppliedDirectives

	hasDefault          bool
	defaultCoerced      bool
	defaultValue        interface{}
	defaultValueLiteral ast.Value
}

// coercedDefault returns the coerced default value, coercing the declared literal on first use.
// Coercion of an input object literal reaches the defaults of the omitted fields through this, so
// defaults can be coerced in any order.
func (a *Argument) coercedDefault() (interface{}, error) {
	if !a.defaultCoerced {
		if a.defaultValueLiteral != nil {
			value, err := CoerceLiteralValue(a.ttype, a.defaultValueLiteral)
			if err != nil {
				return nil, err
			}
			a.defaultValue = value
		}
		a.defaultCoerced = true
	}
	return a.defaultValue, nil
}

// Name of the argument.
func (a *Argument) Name() string {
	return a.name
}

// Description of the argument.
func (a *Argument) Description() string {
	return a.description
}

// Type of the value expected by the argument.
func (a *Argument) Type() Type {
	return a.ttype
}

// Directives lists the directive applications on the argument definition.
func (a *Argument) Directives() AppliedDirectives {
	return a.directives
}

// HasDefaultValue returns true when a default value was declared for the argument.
func (a *Argument) HasDefaultValue() bool {
	return a.hasDefault
}

// DefaultValue returns the declared default, coerced to the argument type. It returns nil both
// when no default was declared and when the default is an explicit null; use HasDefaultValue to
// tell the two apart.
func (a *Argument) DefaultValue() interface{} {
	return a.defaultValue
}

// DefaultValueLiteral returns the declared default as it appeared in the document, or nil when no
// default was declared.
func (a *Argument) DefaultValueLiteral() ast.Value {
	return a.defaultValueLiteral
}

// ArgumentList is an ordered collection of arguments.
type ArgumentList []*Argument

// Get finds the argument with the given name, or returns nil.
func (args ArgumentList) Get(name string) *Argument {
	for _, arg := range args {
		if arg.name == name {
			return arg
		}
	}
	return nil
}

// InputField defines a field in an InputObject type.
type InputField struct {
	name        string
	description string
	ttype       Type
	directives  AppliedDirectives

	hasDefault          bool
	defaultCoerced      bool
	defaultValue        interface{}
	defaultValueLiteral ast.Value
}

// coercedDefault returns the coerced default value, coercing the declared literal on first use.
func (f *InputField) coercedDefault() (interface{}, error) {
	if !f.defaultCoerced {
		if f.defaultValueLiteral != nil {
			value, err := CoerceLiteralValue(f.ttype, f.defaultValueLiteral)
			if err != nil {
				return nil, err
			}
			f.defaultValue = value
		}
		f.defaultCoerced = true
	}
	return f.defaultValue, nil
}

// Name of the input field.
func (f *InputField) Name() string {
	return f.name
}

// Description of the input field.
func (f *InputField) Description() string {
	return f.description
}

// Type of the value expected by the input field.
func (f *InputField) Type() Type {
	return f.ttype
}

// Directives lists the directive applications on the input field definition.
func (f *InputField) Directives() AppliedDirectives {
	return f.directives
}

// HasDefaultValue returns true when a default value was declared for the input field.
func (f *InputField) HasDefaultValue() bool {
	return f.hasDefault
}

// DefaultValue returns the declared default, coerced to the field type. It returns nil both when
// no default was declared and when the default is an explicit null.
func (f *InputField) DefaultValue() interface{} {
	return f.defaultValue
}

// DefaultValueLiteral returns the declared default as it appeared in the document, or nil when no
// default was declared.
func (f *InputField) DefaultValueLiteral() ast.Value {
	return f.defaultValueLiteral
}

// InputFieldList is an ordered collection of input fields.
type InputFieldList []*InputField

// Get finds the input field with the given name, or returns nil.
func (fields InputFieldList) Get(name string) *InputField {
	for _, field := range fields {
		if field.name == name {
			return field
		}
	}
	return nil
}

//===----------------------------------------------------------------------------------------====//
// Type predicates and unwrapping helpers
//===----------------------------------------------------------------------------------------====//

// NamedTypeOf strips all wrapping types and returns the underlying named type.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Non-Null
func NamedTypeOf(t Type) Type {
	for {
		wrapping, ok := t.(WrappingType)
		if !ok {
			return t
		}
		t = wrapping.UnwrappedType()
	}
}

// NullableTypeOf strips an outermost NonNull, if any.
func NullableTypeOf(t Type) Type {
	if nonNull, ok := t.(*NonNull); ok {
		return nonNull.InnerType()
	}
	return t
}

// IsLeafType returns true for Scalar and Enum types.
func IsLeafType(t Type) bool {
	_, ok := t.(LeafType)
	return ok
}

// IsAbstractType returns true for Interface and Union types.
func IsAbstractType(t Type) bool {
	_, ok := t.(AbstractType)
	return ok
}

// IsCompositeType returns true for Object, Interface and Union types.
func IsCompositeType(t Type) bool {
	switch t.(type) {
	case *Object, *Interface, *Union:
		return true
	}
	return false
}

// IsInputType returns true if the type can be used as an input to an argument or an input field.
//
// Reference: https://facebook.github.io/graphql/June2018/#IsInputType()
func IsInputType(t Type) bool {
	switch NamedTypeOf(t).(type) {
	case *Scalar, *Enum, *InputObject:
		return true
	}
	return false
}

// IsOutputType returns true if the type can be used as the type of a field result.
//
// Reference: https://facebook.github.io/graphql/June2018/#IsOutputType()
func IsOutputType(t Type) bool {
	switch NamedTypeOf(t).(type) {
	case *Scalar, *Object, *Interface, *Union, *Enum:
		return true
	}
	return false
}
