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

	"github.com/mariam1019/graphql-js/graphql/ast"
)

// BuildSchema constructs an immutable, queryable type-system object graph from the type system
// definitions in the given document. Executable definitions (operations and fragments) in the
// document are ignored.
//
// The construction is fail-fast: the first structural violation, unresolvable type reference or
// invalid default value aborts the build with an error, never a partially built schema.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System
func BuildSchema(document ast.Document) (*Schema, error) {
	builder := newSchemaBuilder(document)
	return builder.build()
}

// MustBuildSchema is a convenience function equivalent to BuildSchema but panics on failure
// instead of returning an error.
func MustBuildSchema(document ast.Document) *Schema {
	schema, err := BuildSchema(document)
	if err != nil {
		panic(err)
	}
	return schema
}

// schemaBuilder carries the state of one BuildSchema run.
type schemaBuilder struct {
	document ast.Document

	// Name to AST definition index over the document's type definitions. Built in one pass; when a
	// name is defined more than once the last definition wins.
	typeDefs map[string]ast.TypeDefinition

	// Document order of type definitions (first appearance for a duplicated name)
	typeOrder []string

	// Directive definitions in the document, in order
	directiveDefs []*ast.DirectiveDefinition

	// Memoized name to type instance map seeded with the built-in scalars. Every shell enters the
	// map before its structure is computed, so self-referential and mutually-recursive definitions
	// resolve to the placeholder instead of recursing.
	types map[string]Type

	// Merged directive registry
	directives DirectiveList

	// Names of document-declared directives, in order
	declaredDirectives []string

	// Deferred structure computations to force before the schema escapes
	pending []*thunk
}

func newSchemaBuilder(document ast.Document) *schemaBuilder {
	builder := &schemaBuilder{
		document: document,
		typeDefs: make(map[string]ast.TypeDefinition),
		types:    make(map[string]Type),
	}
	for _, scalar := range StandardTypes() {
		builder.types[scalar.Name()] = scalar
	}
	return builder
}

func (builder *schemaBuilder) build() (*Schema, error) {
	builder.indexDefinitions()

	schemaDef, err := schemaDefinitionIn(builder.document)
	if err != nil {
		return nil, err
	}

	roots := map[ast.OperationType]string{}
	if schemaDef != nil {
		roots, err = rootTypeNames(schemaDef)
		if err != nil {
			return nil, err
		}
	}

	if err := validateQueryRoot(schemaDef, roots, builder.typeDefs); err != nil {
		return nil, err
	}

	// Every declared root must name a type defined in the document; the built-in scalars do not
	// count here.
	for _, operation := range []ast.OperationType{
		ast.OperationTypeQuery,
		ast.OperationTypeMutation,
		ast.OperationTypeSubscription,
	} {
		name, ok := roots[operation]
		if !ok {
			continue
		}
		if _, defined := builder.typeDefs[name]; !defined {
			return nil, NewValidationError(
				fmt.Sprintf(`Specified %s type "%s" not found in document.`, operation, name))
		}
	}

	builder.buildDirectives()

	// Resolve a shell for every type definition in the document. Structures stay deferred.
	for _, name := range builder.typeOrder {
		if _, err := builder.resolveNamed(name); err != nil {
			return nil, err
		}
	}

	// Force every deferred structure so unresolvable references surface now and the schema leaves
	// the builder deeply immutable.
	for i := 0; i < len(builder.pending); i++ {
		if err := builder.pending[i].resolve(); err != nil {
			return nil, err
		}
	}

	if err := builder.coerceDefaultValues(); err != nil {
		return nil, err
	}
	if err := builder.finalizeAppliedDirectives(); err != nil {
		return nil, err
	}

	schema := &Schema{
		typeMap:    builder.types,
		typeOrder:  builder.typeOrder,
		directives: builder.directives,

		declaredDirectives: builder.declaredDirectives,
	}

	if schemaDef != nil {
		schema.schemaDef = schemaDef
		schema.schemaDirectives = builder.buildAppliedDirectives(schemaDef.Directives)
		if err := builder.finalizeApplied(schema.schemaDirectives); err != nil {
			return nil, err
		}
	}

	if schema.query, err = builder.rootObject(roots, ast.OperationTypeQuery, schemaDef == nil); err != nil {
		return nil, err
	}
	if schema.mutation, err = builder.rootObject(roots, ast.OperationTypeMutation, false); err != nil {
		return nil, err
	}
	if schema.subscription, err = builder.rootObject(roots, ast.OperationTypeSubscription, false); err != nil {
		return nil, err
	}

	schema.possibleTypes = builder.computePossibleTypes()

	return schema, nil
}

// indexDefinitions makes the single pass over the document that populates the type definition
// index and collects directive definitions.
func (builder *schemaBuilder) indexDefinitions() {
	for _, definition := range builder.document.Definitions {
		switch def := definition.(type) {
		case ast.TypeDefinition:
			name := def.TypeName()
			if _, seen := builder.typeDefs[name]; !seen {
				builder.typeOrder = append(builder.typeOrder, name)
			}
			builder.typeDefs[name] = def

		case *ast.DirectiveDefinition:
			builder.directiveDefs = append(builder.directiveDefs, def)
		}
	}
}

// rootObject resolves one root operation type. queryFallback enables the Query-by-name convention
// used when the document has no schema definition.
func (builder *schemaBuilder) rootObject(roots map[ast.OperationType]string, operation ast.OperationType, queryFallback bool) (*Object, error) {
	name, ok := roots[operation]
	if !ok {
		if !queryFallback {
			return nil, nil
		}
		name = "Query"
	}

	t, err := builder.resolveNamed(name)
	if err != nil {
		return nil, err
	}
	object, ok := t.(*Object)
	if !ok {
		return nil, NewValidationError(
			fmt.Sprintf(`%s root type must be Object type, it cannot be %s.`, rootTitle(operation), t))
	}
	return object, nil
}

func rootTitle(operation ast.OperationType) string {
	switch operation {
	case ast.OperationTypeQuery:
		return "Query"
	case ast.OperationTypeMutation:
		return "Mutation"
	default:
		return "Subscription"
	}
}

//===----------------------------------------------------------------------------------------====//
// Directive registry
//===----------------------------------------------------------------------------------------====//

// buildDirectives merges the built-in directives with the document's declarations. A declaration
// reusing a built-in name replaces the built-in in place; the replacement is a distinct definition
// carrying whatever the document said.
func (builder *schemaBuilder) buildDirectives() {
	builder.directives = StandardDirectives()

	for _, def := range builder.directiveDefs {
		def := def
		directive := &Directive{
			name:        def.Name.Value,
			description: def.Description,
			locations:   directiveLocations(def.Locations),
		}
		directive.structure.fn = func() error {
			args, err := builder.buildArguments(def.Arguments)
			if err != nil {
				return err
			}
			directive.args = args
			return nil
		}
		builder.pending = append(builder.pending, &directive.structure)

		if existing := builder.directives.Get(directive.name); existing != nil {
			for i, d := range builder.directives {
				if d.name == directive.name {
					builder.directives[i] = directive
					break
				}
			}
		} else {
			builder.directives = append(builder.directives, directive)
		}
		builder.declaredDirectives = append(builder.declaredDirectives, directive.name)
	}
}

func directiveLocations(names []ast.Name) []DirectiveLocation {
	locations := make([]DirectiveLocation, len(names))
	for i, name := range names {
		locations[i] = DirectiveLocation(name.Value)
	}
	return locations
}

// buildAppliedDirectives records directive applications as written, with each argument's plain
// literal value. Applications are kept even when the schema declares no directive of that name;
// for declared directives a later pass coerces the supplied arguments against the declared
// signature and fills in defaults for omitted ones, once every default value has been coerced.
func (builder *schemaBuilder) buildAppliedDirectives(directives ast.Directives) AppliedDirectives {
	if len(directives) == 0 {
		return nil
	}

	applied := make(AppliedDirectives, len(directives))
	for i, directive := range directives {
		args := make([]*AppliedArgument, len(directive.Arguments))
		argValues := make(map[string]interface{}, len(directive.Arguments))
		for j, argument := range directive.Arguments {
			value := argument.Value.Interface()
			args[j] = &AppliedArgument{
				Name:    argument.Name.Value,
				Value:   value,
				Literal: argument.Value,
			}
			argValues[argument.Name.Value] = value
		}
		applied[i] = &AppliedDirective{
			name:      directive.Name.Value,
			args:      args,
			argValues: argValues,
		}
	}
	return applied
}

//===----------------------------------------------------------------------------------------====//
// Lazy type resolution
//===----------------------------------------------------------------------------------------====//

// resolveType resolves an AST type reference into a type instance, wrapping as needed.
func (builder *schemaBuilder) resolveType(astType ast.Type) (Type, error) {
	switch astType := astType.(type) {
	case ast.NamedType:
		return builder.resolveNamed(astType.Name.Value)

	case ast.ListType:
		elementType, err := builder.resolveType(astType.ItemType)
		if err != nil {
			return nil, err
		}
		return NewListOfType(elementType), nil

	case ast.NonNullType:
		innerType, err := builder.resolveType(astType.Type)
		if err != nil {
			return nil, err
		}
		return NewNonNullOfType(innerType), nil
	}

	return nil, NewValidationError(fmt.Sprintf("Unexpected type reference: %v.", astType))
}

// resolveNamed returns the one instance representing the named type, constructing a shell on
// first resolution. The shell enters the memo before any of its structure is computed; every
// later reference to the name, including references from within the type's own structure, gets
// the same instance back.
func (builder *schemaBuilder) resolveNamed(name string) (Type, error) {
	if t, ok := builder.types[name]; ok {
		return t, nil
	}

	def, ok := builder.typeDefs[name]
	if !ok {
		return nil, NewValidationError(fmt.Sprintf(`Type "%s" not found in document.`, name))
	}

	switch def := def.(type) {
	case *ast.ScalarTypeDefinition:
		t := NewScalar(ScalarConfig{
			Name:        def.Name.Value,
			Description: def.Description,
			Directives:  builder.buildAppliedDirectives(def.Directives),
		})
		builder.types[name] = t
		return t, nil

	case *ast.ObjectTypeDefinition:
		t := &Object{
			name:        def.Name.Value,
			description: def.Description,
			directives:  builder.buildAppliedDirectives(def.Directives),
		}
		builder.types[name] = t
		t.structure.fn = func() error {
			fields, err := builder.buildFields(def.Fields)
			if err != nil {
				return err
			}
			interfaces, err := builder.buildInterfaces(def)
			if err != nil {
				return err
			}
			t.fields, t.interfaces = fields, interfaces
			return nil
		}
		builder.pending = append(builder.pending, &t.structure)
		return t, nil

	case *ast.InterfaceTypeDefinition:
		t := &Interface{
			name:        def.Name.Value,
			description: def.Description,
			directives:  builder.buildAppliedDirectives(def.Directives),
		}
		builder.types[name] = t
		t.structure.fn = func() error {
			fields, err := builder.buildFields(def.Fields)
			if err != nil {
				return err
			}
			t.fields = fields
			return nil
		}
		builder.pending = append(builder.pending, &t.structure)
		return t, nil

	case *ast.UnionTypeDefinition:
		t := &Union{
			name:        def.Name.Value,
			description: def.Description,
			directives:  builder.buildAppliedDirectives(def.Directives),
		}
		builder.types[name] = t
		t.structure.fn = func() error {
			members, err := builder.buildUnionMembers(def)
			if err != nil {
				return err
			}
			t.types = members
			return nil
		}
		builder.pending = append(builder.pending, &t.structure)
		return t, nil

	case *ast.EnumTypeDefinition:
		values := make(EnumValueList, len(def.Values))
		for i, valueDef := range def.Values {
			values[i] = &EnumValue{
				name:        valueDef.Name.Value,
				description: valueDef.Description,
				directives:  builder.buildAppliedDirectives(valueDef.Directives),
				value:       valueDef.Name.Value,
			}
		}
		t := &Enum{
			name:        def.Name.Value,
			description: def.Description,
			directives:  builder.buildAppliedDirectives(def.Directives),
			values:      values,
		}
		builder.types[name] = t
		return t, nil

	case *ast.InputObjectTypeDefinition:
		t := &InputObject{
			name:        def.Name.Value,
			description: def.Description,
			directives:  builder.buildAppliedDirectives(def.Directives),
		}
		builder.types[name] = t
		t.structure.fn = func() error {
			fields, err := builder.buildInputFields(def.Fields)
			if err != nil {
				return err
			}
			t.fields = fields
			return nil
		}
		builder.pending = append(builder.pending, &t.structure)
		return t, nil
	}

	return nil, NewValidationError(fmt.Sprintf(`Type "%s" not found in document.`, name))
}

func (builder *schemaBuilder) buildFields(defs []*ast.FieldDefinition) (FieldList, error) {
	fields := make(FieldList, len(defs))
	for i, def := range defs {
		fieldType, err := builder.resolveType(def.Type)
		if err != nil {
			return nil, err
		}
		args, err := builder.buildArguments(def.Arguments)
		if err != nil {
			return nil, err
		}
		fields[i] = &Field{
			name:        def.Name.Value,
			description: def.Description,
			ttype:       fieldType,
			args:        args,
			directives:  builder.buildAppliedDirectives(def.Directives),
		}
	}
	return fields, nil
}

func (builder *schemaBuilder) buildArguments(defs []*ast.InputValueDefinition) (ArgumentList, error) {
	args := make(ArgumentList, len(defs))
	for i, def := range defs {
		argType, err := builder.resolveType(def.Type)
		if err != nil {
			return nil, err
		}
		args[i] = &Argument{
			name:                def.Name.Value,
			description:         def.Description,
			ttype:               argType,
			directives:          builder.buildAppliedDirectives(def.Directives),
			hasDefault:          def.DefaultValue != nil,
			defaultValueLiteral: def.DefaultValue,
		}
	}
	return args, nil
}

func (builder *schemaBuilder) buildInputFields(defs []*ast.InputValueDefinition) (InputFieldList, error) {
	fields := make(InputFieldList, len(defs))
	for i, def := range defs {
		fieldType, err := builder.resolveType(def.Type)
		if err != nil {
			return nil, err
		}
		fields[i] = &InputField{
			name:                def.Name.Value,
			description:         def.Description,
			ttype:               fieldType,
			directives:          builder.buildAppliedDirectives(def.Directives),
			hasDefault:          def.DefaultValue != nil,
			defaultValueLiteral: def.DefaultValue,
		}
	}
	return fields, nil
}

func (builder *schemaBuilder) buildInterfaces(def *ast.ObjectTypeDefinition) ([]*Interface, error) {
	if len(def.Interfaces) == 0 {
		return nil, nil
	}
	interfaces := make([]*Interface, len(def.Interfaces))
	for i, astType := range def.Interfaces {
		t, err := builder.resolveNamed(astType.Name.Value)
		if err != nil {
			return nil, err
		}
		iface, ok := t.(*Interface)
		if !ok {
			return nil, NewValidationError(fmt.Sprintf(
				`Type "%s" can only implement Interface types, it cannot implement "%s".`,
				def.Name.Value, t))
		}
		interfaces[i] = iface
	}
	return interfaces, nil
}

func (builder *schemaBuilder) buildUnionMembers(def *ast.UnionTypeDefinition) ([]*Object, error) {
	members := make([]*Object, len(def.Types))
	for i, astType := range def.Types {
		t, err := builder.resolveNamed(astType.Name.Value)
		if err != nil {
			return nil, err
		}
		object, ok := t.(*Object)
		if !ok {
			return nil, NewValidationError(fmt.Sprintf(
				`Union type "%s" can only include Object types, it cannot include "%s".`,
				def.Name.Value, t))
		}
		members[i] = object
	}
	return members, nil
}

//===----------------------------------------------------------------------------------------====//
// Late passes
//===----------------------------------------------------------------------------------------====//

// coerceDefaultValues walks every declared default literal and coerces it against its declared
// type. This runs after all structures have been forced, so coercion of an input object literal
// can read the field list of any type, including the one whose default is being coerced.
func (builder *schemaBuilder) coerceDefaultValues() error {
	// Directive arguments first: the pass that fills applied-directive defaults reads them.
	for _, directive := range builder.directives {
		if err := coerceArgumentDefaults(directive.args); err != nil {
			return err
		}
	}

	for _, name := range builder.typeOrder {
		switch t := builder.types[name].(type) {
		case *Object:
			for _, field := range t.fields {
				if err := coerceArgumentDefaults(field.args); err != nil {
					return err
				}
			}
		case *Interface:
			for _, field := range t.fields {
				if err := coerceArgumentDefaults(field.args); err != nil {
					return err
				}
			}
		case *InputObject:
			for _, field := range t.fields {
				if !field.hasDefault {
					continue
				}
				if _, err := field.coercedDefault(); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// coerceArgumentDefaults coerces the declared default literals of an argument list. Arguments
// without a literal carry a ready runtime default (the built-in directives' arguments); those must
// not be touched here, since the built-in definitions are shared across every build.
func coerceArgumentDefaults(args ArgumentList) error {
	for _, arg := range args {
		if !arg.hasDefault || arg.defaultValueLiteral == nil {
			continue
		}
		if _, err := arg.coercedDefault(); err != nil {
			return err
		}
	}
	return nil
}

// finalizeAppliedDirectives makes the late pass over every applied-directive record in the
// schema: arguments supplied to a declared directive are coerced against its signature, with any
// mismatch aborting the build, and declared defaults are filled in for arguments the application
// omitted. Applications of undeclared directives keep their literal values.
func (builder *schemaBuilder) finalizeAppliedDirectives() error {
	for _, name := range builder.typeOrder {
		switch t := builder.types[name].(type) {
		case *Scalar:
			if err := builder.finalizeApplied(t.directives); err != nil {
				return err
			}
		case *Object:
			if err := builder.finalizeApplied(t.directives); err != nil {
				return err
			}
			if err := builder.finalizeFieldApplied(t.fields); err != nil {
				return err
			}
		case *Interface:
			if err := builder.finalizeApplied(t.directives); err != nil {
				return err
			}
			if err := builder.finalizeFieldApplied(t.fields); err != nil {
				return err
			}
		case *Union:
			if err := builder.finalizeApplied(t.directives); err != nil {
				return err
			}
		case *Enum:
			if err := builder.finalizeApplied(t.directives); err != nil {
				return err
			}
			for _, value := range t.values {
				if err := builder.finalizeApplied(value.directives); err != nil {
					return err
				}
			}
		case *InputObject:
			if err := builder.finalizeApplied(t.directives); err != nil {
				return err
			}
			for _, field := range t.fields {
				if err := builder.finalizeApplied(field.directives); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (builder *schemaBuilder) finalizeFieldApplied(fields FieldList) error {
	for _, field := range fields {
		if err := builder.finalizeApplied(field.directives); err != nil {
			return err
		}
		for _, arg := range field.args {
			if err := builder.finalizeApplied(arg.directives); err != nil {
				return err
			}
		}
	}
	return nil
}

func (builder *schemaBuilder) finalizeApplied(applied AppliedDirectives) error {
	for _, application := range applied {
		directive := builder.directives.Get(application.name)
		if directive == nil {
			continue
		}
		for _, arg := range application.args {
			declared := directive.args.Get(arg.Name)
			if declared == nil {
				continue
			}
			value, err := CoerceLiteralValue(declared.ttype, arg.Literal)
			if err != nil {
				return err
			}
			arg.Value = value
			application.argValues[arg.Name] = value
		}
		for _, declared := range directive.args {
			if !declared.hasDefault {
				continue
			}
			if _, supplied := application.argValues[declared.name]; !supplied {
				application.argValues[declared.name] = declared.defaultValue
			}
		}
	}
	return nil
}

func (builder *schemaBuilder) computePossibleTypes() map[string][]*Object {
	possibleTypes := make(map[string][]*Object)
	for _, name := range builder.typeOrder {
		switch t := builder.types[name].(type) {
		case *Object:
			for _, iface := range t.interfaces {
				possibleTypes[iface.name] = append(possibleTypes[iface.name], t)
			}
		case *Union:
			possibleTypes[t.name] = append(possibleTypes[t.name], t.types...)
		}
	}
	return possibleTypes
}
