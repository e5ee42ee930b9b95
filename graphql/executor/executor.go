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

// Package executor evaluates queries against a built schema with a plain-data root value. It
// implements the core of the execution model: field collection with @skip/@include, nested
// selection on map values, list completion and leaf serialization. Variables, fragments and
// abstract type resolution are not part of this executor.
package executor

import (
	"context"
	"fmt"
	"reflect"

	"github.com/mariam1019/graphql-js/graphql"
	"github.com/mariam1019/graphql-js/graphql/ast"
)

// Params groups the inputs to Execute.
type Params struct {
	Schema   *graphql.Schema
	Document ast.Document

	// OperationName selects the operation to run when the document contains more than one
	OperationName string

	// RootValue supplies the data for the root object type's fields: a map from field name to
	// either a value or a niladic function producing one
	RootValue interface{}
}

// Execute runs an operation from the document against the schema and returns a response carrying
// the resulting data or the error that stopped execution.
func Execute(ctx context.Context, params Params) *Response {
	data, err := execute(ctx, params)
	if err != nil {
		return &Response{Errors: []error{err}}
	}
	return &Response{Data: data}
}

func execute(ctx context.Context, params Params) (map[string]interface{}, error) {
	operation, err := selectOperation(params.Document, params.OperationName)
	if err != nil {
		return nil, err
	}

	schema := params.Schema
	var rootType *graphql.Object
	switch operation.Operation {
	case ast.OperationTypeQuery:
		rootType = schema.Query()
	case ast.OperationTypeMutation:
		if rootType = schema.Mutation(); rootType == nil {
			return nil, graphql.NewError("Schema is not configured for mutations.")
		}
	case ast.OperationTypeSubscription:
		if rootType = schema.Subscription(); rootType == nil {
			return nil, graphql.NewError("Schema is not configured for subscriptions.")
		}
	}

	e := &executor{ctx: ctx, schema: schema}
	return e.executeSelectionSet(operation.SelectionSet, rootType, params.RootValue)
}

func selectOperation(document ast.Document, operationName string) (*ast.OperationDefinition, error) {
	var operation *ast.OperationDefinition
	for _, definition := range document.Definitions {
		def, ok := definition.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		if operationName == "" {
			if operation != nil {
				return nil, graphql.NewError(
					"Must provide operation name if query contains multiple operations.")
			}
			operation = def
		} else if def.Name.Value == operationName {
			operation = def
			break
		}
	}
	if operation == nil {
		if operationName != "" {
			return nil, graphql.NewError(fmt.Sprintf(`Unknown operation named "%s".`, operationName))
		}
		return nil, graphql.NewError("Must provide an operation.")
	}
	return operation, nil
}

type executor struct {
	ctx    context.Context
	schema *graphql.Schema
}

func (e *executor) executeSelectionSet(selectionSet ast.SelectionSet, objectType *graphql.Object, source interface{}) (map[string]interface{}, error) {
	result := make(map[string]interface{}, len(selectionSet))
	for _, selection := range selectionSet {
		field, ok := selection.(*ast.Field)
		if !ok {
			return nil, graphql.NewError("Fragments are not supported by this executor.")
		}
		if skipped, err := skipField(field.Directives); err != nil {
			return nil, err
		} else if skipped {
			continue
		}

		fieldDef := objectType.Fields().Get(field.Name.Value)
		if fieldDef == nil {
			return nil, graphql.NewError(fmt.Sprintf(
				`Cannot query field "%s" on type "%s".`, field.Name.Value, objectType.Name()))
		}

		value, err := e.resolveField(source, field.Name.Value)
		if err != nil {
			return nil, err
		}
		completed, err := e.completeValue(fieldDef.Type(), field.SelectionSet, value)
		if err != nil {
			return nil, err
		}
		result[field.ResponseKey()] = completed
	}
	return result, nil
}

// skipField evaluates @skip and @include on a field node. Only literal boolean arguments are
// meaningful here; anything else leaves the field included.
func skipField(directives ast.Directives) (bool, error) {
	for _, directive := range directives {
		var want bool
		switch directive.Name.Value {
		case "skip":
			want = false
		case "include":
			want = true
		default:
			continue
		}
		condition := directive.Arguments.Get("if")
		if condition == nil {
			continue
		}
		boolValue, ok := condition.Value.(ast.BooleanValue)
		if !ok {
			continue
		}
		if boolValue.Value != want {
			return true, nil
		}
	}
	return false, nil
}

// resolveField reads one field from a source value: a map entry, or for struct sources an
// exported field or niladic method matching the name. A function value is invoked to produce the
// field.
func (e *executor) resolveField(source interface{}, name string) (interface{}, error) {
	var value interface{}

	switch src := source.(type) {
	case map[string]interface{}:
		value = src[name]
	default:
		v, err := reflectField(source, name)
		if err != nil {
			return nil, err
		}
		value = v
	}

	return e.callIfFunc(value)
}

// callIfFunc implements the callable part of the resolver contract: a field backed by a function
// is computed on demand. Supported shapes are func() T, func(context.Context) T and the same with
// a trailing error result.
func (e *executor) callIfFunc(value interface{}) (interface{}, error) {
	fn := reflect.ValueOf(value)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return value, nil
	}

	fnType := fn.Type()
	var in []reflect.Value
	if fnType.NumIn() == 1 && fnType.In(0) == reflect.TypeOf((*context.Context)(nil)).Elem() {
		in = []reflect.Value{reflect.ValueOf(e.ctx)}
	} else if fnType.NumIn() != 0 {
		return nil, graphql.NewError("Field resolver function must take no argument or a context.Context.")
	}

	out := fn.Call(in)
	switch len(out) {
	case 1:
		return out[0].Interface(), nil
	case 2:
		if err, ok := out[1].Interface().(error); ok && err != nil {
			return nil, err
		}
		return out[0].Interface(), nil
	}
	return nil, graphql.NewError("Field resolver function must return one value and an optional error.")
}

func reflectField(source interface{}, name string) (interface{}, error) {
	v := reflect.ValueOf(source)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, graphql.NewError(fmt.Sprintf(
			`Cannot resolve field "%s" from value of type %T.`, name, source))
	}

	field := v.FieldByNameFunc(func(fieldName string) bool {
		return equalFold(fieldName, name)
	})
	if field.IsValid() {
		return field.Interface(), nil
	}
	return nil, nil
}

// equalFold compares a Go identifier with a GraphQL field name ignoring the case of the leading
// character.
func equalFold(goName, fieldName string) bool {
	if len(goName) != len(fieldName) || len(goName) == 0 {
		return false
	}
	if goName[1:] != fieldName[1:] {
		return false
	}
	a, b := goName[0], fieldName[0]
	if 'A' <= a && a <= 'Z' {
		a += 'a' - 'A'
	}
	if 'A' <= b && b <= 'Z' {
		b += 'a' - 'A'
	}
	return a == b
}

// completeValue coerces a resolved value to the field's type.
//
// Reference: https://facebook.github.io/graphql/June2018/#CompleteValue()
func (e *executor) completeValue(t graphql.Type, selectionSet ast.SelectionSet, value interface{}) (interface{}, error) {
	if nonNull, ok := t.(*graphql.NonNull); ok {
		completed, err := e.completeValue(nonNull.InnerType(), selectionSet, value)
		if err != nil {
			return nil, err
		}
		if completed == nil {
			return nil, graphql.NewError(fmt.Sprintf(
				"Cannot return null for non-nullable type %s.", t))
		}
		return completed, nil
	}

	if value == nil {
		return nil, nil
	}

	switch t := t.(type) {
	case *graphql.List:
		return e.completeListValue(t, selectionSet, value)

	case *graphql.Object:
		return e.executeSelectionSet(selectionSet, t, value)
	}

	if leaf, ok := t.(graphql.LeafType); ok {
		return leaf.CoerceResultValue(value)
	}

	return nil, graphql.NewError(fmt.Sprintf(
		"Abstract type %s is not supported by this executor.", t))
}

func (e *executor) completeListValue(t *graphql.List, selectionSet ast.SelectionSet, value interface{}) (interface{}, error) {
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, graphql.NewError(fmt.Sprintf(
			"Expected a list value for type %s, found %T.", t, value))
	}

	result := make([]interface{}, v.Len())
	for i := 0; i < v.Len(); i++ {
		completed, err := e.completeValue(t.ElementType(), selectionSet, v.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		result[i] = completed
	}
	return result, nil
}
