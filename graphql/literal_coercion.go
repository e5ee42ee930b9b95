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

// CoerceLiteralValue coerces a literal value from a document (such as an argument or input field
// default) into the Go value held by the type system, validated against the given type.
//
// Coercion rules, per https://facebook.github.io/graphql/June2018/#sec-Coercing-Input-Values:
//
//   - A null literal is accepted for any nullable type and yields nil; against a NonNull it is an
//     error.
//   - Scalars coerce through the scalar's literal coercer; enums accept an enum literal naming one
//     of their values.
//   - A list type accepts a list literal (coercing each item) and also any single non-null value,
//     which becomes a one-element list.
//   - An input object type accepts an object literal: declared fields are coerced recursively,
//     omitted fields fall back to their defaults, and an omitted field of non-null type without a
//     default is an error.
func CoerceLiteralValue(t Type, value ast.Value) (interface{}, error) {
	if nonNull, ok := t.(*NonNull); ok {
		if _, isNull := value.(ast.NullValue); isNull {
			return nil, NewCoercionError(
				fmt.Sprintf(`Expected value of type "%s", found %s.`, t, ast.Print(value)))
		}
		return CoerceLiteralValue(nonNull.InnerType(), value)
	}

	if _, isNull := value.(ast.NullValue); isNull {
		return nil, nil
	}

	if variable, ok := value.(ast.Variable); ok {
		return nil, NewCoercionError(
			fmt.Sprintf(`Variable "$%s" cannot be used in a constant value.`, variable.Name.Value))
	}

	switch t := t.(type) {
	case *Scalar:
		return t.CoerceLiteralValue(value)

	case *Enum:
		return coerceEnumLiteral(t, value)

	case *List:
		return coerceListLiteral(t, value)

	case *InputObject:
		return coerceInputObjectLiteral(t, value)
	}

	return nil, NewCoercionError(fmt.Sprintf(`Unexpected input type: "%s".`, t))
}

func coerceEnumLiteral(t *Enum, value ast.Value) (interface{}, error) {
	enumValue, ok := value.(ast.EnumValue)
	if !ok {
		return nil, NewCoercionError(
			fmt.Sprintf(`Expected value of type "%s", found %s.`, t, ast.Print(value)))
	}
	v := t.Values().Get(enumValue.Value)
	if v == nil {
		return nil, NewCoercionError(
			fmt.Sprintf(`Value "%s" does not exist in "%s" enum.`, enumValue.Value, t.Name()))
	}
	return v.Value(), nil
}

func coerceListLiteral(t *List, value ast.Value) (interface{}, error) {
	elementType := t.ElementType()

	listValue, ok := value.(ast.ListValue)
	if !ok {
		// A single value coerces to a one-element list of that value.
		item, err := CoerceLiteralValue(elementType, value)
		if err != nil {
			return nil, err
		}
		return []interface{}{item}, nil
	}

	result := make([]interface{}, 0, len(listValue.Values))
	for _, itemValue := range listValue.Values {
		item, err := CoerceLiteralValue(elementType, itemValue)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

func coerceInputObjectLiteral(t *InputObject, value ast.Value) (interface{}, error) {
	objectValue, ok := value.(ast.ObjectValue)
	if !ok {
		return nil, NewCoercionError(
			fmt.Sprintf(`Expected value of type "%s", found %s.`, t, ast.Print(value)))
	}

	fields := t.Fields()
	for _, literalField := range objectValue.Fields {
		if fields.Get(literalField.Name.Value) == nil {
			return nil, NewCoercionError(
				fmt.Sprintf(`Field "%s" is not defined by type "%s".`, literalField.Name.Value, t.Name()))
		}
	}

	result := make(map[string]interface{}, len(fields))
	for _, field := range fields {
		var literal ast.Value
		for _, literalField := range objectValue.Fields {
			if literalField.Name.Value == field.Name() {
				literal = literalField.Value
				break
			}
		}

		if literal == nil {
			if field.HasDefaultValue() {
				defaultValue, err := field.coercedDefault()
				if err != nil {
					return nil, err
				}
				result[field.Name()] = defaultValue
			} else if _, ok := field.Type().(*NonNull); ok {
				return nil, NewCoercionError(
					fmt.Sprintf(`Field "%s" of required type "%s" was not provided.`,
						field.Name(), field.Type()))
			}
			continue
		}

		fieldValue, err := CoerceLiteralValue(field.Type(), literal)
		if err != nil {
			return nil, err
		}
		result[field.Name()] = fieldValue
	}
	return result, nil
}
