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
	"math"
	"strconv"

	"github.com/mariam1019/graphql-js/graphql/ast"
)

// Int is the GraphQL Int scalar: a signed 32-bit integer.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Int
var Int = NewScalar(ScalarConfig{
	Name:           "Int",
	Description:    "The `Int` scalar type represents non-fractional signed whole numeric values.",
	ResultCoercer:  coerceIntResult,
	LiteralCoercer: coerceIntLiteral,
})

// Float is the GraphQL Float scalar: a signed double-precision fractional value.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Float
var Float = NewScalar(ScalarConfig{
	Name:           "Float",
	Description:    "The `Float` scalar type represents signed double-precision fractional values.",
	ResultCoercer:  coerceFloatResult,
	LiteralCoercer: coerceFloatLiteral,
})

// String is the GraphQL String scalar: UTF-8 character sequences.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-String
var String = NewScalar(ScalarConfig{
	Name:           "String",
	Description:    "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
	ResultCoercer:  coerceStringResult,
	LiteralCoercer: coerceStringLiteral,
})

// Boolean is the GraphQL Boolean scalar.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Boolean
var Boolean = NewScalar(ScalarConfig{
	Name:           "Boolean",
	Description:    "The `Boolean` scalar type represents `true` or `false`.",
	ResultCoercer:  coerceBooleanResult,
	LiteralCoercer: coerceBooleanLiteral,
})

// ID is the GraphQL ID scalar: a unique identifier serialized as a string but accepting both
// string and integer input.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-ID
var ID = NewScalar(ScalarConfig{
	Name:           "ID",
	Description:    "The `ID` scalar type represents a unique identifier.",
	ResultCoercer:  coerceIDResult,
	LiteralCoercer: coerceIDLiteral,
})

// StandardTypes returns the scalar types guaranteed to exist in every schema.
func StandardTypes() []*Scalar {
	return []*Scalar{Int, Float, String, Boolean, ID}
}

//===----------------------------------------------------------------------------------------====//
// Int coercion
//===----------------------------------------------------------------------------------------====//

func coerceIntResult(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case int:
		return intFromInt64(int64(v))
	case int32:
		return int(v), nil
	case int64:
		return intFromInt64(v)
	case float64:
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return nil, NewError(fmt.Sprintf("Int cannot represent non-integer value: %v", v))
		}
		return int(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return nil, NewError(fmt.Sprintf("Int cannot represent non-integer value: %q", v))
		}
		return int(n), nil
	}
	return nil, NewError(fmt.Sprintf("Int cannot represent non-integer value: %v", value))
}

func intFromInt64(v int64) (interface{}, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return nil, NewError(fmt.Sprintf("Int cannot represent non 32-bit signed integer value: %v", v))
	}
	return int(v), nil
}

func coerceIntLiteral(value ast.Value) (interface{}, error) {
	intValue, ok := value.(ast.IntValue)
	if !ok {
		return nil, NewCoercionError(fmt.Sprintf("Int cannot represent non-integer value: %s", ast.Print(value)))
	}
	v, err := intValue.Int32Value()
	if err != nil {
		return nil, NewCoercionError(fmt.Sprintf("Int cannot represent non 32-bit signed integer value: %s", intValue.Literal))
	}
	return int(v), nil
}

//===----------------------------------------------------------------------------------------====//
// Float coercion
//===----------------------------------------------------------------------------------------====//

func coerceFloatResult(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case bool:
		if v {
			return 1.0, nil
		}
		return 0.0, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, NewError(fmt.Sprintf("Float cannot represent non numeric value: %q", v))
		}
		return f, nil
	}
	return nil, NewError(fmt.Sprintf("Float cannot represent non numeric value: %v", value))
}

func coerceFloatLiteral(value ast.Value) (interface{}, error) {
	switch v := value.(type) {
	case ast.IntValue:
		f, err := strconv.ParseFloat(v.Literal, 64)
		if err != nil {
			return nil, NewCoercionError(fmt.Sprintf("Float cannot represent non numeric value: %s", v.Literal))
		}
		return f, nil
	case ast.FloatValue:
		f, err := v.FloatValue()
		if err != nil {
			return nil, NewCoercionError(fmt.Sprintf("Float cannot represent non numeric value: %s", v.Literal))
		}
		return f, nil
	}
	return nil, NewCoercionError(fmt.Sprintf("Float cannot represent non numeric value: %s", ast.Print(value)))
}

//===----------------------------------------------------------------------------------------====//
// String coercion
//===----------------------------------------------------------------------------------------====//

func coerceStringResult(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return nil, NewError(fmt.Sprintf("String cannot represent value: %v", value))
}

func coerceStringLiteral(value ast.Value) (interface{}, error) {
	stringValue, ok := value.(ast.StringValue)
	if !ok {
		return nil, NewCoercionError(fmt.Sprintf("String cannot represent a non string value: %s", ast.Print(value)))
	}
	return stringValue.Value, nil
}

//===----------------------------------------------------------------------------------------====//
// Boolean coercion
//===----------------------------------------------------------------------------------------====//

func coerceBooleanResult(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case int:
		return v != 0, nil
	case int32:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case float64:
		return v != 0, nil
	}
	return nil, NewError(fmt.Sprintf("Boolean cannot represent a non boolean value: %v", value))
}

func coerceBooleanLiteral(value ast.Value) (interface{}, error) {
	booleanValue, ok := value.(ast.BooleanValue)
	if !ok {
		return nil, NewCoercionError(fmt.Sprintf("Boolean cannot represent a non boolean value: %s", ast.Print(value)))
	}
	return booleanValue.Value, nil
}

//===----------------------------------------------------------------------------------------====//
// ID coercion
//===----------------------------------------------------------------------------------------====//

func coerceIDResult(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return nil, NewError(fmt.Sprintf("ID cannot represent value: %v", value))
}

func coerceIDLiteral(value ast.Value) (interface{}, error) {
	switch v := value.(type) {
	case ast.StringValue:
		return v.Value, nil
	case ast.IntValue:
		return v.Literal, nil
	}
	return nil, NewCoercionError(fmt.Sprintf("ID cannot represent a non-string and non-integer value: %s", ast.Print(value)))
}
