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
	"strconv"
	"strings"
)

// Print serializes a value node back to the form it takes in a document.
func Print(value Value) string {
	var builder strings.Builder
	printValue(&builder, value)
	return builder.String()
}

func printValue(builder *strings.Builder, value Value) {
	switch v := value.(type) {
	case IntValue:
		builder.WriteString(v.Literal)

	case FloatValue:
		builder.WriteString(v.Literal)

	case StringValue:
		builder.WriteString(strconv.Quote(v.Value))

	case BooleanValue:
		if v.Value {
			builder.WriteString("true")
		} else {
			builder.WriteString("false")
		}

	case NullValue:
		builder.WriteString("null")

	case EnumValue:
		builder.WriteString(v.Value)

	case Variable:
		builder.WriteString("$")
		builder.WriteString(v.Name.Value)

	case ListValue:
		builder.WriteString("[")
		for i, item := range v.Values {
			if i > 0 {
				builder.WriteString(", ")
			}
			printValue(builder, item)
		}
		builder.WriteString("]")

	case ObjectValue:
		builder.WriteString("{")
		for i, field := range v.Fields {
			if i > 0 {
				builder.WriteString(", ")
			}
			builder.WriteString(field.Name.Value)
			builder.WriteString(": ")
			printValue(builder, field.Value)
		}
		builder.WriteString("}")
	}
}

// PrintType serializes a type reference node back to the form it takes in a document.
func PrintType(t Type) string {
	switch v := t.(type) {
	case NamedType:
		return v.Name.Value
	case ListType:
		return "[" + PrintType(v.ItemType) + "]"
	case NonNullType:
		return PrintType(v.Type) + "!"
	}
	return ""
}
