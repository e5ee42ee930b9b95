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
	"strings"

	"github.com/mariam1019/graphql-js/graphql/ast"
)

// PrintSchema serializes a schema back to SDL. The output is deterministic: the schema definition
// (only when the source document declared one explicitly), then directive definitions in
// declaration order, then type definitions in document order, separated by blank lines.
// Descriptions reappear as the comment blocks they came from, and default values and directive
// application arguments print as the literals written in the source. A document already in this
// form round-trips: printing the schema built from it reproduces the text.
func PrintSchema(schema *Schema) string {
	var printer schemaPrinter
	printer.printSchema(schema)
	return printer.String()
}

type schemaPrinter struct {
	strings.Builder
	printedAny bool
}

func (p *schemaPrinter) beginDefinition() {
	if p.printedAny {
		p.WriteString("\n")
	}
	p.printedAny = true
}

func (p *schemaPrinter) printSchema(schema *Schema) {
	if schema.schemaDef != nil {
		p.beginDefinition()
		p.WriteString("schema")
		p.printAppliedDirectives(schema.schemaDirectives)
		p.WriteString(" {\n")
		for _, operationType := range schema.schemaDef.OperationTypes {
			p.WriteString("  ")
			p.WriteString(string(operationType.Operation))
			p.WriteString(": ")
			p.WriteString(operationType.Type.Name.Value)
			p.WriteString("\n")
		}
		p.WriteString("}\n")
	}

	for _, name := range schema.declaredDirectives {
		p.printDirectiveDefinition(schema.Directive(name))
	}

	for _, name := range schema.typeOrder {
		p.printType(schema.Type(name))
	}
}

func (p *schemaPrinter) printDescription(description string, indent string) {
	if description == "" {
		return
	}
	for _, line := range strings.Split(description, "\n") {
		p.WriteString(indent)
		if line == "" {
			p.WriteString("#\n")
		} else {
			p.WriteString("# ")
			p.WriteString(line)
			p.WriteString("\n")
		}
	}
}

func (p *schemaPrinter) printDirectiveDefinition(directive *Directive) {
	p.beginDefinition()
	p.printDescription(directive.Description(), "")
	p.WriteString("directive @")
	p.WriteString(directive.Name())
	p.printArguments(directive.Args())
	p.WriteString(" on ")
	for i, location := range directive.Locations() {
		if i > 0 {
			p.WriteString(" | ")
		}
		p.WriteString(string(location))
	}
	p.WriteString("\n")
}

func (p *schemaPrinter) printType(t Type) {
	switch t := t.(type) {
	case *Scalar:
		p.beginDefinition()
		p.printDescription(t.Description(), "")
		p.WriteString("scalar ")
		p.WriteString(t.Name())
		p.printAppliedDirectives(t.Directives())
		p.WriteString("\n")

	case *Object:
		p.beginDefinition()
		p.printDescription(t.Description(), "")
		p.WriteString("type ")
		p.WriteString(t.Name())
		if interfaces := t.Interfaces(); len(interfaces) > 0 {
			p.WriteString(" implements ")
			for i, iface := range interfaces {
				if i > 0 {
					p.WriteString(" & ")
				}
				p.WriteString(iface.Name())
			}
		}
		p.printAppliedDirectives(t.Directives())
		p.WriteString(" {\n")
		p.printFields(t.Fields())
		p.WriteString("}\n")

	case *Interface:
		p.beginDefinition()
		p.printDescription(t.Description(), "")
		p.WriteString("interface ")
		p.WriteString(t.Name())
		p.printAppliedDirectives(t.Directives())
		p.WriteString(" {\n")
		p.printFields(t.Fields())
		p.WriteString("}\n")

	case *Union:
		p.beginDefinition()
		p.printDescription(t.Description(), "")
		p.WriteString("union ")
		p.WriteString(t.Name())
		p.printAppliedDirectives(t.Directives())
		p.WriteString(" = ")
		for i, member := range t.PossibleTypes() {
			if i > 0 {
				p.WriteString(" | ")
			}
			p.WriteString(member.Name())
		}
		p.WriteString("\n")

	case *Enum:
		p.beginDefinition()
		p.printDescription(t.Description(), "")
		p.WriteString("enum ")
		p.WriteString(t.Name())
		p.printAppliedDirectives(t.Directives())
		p.WriteString(" {\n")
		for _, value := range t.Values() {
			p.printDescription(value.Description(), "  ")
			p.WriteString("  ")
			p.WriteString(value.Name())
			p.printAppliedDirectives(value.Directives())
			p.WriteString("\n")
		}
		p.WriteString("}\n")

	case *InputObject:
		p.beginDefinition()
		p.printDescription(t.Description(), "")
		p.WriteString("input ")
		p.WriteString(t.Name())
		p.printAppliedDirectives(t.Directives())
		p.WriteString(" {\n")
		for _, field := range t.Fields() {
			p.printDescription(field.Description(), "  ")
			p.WriteString("  ")
			p.WriteString(field.Name())
			p.WriteString(": ")
			p.WriteString(field.Type().String())
			if field.HasDefaultValue() && field.DefaultValueLiteral() != nil {
				p.WriteString(" = ")
				p.WriteString(ast.Print(field.DefaultValueLiteral()))
			}
			p.printAppliedDirectives(field.Directives())
			p.WriteString("\n")
		}
		p.WriteString("}\n")
	}
}

func (p *schemaPrinter) printFields(fields FieldList) {
	for _, field := range fields {
		p.printDescription(field.Description(), "  ")
		p.WriteString("  ")
		p.WriteString(field.Name())
		p.printArguments(field.Args())
		p.WriteString(": ")
		p.WriteString(field.Type().String())
		p.printAppliedDirectives(field.Directives())
		p.WriteString("\n")
	}
}

func (p *schemaPrinter) printArguments(args ArgumentList) {
	if len(args) == 0 {
		return
	}
	p.WriteString("(")
	for i, arg := range args {
		if i > 0 {
			p.WriteString(", ")
		}
		p.WriteString(arg.Name())
		p.WriteString(": ")
		p.WriteString(arg.Type().String())
		if arg.HasDefaultValue() && arg.DefaultValueLiteral() != nil {
			p.WriteString(" = ")
			p.WriteString(ast.Print(arg.DefaultValueLiteral()))
		}
	}
	p.WriteString(")")
}

// printAppliedDirectives prints directive applications with the arguments written at the
// application site; defaults the application omitted stay omitted.
func (p *schemaPrinter) printAppliedDirectives(applied AppliedDirectives) {
	for _, directive := range applied {
		p.WriteString(" @")
		p.WriteString(directive.Name())
		if args := directive.Args(); len(args) > 0 {
			p.WriteString("(")
			for i, arg := range args {
				if i > 0 {
					p.WriteString(", ")
				}
				p.WriteString(arg.Name)
				p.WriteString(": ")
				p.WriteString(ast.Print(arg.Literal))
			}
			p.WriteString(")")
		}
	}
}
