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

package parser

import (
	"fmt"
	"strings"

	"github.com/mariam1019/graphql-js/graphql"
	"github.com/mariam1019/graphql-js/graphql/ast"
	"github.com/mariam1019/graphql-js/graphql/lexer"
	"github.com/mariam1019/graphql-js/graphql/token"
)

// Parse parses a GraphQL document from the given source. The document may contain both
// executable definitions and type system definitions.
func Parse(source *token.Source) (ast.Document, error) {
	p := &parser{
		lexer: lexer.New(source),
	}
	if err := p.advance(); err != nil {
		return ast.Document{}, err
	}
	return p.parseDocument()
}

// MustParse is a convenience function equivalent to Parse but panics on failure instead of
// returning an error.
func MustParse(source *token.Source) ast.Document {
	document, err := Parse(source)
	if err != nil {
		panic(err)
	}
	return document
}

// parser tracks the current token and the comment block that immediately preceded it. The comment
// block becomes the description of the definition the token starts (verbatim comment text, lines
// joined with newlines).
type parser struct {
	lexer *lexer.Lexer

	// The current (not yet consumed) token
	tok token.Token

	// Comment lines seen while advancing to the current token
	comment string
}

// advance consumes the current token and reads the next non-comment token, collecting any comment
// run seen on the way.
func (p *parser) advance() error {
	var comments []string
	for {
		tok, err := p.lexer.Advance()
		if err != nil {
			return err
		}
		if tok.Kind == token.KindComment {
			comments = append(comments, tok.Value)
			continue
		}
		p.tok = tok
		p.comment = strings.Join(comments, "\n")
		return nil
	}
}

// takeDescription returns the comment block preceding the current token and clears it so it
// cannot leak into a later definition.
func (p *parser) takeDescription() string {
	desc := p.comment
	p.comment = ""
	return desc
}

func (p *parser) peek(kind token.Kind) bool {
	return p.tok.Kind == kind
}

func (p *parser) peekKeyword(value string) bool {
	return p.tok.Kind == token.KindName && p.tok.Value == value
}

// skip consumes the current token if it is of the given kind.
func (p *parser) skip(kind token.Kind) (bool, error) {
	if p.tok.Kind != kind {
		return false, nil
	}
	return true, p.advance()
}

// expect consumes and returns the current token, which must be of the given kind.
func (p *parser) expect(kind token.Kind) (token.Token, error) {
	tok := p.tok
	if tok.Kind != kind {
		return tok, p.unexpected(fmt.Sprintf("Expected %s, found %s", kind, tok.Description()))
	}
	return tok, p.advance()
}

// expectKeyword consumes the current token, which must be a name token with the given value.
func (p *parser) expectKeyword(value string) (token.Token, error) {
	tok := p.tok
	if tok.Kind != token.KindName || tok.Value != value {
		return tok, p.unexpected(fmt.Sprintf(`Expected "%s", found %s`, value, tok.Description()))
	}
	return tok, p.advance()
}

func (p *parser) unexpected(message string) error {
	return graphql.NewSyntaxError(p.lexer.Source(), p.tok.Location, message)
}

// parseName parses a Name node.
func (p *parser) parseName() (ast.Name, error) {
	tok, err := p.expect(token.KindName)
	if err != nil {
		return ast.Name{}, err
	}
	return ast.Name{Value: tok.Value, Loc: tok.Location}, nil
}

//===----------------------------------------------------------------------------------------====//
// Document
//===----------------------------------------------------------------------------------------====//

// parseDocument parses definitions until EOF.
//
//	Document : Definition+
func (p *parser) parseDocument() (ast.Document, error) {
	var definitions []ast.Definition
	for !p.peek(token.KindEOF) {
		definition, err := p.parseDefinition()
		if err != nil {
			return ast.Document{}, err
		}
		definitions = append(definitions, definition)
	}
	return ast.Document{Definitions: definitions}, nil
}

//	Definition :
//		ExecutableDefinition
//		TypeSystemDefinition
func (p *parser) parseDefinition() (ast.Definition, error) {
	if p.peek(token.KindLeftBrace) {
		// Query shorthand such as "{ field }".
		return p.parseOperationDefinition(true)
	}

	if p.peek(token.KindName) {
		switch p.tok.Value {
		case "query", "mutation", "subscription":
			return p.parseOperationDefinition(false)
		case "fragment":
			return p.parseFragmentDefinition()
		case "schema":
			return p.parseSchemaDefinition()
		case "scalar":
			return p.parseScalarTypeDefinition()
		case "type":
			return p.parseObjectTypeDefinition()
		case "interface":
			return p.parseInterfaceTypeDefinition()
		case "union":
			return p.parseUnionTypeDefinition()
		case "enum":
			return p.parseEnumTypeDefinition()
		case "input":
			return p.parseInputObjectTypeDefinition()
		case "directive":
			return p.parseDirectiveDefinition()
		}
	}

	return nil, p.unexpected(fmt.Sprintf("Unexpected %s", p.tok.Description()))
}

//===----------------------------------------------------------------------------------------====//
// Executable definitions
//===----------------------------------------------------------------------------------------====//

//	OperationDefinition :
//		SelectionSet
//		OperationType Name? VariableDefinitions? Directives? SelectionSet
func (p *parser) parseOperationDefinition(shorthand bool) (*ast.OperationDefinition, error) {
	loc := p.tok.Location

	if shorthand {
		selectionSet, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return &ast.OperationDefinition{
			Operation:    ast.OperationTypeQuery,
			SelectionSet: selectionSet,
			Loc:          loc,
		}, nil
	}

	operationTok, err := p.expect(token.KindName)
	if err != nil {
		return nil, err
	}
	operation := ast.OperationType(operationTok.Value)

	var name ast.Name
	if p.peek(token.KindName) {
		name, err = p.parseName()
		if err != nil {
			return nil, err
		}
	}

	variableDefinitions, err := p.parseVariableDefinitions()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.OperationDefinition{
		Operation:           operation,
		Name:                name,
		VariableDefinitions: variableDefinitions,
		Directives:          directives,
		SelectionSet:        selectionSet,
		Loc:                 loc,
	}, nil
}

//	VariableDefinitions : ( VariableDefinition+ )
func (p *parser) parseVariableDefinitions() ([]*ast.VariableDefinition, error) {
	if ok, err := p.skip(token.KindLeftParen); err != nil || !ok {
		return nil, err
	}

	var definitions []*ast.VariableDefinition
	for {
		loc := p.tok.Location
		if _, err := p.expect(token.KindDollar); err != nil {
			return nil, err
		}
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.KindColon); err != nil {
			return nil, err
		}
		varType, err := p.parseTypeReference()
		if err != nil {
			return nil, err
		}

		var defaultValue ast.Value
		if ok, err := p.skip(token.KindEquals); err != nil {
			return nil, err
		} else if ok {
			defaultValue, err = p.parseValue()
			if err != nil {
				return nil, err
			}
		}

		definitions = append(definitions, &ast.VariableDefinition{
			Variable:     ast.Variable{Name: name, Loc: loc},
			Type:         varType,
			DefaultValue: defaultValue,
			Loc:          loc,
		})

		if ok, err := p.skip(token.KindRightParen); err != nil {
			return nil, err
		} else if ok {
			return definitions, nil
		}
	}
}

//	FragmentDefinition : fragment FragmentName TypeCondition Directives? SelectionSet
func (p *parser) parseFragmentDefinition() (*ast.FragmentDefinition, error) {
	loc := p.tok.Location
	if _, err := p.expectKeyword("fragment"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	typeCondition, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.FragmentDefinition{
		Name:          name,
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
		Loc:           loc,
	}, nil
}

//	SelectionSet : { Selection+ }
func (p *parser) parseSelectionSet() (ast.SelectionSet, error) {
	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, err
	}

	var selections ast.SelectionSet
	for {
		selection, err := p.parseSelection()
		if err != nil {
			return nil, err
		}
		selections = append(selections, selection)

		if ok, err := p.skip(token.KindRightBrace); err != nil {
			return nil, err
		} else if ok {
			return selections, nil
		}
	}
}

//	Selection :
//		Field
//		FragmentSpread
//		InlineFragment
func (p *parser) parseSelection() (ast.Selection, error) {
	if ok, err := p.skip(token.KindSpread); err != nil {
		return nil, err
	} else if ok {
		return p.parseFragment()
	}
	return p.parseField()
}

// parseFragment parses a fragment spread or an inline fragment; the "..." has already been
// consumed.
func (p *parser) parseFragment() (ast.Selection, error) {
	loc := p.tok.Location

	if p.peek(token.KindName) && p.tok.Value != "on" {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		directives, err := p.parseDirectives()
		if err != nil {
			return nil, err
		}
		return &ast.FragmentSpread{Name: name, Directives: directives, Loc: loc}, nil
	}

	var typeCondition ast.NamedType
	if p.peekKeyword("on") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		var err error
		typeCondition, err = p.parseNamedType()
		if err != nil {
			return nil, err
		}
	}

	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.InlineFragment{
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
		Loc:           loc,
	}, nil
}

//	Field : Alias? Name Arguments? Directives? SelectionSet?
func (p *parser) parseField() (*ast.Field, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var alias ast.Name
	if ok, err := p.skip(token.KindColon); err != nil {
		return nil, err
	} else if ok {
		alias = name
		name, err = p.parseName()
		if err != nil {
			return nil, err
		}
	}

	arguments, err := p.parseArguments()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}

	var selectionSet ast.SelectionSet
	if p.peek(token.KindLeftBrace) {
		selectionSet, err = p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
	}

	return &ast.Field{
		Alias:        alias,
		Name:         name,
		Arguments:    arguments,
		Directives:   directives,
		SelectionSet: selectionSet,
	}, nil
}

//	Arguments : ( Argument+ )
func (p *parser) parseArguments() (ast.Arguments, error) {
	if ok, err := p.skip(token.KindLeftParen); err != nil || !ok {
		return nil, err
	}

	var arguments ast.Arguments
	for {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.KindColon); err != nil {
			return nil, err
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, &ast.Argument{Name: name, Value: value})

		if ok, err := p.skip(token.KindRightParen); err != nil {
			return nil, err
		} else if ok {
			return arguments, nil
		}
	}
}

//===----------------------------------------------------------------------------------------====//
// Values
//===----------------------------------------------------------------------------------------====//

//	Value :
//		Variable
//		IntValue
//		FloatValue
//		StringValue
//		BooleanValue
//		NullValue
//		EnumValue
//		ListValue
//		ObjectValue
func (p *parser) parseValue() (ast.Value, error) {
	tok := p.tok
	switch tok.Kind {
	case token.KindInt:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.IntValue{Literal: tok.Value, Loc: tok.Location}, nil

	case token.KindFloat:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.FloatValue{Literal: tok.Value, Loc: tok.Location}, nil

	case token.KindString:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.StringValue{Value: tok.Value, Loc: tok.Location}, nil

	case token.KindName:
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch tok.Value {
		case "true", "false":
			return ast.BooleanValue{Value: tok.Value == "true", Loc: tok.Location}, nil
		case "null":
			return ast.NullValue{Loc: tok.Location}, nil
		}
		return ast.EnumValue{Value: tok.Value, Loc: tok.Location}, nil

	case token.KindDollar:
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		return ast.Variable{Name: name, Loc: tok.Location}, nil

	case token.KindLeftBracket:
		return p.parseListValue()

	case token.KindLeftBrace:
		return p.parseObjectValue()
	}

	return nil, p.unexpected(fmt.Sprintf("Unexpected %s", tok.Description()))
}

//	ListValue : [ Value* ]
func (p *parser) parseListValue() (ast.Value, error) {
	loc := p.tok.Location
	if err := p.advance(); err != nil {
		return nil, err
	}

	var values []ast.Value
	for {
		if ok, err := p.skip(token.KindRightBracket); err != nil {
			return nil, err
		} else if ok {
			return ast.ListValue{Values: values, Loc: loc}, nil
		}

		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
}

//	ObjectValue : { ObjectField* }
func (p *parser) parseObjectValue() (ast.Value, error) {
	loc := p.tok.Location
	if err := p.advance(); err != nil {
		return nil, err
	}

	var fields []*ast.ObjectField
	for {
		if ok, err := p.skip(token.KindRightBrace); err != nil {
			return nil, err
		} else if ok {
			return ast.ObjectValue{Fields: fields, Loc: loc}, nil
		}

		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.KindColon); err != nil {
			return nil, err
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		fields = append(fields, &ast.ObjectField{Name: name, Value: value})
	}
}

//===----------------------------------------------------------------------------------------====//
// Type references
//===----------------------------------------------------------------------------------------====//

//	Type :
//		NamedType
//		ListType
//		NonNullType
func (p *parser) parseTypeReference() (ast.Type, error) {
	var (
		nullable ast.NullableType
		err      error
	)

	if ok, skipErr := p.skip(token.KindLeftBracket); skipErr != nil {
		return nil, skipErr
	} else if ok {
		loc := p.tok.Location
		itemType, err := p.parseTypeReference()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.KindRightBracket); err != nil {
			return nil, err
		}
		nullable = ast.ListType{ItemType: itemType, Loc: loc}
	} else {
		nullable, err = p.parseNamedType()
		if err != nil {
			return nil, err
		}
	}

	if ok, err := p.skip(token.KindBang); err != nil {
		return nil, err
	} else if ok {
		return ast.NonNullType{Type: nullable, Loc: nullable.Location()}, nil
	}

	return nullable, nil
}

//	NamedType : Name
func (p *parser) parseNamedType() (ast.NamedType, error) {
	name, err := p.parseName()
	if err != nil {
		return ast.NamedType{}, err
	}
	return ast.NamedType{Name: name}, nil
}

//===----------------------------------------------------------------------------------------====//
// Directive applications
//===----------------------------------------------------------------------------------------====//

//	Directives : Directive+
func (p *parser) parseDirectives() (ast.Directives, error) {
	var directives ast.Directives
	for p.peek(token.KindAt) {
		loc := p.tok.Location
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		arguments, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		directives = append(directives, &ast.Directive{Name: name, Arguments: arguments, Loc: loc})
	}
	return directives, nil
}

//===----------------------------------------------------------------------------------------====//
// Type system definitions
//===----------------------------------------------------------------------------------------====//

//	SchemaDefinition : schema Directives? { OperationTypeDefinition+ }
func (p *parser) parseSchemaDefinition() (*ast.SchemaDefinition, error) {
	loc := p.tok.Location
	if _, err := p.expectKeyword("schema"); err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, err
	}

	var operationTypes []*ast.OperationTypeDefinition
	for {
		operationType, err := p.parseOperationTypeDefinition()
		if err != nil {
			return nil, err
		}
		operationTypes = append(operationTypes, operationType)

		if ok, err := p.skip(token.KindRightBrace); err != nil {
			return nil, err
		} else if ok {
			return &ast.SchemaDefinition{
				Directives:     directives,
				OperationTypes: operationTypes,
				Loc:            loc,
			}, nil
		}
	}
}

//	OperationTypeDefinition : OperationType : NamedType
func (p *parser) parseOperationTypeDefinition() (*ast.OperationTypeDefinition, error) {
	loc := p.tok.Location
	operationTok, err := p.expect(token.KindName)
	if err != nil {
		return nil, err
	}

	switch operationTok.Value {
	case "query", "mutation", "subscription":
	default:
		return nil, graphql.NewSyntaxError(p.lexer.Source(), operationTok.Location,
			fmt.Sprintf(`Unexpected "%s", expected "query", "mutation" or "subscription"`,
				operationTok.Value))
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}
	rootType, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}

	return &ast.OperationTypeDefinition{
		Operation: ast.OperationType(operationTok.Value),
		Type:      rootType,
		Loc:       loc,
	}, nil
}

//	ScalarTypeDefinition : Description? scalar Name Directives?
func (p *parser) parseScalarTypeDefinition() (*ast.ScalarTypeDefinition, error) {
	description := p.takeDescription()
	loc := p.tok.Location
	if _, err := p.expectKeyword("scalar"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}

	return &ast.ScalarTypeDefinition{
		Description: description,
		Name:        name,
		Directives:  directives,
		Loc:         loc,
	}, nil
}

//	ObjectTypeDefinition : Description? type Name ImplementsInterfaces? Directives? FieldsDefinition
func (p *parser) parseObjectTypeDefinition() (*ast.ObjectTypeDefinition, error) {
	description := p.takeDescription()
	loc := p.tok.Location
	if _, err := p.expectKeyword("type"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}

	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.ObjectTypeDefinition{
		Description: description,
		Name:        name,
		Interfaces:  interfaces,
		Directives:  directives,
		Fields:      fields,
		Loc:         loc,
	}, nil
}

//	ImplementsInterfaces : implements &? NamedType (&? NamedType)*
func (p *parser) parseImplementsInterfaces() ([]ast.NamedType, error) {
	if !p.peekKeyword("implements") {
		return nil, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var interfaces []ast.NamedType
	for {
		if _, err := p.skip(token.KindAmp); err != nil {
			return nil, err
		}
		iface, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		interfaces = append(interfaces, iface)

		if !p.peek(token.KindAmp) && !p.peek(token.KindName) {
			return interfaces, nil
		}
	}
}

//	FieldsDefinition : { FieldDefinition* }
func (p *parser) parseFieldsDefinition() ([]*ast.FieldDefinition, error) {
	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, err
	}

	var fields []*ast.FieldDefinition
	for {
		if ok, err := p.skip(token.KindRightBrace); err != nil {
			return nil, err
		} else if ok {
			return fields, nil
		}

		field, err := p.parseFieldDefinition()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
}

//	FieldDefinition : Description? Name ArgumentsDefinition? : Type Directives?
func (p *parser) parseFieldDefinition() (*ast.FieldDefinition, error) {
	description := p.takeDescription()

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	arguments, err := p.parseArgumentsDefinition()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}
	fieldType, err := p.parseTypeReference()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}

	return &ast.FieldDefinition{
		Description: description,
		Name:        name,
		Arguments:   arguments,
		Type:        fieldType,
		Directives:  directives,
	}, nil
}

//	ArgumentsDefinition : ( InputValueDefinition+ )
func (p *parser) parseArgumentsDefinition() ([]*ast.InputValueDefinition, error) {
	if ok, err := p.skip(token.KindLeftParen); err != nil || !ok {
		return nil, err
	}

	var arguments []*ast.InputValueDefinition
	for {
		argument, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, argument)

		if ok, err := p.skip(token.KindRightParen); err != nil {
			return nil, err
		} else if ok {
			return arguments, nil
		}
	}
}

//	InputValueDefinition : Description? Name : Type DefaultValue? Directives?
func (p *parser) parseInputValueDefinition() (*ast.InputValueDefinition, error) {
	description := p.takeDescription()

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}
	valueType, err := p.parseTypeReference()
	if err != nil {
		return nil, err
	}

	var defaultValue ast.Value
	if ok, err := p.skip(token.KindEquals); err != nil {
		return nil, err
	} else if ok {
		defaultValue, err = p.parseValue()
		if err != nil {
			return nil, err
		}
	}

	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}

	return &ast.InputValueDefinition{
		Description:  description,
		Name:         name,
		Type:         valueType,
		DefaultValue: defaultValue,
		Directives:   directives,
	}, nil
}

//	InterfaceTypeDefinition : Description? interface Name Directives? FieldsDefinition
func (p *parser) parseInterfaceTypeDefinition() (*ast.InterfaceTypeDefinition, error) {
	description := p.takeDescription()
	loc := p.tok.Location
	if _, err := p.expectKeyword("interface"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.InterfaceTypeDefinition{
		Description: description,
		Name:        name,
		Directives:  directives,
		Fields:      fields,
		Loc:         loc,
	}, nil
}

//	UnionTypeDefinition : Description? union Name Directives? = |? NamedType (| NamedType)*
func (p *parser) parseUnionTypeDefinition() (*ast.UnionTypeDefinition, error) {
	description := p.takeDescription()
	loc := p.tok.Location
	if _, err := p.expectKeyword("union"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindEquals); err != nil {
		return nil, err
	}
	if _, err := p.skip(token.KindPipe); err != nil {
		return nil, err
	}

	var types []ast.NamedType
	for {
		memberType, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		types = append(types, memberType)

		if ok, err := p.skip(token.KindPipe); err != nil {
			return nil, err
		} else if !ok {
			return &ast.UnionTypeDefinition{
				Description: description,
				Name:        name,
				Directives:  directives,
				Types:       types,
				Loc:         loc,
			}, nil
		}
	}
}

//	EnumTypeDefinition : Description? enum Name Directives? { EnumValueDefinition* }
func (p *parser) parseEnumTypeDefinition() (*ast.EnumTypeDefinition, error) {
	description := p.takeDescription()
	loc := p.tok.Location
	if _, err := p.expectKeyword("enum"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, err
	}

	var values []*ast.EnumValueDefinition
	for {
		if ok, err := p.skip(token.KindRightBrace); err != nil {
			return nil, err
		} else if ok {
			return &ast.EnumTypeDefinition{
				Description: description,
				Name:        name,
				Directives:  directives,
				Values:      values,
				Loc:         loc,
			}, nil
		}

		valueDescription := p.takeDescription()
		valueName, err := p.parseName()
		if err != nil {
			return nil, err
		}
		valueDirectives, err := p.parseDirectives()
		if err != nil {
			return nil, err
		}
		values = append(values, &ast.EnumValueDefinition{
			Description: valueDescription,
			Name:        valueName,
			Directives:  valueDirectives,
		})
	}
}

//	InputObjectTypeDefinition : Description? input Name Directives? { InputValueDefinition* }
func (p *parser) parseInputObjectTypeDefinition() (*ast.InputObjectTypeDefinition, error) {
	description := p.takeDescription()
	loc := p.tok.Location
	if _, err := p.expectKeyword("input"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, err
	}

	var fields []*ast.InputValueDefinition
	for {
		if ok, err := p.skip(token.KindRightBrace); err != nil {
			return nil, err
		} else if ok {
			return &ast.InputObjectTypeDefinition{
				Description: description,
				Name:        name,
				Directives:  directives,
				Fields:      fields,
				Loc:         loc,
			}, nil
		}

		field, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
}

//	DirectiveDefinition : Description? directive @ Name ArgumentsDefinition? on DirectiveLocations
func (p *parser) parseDirectiveDefinition() (*ast.DirectiveDefinition, error) {
	description := p.takeDescription()
	loc := p.tok.Location
	if _, err := p.expectKeyword("directive"); err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindAt); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	arguments, err := p.parseArgumentsDefinition()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	if _, err := p.skip(token.KindPipe); err != nil {
		return nil, err
	}

	var locations []ast.Name
	for {
		location, err := p.parseName()
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)

		if ok, err := p.skip(token.KindPipe); err != nil {
			return nil, err
		} else if !ok {
			return &ast.DirectiveDefinition{
				Description: description,
				Name:        name,
				Arguments:   arguments,
				Locations:   locations,
				Loc:         loc,
			}, nil
		}
	}
}
