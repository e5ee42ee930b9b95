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

// schemaDefinitionIn extracts the schema definition from a document. At most one is permitted;
// none at all is fine and the result is nil.
func schemaDefinitionIn(document ast.Document) (*ast.SchemaDefinition, error) {
	var schemaDef *ast.SchemaDefinition
	for _, definition := range document.Definitions {
		def, ok := definition.(*ast.SchemaDefinition)
		if !ok {
			continue
		}
		if schemaDef != nil {
			return nil, NewValidationError("Must provide only one schema definition.")
		}
		schemaDef = def
	}
	return schemaDef, nil
}

// rootTypeNames extracts the root operation type names declared by a schema definition. Each
// operation may be declared at most once.
func rootTypeNames(schemaDef *ast.SchemaDefinition) (map[ast.OperationType]string, error) {
	names := make(map[ast.OperationType]string, len(schemaDef.OperationTypes))
	for _, operationType := range schemaDef.OperationTypes {
		operation := operationType.Operation
		if _, exists := names[operation]; exists {
			return nil, NewValidationError(
				fmt.Sprintf("Must provide only one %s type in schema.", operation))
		}
		names[operation] = operationType.Type.Name.Value
	}
	return names, nil
}

// validateQueryRoot enforces that a schema has a way to reach a query root: either the schema
// definition declares one, or (absent a schema definition) the document defines a type named
// Query.
func validateQueryRoot(schemaDef *ast.SchemaDefinition, roots map[ast.OperationType]string, typeDefs map[string]ast.TypeDefinition) error {
	if schemaDef != nil {
		if _, ok := roots[ast.OperationTypeQuery]; ok {
			return nil
		}
	} else if _, ok := typeDefs["Query"]; ok {
		return nil
	}
	return NewValidationError("Must provide schema definition with query type or a type named Query.")
}
