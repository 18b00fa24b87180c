// Package typesmith provides tools for generating C# model declarations from
// JSON Schema and OpenAPI component schema documents.
//
// typesmith parses a schema document (YAML or JSON), resolves the schema graph
// including $ref indirection and reference cycles, and emits a single C# source
// text containing one declaration per named type: partial classes for object
// schemas and enums for enumeration schemas.
//
// # Overview
//
// The library consists of two primary packages:
//
//   - parser: Parse schema documents and resolve the schema graph
//   - generator: Resolve schema nodes to C# type expressions and render declarations
//
// # Quick Start
//
// Generate C# models from a schema document:
//
//	import "github.com/typesmith/typesmith/generator"
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("schemas.yaml"),
//		generator.WithNamespace("PetStore.Models"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Source)
//
// Parse a schema document without generating:
//
//	import "github.com/typesmith/typesmith/parser"
//
//	doc, err := parser.ParseWithOptions(parser.WithFilePath("schemas.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("definitions: %d\n", len(doc.Definitions))
//
// # Error Handling
//
// Structured errors live in the tserrors package and support errors.Is and
// errors.As. Template lookup failures are fatal configuration errors; malformed
// schema nodes are never fatal and degrade to the most permissive C# type.
package typesmith
