// Package parser parses JSON Schema and OpenAPI component schema documents
// into a resolved schema graph.
//
// A parsed Document holds the named definitions of the source file plus an
// optional root schema. Every $ref in the graph is bound during parsing, so
// Schema.ActualSchema always yields the concrete node backing a reference;
// purely circular reference chains are rejected with a ReferenceError.
//
// Input may be YAML or JSON; the format is detected from the document's first
// non-whitespace byte. Named definitions are read from "definitions", "$defs",
// or "components.schemas", whichever the document provides.
//
// # Quick Start
//
//	doc, err := parser.ParseWithOptions(parser.WithFilePath("schemas.yaml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, name := range doc.DefinitionNames() {
//	    fmt.Println(name)
//	}
package parser
