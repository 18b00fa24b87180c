package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/typesmith/typesmith/parser"
)

type parseInput struct {
	Schema schemaInput `json:"schema" jsonschema:"The schema document to parse"`
}

type definitionSummary struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Description string `json:"description,omitempty"`
	Properties  int    `json:"properties,omitempty"`
	EnumValues  int    `json:"enum_values,omitempty"`
}

type parseOutput struct {
	Title           string              `json:"title,omitempty"`
	Format          string              `json:"format"`
	DefinitionCount int                 `json:"definition_count"`
	Definitions     []definitionSummary `json:"definitions,omitempty"`
	HasRootSchema   bool                `json:"has_root_schema"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	doc, err := input.Schema.resolve()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	output := parseOutput{
		Title:           doc.Title,
		Format:          strings.ToLower(doc.SourceFormat.String()),
		DefinitionCount: len(doc.Definitions),
		HasRootSchema:   doc.Root != nil,
	}
	for _, name := range doc.DefinitionNames() {
		s := doc.Definition(name).ActualSchema()
		output.Definitions = append(output.Definitions, definitionSummary{
			Name:        name,
			Kind:        schemaKind(s),
			Description: truncateText(s.Description, 200),
			Properties:  len(s.Properties),
			EnumValues:  len(s.Enum),
		})
	}

	return nil, output, nil
}

// schemaKind classifies a definition for the structural summary.
func schemaKind(s *parser.Schema) string {
	switch {
	case s.IsEnumeration():
		return "enum"
	case s.IsDictionary():
		return "dictionary"
	case s.HasType(parser.TypeArray):
		return "array"
	case s.HasType(parser.TypeObject), len(s.Properties) > 0, len(s.AllOf) > 0:
		return "object"
	case len(s.Type) > 0:
		return string(s.Type[0])
	default:
		return "any"
	}
}
