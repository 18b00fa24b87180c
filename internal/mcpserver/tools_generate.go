package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/typesmith/typesmith/generator"
)

type generateInput struct {
	Schema       schemaInput `json:"schema"                   jsonschema:"The schema document to generate types from"`
	Namespace    string      `json:"namespace,omitempty"      jsonschema:"Namespace for generated declarations (default: Generated)"`
	Language     string      `json:"language,omitempty"       jsonschema:"Target language template set (default: csharp)"`
	Output       string      `json:"output,omitempty"         jsonschema:"File path to write the generated source to instead of returning it inline"`
	ArrayType    string      `json:"array_type,omitempty"     jsonschema:"Container type for array schemas (default: ObservableCollection)"`
	DictType     string      `json:"dictionary_type,omitempty" jsonschema:"Container type for dictionary schemas (default: Dictionary)"`
	DateType     string      `json:"date_type,omitempty"      jsonschema:"Scalar type for date-formatted strings (default: DateTime)"`
	DateTimeType string      `json:"date_time_type,omitempty" jsonschema:"Scalar type for date-time-formatted strings (default: DateTime)"`
	NullableDict bool        `json:"nullable_dictionary_values,omitempty" jsonschema:"Mark dictionary value types nullable"`
}

type generateOutput struct {
	Namespace      string   `json:"namespace"`
	GeneratedTypes int      `json:"generated_types"`
	TypeNames      []string `json:"type_names"`
	WarningCount   int      `json:"warning_count"`
	Issues         []string `json:"issues,omitempty"`
	Source         string   `json:"source,omitempty"`
	OutputPath     string   `json:"output_path,omitempty"`
	SourceSize     int      `json:"source_size"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	doc, err := input.Schema.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	settings := generator.DefaultSettings()
	if input.ArrayType != "" {
		settings.ArrayType = input.ArrayType
	}
	if input.DictType != "" {
		settings.DictionaryType = input.DictType
	}
	if input.DateType != "" {
		settings.DateType = input.DateType
	}
	if input.DateTimeType != "" {
		settings.DateTimeType = input.DateTimeType
	}
	settings.NullableDictionaryValues = input.NullableDict

	opts := []generator.Option{
		generator.WithParsed(doc),
		generator.WithSettings(settings),
	}
	if namespace := firstNonEmpty(input.Namespace, cfg.Namespace); namespace != "" {
		opts = append(opts, generator.WithNamespace(namespace))
	}
	if language := firstNonEmpty(input.Language, cfg.Language); language != "" {
		opts = append(opts, generator.WithLanguage(language))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	output := generateOutput{
		Namespace:      result.Namespace,
		GeneratedTypes: result.GeneratedTypes,
		TypeNames:      result.TypeNames,
		WarningCount:   result.WarningCount,
		SourceSize:     len(result.Source),
	}
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, issue.String())
	}

	if input.Output != "" {
		if err := result.WriteFile(input.Output); err != nil {
			return errResult(fmt.Errorf("failed to write generated source: %w", err)), generateOutput{}, nil
		}
		output.OutputPath = input.Output
	} else {
		output.Source = result.Source
	}

	return nil, output, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
