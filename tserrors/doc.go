// Package tserrors provides structured error types for typesmith.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: YAML/JSON parsing failures and structural issues
//   - ReferenceError: $ref resolution failures and circular references
//   - TemplateError: missing (language, template) registrations — always fatal
//   - ConfigError: Invalid configuration or input options
//
// # Usage with errors.As
//
//	result, err := generator.GenerateWithOptions(generator.WithFilePath("schemas.yaml"))
//	if err != nil {
//	    var tmplErr *tserrors.TemplateError
//	    if errors.As(err, &tmplErr) {
//	        // Packaging defect: a template set is missing or incomplete.
//	    }
//	}
package tserrors
