// This file implements the generation entry point: input selection via
// functional options, one full resolve-and-render run over the registry, and
// assembly of the final source text.

package generator

import (
	"strings"
	"time"

	"github.com/typesmith/typesmith"
	"github.com/typesmith/typesmith/internal/issues"
	"github.com/typesmith/typesmith/internal/severity"
	"github.com/typesmith/typesmith/parser"
	"github.com/typesmith/typesmith/tserrors"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates permissive fallbacks taken for ambiguous schemas
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical indicates features that cannot be generated
	SeverityCritical = severity.SeverityCritical
)

// GenerateIssue represents a single generation issue or limitation
type GenerateIssue = issues.Issue

// inheritanceConverterMarker is the sentinel type name whose textual presence
// in rendered output opts the run into the shared support-type block.
const inheritanceConverterMarker = "JsonInheritanceConverter"

// defaultLanguage selects the embedded template set used when no language is
// configured.
const defaultLanguage = "csharp"

// GenerateResult contains the results of generating types from a schema document
type GenerateResult struct {
	// Source is the complete generated source text
	Source string
	// Namespace is the namespace used in generation
	Namespace string
	// TypeNames lists the generated type names in declaration order
	TypeNames []string
	// GeneratedTypes is the count of types generated
	GeneratedTypes int
	// Issues contains all generation issues in the order they were found
	Issues []GenerateIssue
	// WarningCount is the total number of warnings
	WarningCount int
	// GenerateTime is the time taken to resolve and render
	GenerateTime time.Duration
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Option configures a generation run.
type Option func(*generateConfig) error

// generateConfig holds the configuration assembled from options.
type generateConfig struct {
	filePath  *string
	parsed    *parser.Document
	settings  *Settings
	namespace string
	language  string
	logger    parser.Logger
}

// WithFilePath reads and parses the schema document from the given file path.
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithParsed generates from an already parsed document.
func WithParsed(doc *parser.Document) Option {
	return func(cfg *generateConfig) error {
		cfg.parsed = doc
		return nil
	}
}

// WithSettings replaces the default target-language settings.
func WithSettings(settings *Settings) Option {
	return func(cfg *generateConfig) error {
		if settings == nil {
			return &tserrors.ConfigError{Option: "settings", Message: "cannot be nil"}
		}
		cfg.settings = settings
		return nil
	}
}

// WithNamespace sets the namespace for generated declarations.
func WithNamespace(namespace string) Option {
	return func(cfg *generateConfig) error {
		if namespace == "" {
			return &tserrors.ConfigError{Option: "namespace", Message: "cannot be empty"}
		}
		cfg.namespace = namespace
		return nil
	}
}

// WithLanguage selects the template set. The default is "csharp". Requesting
// a language with no registered templates fails the run with a TemplateError
// at render time.
func WithLanguage(language string) Option {
	return func(cfg *generateConfig) error {
		if language == "" {
			return &tserrors.ConfigError{Option: "language", Message: "cannot be empty"}
		}
		cfg.language = language
		return nil
	}
}

// WithLogger sets the logger for the run. The default is NopLogger.
func WithLogger(l parser.Logger) Option {
	return func(cfg *generateConfig) error {
		if l == nil {
			return &tserrors.ConfigError{Option: "logger", Message: "cannot be nil"}
		}
		cfg.logger = l
		return nil
	}
}

// fileModel is the rendering model for the outer file template.
type fileModel struct {
	Version   string
	Namespace string
	Body      string
}

// GenerateWithOptions runs one full generation: parse (if needed), resolve
// every definition and the root schema, drain the registry, and assemble the
// final source text.
//
// There is no partial-success mode: the run either yields complete output or
// returns an error and the caller must discard the run.
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg := &generateConfig{
		language: defaultLanguage,
		logger:   parser.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	sources := 0
	if cfg.filePath != nil {
		sources++
	}
	if cfg.parsed != nil {
		sources++
	}
	if sources == 0 {
		return nil, &tserrors.ConfigError{Message: "must specify an input source"}
	}
	if sources > 1 {
		return nil, &tserrors.ConfigError{Message: "must specify exactly one input source"}
	}

	doc := cfg.parsed
	if cfg.filePath != nil {
		parsed, err := parser.ParseWithOptions(
			parser.WithFilePath(*cfg.filePath),
			parser.WithLogger(cfg.logger),
		)
		if err != nil {
			return nil, err
		}
		doc = parsed
	}

	settings := cfg.settings
	if settings == nil {
		settings = DefaultSettings()
	}
	if cfg.namespace != "" {
		// Copy before overriding so a Settings value shared across runs is
		// never mutated.
		copied := *settings
		copied.Namespace = cfg.namespace
		settings = &copied
	}

	start := time.Now()
	resolver := NewTypeResolver(settings, cfg.language)

	for _, name := range doc.DefinitionNames() {
		resolver.Resolve(doc.Definitions[name], false, name)
	}
	if doc.Root != nil {
		hint := doc.Title
		if hint == "" {
			hint = "Anonymous"
		}
		resolver.Resolve(doc.Root, false, hint)
	}

	body, err := drainRegistry(resolver)
	if err != nil {
		return nil, err
	}

	if strings.Contains(body, inheritanceConverterMarker) {
		converter, err := renderTemplate(cfg.language, "inheritance_converter", nil)
		if err != nil {
			return nil, err
		}
		body += converter
	}

	source, err := renderTemplate(cfg.language, "file", fileModel{
		Version:   typesmith.Version(),
		Namespace: settings.Namespace,
		Body:      indentLines(body, "    "),
	})
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		Source:         source,
		Namespace:      settings.Namespace,
		TypeNames:      resolver.Registry().Names(),
		GeneratedTypes: resolver.Registry().Len(),
		Issues:         resolver.Issues(),
		GenerateTime:   time.Since(start),
	}
	for _, issue := range result.Issues {
		if issue.Severity == SeverityWarning {
			result.WarningCount++
		}
	}

	cfg.logger.Info("generation complete",
		"types", result.GeneratedTypes,
		"warnings", result.WarningCount,
		"duration", result.GenerateTime,
	)
	return result, nil
}

// drainRegistry renders every registry entry in insertion order. Rendering an
// entry may reserve further types, which append to the registry, so the loop
// re-reads the length each pass until it reaches a fix point.
func drainRegistry(resolver *TypeResolver) (string, error) {
	var body strings.Builder
	registry := resolver.Registry()
	for i := 0; i < registry.Len(); i++ {
		name, gen := registry.At(i)
		text, err := gen.Render(name)
		if err != nil {
			return "", err
		}
		body.WriteString(text)
		body.WriteString("\n")
	}
	return body.String(), nil
}

// indentLines prefixes every non-empty line with the given indent.
func indentLines(text, indent string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}
