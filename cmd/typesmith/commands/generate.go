package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/typesmith/typesmith"
	"github.com/typesmith/typesmith/generator"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Output    string
	Namespace string
	Language  string
	Verbose   bool

	// Target type mapping options
	ArrayType      string
	DictionaryType string
	DateType       string
	DateTimeType   string
	TimeType       string
	TimeSpanType   string
	AnyType        string
	NullableDict   bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Namespace, "n", "", "namespace for generated declarations (default: Generated)")
	fs.StringVar(&flags.Namespace, "namespace", "", "namespace for generated declarations (default: Generated)")
	fs.StringVar(&flags.Language, "language", "", "target language template set (default: csharp)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log parse and generation details to stderr")

	defaults := generator.DefaultSettings()
	fs.StringVar(&flags.ArrayType, "array-type", defaults.ArrayType, "container type for array schemas")
	fs.StringVar(&flags.DictionaryType, "dictionary-type", defaults.DictionaryType, "container type for dictionary schemas")
	fs.StringVar(&flags.DateType, "date-type", defaults.DateType, "scalar type for date-formatted strings")
	fs.StringVar(&flags.DateTimeType, "date-time-type", defaults.DateTimeType, "scalar type for date-time-formatted strings")
	fs.StringVar(&flags.TimeType, "time-type", defaults.TimeType, "scalar type for time-formatted strings")
	fs.StringVar(&flags.TimeSpanType, "time-span-type", defaults.TimeSpanType, "scalar type for duration-formatted strings")
	fs.StringVar(&flags.AnyType, "any-type", defaults.AnyType, "type for unconstrained schemas")
	fs.BoolVar(&flags.NullableDict, "nullable-dictionary-values", false, "mark dictionary value types nullable")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: typesmith generate [flags] <file|->\n\n")
		Writef(output, "Generate typed model declarations from a JSON Schema or OpenAPI component schema document.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  typesmith generate -o Models.cs schemas.yaml\n")
		Writef(output, "  typesmith generate -n PetStore.Models -o Models.cs schemas.json\n")
		Writef(output, "  typesmith generate --date-time-type DateTimeOffset schemas.yaml\n")
		Writef(output, "  cat schemas.yaml | typesmith generate -\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  Use '-' as the file path to read the schema document from stdin.\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)
	logger := commandLogger(flags.Verbose)

	settings := generator.DefaultSettings()
	settings.ArrayType = flags.ArrayType
	settings.DictionaryType = flags.DictionaryType
	settings.DateType = flags.DateType
	settings.DateTimeType = flags.DateTimeType
	settings.TimeType = flags.TimeType
	settings.TimeSpanType = flags.TimeSpanType
	settings.AnyType = flags.AnyType
	settings.NullableDictionaryValues = flags.NullableDict

	startTime := time.Now()
	doc, err := parseDocument(specPath, logger)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	genOpts := []generator.Option{
		generator.WithParsed(doc),
		generator.WithSettings(settings),
		generator.WithLogger(logger),
	}
	if flags.Namespace != "" {
		genOpts = append(genOpts, generator.WithNamespace(flags.Namespace))
	}
	if flags.Language != "" {
		genOpts = append(genOpts, generator.WithLanguage(flags.Language))
	}

	result, err := generator.GenerateWithOptions(genOpts...)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("generating types: %w", err)
	}

	if flags.Output != "" {
		Writef(os.Stderr, "Schema Type Generator\n")
		Writef(os.Stderr, "=====================\n\n")
		Writef(os.Stderr, "typesmith version: %s\n", typesmith.Version())
		Writef(os.Stderr, "Document: %s\n", FormatSpecPath(specPath))
		Writef(os.Stderr, "Namespace: %s\n", result.Namespace)
		Writef(os.Stderr, "Types: %d\n", result.GeneratedTypes)
		Writef(os.Stderr, "Total Time: %v\n\n", totalTime)
	}

	if len(result.Issues) > 0 {
		Writef(os.Stderr, "Generation Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			Writef(os.Stderr, "  %s\n", issue.String())
		}
		Writef(os.Stderr, "\n")
	}

	if flags.Output != "" {
		if err := result.WriteFile(flags.Output); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		Writef(os.Stderr, "✓ Generated %d type(s)", result.GeneratedTypes)
		if result.WarningCount > 0 {
			Writef(os.Stderr, " with %d warning(s)", result.WarningCount)
		}
		Writef(os.Stderr, "\nOutput written to: %s\n", flags.Output)
		return nil
	}

	// No output file: write the generated source to stdout for pipelining.
	if _, err := os.Stdout.WriteString(result.Source); err != nil {
		return fmt.Errorf("writing generated source to stdout: %w", err)
	}
	return nil
}
