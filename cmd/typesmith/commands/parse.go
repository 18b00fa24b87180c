package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/typesmith/typesmith"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	Verbose bool
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.BoolVar(&flags.Verbose, "verbose", false, "log parse details to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: typesmith parse [flags] <file|->\n\n")
		Writef(output, "Parse a schema document and print a structural summary.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  typesmith parse schemas.yaml\n")
		Writef(output, "  cat schemas.yaml | typesmith parse -\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Parsing successful\n")
		Writef(output, "  1    Parsing failed\n")
	}

	return fs, flags
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)
	logger := commandLogger(flags.Verbose)

	startTime := time.Now()
	doc, err := parseDocument(specPath, logger)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}
	totalTime := time.Since(startTime)

	fmt.Printf("Schema Document Parser\n")
	fmt.Printf("======================\n\n")
	fmt.Printf("typesmith version: %s\n", typesmith.Version())
	fmt.Printf("Document: %s\n", FormatSpecPath(specPath))
	if doc.Title != "" {
		fmt.Printf("Title: %s\n", doc.Title)
	}
	fmt.Printf("Format: %s\n", strings.ToLower(doc.SourceFormat.String()))
	fmt.Printf("Definitions: %d\n", len(doc.Definitions))
	fmt.Printf("Root Schema: %t\n", doc.Root != nil)
	fmt.Printf("Load Time: %v\n", totalTime)

	if names := doc.DefinitionNames(); len(names) > 0 {
		fmt.Printf("\nDefinitions:\n")
		for _, name := range names {
			s := doc.Definition(name).ActualSchema()
			switch {
			case s.IsEnumeration():
				fmt.Printf("  %s (enum, %d values)\n", name, len(s.Enum))
			case len(s.Properties) > 0:
				fmt.Printf("  %s (object, %d properties)\n", name, len(s.Properties))
			default:
				fmt.Printf("  %s\n", name)
			}
		}
	}

	fmt.Printf("\n✓ Parsing completed successfully\n")
	return nil
}
