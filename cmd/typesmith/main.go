// Command typesmith generates typed model declarations from JSON Schema and
// OpenAPI component schema documents.
package main

import (
	"fmt"
	"os"

	"github.com/typesmith/typesmith"
	"github.com/typesmith/typesmith/cmd/typesmith/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("typesmith v%s\n", typesmith.Version())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		if err := commands.HandleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "parse":
		if err := commands.HandleParse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`typesmith - schema to typed model generator

Usage:
  typesmith <command> [options]

Commands:
  generate    Generate typed model declarations from a schema document
  parse       Parse and summarize a schema document
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  typesmith generate -o Models.cs schemas.yaml
  typesmith generate -n PetStore.Models schemas.json
  typesmith parse schemas.yaml
  cat schemas.yaml | typesmith generate -

Run 'typesmith <command> --help' for more information on a command.`)
}
