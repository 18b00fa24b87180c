// Package commands provides CLI command handlers for typesmith.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/typesmith/typesmith/parser"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// FormatSpecPath returns a display-friendly path for the schema document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise the path as-is.
func FormatSpecPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// commandLogger returns the logger for a command run: a stderr slog adapter
// at debug level when verbose is set, a no-op logger otherwise.
func commandLogger(verbose bool) parser.Logger {
	if !verbose {
		return parser.NopLogger{}
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return parser.NewSlogAdapter(slog.New(handler))
}

// parseDocument parses a schema document from a file path or stdin.
func parseDocument(path string, logger parser.Logger) (*parser.Document, error) {
	if path == StdinFilePath {
		return parser.ParseWithOptions(
			parser.WithReader(os.Stdin),
			parser.WithLogger(logger),
		)
	}
	return parser.ParseWithOptions(
		parser.WithFilePath(path),
		parser.WithLogger(logger),
	)
}
