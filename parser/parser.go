// This file implements the parse entry point: input source selection via
// functional options, source format detection, and document decoding.

package parser

import (
	"bytes"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/typesmith/typesmith/tserrors"
	"go.yaml.in/yaml/v4"
)

// SourceFormat identifies the serialization format of a source document.
type SourceFormat int

// Source document formats.
const (
	FormatUnknown SourceFormat = iota
	FormatJSON
	FormatYAML
)

// String returns the format name.
func (f SourceFormat) String() string {
	switch f {
	case FormatJSON:
		return "JSON"
	case FormatYAML:
		return "YAML"
	default:
		return "unknown"
	}
}

// Option configures a parse run.
type Option func(*parseConfig) error

// parseConfig holds the configuration assembled from options.
type parseConfig struct {
	filePath *string
	data     []byte
	haveData bool
	logger   Logger
}

// WithFilePath reads the document from the given file path.
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithBytes parses the document from the given byte slice.
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		cfg.data = data
		cfg.haveData = true
		return nil
	}
}

// WithReader parses the document read from r.
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return &tserrors.ParseError{Message: "failed to read input", Cause: err}
		}
		cfg.data = data
		cfg.haveData = true
		return nil
	}
}

// WithLogger sets the logger used during parsing and reference binding.
// The default is NopLogger.
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		if l == nil {
			return &tserrors.ConfigError{Option: "logger", Message: "cannot be nil"}
		}
		cfg.logger = l
		return nil
	}
}

// ParseWithOptions parses a schema document and binds its reference graph.
// Exactly one input source (file path, bytes, or reader) must be specified.
func ParseWithOptions(opts ...Option) (*Document, error) {
	cfg := &parseConfig{logger: NopLogger{}}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	sources := 0
	if cfg.filePath != nil {
		sources++
	}
	if cfg.haveData {
		sources++
	}
	if sources == 0 {
		return nil, &tserrors.ConfigError{Message: "must specify an input source"}
	}
	if sources > 1 {
		return nil, &tserrors.ConfigError{Message: "must specify exactly one input source"}
	}

	data := cfg.data
	sourceName := ""
	if cfg.filePath != nil {
		sourceName = *cfg.filePath
		fileData, err := os.ReadFile(*cfg.filePath)
		if err != nil {
			return nil, &tserrors.ParseError{Path: sourceName, Message: "failed to read file", Cause: err}
		}
		data = fileData
	}

	return parseBytes(data, sourceName, cfg.logger)
}

// parseBytes decodes a document and binds its reference graph.
func parseBytes(data []byte, sourceName string, logger Logger) (*Document, error) {
	raw, format, err := decodeMap(data)
	if err != nil {
		return nil, &tserrors.ParseError{Path: sourceName, Message: "invalid document", Cause: err}
	}
	logger.Debug("decoded document", "format", format.String(), "source", sourceName)

	doc := documentFromMap(raw)
	doc.SourceFormat = format
	if err := newRefResolver(doc, logger).bindAll(); err != nil {
		return nil, err
	}
	logger.Info("parsed document",
		"definitions", len(doc.Definitions),
		"hasRoot", doc.Root != nil,
	)
	return doc, nil
}

// decodeMap decodes raw document bytes into a generic map. JSON documents
// take the go-json fast path; everything else goes through the YAML decoder
// (which also accepts JSON, but slower).
func decodeMap(data []byte) (map[string]any, SourceFormat, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var raw map[string]any
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, FormatJSON, err
		}
		return raw, FormatJSON, nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, FormatYAML, err
	}
	return raw, FormatYAML, nil
}
