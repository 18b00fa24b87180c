package mcpserver

import (
	"fmt"

	"github.com/typesmith/typesmith/parser"
)

// schemaInput represents the two ways a schema document can be provided to a
// tool. Exactly one of File or Content must be set.
type schemaInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a schema document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline schema document content (JSON or YAML)"`
}

// resolve parses the document from whichever input was provided.
func (s schemaInput) resolve() (*parser.Document, error) {
	count := 0
	if s.File != "" {
		count++
	}
	if s.Content != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file or content must be provided (got %d)", count)
	}

	if s.Content != "" {
		if int64(len(s.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set TYPESMITH_MAX_INLINE_SIZE to increase",
				len(s.Content), cfg.MaxInlineSize)
		}
		return parser.ParseWithOptions(parser.WithBytes([]byte(s.Content)))
	}
	return parser.ParseWithOptions(parser.WithFilePath(s.File))
}
