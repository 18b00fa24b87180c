package mcpserver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaInput_ExactlyOneSource(t *testing.T) {
	_, err := schemaInput{}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content")

	_, err = schemaInput{File: "a.yaml", Content: "{}"}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 2")
}

func TestSchemaInput_InlineSizeLimit(t *testing.T) {
	original := cfg.MaxInlineSize
	cfg.MaxInlineSize = 64
	t.Cleanup(func() { cfg.MaxInlineSize = original })

	_, err := schemaInput{Content: strings.Repeat("a", 100)}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestSchemaInput_Content(t *testing.T) {
	doc, err := schemaInput{Content: `{"definitions": {"A": {"type": "object"}}}`}.resolve()
	require.NoError(t, err)
	assert.Len(t, doc.Definitions, 1)
}
