package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleParse_Success(t *testing.T) {
	schemaPath := writeTestSchema(t)
	assert.NoError(t, HandleParse([]string{schemaPath}))
}

func TestHandleParse_Verbose(t *testing.T) {
	schemaPath := writeTestSchema(t)
	assert.NoError(t, HandleParse([]string{"--verbose", schemaPath}))
}

func TestHandleParse_ArgErrors(t *testing.T) {
	t.Run("no args", func(t *testing.T) {
		err := HandleParse(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one file path")
	})

	t.Run("missing file", func(t *testing.T) {
		err := HandleParse([]string{"does-not-exist.yaml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing document")
	})
}
