package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	c := loadConfig()
	assert.Equal(t, int64(4*1024*1024), c.MaxInlineSize)
	assert.Empty(t, c.Namespace)
	assert.Empty(t, c.Language)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TYPESMITH_MAX_INLINE_SIZE", "1024")
	t.Setenv("TYPESMITH_NAMESPACE", "Acme.Models")

	c := loadConfig()
	assert.Equal(t, int64(1024), c.MaxInlineSize)
	assert.Equal(t, "Acme.Models", c.Namespace)
}

func TestEnvInt64_Invalid(t *testing.T) {
	t.Setenv("TYPESMITH_MAX_INLINE_SIZE", "not-a-number")
	assert.Equal(t, int64(42), envInt64("TYPESMITH_MAX_INLINE_SIZE", 42))

	t.Setenv("TYPESMITH_MAX_INLINE_SIZE", "-5")
	assert.Equal(t, int64(42), envInt64("TYPESMITH_MAX_INLINE_SIZE", 42))
}
