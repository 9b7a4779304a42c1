package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Load(t *testing.T) {
	t.Run("Should load defaults when nothing is set", func(t *testing.T) {
		cfg, err := NewService().Load()
		require.NoError(t, err)
		assert.Equal(t, "both", cfg.Format)
		assert.Equal(t, "|", cfg.Separator)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("Should apply environment overrides", func(t *testing.T) {
		t.Setenv("NARRATION_FORMAT", "csv")
		t.Setenv("NARRATION_LOG_LEVEL", "debug")
		cfg, err := NewService().Load()
		require.NoError(t, err)
		assert.Equal(t, "csv", cfg.Format)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("Should reject an invalid format", func(t *testing.T) {
		t.Setenv("NARRATION_FORMAT", "pdf")
		_, err := NewService().Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("Should reject a comma separator", func(t *testing.T) {
		t.Setenv("NARRATION_SEPARATOR", ",")
		_, err := NewService().Load()
		require.Error(t, err)
	})
}
