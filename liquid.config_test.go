package liquid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ErrorModeNameWarn, cfg.ErrorMode)
	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestParseConfig(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("error_mode: strict\nmax_depth: 50\nlog_level: debug\n"))
		require.NoError(t, err)
		assert.Equal(t, "strict", cfg.ErrorMode)
		assert.Equal(t, 50, cfg.MaxDepth)
		assert.Equal(t, zapcore.DebugLevel, cfg.Level())
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("max_depth: 7\n"))
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.MaxDepth)
		assert.Equal(t, ErrorModeNameWarn, cfg.ErrorMode)
		assert.Equal(t, zapcore.InfoLevel, cfg.Level())
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := ParseConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	errorCases := []struct {
		name  string
		data  string
		field string
	}{
		{"malformed yaml", "max_depth: [", ""},
		{"invalid error mode", "error_mode: loud\n", ConfigFieldErrorMode},
		{"zero max depth", "max_depth: 0\n", ConfigFieldMaxDepth},
		{"negative max depth", "max_depth: -1\n", ConfigFieldMaxDepth},
		{"invalid log level", "log_level: chatty\n", ConfigFieldLogLevel},
	}

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, KindConfig, KindOf(err))
			field, _ := MetadataOf(err, MetaKeyField)
			assert.Equal(t, tt.field, field)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(dir, "liquid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("error_mode: lax\n"), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "lax", cfg.ErrorMode)

		opts := NewOptions(WithConfig(cfg))
		assert.Equal(t, ErrorModeLax, opts.ErrorMode())
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(dir, "missing.yaml")
		_, err := LoadConfig(path)
		require.Error(t, err)
		assert.Equal(t, KindConfig, KindOf(err))
		value, _ := MetadataOf(err, MetaKeyValue)
		assert.Equal(t, path, value)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestConfig_Level(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, (&Config{LogLevel: "warn"}).Level())
	assert.Equal(t, zapcore.InfoLevel, (&Config{LogLevel: "bogus"}).Level())
}
