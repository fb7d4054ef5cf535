package logging

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers
func createTestConfig(writer *strings.Builder) Config {
	return Config{
		Writer: writer,
		Root:   "/tmp/project",
		Level:  InfoLevel,
	}
}

func TestGet_WithoutLogger(t *testing.T) {
	t.Parallel()

	logger := Get(context.Background())

	require.NotNil(t, logger)
	// When no logger is attached, zerolog.Ctx returns a disabled logger
	require.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNew_WithCustomWriter(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ctx, err := New(context.Background(), nil, createTestConfig(&buf))

	require.NoError(t, err)
	require.NotNil(t, ctx)

	logger := Get(ctx)
	require.NotNil(t, logger)
	assert.Equal(t, InfoLevel, logger.GetLevel())

	logger.Info().Str("component", "test").Msg("hello")
	assert.Contains(t, buf.String(), `"root":"/tmp/project"`)
	assert.Contains(t, buf.String(), `"component":"test"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestNew_LevelFiltersEntries(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ctx, err := New(context.Background(), nil, createTestConfig(&buf))
	require.NoError(t, err)

	Get(ctx).Debug().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestNew_ConsoleMirror(t *testing.T) {
	t.Parallel()

	var file, console strings.Builder
	config := createTestConfig(&file)
	config.Console = &console
	config.Level = DebugLevel

	ctx, err := New(context.Background(), nil, config)
	require.NoError(t, err)

	Get(ctx).Debug().Msg("mirrored entry")
	assert.Contains(t, file.String(), "mirrored entry")
	assert.Contains(t, console.String(), "mirrored entry")
	assert.NotContains(t, console.String(), `"message"`, "console output is human readable")
}

func TestNew_NoWriterNoFilesystem_ReturnsError(t *testing.T) {
	t.Parallel()

	config := Config{Level: InfoLevel}

	ctx, err := New(context.Background(), nil, config)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "filesystem required when no writer provided")
	assert.Nil(t, ctx)
}

func TestNew_FileWriterWithExplicitPath(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "linelint.log")
	ctx, err := New(context.Background(), afero.NewOsFs(), Config{
		Path:  logPath,
		Level: InfoLevel,
	})
	require.NoError(t, err)

	Get(ctx).Info().Msg("to file")

	data, err := afero.ReadFile(afero.NewOsFs(), logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNew_StorageFailure(t *testing.T) {
	t.Parallel()

	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	_, err := New(context.Background(), fs, Config{Level: InfoLevel})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get log path")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    zerolog.Level
		wantErr bool
	}{
		{name: "empty defaults to info", input: "", want: InfoLevel},
		{name: "debug", input: "debug", want: DebugLevel},
		{name: "mixed case", input: " WARN ", want: WarnLevel},
		{name: "trace", input: "trace", want: TraceLevel},
		{name: "unknown", input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid log level")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
