package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/linelint/internal/lineending"
	"github.com/wizzomafizzo/linelint/internal/walker"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	assert.Equal(t, lineending.Auto, cfg.LineEnding)
	assert.True(t, cfg.FollowSymlinks)
	assert.True(t, cfg.GitIgnore)
	assert.True(t, cfg.GlobalGitIgnore)
	assert.Empty(t, cfg.Exclude)
	require.NoError(t, cfg.Validate())
}

func TestDefaultConfigYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := DefaultConfigYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "line_ending: auto")

	cfg, err := LoadFromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		want    *Config
		name    string
		input   string
		wantErr string
	}{
		{
			name:  "empty document keeps defaults",
			input: "",
			want:  DefaultConfig(),
		},
		{
			name: "partial document",
			input: `line_ending: windows
exclude:
  - "vendor/**"
  - "*.min.js"
`,
			want: func() *Config {
				cfg := DefaultConfig()
				cfg.LineEnding = lineending.WindowsPolicy
				cfg.Exclude = []string{"vendor/**", "*.min.js"}
				return cfg
			}(),
		},
		{
			name: "all fields",
			input: `line_ending: lf
follow_symlinks: false
gitignore: false
global_gitignore: false
logging:
  level: debug
  path: /tmp/linelint.log
`,
			want: &Config{
				LineEnding: lineending.UnixPolicy,
				Logging:    Logging{Level: "debug", Path: "/tmp/linelint.log"},
			},
		},
		{
			name:    "unknown line ending",
			input:   "line_ending: mac\n",
			wantErr: "unknown line ending policy",
		},
		{
			name:    "invalid glob",
			input:   "exclude:\n  - \"[abc\"\n",
			wantErr: "invalid glob pattern",
		},
		{
			name:    "empty glob",
			input:   "exclude:\n  - \"\"\n",
			wantErr: "pattern cannot be empty",
		},
		{
			name:    "invalid log level",
			input:   "logging:\n  level: loud\n",
			wantErr: "invalid log level",
		},
		{
			name:    "unknown field",
			input:   "rules:\n  - LineEnd\n",
			wantErr: "failed to parse config",
		},
		{
			name:    "malformed yaml",
			input:   "line_ending: [unterminated\n",
			wantErr: "failed to parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := LoadFromYAML([]byte(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestUnknownLineEndingIsSentinel(t *testing.T) {
	t.Parallel()

	_, err := LoadFromYAML([]byte("line_ending: mac\n"))
	require.ErrorIs(t, err, lineending.ErrUnknownPolicy)
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{name: "none", files: nil, want: ""},
		{name: "hidden only", files: []string{".linelint.yaml"}, want: ".linelint.yaml"},
		{name: "yml before yaml", files: []string{"linelint.yaml", "linelint.yml"}, want: "linelint.yml"},
		{name: "visible before hidden", files: []string{".linelint.yml", "linelint.yaml"}, want: "linelint.yaml"},
		{name: "hidden yml before hidden yaml", files: []string{".linelint.yaml", ".linelint.yml"}, want: ".linelint.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			require.NoError(t, fs.MkdirAll("/proj", 0o750))
			for _, name := range tt.files {
				require.NoError(t, afero.WriteFile(fs, filepath.Join("/proj", name), []byte("{}\n"), 0o600))
			}

			want := ""
			if tt.want != "" {
				want = filepath.Join("/proj", tt.want)
			}
			assert.Equal(t, want, Discover(fs, "/proj"))
		})
	}
}

func TestDiscoverIgnoresDirectories(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/proj/linelint.yml", 0o750))
	require.NoError(t, afero.WriteFile(fs, "/proj/.linelint.yml", []byte("{}\n"), 0o600))

	assert.Equal(t, filepath.Join("/proj", ".linelint.yml"), Discover(fs, "/proj"))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/proj", 0o750))
	require.NoError(t, afero.WriteFile(fs, "/proj/linelint.yml", []byte("line_ending: unix\n"), 0o600))
	require.NoError(t, afero.WriteFile(fs, "/proj/bad.yml", []byte("gitignore: maybe\n"), 0o600))

	t.Run("empty path returns defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := Load(fs, "")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()

		cfg, err := Load(fs, "/proj/linelint.yml")
		require.NoError(t, err)
		assert.Equal(t, lineending.UnixPolicy, cfg.LineEnding)
		assert.True(t, cfg.GitIgnore)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Load(fs, "/proj/missing.yml")
		require.ErrorIs(t, err, ErrConfigNotFound)
		assert.Contains(t, err.Error(), "/proj/missing.yml")
	})

	t.Run("invalid file names path", func(t *testing.T) {
		t.Parallel()

		_, err := Load(fs, "/proj/bad.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/proj/bad.yml")
		assert.Contains(t, err.Error(), "failed to parse config")
	})
}

func TestWalkerOptions(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Exclude = []string{"dist/**"}
	cfg.GlobalGitIgnore = false

	assert.Equal(t, walker.Options{
		Exclude:         []string{"dist/**"},
		FollowSymlinks:  true,
		GitIgnore:       true,
		GlobalGitIgnore: false,
	}, cfg.WalkerOptions())
}
