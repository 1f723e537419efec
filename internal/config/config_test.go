package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infgen/infgen/internal/replace"
)

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestValidateTag(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantError string
	}{
		{
			name:  "lowercase normalized",
			input: "lit",
			want:  "LIT",
		},
		{
			name:  "already uppercase",
			input: "LIT",
			want:  "LIT",
		},
		{
			name:  "mixed case",
			input: "bLr",
			want:  "BLR",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: " lit ",
			want:  "LIT",
		},
		{
			name:      "too short",
			input:     "LI",
			wantError: "three alphabetic characters",
		},
		{
			name:      "too long",
			input:     "LITH",
			wantError: "three alphabetic characters",
		},
		{
			name:      "digit",
			input:     "L1T",
			wantError: "three alphabetic characters",
		},
		{
			name:      "empty",
			input:     "",
			wantError: "three alphabetic characters",
		},
		{
			name:      "inner space",
			input:     "L T",
			wantError: "three alphabetic characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateTag(tt.input)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectModRoot(t *testing.T) {
	t.Run("prefers working directory containing gfx", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, "gfx"), 0755))
		chdir(t, root)

		got := DetectModRoot()
		want, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("falls back to working directory without gfx", func(t *testing.T) {
		root := t.TempDir()
		chdir(t, root)

		got := DetectModRoot()
		want, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("ignores a plain file named gfx", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "gfx"), []byte("x"), 0644))
		chdir(t, root)

		got := DetectModRoot()
		want, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestResolveModRoot(t *testing.T) {
	t.Run("existing directory", func(t *testing.T) {
		root := t.TempDir()
		got, err := ResolveModRoot(root)
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
		assert.DirExists(t, got)
	})

	t.Run("relative path is absolutized", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, "mymod"), 0755))
		chdir(t, root)

		got, err := ResolveModRoot("mymod")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
		assert.Equal(t, "mymod", filepath.Base(got))
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := ResolveModRoot(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("empty path auto-detects", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, "gfx"), 0755))
		chdir(t, root)

		got, err := ResolveModRoot("")
		require.NoError(t, err)
		want, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestResolve(t *testing.T) {
	root := t.TempDir()

	t.Run("normalizes tags and root", func(t *testing.T) {
		cfg := &Config{NewTag: "lit", TemplateTag: "blr", ModRoot: root}
		require.NoError(t, Resolve(cfg))
		assert.Equal(t, "LIT", cfg.NewTag)
		assert.Equal(t, "BLR", cfg.TemplateTag)
		assert.True(t, filepath.IsAbs(cfg.ModRoot))
	})

	t.Run("rejects bad new tag", func(t *testing.T) {
		cfg := &Config{NewTag: "TOOLONG", TemplateTag: "BLR", ModRoot: root}
		err := Resolve(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "three alphabetic characters")
	})

	t.Run("rejects bad template tag", func(t *testing.T) {
		cfg := &Config{NewTag: "LIT", TemplateTag: "B2R", ModRoot: root}
		err := Resolve(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "three alphabetic characters")
	})

	t.Run("rejects missing root", func(t *testing.T) {
		cfg := &Config{NewTag: "LIT", TemplateTag: "BLR", ModRoot: filepath.Join(root, "missing")}
		err := Resolve(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})
}

func TestApplyDefaults(t *testing.T) {
	t.Run("derives mesh prefix from new tag", func(t *testing.T) {
		cfg := &Config{NewTag: "LIT"}
		ApplyDefaults(cfg)
		assert.Equal(t, replace.MeshToken("LIT"), cfg.MeshPrefix)
	})

	t.Run("keeps explicit mesh prefix", func(t *testing.T) {
		cfg := &Config{NewTag: "LIT", MeshPrefix: "MI_CUSTOM"}
		ApplyDefaults(cfg)
		assert.Equal(t, "MI_CUSTOM", cfg.MeshPrefix)
	})
}
