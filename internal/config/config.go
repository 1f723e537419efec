package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/infgen/infgen/internal/replace"
)

// Config is the fully resolved set of inputs for one clone run. It is built
// either from command line flags or from the interactive prompt sequence;
// both paths end in Resolve and ApplyDefaults.
type Config struct {
	// NewTag is the three-letter country tag being created.
	NewTag string
	// TemplateTag is the source country tag whose files are cloned.
	TemplateTag string
	// ModRoot is the mod root directory. Empty means auto-detect.
	ModRoot string
	// MeshPrefix replaces occurrences of the template's mesh token.
	// Empty means derive MI_<NewTag>.
	MeshPrefix string
	// Extras are user replacements applied after the automatic ones.
	Extras []replace.Rule
	// DryRun reports intended writes without touching the filesystem.
	DryRun bool
	// Force overwrites target files that already exist.
	Force bool
}

// ValidateTag checks that value is a three-letter alphabetic country tag and
// returns it normalized to upper case. Surrounding whitespace is ignored.
func ValidateTag(value string) (string, error) {
	tag := strings.ToUpper(strings.TrimSpace(value))
	if utf8.RuneCountInString(tag) != 3 || !isAlpha(tag) {
		return "", fmt.Errorf("country tags must be three alphabetic characters (got %q)", value)
	}
	return tag, nil
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// DetectModRoot returns the first of the working directory, the executable's
// directory and its parent that contains a subdirectory named gfx, falling
// back to the working directory.
func DetectModRoot() string {
	var candidates []string

	cwd, err := os.Getwd()
	if err == nil {
		candidates = append(candidates, cwd)
	}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		candidates = append(candidates, dir, filepath.Dir(dir))
	}

	for _, c := range candidates {
		if info, err := os.Stat(filepath.Join(c, "gfx")); err == nil && info.IsDir() {
			return c
		}
	}

	if cwd == "" {
		return "."
	}
	return cwd
}

// ResolveModRoot expands and absolutizes path and verifies it exists on disk.
// An empty path means auto-detect.
func ResolveModRoot(path string) (string, error) {
	if path == "" {
		path = DetectModRoot()
	}
	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", fmt.Errorf("resolve mod root %q: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("mod root %q does not exist", abs)
		}
		return "", fmt.Errorf("mod root %q: %w", abs, err)
	}
	return abs, nil
}

// expandHome substitutes a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Resolve normalizes the country tags and the mod root in place, verifying
// every field that can fail. Call it before ApplyDefaults: the derived mesh
// prefix depends on the normalized new tag.
func Resolve(cfg *Config) error {
	tag, err := ValidateTag(cfg.NewTag)
	if err != nil {
		return err
	}
	cfg.NewTag = tag

	tag, err = ValidateTag(cfg.TemplateTag)
	if err != nil {
		return err
	}
	cfg.TemplateTag = tag

	root, err := ResolveModRoot(cfg.ModRoot)
	if err != nil {
		return err
	}
	cfg.ModRoot = root
	return nil
}

// ApplyDefaults fills derived defaults for fields the user left unset.
func ApplyDefaults(cfg *Config) {
	if cfg.MeshPrefix == "" {
		cfg.MeshPrefix = replace.MeshToken(cfg.NewTag)
	}
}
