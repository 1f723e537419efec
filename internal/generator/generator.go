// Package generator clones the template entity files for a new country tag.
package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/infgen/infgen/internal/config"
	"github.com/infgen/infgen/internal/replace"
)

// TemplateFile is one file cloned per country tag. Pattern is the
// slash-separated path under the mod root with a %s slot for the tag.
type TemplateFile struct {
	Pattern string
	Label   string
}

// PathFor returns the on-disk path of this file for the given tag.
func (f TemplateFile) PathFor(root, tag string) string {
	return filepath.Join(root, filepath.FromSlash(fmt.Sprintf(f.Pattern, tag)))
}

// DefaultFiles lists the infantry entity files cloned for every new tag.
var DefaultFiles = []TemplateFile{
	{Pattern: "gfx/entities/zzz_%s_infantry.gfx", Label: "Infantry gfx"},
	{Pattern: "gfx/entities/zzz_%s_infantry_asset.asset", Label: "Infantry asset"},
}

// Generate clones every template file from cfg.TemplateTag to cfg.NewTag,
// applying the tag substitution rules to each file's content.
//
// Parameters:
//   - cfg: The resolved run configuration.
//   - files: The template files to clone, processed in order.
//
// Returns:
//   - error: An error as soon as one file cannot be cloned. Files written in
//     earlier iterations are kept.
func Generate(cfg *config.Config, files []TemplateFile) error {
	rules := replace.Build(cfg.TemplateTag, cfg.NewTag, cfg.Extras)

	for _, file := range files {
		src := file.PathFor(cfg.ModRoot, cfg.TemplateTag)
		dst := file.PathFor(cfg.ModRoot, cfg.NewTag)

		if _, err := os.Stat(src); err != nil {
			return fmt.Errorf("template file %s not found: %w", src, os.ErrNotExist)
		}

		// Dry runs never fail on an existing target; force overwrites it.
		if !cfg.Force && !cfg.DryRun {
			if _, err := os.Stat(dst); err == nil {
				return fmt.Errorf("target file %s already exists (use --force to overwrite): %w", dst, os.ErrExist)
			}
		}

		data, err := os.ReadFile(src)
		if err != nil {
			return fmt.Errorf("reading %s: %w", src, err)
		}
		content := replace.Apply(string(data), rules, cfg.TemplateTag, cfg.MeshPrefix)

		if cfg.DryRun {
			fmt.Printf("[dry-run] Would write %s: %s\n", file.Label, dst)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(dst, []byte(content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}
		fmt.Printf("Created %s: %s\n", file.Label, dst)
	}

	return nil
}
