package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/infgen/infgen/internal/config"
	"github.com/infgen/infgen/internal/generator"
	"github.com/infgen/infgen/internal/ui"
)

var (
	doctorModRoot     string
	doctorTemplateTag string
)

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the mod root and template files are in place",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor()
	},
}

func init() {
	doctorCmd.Flags().StringVar(&doctorModRoot, "mod-root", "", "Mod root directory (default: auto-detected)")
	doctorCmd.Flags().StringVar(&doctorTemplateTag, "template-tag", "BLR", "Template country tag whose files are checked")
	rootCmd.AddCommand(doctorCmd)
}

// runDoctor verifies that the mod root resolves and that every template file
// for the template tag exists under it.
func runDoctor() error {
	tag, err := config.ValidateTag(doctorTemplateTag)
	if err != nil {
		return err
	}

	ui.PrintHeader("Checking mod environment")

	root, err := config.ResolveModRoot(doctorModRoot)
	if err != nil {
		ui.PrintError("mod root", err.Error())
		return errors.New("environment check failed")
	}
	ui.PrintSuccess("mod root", root)

	ok := true

	entities := filepath.Join(root, "gfx", "entities")
	if info, err := os.Stat(entities); err != nil || !info.IsDir() {
		ui.PrintError("entities dir", entities)
		ok = false
	} else {
		ui.PrintSuccess("entities dir", entities)
	}

	for _, file := range generator.DefaultFiles {
		src := file.PathFor(root, tag)
		if _, err := os.Stat(src); err != nil {
			ui.PrintError(file.Label, src)
			ok = false
		} else {
			ui.PrintSuccess(file.Label, src)
		}
	}

	if !ok {
		return errors.New("environment check failed")
	}
	return nil
}
