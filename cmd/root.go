package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/infgen/infgen/internal/config"
	"github.com/infgen/infgen/internal/generator"
	"github.com/infgen/infgen/internal/replace"
)

var (
	cloneTemplateTag  string
	cloneModRoot      string
	cloneMeshPrefix   string
	cloneExtraReplace []string
	cloneDryRun       bool
	cloneForce        bool
)

// rootCmd represents the base command. The clone operation is the command
// itself rather than a subcommand, so `infgen LIT` is a complete invocation.
var rootCmd = &cobra.Command{
	Use:   "infgen <new-tag>",
	Short: "Clone infantry gfx and asset templates for a new country tag",
	Long: `infgen clones the infantry entity template files of an existing country
tag to a new tag, rewriting every tag reference in the file names and the
file contents.

Examples:
  infgen LIT
  infgen LIT --template-tag BLR --dry-run
  infgen LIT --mesh-prefix MI_LIT_SPECIAL --extra-replace "Belarus=Lithuania"`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClone(args)
	},
}

// Execute runs the root command. When the process is started without any
// arguments the flags are first collected through the interactive prompt
// sequence, so both entry paths go through the same parser.
func Execute() {
	if len(os.Args) <= 1 {
		args, err := promptForArgs(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		rootCmd.SetArgs(args)
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init initializes the root command flags.
func init() {
	rootCmd.Flags().StringVar(&cloneTemplateTag, "template-tag", "BLR", "Template country tag to copy from")
	rootCmd.Flags().StringVar(&cloneModRoot, "mod-root", "", "Mod root directory (default: auto-detected)")
	rootCmd.Flags().StringVar(&cloneMeshPrefix, "mesh-prefix", "", "Mesh name prefix for the new tag (default: MI_<new-tag>)")
	rootCmd.Flags().StringArrayVar(&cloneExtraReplace, "extra-replace", nil, "Extra replacement in FROM=TO form (repeatable)")
	rootCmd.Flags().BoolVar(&cloneDryRun, "dry-run", false, "Preview actions without writing any files")
	rootCmd.Flags().BoolVar(&cloneForce, "force", false, "Overwrite existing target files")
}

// runClone builds the run configuration from the parsed flags and clones the
// template files.
func runClone(args []string) error {
	cfg := &config.Config{
		NewTag:      args[0],
		TemplateTag: cloneTemplateTag,
		ModRoot:     cloneModRoot,
		MeshPrefix:  cloneMeshPrefix,
		DryRun:      cloneDryRun,
		Force:       cloneForce,
	}
	for _, raw := range cloneExtraReplace {
		rule, err := replace.ParseRule(raw)
		if err != nil {
			return err
		}
		cfg.Extras = append(cfg.Extras, rule)
	}

	if err := config.Resolve(cfg); err != nil {
		return err
	}
	config.ApplyDefaults(cfg)

	return generator.Generate(cfg, generator.DefaultFiles)
}
