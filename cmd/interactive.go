package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/infgen/infgen/internal/config"
	"github.com/infgen/infgen/internal/replace"
	"github.com/infgen/infgen/internal/ui"
)

// promptForArgs collects the clone inputs through an interactive dialog and
// assembles them into the argument form understood by the root command, so
// interactive runs are parsed and validated exactly like flag-driven ones.
func promptForArgs(in io.Reader) ([]string, error) {
	r := bufio.NewReader(in)

	fmt.Println("Interactive mode. Press Ctrl+C to cancel; leave a field blank to accept the default.")

	newTag, err := promptTag(r, "New country tag", "")
	if err != nil {
		return nil, err
	}
	templateTag, err := promptTag(r, "Template tag", "BLR")
	if err != nil {
		return nil, err
	}
	root, err := ui.Prompt(r, "Mod root", config.DetectModRoot())
	if err != nil {
		return nil, err
	}
	meshPrefix, err := ui.Prompt(r, fmt.Sprintf("Mesh prefix [%s]", replace.MeshToken(newTag)), "")
	if err != nil {
		return nil, err
	}

	var extras []string
	for {
		extra, err := ui.Prompt(r, "Extra replacement (FROM=TO, blank to finish)", "")
		if err != nil {
			return nil, err
		}
		if extra == "" {
			break
		}
		extras = append(extras, extra)
	}

	dryRun, err := ui.PromptYesNo(r, "Preview only (dry run)?", false)
	if err != nil {
		return nil, err
	}
	force, err := ui.PromptYesNo(r, "Overwrite existing files if present?", false)
	if err != nil {
		return nil, err
	}

	args := []string{newTag}
	if templateTag != "" {
		args = append(args, "--template-tag", templateTag)
	}
	// "." keeps the auto-detection that runs at resolve time.
	if root != "." {
		args = append(args, "--mod-root", root)
	}
	if meshPrefix != "" {
		args = append(args, "--mesh-prefix", meshPrefix)
	}
	for _, extra := range extras {
		args = append(args, "--extra-replace", extra)
	}
	if dryRun {
		args = append(args, "--dry-run")
	}
	if force {
		args = append(args, "--force")
	}
	return args, nil
}

// promptTag keeps asking until the answer is a valid three-letter tag. An
// empty defaultValue makes the field required.
func promptTag(r *bufio.Reader, label, defaultValue string) (string, error) {
	for {
		answer, err := ui.Prompt(r, label, defaultValue)
		if err != nil {
			return "", err
		}
		tag, err := config.ValidateTag(answer)
		if err == nil {
			return tag, nil
		}
		fmt.Println("Please enter a three-letter tag.")
	}
}
