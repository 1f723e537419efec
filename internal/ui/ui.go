package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ANSI Colors
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorBold   = "\033[1m"
)

// out is swapped for a buffer in tests.
var out io.Writer = os.Stdout

func PrintHeader(msg string) {
	fmt.Fprintf(out, "\n%s%s%s\n", ColorBold, msg, ColorReset)
}

func PrintSuccess(label, detail string) {
	fmt.Fprintf(out, "  %s✔%s %-15s %s%s\n", ColorGreen, ColorReset, label, ColorGreen, detail+ColorReset)
}

func PrintError(label, detail string) {
	fmt.Fprintf(out, "  %s✘%s %-15s %s%s\n", ColorRed, ColorReset, label, ColorRed, detail+ColorReset)
}

func PrintWarning(label, detail string) {
	fmt.Fprintf(out, "  %s!%s %-15s %s%s\n", ColorYellow, ColorReset, label, ColorYellow, detail+ColorReset)
}

// Prompt asks the user for input with a label. A blank answer selects
// defaultValue. The prompt is printed as "Label [default]: " so the user
// can see what pressing enter will do.
func Prompt(r *bufio.Reader, label, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(out, "%s [%s]: ", label, defaultValue)
	} else {
		fmt.Fprintf(out, "%s: ", label)
	}
	fmt.Fprint(out, ColorCyan) // User input color
	line, err := r.ReadString('\n')
	fmt.Fprint(out, ColorReset)
	if err != nil && line == "" {
		return "", err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

// PromptYesNo asks a yes/no question and keeps asking until it gets an
// answer it understands. A blank answer selects defaultValue.
func PromptYesNo(r *bufio.Reader, label string, defaultValue bool) (bool, error) {
	hint := "y/N"
	if defaultValue {
		hint = "Y/n"
	}
	for {
		answer, err := Prompt(r, fmt.Sprintf("%s [%s]", label, hint), "")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return defaultValue, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(out, "Please answer with 'y' or 'n'.")
	}
}
