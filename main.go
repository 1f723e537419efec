package main

import "github.com/infgen/infgen/cmd"

// main is the entry point of the infgen CLI application.
// It executes the root command which handles argument parsing and falls back
// to interactive prompting when no arguments are given.
func main() {
	cmd.Execute()
}
