// Package cmd holds the cobra command tree of the latc CLI (SPEC_FULL.md
// §A), the way go-dws's cmd/dwscript/cmd builds its root+subcommand tree.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is the reported build version; latc version / --version print
// it. No build-flag injection pipeline exists yet, so it stays a constant.
const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "latc [file]",
	Short:   "Latte compiler: emits LLVM IR for a Latte source file",
	Long:    `latc compiles a Latte (.lat) program to textual LLVM IR targeting lib/runtime.bc.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		// Bare `latc input.lat` mirrors spec.md §6's CLI signature without
		// requiring the explicit `compile` subcommand.
		return runCompile(c, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addCompileFlags(rootCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(versionCmd)
}
