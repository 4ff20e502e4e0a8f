// Package cli provides the Cobra command structure for the concisemark CLI.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ikey4u/concisemark/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root concisemark command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "concisemark",
		Short: "A simplified markdown renderer",
		Long: `concisemark parses the ConciseMark markdown dialect into a
position-indexed AST and renders it to HTML or LaTeX.

Documents may carry an optional front matter block (TOML inside an HTML
comment, or a YAML block) with title, date, authors and tags.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newMetaCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
