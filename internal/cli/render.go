package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ikey4u/concisemark/internal/fsutil"
	"github.com/ikey4u/concisemark/internal/logging"
	"github.com/ikey4u/concisemark/internal/ui/pretty"
	"github.com/ikey4u/concisemark/pkg/page"
)

type renderFlags struct {
	to     string
	output string
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a ConciseMark document to HTML or LaTeX",
		Long: `Render a ConciseMark document to HTML or LaTeX.

Reads from the given file, or from stdin when the file is "-" or omitted.

Examples:
  concisemark render post.md                 # HTML to stdout
  concisemark render post.md --to latex      # LaTeX to stdout
  concisemark render post.md -o post.html    # HTML to a file`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.to, "to", "html", "output format: html, latex")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write output to file instead of stdout")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	logger := logging.FromContext(cmd.Context())

	content, path, err := readInput(args)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	p := page.New(content)

	var out string
	switch flags.to {
	case "html":
		out = p.Render()
	case "latex":
		out = p.RenderLatex()
	default:
		return fmt.Errorf("%w: unknown output format %q (want html or latex)", errUsage, flags.to)
	}

	logger.Debug("rendered document",
		logging.FieldInput, path,
		logging.FieldFormat, flags.to,
	)

	if flags.output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	if err := fsutil.WriteAtomic(flags.output, []byte(out+"\n"), 0); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	color, _ := cmd.Flags().GetString("color")
	styles := pretty.NewStyles(pretty.ColorEnabled(color, cmd.OutOrStdout()))
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
		styles.Success.Render("rendered"),
		styles.Path.Render(path),
		styles.Dim.Render("→"),
		styles.Path.Render(flags.output),
	)
	return nil
}

// readInput returns the document content and a display name for it.
func readInput(args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", err
	}
	return string(data), args[0], nil
}
