package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ikey4u/concisemark/internal/ui/pretty"
	"github.com/ikey4u/concisemark/pkg/meta"
)

func newMetaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meta [file]",
		Short: "Print a document's front matter",
		Long: `Print the front matter of a ConciseMark document as YAML.

Reads from the given file, or from stdin when the file is "-" or omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runMeta,
	}

	return cmd
}

func runMeta(cmd *cobra.Command, args []string) error {
	content, path, err := readInput(args)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	color, _ := cmd.Flags().GetString("color")
	styles := pretty.NewStyles(pretty.ColorEnabled(color, cmd.OutOrStdout()))

	m, _ := meta.Parse(content)
	if m == nil {
		fmt.Fprintln(cmd.OutOrStdout(), styles.Dim.Render("no front matter in "+path))
		return nil
	}

	out, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode front matter: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.Title.Render(path))
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
