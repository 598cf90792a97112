package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/etdoc/internal/syntax"
)

func newInspectCmd(c *command) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "show how a document is classified and grouped",
		Long: `Inspect prints every line with its number and kind, followed by the
blocks the lines are grouped into and the key each block produces.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: mkRunE(c, func(c *command, cmd *cobra.Command, args []string) error {
			data, name, err := c.readInput(firstArg(args))
			if err != nil {
				return err
			}
			lines, err := syntax.SplitLines(string(data))
			if err != nil {
				return failure(name, err)
			}
			for _, l := range lines {
				fmt.Fprintf(c.out, "%d\t%s\t%s\n", l.Number, l.Kind, l.Content)
			}
			blocks, err := syntax.Group(lines)
			if err != nil {
				return failure(name, err)
			}
			fmt.Fprintln(c.out, "blocks:")
			for _, b := range blocks {
				key := b.Key()
				if b.IsQuery() {
					key = "~" + key
				}
				fmt.Fprintf(c.out, "%s\t%s\t%s\n", lineRange(b), b.Kind(), key)
			}
			return nil
		}),
	}
}

func lineRange(b syntax.Block) string {
	lines := b.Lines()
	first, last := lines[0].Number, lines[len(lines)-1].Number
	if first == last {
		return fmt.Sprint(first)
	}
	return fmt.Sprintf("%d-%d", first, last)
}
