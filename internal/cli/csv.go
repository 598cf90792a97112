package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/reoring/etdoc"
)

func newCSVCmd(c *command) *cobra.Command {
	return &cobra.Command{
		Use:   "csv [file]",
		Short: "print a document as path,value lines",
		Long: `Csv prints every attribute of a document as one "path,value" line, in
the order the document defines them. Values are not quoted.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: mkRunE(c, func(c *command, cmd *cobra.Command, args []string) error {
			doc, name, err := c.decodeInput(firstArg(args))
			if err != nil {
				return err
			}
			text, err := etdoc.EncodeCSV(doc)
			if err != nil {
				return failure(name, err)
			}
			_, err = io.WriteString(c.out, canonical(text))
			return err
		}),
	}
}
