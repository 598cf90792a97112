package cli

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reoring/etdoc"
)

func newEncodeCmd(c *command) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "convert JSON or YAML to a canonical document",
		Long: `Encode reads a JSON or YAML mapping and prints it as canonical document
text. The "description" key becomes the comment section and "queries" (or
"query") the query section; every other key is flattened into sorted
dotted attributes.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: mkRunE(c, func(c *command, cmd *cobra.Command, args []string) error {
			data, name, err := c.readInput(firstArg(args))
			if err != nil {
				return err
			}
			var doc etdoc.Document
			switch from {
			case "json":
				err = json.Unmarshal(data, &doc)
			case "yaml":
				err = yaml.Unmarshal(data, &doc)
			default:
				return &ExitError{Code: 2, Message: fmt.Sprintf("invalid input format %q: must be 'json' or 'yaml'", from)}
			}
			if err != nil {
				return failure(name, err)
			}
			text, err := etdoc.Encode(&doc)
			if err != nil {
				return failure(name, err)
			}
			c.log.Debug("encoded document", "input", name, "format", from, "keys", doc.Len())
			_, err = io.WriteString(c.out, canonical(text))
			return err
		}),
	}
	cmd.Flags().StringVar(&from, "from", "json", "input format: json or yaml")
	return cmd
}
