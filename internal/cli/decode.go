package cli

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reoring/etdoc"
)

func newDecodeCmd(c *command) *cobra.Command {
	var (
		format  string
		decimal bool
	)
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "convert a document to JSON or YAML",
		Long: `Decode parses a document and prints it as JSON or YAML. Key order is
kept; comments appear under "description" and queries under "queries".

With --decimal, fractional numbers are decoded exactly instead of as
64-bit floats.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: mkRunE(c, func(c *command, cmd *cobra.Command, args []string) error {
			if format != "json" && format != "yaml" {
				return &ExitError{Code: 2, Message: fmt.Sprintf("invalid format %q: must be 'json' or 'yaml'", format)}
			}
			opt := etdoc.DecodeOpt{Numbers: etdoc.NumberFloat64}
			if decimal {
				opt.Numbers = etdoc.NumberDecimal
			}
			doc, _, err := c.decodeInput(firstArg(args), opt)
			if err != nil {
				return err
			}
			return c.writeDocument(doc, format)
		}),
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().BoolVar(&decimal, "decimal", false, "decode fractional numbers as exact decimals")
	return cmd
}

func (c *command) writeDocument(doc *etdoc.Document, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(c.out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.out, "%s\n", data)
	return err
}
