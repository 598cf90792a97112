package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/reoring/etdoc"
)

func newFmtCmd(c *command) *cobra.Command {
	var check, write bool
	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "rewrite documents in canonical form",
		Long: `Fmt decodes each document and encodes it again, printing the canonical
text. With -w the files are rewritten in place; with --check nothing is
written and the names of non-canonical files are listed, exiting with
status 1 if there are any.
`,
		RunE: mkRunE(c, func(c *command, cmd *cobra.Command, args []string) error {
			if write && check {
				return &ExitError{Code: 2, Message: "-w and --check are mutually exclusive"}
			}
			if len(args) == 0 {
				args = []string{"-"}
			}
			var unformatted []string
			for _, arg := range args {
				data, name, err := c.readInput(arg)
				if err != nil {
					return err
				}
				doc, err := etdoc.DecodeBytes(data)
				if err != nil {
					return failure(name, err)
				}
				text, err := etdoc.Encode(doc)
				if err != nil {
					return failure(name, err)
				}
				formatted := canonical(text)
				same := formatted == string(data)
				c.log.Debug("formatted document", "input", name, "canonical", same)

				switch {
				case check:
					if !same {
						unformatted = append(unformatted, name)
					}
				case write && name != stdinName:
					if same {
						continue
					}
					if err := writeFile(arg, formatted); err != nil {
						return err
					}
					c.log.Info("rewrote file", "file", arg)
				default:
					if _, err := io.WriteString(c.out, formatted); err != nil {
						return err
					}
				}
			}
			if len(unformatted) > 0 {
				for _, name := range unformatted {
					fmt.Fprintln(c.out, name)
				}
				return &ExitError{Code: 1}
			}
			return nil
		}),
	}
	cmd.Flags().BoolVar(&check, "check", false, "list files that are not in canonical form and exit 1 if any")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the source file")
	return cmd
}

// writeFile replaces the contents of name, keeping its permissions.
func writeFile(name, text string) error {
	info, err := os.Stat(name)
	if err != nil {
		return err
	}
	return os.WriteFile(name, []byte(text), info.Mode().Perm())
}
