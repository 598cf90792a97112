package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/reoring/etdoc"
)

func newCheckCmd(c *command) *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "report documents that fail to decode",
		Long: `Check decodes every file, up to -j at a time, and reports each failure
as "file:line: message" in argument order. It exits with status 1 if any
file fails.
`,
		RunE: mkRunE(c, func(c *command, cmd *cobra.Command, args []string) error {
			if jobs < 1 {
				return &ExitError{Code: 2, Message: fmt.Sprintf("invalid -j %d: must be at least 1", jobs)}
			}
			if len(args) == 0 {
				args = []string{"-"}
			}

			problems := make([]string, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(jobs)
			for i, arg := range args {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					problems[i] = c.checkOne(arg)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			failed := 0
			for _, p := range problems {
				if p == "" {
					continue
				}
				failed++
				fmt.Fprintln(c.out, p)
			}
			c.log.Info("checked documents", "files", len(args), "failed", failed)
			if failed > 0 {
				return &ExitError{Code: 1}
			}
			return nil
		}),
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files decoded concurrently")
	return cmd
}

// checkOne decodes a single input and returns its problem, or "".
func (c *command) checkOne(arg string) string {
	data, name, err := c.readInput(arg)
	if err != nil {
		return describe(name, err)
	}
	if _, err := etdoc.DecodeBytes(data); err != nil {
		c.log.Debug("document failed to decode", "input", name, "error", err)
		return describe(name, err)
	}
	return ""
}
