package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/reoring/etdoc/i18n"
)

const (
	envLogLevel  = "ETDOC_LOG_LEVEL"
	envLogFormat = "ETDOC_LOG_FORMAT"
)

type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// command is the state shared by the subcommands of one invocation. cfg and
// log are set before any subcommand runs.
type command struct {
	*streams
	cfg *Config
	log *slog.Logger
}

type runFunction func(c *command, cmd *cobra.Command, args []string) error

func mkRunE(c *command, f runFunction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return f(c, cmd, args)
	}
}

func newRootCmd(s *streams) *cobra.Command {
	c := &command{streams: s}
	var flags Config

	root := &cobra.Command{
		Use:   "etdoc",
		Short: "etdoc reads, writes and checks energy-model documents",
		Long: `etdoc works with energy-model documents: line-oriented text files of
"- key = value" attributes, "# comment" descriptions and "~ name = expr" queries.

Files named "-", or no file at all, mean standard input.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := NewConfig(flags)
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			c.cfg = cfg
			c.log = newLogger(cfg.LogLevel, cfg.LogFormat, s.err)
			i18n.SetLanguage(cfg.Lang)
			c.log.Debug("configuration loaded", "command", cmd.Name(), "config", *cfg)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.LogLevel, "log-level", os.Getenv(envLogLevel), "log level: debug, info, warn or error (env "+envLogLevel+")")
	pf.StringVar(&flags.LogFormat, "log-format", os.Getenv(envLogFormat), "log format: text or json (env "+envLogFormat+")")
	pf.StringVar(&flags.Lang, "lang", "en", "language of error messages: en or ja")

	root.AddCommand(
		newDecodeCmd(c),
		newEncodeCmd(c),
		newFmtCmd(c),
		newCSVCmd(c),
		newCheckCmd(c),
		newInspectCmd(c),
	)
	return root
}
