package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/config"
	"tableflip.dev/datepick/pkg/logging"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
	lo     = &options.LogOptions{}

	// cfg is loaded once the command line is parsed.
	cfg *config.Config
)

func New() *cobra.Command {
	var cleanup func()

	cmd := &cobra.Command{
		Use:   "datepick",
		Short: base.Wrap80("Pick a date, a time or both from a wheel style sheet in the terminal."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(); err != nil {
				return err
			}
			file := cfg.LogFile
			if lo.File != "" {
				file = lo.File
			}
			cleanup, err = logging.Setup(file)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cleanup != nil {
				cleanup()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddLogArgs(cmd, lo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addPick(topLevel)
	addSet(topLevel)
	addColumns(topLevel)
	addFormats(topLevel)
	addHistory(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// settings returns the loaded config, loading it when a command runs outside
// the root's pre-run (tests, completions).
func settings() (*config.Config, error) {
	if cfg != nil {
		return cfg, nil
	}
	c, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg = c
	return cfg, nil
}
