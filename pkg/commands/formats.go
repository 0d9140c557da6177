package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/runner/formats"
)

func addFormats(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:     "formats",
		Aliases: []string{"key"},
		Short:   "Print the picker formats",
		Example: `
datepick formats
datepick formats --date=2025-03-15T13:05
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := settings()
			if err != nil {
				return output.HandleError(err)
			}
			example, err := do.Initial(c.Now())
			if err != nil {
				return output.HandleError(err)
			}
			f := formats.Formats{Example: example, JSON: output.JSON}
			err = f.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
