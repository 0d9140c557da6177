package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/runner/columns"
)

func addColumns(topLevel *cobra.Command) {
	ea := &engineArgs{}

	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Describe the columns of a picker format",
		Example: `
datepick columns --format=MMddyyyyhhmmA
datepick columns --min=2020-01-01 --max=2030-12-31 --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c, err := settings()
			if err != nil {
				return output.HandleError(err)
			}
			e, err := ea.engine(c, c.Now())
			if err != nil {
				return output.HandleError(err)
			}
			s := columns.Columns{Engine: e, JSON: output.JSON}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFormatArgs(cmd, &ea.format)
	options.AddDateArgs(cmd, &ea.dates)
	options.AddBoundsArgs(cmd, &ea.dates)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
