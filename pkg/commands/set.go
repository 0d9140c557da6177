package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/runner/set"
)

func addSet(topLevel *cobra.Command) {
	ea := &engineArgs{}
	var (
		edits    []set.Edit
		trace    bool
		calendar bool
	)

	cmd := &cobra.Command{
		Use:   "set kind=value...",
		Short: "Move picker columns without opening the sheet",
		Long: `Applies each kind=value edit in order, as if the column showing that kind
had been scrolled to the value. Kinds are day, month, year, hour, minute and
ampm. Day clamping, bounds and the 12 hour clock behave as in the sheet.`,
		Example: `
datepick set --date=2024-02-29 year=2023
datepick set --format=ddMMyyyyhhmmA hour=12 ampm=pm --trace
`,
		Args: func(cmd *cobra.Command, args []string) error {
			var err error
			edits, err = set.ParseEdits(args)
			return err
		},
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
			s := set.Set{
				Engine:   e,
				Edits:    edits,
				Trace:    trace,
				Calendar: calendar,
				JSON:     output.JSON,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFormatArgs(cmd, &ea.format)
	options.AddDateArgs(cmd, &ea.dates)
	options.AddBoundsArgs(cmd, &ea.dates)
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVarP(&trace, "trace", "t", false, "Print the refresh signals each edit emits.")
	cmd.Flags().BoolVarP(&calendar, "calendar", "c", false, "Print the month of the result.")

	topLevel.AddCommand(cmd)
}
