package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/runner/pick"
	"tableflip.dev/datepick/pkg/store"
	"tableflip.dev/datepick/pkg/tui/components/signallog"
)

func addPick(topLevel *cobra.Command) {
	ea := &engineArgs{}
	ho := &options.HistoryOptions{}
	var signals bool

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Open the picker sheet and print the confirmed value",
		Example: `
datepick pick
datepick pick --format=yyyyMMddHHmm --within=2w
datepick pick --name=deadline --remember --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			c, err := settings()
			if err != nil {
				return output.HandleError(err)
			}
			fallback, err := remembered(ctx, c, ho)
			if err != nil {
				return output.HandleError(err)
			}
			var (
				e    *picker.Engine
				opts []picker.Option
				sl   *signallog.Model
			)
			if signals {
				sl = signallog.New(200, func(column int) string {
					k, _ := e.Kind(column)
					return k.String()
				})
				opts = append(opts, picker.WithObserver(sl))
			}
			if e, err = ea.engine(c, fallback, opts...); err != nil {
				return output.HandleError(err)
			}

			p := pick.Pick{
				Engine:       e,
				Name:         ho.Name,
				CancelTitle:  c.CancelTitle,
				ConfirmTitle: c.ConfirmTitle,
				ToolbarColor: c.ToolbarColor,
				JSON:         output.JSON,
				Signals:      sl,
			}
			if !ho.NoSave {
				if p.History, err = store.Load(c); err != nil {
					return output.HandleError(err)
				}
			}
			err = p.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddFormatArgs(cmd, &ea.format)
	options.AddDateArgs(cmd, &ea.dates)
	options.AddBoundsArgs(cmd, &ea.dates)
	options.AddHistoryArgs(cmd, ho)
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVar(&signals, "signals", false, "Show the refresh signals the picker emits above the sheet.")
	_ = cmd.RegisterFlagCompletionFunc("name", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return nameCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
