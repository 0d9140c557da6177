package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/runner/history"
	"tableflip.dev/datepick/pkg/store"
)

func addHistory(topLevel *cobra.Command) {
	ho := &options.HistoryOptions{}
	ido := &options.IDOptions{}
	var follow, summary bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List confirmed picks",
		Example: `
datepick history
datepick history --name=deadline --show-id
datepick history --summary
datepick history --follow
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c, err := settings()
			if err != nil {
				return output.HandleError(err)
			}
			h, err := store.Load(c)
			if err != nil {
				return output.HandleError(err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			s := history.History{
				History: h,
				Name:    ho.Name,
				ShowID:  ido.ShowID,
				JSON:    output.JSON,
				Follow:  follow,
				Summary: summary,
			}
			err = s.Do(ctx)
			if follow && ctx.Err() != nil {
				return nil
			}
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&ho.Name, "name", "n", "", "Only list picks stored under this name.")
	cmd.Flags().BoolVarP(&follow, "follow", "F", false, "Keep running and print picks as they are confirmed.")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print one line per name.")
	options.AddShowIDArgs(cmd, ido)
	options.AddOutputArg(cmd, output)
	_ = cmd.RegisterFlagCompletionFunc("name", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return nameCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
