package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(datepick completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(datepick completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func nameCompletions(toComplete string) []string {
	c, err := settings()
	if err != nil {
		return nil
	}
	h, err := store.Load(c)
	if err != nil {
		return nil
	}
	var names []string
	for _, n := range h.Names(context.Background()) {
		if strings.HasPrefix(n, toComplete) {
			names = append(names, n)
		}
	}
	return names
}
