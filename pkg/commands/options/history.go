package options

import (
	"github.com/spf13/cobra"
)

// HistoryOptions
type HistoryOptions struct {
	Name     string
	Remember bool
	NoSave   bool
}

func AddHistoryArgs(cmd *cobra.Command, o *HistoryOptions) {
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		`Name the pick is stored under, example: --name=deadline.`)
	cmd.Flags().BoolVarP(&o.Remember, "remember", "r", false,
		"Start from the last confirmed value stored under --name.")
	cmd.Flags().BoolVar(&o.NoSave, "no-save", false,
		"Do not store the confirmed value.")
}
