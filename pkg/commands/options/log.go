package options

import (
	"github.com/spf13/cobra"
)

// LogOptions
type LogOptions struct {
	File string
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().StringVar(&o.File, "log-file", "",
		"Write debug logs to this file. Overrides the log-file config key.")
}
