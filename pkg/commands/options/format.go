package options

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/format"
)

// FormatOptions
type FormatOptions struct {
	Format string
}

func AddFormatArgs(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVarP(&o.Format, "format", "f", "",
		`Picker format by name or ordinal, example: --format=yyyyMMddHHmm or --format=5. See "datepick formats".`)
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, format.CodeCount)
		for _, c := range format.Codes() {
			names = append(names, c.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// Code resolves the flag, falling back to def when it was not given.
func (o *FormatOptions) Code(def format.Code) (format.Code, error) {
	if o.Format == "" {
		return def, nil
	}
	c, err := format.Parse(o.Format)
	if err != nil {
		return 0, errors.Wrap(err, "--format")
	}
	return c, nil
}
