// Package config loads datepick settings from a .datepick file, the
// environment and defaults.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"tableflip.dev/datepick/pkg/format"
	"tableflip.dev/datepick/pkg/ranges"
	"tableflip.dev/datepick/pkg/tui/theme"
)

// Keys understood in the config file. Each can also be set through the
// environment as DATEPICK_<KEY> with dashes replaced by underscores.
const (
	KeyFormat       = "format"
	KeyYearSpan     = "year-span"
	KeyHistoryPath  = "history-path"
	KeyLogFile      = "log-file"
	KeyCancelTitle  = "cancel-title"
	KeyConfirmTitle = "confirm-title"
	KeyToolbarColor = "toolbar-color"
	KeyLocation     = "location"
)

// Config is the resolved configuration.
type Config struct {
	Format       format.Code
	YearSpan     int
	HistoryPath  string
	LogFile      string
	CancelTitle  string
	ConfirmTitle string
	ToolbarColor string
	Location     *time.Location
}

// Load reads the config file, if any, from $DATEPICK_CONFIG_PATH, the home
// directory or the working directory.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".datepick") // .yaml is implicit
	v.SetEnvPrefix("DATEPICK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if override := os.Getenv("DATEPICK_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "error reading config file")
		}
	}
	return FromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyFormat, format.DDMMYYYY.String())
	v.SetDefault(KeyYearSpan, ranges.DefaultYearSpan)
	v.SetDefault(KeyHistoryPath, "~/.datepick.db")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyCancelTitle, "Cancel")
	v.SetDefault(KeyConfirmTitle, "Confirm")
	v.SetDefault(KeyToolbarColor, theme.DefaultToolbar)
	v.SetDefault(KeyLocation, "Local")
}

// FromViper resolves a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	code, err := format.Parse(v.GetString(KeyFormat))
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", KeyFormat)
	}
	span := v.GetInt(KeyYearSpan)
	if span <= 0 {
		return nil, errors.Errorf("config %s must be positive, got %d", KeyYearSpan, span)
	}
	history, err := homedir.Expand(v.GetString(KeyHistoryPath))
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", KeyHistoryPath)
	}
	logFile, err := homedir.Expand(v.GetString(KeyLogFile))
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", KeyLogFile)
	}
	loc, err := time.LoadLocation(v.GetString(KeyLocation))
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", KeyLocation)
	}

	return &Config{
		Format:       code,
		YearSpan:     span,
		HistoryPath:  history,
		LogFile:      logFile,
		CancelTitle:  v.GetString(KeyCancelTitle),
		ConfirmTitle: v.GetString(KeyConfirmTitle),
		ToolbarColor: v.GetString(KeyToolbarColor),
		Location:     loc,
	}, nil
}

// BasePath places the pick history; it satisfies store.Config.
func (c *Config) BasePath() string { return c.HistoryPath }

// Now is the current time in the configured location.
func (c *Config) Now() time.Time { return time.Now().In(c.Location) }
