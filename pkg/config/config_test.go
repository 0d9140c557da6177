package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"tableflip.dev/datepick/pkg/format"
)

func TestDefaults(t *testing.T) {
	cfg, err := FromViper(viper.New())
	require.NoError(t, err)
	require.Equal(t, format.DDMMYYYY, cfg.Format)
	require.Equal(t, 100, cfg.YearSpan)
	require.Equal(t, "Cancel", cfg.CancelTitle)
	require.Equal(t, "Confirm", cfg.ConfirmTitle)
	require.Equal(t, "#8B5A2B", cfg.ToolbarColor)
	require.Equal(t, time.Local, cfg.Location)
	require.Empty(t, cfg.LogFile)
	require.Equal(t, ".datepick.db", filepath.Base(cfg.HistoryPath))
}

func TestOverrides(t *testing.T) {
	v := viper.New()
	v.Set(KeyFormat, "yyyyMMddHHmm")
	v.Set(KeyYearSpan, 5)
	v.Set(KeyLocation, "UTC")
	v.Set(KeyConfirmTitle, "Done")

	cfg, err := FromViper(v)
	require.NoError(t, err)
	require.Equal(t, format.YYYYMMDDHHmm, cfg.Format)
	require.Equal(t, 5, cfg.YearSpan)
	require.Equal(t, time.UTC, cfg.Location)
	require.Equal(t, "Done", cfg.ConfirmTitle)
}

func TestInvalidValues(t *testing.T) {
	for key, value := range map[string]interface{}{
		KeyFormat:   "yyyy",
		KeyYearSpan: 0,
		KeyLocation: "Nowhere/Special",
	} {
		v := viper.New()
		v.Set(key, value)
		_, err := FromViper(v)
		require.Error(t, err, key)
	}
}

func TestLoadFromConfigPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".datepick.yaml"), []byte("format: MMddyyyyhhmmA\ncancel-title: Back\n"), 0o644))
	t.Setenv("DATEPICK_CONFIG_PATH", dir)
	t.Setenv("DATEPICK_YEAR_SPAN", "7")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, format.MMDDYYYYhhmmA, cfg.Format)
	require.Equal(t, "Back", cfg.CancelTitle)
	require.Equal(t, 7, cfg.YearSpan)
}
