package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvasconcelos/horas/internal/config"
)

func TestLoadFirstRunWritesTemplateAndReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultLocale, cfg.Locale)
	assert.Equal(t, config.DefaultCurrency, cfg.Currency)
	assert.Equal(t, config.DefaultHourlyRate, cfg.HourlyRate)
	assert.Equal(t, config.DefaultMonthlyCapHours, cfg.MonthlyCapHours)

	// The annotated template must now exist and parse on a second load.
	_, err = os.Stat(filepath.Join(dir, "config.json"))
	require.NoError(t, err)

	again, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadStripsComments(t *testing.T) {
	dir := t.TempDir()
	content := `// custom rate for this contract
{
  // doubled for overtime season
  "hourly_rate": 92.62,
  "monthly_cap_hours": 160
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0o600))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 92.62, cfg.HourlyRate)
	assert.Equal(t, 160, cfg.MonthlyCapHours)
	// Unset fields fall back to defaults.
	assert.Equal(t, config.DefaultLocale, cfg.Locale)
	assert.Equal(t, config.DefaultCurrency, cfg.Currency)
}

func TestLoadInvalidJSONReturnsErrorAndDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{nope"), 0o600))

	cfg, err := config.Load(dir)
	assert.Error(t, err)
	assert.Equal(t, config.DefaultHourlyRate, cfg.HourlyRate)
}
