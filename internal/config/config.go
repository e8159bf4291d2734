package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for horas, stored in ~/.horas/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// Locale is the BCP 47 tag used for number and currency display.
	Locale string `json:"locale"`
	// Currency is the ISO 4217 code of the billing currency.
	Currency string `json:"currency"`
	// HourlyRate is the billed amount per worked hour, in the billing currency.
	HourlyRate float64 `json:"hourly_rate"`
	// MonthlyCapHours is the contracted maximum of billable hours per month.
	// It only drives the progress display; it is never enforced.
	MonthlyCapHours int `json:"monthly_cap_hours"`
}

const (
	// DefaultLocale drives number/currency rendering.
	DefaultLocale = "pt-BR"
	// DefaultCurrency is the billing currency.
	DefaultCurrency = "BRL"
	// DefaultHourlyRate is the billed amount per hour.
	DefaultHourlyRate = 46.31
	// DefaultMonthlyCapHours is the contracted monthly hour cap.
	DefaultMonthlyCapHours = 176
)

// defaultConfig returns a Config pre-filled with the built-in defaults.
func defaultConfig() Config {
	return Config{
		Locale:          DefaultLocale,
		Currency:        DefaultCurrency,
		HourlyRate:      DefaultHourlyRate,
		MonthlyCapHours: DefaultMonthlyCapHours,
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// horas configuration – ~/.horas/config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Edit this file to customise billing and display.
{
  // ── Display locale (BCP 47) and billing currency (ISO 4217) ──
  "locale": "pt-BR",
  "currency": "BRL",

  // ── Billing ──
  // Amount billed per worked hour, in the currency above.
  "hourly_rate": 46.31,
  // Contracted monthly hour cap. Used for the progress display only;
  // tracking past the cap is allowed.
  "monthly_cap_hours": 176
}
`

// Dir returns the root data directory (~/.horas).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".horas"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads the config file under dir, creating it with annotated defaults
// on first run. Lines starting with // are treated as comments and stripped
// before JSON parsing.
func Load(dir string) (Config, error) {
	path := filepath.Join(dir, "config.json")

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}
	if cfg.HourlyRate == 0 {
		cfg.HourlyRate = DefaultHourlyRate
	}
	if cfg.MonthlyCapHours == 0 {
		cfg.MonthlyCapHours = DefaultMonthlyCapHours
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
