// Package config resolves settings from flags, environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ukaji3/salesdash-go/pkg/salesdash"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/dashboard"
)

// EnvPrefix prefixes every environment variable, e.g. SALESDASH_FILE.
const EnvPrefix = "SALESDASH"

// Config holds the resolved settings for every command.
type Config struct {
	// File is the workbook to clean.
	File string `mapstructure:"file" validate:"required"`
	// Sheet names the worksheet; empty means the first sheet.
	Sheet string `mapstructure:"sheet"`
	// RawValues reads cells without number formats applied.
	RawValues bool `mapstructure:"raw_values"`
	// Pretty indents JSON output.
	Pretty bool `mapstructure:"pretty"`

	// Listen is the HTTP address for serve.
	Listen string `mapstructure:"listen" validate:"required,hostname_port"`
	// CacheTTL bounds how long a filtered summary is memoized; 0 keeps it for the process lifetime.
	CacheTTL time.Duration `mapstructure:"cache_ttl" validate:"gte=0"`
	// Currency prefixes amounts in insight text.
	Currency string `mapstructure:"currency"`

	LogLevel  string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=json console"`
}

// NewViper returns a viper instance with defaults and environment lookup configured.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("file", "")
	v.SetDefault("sheet", "")
	v.SetDefault("raw_values", true)
	v.SetDefault("pretty", false)
	v.SetDefault("listen", ":8080")
	v.SetDefault("cache_ttl", time.Duration(0))
	v.SetDefault("currency", dashboard.DefaultCurrency)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	return v
}

// LoadDotEnv loads variables from path when the file exists.
// Variables already set in the environment win.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "load %s", path)
	}
	return nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode configuration")
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validate configuration")
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: must satisfy %q (got %q)", fe.Field(), tagWithParam(fe), fmt.Sprint(fe.Value())))
	}
	return errors.Newf("configuration validation failed:\n- %s", strings.Join(msgs, "\n- "))
}

func tagWithParam(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

// LoadOptions returns the workbook read options.
func (c *Config) LoadOptions() salesdash.Options {
	raw := c.RawValues
	return salesdash.Options{
		Sheet:     c.Sheet,
		RawValues: &raw,
	}
}

// Formatter returns the amount formatter for insight text.
func (c *Config) Formatter() dashboard.Formatter {
	return dashboard.Formatter{Currency: c.Currency}
}
