package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Settings are the service tunables loaded from the settings file. Every
// field has a default; the file only needs to name what it overrides.
type Settings struct {
	Pacing     PacingSettings    `mapstructure:"pacing"`
	Retry      RetrySettings     `mapstructure:"retry"`
	Providers  ProviderSettings  `mapstructure:"providers"`
	Categories map[string]string `mapstructure:"categories"`
}

type PacingSettings struct {
	TrendInterval    time.Duration `mapstructure:"trend_interval"`
	CashflowInterval time.Duration `mapstructure:"cashflow_interval"`
}

type RetrySettings struct {
	Fallback time.Duration `mapstructure:"fallback"`
	Ceiling  time.Duration `mapstructure:"ceiling"`
}

type ProviderSettings struct {
	XeroBaseURL string `mapstructure:"xero_base_url"`
	QBOBaseURL  string `mapstructure:"qbo_base_url"`
}

// Load reads the settings file at path. An empty path yields defaults.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("pacing.trend_interval", 125*time.Millisecond)
	v.SetDefault("pacing.cashflow_interval", 1200*time.Millisecond)
	v.SetDefault("retry.fallback", 2*time.Second)
	v.SetDefault("retry.ceiling", 30*time.Second)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &settings, nil
}
