package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "TRIBUNAL"

// envConfig maps TRIBUNAL_* variables. Unset variables leave the pointer nil.
type envConfig struct {
	APIBaseURL          *string        `envconfig:"API_URL"`
	HTTPTimeout         *time.Duration `envconfig:"HTTP_TIMEOUT"`
	DatabasePath        *string        `envconfig:"DB_PATH"`
	ListenAddr          *string        `envconfig:"LISTEN_ADDR"`
	DownloadDir         *string        `envconfig:"DOWNLOAD_DIR"`
	PageSize            *int           `envconfig:"PAGE_SIZE"`
	OnlineCheckInterval *time.Duration `envconfig:"ONLINE_CHECK_INTERVAL"`
	LogFormat           *string        `envconfig:"LOG_FORMAT"`
	LogLevel            *string        `envconfig:"LOG_LEVEL"`
	Debug               *bool          `envconfig:"DEBUG"`
}

// parseEnv overlays cfg with TRIBUNAL_* variables and panics on malformed
// values (e.g. TRIBUNAL_PAGE_SIZE=ten).
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := envconfig.Process(envPrefix, &ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != nil {
		cfg.APIBaseURL = *ec.APIBaseURL
	}
	if ec.HTTPTimeout != nil {
		cfg.HTTPTimeout = *ec.HTTPTimeout
	}
	if ec.DatabasePath != nil {
		cfg.DatabasePath = *ec.DatabasePath
	}
	if ec.ListenAddr != nil {
		cfg.ListenAddr = *ec.ListenAddr
	}
	if ec.DownloadDir != nil {
		cfg.DownloadDir = *ec.DownloadDir
	}
	if ec.PageSize != nil {
		cfg.PageSize = *ec.PageSize
	}
	if ec.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = *ec.OnlineCheckInterval
	}
	if ec.LogFormat != nil {
		cfg.LogFormat = *ec.LogFormat
	}
	if ec.LogLevel != nil {
		cfg.LogLevel = *ec.LogLevel
	}
	if ec.Debug != nil {
		cfg.Debug = *ec.Debug
	}
}
