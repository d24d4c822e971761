package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/tribunal/internal/flagx"
	"github.com/dmitrijs2005/tribunal/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields tell
// "absent" apart from a zero value, so only keys present in the file
// override earlier sources.
type JsonConfig struct {
	APIBaseURL          *string         `json:"api_base_url"`
	HTTPTimeout         *timex.Duration `json:"http_timeout"`
	DatabasePath        *string         `json:"database_path"`
	ListenAddr          *string         `json:"listen_addr"`
	DownloadDir         *string         `json:"download_dir"`
	PageSize            *int            `json:"page_size"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	LogFormat           *string         `json:"log_format"`
	LogLevel            *string         `json:"log_level"`
	Debug               *bool           `json:"debug"`
}

// parseJson overlays cfg with the file named by -c/-config. It panics when
// the file cannot be read or decoded.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.HTTPTimeout != nil {
		cfg.HTTPTimeout = jc.HTTPTimeout.Duration
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.ListenAddr != nil {
		cfg.ListenAddr = *jc.ListenAddr
	}
	if jc.DownloadDir != nil {
		cfg.DownloadDir = *jc.DownloadDir
	}
	if jc.PageSize != nil {
		cfg.PageSize = *jc.PageSize
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.Debug != nil {
		cfg.Debug = *jc.Debug
	}
}
