package config

import (
	"os"
	"strings"
	"time"
)

const defaultPageSize = 10

// Config holds runtime settings shared by the portal and the CLI.
//
// Fields:
//   - APIBaseURL: root of the remote tribunal API, e.g. http://host:5000/api.
//   - HTTPTimeout: upper bound for a single API call.
//   - DatabasePath: sqlite file holding the persisted bearer token.
//   - ListenAddr: host:port the portal web server binds to.
//   - DownloadDir: where the CLI saves downloaded forms.
//   - PageSize: per_page sent with case searches.
//   - OnlineCheckInterval: how often the CLI probes API reachability.
//   - LogFormat / LogLevel: see logging.New.
//   - Debug: dump API requests and responses to the log.
type Config struct {
	APIBaseURL          string
	HTTPTimeout         time.Duration
	DatabasePath        string
	ListenAddr          string
	DownloadDir         string
	PageSize            int
	OnlineCheckInterval time.Duration
	LogFormat           string
	LogLevel            string
	Debug               bool
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.HTTPTimeout = 30 * time.Second
	c.DatabasePath = "tribunal.db"
	c.ListenAddr = "127.0.0.1:8080"
	c.DownloadDir = "downloads"
	c.PageSize = defaultPageSize
	c.OnlineCheckInterval = 3 * time.Second
	c.LogFormat = "text"
	c.LogLevel = "info"
	c.Debug = false
}

func (c *Config) normalize() {
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")
	if c.PageSize <= 0 {
		c.PageSize = defaultPageSize
	}
}

// LoadConfig constructs a Config from defaults, then overlays the JSON file
// (if any), TRIBUNAL_* environment variables and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	cfg.normalize()
	return cfg
}
