package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/tribunal/internal/flagx"
)

var ownFlags = []string{"-a", "-l", "-d", "-o", "-p", "-i", "-t", "-log-format", "-log-level", "-debug"}

// parseFlags populates cfg from command-line flags:
//
//	-a string       base URL of the tribunal API
//	-l string       portal listen address
//	-d string       sqlite database path
//	-o string       download directory
//	-p int          search page size
//	-i int          online check interval (seconds)
//	-t int          HTTP timeout (seconds)
//	-log-format     text | json | console
//	-log-level      debug | info | warn | error
//	-debug          dump API traffic
//
// Only these flags are considered (see flagx.FilterArgs); parse errors panic.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the tribunal API")
	fs.StringVar(&cfg.ListenAddr, "l", cfg.ListenAddr, "portal listen address")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "sqlite database path")
	fs.StringVar(&cfg.DownloadDir, "o", cfg.DownloadDir, "download directory")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "search page size")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	httpTimeout := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "HTTP timeout (in seconds)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text, json or console")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "dump API traffic")

	if err := fs.Parse(flagx.FilterArgs(args, ownFlags)); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	cfg.HTTPTimeout = time.Duration(*httpTimeout) * time.Second
}
