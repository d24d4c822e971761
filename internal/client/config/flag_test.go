package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://api:9000", "-l", ":9090", "-d", "x.db", "-o", "out", "-p", "20",
				"-i", "10", "-t", "5", "-log-format", "json", "-log-level", "warn", "-debug"},
			expected: &Config{
				APIBaseURL: "http://api:9000", ListenAddr: ":9090", DatabasePath: "x.db", DownloadDir: "out",
				PageSize: 20, OnlineCheckInterval: 10 * time.Second, HTTPTimeout: 5 * time.Second,
				LogFormat: "json", LogLevel: "warn", Debug: true,
			},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"-c", "cfg.json", "-zzz", "1", "-a", "http://api"},
			expected: &Config{APIBaseURL: "http://api"},
		},
		{name: "incorrect check interval", args: []string{"-i", "abc"}, expectPanic: true},
		{name: "incorrect page size", args: []string{"-p", "ten"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}

			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
