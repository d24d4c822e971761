package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-c", "conf.json", "-a", "http://api"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "equals form",
			args:         []string{"--config=alt.json", "-a", "http://api"},
			allowedFlags: []string{"--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags dropped",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag at end without value",
			args:         []string{"-p"},
			allowedFlags: []string{"-p"},
			want:         []string{"-p"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "-l", ":9090"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "several allowed flags keep order",
			args:         []string{"-l", ":8080", "-c", "conf.json", "--other", "x", "-p", "20"},
			allowedFlags: []string{"-c", "-l", "-p"},
			want:         []string{"-l", ":8080", "-c", "conf.json", "-p", "20"},
		},
		{
			name:         "empty",
			args:         nil,
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFilePath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short", args: []string{"-c", "/etc/tribunal.json"}, want: "/etc/tribunal.json"},
		{name: "long", args: []string{"-config", "/path/long.json"}, want: "/path/long.json"},
		{name: "equals", args: []string{"-config=/path/eq.json"}, want: "/path/eq.json"},
		{name: "other flags ignored", args: []string{"-a", "http://api", "-p", "5"}, want: ""},
		{name: "last wins", args: []string{"-c", "/1.json", "-config", "/2.json"}, want: "/2.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFilePath(tt.args))
		})
	}
}
