package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputs(t *testing.T) {
	tests := []struct {
		name        string
		in          []string
		wantFile    bool
		wantConsole bool
	}{
		{"empty", nil, false, false},
		{"console", []string{"console"}, false, true},
		{"stdout alias", []string{"stdout"}, false, true},
		{"file", []string{"file"}, true, false},
		{"both keyword", []string{"both"}, true, true},
		{"list", []string{" File ", "console"}, true, true},
		{"unknown ignored", []string{"syslog"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, console := outputs(tt.in)
			assert.Equal(t, tt.wantFile, file)
			assert.Equal(t, tt.wantConsole, console)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, []string{"console"}, cfg.Output)
	assert.Equal(t, "text", cfg.Format)
}

func TestSetup_InstallsGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = []string{"file"}
	cfg.Dir = t.TempDir()

	l := Setup(cfg)
	assert.NotNil(t, l)
	assert.Equal(t, l, Get())
}
