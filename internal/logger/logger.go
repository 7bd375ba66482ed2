// Package logger provides centralized logging using arbor.
package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ternarybob/arbor"
	arborcommon "github.com/ternarybob/arbor/common"
	"github.com/ternarybob/arbor/models"
)

// LogFilename is the file written under Config.Dir when file output is enabled.
const LogFilename = "keycalc.log"

// Config selects log outputs and formatting.
type Config struct {
	Level      string   `toml:"level"`       // trace, debug, info, warn, error
	Output     []string `toml:"output"`      // "console", "file" or "both"
	Format     string   `toml:"format"`      // "text" (logfmt) or "json"
	TimeFormat string   `toml:"time_format"` // Go time layout
	Dir        string   `toml:"-"`           // directory for LogFilename
}

// DefaultConfig keeps the CLI quiet unless something goes wrong.
func DefaultConfig() Config {
	return Config{
		Level:      "warn",
		Output:     []string{"console"},
		Format:     "text",
		TimeFormat: "15:04:05.000",
	}
}

var (
	globalLogger arbor.ILogger
	loggerMutex  sync.RWMutex
)

// Get returns the global logger instance.
// If Setup hasn't been called yet, returns a fallback console logger.
func Get() arbor.ILogger {
	loggerMutex.RLock()
	if globalLogger != nil {
		loggerMutex.RUnlock()
		return globalLogger
	}
	loggerMutex.RUnlock()

	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	// Double-check after acquiring write lock
	if globalLogger == nil {
		cfg := DefaultConfig()
		globalLogger = arbor.NewLogger().
			WithConsoleWriter(writerConfig(cfg, models.LogWriterTypeConsole, "")).
			WithLevelFromString(cfg.Level)
	}
	return globalLogger
}

// Init stores the provided logger as the global singleton instance.
func Init(l arbor.ILogger) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	globalLogger = l
}

// Setup configures the global logger from cfg and returns it.
func Setup(cfg Config) arbor.ILogger {
	l := arbor.NewLogger()

	hasFile, hasConsole := outputs(cfg.Output)

	if hasFile && cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0o700); err != nil {
			tmp := l.WithConsoleWriter(writerConfig(cfg, models.LogWriterTypeConsole, ""))
			tmp.Warn().Err(err).Str("logs_dir", cfg.Dir).Msg("Failed to create logs directory")
			hasConsole = true
		} else {
			l = l.WithFileWriter(writerConfig(cfg, models.LogWriterTypeFile, filepath.Join(cfg.Dir, LogFilename)))
		}
	} else if hasFile {
		hasConsole = true
	}

	if hasConsole || !hasFile {
		l = l.WithConsoleWriter(writerConfig(cfg, models.LogWriterTypeConsole, ""))
	}

	level := cfg.Level
	if level == "" {
		level = DefaultConfig().Level
	}
	l = l.WithLevelFromString(level)

	Init(l)
	return l
}

// Stop flushes any remaining context logs before shutdown.
func Stop() {
	arborcommon.Stop()
}

// outputs reports which writers the configured output list asks for.
func outputs(list []string) (file, console bool) {
	for _, o := range list {
		switch strings.ToLower(strings.TrimSpace(o)) {
		case "file":
			file = true
		case "console", "stdout":
			console = true
		case "both":
			file, console = true, true
		}
	}
	return file, console
}

func writerConfig(cfg Config, writerType models.LogWriterType, filename string) models.WriterConfiguration {
	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = "15:04:05.000"
	}

	outputType := models.OutputFormatLogfmt
	if cfg.Format == "json" {
		outputType = models.OutputFormatJSON
	}

	return models.WriterConfiguration{
		Type:       writerType,
		FileName:   filename,
		TimeFormat: timeFormat,
		OutputType: outputType,
		MaxSize:    10 * 1024 * 1024,
		MaxBackups: 3,
	}
}
