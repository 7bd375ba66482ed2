package app

import "keycalc/internal/logger"

// NewWire constructs the dependency graph from cfg: it installs the global
// logger and returns the App that commands share.
func NewWire(cfg Config) (*App, error) {
	logCfg := cfg.Logging
	logCfg.Dir = logsDir(cfg.Home)
	l := logger.Setup(logCfg)

	l.Debug().
		Str("home", cfg.Home).
		Str("history", boolString(cfg.History.Enabled)).
		Msg("app wired")

	return New(cfg, l), nil
}

func boolString(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
