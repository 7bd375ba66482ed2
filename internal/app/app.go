package app

import (
	"path/filepath"

	"github.com/ternarybob/arbor"

	"keycalc/internal/services/controller"
	"keycalc/internal/store"
)

// App is the shared context commands run against.
type App struct {
	Config Config
	Log    arbor.ILogger
}

// New returns an App using cfg and l.
func New(cfg Config, l arbor.ILogger) *App {
	return &App{Config: cfg, Log: l}
}

// NewSession builds a fresh history store and controller. Each session
// starts from the initial state with an empty history.
func (a *App) NewSession() *controller.Service {
	hs := store.NewHistoryMemoryStore(
		store.WithNewestFirst(a.Config.History.NewestFirst),
		store.WithCapacity(a.Config.History.Limit),
	)
	return controller.New(hs,
		controller.WithHistory(a.Config.History.Enabled),
		controller.WithLogger(a.Log),
	)
}

// logsDir is where file logging writes when enabled.
func logsDir(home string) string {
	if home == "" {
		return ""
	}
	return filepath.Join(home, "logs")
}
