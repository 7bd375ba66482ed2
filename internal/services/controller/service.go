package controller

import (
	"github.com/ternarybob/arbor"

	"keycalc/internal/calc/keypad"
	"keycalc/internal/domain"
	"keycalc/internal/logger"
)

// Option configures a Service.
type Option func(*Service)

// WithHistory turns commit recording on or off. Recording is on by default.
func WithHistory(enabled bool) Option {
	return func(s *Service) { s.historyEnabled = enabled }
}

// WithLogger overrides the global logger.
func WithLogger(l arbor.ILogger) Option {
	return func(s *Service) { s.log = l }
}

// Service is the input controller. It is not safe for concurrent key presses;
// callers deliver one key at a time, as a keypad does.
type Service struct {
	state          keypad.State
	history        domain.HistoryStore
	historyEnabled bool
	log            arbor.ILogger
}

// New returns a controller in the initial state, recording commits into history.
func New(history domain.HistoryStore, opts ...Option) *Service {
	s := &Service{
		state:          keypad.Initial(),
		history:        history,
		historyEnabled: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get()
	}
	if s.history == nil {
		s.historyEnabled = false
	}
	return s
}

// OnKeyPress applies one key and returns the new display snapshot.
// Tokens outside the keypad alphabet leave the state unchanged.
func (s *Service) OnKeyPress(token string) domain.Snapshot {
	key := domain.Key(token)
	if !key.Valid() {
		s.log.Debug().Str("key", token).Msg("ignoring unknown key")
		return s.state.Snapshot()
	}

	next, entry := keypad.Press(s.state, key)
	s.state = next

	if entry != nil {
		s.record(*entry)
	}

	s.log.Debug().
		Str("key", token).
		Str("input", next.Input).
		Str("result", next.Result).
		Msg("key applied")
	return next.Snapshot()
}

// Snapshot returns the current display state.
func (s *Service) Snapshot() domain.Snapshot { return s.state.Snapshot() }

// History returns the recorded commits, most recent first unless the store
// was configured otherwise. It is empty when recording is disabled.
func (s *Service) History() []domain.HistoryEntry {
	if s.history == nil {
		return nil
	}
	entries, err := s.history.ListHistory()
	if err != nil {
		s.log.Warn().Err(err).Msg("listing history")
		return nil
	}
	return entries
}

// HistoryEnabled reports whether commits are being recorded.
func (s *Service) HistoryEnabled() bool { return s.historyEnabled }

// Reset returns to the initial state and forgets recorded history.
func (s *Service) Reset() {
	s.state = keypad.Initial()
	if s.history == nil {
		return
	}
	if err := s.history.ClearHistory(); err != nil {
		s.log.Warn().Err(err).Msg("clearing history")
	}
}

func (s *Service) record(entry domain.HistoryEntry) {
	if !s.historyEnabled {
		return
	}
	if err := s.history.AppendHistory(entry); err != nil {
		s.log.Warn().Err(err).Str("expr", entry.Expr).Msg("recording history")
		return
	}
	s.log.Info().Str("expr", entry.Expr).Str("result", entry.Result).Msg("committed")
}

// Compile-time assertion that Service implements domain.ControllerService.
var _ domain.ControllerService = (*Service)(nil)
