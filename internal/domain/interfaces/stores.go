package interfaces

import domaintypes "keycalc/internal/domain/types"

// HistoryStore keeps committed calculations for the session.
type HistoryStore interface {
	AppendHistory(entry domaintypes.HistoryEntry) error
	// ListHistory returns a copy in the store's configured order.
	ListHistory() ([]domaintypes.HistoryEntry, error)
	ClearHistory() error
	CountHistory() int
}
