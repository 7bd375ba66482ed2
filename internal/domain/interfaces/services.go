package interfaces

import domaintypes "keycalc/internal/domain/types"

// ControllerService applies key presses and exposes the resulting display state.
type ControllerService interface {
	OnKeyPress(token string) domaintypes.Snapshot
	Snapshot() domaintypes.Snapshot
	History() []domaintypes.HistoryEntry
	Reset()
}
