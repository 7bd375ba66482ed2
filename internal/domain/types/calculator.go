package types

// DefaultInput is the raw input shown when nothing has been typed.
const DefaultInput = "0"

// Snapshot is what a display reads after each key press.
type Snapshot struct {
	Input  string `json:"input"`
	Result string `json:"result"`
}

// HistoryEntry records one commit. Entries are never modified after creation.
type HistoryEntry struct {
	Expr   string `json:"expr"`
	Result string `json:"res"`
}
