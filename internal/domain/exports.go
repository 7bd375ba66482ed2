package domain

import (
	interfaces "keycalc/internal/domain/interfaces"
	types "keycalc/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Key          = types.Key
	Snapshot     = types.Snapshot
	HistoryEntry = types.HistoryEntry
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ControllerService = interfaces.ControllerService
	HistoryStore      = interfaces.HistoryStore
)

// DefaultInput is re-exported for callers that only import domain.
const DefaultInput = types.DefaultInput

// Keypad tokens re-exported from the types subpackage.
const (
	KeyClear         = types.KeyClear
	KeyDelete        = types.KeyDelete
	KeyCommit        = types.KeyCommit
	KeyPoint         = types.KeyPoint
	KeyZeroZero      = types.KeyZeroZero
	KeyAdd           = types.KeyAdd
	KeySubtract      = types.KeySubtract
	KeyMultiply      = types.KeyMultiply
	KeyDivide        = types.KeyDivide
	KeyPercent       = types.KeyPercent
	KeyMultiplyASCII = types.KeyMultiplyASCII
	KeyDivideASCII   = types.KeyDivideASCII
)
