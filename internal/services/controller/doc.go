// Package controller owns the calculator's input state and history log.
//
// It turns key tokens into keypad transitions, records commits in a
// domain.HistoryStore when history is enabled, and hands read-only snapshots
// to whatever is displaying them. Invalid input never surfaces as an error;
// it shows up as a "0" result.
package controller
