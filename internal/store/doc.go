// Package store provides the storage used by the calculator core.
//
// HistoryMemoryStore keeps committed calculations in process memory for the
// lifetime of a session; nothing it holds is ever written to disk. The
// package also carries the small file helpers (ReadFile, WriteFile) used to
// read and atomically replace configuration files under the user's home
// directory. All methods are concurrency-safe via internal locking.
package store
