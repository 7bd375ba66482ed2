// Package keypad implements the calculator's input state machine.
//
// State is a plain value. Press applies one key and returns the next state,
// plus a history entry when the key was a commit. Press never fails: keys
// outside the keypad alphabet leave the state unchanged.
//
// Concurrency: State has no shared parts, so values may be copied freely.
// Whoever owns the current state must serialise calls to Press.
package keypad
