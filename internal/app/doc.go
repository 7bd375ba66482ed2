// Package app wires application dependencies for the CLI.
//
// It loads Config from TOML, sets up the global logger and builds the
// history store and input controller for each calculator session, exposing
// them via the App struct for commands to use.
package app
