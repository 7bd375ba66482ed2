// Package commands defines the keycalc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init    Write a default config.toml into the home directory
//   - eval    Evaluate an expression once and print the result
//   - press   Replay key presses through a fresh controller
//   - repl    Interactive keypad on the terminal
//
// # Implementation
//
// The root command loads config.toml from --home, applies flag overrides and
// installs the logger before any subcommand runs. Each subcommand asks the
// shared app context for a new session, so no state carries over between
// invocations.
package commands
