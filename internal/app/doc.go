// Package app wires application dependencies for the CLI.
//
// It loads the runtime configuration (file, environment and flags) and
// builds the concrete stores from Config, exposing them via the Wire struct
// for commands to use.
package app
