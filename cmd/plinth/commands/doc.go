// Package commands defines the plinth CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - session save|show|list|delete   Manage stored connection profiles
//   - hostkey verify|add|list         Query and extend the host key trust store
//   - seed import|export              Move the random seed blob in and out
//   - config init                     Write a default configuration file
//
// # Implementation
//
// The root command loads configuration (file, environment, flags) and builds
// the store dependency graph before any subcommand runs, so handlers share
// one app context rooted at the resolved storage directory.
package commands
