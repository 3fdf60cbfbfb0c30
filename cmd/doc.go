// Package cmd implements the command-line interface for zeromail.
//
// This package provides the following commands:
//   - week: Render the interactive scheduling grid for a week as text
//   - serve: Start the MCP server to provide scheduling tools for AI assistants
//   - version: Display version information
//
// The week command is the default command when no subcommand is specified.
package cmd
