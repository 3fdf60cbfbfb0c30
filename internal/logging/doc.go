// Package logging provides structured logging utilities for zeromail.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - PII sanitization (attendee email anonymization)
//   - Consistent attribute naming across the codebase
//   - Logger adapter interface for flexibility
package logging
