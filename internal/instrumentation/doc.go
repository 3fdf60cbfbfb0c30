// Package instrumentation provides OpenTelemetry instrumentation for the
// zeromail scheduling server.
//
// This package enables production-grade observability through:
//   - OpenTelemetry metrics for tool invocations, Google API calls, and
//     scheduling activity
//   - Distributed tracing for request flows and API calls
//   - Prometheus metrics export via /metrics endpoint on dedicated port
//   - OTLP export support for modern observability platforms
//
// # Metrics
//
// The package exposes the following metric categories:
//
// MCP Tool Metrics:
//   - mcp_tool_invocations_total: Counter of MCP tool invocations by tool name and status
//   - mcp_tool_duration_seconds: Histogram of MCP tool execution durations
//
// Google API Metrics:
//   - google_api_operations_total: Counter of Google API operations by service, operation, status
//   - google_api_operation_duration_seconds: Histogram of Google API operation durations
//
// Scheduling Metrics:
//   - scheduling_gestures_total: Counter of grid gestures by kind and outcome
//   - calendar_events_created_total: Counter of events created through the grid
//   - lead_searches_total: Counter of lead provider searches by status
//
// # Tracing
//
// Distributed tracing spans are created for:
//   - MCP tool invocations (tool.<name>)
//   - Google API calls (google.<service>.<operation>)
//
// # Configuration
//
// Configuration is read from environment variables; see DefaultConfig for
// the full list of supported variables and their defaults.
package instrumentation
