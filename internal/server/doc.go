// Package server provides the MCP server context, health checks, and the
// dedicated metrics server for the zeromail application.
//
// # Key Components
//
// ServerContext manages Google API clients with lazy initialization and
// caching. It supports multiple accounts, each backed by an injected OAuth2
// token source, and holds the shared lead provider client and metrics
// recorder.
//
// HealthChecker exposes liveness and readiness endpoints suitable for
// Kubernetes probes.
//
// MetricsServer serves Prometheus metrics on a dedicated port, isolated from
// the main application traffic.
package server
