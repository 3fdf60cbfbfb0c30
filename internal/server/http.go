package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

const (
	// DefaultHTTPAddr is the default address for the HTTP transport server.
	DefaultHTTPAddr = ":8080"

	// DefaultHTTPReadHeaderTimeout is the default read-header timeout for the HTTP server.
	DefaultHTTPReadHeaderTimeout = 10 * time.Second

	// DefaultHTTPWriteTimeout is the default write timeout for the HTTP server.
	// Streaming responses need headroom beyond a typical request/response cycle.
	DefaultHTTPWriteTimeout = 120 * time.Second

	// DefaultHTTPIdleTimeout is the default idle timeout for the HTTP server.
	DefaultHTTPIdleTimeout = 120 * time.Second
)

// HTTPServerConfig holds configuration for the streamable HTTP transport server.
type HTTPServerConfig struct {
	// Addr is the address to bind the HTTP server to (e.g., ":8080").
	Addr string

	// HealthChecker, when set, registers its probe endpoints on the
	// server mux alongside the MCP endpoint.
	HealthChecker *HealthChecker
}

// HTTPServer serves the MCP protocol over streamable HTTP at /mcp.
type HTTPServer struct {
	mcpServer  *mcpserver.MCPServer
	httpServer *http.Server
	addr       string
	health     *HealthChecker
}

// NewHTTPServer creates a streamable HTTP transport server for the given MCP server.
func NewHTTPServer(mcpSrv *mcpserver.MCPServer, config HTTPServerConfig) (*HTTPServer, error) {
	if mcpSrv == nil {
		return nil, fmt.Errorf("mcp server is required for http server")
	}
	if config.Addr == "" {
		config.Addr = DefaultHTTPAddr
	}

	return &HTTPServer{
		mcpServer: mcpSrv,
		addr:      config.Addr,
		health:    config.HealthChecker,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
// Call this in a goroutine if you need non-blocking operation.
func (s *HTTPServer) Start() error {
	return s.StartWithReadySignal(nil)
}

// StartWithReadySignal starts the HTTP server and closes the ready channel
// once the listener is bound, so callers can confirm startup before
// proceeding.
func (s *HTTPServer) StartWithReadySignal(ready chan<- struct{}) error {
	streamable := mcpserver.NewStreamableHTTPServer(s.mcpServer,
		mcpserver.WithEndpointPath("/mcp"),
	)

	mux := http.NewServeMux()
	mux.Handle("/mcp", streamable)

	if s.health != nil {
		s.health.RegisterHealthEndpoints(mux)
	}

	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: DefaultHTTPReadHeaderTimeout,
		WriteTimeout:      DefaultHTTPWriteTimeout,
		IdleTimeout:       DefaultHTTPIdleTimeout,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to bind http listener on %s: %w", s.addr, err)
	}

	if ready != nil {
		close(ready)
	}

	slog.Info("starting streamable HTTP server", "addr", s.addr, "endpoint", "/mcp")
	return s.httpServer.Serve(listener)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		slog.Info("shutting down streamable HTTP server")
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Addr returns the configured address for the HTTP server.
func (s *HTTPServer) Addr() string {
	return s.addr
}
