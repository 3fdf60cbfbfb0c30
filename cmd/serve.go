package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/pepealonso95/zeromail/internal/instrumentation"
	"github.com/pepealonso95/zeromail/internal/leads"
	"github.com/pepealonso95/zeromail/internal/logging"
	"github.com/pepealonso95/zeromail/internal/server"
	"github.com/pepealonso95/zeromail/internal/tools/contact_tools"
	"github.com/pepealonso95/zeromail/internal/tools/lead_tools"
	"github.com/pepealonso95/zeromail/internal/tools/schedule_tools"
)

// MetricsConfig holds configuration for the metrics server
type MetricsConfig struct {
	// Enabled determines whether to start the metrics server
	Enabled bool

	// Addr is the address for the metrics server (e.g., ":9090")
	Addr string
}

func newServeCmd() *cobra.Command {
	var (
		transport      string
		httpAddr       string
		token          string
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol (MCP) server to provide scheduling,
calendar, contact, and lead tools for AI assistants.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - streamable-http: Streamable HTTP transport on --http-addr

Credentials:
  Provide a Google access token via --token or the GOOGLE_ACCESS_TOKEN
  environment variable. The token is registered for the "default" account;
  tools accept an "account" argument for multi-account setups, each account
  registered through its own server instance configuration.

Observability:
  A dedicated Prometheus metrics server runs on --metrics-addr (default
  :9090, configurable via the metrics section of the config file) exposing
  /metrics, /healthz, and /readyz.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			metricsConfig := MetricsConfig{
				Enabled: metricsEnabled,
				Addr:    metricsAddr,
			}
			return runServe(transport, httpAddr, token, metricsConfig)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport type: stdio or streamable-http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", server.DefaultHTTPAddr, "HTTP server address (for streamable-http transport)")
	cmd.Flags().StringVar(&token, "token", "", "Google access token (default: GOOGLE_ACCESS_TOKEN env var)")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Start the Prometheus metrics server")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Address for the metrics server (default: from config, ':9090' if unset)")

	return cmd
}

func runServe(transport, httpAddr, token string, metricsConfig MetricsConfig) error {
	if transport != "stdio" && transport != "streamable-http" {
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, streamable-http)", transport)
	}

	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Route logs to stderr; with the stdio transport stdout carries the
	// MCP protocol.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if metricsConfig.Addr == "" {
		metricsConfig.Addr = cfg.Metrics.Addr
	}
	metricsConfig.Enabled = metricsConfig.Enabled && cfg.Metrics.Enabled

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Error("instrumentation shutdown failed", logging.Err(err))
		}
	}()

	// Create server context
	serverContext, err := server.NewServerContext(shutdownCtx)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		if err := serverContext.Shutdown(); err != nil {
			logger.Error("server context shutdown failed", logging.Err(err))
		}
	}()

	serverContext.SetMetrics(provider.Metrics())

	// Register credentials for the default account
	if token == "" {
		token = os.Getenv("GOOGLE_ACCESS_TOKEN")
	}
	if token != "" {
		serverContext.SetTokenSource(server.DefaultAccount,
			oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
		logger.Info("registered Google credentials",
			logging.Account(server.DefaultAccount),
			"token", logging.SanitizeToken(token))
	} else {
		logger.Warn("no Google access token provided; calendar and contact tools will report missing credentials")
	}

	// Configure the lead provider client if set up
	if cfg.Leads.BaseURL != "" {
		leadsClient, err := leads.NewClient(cfg.Leads.BaseURL, cfg.Leads.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create leads client: %w", err)
		}
		serverContext.SetLeadsClient(leadsClient)
	}

	healthChecker := server.NewHealthChecker(serverContext)
	healthChecker.SetReady(false)

	// Start metrics server if enabled
	var metricsServer *server.MetricsServer
	if metricsConfig.Enabled && provider.Enabled() {
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsConfig.Addr,
			Enabled:                 true,
			InstrumentationProvider: provider,
			HealthChecker:           healthChecker,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		// Use ready channel to confirm metrics server started successfully
		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		select {
		case <-metricsReady:
			logger.Info("metrics server started", "addr", metricsServer.Addr())
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}

		defer func() {
			shutdownTimeout, cancelShutdown := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
			defer cancelShutdown()
			if err := metricsServer.Shutdown(shutdownTimeout); err != nil {
				logger.Error("metrics server shutdown failed", logging.Err(err))
			}
		}()
	}

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("zeromail", version,
		mcpserver.WithToolCapabilities(true),
	)

	if err := registerAllTools(mcpSrv, serverContext); err != nil {
		return err
	}

	healthChecker.SetReady(true)

	if transport == "streamable-http" {
		httpServer, err := server.NewHTTPServer(mcpSrv, server.HTTPServerConfig{
			Addr:          httpAddr,
			HealthChecker: healthChecker,
		})
		if err != nil {
			return fmt.Errorf("failed to create HTTP server: %w", err)
		}
		return runHTTPServer(shutdownCtx, httpServer)
	}

	return runStdioServer(mcpSrv)
}

// registerAllTools registers all MCP tools
func registerAllTools(mcpSrv *mcpserver.MCPServer, sc *server.ServerContext) error {
	type toolRegistration struct {
		name     string
		register func() error
	}

	registrations := []toolRegistration{
		{
			name: "Schedule",
			register: func() error {
				return schedule_tools.RegisterScheduleTools(mcpSrv, sc)
			},
		},
		{
			name: "Contacts",
			register: func() error {
				return contact_tools.RegisterContactTools(mcpSrv, sc)
			},
		},
		{
			name: "Leads",
			register: func() error {
				return lead_tools.RegisterLeadTools(mcpSrv, sc)
			},
		},
	}

	for _, reg := range registrations {
		if err := reg.register(); err != nil {
			return fmt.Errorf("failed to register %s tools: %w", reg.name, err)
		}
	}

	return nil
}

func runHTTPServer(ctx context.Context, httpServer *server.HTTPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := httpServer.Start(); err != nil && err != http.ErrServerClosed {
			serverDone <- err
		}
	}()

	select {
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("server stopped with error: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownTimeout, cancelShutdown := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer cancelShutdown()
		if err := httpServer.Shutdown(shutdownTimeout); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		<-serverDone
		return nil
	}
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}
