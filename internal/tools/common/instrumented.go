package common

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pepealonso95/zeromail/internal/instrumentation"
	"github.com/pepealonso95/zeromail/internal/server"
)

// InstrumentedToolHandler wraps a tool handler with metrics and tracing.
// It records tool invocation metrics and creates a span for the invocation.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandler("my_tool", sc, handler))
func InstrumentedToolHandler(
	toolName string,
	sc *server.ServerContext,
	handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error),
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		metrics := sc.Metrics()

		start := time.Now()
		ctx, span := instrumentation.StartToolSpan(ctx, toolName)
		defer span.End()

		account := GetAccountFromArgs(request.GetArguments())

		result, err := handler(ctx, request)
		duration := time.Since(start)

		status := instrumentation.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = instrumentation.StatusError
			if err != nil {
				instrumentation.SetSpanError(span, err)
			}
		} else {
			instrumentation.SetSpanSuccess(span)
		}

		metrics.RecordToolInvocationWithAccount(ctx, toolName, status, account, duration)

		return result, err
	}
}

// InstrumentedToolHandlerWithService is like InstrumentedToolHandler but also
// records the Google service and operation type for more detailed metrics.
//
// This handler records both:
// - MCP tool invocation metrics (mcp_tool_invocations_total, mcp_tool_duration_seconds)
// - Google API operation metrics (google_api_operations_total, google_api_operation_duration_seconds)
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandlerWithService("my_tool", "calendar", "list", sc, handler))
func InstrumentedToolHandlerWithService(
	toolName string,
	serviceName string,
	operation string,
	sc *server.ServerContext,
	handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error),
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		metrics := sc.Metrics()

		start := time.Now()
		ctx, span := instrumentation.StartGoogleAPISpan(ctx, serviceName, operation)
		defer span.End()

		account := GetAccountFromArgs(request.GetArguments())

		result, err := handler(ctx, request)
		duration := time.Since(start)

		status := instrumentation.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = instrumentation.StatusError
			if err != nil {
				instrumentation.SetSpanError(span, err)
			}
		} else {
			instrumentation.SetSpanSuccess(span)
		}

		metrics.RecordToolInvocationWithAccount(ctx, toolName, status, account, duration)
		metrics.RecordGoogleAPIOperation(ctx, serviceName, operation, status, duration)

		return result, err
	}
}
