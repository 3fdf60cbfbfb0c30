package common

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pepealonso95/zeromail/internal/server"
)

func newTestServerContext(t *testing.T) *server.ServerContext {
	t.Helper()
	sc, err := server.NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func TestInstrumentedToolHandler_Success(t *testing.T) {
	ctx := context.Background()
	sc := newTestServerContext(t)

	called := false
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		called = true
		return mcp.NewToolResultText("success"), nil
	}

	wrapped := InstrumentedToolHandler("test_tool", sc, handler)

	result, err := wrapped(ctx, mcp.CallToolRequest{})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if !called {
		t.Error("expected handler to be called")
	}
	if result == nil {
		t.Error("expected result, got nil")
	}
}

func TestInstrumentedToolHandler_Error(t *testing.T) {
	ctx := context.Background()
	sc := newTestServerContext(t)

	expectedErr := errors.New("test error")
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, expectedErr
	}

	wrapped := InstrumentedToolHandler("test_tool", sc, handler)

	if _, err := wrapped(ctx, mcp.CallToolRequest{}); !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

func TestInstrumentedToolHandler_ErrorResult(t *testing.T) {
	ctx := context.Background()
	sc := newTestServerContext(t)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultError("error message"), nil
	}

	wrapped := InstrumentedToolHandler("test_tool", sc, handler)

	result, err := wrapped(ctx, mcp.CallToolRequest{})
	if err != nil {
		t.Errorf("expected no Go error, got %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("expected error result to be passed through")
	}
}

func TestInstrumentedToolHandlerWithService(t *testing.T) {
	ctx := context.Background()
	sc := newTestServerContext(t)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText("ok"), nil
	}

	wrapped := InstrumentedToolHandlerWithService("test_tool", "calendar", "list", sc, handler)

	result, err := wrapped(ctx, mcp.CallToolRequest{})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if result == nil {
		t.Error("expected result, got nil")
	}
}
