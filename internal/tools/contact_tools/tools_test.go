package contact_tools

import (
	"context"
	"strings"
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

func requestWithArgs(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestHandleSearchContacts_MissingQuery(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleSearchContacts(context.Background(), requestWithArgs(map[string]interface{}{}), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("expected error result for missing query")
	}
}

func TestHandleSearchContacts_NoCredentials(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleSearchContacts(context.Background(), requestWithArgs(map[string]interface{}{
		"query":   "amy",
		"account": "work",
	}), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected error result without registered credentials")
	}

	text := resultText(t, result)
	if !strings.Contains(text, "work") {
		t.Errorf("expected account name in error, got %q", text)
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("expected result content")
	}
	text, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatal("expected text content")
	}
	return text.Text
}
