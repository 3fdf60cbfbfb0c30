package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/pepealonso95/zeromail/internal/server"
)

func TestParseAnchorDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain date", "2026-03-04", false},
		{"rfc3339", "2026-03-04T10:00:00Z", false},
		{"invalid", "March 4th", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAnchorDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.IsZero() {
				t.Error("expected non-zero time")
			}
		})
	}
}

func TestParseAnchorDate_PlainDateIsMidnight(t *testing.T) {
	got, err := parseAnchorDate("2026-03-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("expected midnight, got %v", got)
	}
	if got.Month() != time.March || got.Day() != 4 {
		t.Errorf("unexpected date %v", got)
	}
}

func TestRegisterAllTools(t *testing.T) {
	sc, err := server.NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	mcpSrv := mcpserver.NewMCPServer("zeromail", "test",
		mcpserver.WithToolCapabilities(true),
	)

	if err := registerAllTools(mcpSrv, sc); err != nil {
		t.Fatalf("unexpected registration error: %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := newVersionCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs(nil)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "zeromail version") {
		t.Errorf("unexpected version output: %q", buf.String())
	}
}

func TestWeekCommand_RendersOfflineGrid(t *testing.T) {
	t.Setenv("GOOGLE_ACCESS_TOKEN", "")

	var buf bytes.Buffer
	cmd := newWeekCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--date", "2026-03-04"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	// Week containing Wednesday 2026-03-04 starts Sunday 2026-03-01
	if !strings.Contains(out, "Sun 01 Mar") {
		t.Errorf("expected Sunday column header in output:\n%s", out)
	}
	if !strings.Contains(out, "00:00") || !strings.Contains(out, "23:30") {
		t.Errorf("expected full slot range in output:\n%s", out)
	}
}

func TestWeekCommand_InvalidDate(t *testing.T) {
	cmd := newWeekCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--date", "bogus"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for invalid date")
	}
}
