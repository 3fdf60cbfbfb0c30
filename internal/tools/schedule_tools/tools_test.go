package schedule_tools

import (
	"context"
	"strings"
	"testing"
	"time"

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

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		check   func(t *testing.T, got time.Time)
	}{
		{
			name:  "plain date",
			input: "2026-03-04",
			check: func(t *testing.T, got time.Time) {
				if got.Year() != 2026 || got.Month() != time.March || got.Day() != 4 {
					t.Errorf("unexpected date %v", got)
				}
				if got.Hour() != 0 || got.Minute() != 0 {
					t.Errorf("expected midnight, got %v", got)
				}
			},
		},
		{
			name:  "rfc3339 timestamp",
			input: "2026-03-04T15:30:00Z",
			check: func(t *testing.T, got time.Time) {
				if got.Hour() != 15 || got.Minute() != 30 {
					t.Errorf("expected time portion preserved, got %v", got)
				}
			},
		},
		{
			name:    "invalid",
			input:   "04/03/2026",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDay(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestGetCalendarClient_NoCredentials(t *testing.T) {
	sc := newTestServerContext(t)

	_, err := getCalendarClient(context.Background(), "work", sc)
	if err == nil {
		t.Fatal("expected error without registered credentials")
	}
	if !strings.Contains(err.Error(), "work") {
		t.Errorf("expected account name in error, got %q", err.Error())
	}
}

func TestHandleWeekView_InvalidDate(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleWeekView(context.Background(), requestWithArgs(map[string]interface{}{
		"date": "not-a-date",
	}), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("expected error result for invalid date")
	}
}

func TestHandleSlotClick_MissingArgs(t *testing.T) {
	sc := newTestServerContext(t)
	ctx := context.Background()

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{
			name: "missing date",
			args: map[string]interface{}{"y": 135.0, "summary": "Standup"},
		},
		{
			name: "missing y",
			args: map[string]interface{}{"date": "2026-03-04", "summary": "Standup"},
		},
		{
			name: "missing summary",
			args: map[string]interface{}{"date": "2026-03-04", "y": 135.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handleSlotClick(ctx, requestWithArgs(tt.args), sc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result == nil || !result.IsError {
				t.Error("expected error result")
			}
		})
	}
}

func TestHandleDragCreate_MissingCoordinates(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleDragCreate(context.Background(), requestWithArgs(map[string]interface{}{
		"date":    "2026-03-04",
		"summary": "Planning",
		"startY":  300.0,
	}), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("expected error result for missing endY")
	}
}

func TestHandleListEvents_MissingRange(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleListEvents(context.Background(), requestWithArgs(map[string]interface{}{
		"timeMin": "2026-01-01T00:00:00Z",
	}), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("expected error result for missing timeMax")
	}
}

func TestHandleCreateEvent_InvalidRange(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleCreateEvent(context.Background(), requestWithArgs(map[string]interface{}{
		"summary": "Backwards",
		"start":   "2026-01-15T15:00:00Z",
		"end":     "2026-01-15T14:00:00Z",
	}), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("expected error result for inverted range")
	}
}

func TestHandleQueryFreeBusy_MissingCalendars(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleQueryFreeBusy(context.Background(), requestWithArgs(map[string]interface{}{
		"timeMin": "2026-01-01T00:00:00Z",
		"timeMax": "2026-01-02T00:00:00Z",
	}), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("expected error result for missing calendars")
	}
}

func TestHandleFindAvailableTime_InvalidDuration(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleFindAvailableTime(context.Background(), requestWithArgs(map[string]interface{}{
		"attendees":       "amy@example.com",
		"durationMinutes": -30.0,
		"timeMin":         "2026-01-01T09:00:00Z",
		"timeMax":         "2026-01-01T17:00:00Z",
	}), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("expected error result for non-positive duration")
	}
}
