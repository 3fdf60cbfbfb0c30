package schedule_tools

import (
	"context"
	"fmt"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/pepealonso95/zeromail/internal/calendar"
	"github.com/pepealonso95/zeromail/internal/server"
)

// getCalendarClient retrieves or creates a calendar client for the specified account
func getCalendarClient(_ context.Context, account string, sc *server.ServerContext) (*calendar.Client, error) {
	client := sc.CalendarClientForAccount(account)
	if client == nil {
		return nil, fmt.Errorf("no Google credentials registered for account %q; start the server with an access token for this account", account)
	}
	return client, nil
}

// parseDay parses a day argument, accepting a plain date or a full RFC3339
// timestamp. Plain dates are interpreted in the local time zone, matching the
// grid's day columns.
func parseDay(value string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC3339", value)
	}
	return t, nil
}

// RegisterScheduleTools registers all scheduling-related tools with the MCP server
func RegisterScheduleTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := RegisterGridTools(s, sc); err != nil {
		return fmt.Errorf("failed to register grid tools: %w", err)
	}

	if err := RegisterEventTools(s, sc); err != nil {
		return fmt.Errorf("failed to register event tools: %w", err)
	}

	if err := RegisterAvailabilityTools(s, sc); err != nil {
		return fmt.Errorf("failed to register availability tools: %w", err)
	}

	return nil
}
