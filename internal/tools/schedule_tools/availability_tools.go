package schedule_tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/pepealonso95/zeromail/internal/instrumentation"
	"github.com/pepealonso95/zeromail/internal/server"
	"github.com/pepealonso95/zeromail/internal/tools/common"
)

// RegisterAvailabilityTools registers free/busy and availability tools with the MCP server
func RegisterAvailabilityTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Query free/busy tool
	queryFreeBusyTool := mcp.NewTool("calendar_query_freebusy",
		mcp.WithDescription("Check availability for one or more calendars/attendees in a time range"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("timeMin",
			mcp.Required(),
			mcp.Description("Start time for the range (RFC3339 format, e.g., '2026-01-01T00:00:00Z')"),
		),
		mcp.WithString("timeMax",
			mcp.Required(),
			mcp.Description("End time for the range (RFC3339 format, e.g., '2026-01-31T23:59:59Z')"),
		),
		mcp.WithString("calendars",
			mcp.Required(),
			mcp.Description("Comma-separated list of calendar IDs or email addresses to check"),
		),
	)

	s.AddTool(queryFreeBusyTool, common.InstrumentedToolHandlerWithService(
		"calendar_query_freebusy", instrumentation.ServiceCalendar, "freebusy", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleQueryFreeBusy(ctx, request, sc)
		}))

	// Find available time tool
	findAvailableTimeTool := mcp.NewTool("calendar_find_available_time",
		mcp.WithDescription("Find available time slots for scheduling a meeting with one or more attendees"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("attendees",
			mcp.Required(),
			mcp.Description("Comma-separated list of attendee email addresses"),
		),
		mcp.WithNumber("durationMinutes",
			mcp.Required(),
			mcp.Description("Meeting duration in minutes"),
		),
		mcp.WithString("timeMin",
			mcp.Required(),
			mcp.Description("Start time for search range (RFC3339 format, e.g., '2026-01-01T09:00:00Z')"),
		),
		mcp.WithString("timeMax",
			mcp.Required(),
			mcp.Description("End time for search range (RFC3339 format, e.g., '2026-01-01T17:00:00Z')"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of available slots to return (default: 10)"),
		),
	)

	s.AddTool(findAvailableTimeTool, common.InstrumentedToolHandlerWithService(
		"calendar_find_available_time", instrumentation.ServiceCalendar, "freebusy", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleFindAvailableTime(ctx, request, sc)
		}))

	return nil
}

func handleQueryFreeBusy(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	timeMinStr, ok := args["timeMin"].(string)
	if !ok || timeMinStr == "" {
		return mcp.NewToolResultError("timeMin is required"), nil
	}
	timeMin, err := time.Parse(time.RFC3339, timeMinStr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid timeMin format: %v", err)), nil
	}

	timeMaxStr, ok := args["timeMax"].(string)
	if !ok || timeMaxStr == "" {
		return mcp.NewToolResultError("timeMax is required"), nil
	}
	timeMax, err := time.Parse(time.RFC3339, timeMaxStr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid timeMax format: %v", err)), nil
	}

	calendarsStr, ok := args["calendars"].(string)
	if !ok || calendarsStr == "" {
		return mcp.NewToolResultError("calendars is required"), nil
	}

	calendars := strings.Split(calendarsStr, ",")
	for i := range calendars {
		calendars[i] = strings.TrimSpace(calendars[i])
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	freeBusyInfos, err := client.QueryFreeBusy(timeMin, timeMax, calendars)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to query free/busy: %v", err)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Free/Busy information for %d calendar(s):\n\n", len(freeBusyInfos))
	for _, info := range freeBusyInfos {
		fmt.Fprintf(&sb, "Calendar: %s\n", info.Calendar)

		if len(info.Errors) > 0 {
			fmt.Fprintf(&sb, "  Errors: %s\n", strings.Join(info.Errors, ", "))
		}

		if len(info.Busy) == 0 {
			sb.WriteString("  Status: FREE for entire range\n")
		} else {
			fmt.Fprintf(&sb, "  Busy periods: %d\n", len(info.Busy))
			for i, busy := range info.Busy {
				fmt.Fprintf(&sb, "  %d. %s to %s\n",
					i+1,
					busy.Start.Format("2006-01-02 15:04"),
					busy.End.Format("2006-01-02 15:04"))
			}
		}
		sb.WriteString("\n")
	}

	return mcp.NewToolResultText(sb.String()), nil
}

func handleFindAvailableTime(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	attendeesStr, ok := args["attendees"].(string)
	if !ok || attendeesStr == "" {
		return mcp.NewToolResultError("attendees is required"), nil
	}

	attendees := strings.Split(attendeesStr, ",")
	for i := range attendees {
		attendees[i] = strings.TrimSpace(attendees[i])
	}

	durationMinutes, ok := args["durationMinutes"].(float64)
	if !ok || durationMinutes <= 0 {
		return mcp.NewToolResultError("durationMinutes is required and must be positive"), nil
	}
	duration := time.Duration(durationMinutes) * time.Minute

	timeMinStr, ok := args["timeMin"].(string)
	if !ok || timeMinStr == "" {
		return mcp.NewToolResultError("timeMin is required"), nil
	}
	timeMin, err := time.Parse(time.RFC3339, timeMinStr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid timeMin format: %v", err)), nil
	}

	timeMaxStr, ok := args["timeMax"].(string)
	if !ok || timeMaxStr == "" {
		return mcp.NewToolResultError("timeMax is required"), nil
	}
	timeMax, err := time.Parse(time.RFC3339, timeMaxStr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid timeMax format: %v", err)), nil
	}

	maxResults := 10
	if maxResultsVal, ok := args["maxResults"].(float64); ok && maxResultsVal > 0 {
		maxResults = int(maxResultsVal)
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	slots, err := client.FindAvailableSlots(attendees, duration, timeMin, timeMax)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to find available time: %v", err)), nil
	}

	if len(slots) == 0 {
		return mcp.NewToolResultText("No available time slots found for the specified criteria"), nil
	}

	if len(slots) > maxResults {
		slots = slots[:maxResults]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d available time slot(s) for %d minute meeting:\n\n",
		len(slots), int(durationMinutes))

	for i, slot := range slots {
		fmt.Fprintf(&sb, "%d. %s to %s (%s)\n",
			i+1,
			slot.Start.Format("Mon, Jan 2 at 3:04 PM"),
			slot.End.Format("3:04 PM MST"),
			slot.Start.Weekday())
	}

	return mcp.NewToolResultText(sb.String()), nil
}
