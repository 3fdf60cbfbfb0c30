package schedule_tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/pepealonso95/zeromail/internal/calendar"
	"github.com/pepealonso95/zeromail/internal/dialog"
	"github.com/pepealonso95/zeromail/internal/grid"
	"github.com/pepealonso95/zeromail/internal/instrumentation"
	"github.com/pepealonso95/zeromail/internal/server"
	"github.com/pepealonso95/zeromail/internal/tools/common"
	"github.com/pepealonso95/zeromail/internal/view"
)

// RegisterGridTools registers the week-grid gesture tools with the MCP server
func RegisterGridTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Week view tool
	weekViewTool := mcp.NewTool("schedule_week_view",
		mcp.WithDescription("Render the 7-day scheduling grid (Sunday start, half-hour slots) for the week containing a date"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (use 'primary' for primary calendar)"),
		),
		mcp.WithString("date",
			mcp.Description("Anchor date inside the week to render (YYYY-MM-DD or RFC3339). Defaults to today."),
		),
	)

	s.AddTool(weekViewTool, common.InstrumentedToolHandlerWithService(
		"schedule_week_view", instrumentation.ServiceCalendar, "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleWeekView(ctx, request, sc)
		}))

	// Slot click tool
	slotClickTool := mcp.NewTool("schedule_slot_click",
		mcp.WithDescription("Create an event from a slot click: a single click resolves to a one-hour span starting at the clicked half-hour slot"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (use 'primary' for primary calendar)"),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Day column of the click (YYYY-MM-DD)"),
		),
		mcp.WithNumber("y",
			mcp.Required(),
			mcp.Description("Vertical pointer offset within the day column, in pixels (30px per half-hour slot)"),
		),
		mcp.WithString("summary",
			mcp.Required(),
			mcp.Description("Event title/summary"),
		),
		mcp.WithString("description",
			mcp.Description("Event description"),
		),
		mcp.WithString("location",
			mcp.Description("Event location"),
		),
		mcp.WithString("attendees",
			mcp.Description("Comma-separated list of attendee email addresses"),
		),
		mcp.WithString("timeZone",
			mcp.Description("Time zone (e.g., 'America/New_York')"),
		),
	)

	s.AddTool(slotClickTool, common.InstrumentedToolHandlerWithService(
		"schedule_slot_click", instrumentation.ServiceCalendar, "create", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSlotClick(ctx, request, sc)
		}))

	// Drag create tool
	dragCreateTool := mcp.NewTool("schedule_drag_create",
		mcp.WithDescription("Create an event from a vertical drag within one day column; the span snaps to half-hour slots and covers at least one slot"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (use 'primary' for primary calendar)"),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Day column of the drag (YYYY-MM-DD)"),
		),
		mcp.WithNumber("startY",
			mcp.Required(),
			mcp.Description("Vertical offset where the drag began, in pixels"),
		),
		mcp.WithNumber("endY",
			mcp.Required(),
			mcp.Description("Vertical offset where the drag ended, in pixels"),
		),
		mcp.WithString("summary",
			mcp.Required(),
			mcp.Description("Event title/summary"),
		),
		mcp.WithString("description",
			mcp.Description("Event description"),
		),
		mcp.WithString("location",
			mcp.Description("Event location"),
		),
		mcp.WithString("attendees",
			mcp.Description("Comma-separated list of attendee email addresses"),
		),
		mcp.WithString("timeZone",
			mcp.Description("Time zone (e.g., 'America/New_York')"),
		),
	)

	s.AddTool(dragCreateTool, common.InstrumentedToolHandlerWithService(
		"schedule_drag_create", instrumentation.ServiceCalendar, "create", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDragCreate(ctx, request, sc)
		}))

	return nil
}

func handleWeekView(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	calendarID := "primary"
	if calIDVal, ok := args["calendarId"].(string); ok && calIDVal != "" {
		calendarID = calIDVal
	}

	anchor := time.Now()
	if dateVal, ok := args["date"].(string); ok && dateVal != "" {
		parsed, err := parseDay(dateVal)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		anchor = parsed
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	events, err := client.ListWeekEvents(calendarID, anchor)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list week events: %v", err)), nil
	}

	w := view.NewWeekView(anchor, view.DefaultViewportHeight, nil, nil)
	w.SetEvents(calendar.GridEvents(events, calendarID))

	days := w.Days()
	header := fmt.Sprintf("Week of %s to %s (%d events)\n\n",
		days[0].Format("Mon, Jan 2"),
		days[len(days)-1].Format("Mon, Jan 2"),
		len(events))

	return mcp.NewToolResultText(header + view.RenderWeek(w, time.Now())), nil
}

func handleSlotClick(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	calendarID := "primary"
	if calIDVal, ok := args["calendarId"].(string); ok && calIDVal != "" {
		calendarID = calIDVal
	}

	dateStr, ok := args["date"].(string)
	if !ok || dateStr == "" {
		return mcp.NewToolResultError("date is required"), nil
	}
	day, err := parseDay(dateStr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	y, ok := args["y"].(float64)
	if !ok {
		return mcp.NewToolResultError("y is required"), nil
	}

	slots := grid.DaySlots()
	idx := grid.SlotIndexAt(y)
	if idx >= len(slots) {
		idx = len(slots) - 1
	}
	span := grid.ClickSpan(day, slots[idx])

	summary, err := createSpanEvent(ctx, args, span, calendarID, account, sc)
	if err != nil {
		sc.Metrics().RecordGesture(ctx, instrumentation.GestureClick, instrumentation.OutcomeCancelled)
		return mcp.NewToolResultError(err.Error()), nil
	}

	sc.Metrics().RecordGesture(ctx, instrumentation.GestureClick, instrumentation.OutcomeCompleted)
	sc.Metrics().RecordEventCreated(ctx, instrumentation.GestureClick)

	return mcp.NewToolResultText(formatCreatedEvent(summary, span)), nil
}

func handleDragCreate(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	calendarID := "primary"
	if calIDVal, ok := args["calendarId"].(string); ok && calIDVal != "" {
		calendarID = calIDVal
	}

	dateStr, ok := args["date"].(string)
	if !ok || dateStr == "" {
		return mcp.NewToolResultError("date is required"), nil
	}
	day, err := parseDay(dateStr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	startY, ok := args["startY"].(float64)
	if !ok {
		return mcp.NewToolResultError("startY is required"), nil
	}
	endY, ok := args["endY"].(float64)
	if !ok {
		return mcp.NewToolResultError("endY is required"), nil
	}

	// Replay the gesture through the drag state machine so the span matches
	// what the pointer handlers would have produced.
	var d grid.Drag
	d.Begin(day, startY)
	d.Move(day, endY)
	span, ok := d.End()
	if !ok {
		return mcp.NewToolResultError("drag did not resolve to a span"), nil
	}

	summary, err := createSpanEvent(ctx, args, span, calendarID, account, sc)
	if err != nil {
		sc.Metrics().RecordGesture(ctx, instrumentation.GestureDrag, instrumentation.OutcomeCancelled)
		return mcp.NewToolResultError(err.Error()), nil
	}

	sc.Metrics().RecordGesture(ctx, instrumentation.GestureDrag, instrumentation.OutcomeCompleted)
	sc.Metrics().RecordEventCreated(ctx, instrumentation.GestureDrag)

	return mcp.NewToolResultText(formatCreatedEvent(summary, span)), nil
}

// createSpanEvent runs the resolved span through the creation form and
// submits it to the calendar.
func createSpanEvent(ctx context.Context, args map[string]interface{}, span grid.Span, calendarID, account string, sc *server.ServerContext) (*calendar.EventSummary, error) {
	form := dialog.NewForm(span)

	if summaryVal, ok := args["summary"].(string); ok {
		form.Title = summaryVal
	}
	if descVal, ok := args["description"].(string); ok {
		form.Description = descVal
	}
	if locVal, ok := args["location"].(string); ok {
		form.Location = locVal
	}
	if tzVal, ok := args["timeZone"].(string); ok {
		form.TimeZone = tzVal
	}
	if attendeesVal, ok := args["attendees"].(string); ok && attendeesVal != "" {
		form.Attendees = strings.Split(attendeesVal, ",")
	}

	input, err := form.EventInput()
	if err != nil {
		return nil, err
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return nil, err
	}

	created, err := client.CreateEvent(calendarID, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return created, nil
}

func formatCreatedEvent(event *calendar.EventSummary, span grid.Span) string {
	return fmt.Sprintf("Event created: %s\nID: %s\nStart: %s\nEnd: %s\nDuration: %s\n",
		event.Summary,
		event.ID,
		span.Start.Format(time.RFC3339),
		span.End.Format(time.RFC3339),
		span.Duration())
}
