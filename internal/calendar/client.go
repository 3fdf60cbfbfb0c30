package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/pepealonso95/zeromail/internal/grid"
)

// Client wraps the Google Calendar service
type Client struct {
	svc     *calendar.Service
	account string // The account this client is associated with
}

// NewClient creates a new Calendar client using the provided token source.
// Token acquisition and refresh are the caller's responsibility.
func NewClient(ctx context.Context, tokenSource oauth2.TokenSource) (*Client, error) {
	return NewClientForAccount(ctx, "default", tokenSource)
}

// NewClientForAccount creates a new Calendar client for a specific account
// using the provided token source.
func NewClientForAccount(ctx context.Context, account string, tokenSource oauth2.TokenSource) (*Client, error) {
	if tokenSource == nil {
		return nil, fmt.Errorf("token source cannot be nil")
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	return newClientWithHTTPClient(ctx, account, httpClient)
}

// NewClientWithHTTPClient creates a Calendar client from a pre-authenticated
// HTTP client. Useful for tests that stub the transport.
func NewClientWithHTTPClient(ctx context.Context, account string, httpClient *http.Client) (*Client, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("http client cannot be nil")
	}
	return newClientWithHTTPClient(ctx, account, httpClient)
}

func newClientWithHTTPClient(ctx context.Context, account string, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{
		svc:     svc,
		account: account,
	}, nil
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// ListEvents lists events in a calendar within a time range, with recurring
// events expanded to single instances and ordered by start time.
func (c *Client) ListEvents(calendarID string, timeMin, timeMax time.Time, query string) ([]EventSummary, error) {
	call := c.svc.Events.List(calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime")

	if query != "" {
		call = call.Q(query)
	}

	events, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	var summaries []EventSummary
	for _, event := range events.Items {
		summaries = append(summaries, toEventSummary(event))
	}

	return summaries, nil
}

// ListWeekEvents lists the events for the 7-day window of the week containing
// anchor, the full replacement list the week view expects on each range
// change.
func (c *Client) ListWeekEvents(calendarID string, anchor time.Time) ([]EventSummary, error) {
	days := grid.WeekDays(anchor)
	weekStart := days[0]
	weekEnd := days[len(days)-1].AddDate(0, 0, 1)
	return c.ListEvents(calendarID, weekStart, weekEnd, "")
}

// GetEvent retrieves a specific event by ID
func (c *Client) GetEvent(calendarID, eventID string) (*EventSummary, error) {
	event, err := c.svc.Events.Get(calendarID, eventID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	summary := toEventSummary(event)
	return &summary, nil
}

// CreateEvent creates a new calendar event
func (c *Client) CreateEvent(calendarID string, input EventInput) (*EventSummary, error) {
	event := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Location:    input.Location,
	}

	// Set start and end times
	// For all-day events, use Date instead of DateTime
	if input.AllDay {
		event.Start = &calendar.EventDateTime{
			Date: input.Start.Format("2006-01-02"),
		}
		event.End = &calendar.EventDateTime{
			Date: input.End.Format("2006-01-02"),
		}
	} else {
		if input.TimeZone == "" {
			input.TimeZone = "UTC"
		}
		event.Start = &calendar.EventDateTime{
			DateTime: input.Start.Format(time.RFC3339),
			TimeZone: input.TimeZone,
		}
		event.End = &calendar.EventDateTime{
			DateTime: input.End.Format(time.RFC3339),
			TimeZone: input.TimeZone,
		}
	}

	// Set attendees
	if len(input.Attendees) > 0 {
		var attendees []*calendar.EventAttendee
		for _, email := range input.Attendees {
			attendees = append(attendees, &calendar.EventAttendee{
				Email: email,
			})
		}
		event.Attendees = attendees
	}

	// Set recurrence rules
	if len(input.Recurrence) > 0 {
		event.Recurrence = input.Recurrence
	}

	created, err := c.svc.Events.Insert(calendarID, event).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	summary := toEventSummary(created)
	return &summary, nil
}

// UpdateEvent updates an existing calendar event
func (c *Client) UpdateEvent(calendarID, eventID string, input EventInput) (*EventSummary, error) {
	// Get the existing event first
	existing, err := c.svc.Events.Get(calendarID, eventID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get existing event: %w", err)
	}

	// Update fields
	if input.Summary != "" {
		existing.Summary = input.Summary
	}
	if input.Description != "" {
		existing.Description = input.Description
	}
	if input.Location != "" {
		existing.Location = input.Location
	}

	// Update times if provided
	if !input.Start.IsZero() {
		if input.AllDay {
			existing.Start = &calendar.EventDateTime{
				Date: input.Start.Format("2006-01-02"),
			}
		} else {
			if input.TimeZone == "" {
				input.TimeZone = "UTC"
			}
			existing.Start = &calendar.EventDateTime{
				DateTime: input.Start.Format(time.RFC3339),
				TimeZone: input.TimeZone,
			}
		}
	}
	if !input.End.IsZero() {
		if input.AllDay {
			existing.End = &calendar.EventDateTime{
				Date: input.End.Format("2006-01-02"),
			}
		} else {
			if input.TimeZone == "" {
				input.TimeZone = "UTC"
			}
			existing.End = &calendar.EventDateTime{
				DateTime: input.End.Format(time.RFC3339),
				TimeZone: input.TimeZone,
			}
		}
	}

	// Update attendees if provided
	if len(input.Attendees) > 0 {
		var attendees []*calendar.EventAttendee
		for _, email := range input.Attendees {
			attendees = append(attendees, &calendar.EventAttendee{
				Email: email,
			})
		}
		existing.Attendees = attendees
	}

	// Update recurrence if provided
	if len(input.Recurrence) > 0 {
		existing.Recurrence = input.Recurrence
	}

	// Update the event
	updated, err := c.svc.Events.Update(calendarID, eventID, existing).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	summary := toEventSummary(updated)
	return &summary, nil
}

// DeleteEvent deletes a calendar event
func (c *Client) DeleteEvent(calendarID, eventID string) error {
	err := c.svc.Events.Delete(calendarID, eventID).Do()
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// ListCalendars lists all calendars accessible to the user
func (c *Client) ListCalendars() ([]CalendarInfo, error) {
	list, err := c.svc.CalendarList.List().Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	var calendars []CalendarInfo
	for _, entry := range list.Items {
		calendars = append(calendars, toCalendarInfo(entry))
	}

	return calendars, nil
}

// GetCalendar retrieves information about a specific calendar
func (c *Client) GetCalendar(calendarID string) (*CalendarInfo, error) {
	entry, err := c.svc.CalendarList.Get(calendarID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar: %w", err)
	}

	info := toCalendarInfo(entry)
	return &info, nil
}

// GetPrimaryCalendar retrieves information about the primary calendar
func (c *Client) GetPrimaryCalendar() (*CalendarInfo, error) {
	return c.GetCalendar("primary")
}

// QueryFreeBusy checks availability for calendars in a time range
func (c *Client) QueryFreeBusy(timeMin, timeMax time.Time, calendarIDs []string) ([]FreeBusyInfo, error) {
	items := make([]*calendar.FreeBusyRequestItem, len(calendarIDs))
	for i, id := range calendarIDs {
		items[i] = &calendar.FreeBusyRequestItem{Id: id}
	}

	query := &calendar.FreeBusyRequest{
		TimeMin: timeMin.Format(time.RFC3339),
		TimeMax: timeMax.Format(time.RFC3339),
		Items:   items,
	}

	result, err := c.svc.Freebusy.Query(query).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to query freebusy: %w", err)
	}

	var infos []FreeBusyInfo
	for calID, cal := range result.Calendars {
		info := FreeBusyInfo{
			Calendar: calID,
		}

		// Add busy time ranges
		for _, busy := range cal.Busy {
			start, _ := time.Parse(time.RFC3339, busy.Start)
			end, _ := time.Parse(time.RFC3339, busy.End)
			info.Busy = append(info.Busy, TimeRange{Start: start, End: end})
		}

		// Add errors if any
		for _, err := range cal.Errors {
			info.Errors = append(info.Errors, err.Reason)
		}

		infos = append(infos, info)
	}

	return infos, nil
}

// FindAvailableSlots finds available time slots for scheduling a meeting.
// It checks the availability of all specified attendees and returns slots
// where everyone is free.
func (c *Client) FindAvailableSlots(attendees []string, duration time.Duration, timeMin, timeMax time.Time) ([]AvailableSlot, error) {
	// Query freebusy for all attendees
	freeBusyInfos, err := c.QueryFreeBusy(timeMin, timeMax, attendees)
	if err != nil {
		return nil, err
	}

	// Merge all busy times into a single list
	var allBusyTimes []TimeRange
	for _, info := range freeBusyInfos {
		allBusyTimes = append(allBusyTimes, info.Busy...)
	}

	return findGaps(allBusyTimes, duration, timeMin, timeMax), nil
}

// findGaps scans the search range for slots of the requested duration that do
// not overlap any busy range, advancing in 15-minute increments through free
// time and skipping to the end of each busy period it collides with.
func findGaps(busyTimes []TimeRange, duration time.Duration, timeMin, timeMax time.Time) []AvailableSlot {
	var availableSlots []AvailableSlot

	currentTime := timeMin
	for currentTime.Add(duration).Before(timeMax) || currentTime.Add(duration).Equal(timeMax) {
		slotEnd := currentTime.Add(duration)

		// Check if this slot overlaps with any busy time
		isFree := true
		for _, busy := range busyTimes {
			if currentTime.Before(busy.End) && slotEnd.After(busy.Start) {
				isFree = false
				// Skip to the end of this busy period
				if busy.End.After(currentTime) {
					currentTime = busy.End
				}
				break
			}
		}

		if isFree {
			availableSlots = append(availableSlots, AvailableSlot{
				Start:    currentTime,
				End:      slotEnd,
				Duration: duration,
			})
			// Move to next potential slot (15-minute increments)
			currentTime = currentTime.Add(15 * time.Minute)
		}
	}

	return availableSlots
}
