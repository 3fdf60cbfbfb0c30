package calendar

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"

	"github.com/pepealonso95/zeromail/internal/grid"
)

// EventInput represents the input for creating or updating a calendar event
type EventInput struct {
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	TimeZone    string
	AllDay      bool
	Attendees   []string
	Recurrence  []string // RRULE, EXRULE, RDATE, EXDATE
}

// EventSummary represents a simplified calendar event for listing
type EventSummary struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Creator     string
	Organizer   string
	Status      string
	Attendees   []AttendeeInfo
}

// AttendeeInfo represents information about an event attendee
type AttendeeInfo struct {
	Email          string
	DisplayName    string
	ResponseStatus string // "needsAction", "declined", "tentative", "accepted"
	Optional       bool
	Organizer      bool
}

// CalendarInfo represents information about a calendar
type CalendarInfo struct {
	ID          string
	Summary     string
	Description string
	TimeZone    string
	Primary     bool
	AccessRole  string // "owner", "writer", "reader", "freeBusyReader"
}

// FreeBusyInfo represents availability information for a calendar
type FreeBusyInfo struct {
	Calendar string
	Busy     []TimeRange
	Errors   []string
}

// TimeRange represents a time range
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// AvailableSlot represents an available time slot for scheduling
type AvailableSlot struct {
	Start    time.Time
	End      time.Time
	Duration time.Duration
}

// GridEvent converts an event summary into the read-only record consumed by
// the week grid. Inverted ranges (end before start) are clamped here so the
// grid's Start <= End invariant holds at the boundary; the source tag records
// which calendar the event came from.
func (s EventSummary) GridEvent(source string) grid.Event {
	start, end := s.Start, s.End
	if end.Before(start) {
		start, end = end, start
	}
	return grid.Event{
		ID:     s.ID,
		Title:  s.Summary,
		Start:  start,
		End:    end,
		AllDay: s.AllDay,
		Source: source,
	}
}

// GridEvents converts a list of event summaries for the grid, preserving
// order (the grid stacks overlapping events in arrival order).
func GridEvents(summaries []EventSummary, source string) []grid.Event {
	events := make([]grid.Event, 0, len(summaries))
	for _, s := range summaries {
		events = append(events, s.GridEvent(source))
	}
	return events
}

// toEventSummary converts a Google Calendar event to an EventSummary
func toEventSummary(event *calendar.Event) EventSummary {
	if event == nil {
		return EventSummary{}
	}

	summary := EventSummary{
		ID:          event.Id,
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		Status:      event.Status,
	}

	// Parse start time. All-day events carry a Date instead of a DateTime.
	if event.Start != nil {
		if event.Start.DateTime != "" {
			if t, err := time.Parse(time.RFC3339, event.Start.DateTime); err == nil {
				summary.Start = t
			}
		} else if event.Start.Date != "" {
			if t, err := time.Parse("2006-01-02", event.Start.Date); err == nil {
				summary.Start = t
				summary.AllDay = true
			}
		}
	}

	// Parse end time
	if event.End != nil {
		if event.End.DateTime != "" {
			if t, err := time.Parse(time.RFC3339, event.End.DateTime); err == nil {
				summary.End = t
			}
		} else if event.End.Date != "" {
			if t, err := time.Parse("2006-01-02", event.End.Date); err == nil {
				summary.End = t
			}
		}
	}

	// Creator and organizer
	if event.Creator != nil {
		summary.Creator = event.Creator.Email
	}
	if event.Organizer != nil {
		summary.Organizer = event.Organizer.Email
	}

	// Attendees
	for _, att := range event.Attendees {
		summary.Attendees = append(summary.Attendees, AttendeeInfo{
			Email:          att.Email,
			DisplayName:    att.DisplayName,
			ResponseStatus: att.ResponseStatus,
			Optional:       att.Optional,
			Organizer:      att.Organizer,
		})
	}

	return summary
}

// toCalendarInfo converts a Google Calendar list entry to CalendarInfo
func toCalendarInfo(entry *calendar.CalendarListEntry) CalendarInfo {
	if entry == nil {
		return CalendarInfo{}
	}
	return CalendarInfo{
		ID:          entry.Id,
		Summary:     entry.Summary,
		Description: entry.Description,
		TimeZone:    entry.TimeZone,
		Primary:     entry.Primary,
		AccessRole:  entry.AccessRole,
	}
}
