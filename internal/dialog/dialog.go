// Package dialog holds the event-creation form state opened when a grid
// gesture resolves to a time span. The form validates its fields and emits
// the create-event payload; the network call itself belongs to the calendar
// client.
package dialog

import (
	"errors"
	"strings"
	"time"

	"github.com/pepealonso95/zeromail/internal/calendar"
	"github.com/pepealonso95/zeromail/internal/grid"
)

// Form validation errors.
var (
	ErrTitleRequired = errors.New("event title is required")
	ErrInvalidRange  = errors.New("event end must be after its start")
)

// Form is the event-creation form, prefilled from a drag span or slot click.
type Form struct {
	Title       string
	Description string
	Location    string
	Attendees   []string
	AllDay      bool
	TimeZone    string
	Start       time.Time
	End         time.Time
}

// NewForm creates a form prefilled with the span resolved by the grid.
func NewForm(span grid.Span) *Form {
	return &Form{
		Start: span.Start,
		End:   span.End,
	}
}

// Validate checks the form before submission.
func (f *Form) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return ErrTitleRequired
	}
	if !f.End.After(f.Start) {
		return ErrInvalidRange
	}
	return nil
}

// EventInput converts the validated form into the calendar create payload.
func (f *Form) EventInput() (calendar.EventInput, error) {
	if err := f.Validate(); err != nil {
		return calendar.EventInput{}, err
	}

	attendees := make([]string, 0, len(f.Attendees))
	for _, a := range f.Attendees {
		a = strings.TrimSpace(a)
		if a != "" {
			attendees = append(attendees, a)
		}
	}

	return calendar.EventInput{
		Summary:     strings.TrimSpace(f.Title),
		Description: f.Description,
		Location:    f.Location,
		Start:       f.Start,
		End:         f.End,
		TimeZone:    f.TimeZone,
		AllDay:      f.AllDay,
		Attendees:   attendees,
	}, nil
}
