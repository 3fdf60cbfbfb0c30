package grid

import (
	"fmt"
	"time"
)

const (
	// SlotMinutes is the duration of one grid slot in minutes.
	SlotMinutes = 30

	// SlotHeight is the vertical size of one slot in pixels. Every mapping
	// between pixels and time assumes exactly SlotHeight pixels per slot.
	SlotHeight = 30.0

	// SlotsPerDay is 24 hours * 2 slots per hour. The grid always has 48
	// slots regardless of DST transitions on the rendered day.
	SlotsPerDay = 48

	// DaysPerWeek is the number of day columns in the week view.
	DaysPerWeek = 7

	// MinutesPerDay is 24 hours * 60 minutes.
	MinutesPerDay = 1440
)

// TimeSlot identifies one half-hour cell of a day column.
type TimeSlot struct {
	Hour   int // 0..23
	Minute int // 0 or 30
}

// Minutes returns the slot's offset from midnight in minutes.
func (s TimeSlot) Minutes() int {
	return s.Hour*60 + s.Minute
}

// Index returns the slot's position in the day sequence (0..47).
func (s TimeSlot) Index() int {
	return s.Minutes() / SlotMinutes
}

// String formats the slot as "HH:MM".
func (s TimeSlot) String() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute)
}

// DaySlots returns the fixed ordered sequence of 48 half-hour slots for one
// day, from 00:00 through 23:30. The result is freshly allocated on each call
// so callers may keep or mutate it.
func DaySlots() []TimeSlot {
	slots := make([]TimeSlot, 0, SlotsPerDay)
	for hour := 0; hour < 24; hour++ {
		slots = append(slots, TimeSlot{Hour: hour}, TimeSlot{Hour: hour, Minute: 30})
	}
	return slots
}

// DayOf truncates t to midnight of its calendar day, preserving the location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekDays returns the 7 consecutive dates of the week containing anchor,
// starting on Sunday. Each entry is midnight in anchor's location. The result
// is a pure function of the anchor date: the same anchor always yields an
// identical sequence.
func WeekDays(anchor time.Time) []time.Time {
	start := DayOf(anchor).AddDate(0, 0, -int(anchor.Weekday()))
	days := make([]time.Time, DaysPerWeek)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}
