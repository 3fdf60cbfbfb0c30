package grid

import (
	"time"
)

const (
	// MinEventHeight is the smallest rendered height of an event block in
	// pixels. Very short (or zero-length) events still get a visible card.
	MinEventHeight = 20.0

	// CompactHeight is the threshold below which an event block is rendered
	// in compact mode, suppressing secondary detail lines.
	CompactHeight = 40.0
)

// Event is the read-only calendar event consumed by the grid. It is produced
// at the collaborator boundary (the calendar client), which guarantees
// Start <= End.
type Event struct {
	ID     string
	Title  string
	Start  time.Time
	End    time.Time
	AllDay bool
	Source string
}

// Box is the computed vertical geometry of one event block within its day
// column.
type Box struct {
	Top     float64
	Height  float64
	Compact bool
}

// Layout computes the vertical position and size of an event block. Height is
// floored at MinEventHeight so malformed or zero-length spans still render.
func Layout(e Event) Box {
	top := TimeToY(e.Start)
	duration := e.End.Sub(e.Start).Minutes()
	height := duration / SlotMinutes * SlotHeight
	if height < MinEventHeight {
		height = MinEventHeight
	}
	return Box{
		Top:     top,
		Height:  height,
		Compact: height < CompactHeight,
	}
}

// GroupByDay buckets events into day columns keyed by the midnight of each
// event's start time. An event belongs to the column its start falls on;
// multi-day events are not split into per-day segments. Within a column the
// input order is preserved, so overlapping events stack in arrival order with
// no lane packing.
func GroupByDay(events []Event) map[time.Time][]Event {
	byDay := make(map[time.Time][]Event)
	for _, e := range events {
		key := DayOf(e.Start)
		byDay[key] = append(byDay[key], e)
	}
	return byDay
}
