package grid

import (
	"time"
)

// DefaultClickSpan is the span pre-filled when a slot is clicked directly
// instead of dragged.
const DefaultClickSpan = 60 * time.Minute

// MinDragSpan is the smallest time range a drag gesture can produce.
const MinDragSpan = SlotMinutes * time.Minute

// Span is the time interval implied by a completed gesture. It is handed to
// the event-creation dialog; the drag machine itself never persists it.
type Span struct {
	Start time.Time
	End   time.Time
}

// Duration returns the length of the span.
func (s Span) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Drag is the drag-to-create state machine for a week view. The zero value is
// an idle machine ready for use.
//
// States: idle -> dragging -> (completed | cancelled) -> idle. Only one drag
// is active at a time; a second Begin while dragging overwrites the in-flight
// state (last writer wins).
type Drag struct {
	dragging bool
	day      time.Time
	start    time.Time
	end      time.Time
	startY   float64
	currentY float64
}

// Dragging reports whether a drag is in flight.
func (d *Drag) Dragging() bool {
	return d.dragging
}

// Begin starts a drag at vertical offset y inside the column for day. The
// initial span is one slot (30 minutes) beginning at the slot under the
// pointer.
func (d *Drag) Begin(day time.Time, y float64) {
	d.dragging = true
	d.day = DayOf(day)
	d.startY = y
	d.currentY = y
	d.start = YToTime(y, day)
	d.end = d.start.Add(MinDragSpan)
}

// Move updates the drag end for a pointer position at offset y in the column
// for day. Moves outside the originating day column are ignored; there is no
// cross-day drag. The end is floored at one slot below the start pixel so the
// span never shrinks under 30 minutes, even when dragging upward.
func (d *Drag) Move(day time.Time, y float64) {
	if !d.dragging || !DayOf(day).Equal(d.day) {
		return
	}
	d.currentY = y
	floor := d.startY + SlotHeight
	if y < floor {
		y = floor
	}
	d.end = YToTime(y, d.day)
}

// End finishes the gesture. It returns the resolved span and true when the
// drag completes normally; a pointer-up without a prior Begin returns false.
// Either way the machine resets to idle.
func (d *Drag) End() (Span, bool) {
	if !d.dragging || d.start.IsZero() {
		*d = Drag{}
		return Span{}, false
	}
	span := Span{Start: d.start, End: d.end}
	*d = Drag{}
	return span, true
}

// Cancel discards any in-flight drag.
func (d *Drag) Cancel() {
	*d = Drag{}
}

// Span returns the in-flight span while dragging, for rendering the drag
// rectangle.
func (d *Drag) Span() (Span, bool) {
	if !d.dragging {
		return Span{}, false
	}
	return Span{Start: d.start, End: d.end}, true
}

// ClickSpan resolves a direct click on a slot cell to a creation span with
// the default 60-minute length, bypassing the drag machine.
func ClickSpan(day time.Time, slot TimeSlot) Span {
	start := SlotTime(day, slot)
	return Span{Start: start, End: start.Add(DefaultClickSpan)}
}
