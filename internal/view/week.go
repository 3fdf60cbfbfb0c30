package view

import (
	"log/slog"
	"time"

	"github.com/pepealonso95/zeromail/internal/grid"
	"github.com/pepealonso95/zeromail/internal/logging"
)

// DefaultViewportHeight is the assumed scroll container height when the
// embedder does not report one.
const DefaultViewportHeight = 720.0

// DialogTrigger is invoked when a gesture resolves to a creation span. The
// dialog (and the create-event network call behind it) is the collaborator's
// responsibility; the view only hands over the range.
type DialogTrigger func(span grid.Span)

// WeekView is the controller for the 7-day scheduling surface. It owns all
// transient UI state for one mounted week view instance: the anchor date and
// its derived day/slot sequences, the replacement event list, the in-flight
// drag, and scroll bookkeeping.
type WeekView struct {
	logger *slog.Logger

	anchor time.Time
	days   []time.Time
	slots  []grid.TimeSlot

	events []grid.Event
	byDay  map[time.Time][]grid.Event

	drag      grid.Drag
	dragMoved bool

	scroller     *grid.AutoScroller
	scrollOffset float64

	openDialog DialogTrigger
}

// NewWeekView creates a controller anchored at the given date. The trigger
// may be nil when the embedder only reads geometry (e.g. the CLI renderer).
func NewWeekView(anchor time.Time, viewportHeight float64, trigger DialogTrigger, logger *slog.Logger) *WeekView {
	if viewportHeight <= 0 {
		viewportHeight = DefaultViewportHeight
	}
	if logger == nil {
		logger = slog.Default()
	}
	w := &WeekView{
		logger:     logging.WithService(logger, "week_view"),
		slots:      grid.DaySlots(),
		scroller:   grid.NewAutoScroller(viewportHeight),
		openDialog: trigger,
	}
	w.SetAnchor(anchor)
	return w
}

// SetClock injects a clock for the now-indicator and auto-scroll. Tests use
// this; production leaves the default time.Now.
func (w *WeekView) SetClock(now func() time.Time) {
	w.scroller.Now = now
}

// SetAnchor moves the view to the week containing anchor. The day sequence is
// regenerated, auto-scroll suppression is lifted, and a fresh centering
// offset is applied.
func (w *WeekView) SetAnchor(anchor time.Time) {
	w.anchor = grid.DayOf(anchor)
	w.days = grid.WeekDays(anchor)
	w.drag.Cancel()
	w.scroller.AnchorChanged()
	if offset, ok := w.scroller.Offer(); ok {
		w.scrollOffset = offset
	}
}

// Anchor returns the midnight-normalized anchor date.
func (w *WeekView) Anchor() time.Time {
	return w.anchor
}

// Days returns the 7 day columns of the visible week.
func (w *WeekView) Days() []time.Time {
	return w.days
}

// Slots returns the fixed 48-slot day sequence.
func (w *WeekView) Slots() []grid.TimeSlot {
	return w.slots
}

// SetEvents replaces the visible event list. The collaborator supplies a full
// list on every range change or refresh; there is no partial-update contract.
func (w *WeekView) SetEvents(events []grid.Event) {
	w.events = events
	w.byDay = grid.GroupByDay(events)
}

// EventsOn returns the events stacked in day's column, in arrival order.
func (w *WeekView) EventsOn(day time.Time) []grid.Event {
	return w.byDay[grid.DayOf(day)]
}

// PointerDown starts a gesture at vertical offset y in day's column.
func (w *WeekView) PointerDown(day time.Time, y float64) {
	w.dragMoved = false
	w.drag.Begin(day, y)
}

// PointerMove extends the in-flight gesture. Moves in other day columns are
// ignored by the drag machine.
func (w *WeekView) PointerMove(day time.Time, y float64) {
	if !w.drag.Dragging() {
		return
	}
	w.dragMoved = true
	w.drag.Move(day, y)
}

// PointerUp finishes the gesture. A down/up pair with no intervening move is
// a click shortcut and opens the dialog with the default 60-minute span; a
// real drag hands over its resolved range. Either way the machine is idle
// afterwards.
func (w *WeekView) PointerUp() {
	span, ok := w.drag.End()
	if !ok {
		return
	}
	if !w.dragMoved {
		span.End = span.Start.Add(grid.DefaultClickSpan)
	}
	w.triggerDialog(span)
}

// ClickSlot is the direct shortcut for a click on a slot cell: it opens the
// dialog with the default span starting at the slot, bypassing the drag
// machine entirely.
func (w *WeekView) ClickSlot(day time.Time, slot grid.TimeSlot) {
	w.triggerDialog(grid.ClickSpan(day, slot))
}

func (w *WeekView) triggerDialog(span grid.Span) {
	w.logger.Debug("creation span resolved",
		slog.Time("start", span.Start),
		slog.Time("end", span.End),
	)
	if w.openDialog != nil {
		w.openDialog(span)
	}
}

// DragSpan returns the in-flight drag range for rendering the drag rectangle.
func (w *WeekView) DragSpan() (grid.Span, bool) {
	return w.drag.Span()
}

// NowIndicatorTop returns the current-time line offset, recomputed per call.
func (w *WeekView) NowIndicatorTop() float64 {
	return grid.NowIndicatorTop(w.scroller.Now())
}

// HandleScroll records a manual scroll to the given offset, suppressing
// auto-scroll until the anchor changes or ScrollToCurrentTime is called.
func (w *WeekView) HandleScroll(offset float64) {
	w.scrollOffset = offset
	w.scroller.UserScrolled()
}

// ScrollOffset returns the current scroll position of the grid container.
func (w *WeekView) ScrollOffset() float64 {
	return w.scrollOffset
}

// ScrollToCurrentTime is the imperative handle exposed to the parent: it
// clears auto-scroll suppression and recenters on the current time.
func (w *WeekView) ScrollToCurrentTime() {
	w.scrollOffset = w.scroller.ScrollToNow()
}
