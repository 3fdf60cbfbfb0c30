package view

import (
	"strings"
	"testing"
	"time"

	"github.com/pepealonso95/zeromail/internal/grid"
)

var wednesday = time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

func fixedClock(hour, minute int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, time.January, 15, hour, minute, 0, 0, time.UTC)
	}
}

func newTestView(trigger DialogTrigger) *WeekView {
	w := NewWeekView(wednesday, 600, trigger, nil)
	w.SetClock(fixedClock(12, 0))
	// Re-anchor so the initial centering offset uses the injected clock
	w.SetAnchor(wednesday)
	return w
}

func TestWeekView_DaysAndSlots(t *testing.T) {
	w := newTestView(nil)

	days := w.Days()
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0].Weekday() != time.Sunday {
		t.Errorf("expected Sunday start, got %s", days[0].Weekday())
	}
	if len(w.Slots()) != grid.SlotsPerDay {
		t.Errorf("expected %d slots, got %d", grid.SlotsPerDay, len(w.Slots()))
	}
}

func TestWeekView_DragCreateOpensDialog(t *testing.T) {
	var got grid.Span
	var calls int
	w := newTestView(func(span grid.Span) {
		got = span
		calls++
	})

	day := w.Days()[3] // Wednesday
	w.PointerDown(day, 540) // 09:00
	w.PointerMove(day, 660) // slot 22 -> 11:00
	w.PointerUp()

	if calls != 1 {
		t.Fatalf("expected one dialog trigger, got %d", calls)
	}
	if !got.Start.Equal(day.Add(9 * time.Hour)) {
		t.Errorf("unexpected span start %v", got.Start)
	}
	if !got.End.Equal(day.Add(11 * time.Hour)) {
		t.Errorf("unexpected span end %v", got.End)
	}
	if _, dragging := w.DragSpan(); dragging {
		t.Error("drag should be idle after pointer-up")
	}
}

func TestWeekView_ClickWithoutMoveUsesDefaultSpan(t *testing.T) {
	var got grid.Span
	w := newTestView(func(span grid.Span) { got = span })

	day := w.Days()[2]
	w.PointerDown(day, 870) // slot 29 -> 14:30
	w.PointerUp()

	if !got.Start.Equal(day.Add(14*time.Hour + 30*time.Minute)) {
		t.Errorf("unexpected click start %v", got.Start)
	}
	if got.Duration() != grid.DefaultClickSpan {
		t.Errorf("expected default 60m span, got %v", got.Duration())
	}
}

func TestWeekView_ClickSlotShortcut(t *testing.T) {
	var got grid.Span
	w := newTestView(func(span grid.Span) { got = span })

	day := w.Days()[1]
	w.ClickSlot(day, grid.TimeSlot{Hour: 14, Minute: 30})

	if !got.Start.Equal(day.Add(14*time.Hour + 30*time.Minute)) {
		t.Errorf("unexpected start %v", got.Start)
	}
	if !got.End.Equal(day.Add(15*time.Hour + 30*time.Minute)) {
		t.Errorf("unexpected end %v", got.End)
	}
}

func TestWeekView_PointerUpWithoutDownIsNoop(t *testing.T) {
	var calls int
	w := newTestView(func(grid.Span) { calls++ })

	w.PointerUp()
	if calls != 0 {
		t.Errorf("expected no dialog trigger, got %d", calls)
	}
}

func TestWeekView_SetEventsReplacesList(t *testing.T) {
	w := newTestView(nil)
	day := w.Days()[3]

	w.SetEvents([]grid.Event{
		{ID: "a", Title: "One", Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour)},
	})
	if len(w.EventsOn(day)) != 1 {
		t.Fatalf("expected 1 event, got %d", len(w.EventsOn(day)))
	}

	// A full replacement list drops anything not re-supplied
	w.SetEvents([]grid.Event{
		{ID: "b", Title: "Two", Start: day.Add(13 * time.Hour), End: day.Add(14 * time.Hour)},
	})
	events := w.EventsOn(day)
	if len(events) != 1 || events[0].ID != "b" {
		t.Errorf("expected replacement list, got %+v", events)
	}
}

func TestWeekView_ScrollSuppressionLifecycle(t *testing.T) {
	w := newTestView(nil)

	// Mounted at noon with a 600px viewport: centered at 720-300
	if w.ScrollOffset() != 420 {
		t.Fatalf("expected initial centering offset 420, got %v", w.ScrollOffset())
	}

	w.HandleScroll(100)
	if w.ScrollOffset() != 100 {
		t.Errorf("manual scroll offset not recorded")
	}

	// Anchor change lifts suppression and recenters
	w.SetAnchor(wednesday.AddDate(0, 0, 7))
	if w.ScrollOffset() != 420 {
		t.Errorf("expected recentering after anchor change, got %v", w.ScrollOffset())
	}

	w.HandleScroll(50)
	w.ScrollToCurrentTime()
	if w.ScrollOffset() != 420 {
		t.Errorf("expected imperative scroll-to-now to recenter, got %v", w.ScrollOffset())
	}
}

func TestWeekView_NowIndicator(t *testing.T) {
	w := newTestView(nil)
	if top := w.NowIndicatorTop(); top != 720 {
		t.Errorf("expected indicator at 720 for noon, got %v", top)
	}
}

func TestRenderWeek(t *testing.T) {
	w := newTestView(nil)
	day := w.Days()[3]
	w.SetEvents([]grid.Event{
		{ID: "a", Title: "Standup", Start: day.Add(9 * time.Hour), End: day.Add(9*time.Hour + 30*time.Minute)},
	})

	out := RenderWeek(w, time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC))

	if !strings.Contains(out, "Standup") {
		t.Error("expected event title in rendered grid")
	}
	if !strings.Contains(out, "12:00>") {
		t.Error("expected now marker on the noon slot row")
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != grid.SlotsPerDay+1 {
		t.Errorf("expected header plus %d slot rows, got %d lines", grid.SlotsPerDay, len(lines))
	}
}
