package grid

import (
	"testing"
	"time"
)

func TestDrag_BeginInitializesMinimumSpan(t *testing.T) {
	var d Drag
	d.Begin(testDay, 300)

	span, ok := d.Span()
	if !ok {
		t.Fatal("expected in-flight span after Begin")
	}

	expectedStart := testDay.Add(5 * time.Hour) // y=300 -> slot 10 -> 05:00
	if !span.Start.Equal(expectedStart) {
		t.Errorf("expected start %v, got %v", expectedStart, span.Start)
	}
	if span.Duration() != MinDragSpan {
		t.Errorf("expected initial span of %v, got %v", MinDragSpan, span.Duration())
	}
}

func TestDrag_ShortDragClampedToOneSlot(t *testing.T) {
	// Dragging from y=300 to y=310 covers less than one slot; the span must
	// still be 30 minutes, not zero.
	var d Drag
	d.Begin(testDay, 300)
	d.Move(testDay, 310)

	span, ok := d.End()
	if !ok {
		t.Fatal("expected drag to complete")
	}
	if span.Duration() != 30*time.Minute {
		t.Errorf("expected 30m span, got %v", span.Duration())
	}
}

func TestDrag_UpwardDragClampedToOneSlot(t *testing.T) {
	var d Drag
	d.Begin(testDay, 300)
	d.Move(testDay, 150) // above the start pixel

	span, ok := d.End()
	if !ok {
		t.Fatal("expected drag to complete")
	}
	if span.Duration() < MinDragSpan {
		t.Errorf("span %v shorter than minimum %v", span.Duration(), MinDragSpan)
	}
	if span.End.Before(span.Start) {
		t.Errorf("end %v before start %v", span.End, span.Start)
	}
}

func TestDrag_DownwardDragExtendsSpan(t *testing.T) {
	var d Drag
	d.Begin(testDay, 300) // 05:00
	d.Move(testDay, 420)  // slot 14 -> 07:00

	span, ok := d.End()
	if !ok {
		t.Fatal("expected drag to complete")
	}
	if !span.Start.Equal(testDay.Add(5 * time.Hour)) {
		t.Errorf("unexpected start %v", span.Start)
	}
	if !span.End.Equal(testDay.Add(7 * time.Hour)) {
		t.Errorf("unexpected end %v", span.End)
	}
}

func TestDrag_MoveOutsideOriginColumnIgnored(t *testing.T) {
	otherDay := testDay.AddDate(0, 0, 1)

	var d Drag
	d.Begin(testDay, 300)
	d.Move(otherDay, 900)

	span, ok := d.End()
	if !ok {
		t.Fatal("expected drag to complete")
	}
	// The cross-day move must not have extended the span
	if span.Duration() != MinDragSpan {
		t.Errorf("cross-day move changed span to %v", span.Duration())
	}
}

func TestDrag_EndWithoutBeginIsCancelled(t *testing.T) {
	var d Drag
	if _, ok := d.End(); ok {
		t.Error("expected pointer-up without drag to cancel")
	}
	if d.Dragging() {
		t.Error("machine should be idle after cancelled end")
	}
}

func TestDrag_SecondBeginOverwrites(t *testing.T) {
	// Last writer wins: a new pointer-down while dragging restarts the
	// machine with the new origin.
	var d Drag
	d.Begin(testDay, 300)
	d.Begin(testDay, 600) // 10:00

	span, ok := d.End()
	if !ok {
		t.Fatal("expected drag to complete")
	}
	if !span.Start.Equal(testDay.Add(10 * time.Hour)) {
		t.Errorf("expected restarted drag origin 10:00, got %v", span.Start)
	}
}

func TestDrag_CancelResets(t *testing.T) {
	var d Drag
	d.Begin(testDay, 300)
	d.Cancel()

	if d.Dragging() {
		t.Error("expected idle after cancel")
	}
	if _, ok := d.Span(); ok {
		t.Error("expected no span after cancel")
	}
}

func TestClickSpan(t *testing.T) {
	tests := []struct {
		name          string
		slot          TimeSlot
		expectedStart time.Duration
	}{
		{"afternoon slot", TimeSlot{Hour: 14, Minute: 30}, 14*time.Hour + 30*time.Minute},
		{"first slot", TimeSlot{Hour: 0, Minute: 0}, 0},
		{"last slot", TimeSlot{Hour: 23, Minute: 30}, 23*time.Hour + 30*time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := ClickSpan(testDay, tt.slot)
			if !span.Start.Equal(testDay.Add(tt.expectedStart)) {
				t.Errorf("expected start %v after midnight, got %v", tt.expectedStart, span.Start)
			}
			if span.Duration() != DefaultClickSpan {
				t.Errorf("expected default %v span, got %v", DefaultClickSpan, span.Duration())
			}
		})
	}
}
