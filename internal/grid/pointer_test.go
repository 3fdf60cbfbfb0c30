package grid

import (
	"testing"
	"time"
)

var testDay = time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

func TestYToTime(t *testing.T) {
	tests := []struct {
		name           string
		y              float64
		expectedHour   int
		expectedMinute int
	}{
		{"top of column", 0, 0, 0},
		{"within first slot", 29, 0, 0},
		{"second slot boundary", 30, 0, 30},
		{"mid-slot rounds down", 135, 2, 0},
		{"exact slot boundary", 120, 2, 0},
		{"afternoon", 870, 14, 30},
		{"last slot", 1410, 23, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YToTime(tt.y, testDay)
			if got.Hour() != tt.expectedHour || got.Minute() != tt.expectedMinute {
				t.Errorf("YToTime(%v) = %02d:%02d, expected %02d:%02d",
					tt.y, got.Hour(), got.Minute(), tt.expectedHour, tt.expectedMinute)
			}
			if got.Second() != 0 || got.Nanosecond() != 0 {
				t.Errorf("YToTime(%v) has non-zero seconds: %v", tt.y, got)
			}
		})
	}
}

func TestYToTime_SlotQuantization(t *testing.T) {
	// For all y >= 0, the resolved time is floor(y/30)*30 minutes from
	// midnight.
	for y := 0.0; y < float64(SlotsPerDay)*SlotHeight; y += 7.5 {
		got := YToTime(y, testDay)
		minutes := got.Hour()*60 + got.Minute()
		expected := int(y/SlotHeight) * SlotMinutes
		if minutes != expected {
			t.Fatalf("YToTime(%v) = %d minutes from midnight, expected %d", y, minutes, expected)
		}
	}
}

func TestYToTime_Monotonic(t *testing.T) {
	prev := YToTime(0, testDay)
	for y := 1.0; y < MinutesPerDay; y += 11 {
		cur := YToTime(y, testDay)
		if cur.Before(prev) {
			t.Fatalf("YToTime not monotonic: y=%v resolved to %v, before %v", y, cur, prev)
		}
		prev = cur
	}
}

func TestYToTime_NegativeClamped(t *testing.T) {
	got := YToTime(-45, testDay)
	if !got.Equal(testDay) {
		t.Errorf("expected negative offset to clamp to midnight, got %v", got)
	}
}

func TestTimeToY_InverseOnSlotBoundaries(t *testing.T) {
	for _, slot := range DaySlots() {
		y := TimeToY(SlotTime(testDay, slot))
		back := YToTime(y, testDay)
		if back.Hour() != slot.Hour || back.Minute() != slot.Minute {
			t.Errorf("round trip for %s failed: y=%v resolved to %02d:%02d",
				slot, y, back.Hour(), back.Minute())
		}
	}
}

func TestTimeToY(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		minute   int
		expected float64
	}{
		{"midnight", 0, 0, 0},
		{"half past midnight", 0, 30, 30},
		{"two am", 2, 0, 120},
		{"arbitrary minute scales linearly", 9, 15, 555},
		{"end of day", 23, 30, 1410},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := time.Date(2025, time.January, 15, tt.hour, tt.minute, 0, 0, time.UTC)
			if got := TimeToY(at); got != tt.expected {
				t.Errorf("TimeToY(%02d:%02d) = %v, expected %v", tt.hour, tt.minute, got, tt.expected)
			}
		})
	}
}
