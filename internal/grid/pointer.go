package grid

import (
	"math"
	"time"
)

// SlotIndexAt converts a vertical pixel offset within a day column to a slot
// index. Callers are expected to supply a non-negative y; negative offsets are
// clamped to the first slot rather than producing a time on the previous day.
func SlotIndexAt(y float64) int {
	if y < 0 {
		return 0
	}
	return int(math.Floor(y / SlotHeight))
}

// YToTime converts a vertical pixel offset within the column for day into a
// wall-clock time on that day. The mapping is monotonic: increasing y never
// yields an earlier time within the same day. Seconds and sub-seconds are
// always zero.
func YToTime(y float64, day time.Time) time.Time {
	minutes := SlotIndexAt(y) * SlotMinutes
	return DayOf(day).Add(time.Duration(minutes) * time.Minute)
}

// TimeToY is the inverse mapping: the pixel offset of t within its day
// column. On slot boundaries it is the exact inverse of YToTime.
func TimeToY(t time.Time) float64 {
	minutes := t.Hour()*60 + t.Minute()
	return float64(minutes) / SlotMinutes * SlotHeight
}

// SlotTime returns the wall-clock time of slot on the given day.
func SlotTime(day time.Time, slot TimeSlot) time.Time {
	return DayOf(day).Add(time.Duration(slot.Minutes()) * time.Minute)
}
