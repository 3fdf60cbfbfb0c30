package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/pepealonso95/zeromail/internal/grid"
)

const dayColumnWidth = 14

// RenderWeek renders the week grid as text for the CLI: a header row of day
// columns, one row per half-hour slot with event titles in the columns they
// occupy, and a marker on the slot containing the current time.
func RenderWeek(w *WeekView, now time.Time) string {
	var sb strings.Builder

	// Header
	sb.WriteString(strings.Repeat(" ", 6))
	for _, day := range w.Days() {
		sb.WriteString(fmt.Sprintf("%-*s", dayColumnWidth, day.Format("Mon 02 Jan")))
	}
	sb.WriteString("\n")

	nowDay := grid.DayOf(now)
	nowSlot := (now.Hour()*60 + now.Minute()) / grid.SlotMinutes

	for _, slot := range w.Slots() {
		if slot.Index() == nowSlot {
			sb.WriteString(fmt.Sprintf("%s>", slot))
		} else {
			sb.WriteString(fmt.Sprintf("%s ", slot))
		}

		for _, day := range w.Days() {
			cell := cellFor(w.EventsOn(day), day, slot)
			if day.Equal(nowDay) && slot.Index() == nowSlot && cell == "" {
				cell = "----"
			}
			sb.WriteString(fmt.Sprintf("%-*s", dayColumnWidth, cell))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// cellFor picks the text for one slot cell: the title of the first event
// covering the slot, marked with a bar on its starting slot so adjacent
// events stay distinguishable.
func cellFor(events []grid.Event, day time.Time, slot grid.TimeSlot) string {
	slotStart := grid.SlotTime(day, slot)
	slotEnd := slotStart.Add(grid.SlotMinutes * time.Minute)

	for _, e := range events {
		if e.AllDay {
			continue
		}
		end := e.End
		if !end.After(e.Start) {
			// Zero-length events still occupy their starting slot
			end = e.Start.Add(time.Minute)
		}
		if e.Start.Before(slotEnd) && end.After(slotStart) {
			if !e.Start.Before(slotStart) {
				return "|" + truncate(e.Title, dayColumnWidth-3)
			}
			return "| " + truncate(e.Title, dayColumnWidth-4)
		}
	}
	return ""
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
