// Package view owns the week-view controller: it composes the time grid,
// the drag-to-create machine, the current-time auto-scroller and the event
// list for the visible week, and turns pointer gestures into requests to open
// the event-creation dialog.
//
// The controller is single-threaded by design: it is driven by UI callbacks
// (pointer, scroll, render) from one event loop and is never shared between
// goroutines.
package view
