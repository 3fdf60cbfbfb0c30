// Package grid implements the interactive time-grid scheduling surface used by
// the week view: half-hour slot generation, pixel-to-time mapping, the
// drag-to-create state machine, event layout geometry and the current-time
// indicator with auto-scroll.
//
// The package is purely computational. It performs no I/O and owns no
// long-lived goroutines; all state is local to the component instance that
// embeds it. Times are interpreted in the location of the day they belong to.
package grid
