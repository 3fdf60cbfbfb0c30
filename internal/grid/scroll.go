package grid

import (
	"time"
)

// NowIndicatorTop returns the pixel offset of the current-time line for the
// given clock reading. It is recomputed on every call; the caller drives it
// from its render cycle rather than a timer.
func NowIndicatorTop(now time.Time) float64 {
	return TimeToY(now)
}

// AutoScroller centers the viewport on the current time when a week view
// mounts or changes its anchor date. A manual scroll suppresses further
// automatic scrolling until the anchor changes again or ScrollToNow is
// invoked explicitly.
type AutoScroller struct {
	// ViewportHeight is the visible height of the scroll container in pixels.
	ViewportHeight float64

	// Now is injectable for testing. Defaults to time.Now.
	Now func() time.Time

	userScrolled bool
}

// NewAutoScroller creates an AutoScroller for a viewport of the given height.
func NewAutoScroller(viewportHeight float64) *AutoScroller {
	return &AutoScroller{
		ViewportHeight: viewportHeight,
		Now:            time.Now,
	}
}

func (a *AutoScroller) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// offsetForNow computes the scroll offset that centers the current time in
// the viewport, clamped to zero.
func (a *AutoScroller) offsetForNow() float64 {
	offset := NowIndicatorTop(a.now()) - a.ViewportHeight/2
	if offset < 0 {
		offset = 0
	}
	return offset
}

// Offer returns the auto-scroll target offset, if auto-scroll is currently
// allowed. The view calls it on mount and after each anchor change.
func (a *AutoScroller) Offer() (float64, bool) {
	if a.userScrolled {
		return 0, false
	}
	return a.offsetForNow(), true
}

// UserScrolled records a manual scroll, suppressing auto-scroll.
func (a *AutoScroller) UserScrolled() {
	a.userScrolled = true
}

// AnchorChanged resets suppression when the displayed week changes.
func (a *AutoScroller) AnchorChanged() {
	a.userScrolled = false
}

// ScrollToNow is the explicit "scroll to now" action: it clears suppression
// and returns the centering offset unconditionally.
func (a *AutoScroller) ScrollToNow() float64 {
	a.userScrolled = false
	return a.offsetForNow()
}
