package scroll

import "time"

// Point is an absolute position in document coordinates.
type Point struct {
	X, Y float64
}

// Size is a width and height in document coordinates.
type Size struct {
	Width, Height float64
}

// ViewportReader exposes the host's scroll offsets and dimensions.
type ViewportReader interface {
	ScrollOffset() Point
	// PageSize is the size of the scrollable content.
	PageSize() Size
	// ViewportSize is the size of the visible area.
	ViewportSize() Size
}

// ViewportWriter moves the host's scroll position.
type ViewportWriter interface {
	SetScrollPosition(x, y float64)
}

// Viewport is a host that can be both read and scrolled.
type Viewport interface {
	ViewportReader
	ViewportWriter
}

// Scheduler runs fn once before the next frame is drawn, passing the
// frame's timestamp. Timestamps increase monotonically.
type Scheduler interface {
	ScheduleFrame(fn func(at time.Time))
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(fn func(at time.Time))

func (f SchedulerFunc) ScheduleFrame(fn func(at time.Time)) { f(fn) }
