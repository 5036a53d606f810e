package scroll

import (
	"math"
	"time"

	"github.com/olivier-w/scrollus/internal/ease"
)

// animation is the state of one in-flight scroll.
type animation struct {
	startX, startY float64
	pageWidth      float64
	pageHeight     float64
	startedAt      time.Time // zero until the first frame
	targetX        float64
	targetY        float64
	diffX, diffY   float64
	duration       time.Duration
	easing         ease.Func
}

// Animator drives at most one scroll animation at a time, advancing it once
// per frame. It is not safe for concurrent use; the host calls it from its
// UI loop.
type Animator struct {
	view  Viewport
	sched Scheduler

	active  *animation
	pending bool // a Tick is registered with the scheduler

	percent float64
	eased   float64
}

// NewAnimator returns an idle Animator bound to a host viewport and frame
// scheduler.
func NewAnimator(v Viewport, s Scheduler) *Animator {
	return &Animator{view: v, sched: s}
}

// clampTarget keeps the destination from scrolling past the end of the
// content on either axis.
func clampTarget(x, y float64, page, view Size) (float64, float64) {
	if page.Height-y < view.Height {
		y = page.Height - view.Height
	}
	if page.Width-x < view.Width {
		x = page.Width - view.Width
	}
	return x, y
}

// Start begins scrolling toward (x, y) over duration, shaping the motion
// with easing (nil means linear). It returns immediately; the motion
// happens on subsequent frames.
//
// Start does not validate its input: duration must be positive. Only the
// vertical displacement gates the animation, so a purely horizontal move
// is a no-op. A Start while another animation is running replaces it.
func (a *Animator) Start(x, y float64, duration time.Duration, easing ease.Func) {
	offset := a.view.ScrollOffset()
	page := a.view.PageSize()
	targetX, targetY := clampTarget(x, y, page, a.view.ViewportSize())

	anim := &animation{
		startX:     offset.X,
		startY:     offset.Y,
		pageWidth:  page.Width,
		pageHeight: page.Height,
		targetX:    targetX,
		targetY:    targetY,
		diffX:      targetX - offset.X,
		diffY:      targetY - offset.Y,
		duration:   duration,
		easing:     easing,
	}

	log := Logger()
	if anim.diffY == 0 {
		log.Debug("scroll: already at target", "x", targetX, "y", targetY)
		return
	}
	if a.active != nil {
		log.Debug("scroll: superseding running animation",
			"from_y", a.active.targetY, "to_y", targetY)
	}
	log.Debug("scroll: start",
		"from_x", offset.X, "from_y", offset.Y,
		"to_x", targetX, "to_y", targetY,
		"duration", duration)

	a.active = anim
	a.percent, a.eased = 0, 0
	a.schedule()
}

// Jump moves straight to the clamped (x, y) without animating. Any running
// animation is cancelled.
func (a *Animator) Jump(x, y float64) {
	a.Cancel()
	offset := a.view.ScrollOffset()
	targetX, targetY := clampTarget(x, y, a.view.PageSize(), a.view.ViewportSize())
	if targetY == offset.Y {
		return
	}
	a.view.SetScrollPosition(targetX, targetY)
}

// Cancel stops the running animation where it is. A frame that was already
// scheduled for it becomes a no-op.
func (a *Animator) Cancel() {
	if a.active != nil {
		Logger().Debug("scroll: cancelled", "percent", a.percent)
	}
	a.active = nil
}

// Running reports whether an animation is in flight.
func (a *Animator) Running() bool { return a.active != nil }

// Progress returns the time fraction and eased fraction written on the
// most recent frame.
func (a *Animator) Progress() (percent, eased float64) {
	return a.percent, a.eased
}

// Target returns the clamped destination of the running animation.
func (a *Animator) Target() (Point, bool) {
	if a.active == nil {
		return Point{}, false
	}
	return Point{X: a.active.targetX, Y: a.active.targetY}, true
}

func (a *Animator) schedule() {
	if a.pending {
		return
	}
	a.pending = true
	a.sched.ScheduleFrame(a.Tick)
}

// Tick advances the running animation to the frame timestamp at. The
// scheduler calls it; hosts driving time by hand may call it directly.
func (a *Animator) Tick(at time.Time) {
	a.pending = false
	anim := a.active
	if anim == nil {
		return
	}

	if anim.startedAt.IsZero() {
		anim.startedAt = at
	}
	elapsed := at.Sub(anim.startedAt)

	// Content grew or shrank under us: continue from where the host put
	// the viewport instead of jumping back.
	if page := a.view.PageSize(); page.Height != anim.pageHeight {
		anim.pageHeight = page.Height
		anim.startY = a.view.ScrollOffset().Y
		Logger().Debug("scroll: page height changed", "height", page.Height)
	}

	percent := math.Min(float64(elapsed)/float64(anim.duration), 1)
	eased := percent
	if anim.easing != nil {
		eased = anim.easing(percent)
	}
	a.percent, a.eased = percent, eased

	a.view.SetScrollPosition(anim.startX+anim.diffX*eased, anim.startY+anim.diffY*eased)

	if elapsed < anim.duration {
		a.schedule()
		return
	}
	Logger().Debug("scroll: finished", "y", anim.startY+anim.diffY*eased)
	a.active = nil
}
