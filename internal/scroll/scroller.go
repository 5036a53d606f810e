package scroll

import (
	"fmt"
	"time"

	"github.com/olivier-w/scrollus/internal/ease"
)

// Option adjusts a single scroll request.
type Option func(*request)

type request struct {
	easing ease.Func
}

// WithEasing shapes the motion with f. A nil f keeps the Scroller default.
func WithEasing(f ease.Func) Option {
	return func(r *request) {
		if f != nil {
			r.easing = f
		}
	}
}

// Scroller validates scroll requests, resolves their targets and hands them
// to an Animator.
type Scroller struct {
	anim   *Animator
	finder ElementFinder
	easing ease.Func
}

// NewScroller returns a Scroller using finder for queries. The default
// easing is linear.
func NewScroller(anim *Animator, finder ElementFinder) *Scroller {
	return &Scroller{anim: anim, finder: finder, easing: ease.Linear}
}

// SetDefaultEasing changes the curve used when a request names none.
// A nil f restores linear.
func (s *Scroller) SetDefaultEasing(f ease.Func) {
	if f == nil {
		f = ease.Linear
	}
	s.easing = f
}

// SetFinder replaces the element finder, for example after the document
// was reloaded.
func (s *Scroller) SetFinder(finder ElementFinder) {
	s.finder = finder
}

// Animator returns the underlying animator.
func (s *Scroller) Animator() *Animator { return s.anim }

// To scrolls to any supported target.
func (s *Scroller) To(target Target, duration time.Duration, opts ...Option) error {
	p, err := Resolve(target, s.finder)
	if err != nil {
		return err
	}
	return s.begin(p, duration, opts)
}

// ToElement scrolls so the element's top-left corner lands in the top-left
// corner of the viewport, when the content allows it.
func (s *Scroller) ToElement(el Element, duration time.Duration, opts ...Option) error {
	if el == nil {
		return fmt.Errorf("%w: element required", ErrInvalidTarget)
	}
	return s.To(ElementTarget{Element: el}, duration, opts...)
}

// ToVertical scrolls to line y, resetting the horizontal offset.
func (s *Scroller) ToVertical(y float64, duration time.Duration, opts ...Option) error {
	return s.To(Point{X: 0, Y: y}, duration, opts...)
}

// ToHorizontal scrolls to column x, resetting the vertical offset.
func (s *Scroller) ToHorizontal(x float64, duration time.Duration, opts ...Option) error {
	return s.To(Point{X: x, Y: 0}, duration, opts...)
}

func (s *Scroller) begin(p Point, duration time.Duration, opts []Option) error {
	if duration < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidDuration, duration)
	}
	r := request{easing: s.easing}
	for _, opt := range opts {
		opt(&r)
	}
	if duration == 0 {
		s.anim.Jump(p.X, p.Y)
		return nil
	}
	s.anim.Start(p.X, p.Y, duration, r.easing)
	return nil
}
