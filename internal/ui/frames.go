package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

// frameMsg is delivered once per animation frame with the frame's time.
type frameMsg time.Time

// frameScheduler implements scroll.Scheduler on top of tea.Tick. At most
// one tick is in flight; callbacks registered meanwhile run on it.
type frameScheduler struct {
	interval time.Duration
	pending  []func(time.Time)
	inFlight bool
}

func newFrameScheduler(fps int) *frameScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &frameScheduler{interval: time.Duration(harmonica.FPS(fps) * float64(time.Second))}
}

func (s *frameScheduler) ScheduleFrame(fn func(at time.Time)) {
	s.pending = append(s.pending, fn)
}

// cmd arms the next frame if anything is waiting for one.
func (s *frameScheduler) cmd() tea.Cmd {
	if len(s.pending) == 0 || s.inFlight {
		return nil
	}
	s.inFlight = true
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// fire runs the callbacks registered for this frame.
func (s *frameScheduler) fire(at time.Time) {
	s.inFlight = false
	fns := s.pending
	s.pending = nil
	for _, fn := range fns {
		fn(at)
	}
}
