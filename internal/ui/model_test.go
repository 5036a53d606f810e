package ui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/scrollus/internal/config"
	"github.com/olivier-w/scrollus/internal/document"
)

func testDoc(lines int, headings map[int]string) *document.Document {
	var b strings.Builder
	for i := 0; i < lines; i++ {
		if title, ok := headings[i]; ok {
			b.WriteString("## " + title + "\n")
			continue
		}
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return document.Parse("doc.md", b.String())
}

// newTestModel returns a viewer over 100 lines with a 20 line viewport.
func newTestModel(t *testing.T) Model {
	t.Helper()
	doc := testDoc(100, map[int]string{10: "Install", 50: "Usage", 90: "License"})
	m := New(doc, config.Default(), nil)
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20 + chromeLines})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", next)
	}
	return model
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runFrames delivers frames every 16ms until the animation settles.
func runFrames(t *testing.T, m Model) Model {
	t.Helper()
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 1000 && m.scroller.Animator().Running(); i++ {
		m = update(t, m, frameMsg(at))
		at = at.Add(16 * time.Millisecond)
	}
	if m.scroller.Animator().Running() {
		t.Fatal("animation did not finish")
	}
	return m
}

func TestNextHeadingAnimatesToHeading(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(keyRunes("n"))
	if cmd == nil {
		t.Fatal("expected a frame command")
	}
	m = next.(Model)
	if !m.scroller.Animator().Running() {
		t.Fatal("expected animation to be running")
	}

	m = runFrames(t, m)
	if got := m.host.line(); got != 10 {
		t.Fatalf("expected line 10, got %d", got)
	}

	m = update(t, m, keyRunes("n"))
	m = runFrames(t, m)
	if got := m.host.line(); got != 50 {
		t.Fatalf("expected line 50, got %d", got)
	}

	m = update(t, m, keyRunes("N"))
	m = runFrames(t, m)
	if got := m.host.line(); got != 10 {
		t.Fatalf("expected line 10, got %d", got)
	}
}

func TestBottomIsClampedToLastPage(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRunes("G"))
	m = runFrames(t, m)
	if got := m.host.line(); got != 80 {
		t.Fatalf("expected line 80, got %d", got)
	}

	m = update(t, m, keyRunes("g"))
	m = runFrames(t, m)
	if got := m.host.line(); got != 0 {
		t.Fatalf("expected line 0, got %d", got)
	}
}

func TestSearchScrollsToHeading(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRunes("/"))
	if !m.searching {
		t.Fatal("expected search mode")
	}
	m = update(t, m, keyRunes("lic"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.searching {
		t.Fatal("expected search mode to end")
	}
	m = runFrames(t, m)
	if got := m.host.line(); got != 80 {
		t.Fatalf("expected clamped line 80 for License, got %d", got)
	}
}

func TestSearchMissReportsError(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRunes("/"))
	m = update(t, m, keyRunes("nope"))
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("expected status expiry command")
	}
	if !m.statusErr || !strings.Contains(m.status, "nope") {
		t.Fatalf("expected error status naming the query, got %q", m.status)
	}
	if m.scroller.Animator().Running() {
		t.Fatal("expected no animation")
	}

	m = update(t, m, statusExpiredMsg{id: m.statusID})
	if m.status != "" {
		t.Fatalf("expected status to clear, got %q", m.status)
	}
}

func TestZeroDurationJumps(t *testing.T) {
	m := newTestModel(t)
	for m.duration > 0 {
		m = update(t, m, keyRunes("-"))
	}

	next, _ := m.Update(keyRunes("G"))
	m = next.(Model)
	if m.scroller.Animator().Running() {
		t.Fatal("zero duration must not animate")
	}
	if got := m.host.line(); got != 80 {
		t.Fatalf("expected line 80, got %d", got)
	}
}

func TestEasingCycles(t *testing.T) {
	m := newTestModel(t)
	if m.easing.String() != "inOutCubic" {
		t.Fatalf("expected configured easing, got %s", m.easing)
	}
	m = update(t, m, keyRunes("e"))
	if m.easing.String() != "inQuart" {
		t.Fatalf("expected inQuart, got %s", m.easing)
	}
	m = update(t, m, keyRunes("E"))
	m = update(t, m, keyRunes("E"))
	if m.easing.String() != "outCubic" {
		t.Fatalf("expected outCubic, got %s", m.easing)
	}
}

func TestLineKeysCancelAnimation(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRunes("G"))
	m = update(t, m, keyRunes("j"))
	if m.scroller.Animator().Running() {
		t.Fatal("expected j to cancel the animation")
	}
	if got := m.host.line(); got != 1 {
		t.Fatalf("expected line 1, got %d", got)
	}
}

func TestPanKeysCancelAnimation(t *testing.T) {
	wide := strings.Repeat(strings.Repeat("x", 200)+"\n", 100)
	m := New(document.Parse("wide.txt", wide), config.Default(), nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20 + chromeLines})

	m = update(t, m, keyRunes("G"))
	m = update(t, m, keyRunes("l"))
	if m.scroller.Animator().Running() {
		t.Fatal("expected l to cancel the animation")
	}
	m = update(t, m, frameMsg(time.Date(2026, 1, 1, 0, 0, 1, 0, time.UTC)))
	if got := m.host.ScrollOffset().X; got != 4 {
		t.Fatalf("expected x=4 after pan, got %v", got)
	}

	m = update(t, m, keyRunes("G"))
	m = update(t, m, keyRunes("h"))
	if m.scroller.Animator().Running() {
		t.Fatal("expected h to cancel the animation")
	}
	if got := m.host.ScrollOffset().X; got != 0 {
		t.Fatalf("expected x=0 after pan back, got %v", got)
	}
}

func TestMouseWheelCancelsAnimation(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRunes("G"))
	if !m.scroller.Animator().Running() {
		t.Fatal("expected G to start an animation")
	}
	m = update(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if m.scroller.Animator().Running() {
		t.Fatal("expected the wheel to cancel the animation")
	}
}

func TestHeaderWidthCountsCells(t *testing.T) {
	header := func(name string) string {
		m := New(document.Parse(name, strings.Repeat("line\n", 100)), config.Default(), nil)
		m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20 + chromeLines})
		return m.headerView()
	}
	ascii, accented := header("abc.md"), header("äöü.md")
	if lipgloss.Width(ascii) != lipgloss.Width(accented) {
		t.Fatalf("header widths differ: %d vs %d", lipgloss.Width(ascii), lipgloss.Width(accented))
	}
}

func TestReloadUpdatesFinder(t *testing.T) {
	m := newTestModel(t)

	doc := testDoc(200, map[int]string{150: "Appendix"})
	m = update(t, m, docReloadedMsg{doc: doc})
	if m.status != "reloaded" {
		t.Fatalf("expected reloaded status, got %q", m.status)
	}

	m = update(t, m, keyRunes("/"))
	m = update(t, m, keyRunes("appendix"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = runFrames(t, m)
	if got := m.host.line(); got != 150 {
		t.Fatalf("expected line 150, got %d", got)
	}
}

func TestContentsSelectionScrolls(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRunes("t"))
	if !m.showTOC {
		t.Fatal("expected contents to open")
	}

	m = update(t, m, tocSelectedMsg{heading: m.doc.Headings()[1]})
	if m.showTOC {
		t.Fatal("expected contents to close")
	}
	m = runFrames(t, m)
	if got := m.host.line(); got != 50 {
		t.Fatalf("expected line 50, got %d", got)
	}
}

func TestViewShowsEasingAndDuration(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	if !strings.Contains(view, "inOutCubic") || !strings.Contains(view, "600ms") {
		t.Fatalf("expected status line in view, got:\n%s", view)
	}
}

func TestFrameSchedulerArmsOnce(t *testing.T) {
	s := newFrameScheduler(60)
	if s.cmd() != nil {
		t.Fatal("expected no command without pending callbacks")
	}

	var got []time.Time
	s.ScheduleFrame(func(at time.Time) { got = append(got, at) })
	s.ScheduleFrame(func(at time.Time) { got = append(got, at) })
	if s.cmd() == nil {
		t.Fatal("expected a frame command")
	}
	if s.cmd() != nil {
		t.Fatal("expected a single tick in flight")
	}

	at := time.Unix(100, 0)
	s.fire(at)
	if len(got) != 2 || !got[0].Equal(at) || !got[1].Equal(at) {
		t.Fatalf("expected both callbacks with the frame time, got %v", got)
	}
	if s.cmd() != nil {
		t.Fatal("expected no command after firing")
	}
}

func TestViewportHostHorizontalOffset(t *testing.T) {
	doc := document.Parse("wide.txt", strings.Repeat("abcdefghij", 3)+"\nshort")
	h := newViewportHost(doc, 10, 5)

	h.SetScrollPosition(5, 0)
	if got := h.ScrollOffset().X; got != 5 {
		t.Fatalf("expected x=5, got %v", got)
	}
	if !strings.HasPrefix(h.vp.View(), "fghij") {
		t.Fatalf("expected shifted content, got %q", h.vp.View())
	}

	h.SetScrollPosition(100, 0)
	if got := h.ScrollOffset().X; got != 20 {
		t.Fatalf("expected x clamped to 20, got %v", got)
	}
}
