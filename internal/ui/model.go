package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/scrollus/internal/config"
	"github.com/olivier-w/scrollus/internal/document"
	"github.com/olivier-w/scrollus/internal/scroll"
	"github.com/olivier-w/scrollus/internal/util"
)

// Rows taken by the header, status and help lines.
const chromeLines = 3

const durationStep = 100 * time.Millisecond

// Model is the Bubbletea model for the document viewer.
type Model struct {
	doc      *document.Document
	host     *viewportHost
	frames   *frameScheduler
	scroller *scroll.Scroller
	watcher  *document.Watcher

	cfg      config.Config
	easing   easingMode
	duration time.Duration

	keys     keyMap
	help     help.Model
	progress progress.Model
	input    textinput.Model
	toc      tocModel

	searching bool
	showTOC   bool
	width     int
	height    int
	quitting  bool

	status    string
	statusErr bool
	statusID  int
}

// New creates a viewer for doc. watcher may be nil; when set, the viewer
// reloads the document whenever it reports a change.
func New(doc *document.Document, cfg config.Config, watcher *document.Watcher) Model {
	host := newViewportHost(doc, 80, 20)
	frames := newFrameScheduler(cfg.FPS)
	scroller := scroll.NewScroller(scroll.NewAnimator(host, frames), doc)
	scroller.SetDefaultEasing(cfg.EasingFunc())

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "heading or #id"
	ti.CharLimit = 256

	p := progress.New(
		progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
		progress.WithoutPercentage(),
	)
	p.Width = 20

	return Model{
		doc:      doc,
		host:     host,
		frames:   frames,
		scroller: scroller,
		watcher:  watcher,
		cfg:      cfg,
		easing:   easingModeFor(cfg.Easing),
		duration: cfg.Duration,
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: p,
		input:    ti,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(windowTitle(m.doc.Title)), m.waitForChange())
}

// waitForChange blocks on the watcher and reloads the document.
func (m Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			doc, err := document.Load(path)
			return docReloadedMsg{doc: doc, err: err}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handleMsg(msg)
	return next, tea.Batch(cmd, next.frames.cmd())
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frames.fire(time.Time(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.host.setSize(msg.Width, max(1, msg.Height-chromeLines))
		m.help.Width = msg.Width
		m.progress.Width = max(10, min(40, msg.Width/4))
		if m.showTOC {
			m.toc, _ = m.toc.Update(tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height})
		}
		return m, nil

	case docReloadedMsg:
		if msg.err != nil {
			next, cmd := m.flash(msg.err.Error(), true)
			return next, tea.Batch(cmd, m.waitForChange())
		}
		m.doc = msg.doc
		m.host.setDocument(msg.doc)
		m.scroller.SetFinder(msg.doc)
		next, cmd := m.flash("reloaded", false)
		return next, tea.Batch(cmd, m.waitForChange())

	case watchErrMsg:
		next, cmd := m.flash("watch: "+msg.err.Error(), true)
		return next, tea.Batch(cmd, m.waitForChange())

	case statusExpiredMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil

	case tocSelectedMsg:
		m.showTOC = false
		return m.scrollTo(scroll.ElementTarget{Element: msg.heading})

	case tocClosedMsg:
		m.showTOC = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.showTOC:
			var cmd tea.Cmd
			m.toc, cmd = m.toc.Update(msg)
			return m, cmd
		case m.searching:
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.showTOC {
			var cmd tea.Cmd
			m.toc, cmd = m.toc.Update(msg)
			return m, cmd
		}
		// The user took over; a running animation would fight the wheel.
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			m.scroller.Animator().Cancel()
		}
		var cmd tea.Cmd
		m.host.vp, cmd = m.host.vp.Update(msg)
		return m, cmd
	}

	if m.searching {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	k := m.keys
	anim := m.scroller.Animator()
	here := m.host.ScrollOffset()

	switch {
	case key.Matches(msg, k.Quit):
		m.quitting = true
		anim.Cancel()
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case key.Matches(msg, k.Down):
		anim.Cancel()
		m.host.SetScrollPosition(here.X, here.Y+1)
	case key.Matches(msg, k.Up):
		anim.Cancel()
		m.host.SetScrollPosition(here.X, here.Y-1)
	case key.Matches(msg, k.Right):
		anim.Cancel()
		m.host.SetScrollPosition(here.X+4, here.Y)
	case key.Matches(msg, k.Left):
		anim.Cancel()
		m.host.SetScrollPosition(here.X-4, here.Y)

	case key.Matches(msg, k.JumpDown):
		return m.scrollTo(scroll.Point{X: here.X, Y: m.aimLine() + float64(m.cfg.JumpLines)})
	case key.Matches(msg, k.JumpUp):
		return m.scrollTo(scroll.Point{X: here.X, Y: max(0, m.aimLine()-float64(m.cfg.JumpLines))})
	case key.Matches(msg, k.Top):
		return m.scrollTo(scroll.Point{X: 0, Y: 0})
	case key.Matches(msg, k.Bottom):
		return m.scrollTo(scroll.Point{X: 0, Y: m.doc.Size().Height})

	case key.Matches(msg, k.NextHead):
		h, ok := m.doc.NextHeading(int(m.aimLine()))
		if !ok {
			return m.flash("no heading below", false)
		}
		return m.scrollTo(scroll.ElementTarget{Element: h})
	case key.Matches(msg, k.PrevHead):
		h, ok := m.doc.PrevHeading(int(m.aimLine()))
		if !ok {
			return m.flash("no heading above", false)
		}
		return m.scrollTo(scroll.ElementTarget{Element: h})

	case key.Matches(msg, k.Search):
		m.searching = true
		m.input.Reset()
		return m, m.input.Focus()
	case key.Matches(msg, k.Contents):
		if len(m.doc.Headings()) == 0 {
			return m.flash("no headings", false)
		}
		m.toc = newTOC(m.doc, m.width, m.height)
		m.toc.selectLine(m.host.line())
		m.showTOC = true

	case key.Matches(msg, k.NextEasing):
		m.easing = m.easing.Next()
		m.scroller.SetDefaultEasing(m.easing.Func())
	case key.Matches(msg, k.PrevEasing):
		m.easing = m.easing.Prev()
		m.scroller.SetDefaultEasing(m.easing.Func())
	case key.Matches(msg, k.Slower):
		m.duration += durationStep
	case key.Matches(msg, k.Faster):
		m.duration = max(0, m.duration-durationStep)

	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		query := strings.TrimSpace(m.input.Value())
		m.searching = false
		m.input.Blur()
		if query == "" {
			return m, nil
		}
		return m.scrollTo(scroll.Query(query))
	case "esc", "ctrl+c":
		m.searching = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// aimLine is where the next relative move starts from: the destination of
// a running animation, otherwise the current line.
func (m Model) aimLine() float64 {
	if target, ok := m.scroller.Animator().Target(); ok {
		return target.Y
	}
	return m.host.ScrollOffset().Y
}

func (m Model) scrollTo(target scroll.Target) (Model, tea.Cmd) {
	if err := m.scroller.To(target, m.duration); err != nil {
		return m.flash(err.Error(), true)
	}
	return m, nil
}

// flash shows a status message until statusTimeout passes or another
// message replaces it.
func (m Model) flash(s string, isErr bool) (Model, tea.Cmd) {
	m.status = s
	m.statusErr = isErr
	m.statusID++
	return m, statusExpireCmd(m.statusID)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showTOC {
		return m.toc.View()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.host.vp.View())
	b.WriteString("\n")
	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) headerView() string {
	offset := m.host.ScrollOffset()
	size := m.doc.Size()
	pos := util.FormatPosition(int(offset.Y), int(size.Height))
	if offset.X > 0 {
		pos += fmt.Sprintf("  col %d", int(offset.X)+1)
	}

	left := headerStyle.Render("scrollus") + "  " + titleStyle.Render(m.doc.Title)
	right := positionStyle.Render(pos)
	barWidth := m.width - lipgloss.Width("scrollus  ") - lipgloss.Width(m.doc.Title) - lipgloss.Width(pos) - 4
	if barWidth < 10 {
		return left + "  " + right
	}
	bar := positionStyle.Render(renderPositionBar(offset.Y, m.host.ViewportSize().Height, size.Height, barWidth))
	return left + "  " + bar + "  " + right
}

func (m Model) statusView() string {
	if m.searching {
		return m.input.View()
	}

	line := statusStyle.Render(fmt.Sprintf("%s  %s", m.easing, util.FormatDuration(m.duration)))
	if anim := m.scroller.Animator(); anim.Running() {
		percent, _ := anim.Progress()
		line += "  " + m.progress.ViewAs(percent)
	}
	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		line += "  " + style.Render(m.status)
	}
	return line
}

func windowTitle(title string) string {
	return title + " — scrollus"
}
