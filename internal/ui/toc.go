package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/scrollus/internal/document"
)

type headingItem struct {
	heading document.Heading
}

func (i headingItem) Title() string {
	return strings.Repeat("  ", i.heading.Level-1) + i.heading.Title
}
func (i headingItem) Description() string { return "#" + i.heading.ID }
func (i headingItem) FilterValue() string { return i.heading.Title }

type tocSelectedMsg struct {
	heading document.Heading
}

type tocClosedMsg struct{}

// tocModel lists the document's headings for picking a scroll target.
type tocModel struct {
	list list.Model
}

func newTOC(doc *document.Document, width, height int) tocModel {
	headings := doc.Headings()
	items := make([]list.Item, len(headings))
	for i, h := range headings {
		items[i] = headingItem{heading: h}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(titleStyle.GetForeground()).
		BorderLeftForeground(headerStyle.GetForeground())
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(positionStyle.GetForeground()).
		BorderLeftForeground(headerStyle.GetForeground())

	l := list.New(items, delegate, width, height)
	l.Title = "Contents"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = headerStyle
	return tocModel{list: l}
}

// selectLine moves the cursor to the last heading at or above line.
func (m *tocModel) selectLine(line int) {
	for i, item := range m.list.Items() {
		if item.(headingItem).heading.Line > line {
			break
		}
		m.list.Select(i)
	}
}

func (m tocModel) Update(msg tea.Msg) (tocModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			item, ok := m.list.SelectedItem().(headingItem)
			if !ok {
				return m, func() tea.Msg { return tocClosedMsg{} }
			}
			return m, func() tea.Msg { return tocSelectedMsg{heading: item.heading} }
		case "q", "esc", "t":
			return m, func() tea.Msg { return tocClosedMsg{} }
		}
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m tocModel) View() string {
	return m.list.View()
}
