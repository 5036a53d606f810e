package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/scrollus/internal/document"
)

const statusTimeout = 4 * time.Second

type docReloadedMsg struct {
	doc *document.Document
	err error
}

type watchErrMsg struct{ err error }

type statusExpiredMsg struct{ id int }

func statusExpireCmd(id int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusExpiredMsg{id: id}
	})
}
