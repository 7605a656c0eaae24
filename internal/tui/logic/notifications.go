package logic

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todos-tui/internal/tui/state"
)

const notificationTitle = "todos"

// notifyCmd sends a desktop notification for kind. Failures are only logged.
func (h *Handler) notifyCmd(kind state.ErrorKind) tea.Cmd {
	notify, logger := h.notify, h.Logger
	message := kind.Message()
	return func() tea.Msg {
		if err := notify(notificationTitle, message); err != nil {
			logger.Debug("failed to send notification", "kind", kind, "err", err)
		}
		return nil
	}
}

// copySelected puts the selected title on the clipboard.
func (h *Handler) copySelected() tea.Cmd {
	todo, ok := h.SelectedTodo()
	if !ok {
		return nil
	}
	copyText, title := h.copyText, todo.Title
	return func() tea.Msg {
		if err := copyText(title); err != nil {
			return statusMsg{msg: "Failed to copy: " + err.Error()}
		}
		return statusMsg{msg: "Copied: " + title}
	}
}
