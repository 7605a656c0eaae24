package logic

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todos-tui/internal/tui/state"
)

// raiseError shows kind in the banner and arms a fresh expiry. An expiry
// armed earlier carries an older generation and is ignored when it fires.
func (h *Handler) raiseError(kind state.ErrorKind) tea.Cmd {
	gen := h.Banner.Show(kind)
	h.Logger.Debug("banner", "kind", kind, "generation", gen)

	expire := tea.Tick(h.errorTimeout(), func(time.Time) tea.Msg {
		return bannerExpiredMsg{generation: gen}
	})
	if kind == state.ErrEmptyTitle || !h.Config.UI.NotifyErrors {
		return expire
	}
	return tea.Batch(expire, h.notifyCmd(kind))
}

// DismissError hides the banner at once.
func (h *Handler) DismissError() {
	if h.Banner.Visible() {
		h.Banner.Dismiss()
	}
}
