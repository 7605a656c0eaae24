package logic

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hy4ri/todos-tui/internal/tui/state"
)

func TestBannerRearmedBySecondError(t *testing.T) {
	th := newTestHandler(t)
	assert.Equal(t, 3*time.Second, th.errorTimeout())

	th.raiseError(state.ErrUpdate)
	first := th.Banner.Generation
	th.raiseError(state.ErrUpdate)
	second := th.Banner.Generation

	th.Update(bannerExpiredMsg{generation: first})
	assert.True(t, th.Banner.Visible(), "the first timer no longer applies")
	assert.Equal(t, state.ErrUpdate, th.Banner.Kind)

	th.Update(bannerExpiredMsg{generation: second})
	assert.False(t, th.Banner.Visible())
}

func TestBannerDismiss(t *testing.T) {
	th := newTestHandler(t)
	th.raiseError(state.ErrDelete)
	gen := th.Banner.Generation

	th.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, th.Banner.Visible(), "esc on the list dismisses the banner")

	th.raiseError(state.ErrAdd)
	th.Update(bannerExpiredMsg{generation: gen})
	assert.Equal(t, state.ErrAdd, th.Banner.Kind, "an old expiry does not clear a newer error")
}

func TestBannerExpiryFires(t *testing.T) {
	th := newTestHandler(t)
	th.Config.UI.ErrorTimeout = time.Millisecond

	cmd := th.raiseError(state.ErrLoad)
	require.NotNil(t, cmd)
	th.exec(cmd)

	assert.False(t, th.Banner.Visible())
}

func TestBannerNotifications(t *testing.T) {
	th := newTestHandler(t)
	th.Config.UI.ErrorTimeout = time.Millisecond
	th.Config.UI.NotifyErrors = true

	th.exec(th.raiseError(state.ErrDelete))
	th.exec(th.raiseError(state.ErrEmptyTitle))

	require.Len(t, th.notified, 1, "empty titles are not worth a notification")
	assert.Equal(t, notificationTitle, th.notified[0].title)
	assert.Equal(t, "Unable to delete a todo", th.notified[0].message)
}

func TestBannerNotificationsDisabled(t *testing.T) {
	th := newTestHandler(t)
	th.Config.UI.ErrorTimeout = time.Millisecond

	th.exec(th.raiseError(state.ErrUpdate))
	assert.Empty(t, th.notified)
}
