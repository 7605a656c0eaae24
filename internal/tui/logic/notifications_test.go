package logic

import (
	"errors"
	"testing"

	"github.com/hy4ri/todos-tui/internal/tui/state"
)

func TestNotifyCmdIgnoresFailures(t *testing.T) {
	th := newTestHandler(t)
	th.notify = func(title, message string) error {
		return errors.New("no notification daemon")
	}

	if msg := th.notifyCmd(state.ErrAdd)(); msg != nil {
		t.Errorf("Expected nil message, got %#v", msg)
	}
}

func TestCopySelected(t *testing.T) {
	tests := []struct {
		name    string
		copyErr error
		want    string
	}{
		{name: "success", want: "Copied: water plants"},
		{name: "failure", copyErr: errors.New("no clipboard"), want: "Failed to copy: no clipboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t, todo(1, "water plants", false))
			th.copyText = func(string) error { return tt.copyErr }

			th.exec(th.copySelected())

			if th.StatusMsg != tt.want {
				t.Errorf("StatusMsg = %q, want %q", th.StatusMsg, tt.want)
			}
		})
	}
}

func TestCopySelectedEmptyList(t *testing.T) {
	th := newTestHandler(t)
	if cmd := th.copySelected(); cmd != nil {
		t.Error("Expected nil command for an empty list")
	}
}
