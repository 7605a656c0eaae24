package components

// CloseRequestMsg is emitted when an overlay component asks to be closed.
type CloseRequestMsg struct{}
