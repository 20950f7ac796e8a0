package models

// MessageLevel tells the host how to present a user message.
type MessageLevel string

const (
	LevelInfo    MessageLevel = "info"
	LevelWarning MessageLevel = "warning"
	LevelError   MessageLevel = "error"
)

// Message is the single user-facing result of every add-in event. The host
// shows Text in a dialog or toast; OpenSettings asks it to bring up the
// settings panel as well.
type Message struct {
	Level        MessageLevel `json:"level"`
	Text         string       `json:"text"`
	OpenSettings bool         `json:"openSettings,omitempty"`
}
