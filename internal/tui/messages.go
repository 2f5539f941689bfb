// messages.go defines the Bubble Tea messages used for async communication.
// The backend call runs in a tea.Cmd goroutine and reports back through these
// types, so the UI loop never blocks.
package tui

import "sensorq/cli/internal/backend"

// answerMsg is sent when a submission settles, successfully or not.
type answerMsg struct {
	answer *backend.Answer
	err    error
}
