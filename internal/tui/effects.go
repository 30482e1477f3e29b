package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	typingInterval  = 350 * time.Millisecond
	scrollInterval  = 16 * time.Millisecond
	feedbackTimeout = 2 * time.Second
)

// Messages for async operations
type (
	replyMsg struct {
		text string
	}
	typingTickMsg    time.Time
	scrollTickMsg    time.Time
	feedbackClearMsg struct{}
)

// awaitReply waits for the responder on the model's context. A cancelled
// context yields no message.
func (m Model) awaitReply() tea.Cmd {
	r, ctx := m.responder, m.ctx
	return func() tea.Msg {
		reply, err := r.Await(ctx)
		if err != nil {
			return nil
		}
		return replyMsg{text: reply}
	}
}

// typingTick advances the typing indicator animation
func typingTick() tea.Cmd {
	return tea.Tick(typingInterval, func(t time.Time) tea.Msg {
		return typingTickMsg(t)
	})
}

// scrollTick drives one frame of the auto-scroll animation
func scrollTick() tea.Cmd {
	return tea.Tick(scrollInterval, func(t time.Time) tea.Msg {
		return scrollTickMsg(t)
	})
}

// clearFeedback returns a command that clears the feedback message after a delay
func clearFeedback(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return feedbackClearMsg{}
	})
}
