// Package conversation holds the in-memory chat state and its transitions.
package conversation

import (
	"slices"
	"strings"

	"github.com/diogo/chatptatlas/internal/models"
)

// Phase is the lifecycle of the input area.
type Phase int

const (
	// PhaseIdle accepts a new submission.
	PhaseIdle Phase = iota
	// PhaseAwaiting waits for the single outstanding reply.
	PhaseAwaiting
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaiting:
		return "awaiting"
	default:
		return "unknown"
	}
}

// Suggestions are the prompts offered while the conversation is empty.
var Suggestions = []string{
	"What can you help me with?",
	"Tell me something interesting",
	"How does this work?",
}

// State is an immutable snapshot of the conversation.
// Every transition returns a new State; older snapshots stay valid.
type State struct {
	messages   []models.Message
	draft      string
	responding bool
}

// New returns an empty, idle conversation
func New() State {
	return State{}
}

// Submit appends the trimmed text as a user message, clears the draft and
// enters the awaiting phase. It reports false and returns s unchanged when
// the text is blank or a reply is still pending.
func (s State) Submit(text string) (State, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || s.responding {
		return s, false
	}

	s.messages = appendMessage(s.messages, models.NewUserMessage(trimmed))
	s.draft = ""
	s.responding = true
	return s, true
}

// SetDraft replaces the draft input
func (s State) SetDraft(text string) State {
	s.draft = text
	return s
}

// ReceiveReply appends an assistant message and returns to idle
func (s State) ReceiveReply(text string) State {
	s.messages = appendMessage(s.messages, models.NewAssistantMessage(text))
	s.responding = false
	return s
}

// ApplySuggestion sets the draft to the i-th suggestion.
// Suggestions are only offered on an empty conversation; otherwise s is returned as is.
func (s State) ApplySuggestion(i int) (State, bool) {
	if !s.Empty() || i < 0 || i >= len(Suggestions) {
		return s, false
	}
	return s.SetDraft(Suggestions[i]), true
}

// Messages returns a copy of the message list in display order
func (s State) Messages() []models.Message {
	return slices.Clone(s.messages)
}

// Len returns the number of messages
func (s State) Len() int {
	return len(s.messages)
}

// Empty reports whether no message has been exchanged yet
func (s State) Empty() bool {
	return len(s.messages) == 0
}

// Draft returns the current input text
func (s State) Draft() string {
	return s.draft
}

// Responding reports whether a reply is pending
func (s State) Responding() bool {
	return s.responding
}

// Phase returns the input lifecycle phase
func (s State) Phase() Phase {
	if s.responding {
		return PhaseAwaiting
	}
	return PhaseIdle
}

// SubmitEnabled reports whether the send action is currently allowed
func (s State) SubmitEnabled() bool {
	return strings.TrimSpace(s.draft) != "" && !s.responding
}

// LastAssistant returns the most recent assistant message, if any
func (s State) LastAssistant() (models.Message, bool) {
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].Role == models.RoleAssistant {
			return s.messages[i], true
		}
	}
	return models.Message{}, false
}

// appendMessage never writes into a backing array shared with an older State.
func appendMessage(msgs []models.Message, m models.Message) []models.Message {
	return append(slices.Clip(msgs), m)
}
