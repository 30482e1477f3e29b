// Package view turns a conversation snapshot into a presentation-neutral tree.
// Build is pure: the same State always yields an equal Tree.
package view

import (
	"github.com/diogo/chatptatlas/internal/conversation"
	"github.com/diogo/chatptatlas/internal/models"
)

const (
	Title        = "ChatPTAtlas"
	Subtitle     = "AI Chat Interface"
	NewChatLabel = "+ New chat"
	Tagline      = "Your AI-powered assistant"
	Placeholder  = "Send a message..."

	AvatarUser      = "👤"
	AvatarAssistant = "🤖"
)

// Align is the horizontal placement of a bubble.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Sidebar is static apart from its labels; the new chat button is inert.
type Sidebar struct {
	Title    string
	Subtitle string
	NewChat  string
}

// Suggestion is a shortcut button that fills the draft.
type Suggestion struct {
	Index int
	Text  string
}

// Welcome is shown instead of the message list while no message exists.
type Welcome struct {
	Title       string
	Tagline     string
	Suggestions []Suggestion
}

// Bubble is one rendered message.
type Bubble struct {
	Role   models.Role
	Avatar string
	Text   string
	Align  Align
}

// Input describes the input form.
type Input struct {
	Value         string
	Placeholder   string
	Disabled      bool
	SubmitEnabled bool
}

// Tree is the full view of one conversation snapshot.
type Tree struct {
	Sidebar Sidebar
	Welcome *Welcome
	Bubbles []Bubble
	// Typing is the placeholder bubble shown while a reply is pending.
	Typing bool
	Input  Input
}

// Build derives the view tree from s
func Build(s conversation.State) Tree {
	t := Tree{
		Sidebar: Sidebar{
			Title:    Title,
			Subtitle: Subtitle,
			NewChat:  NewChatLabel,
		},
		Typing: s.Responding(),
		Input: Input{
			Value:         s.Draft(),
			Placeholder:   Placeholder,
			Disabled:      s.Responding(),
			SubmitEnabled: s.SubmitEnabled(),
		},
	}

	if s.Empty() {
		w := &Welcome{Title: Title, Tagline: Tagline}
		for i, text := range conversation.Suggestions {
			w.Suggestions = append(w.Suggestions, Suggestion{Index: i, Text: text})
		}
		t.Welcome = w
		return t
	}

	for _, msg := range s.Messages() {
		t.Bubbles = append(t.Bubbles, bubbleFor(msg))
	}
	return t
}

func bubbleFor(msg models.Message) Bubble {
	if msg.IsUser() {
		return Bubble{Role: msg.Role, Avatar: AvatarUser, Text: msg.Content, Align: AlignRight}
	}
	return Bubble{Role: msg.Role, Avatar: AvatarAssistant, Text: msg.Content, Align: AlignLeft}
}
