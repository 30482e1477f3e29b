package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/chatptatlas/internal/render"
	"github.com/diogo/chatptatlas/internal/view"
)

const (
	sidebarPaneWidth   = 26
	minWidthForSidebar = 72
	inputHeight        = 3
	statusHeight       = 1
	sendButtonWidth    = 3
	typingDots         = 3
)

// View renders the chat view
func (m Model) View() string {
	if !m.ready {
		return hintStyle.Render("  Initializing...")
	}

	tree := view.Build(m.state)
	main := m.renderMain(tree)

	if side := m.sidebarWidth(); side > 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, renderSidebar(tree.Sidebar, side, m.height), main)
	}
	return main
}

func (m Model) renderMain(tree view.Tree) string {
	width := m.width - m.sidebarWidth()

	var body string
	if tree.Welcome != nil {
		body = renderWelcome(*tree.Welcome, m.viewport.Width, m.viewport.Height)
	} else {
		body = m.viewport.View()
	}

	messages := messagesAreaStyle.
		Width(width - 2).
		Height(m.viewport.Height).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		messages,
		m.renderInput(tree.Input, width),
		m.renderStatusBar(width),
	)
}

func (m Model) renderInput(in view.Input, width int) string {
	button := sendButtonStyle.Render("↑")
	if !in.SubmitEnabled {
		button = sendButtonDisabledStyle.Render("↑")
	}

	panel := inputPanelStyle
	if in.Disabled {
		panel = inputDisabledPanelStyle
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), " ", button)
	return panel.Width(width - 2).Render(row)
}

func (m Model) renderStatusBar(width int) string {
	var line string
	switch {
	case m.err != nil:
		line = errorStyle.Render(fmt.Sprintf("✗ %v", m.err))
	case m.feedback != "":
		line = feedbackStyle.Render(m.feedback)
	default:
		line = m.help.View(m.keys)
	}
	return statusBarStyle.Width(width).MaxHeight(statusHeight).Render(line)
}

func renderSidebar(s view.Sidebar, width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		newChatButtonStyle.Render(s.NewChat),
		sidebarTitleStyle.Render(s.Title),
		sidebarSubtitleStyle.Render(s.Subtitle),
	)

	h := height - 2
	if h < 1 {
		h = 1
	}
	return sidebarStyle.Width(width - 2).Height(h).Render(content)
}

func renderWelcome(w view.Welcome, width, height int) string {
	lines := []string{
		welcomeTitleStyle.Render(w.Title),
		welcomeTaglineStyle.Render(w.Tagline),
	}
	for _, s := range w.Suggestions {
		label := suggestionKeyStyle.Render(fmt.Sprintf("alt+%d", s.Index+1)) + "  " + s.Text
		lines = append(lines, suggestionStyle.Render(label))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderTranscript renders the message bubbles and the typing indicator
func renderTranscript(tree view.Tree, width, frame int, md render.Options) string {
	blocks := make([]string, 0, len(tree.Bubbles)+1)
	for _, b := range tree.Bubbles {
		blocks = append(blocks, renderBubble(b, width, md))
	}
	if tree.Typing {
		blocks = append(blocks, renderTyping(width, frame))
	}
	return strings.Join(blocks, "\n")
}

func renderBubble(b view.Bubble, width int, md render.Options) string {
	avatar := avatarStyle.Render(b.Avatar)
	textWidth := width*3/4 - lipgloss.Width(avatar) - 4
	if textWidth < 10 {
		textWidth = 10
	}

	if b.Align == view.AlignRight {
		w := lipgloss.Width(b.Text) + 2
		if w > textWidth+2 {
			w = textWidth + 2
		}
		bubble := userBubbleStyle.Width(w).Render(b.Text)
		row := lipgloss.JoinHorizontal(lipgloss.Top, bubble, avatar)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, row)
	}

	content := render.Reply(b.Text, md.WithWidth(textWidth))
	bubble := assistantBubbleStyle.Render(content)
	row := lipgloss.JoinHorizontal(lipgloss.Top, avatar, bubble)
	return lipgloss.PlaceHorizontal(width, lipgloss.Left, row)
}

// renderTyping draws three dots with one highlighted per animation frame
func renderTyping(width, frame int) string {
	dots := make([]string, typingDots)
	for i := range dots {
		if i == frame%typingDots {
			dots[i] = typingDotStyle.Render("●")
		} else {
			dots[i] = typingDotDimStyle.Render("●")
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		avatarStyle.Render(view.AvatarAssistant),
		assistantBubbleStyle.Render(strings.Join(dots, " ")),
	)
	return lipgloss.PlaceHorizontal(width, lipgloss.Left, row)
}
