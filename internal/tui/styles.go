// Package tui provides the terminal chat view for chatptatlas.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apierrors "github.com/diogo/chatptatlas/internal/errors"
	"github.com/diogo/chatptatlas/internal/render"
)

// Color variables (updated from the palette)
var (
	colorSurface   lipgloss.Color
	colorBorder    lipgloss.Color
	colorPrimary   lipgloss.Color
	colorSecondary lipgloss.Color
	colorAccent    lipgloss.Color
	colorError     lipgloss.Color
	colorSuccess   lipgloss.Color
	colorText      lipgloss.Color
	colorTextDim   lipgloss.Color
	colorTextMute  lipgloss.Color
)

// Style variables (rebuilt when the palette changes)
var (
	// Sidebar pane
	sidebarStyle         lipgloss.Style
	sidebarTitleStyle    lipgloss.Style
	sidebarSubtitleStyle lipgloss.Style
	newChatButtonStyle   lipgloss.Style

	// Messages pane
	messagesAreaStyle    lipgloss.Style
	userBubbleStyle      lipgloss.Style
	assistantBubbleStyle lipgloss.Style
	avatarStyle          lipgloss.Style
	typingDotStyle       lipgloss.Style
	typingDotDimStyle    lipgloss.Style

	// Welcome panel
	welcomeTitleStyle   lipgloss.Style
	welcomeTaglineStyle lipgloss.Style
	suggestionStyle     lipgloss.Style
	suggestionKeyStyle  lipgloss.Style

	// Input form
	inputPanelStyle         lipgloss.Style
	inputDisabledPanelStyle lipgloss.Style
	sendButtonStyle         lipgloss.Style
	sendButtonDisabledStyle lipgloss.Style

	// Status line
	statusBarStyle lipgloss.Style
	feedbackStyle  lipgloss.Style
	errorStyle     lipgloss.Style
	hintStyle      lipgloss.Style

	statusKeyStyle  lipgloss.Style
	statusDescStyle lipgloss.Style

	// Settings menu
	configHeaderStyle       lipgloss.Style
	configTitleStyle        lipgloss.Style
	configPanelStyle        lipgloss.Style
	configSectionTitleStyle lipgloss.Style
	configMenuItemStyle     lipgloss.Style
	configMenuSelectedStyle lipgloss.Style
	configCursorStyle       lipgloss.Style
	configValueStyle        lipgloss.Style
	configEnabledStyle      lipgloss.Style
	configDisabledStyle     lipgloss.Style
	configPathStyle         lipgloss.Style
	configStatusOkStyle     lipgloss.Style
)

func init() {
	UpdateTheme()
}

// UpdateTheme refreshes all styles from the current palette
func UpdateTheme() {
	p := render.CurrentPalette()

	colorSurface = p.Surface
	colorBorder = p.Border
	colorPrimary = p.Primary
	colorSecondary = p.Secondary
	colorAccent = p.Accent
	colorError = p.Error
	colorSuccess = p.Success
	colorText = p.Text
	colorTextDim = p.TextDim
	colorTextMute = p.TextMute

	rebuildStyles()
}

func rebuildStyles() {
	sidebarStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 1)

	sidebarTitleStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	sidebarSubtitleStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Italic(true)

	newChatButtonStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorTextMute).
		Foreground(colorTextDim).
		Padding(0, 1).
		MarginBottom(1)

	messagesAreaStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	// User bubbles sit on the right, assistant bubbles on the left.
	userBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorSecondary).
		Foreground(colorText).
		Padding(0, 1)

	assistantBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Foreground(colorText).
		Padding(0, 1)

	avatarStyle = lipgloss.NewStyle().
		PaddingTop(1).
		PaddingLeft(1).
		PaddingRight(1)

	typingDotStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	typingDotDimStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	welcomeTitleStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		MarginBottom(1)

	welcomeTaglineStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		MarginBottom(1)

	suggestionStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Foreground(colorText).
		Padding(0, 2)

	suggestionKeyStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	inputPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(0, 1)

	inputDisabledPanelStyle = inputPanelStyle.
		BorderForeground(colorTextMute)

	sendButtonStyle = lipgloss.NewStyle().
		Foreground(colorSurface).
		Background(colorPrimary).
		Bold(true).
		Padding(0, 1)

	sendButtonDisabledStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Background(colorSurface).
		Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	feedbackStyle = lipgloss.NewStyle().
		Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)

	hintStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Italic(true)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Bold(true)

	statusDescStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	configHeaderStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		MarginBottom(1).
		Align(lipgloss.Center)

	configTitleStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Bold(true).
		PaddingLeft(1)

	configPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 2)

	configSectionTitleStyle = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Bold(true)

	configMenuItemStyle = lipgloss.NewStyle().
		Foreground(colorText)

	configMenuSelectedStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	configCursorStyle = lipgloss.NewStyle().
		Foreground(colorAccent)

	configValueStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	configEnabledStyle = lipgloss.NewStyle().
		Foreground(colorSuccess)

	configDisabledStyle = lipgloss.NewStyle().
		Foreground(colorError)

	configPathStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Italic(true)

	configStatusOkStyle = lipgloss.NewStyle().
		Foreground(colorSuccess)
}

// FormatError returns a styled error message with a hint for known error types.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %v", err)))

	switch {
	case apierrors.IsThemeError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: run 'chatptatlas config themes' to list themes"))
	case apierrors.IsConfigError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: check 'chatptatlas config path' or the CHATPTATLAS_* environment"))
	case apierrors.IsClipboardError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: install xclip, xsel or wl-clipboard to enable copying"))
	}

	return sb.String()
}
