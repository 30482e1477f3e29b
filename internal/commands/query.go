package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/chatptatlas/internal/conversation"
	apierrors "github.com/diogo/chatptatlas/internal/errors"
	"github.com/diogo/chatptatlas/internal/render"
	"github.com/diogo/chatptatlas/internal/view"
)

// Colors of the one-shot output, taken from the active palette
var (
	colorText     lipgloss.Color
	colorTextMute lipgloss.Color
	colorSuccess  lipgloss.Color
	colorPrimary  lipgloss.Color
	colorError    lipgloss.Color
)

func loadColors() {
	p := render.CurrentPalette()
	colorText = p.Text
	colorTextMute = p.TextMute
	colorSuccess = p.Success
	colorPrimary = p.Primary
	colorError = p.Error
}

func init() {
	loadColors()
}

// runQuery sends a single message through a fresh conversation and prints the
// reply. Without a terminal, or with --raw, only the reply text is printed.
func runQuery(ctx context.Context, deps *Dependencies, s *session, f *rootFlags, prompt string) error {
	state, ok := conversation.New().Submit(prompt)
	if !ok {
		return apierrors.ErrEmptyPrompt
	}

	loadColors()
	rawOutput := f.raw || !deps.IsTerminal()

	var spin *spinner
	if !rawOutput {
		spin = newSpinner(deps.Stderr, view.Title+" is typing")
		spin.start()
	}

	reply, err := s.responder.Await(ctx)
	if err != nil {
		if spin != nil {
			spin.stopWithError()
		}
		return fmt.Errorf("no reply: %w", err)
	}
	state = state.ReceiveReply(reply)
	if spin != nil {
		spin.stopWithSuccess("Reply received")
	}

	last, _ := state.LastAssistant()
	text := last.Content

	s.log.Debug().
		Int("messages", state.Len()).
		Bool("raw", rawOutput).
		Msg("one-shot reply")

	// Raw output mode: output only the raw text
	if rawOutput {
		if f.output != "" {
			return writeOutput(f.output, text)
		}
		fmt.Fprintln(deps.Stdout, text)
		return nil
	}

	// Decorated output mode (TTY)
	fmt.Fprintln(deps.Stderr)

	if s.cfg.CopyToClipboard {
		if err := deps.CopyText(text); err != nil {
			warnMsg := lipgloss.NewStyle().Foreground(colorError).Render(
				fmt.Sprintf("⚠ %v", apierrors.NewClipboardError(err)),
			)
			fmt.Fprintln(deps.Stderr, warnMsg)
		} else {
			fmt.Fprintln(deps.Stderr, lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ Copied to clipboard"))
		}
	}

	if f.output != "" {
		if err := writeOutput(f.output, text); err != nil {
			return err
		}
		successMsg := lipgloss.NewStyle().Foreground(colorSuccess).Render(
			fmt.Sprintf("✓ Reply saved to %s", f.output),
		)
		fmt.Fprintln(deps.Stderr, successMsg)
		return nil
	}

	fmt.Fprintln(deps.Stdout, renderReply(text, deps.TerminalWidth(), s.markdown()))
	return nil
}

// renderReply draws the reply as a labelled assistant bubble, like the chat view
func renderReply(text string, termWidth int, md render.Options) string {
	bubbleWidth := termWidth - 4
	if bubbleWidth < 40 {
		bubbleWidth = 40
	}
	if bubbleWidth > 120 {
		bubbleWidth = 120
	}
	contentWidth := bubbleWidth - 4

	label := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render(view.AvatarAssistant + " " + view.Title)

	bubble := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Foreground(colorText).
		Padding(0, 1).
		MarginBottom(1).
		Width(bubbleWidth).
		Render(render.Reply(text, md.WithWidth(contentWidth)))

	return lipgloss.JoinVertical(lipgloss.Left, label, bubble)
}

func writeOutput(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
