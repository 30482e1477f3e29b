package commands

import (
	"github.com/spf13/cobra"

	"github.com/diogo/chatptatlas/internal/tui"
)

func newChatCmd(deps *Dependencies, f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start the interactive chat view",
		Long: `Start the interactive chat view.

Type a message and press Enter to send it. While the conversation is empty,
alt+1..alt+3 (or Tab) fill the input with a suggestion. Ctrl+Y copies the last
reply. Type /quit or /exit, or press Ctrl+C, to end the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, deps, f)
			if err != nil {
				return err
			}
			defer s.Close()

			return runChat(deps, s)
		},
	}
}

func runChat(deps *Dependencies, s *session) error {
	return deps.TUI.RunChat(tui.Options{
		Responder: s.responder,
		Logger:    s.log.With().Str("component", "tui").Logger(),
		Markdown:  s.markdown(),
		CopyText:  deps.CopyText,
	})
}
