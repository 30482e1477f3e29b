// Package commands provides CLI commands for chatptatlas.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/diogo/chatptatlas/internal/tui"
)

// Version info (set at build time)
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootFlags holds the flags shared by the root command and its subcommands
type rootFlags struct {
	theme   string
	delay   time.Duration
	seed    uint64
	debug   bool
	version bool
	output  string
	file    string
	raw     bool
}

// NewRootCmd creates the chatptatlas command tree
func NewRootCmd(deps *Dependencies) *cobra.Command {
	if deps == nil {
		deps = NewDependencies()
	}
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "chatptatlas [prompt]",
		Short: "ChatPTAtlas, a demo chat interface for the terminal",
		Long: `chatptatlas is a terminal rendition of the ChatPTAtlas demo. It shows a
chat view whose assistant answers every message with a canned reply after a
short simulated delay. Nothing leaves your machine.

Examples:
  chatptatlas                           Start the chat view
  chatptatlas chat --theme nord         Start the chat view with a theme
  chatptatlas "What is Go?"             Send a single message
  chatptatlas -f prompt.md              Read the message from a file
  cat prompt.md | chatptatlas           Read the message from stdin
  chatptatlas "Hello" -o reply.md       Save the reply to a file
  chatptatlas config get tui_theme      Show a configuration value`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.version {
				fmt.Fprintf(deps.Stdout, "chatptatlas %s (built %s)\n", Version, BuildTime)
				return nil
			}

			prompt, ok, err := readPrompt(deps, f, args)
			if err != nil {
				return err
			}

			// No input and nowhere to draw the chat view
			if !ok && !deps.IsTerminal() {
				return cmd.Help()
			}

			s, err := newSession(cmd, deps, f)
			if err != nil {
				return err
			}
			defer s.Close()

			if ok {
				return runQuery(cmd.Context(), deps, s, f, prompt)
			}
			return runChat(deps, s)
		},
	}

	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.theme, "theme", "", "Color theme of the chat view (see 'config themes')")
	pf.DurationVar(&f.delay, "delay", 0, "Simulated reply delay (default from config, 1s)")
	pf.Uint64Var(&f.seed, "seed", 0, "Seed for reply selection (0 = time based)")
	pf.BoolVar(&f.debug, "debug", false, "Write debug logs to the log file")

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Save reply to file")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Read prompt from file")
	cmd.Flags().BoolVar(&f.raw, "raw", false, "Print only the reply text")
	cmd.Flags().BoolVarP(&f.version, "version", "v", false, "Show version and exit")

	cmd.AddCommand(newChatCmd(deps, f))
	cmd.AddCommand(newConfigCmd(deps))

	return cmd
}

// readPrompt returns the one-shot prompt from --file, stdin or the argument,
// in that order. ok is false when none was given.
func readPrompt(deps *Dependencies, f *rootFlags, args []string) (string, bool, error) {
	if f.file != "" {
		data, err := os.ReadFile(f.file)
		if err != nil {
			return "", false, fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), true, nil
	}

	if deps.StdinPiped() {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", false, fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), true, nil
	}

	if len(args) > 0 {
		return args[0], true, nil
	}

	return "", false, nil
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := NewRootCmd(NewDependencies()).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, tui.FormatError(err))
		os.Exit(1)
	}
}
