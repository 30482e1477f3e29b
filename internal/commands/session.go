package commands

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/diogo/chatptatlas/internal/config"
	"github.com/diogo/chatptatlas/internal/logging"
	"github.com/diogo/chatptatlas/internal/render"
	"github.com/diogo/chatptatlas/internal/responder"
	"github.com/diogo/chatptatlas/internal/tui"
)

// session is the effective configuration of one run
type session struct {
	cfg       config.Config
	log       zerolog.Logger
	responder *responder.Responder
	closer    io.Closer
}

// newSession loads the config, applies flag overrides and builds the logger
// and responder shared by the chat view and one-shot mode.
func newSession(cmd *cobra.Command, deps *Dependencies, f *rootFlags) (*session, error) {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if f.theme != "" {
		cfg.TUITheme = f.theme
	}
	if flags.Changed("delay") {
		cfg.ReplyDelayMs = int(f.delay.Milliseconds())
	}
	if flags.Changed("seed") {
		cfg.Seed = f.seed
	}
	if f.debug {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := render.UsePalette(cfg.TUITheme); err != nil {
		return nil, err
	}
	tui.UpdateTheme()

	s := &session{cfg: cfg, log: zerolog.Nop()}

	if f.debug {
		path, err := config.GetLogPath(cfg)
		if err != nil {
			return nil, err
		}
		log, closer, err := logging.OpenFile(path, cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		s.log = log
		s.closer = closer
	}

	opts := []responder.Option{
		responder.WithDelay(cfg.ReplyDelay()),
		responder.WithLogger(s.log.With().Str("component", "responder").Logger()),
	}
	if cfg.Seed != 0 {
		opts = append(opts, responder.WithSeed(cfg.Seed))
	}
	s.responder = responder.New(opts...)

	s.log.Debug().
		Str("theme", cfg.TUITheme).
		Dur("delay", cfg.ReplyDelay()).
		Uint64("seed", cfg.Seed).
		Msg("session started")

	return s, nil
}

// markdown returns the render options for assistant replies
func (s *session) markdown() render.Options {
	return render.OptionsFromConfig(s.cfg.Markdown)
}

// Close flushes the log file, if any
func (s *session) Close() {
	if s.closer != nil {
		_ = s.closer.Close()
	}
}
