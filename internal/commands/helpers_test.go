package commands

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diogo/chatptatlas/internal/config"
	"github.com/diogo/chatptatlas/internal/render"
	"github.com/diogo/chatptatlas/internal/tui"
)

// fakeTUI records the options the chat view was started with
type fakeTUI struct {
	calls       int
	opts        tui.Options
	err         error
	configCalls int
	config      config.Config
	configPath  string
}

func (f *fakeTUI) RunChat(opts tui.Options) error {
	f.calls++
	f.opts = opts
	return f.err
}

func (f *fakeTUI) RunConfig(cfg config.Config, configPath string) error {
	f.configCalls++
	f.config = cfg
	f.configPath = configPath
	return f.err
}

type testEnv struct {
	deps      *Dependencies
	tui       *fakeTUI
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	copied    []string
	configDir string
}

var configEnvVars = []string{
	"CHATPTATLAS_THEME",
	"CHATPTATLAS_REPLY_DELAY_MS",
	"CHATPTATLAS_SEED",
	"CHATPTATLAS_COPY_TO_CLIPBOARD",
	"CHATPTATLAS_LOG_LEVEL",
	"CHATPTATLAS_LOG_FILE",
	"CHATPTATLAS_MARKDOWN_STYLE",
	"CHATPTATLAS_MARKDOWN_EMOJI",
	"CHATPTATLAS_MARKDOWN_PRESERVE_NEWLINES",
	"GLAMOUR_STYLE",
}

// newTestEnv isolates the config directory and environment and wires fakes
// for the terminal, clipboard and TUI.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	t.Setenv(config.ConfigDirEnv, dir)
	for _, name := range configEnvVars {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	original := render.CurrentPalette().Name
	t.Cleanup(func() {
		_ = render.UsePalette(original)
		tui.UpdateTheme()
	})

	env := &testEnv{
		tui:       &fakeTUI{},
		stdout:    &bytes.Buffer{},
		stderr:    &bytes.Buffer{},
		configDir: dir,
	}
	env.deps = &Dependencies{
		TUI:        env.tui,
		LoadConfig: config.LoadConfig,
		CopyText: func(text string) error {
			env.copied = append(env.copied, text)
			return nil
		},
		IsTerminal:    func() bool { return false },
		TerminalWidth: func() int { return 80 },
		StdinPiped:    func() bool { return false },
		Stdin:         strings.NewReader(""),
		Stdout:        env.stdout,
		Stderr:        env.stderr,
	}
	return env
}

func (e *testEnv) run(args ...string) error {
	cmd := NewRootCmd(e.deps)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func (e *testEnv) writeConfig(t *testing.T, cfg config.Config) {
	t.Helper()
	require.NoError(t, config.SaveConfig(cfg))
}

func testMarkdown() render.Options {
	return render.DefaultOptions().WithStyle("notty")
}
