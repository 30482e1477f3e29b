package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/diogo/chatptatlas/internal/config"
	"github.com/diogo/chatptatlas/internal/render"
)

type recordingSaver struct {
	saved []config.Config
	err   error
}

func (r *recordingSaver) save(cfg config.Config) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, cfg)
	return nil
}

func newTestConfigModel(t *testing.T) (ConfigModel, *recordingSaver) {
	t.Helper()
	original := render.CurrentPalette().Name
	t.Cleanup(func() {
		_ = render.UsePalette(original)
		UpdateTheme()
	})

	saver := &recordingSaver{}
	m := NewConfigModel(config.DefaultConfig(), "/tmp/chatptatlas/config.json", saver.save)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(ConfigModel), saver
}

func sendConfigKey(t *testing.T, m ConfigModel, key string) (ConfigModel, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEscape}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}

	next, cmd := m.Update(msg)
	typed, ok := next.(ConfigModel)
	if !ok {
		t.Fatalf("Update should return ConfigModel type, got %T", next)
	}
	return typed, cmd
}

func TestNewConfigModel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TUITheme = "nord"
	cfg.ReplyDelayMs = 500
	cfg.Markdown.Style = "light"

	m := NewConfigModel(cfg, "", nil)

	if m.view != viewMain {
		t.Errorf("Expected view to be viewMain, got %v", m.view)
	}
	if m.cursor != 0 {
		t.Errorf("Expected cursor to be 0, got %d", m.cursor)
	}
	if got := render.PaletteNames()[m.pickers[viewThemeSelect]]; got != "nord" {
		t.Errorf("theme picker starts at %q, want nord", got)
	}
	if got := delayPresets[m.pickers[viewDelaySelect]]; got != 500 {
		t.Errorf("delay picker starts at %d, want 500", got)
	}
	if got := render.MarkdownStyles[m.pickers[viewMarkdownSelect]]; got != "light" {
		t.Errorf("markdown picker starts at %q, want light", got)
	}
	if m.Init() != nil {
		t.Error("Init should return nil command")
	}
}

func TestConfigModel_NotReady(t *testing.T) {
	m := NewConfigModel(config.DefaultConfig(), "", func(config.Config) error { return nil })
	if got := m.View(); got == "" {
		t.Error("View should render a placeholder before the first resize")
	}
}

func TestConfigModel_Navigation(t *testing.T) {
	m, _ := newTestConfigModel(t)

	m, _ = sendConfigKey(t, m, "up")
	if m.cursor != menuExit {
		t.Errorf("up from the top should wrap to Exit, got %d", m.cursor)
	}

	m, _ = sendConfigKey(t, m, "j")
	if m.cursor != menuTheme {
		t.Errorf("j from Exit should wrap to the top, got %d", m.cursor)
	}

	m, _ = sendConfigKey(t, m, "down")
	if m.cursor != menuDelay {
		t.Errorf("Expected cursor on delay, got %d", m.cursor)
	}
}

func TestConfigModel_ToggleClipboard(t *testing.T) {
	m, saver := newTestConfigModel(t)
	m.cursor = menuCopyToClipboard

	m, cmd := sendConfigKey(t, m, "enter")

	if !m.Config().CopyToClipboard {
		t.Error("copy to clipboard should be enabled")
	}
	if len(saver.saved) != 1 || !saver.saved[0].CopyToClipboard {
		t.Errorf("expected one save with clipboard enabled, got %+v", saver.saved)
	}
	if cmd == nil {
		t.Error("expected a feedback clear command")
	}
	if m.feedback != "Copy to clipboard enabled" {
		t.Errorf("unexpected feedback %q", m.feedback)
	}

	next, _ := m.Update(feedbackClearMsg{})
	if next.(ConfigModel).feedback != "" {
		t.Error("feedback should clear")
	}
}

func TestConfigModel_SelectTheme(t *testing.T) {
	m, saver := newTestConfigModel(t)
	m.cursor = menuTheme

	m, _ = sendConfigKey(t, m, "enter")
	if m.view != viewThemeSelect {
		t.Fatalf("Expected theme picker, got view %v", m.view)
	}

	// Pick the theme after the current one.
	want := render.PaletteNames()[wrap(m.pickers[viewThemeSelect]+1, len(render.PaletteNames()))]
	m, _ = sendConfigKey(t, m, "down")
	m, _ = sendConfigKey(t, m, "enter")

	if m.view != viewMain {
		t.Errorf("selection should return to the main menu")
	}
	if m.Config().TUITheme != want {
		t.Errorf("theme = %q, want %q", m.Config().TUITheme, want)
	}
	if render.CurrentPalette().Name != want {
		t.Errorf("palette not applied: %q", render.CurrentPalette().Name)
	}
	if colorPrimary != render.CurrentPalette().Primary {
		t.Error("styles not rebuilt for the new palette")
	}
	if len(saver.saved) != 1 {
		t.Errorf("expected one save, got %d", len(saver.saved))
	}
}

func TestConfigModel_SelectDelay(t *testing.T) {
	m, saver := newTestConfigModel(t)
	m.cursor = menuDelay

	m, _ = sendConfigKey(t, m, "enter")
	m, _ = sendConfigKey(t, m, "up")
	m, _ = sendConfigKey(t, m, "enter")

	// Default 1000ms sits after 500ms in the presets.
	if m.Config().ReplyDelayMs != 500 {
		t.Errorf("delay = %d, want 500", m.Config().ReplyDelayMs)
	}
	if len(saver.saved) != 1 || saver.saved[0].ReplyDelayMs != 500 {
		t.Errorf("unexpected saves %+v", saver.saved)
	}
}

func TestConfigModel_SelectMarkdownStyle(t *testing.T) {
	m, _ := newTestConfigModel(t)
	m.cursor = menuMarkdown

	m, _ = sendConfigKey(t, m, "enter")
	m, _ = sendConfigKey(t, m, "down")
	m, _ = sendConfigKey(t, m, " ")

	if got := m.Config().Markdown.Style; got != render.MarkdownStyles[1] {
		t.Errorf("markdown style = %q, want %q", got, render.MarkdownStyles[1])
	}
}

func TestConfigModel_EscBackThenQuit(t *testing.T) {
	m, saver := newTestConfigModel(t)
	m.cursor = menuDelay
	m, _ = sendConfigKey(t, m, "enter")

	m, cmd := sendConfigKey(t, m, "esc")
	if m.view != viewMain || cmd != nil {
		t.Error("esc in a picker should go back without quitting")
	}
	if len(saver.saved) != 0 {
		t.Error("backing out should not save")
	}

	_, cmd = sendConfigKey(t, m, "esc")
	if cmd == nil {
		t.Fatal("esc in the main menu should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestConfigModel_ExitItem(t *testing.T) {
	m, _ := newTestConfigModel(t)
	m.cursor = menuExit

	_, cmd := sendConfigKey(t, m, "enter")
	if cmd == nil {
		t.Fatal("Exit should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestConfigModel_SaveError(t *testing.T) {
	m, saver := newTestConfigModel(t)
	saver.err = errors.New("disk full")
	m.cursor = menuCopyToClipboard

	m, cmd := sendConfigKey(t, m, "enter")

	if cmd != nil {
		t.Error("a failed save should not schedule feedback")
	}
	if m.err == nil {
		t.Fatal("expected error to be shown")
	}
	out := ansi.Strip(m.View())
	if !containsAll(out, "disk full") {
		t.Errorf("error missing from view:\n%s", out)
	}
}

func TestConfigModel_View(t *testing.T) {
	m, _ := newTestConfigModel(t)

	out := ansi.Strip(m.View())
	if !containsAll(out, "ChatPTAtlas Settings", "/tmp/chatptatlas/config.json",
		"Chat Theme", "tokyonight", "Reply Delay", "1000ms", "Copy to Clipboard", "disabled",
		"Markdown Style", "dark", "Exit", "Navigate") {
		t.Errorf("main menu incomplete:\n%s", out)
	}

	m.cursor = menuTheme
	m, _ = sendConfigKey(t, m, "enter")
	out = ansi.Strip(m.View())
	if !containsAll(out, "Select Chat Theme", "(current)", "Back") {
		t.Errorf("theme picker incomplete:\n%s", out)
	}
	for _, name := range render.PaletteNames() {
		if !containsAll(out, name) {
			t.Errorf("theme %q missing from picker", name)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{0, 3, 0},
		{3, 3, 0},
		{-1, 3, 2},
		{-4, 3, 2},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := wrap(tt.i, tt.n); got != tt.want {
			t.Errorf("wrap(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestClearFeedback(t *testing.T) {
	if clearFeedback(time.Millisecond) == nil {
		t.Error("clearFeedback should return a command")
	}
}
