package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/chatptatlas/internal/config"
	"github.com/diogo/chatptatlas/internal/render"
)

// configView represents the current view in the config menu
type configView int

const (
	viewMain configView = iota
	viewThemeSelect
	viewDelaySelect
	viewMarkdownSelect
)

// Menu item indices for main view
const (
	menuTheme = iota
	menuDelay
	menuCopyToClipboard
	menuMarkdown
	menuExit
	menuItemCount
)

// delayPresets are the reply delays offered in milliseconds
var delayPresets = []int{0, 250, 500, 1000, 2000, 3000}

// ConfigModel is the interactive settings menu
type ConfigModel struct {
	config     config.Config
	configPath string
	save       func(config.Config) error

	// Navigation
	view    configView
	cursor  int
	pickers [viewMarkdownSelect + 1]int

	feedback string
	err      error

	width  int
	height int
	ready  bool
}

// NewConfigModel creates the settings menu for cfg. save persists every change.
func NewConfigModel(cfg config.Config, configPath string, save func(config.Config) error) ConfigModel {
	if save == nil {
		save = config.SaveConfig
	}

	m := ConfigModel{
		config:     cfg,
		configPath: configPath,
		save:       save,
		view:       viewMain,
	}
	m.pickers[viewThemeSelect] = indexOf(render.PaletteNames(), cfg.TUITheme)
	m.pickers[viewDelaySelect] = indexOf(delayLabels(), strconv.Itoa(cfg.ReplyDelayMs))
	m.pickers[viewMarkdownSelect] = indexOf(render.MarkdownStyles, cfg.Markdown.Style)
	return m
}

// Config returns the settings as edited so far
func (m ConfigModel) Config() config.Config {
	return m.config
}

// Init initializes the model
func (m ConfigModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m ConfigModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case feedbackClearMsg:
		m.feedback = ""

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.view != viewMain {
				m.view = viewMain
				return m, nil
			}
			return m, tea.Quit

		case "up", "k":
			m.move(-1)

		case "down", "j":
			m.move(1)

		case "enter", " ":
			return m.handleSelect()
		}
	}

	return m, nil
}

// move steps the cursor of the current view, wrapping at both ends
func (m *ConfigModel) move(delta int) {
	if m.view == viewMain {
		m.cursor = wrap(m.cursor+delta, menuItemCount)
		return
	}
	m.pickers[m.view] = wrap(m.pickers[m.view]+delta, len(m.options(m.view)))
}

// options returns the choices of a picker view
func (m ConfigModel) options(v configView) []string {
	switch v {
	case viewThemeSelect:
		return render.PaletteNames()
	case viewDelaySelect:
		return delayLabels()
	case viewMarkdownSelect:
		return render.MarkdownStyles
	}
	return nil
}

// handleSelect handles menu item selection
func (m ConfigModel) handleSelect() (tea.Model, tea.Cmd) {
	if m.view == viewMain {
		switch m.cursor {
		case menuTheme:
			m.view = viewThemeSelect
		case menuDelay:
			m.view = viewDelaySelect
		case menuMarkdown:
			m.view = viewMarkdownSelect
		case menuCopyToClipboard:
			m.config.CopyToClipboard = !m.config.CopyToClipboard
			return m.persist(fmt.Sprintf("Copy to clipboard %s", enabledWord(m.config.CopyToClipboard)))
		case menuExit:
			return m, tea.Quit
		}
		return m, nil
	}

	choice := m.options(m.view)[m.pickers[m.view]]
	view := m.view
	m.view = viewMain

	switch view {
	case viewThemeSelect:
		if err := render.UsePalette(choice); err != nil {
			m.err = err
			return m, nil
		}
		UpdateTheme()
		m.config.TUITheme = choice
		return m.persist(fmt.Sprintf("Chat theme set to %s", choice))

	case viewDelaySelect:
		ms, _ := strconv.Atoi(choice)
		m.config.ReplyDelayMs = ms
		return m.persist(fmt.Sprintf("Reply delay set to %dms", ms))

	case viewMarkdownSelect:
		m.config.Markdown.Style = choice
		return m.persist(fmt.Sprintf("Markdown style set to %s", choice))
	}

	return m, nil
}

// persist saves the config and reports the outcome
func (m ConfigModel) persist(success string) (tea.Model, tea.Cmd) {
	if err := m.save(m.config); err != nil {
		m.err = err
		m.feedback = ""
		return m, nil
	}
	m.err = nil
	m.feedback = success
	return m, clearFeedback(feedbackTimeout)
}

// View renders the settings menu
func (m ConfigModel) View() string {
	if !m.ready {
		return hintStyle.Render("  Initializing...")
	}

	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	header := configHeaderStyle.Width(contentWidth).Render(
		configTitleStyle.Render("⚙ ChatPTAtlas Settings"),
	)

	paths := configPanelStyle.Width(contentWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		configSectionTitleStyle.Render("Paths"),
		"   Config: "+configPathStyle.Render(m.configPath),
	))

	var body string
	if m.view == viewMain {
		body = m.renderMainMenu()
	} else {
		body = m.renderPicker()
	}
	settings := configPanelStyle.Width(contentWidth).Render(body)

	sections := []string{header, paths, settings}
	switch {
	case m.err != nil:
		sections = append(sections, FormatError(m.err))
	case m.feedback != "":
		sections = append(sections, feedbackStyle.Render("✓ "+m.feedback))
	}
	sections = append(sections, m.renderStatusBar(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderMainMenu renders the main settings menu
func (m ConfigModel) renderMainMenu() string {
	rows := []struct {
		label string
		value string
	}{
		{"Chat Theme", configValueStyle.Render(m.config.TUITheme)},
		{"Reply Delay", configValueStyle.Render(fmt.Sprintf("%dms", m.config.ReplyDelayMs))},
		{"Copy to Clipboard", m.renderBoolValue(m.config.CopyToClipboard)},
		{"Markdown Style", configValueStyle.Render(m.config.Markdown.Style)},
	}

	items := []string{configSectionTitleStyle.Render("Settings"), ""}
	for i, row := range rows {
		items = append(items, menuCursor(m.cursor == i, fmt.Sprintf("%-20s", row.label))+row.value)
	}
	items = append(items, "", menuCursor(m.cursor == menuExit, "Exit"))

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// renderPicker renders the choices of the open sub-menu
func (m ConfigModel) renderPicker() string {
	titles := map[configView]string{
		viewThemeSelect:    "Select Chat Theme",
		viewDelaySelect:    "Select Reply Delay (ms)",
		viewMarkdownSelect: "Select Markdown Style",
	}
	current := map[configView]string{
		viewThemeSelect:    m.config.TUITheme,
		viewDelaySelect:    strconv.Itoa(m.config.ReplyDelayMs),
		viewMarkdownSelect: m.config.Markdown.Style,
	}

	items := []string{configSectionTitleStyle.Render(titles[m.view]), ""}
	for i, option := range m.options(m.view) {
		label := option
		if m.view == viewThemeSelect {
			if p, err := render.LookupPalette(option); err == nil {
				label = fmt.Sprintf("%s - %s", p.Name, p.Description)
			}
		}
		line := menuCursor(m.pickers[m.view] == i, label)
		if option == current[m.view] {
			line += configStatusOkStyle.Render(" (current)")
		}
		items = append(items, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// renderBoolValue renders a boolean value with appropriate styling
func (m ConfigModel) renderBoolValue(value bool) string {
	if value {
		return configEnabledStyle.Render("enabled")
	}
	return configDisabledStyle.Render("disabled")
}

// renderStatusBar renders the bottom status bar
func (m ConfigModel) renderStatusBar(width int) string {
	back := "Exit"
	if m.view != viewMain {
		back = "Back"
	}

	shortcuts := [][2]string{{"↑↓", "Navigate"}, {"Enter", "Select"}, {"Esc", back}}
	items := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s[0])+statusDescStyle.Render(" "+s[1]))
	}

	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(strings.Join(items, "  │  "))
}

// RunConfig starts the settings menu
func RunConfig(cfg config.Config, configPath string) error {
	p := tea.NewProgram(
		NewConfigModel(cfg, configPath, config.SaveConfig),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

func menuCursor(selected bool, label string) string {
	if selected {
		return configCursorStyle.Render("▸ ") + configMenuSelectedStyle.Render(label)
	}
	return "  " + configMenuItemStyle.Render(label)
}

func delayLabels() []string {
	labels := make([]string, len(delayPresets))
	for i, ms := range delayPresets {
		labels[i] = strconv.Itoa(ms)
	}
	return labels
}

func enabledWord(v bool) string {
	if v {
		return "enabled"
	}
	return "disabled"
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return 0
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
