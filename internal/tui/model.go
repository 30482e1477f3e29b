package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/diogo/chatptatlas/internal/conversation"
	apierrors "github.com/diogo/chatptatlas/internal/errors"
	"github.com/diogo/chatptatlas/internal/render"
	"github.com/diogo/chatptatlas/internal/responder"
	"github.com/diogo/chatptatlas/internal/view"
)

// Options configures the chat view.
type Options struct {
	Responder *responder.Responder
	Logger    zerolog.Logger
	Markdown  render.Options
	// CopyText writes to the system clipboard (clipboard.WriteAll by default).
	CopyText  func(string) error
}

// Model is the chat view. The conversation state is only ever changed from
// Update, which Bubble Tea runs on a single goroutine.
type Model struct {
	state     conversation.State
	responder *responder.Responder
	log       zerolog.Logger
	markdown  render.Options
	copyText  func(string) error

	// ctx is cancelled on teardown so a pending reply is dropped.
	ctx    context.Context
	cancel context.CancelFunc
	closed bool

	// UI components
	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	ready  bool
	width  int
	height int

	typingFrame    int
	nextSuggestion int
	anchored       int // message count the viewport last scrolled for
	scrolling      bool

	feedback string
	err      error
}

// NewModel creates the chat view
func NewModel(opts Options) Model {
	if opts.Responder == nil {
		opts.Responder = responder.New()
	}
	if opts.CopyText == nil {
		opts.CopyText = clipboard.WriteAll
	}
	if opts.Markdown == (render.Options{}) {
		opts.Markdown = render.DefaultOptions()
	}

	ti := textinput.New()
	ti.Placeholder = view.Placeholder
	ti.Prompt = "› "
	ti.CharLimit = 4000
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorPrimary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorText)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(colorTextDim)
	ti.Focus()

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(colorTextDim).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(colorTextMute)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(colorTextMute)

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     conversation.New(),
		responder: opts.Responder,
		log:       opts.Logger,
		markdown:  opts.Markdown,
		copyText:  opts.CopyText,
		ctx:       ctx,
		cancel:    cancel,
		input:     ti,
		help:      h,
		keys:      defaultKeyMap(),
	}
}

// State returns the current conversation snapshot
func (m Model) State() conversation.State {
	return m.state
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Nothing reaches a torn-down view, late replies included.
	if m.closed {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case replyMsg:
		return m.receiveReply(msg.text)

	case typingTickMsg:
		if !m.state.Responding() {
			return m, nil
		}
		m.typingFrame++
		m.refreshViewport()
		return m, typingTick()

	case scrollTickMsg:
		return m.scrollStep()

	case feedbackClearMsg:
		m.feedback = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Clear):
		if m.state.Draft() != "" {
			m.setDraft("")
			return m, nil
		}
		return m.quit()

	case key.Matches(msg, m.keys.Send):
		return m.submit()

	case key.Matches(msg, m.keys.Suggestion):
		if i, ok := suggestionIndex(msg.String()); ok {
			m.applySuggestion(i)
		}
		return m, nil

	case key.Matches(msg, m.keys.Cycle):
		if m.state.Empty() {
			i := m.nextSuggestion
			m.nextSuggestion = (i + 1) % len(conversation.Suggestions)
			m.applySuggestion(i)
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m.copyLastReply()

	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	// The input is disabled while a reply is pending.
	if m.state.Responding() {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state = m.state.SetDraft(m.input.Value())
	return m, cmd
}

// submit sends the draft and schedules the reply
func (m Model) submit() (tea.Model, tea.Cmd) {
	if !m.state.Responding() && isExitCommand(m.state.Draft()) {
		return m.quit()
	}

	next, ok := m.state.Submit(m.state.Draft())
	if !ok {
		return m, nil
	}

	m.state = next
	m.input.Reset()
	m.input.Blur()
	m.err = nil
	m.typingFrame = 0

	m.log.Debug().
		Str("phase", next.Phase().String()).
		Int("messages", next.Len()).
		Msg("message submitted")

	cmd := tea.Batch(m.awaitReply(), typingTick(), m.messagesChanged())
	return m, cmd
}

// receiveReply appends the assistant reply and re-enables the input
func (m Model) receiveReply(text string) (tea.Model, tea.Cmd) {
	if !m.state.Responding() {
		return m, nil
	}

	m.state = m.state.ReceiveReply(text)
	focus := m.input.Focus()

	m.log.Debug().
		Str("phase", m.state.Phase().String()).
		Int("messages", m.state.Len()).
		Msg("reply received")

	cmd := tea.Batch(focus, m.messagesChanged())
	return m, cmd
}

func (m *Model) setDraft(text string) {
	m.state = m.state.SetDraft(text)
	m.input.SetValue(text)
	m.input.CursorEnd()
}

func (m *Model) applySuggestion(i int) {
	next, ok := m.state.ApplySuggestion(i)
	if !ok {
		return
	}
	m.setDraft(next.Draft())
	m.log.Debug().Int("suggestion", i).Msg("suggestion applied")
}

func (m Model) copyLastReply() (tea.Model, tea.Cmd) {
	last, ok := m.state.LastAssistant()
	if !ok {
		m.err = apierrors.ErrNoReply
		return m, nil
	}

	if err := m.copyText(last.Content); err != nil {
		m.err = apierrors.NewClipboardError(err)
		m.log.Warn().Err(err).Msg("clipboard copy failed")
		return m, nil
	}

	m.err = nil
	m.feedback = "✓ Copied to clipboard"
	return m, clearFeedback(feedbackTimeout)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.teardown()
	return m, tea.Quit
}

// teardown cancels any pending reply; the view ignores every later message
func (m *Model) teardown() {
	if m.closed {
		return
	}
	m.closed = true
	m.input.Blur()
	if m.cancel != nil {
		m.cancel()
	}
	m.log.Debug().Int("messages", m.state.Len()).Msg("chat view closed")
}

// layout sizes the components for the current window
func (m *Model) layout() {
	mainWidth := m.width - m.sidebarWidth()
	contentWidth := mainWidth - 4 // border + padding
	if contentWidth < 10 {
		contentWidth = 10
	}

	vpHeight := m.height - inputHeight - statusHeight - 2
	if vpHeight < 3 {
		vpHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(contentWidth, vpHeight)
		m.viewport.MouseWheelEnabled = true
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = vpHeight
	}

	m.input.Width = contentWidth - sendButtonWidth - 4
	m.help.Width = mainWidth
}

func (m Model) sidebarWidth() int {
	if m.width < minWidthForSidebar {
		return 0
	}
	return sidebarPaneWidth
}

// refreshViewport re-renders the transcript into the viewport
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(renderTranscript(view.Build(m.state), m.viewport.Width, m.typingFrame, m.markdown))
}

// messagesChanged refreshes the transcript and, when the message count moved,
// starts scrolling toward the bottom anchor.
func (m *Model) messagesChanged() tea.Cmd {
	m.refreshViewport()
	if m.state.Len() == m.anchored {
		return nil
	}
	m.anchored = m.state.Len()
	if m.scrolling {
		return nil
	}
	m.scrolling = true
	return scrollTick()
}

// scrollStep eases the viewport toward the bottom, halving the distance each frame
func (m Model) scrollStep() (tea.Model, tea.Cmd) {
	target := m.viewport.TotalLineCount() - m.viewport.Height
	if target < 0 {
		target = 0
	}

	remaining := target - m.viewport.YOffset
	if remaining <= 0 {
		m.scrolling = false
		return m, nil
	}

	m.viewport.SetYOffset(m.viewport.YOffset + (remaining+1)/2)
	if m.viewport.AtBottom() {
		m.scrolling = false
		return m, nil
	}
	return m, scrollTick()
}

func isExitCommand(draft string) bool {
	switch strings.TrimSpace(draft) {
	case "/quit", "/exit":
		return true
	}
	return false
}
