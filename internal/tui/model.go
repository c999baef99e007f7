package tui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/diogo/chatpanel/internal/chat"
	"github.com/diogo/chatpanel/internal/models"
	"github.com/diogo/chatpanel/internal/render"
)

// Panel geometry
const (
	maxPanelWidth  = 64
	maxPanelHeight = 30
	minPanelWidth  = 32
	minViewport    = 3
	statusTimeout  = 2 * time.Second
)

// Message types for the TUI
type (
	// storeUpdatedMsg is sent after the conversation store grew
	storeUpdatedMsg struct{}

	// clearStatusMsg hides the transient status line
	clearStatusMsg struct{}
)

// Options configures the chat panel view
type Options struct {
	Theme    render.Theme
	Markdown render.Options
	Logger   zerolog.Logger
}

// DefaultOptions returns the default theme and markdown settings
func DefaultOptions() Options {
	return Options{
		Theme:    render.TokyoNight,
		Markdown: render.DefaultOptions(),
		Logger:   zerolog.Nop(),
	}
}

// Model represents the TUI state
type Model struct {
	panel    *chat.Panel
	updates  chan struct{}
	markdown render.Options
	logger   zerolog.Logger
	copyText func(string) error

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	// State
	ready     bool
	status    string
	statusErr bool

	// Dimensions
	width  int
	height int
}

// NewModel creates the view over panel and subscribes it to the store.
func NewModel(panel *chat.Panel, opts Options) Model {
	ApplyTheme(opts.Theme)

	ti := textinput.New()
	ti.Placeholder = "Type a message..."
	ti.CharLimit = 4000
	ti.Prompt = "› "
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorText)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(colorTextDim)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = loadingStyle

	markdown := opts.Markdown
	if opts.Markdown.Style == "" || opts.Markdown.Style == render.StyleDark {
		markdown.Style = opts.Theme.Markdown
	}

	// Fetch goroutines append to the store; the signal is dropped when one
	// is already pending since the refresh reads the whole store anyway.
	updates := make(chan struct{}, 1)
	panel.Store().Subscribe(func(models.Message) {
		select {
		case updates <- struct{}{}:
		default:
		}
	})

	return Model{
		panel:    panel,
		updates:  updates,
		markdown: markdown,
		logger:   opts.Logger,
		copyText: clipboard.WriteAll,
		input:    ti,
		spinner:  s,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForUpdate(m.updates),
		m.spinner.Tick,
	)
}

// waitForUpdate blocks until the store signals an append
func waitForUpdate(updates <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-updates
		return storeUpdatedMsg{}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.panel.IsOpen() {
			return m.updateClosed(msg)
		}
		return m.updateOpen(msg)

	case tea.MouseMsg:
		if m.panel.IsOpen() {
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		}

	case storeUpdatedMsg:
		m.refreshViewport()
		cmds = append(cmds, waitForUpdate(m.updates))

	case clearStatusMsg:
		m.status = ""
		m.statusErr = false

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// updateClosed handles keys while only the toggle button is shown
func (m Model) updateClosed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ", "o", "ctrl+o":
		m.panel.Toggle()
		m.refreshViewport()
		return m, m.input.Focus()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// updateOpen handles keys while the panel is shown
func (m Model) updateOpen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "esc", "ctrl+o":
		m.panel.Toggle()
		m.input.Blur()
		return m, nil

	case "enter":
		m.panel.SetInput(m.input.Value())
		if m.panel.Send() {
			m.input.SetValue(m.panel.Input())
			m.refreshViewport()
		}
		return m, nil

	case "ctrl+y":
		return m.copyLastReply()

	case "pgup", "pgdown", "up", "down":
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	m.input, cmd = m.input.Update(msg)
	m.panel.SetInput(m.input.Value())
	return m, cmd
}

func (m Model) copyLastReply() (tea.Model, tea.Cmd) {
	last, ok := m.panel.Store().Last(models.SenderBot)
	if !ok {
		m.status = "Nothing to copy yet"
		return m, clearStatusAfter(statusTimeout)
	}
	if err := m.copyText(last.Text); err != nil {
		m.logger.Warn().Err(err).Msg("clipboard copy failed")
		m.status = "Copy failed: " + err.Error()
		m.statusErr = true
		return m, clearStatusAfter(statusTimeout)
	}
	m.status = "Copied reply to clipboard"
	m.statusErr = false
	return m, clearStatusAfter(statusTimeout)
}

// panelSize returns the outer panel dimensions for the current window
func (m Model) panelSize() (int, int) {
	w := min(m.width-2, maxPanelWidth)
	h := min(m.height-2, maxPanelHeight)
	return max(w, minPanelWidth), max(h, 10)
}

// layout sizes the viewport and the input to the panel
func (m *Model) layout() {
	w, h := m.panelSize()
	inner := w - 2

	// border, header, thinking line, input row with its rule
	vpHeight := max(h-2-1-1-2, minViewport)

	if !m.ready {
		m.viewport = viewport.New(inner, vpHeight)
	} else {
		m.viewport.Width = inner
		m.viewport.Height = vpHeight
	}

	send := lipgloss.Width(sendButtonStyle.Render("Send"))
	m.input.Width = max(inner-send-lipgloss.Width(m.input.Prompt)-2, 8)
}

// refreshViewport re-renders the conversation and scrolls to the newest entry
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	msgs := m.panel.Messages()
	if len(msgs) == 0 {
		m.viewport.SetContent(m.renderWelcome())
		return
	}

	width := m.viewport.Width
	bubbleWidth := max(width*3/4, 16)

	var b strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.renderMessage(msg, width, bubbleWidth))
	}

	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

// renderMessage draws one bubble: user on the right, bot on the left
func (m Model) renderMessage(msg models.Message, width, bubbleWidth int) string {
	if msg.IsUser() {
		style := userBubbleStyle
		if lipgloss.Width(msg.Text)+2 > bubbleWidth {
			style = style.Width(bubbleWidth)
		}
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, style.Render(msg.Text))
	}

	rendered, err := render.Reply(msg.Text, m.markdown.WithWidth(bubbleWidth))
	if err != nil {
		m.logger.Debug().Err(err).Str("style", m.markdown.Style).Msg("markdown render failed")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Left, botBubbleStyle.Render(rendered))
}

func (m Model) renderWelcome() string {
	text := welcomeStyle.
		Width(m.viewport.Width).
		Align(lipgloss.Center).
		Render("Ask me anything!\nReplies are short, simple bullet points.")

	top := max((m.viewport.Height-lipgloss.Height(text))/2, 0)
	return strings.Repeat("\n", top) + text
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}
	if !m.panel.IsOpen() {
		return m.viewClosed()
	}
	return m.viewOpen()
}

func (m Model) viewClosed() string {
	toggle := toggleStyle.Render("💬 Chat")
	hint := m.renderShortcuts([][2]string{{"enter", "open"}, {"q", "quit"}})
	content := lipgloss.JoinVertical(lipgloss.Right, toggle, hint)
	return lipgloss.Place(m.width, m.height, lipgloss.Right, lipgloss.Bottom, content)
}

func (m Model) viewOpen() string {
	inner := m.viewport.Width

	header := m.renderHeader(inner)

	thinking := ""
	if n := m.panel.Pending(); n > 0 {
		label := " thinking..."
		if n > 1 {
			label = " waiting for replies..."
		}
		thinking = m.spinner.View() + loadingStyle.Render(label)
	}

	inputRow := inputStyle.Width(inner).Render(
		lipgloss.JoinHorizontal(lipgloss.Center,
			m.input.View(),
			" ",
			sendButtonStyle.Render("Send"),
		),
	)

	panel := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		thinking,
		inputRow,
	))

	var status string
	switch {
	case m.status != "" && m.statusErr:
		status = errorStyle.Render(m.status)
	case m.status != "":
		status = feedbackStyle.Render(m.status)
	default:
		status = m.renderShortcuts([][2]string{
			{"enter", "send"},
			{"esc", "close"},
			{"ctrl+y", "copy"},
			{"ctrl+c", "quit"},
		})
	}

	content := lipgloss.JoinVertical(lipgloss.Right, panel, status)
	return lipgloss.Place(m.width, m.height, lipgloss.Right, lipgloss.Bottom, content)
}

func (m Model) renderHeader(width int) string {
	left := titleStyle.Render("Chatbot") + subtitleStyle.Render("  Ask me anything!")
	right := closeStyle.Render("esc ✕")

	gap := max(width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return headerStyle.Width(width).Render(left + closeStyle.Render(strings.Repeat(" ", gap)) + right)
}

func (m Model) renderShortcuts(keys [][2]string) string {
	items := make([]string, len(keys))
	for i, k := range keys {
		items[i] = statusKeyStyle.Render(k[0]) + statusDescStyle.Render(" "+k[1])
	}
	return strings.Join(items, statusDescStyle.Render("  •  "))
}

// RunChat starts the chat TUI
func RunChat(panel *chat.Panel, opts Options) error {
	p := tea.NewProgram(
		NewModel(panel, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
