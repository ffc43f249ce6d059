package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"firechat/internal/api"
	"firechat/internal/chat"
	"firechat/internal/config"
	"firechat/internal/models"
	"firechat/internal/render"
	"firechat/internal/tools"
)

// Animation tick message
type animationTickMsg time.Time

// Message types for the TUI
type (
	chatReplyMsg struct {
		reply *models.ChatReply
	}
	chatFailedMsg struct {
		err error
	}
	toolsLoadedMsg struct {
		names []string
		err   error
	}
)

// Model represents the TUI state
type Model struct {
	client     api.AgentClientInterface
	controller *chat.Controller
	directory  *tools.Directory
	cfg        config.Config

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	loading        bool
	toolsLoading   bool
	showTools      bool
	ready          bool
	flash          string // transient note in the status bar
	animationFrame int

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a new chat TUI model. The controller arrives seeded
// with the welcome message.
func NewChatModel(client api.AgentClientInterface, cfg config.Config) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask me to search, scrape or extract something..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		client:       client,
		controller:   chat.NewController(client),
		directory:    tools.NewDirectory(),
		cfg:          cfg,
		textarea:     ta,
		spinner:      s,
		toolsLoading: true,
	}
}

// Init initializes the model and kicks off the tool directory fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		m.fetchTools(),
	)
}

// animationTick returns a command that sends animation tick messages
func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

// fetchTools returns a command that loads the tool directory. The fetch is
// independent of any chat send and may run while one is in flight.
func (m Model) fetchTools() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		names, err := client.FetchTools(context.Background())
		return toolsLoadedMsg{names: names, err: err}
	}
}

// sendMessage creates a command that runs one chat exchange.
func (m Model) sendMessage(outbound string, history []models.HistoryEntry) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		reply, err := client.SendChat(context.Background(), outbound, history)
		if err != nil {
			return chatFailedMsg{err: err}
		}
		return chatReplyMsg{reply: reply}
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4
		inputHeight := 6
		statusHeight := 1
		padding := 2

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}
		contentWidth := m.width - 4

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.textarea.SetWidth(contentWidth - 4)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
			m.textarea.SetWidth(contentWidth - 4)
		}
		m.updateViewport()
		m.viewport.GotoBottom()

	case tea.KeyMsg:
		m.flash = ""

		if m.showTools {
			return m.updateToolPanel(msg)
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+t":
			m.showTools = true
			return m, nil

		case "ctrl+y":
			if reply := m.controller.LastReply(); reply != "" {
				if err := clipboard.WriteAll(reply); err == nil {
					m.flash = "copied last reply"
				}
			}
			return m, nil

		case "enter":
			input := strings.TrimSpace(m.textarea.Value())
			if input == "exit" || input == "quit" || input == "/exit" || input == "/quit" {
				return m, tea.Quit
			}

			// The controller enforces non-empty input and single-flight.
			outbound, history, ok := m.controller.Begin(input)
			if !ok {
				return m, nil
			}

			m.textarea.Reset()
			m.loading = true
			m.animationFrame = 0
			m.updateViewport()
			m.viewport.GotoBottom()

			return m, tea.Batch(
				m.sendMessage(outbound, history),
				m.spinner.Tick,
				animationTick(),
			)
		}

	case chatReplyMsg:
		m.loading = false
		m.controller.Resolve(msg.reply)
		if m.cfg.CopyToClipboard {
			_ = clipboard.WriteAll(m.controller.LastReply())
		}
		m.updateViewport()
		m.viewport.GotoBottom()

	case chatFailedMsg:
		// Failures land in the thread as remediation messages; the UI
		// stays interactive.
		m.loading = false
		m.controller.Fail(msg.err)
		m.updateViewport()
		m.viewport.GotoBottom()

	case toolsLoadedMsg:
		m.toolsLoading = false
		if msg.err != nil {
			m.directory.ApplyFallback(msg.err)
		} else {
			m.directory.Replace(msg.names)
		}

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case animationTickMsg:
		if m.loading {
			m.animationFrame++
			cmds = append(cmds, animationTick())
		}
	}

	// Only pass KeyMsg to the textarea to prevent escape sequence leaks.
	if !m.loading && !m.showTools {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// updateToolPanel handles keys while the tool panel overlay is open.
func (m Model) updateToolPanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "ctrl+t", "q":
		m.showTools = false

	case "r":
		if !m.toolsLoading {
			m.toolsLoading = true
			return m, m.fetchTools()
		}
	}
	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	if m.showTools {
		return m.renderToolPanel()
	}

	var sections []string
	contentWidth := m.width - 4

	sections = append(sections, m.renderHeader(contentWidth))

	messagesPanel := messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(m.viewport.View())
	sections = append(sections, messagesPanel)

	var inputContent string
	if m.loading {
		inputContent = m.renderLoadingAnimation()
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(inputContent))

	sections = append(sections, m.renderStatusBar(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title row with backend and tool directory state.
func (m Model) renderHeader(width int) string {
	parts := []string{
		titleStyle.Render("🔥 Firecrawl Agent"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.cfg.StatusLabel()),
		hintStyle.Render("  •  "),
	}

	switch {
	case m.toolsLoading:
		parts = append(parts, subtitleStyle.Render("loading tools..."))
	case m.directory.UsingFallback():
		parts = append(parts, warnStyle.Render(fmt.Sprintf("%d tools (fallback)", m.directory.Count())))
	default:
		parts = append(parts, subtitleStyle.Render(fmt.Sprintf("%d tools", m.directory.Count())))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	return headerStyle.Width(width).Render(content)
}

// renderLoadingAnimation renders a colorful animated loading indicator
func (m Model) renderLoadingAnimation() string {
	chars := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}
	barChars := []string{"█", "█", "█", "█", "█", "█", "▓", "▒", "░"}

	frame := m.animationFrame

	spinIdx := frame % len(chars)
	spinColor := gradientColors[frame%len(gradientColors)]
	spin := lipgloss.NewStyle().Foreground(spinColor).Bold(true).Render(chars[spinIdx])

	barWidth := 20
	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		colorIdx := (i + frame) % len(gradientColors)
		charIdx := (i + frame/2) % len(barChars)
		style := lipgloss.NewStyle().Foreground(gradientColors[colorIdx])
		bar.WriteString(style.Render(barChars[charIdx]))
	}

	dots := ""
	numDots := (frame / 3) % 4
	for i := 0; i < numDots; i++ {
		dotColor := gradientColors[(frame+i)%len(gradientColors)]
		dots += lipgloss.NewStyle().Foreground(dotColor).Render("●")
	}
	for i := numDots; i < 3; i++ {
		dots += lipgloss.NewStyle().Foreground(colorTextMute).Render("○")
	}

	text := lipgloss.NewStyle().Foreground(colorText).Render(" Agent is working ")

	return fmt.Sprintf("%s %s %s %s", spin, bar.String(), text, dots)
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	if m.flash != "" {
		return statusBarStyle.Width(width).Align(lipgloss.Center).
			Render(successStyle.Render("✓ " + m.flash))
	}

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Ctrl+T", "Tools"},
		{"Ctrl+Y", "Copy reply"},
		{"Esc", "Quit"},
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}

	bar := strings.Join(items, "  │  ")
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// renderToolPanel renders the tool directory overlay.
func (m Model) renderToolPanel() string {
	width := m.width - 8
	if width < 40 {
		width = 40
	}

	var content strings.Builder

	title := panelTitleStyle.Render("🧰 Available Tools")
	content.WriteString(title)
	content.WriteString("\n\n")

	switch {
	case m.toolsLoading:
		content.WriteString(loadingStyle.Render("  Loading tools..."))
		content.WriteString("\n")
	case m.directory.Count() == 0:
		content.WriteString(hintStyle.Render("  No tools reported"))
		content.WriteString("\n")
	default:
		for _, name := range m.directory.Names() {
			content.WriteString(panelItemStyle.Render(tools.Icon(name) + " " + name))
			content.WriteString("\n")
		}
	}

	if m.directory.UsingFallback() {
		content.WriteString("\n")
		content.WriteString(warnStyle.Render("⚠ Backend unreachable - showing the built-in fallback list"))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	shortcuts := []string{
		statusKeyStyle.Render("r") + statusDescStyle.Render(" Refresh"),
		statusKeyStyle.Render("Esc") + statusDescStyle.Render(" Close"),
	}
	content.WriteString(strings.Join(shortcuts, "  │  "))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(1, 2).
		Width(width)

	return boxStyle.Render(content.String())
}

// updateViewport refreshes the viewport content with styled messages
func (m *Model) updateViewport() {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	for i, msg := range m.controller.Messages() {
		if i > 0 {
			content.WriteString("\n")
		}

		if msg.Role == models.RoleUser {
			label := userLabelStyle.Render("⬤ You") + " " + timestampStyle.Render(msg.Timestamp)
			bubble := userBubbleStyle.Width(bubbleWidth).Render(msg.Content)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := agentLabelStyle.Render("🔥 Agent") + " " + timestampStyle.Render(msg.Timestamp)

			rendered := render.Message(msg.Content, bubbleWidth-4)
			rendered = strings.TrimRight(rendered, "\n")
			bubble := agentBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(label + "\n" + bubble)

			if len(msg.ToolsUsed) > 0 {
				content.WriteString("\n" + toolsUsedStyle.Render(toolsUsedLine(msg.ToolsUsed)))
			}
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// toolsUsedLine formats the invoked tool names, order and duplicates kept.
func toolsUsedLine(names []string) string {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = tools.Icon(name) + " " + name
	}
	return "⚙ Tools used: " + strings.Join(parts, ", ")
}

// RunChat starts the chat TUI
func RunChat(client api.AgentClientInterface, cfg config.Config) error {
	m := NewChatModel(client, cfg)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
