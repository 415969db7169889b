package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/fiction-engine/pkg/engine"
	"github.com/jwebster45206/fiction-engine/pkg/world"
)

const PlaceHolderText = "What do you do?"

// PlayUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type PlayUI struct {
	app *App

	eng        *engine.Engine
	transcript *world.Transcript
	status     *engine.Status
	lines      []string

	gameViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	err          error

	// World selection state
	showWorldModal bool
	selectedWorld  int

	// Quit confirmation state
	showQuitModal bool
}

var (
	gamePanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

func NewPlayUI(app *App) PlayUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render("> ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	gameVp := viewport.New(50, 20)
	gameVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return PlayUI{
		app:            app,
		textarea:       ta,
		gameViewport:   gameVp,
		metaViewport:   metaVp,
		ready:          false,
		showWorldModal: true,
		selectedWorld:  0,
	}
}

// startGame builds an engine for the selected world and records the opening
// room description.
func (m *PlayUI) startGame(entry WorldEntry) error {
	transcript := &world.Transcript{}
	status := &engine.Status{}

	eng, err := engine.New(entry.Builder,
		engine.WithSink(transcript),
		engine.WithLogger(m.app.logger),
		engine.WithStorage(m.app.store, m.app.sessionID),
		engine.WithStatusFunc(func(s engine.Status) { *status = s }),
	)
	if err != nil {
		return err
	}

	m.eng = eng
	m.transcript = transcript
	m.status = status
	m.lines = nil

	m.eng.Look()
	m.drainTranscript()
	return nil
}

func (m *PlayUI) drainTranscript() {
	for _, line := range m.transcript.Drain() {
		m.lines = append(m.lines, narratorStyle.Render(line))
	}
}

// writeGameContent rebuilds the transcript view for the current width.
func (m *PlayUI) writeGameContent() {
	gameWidth := m.gameViewport.Width - 6 // Account for left(3) + right(3) padding

	var content strings.Builder
	content.WriteString(titleStyle.Render("FICTION ENGINE") + "\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", max(gameWidth-6, 1))) + "\n\n")

	for _, line := range m.lines {
		if line == "" {
			content.WriteString("\n")
			continue
		}
		content.WriteString(wordwrap.String(line, gameWidth) + "\n")
	}

	m.gameViewport.SetContent(content.String())
	m.gameViewport.GotoBottom()
}

func (m *PlayUI) writeMetadata() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("STATUS") + "\n\n")

	if m.eng != nil {
		content.WriteString("World:\n")
		content.WriteString(m.eng.World().Name + "\n\n")

		content.WriteString("Location:\n")
		content.WriteString(m.status.Location + "\n\n")

		content.WriteString(fmt.Sprintf("Score: %d\n", m.status.Score))
		content.WriteString(fmt.Sprintf("Moves: %d\n\n", m.status.Moves))

		content.WriteString("Session:\n")
		content.WriteString(m.app.sessionID.String()[:8] + "...\n\n")
	}

	content.WriteString("Commands:\n")
	content.WriteString("• LOOK, INVENTORY\n")
	content.WriteString("• N/S/E/W to move\n")
	content.WriteString("• SAVE, RESTORE\n")
	content.WriteString("• RESTART, QUIT\n")
	content.WriteString("• Ctrl+C: Exit\n")

	return content.String()
}

func (m PlayUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m PlayUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle world modal first
	if m.showWorldModal {
		return m.updateWorldModal(msg)
	}

	// Handle quit modal second
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.gameViewport, vpCmd = m.gameViewport.Update(msg)
		return m, vpCmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.writeGameContent()
		m.metaViewport.SetContent(m.writeMetadata())
		m.ready = true

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			m.textarea.Reset()
			return m.runTurn(input)
		}
	}

	// Update components for non-mouse events
	m.textarea, tiCmd = m.textarea.Update(msg)
	m.gameViewport, vpCmd = m.gameViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

// runTurn executes one engine turn synchronously. Turns are pure in-process
// computation, so there is nothing to do in the background.
func (m PlayUI) runTurn(input string) (tea.Model, tea.Cmd) {
	m.lines = append(m.lines, "")
	m.lines = append(m.lines, userStyle.Render("> "+input))

	if err := m.eng.RunLine(input); err != nil {
		m.app.logger.Error("turn failed", "input", input, "error", err)
		m.lines = append(m.lines, errorStyle.Render("Error: "+err.Error()))
	}
	m.drainTranscript()
	m.writeGameContent()
	m.metaViewport.SetContent(m.writeMetadata())

	if m.eng.QuitRequested() {
		return m, tea.Quit
	}
	return m, nil
}

func (m *PlayUI) layout() {
	gameWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - gameWidth - 6

	m.gameViewport.Width = gameWidth - 2
	m.gameViewport.Height = m.height - 7
	m.metaViewport.Width = metaWidth - 2
	m.metaViewport.Height = m.height - 4
	m.textarea.SetWidth(gameWidth - 4)
}

func (m PlayUI) updateWorldModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			if m.selectedWorld > 0 {
				m.selectedWorld--
			}
		case tea.KeyDown:
			if m.selectedWorld < len(m.app.worlds)-1 {
				m.selectedWorld++
			}
		case tea.KeyEnter:
			if len(m.app.worlds) == 0 {
				return m, nil
			}
			if err := m.startGame(m.app.worlds[m.selectedWorld]); err != nil {
				m.err = err
				return m, nil
			}
			m.showWorldModal = false
			if m.width > 0 && m.height > 0 {
				m.layout()
			}
			m.writeGameContent()
			m.metaViewport.SetContent(m.writeMetadata())
			m.textarea.Focus()
			m.ready = true
			return m, textarea.Blink
		}
	}

	return m, nil
}

func (m PlayUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				if !m.showWorldModal {
					m.textarea.Focus()
					return m, textarea.Blink
				}
				return m, nil
			}
		}
	}

	return m, nil
}

func (m PlayUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit?"))
	content.WriteString("\n\n")
	content.WriteString("Leave the game? Unsaved progress is lost.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m PlayUI) renderWorldModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	if m.err != nil {
		content.WriteString(modalTitleStyle.Render("Error"))
		content.WriteString("\n\n")
		content.WriteString(errorStyle.Render(fmt.Sprintf("Failed to start game: %v", m.err)))
		content.WriteString("\n\n")
		content.WriteString("Press Ctrl+C to exit")
	} else {
		content.WriteString(modalTitleStyle.Render("Select a World"))
		content.WriteString("\n\n")

		for i, entry := range m.app.worlds {
			if i == m.selectedWorld {
				content.WriteString(modalSelectedItemStyle.Render(fmt.Sprintf("▶ %s", entry.Name)))
			} else {
				content.WriteString(modalItemStyle.Render(fmt.Sprintf("  %s", entry.Name)))
			}
			content.WriteString("\n")
		}

		content.WriteString("\n")
		content.WriteString(promptStyle.Render("Use ↑/↓ to navigate, Enter to select, Ctrl+C to exit"))
	}

	modal := modalStyle.Width(60).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m PlayUI) View() string {
	if m.showWorldModal {
		return m.renderWorldModal()
	}

	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	gameWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - gameWidth - 6

	gamePanel := gamePanelStyle.Width(gameWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.gameViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(gameWidth-4, 1))),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, gamePanel, metaPanel)
}
