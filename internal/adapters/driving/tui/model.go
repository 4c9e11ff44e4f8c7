// Package tui implements the interactive ask loop.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driving"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	answerStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	contextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// answerMsg carries the result of an asynchronous Answer call.
type answerMsg struct {
	question string
	answer   *domain.Answer
	err      error
}

// Model is the Bubble Tea model for the ask loop.
type Model struct {
	service  driving.AnswerService
	docID    string
	input    textinput.Model
	viewport viewport.Model
	status   string
	asking   bool
	ready    bool
}

// New creates the ask-loop model. A non-empty docID restricts every
// question to that document.
func New(service driving.AnswerService, docID string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a question and press Enter"
	ti.Focus()
	ti.CharLimit = 0

	return Model{
		service:  service,
		docID:    docID,
		input:    ti,
		viewport: viewport.New(0, 0),
		status:   "Ready. Esc or Ctrl+C to quit.",
	}
}

// Init starts the text input cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ah := answerStyle.GetFrameSize()
		_, ih := inputStyle.GetFrameSize()
		reserved := 1 + 1 + ih + 2 // header, status, input frame, spacers
		vh := msg.Height - reserved - ah
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width-2)
		m.viewport.Height = vh
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			question := strings.TrimSpace(m.input.Value())
			if question == "" || m.asking {
				return m, nil
			}
			m.asking = true
			m.status = "Thinking..."
			return m, m.ask(question)
		case tea.KeyUp:
			m.viewport.LineUp(1)
			return m, nil
		case tea.KeyDown:
			m.viewport.LineDown(1)
			return m, nil
		}

	case answerMsg:
		m.asking = false
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("Answered %q", msg.question)
		m.viewport.SetContent(renderAnswer(msg.answer))
		m.viewport.GotoTop()
		m.input.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the header, answer area, input and status line.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := headerStyle.Render("docqa")
	if m.docID != "" {
		header += contextStyle.Render("  (document " + m.docID + ")")
	}

	return header + "\n" +
		answerStyle.Render(m.viewport.View()) + "\n" +
		inputStyle.Render(m.input.View()) + "\n" +
		statusStyle.Render(m.status)
}

// ask runs the Answer call off the update loop.
func (m Model) ask(question string) tea.Cmd {
	return func() tea.Msg {
		answer, err := m.service.Answer(context.Background(), question, m.docID)
		return answerMsg{question: question, answer: answer, err: err}
	}
}

// renderAnswer formats the answer with its numbered context excerpts.
func renderAnswer(answer *domain.Answer) string {
	if answer == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(answer.Text)

	if len(answer.Context) > 0 {
		b.WriteString("\n\n")
		b.WriteString(contextStyle.Render("Context used:"))
		for i, chunk := range answer.Context {
			line := chunk
			if runes := []rune(line); len(runes) > 200 {
				line = string(runes[:200]) + "..."
			}
			b.WriteString(contextStyle.Render(fmt.Sprintf("\n[%d] %s", i+1, line)))
		}
	}

	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
