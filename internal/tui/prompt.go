package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/casey/azdo/internal/azdourl"
)

// URLPrompt asks for an Azure DevOps URL and previews the parse result as
// the user types
type URLPrompt struct {
	input        textinput.Model
	descriptor   azdourl.Descriptor
	notification Notification
	submitted    bool
	cancelled    bool
}

// NewURLPrompt creates a focused prompt, optionally pre-filled
func NewURLPrompt(initial string) URLPrompt {
	ti := textinput.New()
	ti.Placeholder = "https://dev.azure.com/{organization}/{project}"
	ti.CharLimit = 2048
	ti.Width = 64
	ti.SetValue(initial)
	ti.Focus()

	return URLPrompt{
		input:      ti,
		descriptor: azdourl.Parse(initial),
	}
}

// Init implements tea.Model
func (m URLPrompt) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m URLPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.descriptor.IsValid() {
				m.submitted = true
				return m, tea.Quit
			}
			m.notification.Show("Enter an https://{org}.visualstudio.com or https://dev.azure.com/{org} URL", true)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.descriptor = azdourl.Parse(m.input.Value())
	if m.descriptor.IsValid() {
		m.notification.Clear()
	}

	return m, cmd
}

// View implements tea.Model
func (m URLPrompt) View() string {
	var b strings.Builder

	b.WriteString(InputTitleStyle.Render("Azure DevOps URL"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if strings.TrimSpace(m.input.Value()) != "" {
		b.WriteString(RenderDescriptor(m.descriptor))
		b.WriteString("\n\n")
	}

	if n := m.notification.View(); n != "" {
		b.WriteString(n)
		b.WriteString("\n\n")
	}

	b.WriteString(RenderMuted("(Enter to save, Esc to cancel)"))

	return InputBoxStyle.Render(b.String())
}

// Descriptor returns the descriptor for the current input
func (m URLPrompt) Descriptor() azdourl.Descriptor {
	return m.descriptor
}

// Submitted reports whether the user accepted a valid URL
func (m URLPrompt) Submitted() bool {
	return m.submitted
}

// Cancelled reports whether the user aborted the prompt
func (m URLPrompt) Cancelled() bool {
	return m.cancelled
}

// RunURLPrompt runs the prompt and returns the accepted descriptor.
// It returns an error if the user cancels.
func RunURLPrompt(initial string, opts ...tea.ProgramOption) (azdourl.Descriptor, error) {
	final, err := tea.NewProgram(NewURLPrompt(initial), opts...).Run()
	if err != nil {
		return azdourl.Descriptor{}, fmt.Errorf("failed to run prompt: %w", err)
	}

	m, ok := final.(URLPrompt)
	if !ok || !m.Submitted() {
		return azdourl.Descriptor{}, fmt.Errorf("prompt cancelled")
	}

	return m.Descriptor(), nil
}
