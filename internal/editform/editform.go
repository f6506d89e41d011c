// Package editform renders a single commit record as an editable form:
// a read-only summary (ID, author, date) above a multi-line message
// field. Every edit that changes the message produces exactly one
// change callback carrying the updated record.
package editform

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sergeknystautas/commitedit/internal/commit"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	nodeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

const defaultHeight = 8

// Model is the form state. The message field is controlled: its
// displayed value is always derived from the commit record, never from
// a private edit buffer, so SetCommit re-renders the field too.
type Model struct {
	commit   commit.Commit
	onChange func(commit.Commit)
	textarea textarea.Model
}

// New builds a form over c. onChange may be nil; when set it is called
// synchronously with the updated record after every message edit.
func New(c commit.Commit, onChange func(commit.Commit)) Model {
	ta := textarea.New()
	ta.Placeholder = "Commit message"
	ta.CharLimit = 0
	ta.SetHeight(defaultHeight)
	ta.SetValue(c.Message)
	ta.Focus()

	return Model{
		commit:   c,
		onChange: onChange,
		textarea: ta,
	}
}

// Commit returns the current record, including any edits so far.
func (m Model) Commit() commit.Commit {
	return m.commit
}

// SetCommit replaces the record being edited and re-derives the
// message field from it.
func (m *Model) SetCommit(c commit.Commit) {
	m.commit = c
	m.textarea.SetValue(c.Message)
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.textarea.SetWidth(msg.Width)
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)

	// One callback per input event that actually changed the message.
	// Any value is accepted, including empty.
	if v := m.textarea.Value(); v != m.commit.Message {
		m.commit = m.commit.WithMessage(v)
		if m.onChange != nil {
			m.onChange(m.commit)
		}
	}

	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("ID:     ") + nodeStyle.Render(m.commit.Node) + "\n")
	b.WriteString(labelStyle.Render("Author: ") + m.commit.DisplayAuthor() + "\n")
	b.WriteString(labelStyle.Render("Date:   ") + m.commit.DisplayDate() + "\n\n")
	b.WriteString(m.textarea.View())
	b.WriteString("\n" + helpStyle.Render("esc to finish editing"))
	return b.String()
}

// Run drives the form under a bubbletea program until the user
// finishes, and returns the final record.
func Run(c commit.Commit, onChange func(commit.Commit), opts ...tea.ProgramOption) (commit.Commit, error) {
	final, err := tea.NewProgram(New(c, onChange), opts...).Run()
	if err != nil {
		return c, err
	}
	return final.(Model).Commit(), nil
}
