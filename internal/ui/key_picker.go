package ui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/keyup-sh/keyup/internal/errors"
	"golang.org/x/term"
)

// KeyChoice contains information about an SSH key for display in the picker.
type KeyChoice struct {
	Name        string // Filename stem (e.g., "github-actions")
	Type        string // Key algorithm (e.g., "ssh-rsa")
	Fingerprint string // SHA256 fingerprint
	Comment     string // Key comment, if any
}

// keyItem implements list.Item for the Bubbles list component.
type keyItem struct {
	choice KeyChoice
}

func (i keyItem) Title() string {
	return i.choice.Name
}

func (i keyItem) Description() string {
	var parts []string

	if i.choice.Type != "" {
		parts = append(parts, i.choice.Type)
	}
	if i.choice.Fingerprint != "" {
		parts = append(parts, i.choice.Fingerprint)
	}
	if i.choice.Comment != "" && i.choice.Comment != i.choice.Name {
		parts = append(parts, "("+i.choice.Comment+")")
	}

	return strings.Join(parts, " | ")
}

func (i keyItem) FilterValue() string {
	return i.choice.Name + " " + i.choice.Comment
}

// KeyPickerModel is a Bubble Tea model for selecting an SSH key.
type KeyPickerModel struct {
	list     list.Model
	choices  []KeyChoice
	selected *KeyChoice
	quitting bool
}

// keyPickerKeyMap defines key bindings for the picker.
type keyPickerKeyMap struct {
	Enter key.Binding
	Quit  key.Binding
}

var keyPickerKeys = keyPickerKeyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "cancel"),
	),
}

// NewKeyPickerModel creates a new key picker model.
func NewKeyPickerModel(choices []KeyChoice) KeyPickerModel {
	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = keyItem{choice: c}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color(string(ColorPrimary))).
		BorderForeground(lipgloss.Color(string(ColorSecondary)))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color(string(ColorMuted)))

	l := list.New(items, delegate, 0, 0)
	l.Title = "Select a key"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(ColorPrimary))).
		Bold(true).
		Padding(0, 0, 1, 0)
	l.Styles.HelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorMuted)))

	return KeyPickerModel{
		list:    l,
		choices: choices,
	}
}

// Init implements tea.Model.
func (m KeyPickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m KeyPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyPickerKeys.Enter):
			if item, ok := m.list.SelectedItem().(keyItem); ok {
				m.selected = &item.choice
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keyPickerKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m KeyPickerModel) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View()
}

// Selected returns the selected key, or nil if cancelled.
func (m KeyPickerModel) Selected() *KeyChoice {
	return m.selected
}

// PickKey displays an interactive key picker and returns the selected key.
// Returns nil if the user cancels (ESC/q/Ctrl+C).
func PickKey(choices []KeyChoice) (*KeyChoice, error) {
	return PickKeyWithOutput(choices, os.Stdout, os.Stdin)
}

// PickKeyWithOutput displays the key picker using custom I/O.
func PickKeyWithOutput(choices []KeyChoice, output io.Writer, input io.Reader) (*KeyChoice, error) {
	if len(choices) == 0 {
		return nil, errors.New(errors.ErrFS, "No keys to pick from", "Run 'keyup provision' to generate one.")
	}

	if len(choices) == 1 {
		// Only one key, no need to pick
		return &choices[0], nil
	}

	model := NewKeyPickerModel(choices)

	p := tea.NewProgram(
		model,
		tea.WithOutput(output),
		tea.WithInput(input),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrExec, "Key picker failed", "Pass the key name directly instead.")
	}

	if m, ok := finalModel.(KeyPickerModel); ok {
		return m.Selected(), nil
	}

	return nil, nil
}

// IsTerminal returns true if the file descriptor is a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
