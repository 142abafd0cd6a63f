package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/core/tui/components/help"

	"github.com/grovetools/pick/internal/picker"
)

const pickerPageSize = 10

// pickerModel is the model for the interactive project picker
type pickerModel struct {
	candidates  []picker.Candidate
	visible     []picker.Match
	cursor      int
	filterInput textinput.Model
	help        help.Model
	width       int
	height      int

	// Session outcome
	choice    *picker.Candidate
	cancelled bool
}

func newPickerModel(candidates []picker.Candidate) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.CharLimit = 256
	ti.Width = 50
	ti.Focus()

	helpModel := help.NewBuilder().
		WithKeys(pickerKeys).
		WithTitle("Project Picker - Help").
		Build()

	return pickerModel{
		candidates:  candidates,
		visible:     picker.Filter(candidates, ""),
		filterInput: ti,
		help:        helpModel,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// If help is visible, it consumes all key presses
		if m.help.ShowAll {
			m.help.Toggle()
			return m, nil
		}

		switch {
		case key.Matches(msg, pickerKeys.Quit):
			m.cancelled = true
			return m, tea.Quit

		case key.Matches(msg, pickerKeys.Confirm):
			// Enter on an empty list keeps the session running.
			if m.cursor < len(m.visible) {
				choice := m.visible[m.cursor].Candidate
				m.choice = &choice
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, pickerKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, pickerKeys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, pickerKeys.PageUp):
			m.cursor -= pickerPageSize
			if m.cursor < 0 {
				m.cursor = 0
			}
			return m, nil

		case key.Matches(msg, pickerKeys.PageDown):
			m.cursor += pickerPageSize
			if m.cursor >= len(m.visible) {
				m.cursor = len(m.visible) - 1
			}
			if m.cursor < 0 {
				m.cursor = 0
			}
			return m, nil

		case key.Matches(msg, pickerKeys.Help):
			m.help.Toggle()
			return m, nil
		}

		// Everything else edits the filter query.
		prev := m.filterInput.Value()
		m.filterInput, cmd = m.filterInput.Update(msg)
		if m.filterInput.Value() != prev {
			m.visible = picker.Filter(m.candidates, m.filterInput.Value())
			m.cursor = 0
		}
		return m, cmd
	}

	return m, nil
}

// runPicker runs the interactive session and reports the confirmed candidate,
// or nil when the user cancelled.
func runPicker(candidates []picker.Candidate) (*picker.Candidate, error) {
	m := newPickerModel(candidates)

	// Render on stderr so a piped stdout only ever carries the chosen path.
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running program: %w", err)
	}

	pm, ok := finalModel.(pickerModel)
	if !ok || pm.cancelled {
		return nil, nil
	}
	return pm.choice, nil
}
