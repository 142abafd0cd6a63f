package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	core_theme "github.com/grovetools/core/tui/theme"

	"github.com/grovetools/pick/internal/picker"
)

// highlightMatch highlights the matched portion of a label. A contiguous
// match gets a single span; a scattered subsequence match styles each matched
// character on its own.
func highlightMatch(text, filter string) string {
	if filter == "" {
		return text
	}

	lowerText := strings.ToLower(text)
	lowerFilter := strings.ToLower(filter)
	highlightStyle := core_theme.DefaultTheme.Warning.Copy().Reverse(true)

	if index := strings.Index(lowerText, lowerFilter); index >= 0 {
		before := text[:index]
		match := text[index : index+len(filter)]
		after := text[index+len(filter):]
		return before + highlightStyle.Render(match) + after
	}

	var b strings.Builder
	qi := 0
	for i := 0; i < len(text); i++ {
		if qi < len(lowerFilter) && lowerText[i] == lowerFilter[qi] {
			b.WriteString(highlightStyle.Render(string(text[i])))
			qi++
		} else {
			b.WriteByte(text[i])
		}
	}
	return b.String()
}

func (m pickerModel) View() string {
	// If help is visible, show it and return
	if m.help.ShowAll {
		return m.help.View()
	}

	var b strings.Builder

	b.WriteString(core_theme.DefaultTheme.Title.Render("Select project"))
	b.WriteString("\n")
	b.WriteString(m.filterInput.View())
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(core_theme.DefaultTheme.Muted.Render("No matching projects"))
		b.WriteString("\n")
	} else {
		// Scroll window keeps the cursor row on screen.
		maxVisible := len(m.visible)
		if m.height > 0 {
			maxVisible = m.height - 7
			if maxVisible < 3 {
				maxVisible = 3
			}
		}

		start := 0
		if m.cursor >= maxVisible {
			start = m.cursor - maxVisible + 1
		}
		end := start + maxVisible
		if end > len(m.visible) {
			end = len(m.visible)
		}

		actionStyle := lipgloss.NewStyle().Faint(true)

		for i := start; i < end; i++ {
			c := m.visible[i].Candidate
			// Projects highlight the matched characters; the fixed action
			// rows render faint instead.
			var label string
			if c.Kind == picker.KindProject {
				label = highlightMatch(c.Label(), m.filterInput.Value())
			} else {
				label = actionStyle.Render(c.Label())
			}
			if i == m.cursor {
				b.WriteString(core_theme.DefaultTheme.Selected.Render("> "))
			} else {
				b.WriteString("  ")
			}
			b.WriteString(label)
			b.WriteString("\n")
		}

		if len(m.visible) > maxVisible {
			b.WriteString(core_theme.DefaultTheme.Muted.Render(fmt.Sprintf("  (%d/%d)", m.cursor+1, len(m.visible))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(core_theme.DefaultTheme.Muted.Render("enter: select  esc: cancel  f1: help"))

	return b.String()
}
