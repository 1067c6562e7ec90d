// internal/tui/views.go
//
// Rendering for every screen. One frame: header, body, status line,
// key hints.

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View is called after every Update to redraw the screen.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}

	var body string
	switch a.screen {
	case screenNameEntry:
		body = a.renderPrompt()
	case screenMenu:
		body = a.menu.View()
	case screenReport:
		body = a.report
	case screenOrderResult:
		body = a.resultMsg
	default:
		body = a.renderPrompt()
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4")).
		Padding(0, 1).
		Render("THE WAREHOUSE")

	box := lipgloss.NewStyle().
		Padding(1, 2).
		Width(max(20, width-4)).
		Render(body)

	lines := []string{header, box}
	if a.statusMsg != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Padding(0, 2).
			Render(a.statusMsg))
	}
	lines = append(lines, lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Padding(0, 2).
		Render(a.keyHint()))
	return strings.Join(lines, "\n")
}

func (a *App) renderPrompt() string {
	var b strings.Builder
	if a.report != "" {
		b.WriteString(a.report)
		b.WriteString("\n")
	}
	b.WriteString(a.prompt)
	b.WriteString("\n")
	b.WriteString(a.input.View())
	return b.String()
}

func (a *App) keyHint() string {
	switch a.screen {
	case screenMenu:
		return "enter select · q quit"
	case screenReport, screenOrderResult:
		return "any key to return to the menu"
	case screenNameEntry:
		return "enter confirm"
	default:
		return "enter confirm · esc cancel"
	}
}
