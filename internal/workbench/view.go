package workbench

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	activeToolStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1)
	inactiveToolStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#8C8C8C")).
				Padding(0, 1)
	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A")).
			Padding(0, 1)
	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	modalStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.confirmClear {
		return m.renderDialog()
	}
	sidebar := m.renderSidebar()
	main := m.renderMain()
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
	footer := m.renderFooter()
	view := body + "\n" + footer
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, view)
	}
	return view
}

func (m *Model) renderSidebar() string {
	lines := make([]string, 0, len(m.tools))
	for i, tool := range m.tools {
		if i == m.activeTool {
			lines = append(lines, activeToolStyle.Render("▸ "+tool))
		} else {
			lines = append(lines, inactiveToolStyle.Render("  "+tool))
		}
	}
	return sidebarStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderMain() string {
	sections := []string{m.renderInputs(), m.renderResult(), m.renderCarousel()}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderInputs() string {
	lines := []string{m.textInput.View()}
	if m.fieldCount() > 1 {
		lines = append(lines, m.shiftInput.View())
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderResult() string {
	if m.errMsg != "" {
		return cardStyle.Render(errorStyle.Render(m.errMsg))
	}
	if !m.hasResult {
		return cardStyle.Render(cardTitleStyle.Render("No result yet. Enter runs the tool."))
	}
	content := cardTitleStyle.Render("Result") + "\n" + cardValueStyle.Render(m.result)
	return cardStyle.Render(content)
}

func (m *Model) renderCarousel() string {
	entry, ok := m.activeEntry()
	if !ok {
		return cardStyle.Render(cardTitleStyle.Render("No history yet."))
	}
	title := cardTitleStyle.Render(fmt.Sprintf("History %d/%d · %s",
		m.carouselIdx+1, len(m.entries), entry.CreatedAt.Local().Format("15:04:05")))
	body := fmt.Sprintf("%s → %s", summaryLine(entry.Input), summaryLine(entry.Output))
	return cardStyle.Render(title + "\n" + cardValueStyle.Render(body))
}

func (m *Model) renderFooter() string {
	help := "Nav: j/k tool  h/l history  enter edit  x clear  q quit"
	if m.editMode {
		help = "Edit: enter run  tab next field  esc back"
	}
	return helpStyle.Render(help)
}

func (m *Model) renderDialog() string {
	body := strings.Join([]string{
		cardValueStyle.Render("Clear history?"),
		"This removes every recorded operation.",
		helpStyle.Render("y/enter: confirm  n/esc: cancel"),
	}, "\n")
	box := modalStyle.Render(body)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
