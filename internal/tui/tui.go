// Package tui provides a terminal browser over archived issues.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/r8slab/the-drop/internal/core"
)

// model represents the state of the issue browser: archived issues on the
// left, the selected issue's detail on the right.
type model struct {
	issues      []core.Issue
	selectedIdx int
	width       int
	height      int
	quitting    bool
}

func initialModel(issues []core.Issue) model {
	return model{issues: issues}
}

// Init is the first command that will be run. We don't need any.
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model accordingly.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.selectedIdx > 0 {
				m.selectedIdx--
			}
		case "down", "j":
			if m.selectedIdx < len(m.issues)-1 {
				m.selectedIdx++
			}
		}
	}

	return m, nil
}

// View renders the two-pane browser.
func (m model) View() string {
	if m.quitting {
		return "Quitting...\n"
	}

	docStyle := lipgloss.NewStyle().Margin(1, 2)
	listStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(1).Width(m.width/2 - 5)
	detailStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(1).Width(m.width/2 - 5)

	leftPane := listStyle.Render(m.listView())
	rightPane := detailStyle.Render(m.detailView())

	mainContent := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)

	help := "\n\n[↑/k] Up | [↓/j] Down | [q] Quit"

	return docStyle.Render(mainContent + help)
}

func (m model) listView() string {
	var b strings.Builder
	b.WriteString("Archived Issues\n\n")

	if len(m.issues) == 0 {
		b.WriteString("No issues archived yet.")
		return b.String()
	}

	for i, issue := range m.issues {
		cursor := " "
		if i == m.selectedIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n", cursor, issue.DateGenerated.Format("Jan 02"), issue.Subject))
	}
	return b.String()
}

func (m model) detailView() string {
	if len(m.issues) == 0 || m.selectedIdx >= len(m.issues) {
		return "Issue Detail\n\nNothing to show."
	}

	issue := m.issues[m.selectedIdx]

	var b strings.Builder
	b.WriteString(issue.Subject + "\n\n")
	b.WriteString(fmt.Sprintf("ID:        %s\n", issue.ID))
	b.WriteString(fmt.Sprintf("Generated: %s\n", issue.DateGenerated.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Model:     %s\n", issue.ModelUsed))
	b.WriteString(fmt.Sprintf("Emails:    %d\n", issue.EmailCount))
	if issue.MarketImage != "" {
		b.WriteString(fmt.Sprintf("Market:    %s\n", issue.MarketImage))
	}
	if len(issue.Sections) > 0 {
		b.WriteString("\nSections:\n")
		for _, name := range issue.Sections {
			b.WriteString("  " + name + "\n")
		}
	}
	return b.String()
}

// Start opens the issue browser over the given issues and blocks until the
// user quits.
func Start(issues []core.Issue) error {
	p := tea.NewProgram(initialModel(issues), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run issue browser: %w", err)
	}
	return nil
}
