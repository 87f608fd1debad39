package cleanview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/cclean/internal/cleaner"
	"github.com/lakshaymaurya-felt/cclean/internal/core"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	stageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(16)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	summaryBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n  " + titleStyle.Render(m.title) + "\n\n")

	if m.result == nil {
		b.WriteString(fmt.Sprintf("  %s %s\n", m.spinner.View(), stageStyle.Render(m.stage)))
		b.WriteString("  " + m.bar.ViewAs(float64(m.percent)/100) + "\n")
	}

	return b.String()
}

// RenderSummary formats a finished operation's result for display.
// operation names what ran, e.g. "Scan" or "Cleanup".
func RenderSummary(operation string, result cleaner.CleanupResult, dryRun bool) string {
	var rows []string

	title := operation + " Results"
	if dryRun {
		title += " (dry run)"
	}
	rows = append(rows, titleStyle.Render(title), "")

	rows = append(rows, labelStyle.Render("Files scanned")+valueStyle.Render(fmt.Sprintf("%d", result.FilesScanned)))
	if result.FilesDeleted > 0 {
		label := "Files deleted"
		if dryRun {
			label = "Would delete"
		}
		rows = append(rows, labelStyle.Render(label)+valueStyle.Render(fmt.Sprintf("%d", result.FilesDeleted)))
	}
	label := "Reclaimable"
	if result.FilesDeleted > 0 && !dryRun {
		label = "Space freed"
	}
	rows = append(rows, labelStyle.Render(label)+valueStyle.Render(core.FormatSize(result.BytesFreed)))

	if !result.Success && result.ErrorMessage != "" {
		rows = append(rows, "", warnStyle.Render("Warnings: "+result.ErrorMessage))
	}

	return summaryBox.Render(strings.Join(rows, "\n"))
}
