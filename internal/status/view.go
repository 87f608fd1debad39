package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/cclean/internal/core"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	mountStyle = lipgloss.NewStyle().
			Bold(true).
			Width(12)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	barFillStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	barWarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))
)

const barWidth = 24

// Render formats the volume report as a small fixed table.
func Render(vols []VolumeUsage) string {
	var b strings.Builder

	b.WriteString("  " + headerStyle.Render("Disk usage") + "\n\n")

	if len(vols) == 0 {
		b.WriteString("  " + dimStyle.Render("No volumes found.") + "\n")
		return b.String()
	}

	for _, v := range vols {
		name := v.Mount
		if v.Label != "" {
			name = fmt.Sprintf("%s %s", v.Mount, v.Label)
		}

		b.WriteString(fmt.Sprintf("  %s %s %5.1f%%  %s free of %s\n",
			mountStyle.Render(name),
			usageBar(v.UsedPercent),
			v.UsedPercent,
			core.FormatSize(int64(v.Free)),
			core.FormatSize(int64(v.Total)),
		))
	}

	return b.String()
}

// usageBar renders a fill bar, switching color above 90% used.
func usageBar(usedPercent float64) string {
	filled := int(usedPercent / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	fill := strings.Repeat("█", filled)
	rest := strings.Repeat("░", barWidth-filled)

	style := barFillStyle
	if usedPercent >= 90 {
		style = barWarnStyle
	}
	return style.Render(fill) + dimStyle.Render(rest)
}
