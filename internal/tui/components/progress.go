package components

import (
	"fmt"

	"github.com/theirongolddev/steady/internal/model"
	"github.com/theirongolddev/steady/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForStatus maps a limit status to its theme color.
func ColorForStatus(status model.LimitStatus) string {
	t := theme.Active
	switch status {
	case model.StatusExceeded:
		return string(t.Red)
	case model.StatusWarning:
		return string(t.Orange)
	default:
		return string(t.Green)
	}
}

// LimitBar renders a labeled tier bar with spend, limit, and percentage.
func LimitBar(label string, res model.LimitResult, spent, limit string, labelW, barWidth int) string {
	t := theme.Active

	pct := res.Ratio
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForStatus(res.Status)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForStatus(res.Status))).Bold(true)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " + bar.ViewAs(pct) +
		" " + pctStyle.Render(fmt.Sprintf("%3.0f%%", res.Ratio*100)) +
		"  " + amountStyle.Render(spent+" / "+limit)
}

// GoalBar renders goal progress toward its target.
func GoalBar(pct float64, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	display := pct
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(t.Accent)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	return bar.ViewAs(pct) + " " + pctStyle.Render(fmt.Sprintf("%.0f%%", display*100))
}
