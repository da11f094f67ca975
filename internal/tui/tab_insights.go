package tui

import (
	"strings"

	"github.com/theirongolddev/steady/internal/insight"
	"github.com/theirongolddev/steady/internal/model"
	"github.com/theirongolddev/steady/internal/tui/components"
	"github.com/theirongolddev/steady/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewInsights(width int) string {
	t := theme.Active
	cardWidth := min(width-2, 72)

	dailyLimit := 0.0
	if a.data.limits.Daily.Active {
		dailyLimit = a.data.limits.Daily.Amount
	}

	items := insight.Select(a.data.expenses, dailyLimit)
	if len(items) == 0 {
		return components.ContentCard("Insights",
			"Not enough data yet. Keep logging expenses.", cardWidth)
	}

	var cards []string
	for _, item := range items {
		toneStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		switch item.Tone {
		case model.TonePositive:
			toneStyle = lipgloss.NewStyle().Foreground(t.Green)
		case model.ToneNegative:
			toneStyle = lipgloss.NewStyle().Foreground(t.Red)
		}

		body := toneStyle.Render("● ") + item.Title + "\n" +
			lipgloss.NewStyle().Foreground(t.TextMuted).
				Width(components.CardInnerWidth(cardWidth)).
				Render(item.Description)
		cards = append(cards, components.ContentCard("", body, cardWidth))
	}

	return strings.Join(cards, "\n")
}
