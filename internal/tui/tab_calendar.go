package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/steady/internal/cli"
	"github.com/theirongolddev/steady/internal/consistency"
	"github.com/theirongolddev/steady/internal/dates"
	"github.com/theirongolddev/steady/internal/model"
	"github.com/theirongolddev/steady/internal/tui/components"
	"github.com/theirongolddev/steady/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewCalendar(width int) string {
	t := theme.Active
	now := time.Now()
	month := dates.StartOfMonth(now).AddDate(0, a.monthOffset, 0)

	if !a.data.limits.Daily.Active || a.data.limits.Daily.Amount <= 0 {
		return components.ContentCard("Calendar",
			"The daily tier is off; the calendar needs a daily limit.", min(width-2, 72))
	}
	dailyLimit := a.data.limits.Daily.Amount

	infos := consistency.BuildDayMap(a.data.expenses, dailyLimit, month, now)
	grid := consistency.MonthGrid(month)
	monthStart := dates.StartOfMonth(month)

	goldStyle := lipgloss.NewStyle().Foreground(t.Yellow).Bold(true)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)
	breakStyle := lipgloss.NewStyle().Foreground(t.Red)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(mutedStyle.Render(" Mo  Tu  We  Th  Fr  Sa  Su"))
	b.WriteString("\n")

	for _, week := range grid {
		for _, day := range week {
			if day == 0 {
				b.WriteString("    ")
				continue
			}
			key := dates.DayKey(monthStart.AddDate(0, 0, day-1))
			cell := fmt.Sprintf("%3d", day)
			switch infos[key].Status {
			case model.DayGold:
				b.WriteString(goldStyle.Render(cell))
			case model.DayGreen:
				b.WriteString(greenStyle.Render(cell))
			case model.DayBreak:
				b.WriteString(breakStyle.Render(cell))
			default:
				b.WriteString(emptyStyle.Render(cell))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(goldStyle.Render("●"))
	b.WriteString(mutedStyle.Render(" streak  "))
	b.WriteString(greenStyle.Render("●"))
	b.WriteString(mutedStyle.Render(" under limit  "))
	b.WriteString(breakStyle.Render("●"))
	b.WriteString(mutedStyle.Render(" streak lost"))

	// Month spend summary
	start := monthStart
	end := start.AddDate(0, 1, 0)
	var total float64
	for _, e := range a.data.expenses {
		if dates.InRange(e.Date, start, end) {
			total += e.Amount
		}
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Month total: %s   [ and ] change month",
		cli.FormatMoney(a.cfg.General.Currency, total))))

	return components.ContentCard(month.Format("January 2006"), b.String(), min(width-2, 72))
}
