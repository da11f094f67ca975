package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/steady/internal/cli"
	"github.com/theirongolddev/steady/internal/limits"
	"github.com/theirongolddev/steady/internal/model"
	"github.com/theirongolddev/steady/internal/streak"
	"github.com/theirongolddev/steady/internal/tui/components"
	"github.com/theirongolddev/steady/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewOverview(width int) string {
	t := theme.Active
	now := time.Now()
	symbol := a.cfg.General.Currency

	var b strings.Builder

	// Metric cards: one per active tier.
	labels := map[model.Period]string{
		model.PeriodDaily:   "Today",
		model.PeriodWeekly:  "This Week",
		model.PeriodMonthly: "This Month",
	}
	var cards []struct{ Label, Value, Detail string }
	for _, period := range model.Periods {
		tier := a.data.limits.Get(period)
		if !tier.Active {
			continue
		}
		res := limits.Status(a.data.expenses, period, tier.Amount, now)
		if res == nil {
			continue
		}
		cards = append(cards, struct{ Label, Value, Detail string }{
			Label:  labels[period],
			Value:  cli.FormatMoney(symbol, res.Total),
			Detail: fmt.Sprintf("of %s left %s", cli.FormatMoney(symbol, tier.Amount), cli.FormatMoney(symbol, res.Remaining)),
		})
	}
	if len(cards) > 0 {
		b.WriteString(components.MetricCardRow(cards, min(width-2, 72)))
		b.WriteString("\n")
	}

	// Tier bars
	barWidth := 24
	var bars []string
	for _, period := range model.Periods {
		tier := a.data.limits.Get(period)
		if !tier.Active {
			continue
		}
		res := limits.Status(a.data.expenses, period, tier.Amount, now)
		if res == nil {
			continue
		}
		bars = append(bars, components.LimitBar(
			labels[period], *res,
			cli.FormatMoney(symbol, res.Total),
			cli.FormatMoney(symbol, tier.Amount),
			10, barWidth,
		))
	}
	if len(bars) > 0 {
		b.WriteString(components.ContentCard("Limits", strings.Join(bars, "\n"), min(width-2, 72)))
		b.WriteString("\n")
	}

	// Streak summary
	if a.data.limits.Daily.Active && a.data.limits.Daily.Amount > 0 {
		metrics := streak.Calculate(a.data.expenses, a.data.limits.Daily.Amount, now)
		line := "No active streak yet."
		if metrics.HasActiveStreak {
			line = cli.FormatStreak(metrics.CurrentStreak)
		}
		body := fmt.Sprintf("%s\nLongest: %d days   Milestones: %d of %d",
			line, metrics.LongestStreak, len(a.data.milestones), len(streak.Thresholds))
		b.WriteString(components.ContentCard("Streak", body, min(width-2, 72)))
		b.WriteString("\n")
	}

	// Recent entries
	recent := a.data.expenses
	if len(recent) > 5 {
		recent = recent[:5]
	}
	if len(recent) > 0 {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted)
		var lines []string
		for _, e := range recent {
			title := e.Title
			if title == "" {
				title = string(e.Category)
			}
			lines = append(lines, fmt.Sprintf("%s  %-20s %s",
				muted.Render(e.Date.Local().Format("Jan 02")),
				title,
				cli.FormatMoney(symbol, e.Amount)))
		}
		b.WriteString(components.ContentCard("Recent", strings.Join(lines, "\n"), min(width-2, 72)))
	}

	return b.String()
}
