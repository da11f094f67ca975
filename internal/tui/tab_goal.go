package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/steady/internal/cli"
	"github.com/theirongolddev/steady/internal/goal"
	"github.com/theirongolddev/steady/internal/limits"
	"github.com/theirongolddev/steady/internal/model"
	"github.com/theirongolddev/steady/internal/tui/components"
	"github.com/theirongolddev/steady/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewGoal(width int) string {
	t := theme.Active
	cardWidth := min(width-2, 72)

	if a.data.activeGoal == nil {
		return components.ContentCard("Goal",
			"No active goal. Create one with `steady goal new`.", cardWidth)
	}

	g := *a.data.activeGoal
	now := time.Now()
	symbol := a.cfg.General.Currency

	baseline := 0.0
	if a.data.profile.MonthlyIncome != nil && a.data.profile.FixedExpenses != nil {
		baseline = limits.ComputeAutoLimits(
			*a.data.profile.MonthlyIncome, *a.data.profile.FixedExpenses, now).Daily
	}

	p := goal.Projection(g, a.data.expenses, baseline, now)

	progressPct := 0.0
	if g.TargetAmount > 0 {
		progressPct = p.TotalSaved / g.TargetAmount
	}

	feasStyle := lipgloss.NewStyle().Foreground(t.Green)
	switch p.Feasibility {
	case model.FeasibilityTight:
		feasStyle = lipgloss.NewStyle().Foreground(t.Orange)
	case model.FeasibilityHeavy:
		feasStyle = lipgloss.NewStyle().Foreground(t.Red)
	}

	muted := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(components.GoalBar(progressPct, 28))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s of %s saved\n",
		cli.FormatMoney(symbol, p.TotalSaved),
		cli.FormatMoney(symbol, g.TargetAmount)))
	b.WriteString(muted.Render(fmt.Sprintf("Day %d of %d, %d remaining",
		p.DaysPassed, p.TotalDays, p.DaysRemaining)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Pace: %s/day saved vs %s/day required  ",
		cli.FormatMoney(symbol, p.ActualDaily),
		cli.FormatMoney(symbol, p.RequiredDaily)))
	b.WriteString(feasStyle.Render(string(p.Feasibility)))
	b.WriteString("\n")
	b.WriteString(p.Message)
	if p.WillMissGoal {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(t.Red).
			Render("On current numbers this goal will be missed."))
	}

	var health []string
	for _, period := range []model.Period{model.PeriodWeekly, model.PeriodMonthly} {
		h := goal.Health(g, a.data.expenses, period, now)
		health = append(health, fmt.Sprintf("%-8s %s  (%s saved vs %s expected)",
			string(period), h.Health,
			cli.FormatMoney(symbol, h.Actual),
			cli.FormatMoney(symbol, h.Expected)))
	}

	return components.ContentCard(g.Title, b.String(), cardWidth) + "\n" +
		components.ContentCard("Recent pace", strings.Join(health, "\n"), cardWidth)
}
