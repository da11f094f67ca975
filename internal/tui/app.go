// Package tui implements the interactive steady dashboard.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/steady/internal/cli"
	"github.com/theirongolddev/steady/internal/config"
	"github.com/theirongolddev/steady/internal/model"
	"github.com/theirongolddev/steady/internal/store"
	"github.com/theirongolddev/steady/internal/streak"
	"github.com/theirongolddev/steady/internal/tui/components"
	"github.com/theirongolddev/steady/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

const (
	tabOverview = iota
	tabCalendar
	tabGoal
	tabInsights
)

// snapshot is the store state the tabs render from. Reloaded after every write.
type snapshot struct {
	expenses   []model.Expense
	limits     model.LimitsState
	profile    model.FinanceProfile
	activeGoal *model.Goal
	milestones []model.AchievedMilestone
}

type dataMsg snapshot

type errMsg struct{ err error }

// App is the bubbletea model for the dashboard.
type App struct {
	cfg config.Config
	st  *store.Store

	width  int
	height int
	tab    int

	data   snapshot
	loaded bool

	// Calendar tab month offset from the current month, <= 0.
	monthOffset int

	// Quick-add state
	adding   bool
	input    textinput.Model
	inputErr string

	flash string

	err error
}

// NewApp builds the dashboard against an open store.
func NewApp(cfg config.Config, st *store.Store) App {
	theme.SetActive(cfg.Appearance.Theme)

	ti := textinput.New()
	ti.Placeholder = "12.50 coffee @food"
	ti.CharLimit = 80
	ti.Width = 40

	return App{
		cfg:   cfg,
		st:    st,
		input: ti,
	}
}

// Run starts the dashboard and blocks until exit.
func Run(cfg config.Config, st *store.Store) error {
	p := tea.NewProgram(NewApp(cfg, st), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (a App) Init() tea.Cmd {
	return a.reload
}

// reload reads everything the tabs need in one pass.
func (a App) reload() tea.Msg {
	expenses, err := a.st.ListExpenses()
	if err != nil {
		return errMsg{err}
	}
	limits, err := a.st.Limits()
	if err != nil {
		return errMsg{err}
	}
	profile, err := a.st.Profile()
	if err != nil {
		return errMsg{err}
	}
	activeGoal, err := a.st.ActiveGoal()
	if err != nil {
		return errMsg{err}
	}
	milestones, err := a.st.Milestones()
	if err != nil {
		return errMsg{err}
	}
	return dataMsg{
		expenses:   expenses,
		limits:     limits,
		profile:    profile,
		activeGoal: activeGoal,
		milestones: milestones,
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case dataMsg:
		a.data = snapshot(msg)
		a.loaded = true
		a.err = nil
		return a, nil

	case errMsg:
		a.err = msg.err
		return a, nil

	case tea.KeyMsg:
		if a.adding {
			return a.updateQuickAdd(msg)
		}
		return a.updateKeys(msg)
	}

	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "tab", "l", "right":
		a.tab = (a.tab + 1) % len(components.Tabs)
		return a, nil

	case "shift+tab", "h", "left":
		a.tab = (a.tab + len(components.Tabs) - 1) % len(components.Tabs)
		return a, nil

	case "a":
		a.adding = true
		a.inputErr = ""
		a.input.SetValue("")
		a.input.Focus()
		return a, textinput.Blink

	case "r":
		a.flash = ""
		return a, a.reload

	case "[":
		if a.tab == tabCalendar {
			a.monthOffset--
		}
		return a, nil

	case "]":
		if a.tab == tabCalendar && a.monthOffset < 0 {
			a.monthOffset++
		}
		return a, nil
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.tab = idx
			return a, nil
		}
	}

	return a, nil
}

func (a App) updateQuickAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.adding = false
		a.input.Blur()
		return a, nil

	case "enter":
		expense, err := parseQuickAdd(a.input.Value())
		if err != nil {
			a.inputErr = err.Error()
			return a, nil
		}
		if err := a.st.SaveExpense(expense); err != nil {
			a.inputErr = err.Error()
			return a, nil
		}
		a.adding = false
		a.input.Blur()
		a.flash = fmt.Sprintf("Added %s",
			cli.FormatMoney(a.cfg.General.Currency, expense.Amount))
		if c := a.syncCelebration(); c != "" {
			a.flash = c
		}
		return a, a.reload
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// syncCelebration persists streak state after a write and returns the
// celebration line to flash, if one fired.
func (a App) syncCelebration() string {
	dailyLimit := 0.0
	if a.data.limits.Daily.Active {
		dailyLimit = a.data.limits.Daily.Amount
	}
	if dailyLimit <= 0 {
		return ""
	}

	expenses, err := a.st.ListExpenses()
	if err != nil {
		return ""
	}
	now := time.Now()
	metrics := streak.Calculate(expenses, dailyLimit, now)

	if m := streak.NextUnlock(metrics.CurrentStreak, a.data.milestones, now); m != nil {
		_ = a.st.AddMilestone(*m)
	}

	prev, err := a.st.LastStreak()
	if err != nil {
		return ""
	}
	_ = a.st.SaveLastStreak(metrics.CurrentStreak)

	c := streak.CelebrationFor(prev, metrics.CurrentStreak)
	if c == nil {
		return ""
	}
	switch c.Type {
	case streak.CelebrationNewStreak:
		return "🔥 New streak started!"
	case streak.CelebrationMilestone:
		if m, ok := streak.Registry[c.Count]; ok {
			return fmt.Sprintf("%s %s", m.Emoji, m.Title)
		}
	}
	return ""
}

// parseQuickAdd parses "amount [title words] [@category]". The @category
// token may appear anywhere after the amount.
func parseQuickAdd(raw string) (model.Expense, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return model.Expense{}, fmt.Errorf("enter an amount")
	}

	amount, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || amount <= 0 {
		return model.Expense{}, fmt.Errorf("invalid amount %q", fields[0])
	}

	category := model.CategoryOther
	var titleWords []string
	for _, f := range fields[1:] {
		if strings.HasPrefix(f, "@") {
			c := model.Category(strings.ToLower(strings.TrimPrefix(f, "@")))
			if !model.ValidCategory(c) {
				return model.Expense{}, fmt.Errorf("unknown category %q", f)
			}
			category = c
			continue
		}
		titleWords = append(titleWords, f)
	}

	return model.Expense{
		ID:       uuid.NewString(),
		Title:    strings.Join(titleWords, " "),
		Amount:   amount,
		Category: category,
		Date:     time.Now(),
		Kind:     model.KindBehavioral,
	}, nil
}

func (a App) View() string {
	t := theme.Active

	if a.err != nil {
		return fmt.Sprintf("\n  Error: %v\n\n  Press q to quit.\n", a.err)
	}
	if !a.loaded {
		return "\n  Loading...\n"
	}

	width := a.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	b.WriteString(titleStyle.Render(" steady"))
	b.WriteString("\n")
	b.WriteString(components.RenderTabBar(a.tab, width))
	b.WriteString("\n\n")

	switch a.tab {
	case tabOverview:
		b.WriteString(a.viewOverview(width))
	case tabCalendar:
		b.WriteString(a.viewCalendar(width))
	case tabGoal:
		b.WriteString(a.viewGoal(width))
	case tabInsights:
		b.WriteString(a.viewInsights(width))
	}

	if a.adding {
		b.WriteString("\n ")
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render("New expense: "))
		b.WriteString(a.input.View())
		if a.inputErr != "" {
			b.WriteString("\n ")
			b.WriteString(lipgloss.NewStyle().Foreground(t.Red).Render(a.inputErr))
		}
	} else if a.flash != "" {
		b.WriteString("\n ")
		b.WriteString(lipgloss.NewStyle().Foreground(t.Yellow).Render(a.flash))
	}

	b.WriteString("\n\n")
	b.WriteString(components.RenderStatusBar(width, time.Now().Format("Mon Jan 2 ")))

	return b.String()
}
