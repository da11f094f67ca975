package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/steady/internal/dates"
	"github.com/theirongolddev/steady/internal/model"
)

// Theme colors (Flexoki Dark)
var (
	ColorBg        = lipgloss.Color("#100F0F")
	ColorSurface   = lipgloss.Color("#1C1B1A")
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
	ColorPurple    = lipgloss.Color("#8B7EC8")
	ColorYellow    = lipgloss.Color("#D0A215")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	safeStyle     = lipgloss.NewStyle().Foreground(ColorGreen)
	warnStyle     = lipgloss.NewStyle().Foreground(ColorOrange)
	exceededStyle = lipgloss.NewStyle().Foreground(ColorRed)
	goldStyle     = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
)

// StatusStyle returns the style for a limit status.
func StatusStyle(status model.LimitStatus) lipgloss.Style {
	switch status {
	case model.StatusExceeded:
		return exceededStyle
	case model.StatusWarning:
		return warnStyle
	default:
		return safeStyle
	}
}

// ToneStyle returns the style for an insight tone.
func ToneStyle(tone model.InsightTone) lipgloss.Style {
	switch tone {
	case model.TonePositive:
		return safeStyle
	case model.ToneNegative:
		return exceededStyle
	default:
		return mutedStyle
	}
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if len(h) > widths[i] {
				widths[i] = len(h)
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && len(cell) > widths[i] {
					widths[i] = len(cell)
				}
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			padded := fmt.Sprintf(" %-*s ", widths[i], h)
			b.WriteString(headerStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align numeric columns (all except first)
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", widths[i], cell)
			} else {
				padded = fmt.Sprintf(" %*s ", widths[i], cell)
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")

	return b.String()
}

// RenderLimitBar renders one tier's spend against its limit as a colored bar.
func RenderLimitBar(label string, res model.LimitResult, limit float64, symbol string, width int) string {
	pct := res.Ratio
	if pct > 1 {
		pct = 1
	}
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	style := StatusStyle(res.Status)
	bar := style.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))

	return fmt.Sprintf("  %-8s [%s] %s / %s  %s",
		label, bar,
		FormatMoney(symbol, res.Total),
		FormatMoney(symbol, limit),
		style.Render(FormatPercent(res.Ratio)),
	)
}

// dayCell renders one calendar day with its status color.
func dayCell(day int, status model.DayStatus) string {
	cell := fmt.Sprintf("%3d", day)
	switch status {
	case model.DayGold:
		return goldStyle.Render(cell)
	case model.DayGreen:
		return safeStyle.Render(cell)
	case model.DayBreak:
		return exceededStyle.Render(cell)
	default:
		return dimStyle.Render(cell)
	}
}

// RenderCalendar renders the month's consistency calendar, Monday first.
func RenderCalendar(month time.Time, grid [][7]int, infos map[string]model.DayInfo) string {
	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(headerStyle.Render(month.Format("January 2006")))
	b.WriteString("\n  ")
	b.WriteString(mutedStyle.Render(" Mo  Tu  We  Th  Fr  Sa  Su"))
	b.WriteString("\n")

	monthStart := dates.StartOfMonth(month)
	for _, week := range grid {
		b.WriteString("  ")
		for _, day := range week {
			if day == 0 {
				b.WriteString("    ")
				continue
			}
			key := dates.DayKey(monthStart.AddDate(0, 0, day-1))
			b.WriteString(dayCell(day, infos[key].Status))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("  ")
	b.WriteString(goldStyle.Render("●"))
	b.WriteString(mutedStyle.Render(" streak  "))
	b.WriteString(safeStyle.Render("●"))
	b.WriteString(mutedStyle.Render(" under limit  "))
	b.WriteString(exceededStyle.Render("●"))
	b.WriteString(mutedStyle.Render(" streak lost"))
	b.WriteString("\n")

	return b.String()
}

// RenderSparkline generates a unicode block sparkline from a series of values.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / max * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}

	return b.String()
}
