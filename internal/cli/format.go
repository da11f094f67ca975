// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatMoney formats an amount with the configured currency symbol.
// Whole amounts drop the cents: 12.5 -> "$12.50", 40 -> "$40".
func FormatMoney(symbol string, amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(symbol, -amount)
	}
	if amount == math.Trunc(amount) {
		if amount >= 1000 {
			return symbol + FormatNumber(int64(amount))
		}
		return fmt.Sprintf("%s%.0f", symbol, amount)
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 ratio as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatDate renders a date for list output.
func FormatDate(t time.Time) string {
	return t.Local().Format("Mon Jan 2")
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// FormatStreak renders a streak count with its flame marker.
func FormatStreak(days int) string {
	if days == 1 {
		return "1 day 🔥"
	}
	return fmt.Sprintf("%d days 🔥", days)
}
