package insight

import (
	"testing"
	"time"

	"github.com/theirongolddev/steady/internal/model"
)

func at(day int, month time.Month) time.Time {
	return time.Date(2025, month, day, 12, 0, 0, 0, time.Local)
}

func entry(amt float64, date time.Time, cat model.Category) model.Expense {
	return model.Expense{Amount: amt, Category: cat, Date: date, Kind: model.KindBehavioral}
}

// twoMonthLedger has enough history for the monthly-change and top-category
// candidates but stays too sparse for any behavioral detector.
func twoMonthLedger(prevTotal, currentTotal float64) []model.Expense {
	return []model.Expense{
		entry(prevTotal, at(10, time.May), model.CategoryFood),
		entry(currentTotal, at(10, time.June), model.CategoryShopping),
	}
}

func TestSelectCapAndPriority(t *testing.T) {
	// Eligible: monthly change, top category, weekly average. Only the two
	// highest-priority ones survive.
	items := Select(twoMonthLedger(100, 150), 50)

	if len(items) != MaxVisibleInsights {
		t.Fatalf("selected %d insights, want %d", len(items), MaxVisibleInsights)
	}
	if items[0].Type != model.InsightMonthlyChange {
		t.Fatalf("first insight = %s, want monthly_change", items[0].Type)
	}
	if items[1].Type != model.InsightTopCategory {
		t.Fatalf("second insight = %s, want top_category", items[1].Type)
	}
}

func TestSelectWeekendSpikeOutranksTopCategory(t *testing.T) {
	// June 2025: 7/8 and 14/15 are weekends, 9/10 are Mon/Tue.
	expenses := []model.Expense{
		entry(100, at(10, time.May), model.CategoryFood),
		entry(100, at(7, time.June), model.CategoryFood),
		entry(100, at(8, time.June), model.CategoryFood),
		entry(100, at(14, time.June), model.CategoryFood),
		entry(100, at(15, time.June), model.CategoryFood),
		entry(10, at(9, time.June), model.CategoryFood),
		entry(10, at(10, time.June), model.CategoryFood),
	}

	items := Select(expenses, 500)

	if len(items) != 2 {
		t.Fatalf("selected %d insights, want 2", len(items))
	}
	if items[0].Type != model.InsightMonthlyChange || items[1].Type != model.InsightWeekendSpike {
		t.Fatalf("selection = [%s, %s], want [monthly_change, behavioral_weekend_spike]",
			items[0].Type, items[1].Type)
	}
}

func TestMonthlyChangeTones(t *testing.T) {
	tests := []struct {
		name     string
		prev     float64
		current  float64
		wantTone model.InsightTone
	}{
		{"spending rose", 100, 150, model.ToneNegative},
		{"spending fell", 150, 100, model.TonePositive},
		{"small movement is neutral", 100, 102, model.ToneNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := monthlyChange(twoMonthLedger(tt.prev, tt.current))
			if item == nil {
				t.Fatal("monthlyChange returned nil")
			}
			if item.Tone != tt.wantTone {
				t.Fatalf("tone = %s, want %s", item.Tone, tt.wantTone)
			}
		})
	}
}

func TestMonthlyChangeIneligible(t *testing.T) {
	if item := monthlyChange([]model.Expense{entry(100, at(10, time.June), model.CategoryFood)}); item != nil {
		t.Fatalf("single month should be ineligible, got %+v", item)
	}
	if item := monthlyChange(nil); item != nil {
		t.Fatalf("empty ledger should be ineligible, got %+v", item)
	}
}

func TestTopCategoryUsesCurrentMonth(t *testing.T) {
	expenses := []model.Expense{
		entry(1000, at(10, time.May), model.CategoryShopping), // previous month, ignored
		entry(60, at(5, time.June), model.CategoryFood),
		entry(40, at(6, time.June), model.CategoryTransport),
	}

	item := topCategory(expenses)
	if item == nil {
		t.Fatal("topCategory returned nil")
	}
	if item.Description != "Most of your spending went to food." {
		t.Fatalf("description = %q", item.Description)
	}
}

func TestOverLimitFrequencyMinimumSample(t *testing.T) {
	// Four over-limit days: one short of the five-day minimum.
	var expenses []model.Expense
	for d := 2; d <= 5; d++ {
		expenses = append(expenses, entry(200, at(d, time.June), model.CategoryFood))
	}
	if item := overLimitFrequency(expenses, 50); item != nil {
		t.Fatalf("detector fired below minimum sample: %+v", item)
	}

	expenses = append(expenses, entry(200, at(6, time.June), model.CategoryFood))
	item := overLimitFrequency(expenses, 50)
	if item == nil {
		t.Fatal("detector should fire with five over-limit days")
	}
	if item.Tone != model.ToneNegative {
		t.Fatalf("tone = %s, want negative (every day over limit)", item.Tone)
	}
}

func TestInconsistentDaysVolatility(t *testing.T) {
	// Spike at 10x average and a near-zero day: volatile.
	expenses := []model.Expense{
		entry(400, at(2, time.June), model.CategoryFood),
		entry(5, at(3, time.June), model.CategoryFood),
		entry(50, at(4, time.June), model.CategoryFood),
		entry(45, at(5, time.June), model.CategoryFood),
	}

	item := inconsistentDays(expenses, 100)
	if item == nil {
		t.Fatal("volatility detector should fire")
	}
	if item.Tone != model.ToneNegative {
		t.Fatalf("tone = %s, want negative (spike above twice the limit)", item.Tone)
	}

	// Steady spending never fires.
	steady := []model.Expense{
		entry(50, at(2, time.June), model.CategoryFood),
		entry(52, at(3, time.June), model.CategoryFood),
		entry(48, at(4, time.June), model.CategoryFood),
		entry(51, at(5, time.June), model.CategoryFood),
	}
	if item := inconsistentDays(steady, 100); item != nil {
		t.Fatalf("steady ledger fired volatility detector: %+v", item)
	}
}

func TestExpensiveWeekdayOutlier(t *testing.T) {
	// Fridays (6, 13, 20 June) cost far more than Mondays and Tuesdays.
	expenses := []model.Expense{
		entry(200, at(6, time.June), model.CategoryEntertainment),
		entry(200, at(13, time.June), model.CategoryEntertainment),
		entry(200, at(20, time.June), model.CategoryEntertainment),
		entry(20, at(2, time.June), model.CategoryFood),
		entry(20, at(9, time.June), model.CategoryFood),
		entry(20, at(3, time.June), model.CategoryFood),
		entry(20, at(10, time.June), model.CategoryFood),
	}

	item := expensiveWeekday(expenses, 50)
	if item == nil {
		t.Fatal("expensive-weekday detector should fire")
	}
	if item.Type != model.InsightExpensiveWeekday {
		t.Fatalf("type = %s, want behavioral_expensive_weekday", item.Type)
	}
	if item.Title != "Friday tends to be more expensive" {
		t.Fatalf("title = %q", item.Title)
	}
	if item.Tone != model.ToneNegative {
		t.Fatalf("tone = %s, want negative (average above the daily limit)", item.Tone)
	}
}

func TestBehavioralDetectorsIgnoreStructural(t *testing.T) {
	rent := model.Expense{Amount: 5000, Category: model.CategoryOther, Date: at(2, time.June), Kind: model.KindStructural}
	items := behavioralInsights([]model.Expense{rent}, 50)
	if items != nil {
		t.Fatalf("structural-only ledger produced behavioral insights: %v", items)
	}
}
