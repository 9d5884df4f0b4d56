package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/moneywise/client-go/internal/api"
	"github.com/moneywise/client-go/internal/model"
)

// PeriodStats summarizes one calendar period.
type PeriodStats struct {
	TotalIncome   float64
	TotalExpenses float64
	ByCategory    map[string]float64
	Transactions  int
}

// TrendPoint is one day of aggregated amounts.
type TrendPoint struct {
	Date   time.Time
	Amount float64
}

// Report is the client-computed monthly view: current period, previous
// period for comparison, and daily trends for charting.
type Report struct {
	Period          string
	Current         PeriodStats
	Previous        PeriodStats
	SavingsRate     float64
	PrevSavingsRate float64
	ExpenseTrend    []TrendPoint
	IncomeTrend     []TrendPoint
}

// Balance is the current period's net.
func (r *Report) Balance() float64 {
	return r.Current.TotalIncome - r.Current.TotalExpenses
}

// MonthlyReport builds the report for the current calendar month. The four
// listings and the category names are fetched concurrently; any failure
// fails the whole report.
func (t *Tracker) MonthlyReport(ctx context.Context) (*Report, error) {
	now := time.Now()
	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	currentEnd := currentStart.AddDate(0, 1, 0).Add(-time.Second)
	prevStart := currentStart.AddDate(0, -1, 0)
	prevEnd := currentStart.Add(-time.Second)

	var (
		currentExpenses, prevExpenses []model.Expense
		currentIncome, prevIncome     []model.Income
		categories                    []model.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		currentExpenses, err = t.backend.ListExpenses(gctx, rangeExpenseFilter(currentStart, currentEnd))
		return err
	})
	g.Go(func() (err error) {
		prevExpenses, err = t.backend.ListExpenses(gctx, rangeExpenseFilter(prevStart, prevEnd))
		return err
	})
	g.Go(func() (err error) {
		currentIncome, err = t.backend.ListIncome(gctx, rangeIncomeFilter(currentStart, currentEnd))
		return err
	})
	g.Go(func() (err error) {
		prevIncome, err = t.backend.ListIncome(gctx, rangeIncomeFilter(prevStart, prevEnd))
		return err
	})
	g.Go(func() (err error) {
		categories, err = t.backend.ListCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("monthly report: %w", err)
	}

	categoryNames := make(map[string]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
	}

	report := &Report{
		Period:   currentStart.Format("January 2006"),
		Current:  analyzePeriod(currentExpenses, currentIncome, categoryNames),
		Previous: analyzePeriod(prevExpenses, prevIncome, categoryNames),
	}
	report.SavingsRate = savingsRate(report.Current)
	report.PrevSavingsRate = savingsRate(report.Previous)
	report.ExpenseTrend, report.IncomeTrend = dailyTrends(currentExpenses, currentIncome, currentStart, now)

	return report, nil
}

func rangeExpenseFilter(start, end time.Time) api.ExpenseFilter {
	return api.ExpenseFilter{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	}
}

func rangeIncomeFilter(start, end time.Time) api.IncomeFilter {
	return api.IncomeFilter{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	}
}

func analyzePeriod(expenses []model.Expense, income []model.Income, categoryNames map[string]string) PeriodStats {
	stats := PeriodStats{ByCategory: make(map[string]float64)}

	for _, expense := range expenses {
		stats.TotalExpenses += expense.Amount
		name := categoryNames[expense.CategoryID]
		if name == "" {
			name = "Other"
		}
		stats.ByCategory[name] += expense.Amount
	}
	for _, entry := range income {
		stats.TotalIncome += entry.Amount
	}
	stats.Transactions = len(expenses) + len(income)

	return stats
}

func savingsRate(stats PeriodStats) float64 {
	if stats.TotalIncome <= 0 {
		return 0
	}
	return (stats.TotalIncome - stats.TotalExpenses) / stats.TotalIncome
}

// dailyTrends buckets amounts per day from the period start through today,
// yielding aligned expense and income series.
func dailyTrends(expenses []model.Expense, income []model.Income, start, now time.Time) ([]TrendPoint, []TrendPoint) {
	expenseByDay := make(map[string]float64)
	incomeByDay := make(map[string]float64)

	for _, expense := range expenses {
		if day, ok := dayKey(expense.Date); ok {
			expenseByDay[day] += expense.Amount
		}
	}
	for _, entry := range income {
		if day, ok := dayKey(entry.Date); ok {
			incomeByDay[day] += entry.Amount
		}
	}

	days := make([]string, 0)
	for d := start; !d.After(now); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format("2006-01-02"))
	}
	sort.Strings(days)

	expenseTrend := make([]TrendPoint, 0, len(days))
	incomeTrend := make([]TrendPoint, 0, len(days))
	for _, day := range days {
		date, _ := time.Parse("2006-01-02", day)
		expenseTrend = append(expenseTrend, TrendPoint{Date: date, Amount: expenseByDay[day]})
		incomeTrend = append(incomeTrend, TrendPoint{Date: date, Amount: incomeByDay[day]})
	}
	return expenseTrend, incomeTrend
}

// dayKey normalizes a wire date ("2006-01-02" or RFC3339) to its day.
func dayKey(raw string) (string, bool) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.Format("2006-01-02"), true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format("2006-01-02"), true
	}
	return "", false
}
