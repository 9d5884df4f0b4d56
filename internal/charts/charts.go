// Package charts renders report data as PNG images for the bot front-end.
package charts

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/moneywise/client-go/internal/service"
)

type Generator struct {
	currency string
}

// NewGenerator builds a generator labeling amounts with the given currency
// code.
func NewGenerator(currency string) *Generator {
	if currency == "" {
		currency = "USD"
	}
	return &Generator{currency: currency}
}

func calculateMovingAverage(values []float64, window int) []float64 {
	result := make([]float64, len(values))
	for i := range values {
		count := 0
		sum := 0.0
		for j := maxInt(0, i-window+1); j <= i; j++ {
			sum += values[j]
			count++
		}
		result[i] = sum / float64(count)
	}
	return result
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// MonthlyDashboard draws expenses, income, running balance and 7-day
// moving averages for the report period. Returns nil bytes when there is
// nothing to draw.
func (g *Generator) MonthlyDashboard(report *service.Report) ([]byte, error) {
	if len(report.ExpenseTrend) == 0 && len(report.IncomeTrend) == 0 {
		return nil, nil
	}

	xValues := make([]time.Time, len(report.ExpenseTrend))
	expenseValues := make([]float64, len(report.ExpenseTrend))
	incomeValues := make([]float64, len(report.ExpenseTrend))
	balanceValues := make([]float64, len(report.ExpenseTrend))

	runningBalance := 0.0
	for i, point := range report.ExpenseTrend {
		xValues[i] = point.Date
		expenseValues[i] = point.Amount
		if i < len(report.IncomeTrend) {
			incomeValues[i] = report.IncomeTrend[i].Amount
		}
		runningBalance += incomeValues[i] - expenseValues[i]
		balanceValues[i] = runningBalance
	}

	maExpenses := calculateMovingAverage(expenseValues, 7)
	maIncome := calculateMovingAverage(incomeValues, 7)

	graph := chart.Chart{
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding:   chart.Box{Top: 50, Left: 50, Right: 50, Bottom: 50},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("Jan 02"),
			Style:          chart.Style{FontSize: 12, FontColor: chart.ColorBlack},
		},
		YAxis: chart.YAxis{
			ValueFormatter: g.amountFormatter,
			Style:          chart.Style{FontSize: 12, FontColor: chart.ColorBlack},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Expenses",
				XValues: xValues,
				YValues: expenseValues,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2},
			},
			chart.TimeSeries{
				Name:    "Income",
				XValues: xValues,
				YValues: incomeValues,
				Style:   chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 2},
			},
			chart.TimeSeries{
				Name:    "Balance",
				XValues: xValues,
				YValues: balanceValues,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 3},
			},
			chart.TimeSeries{
				Name:    "Expenses (7d avg)",
				XValues: xValues,
				YValues: maExpenses,
				Style: chart.Style{
					StrokeColor:     chart.ColorRed.WithAlpha(100),
					StrokeWidth:     2,
					StrokeDashArray: []float64{5.0, 5.0},
				},
			},
			chart.TimeSeries{
				Name:    "Income (7d avg)",
				XValues: xValues,
				YValues: maIncome,
				Style: chart.Style{
					StrokeColor:     chart.ColorGreen.WithAlpha(100),
					StrokeWidth:     2,
					StrokeDashArray: []float64{5.0, 5.0},
				},
			},
		},
	}

	graph.Elements = []chart.Renderable{
		chart.Legend(&graph, chart.Style{FontSize: 12, FontColor: chart.ColorBlack}),
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render monthly dashboard: %w", err)
	}
	return buffer.Bytes(), nil
}

// CategoryPie draws the spend distribution by category. Slices below 1% of
// the total are dropped to keep labels readable. Returns nil bytes when
// there is nothing to draw.
func (g *Generator) CategoryPie(byCategory map[string]float64) ([]byte, error) {
	if len(byCategory) == 0 {
		return nil, nil
	}

	total := 0.0
	for _, amount := range byCategory {
		total += amount
	}
	if total <= 0 {
		return nil, nil
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make([]chart.Value, 0, len(names))
	for _, name := range names {
		amount := byCategory[name]
		percentage := (amount / total) * 100
		if percentage > 1.0 {
			values = append(values, chart.Value{
				Label: fmt.Sprintf("%s: %.0f %s (%.1f%%)", name, amount, g.currency, percentage),
				Value: amount,
			})
		}
	}
	if len(values) == 0 {
		return nil, nil
	}

	pie := chart.PieChart{
		Width:  1200,
		Height: 600,
		Values: values,
		Background: chart.Style{
			Padding:   chart.Box{Top: 50, Left: 50, Right: 50, Bottom: 50},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render category pie: %w", err)
	}
	return buffer.Bytes(), nil
}

func (g *Generator) amountFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f %s", f, g.currency)
	}
	return ""
}
