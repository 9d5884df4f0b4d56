package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/moneywise/client-go/internal/model"
)

// Export formats accepted by the report download endpoints.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// GetReportSummary fetches the server-computed overview for a period
// ("monthly", "yearly", ...). An empty period uses the server default.
func (c *Client) GetReportSummary(ctx context.Context, period string) (*model.ReportSummary, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}

	var summary model.ReportSummary
	if err := c.do(ctx, http.MethodGet, "/api/reports/summary", q, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ExportIncomeReport downloads the income report as raw spreadsheet or CSV
// bytes, together with a filename embedding today's date.
func (c *Client) ExportIncomeReport(ctx context.Context, format string) ([]byte, string, error) {
	return c.exportReport(ctx, "income", format)
}

// ExportExpenseReport downloads the expense report, see ExportIncomeReport.
func (c *Client) ExportExpenseReport(ctx context.Context, format string) ([]byte, string, error) {
	return c.exportReport(ctx, "expenses", format)
}

func (c *Client) exportReport(ctx context.Context, kind, format string) ([]byte, string, error) {
	q := url.Values{}
	q.Set("format", normalizeFormat(format))

	data, err := c.download(ctx, "/api/reports/"+kind+"/export", q)
	if err != nil {
		return nil, "", err
	}
	return data, ExportFilename(kind, format, time.Now()), nil
}

// ExportFilename builds the client-side download name for a report export,
// e.g. "expenses-report-2026-08-31.csv".
func ExportFilename(kind, format string, now time.Time) string {
	return fmt.Sprintf("%s-report-%s.%s", kind, now.Format("2006-01-02"), normalizeFormat(format))
}

func normalizeFormat(format string) string {
	if format == FormatXLSX {
		return FormatXLSX
	}
	return FormatCSV
}
