package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFilename(t *testing.T) {
	day := time.Date(2026, time.August, 31, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "income-report-2026-08-31.csv", ExportFilename("income", FormatCSV, day))
	assert.Equal(t, "expenses-report-2026-08-31.xlsx", ExportFilename("expenses", FormatXLSX, day))
	// Unknown formats fall back to csv.
	assert.Equal(t, "income-report-2026-08-31.csv", ExportFilename("income", "pdf", day))
}

func TestExportDownloadsRawBytes(t *testing.T) {
	payload := []byte("date,amount\n2026-08-01,12.50\n")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/reports/expenses/export", r.URL.Path)
		require.Equal(t, "csv", r.URL.Query().Get("format"))

		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	client := New(server.URL, staticToken("T1"))
	data, filename, err := client.ExportExpenseReport(context.Background(), FormatCSV)

	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Regexp(t, `^expenses-report-\d{4}-\d{2}-\d{2}\.csv$`, filename)
}

func TestExportUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	hookFired := false
	client := New(server.URL, staticToken("stale"), WithUnauthorizedHook(func() { hookFired = true }))

	_, _, err := client.ExportIncomeReport(context.Background(), FormatXLSX)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, hookFired)
}
