package model

// ReportSummary is the server-computed overview returned by the reports
// resource. Client-side period analysis lives in the service package and is
// derived from raw expenses/income instead.
type ReportSummary struct {
	Period        string             `json:"period"`
	TotalIncome   float64            `json:"totalIncome"`
	TotalExpenses float64            `json:"totalExpenses"`
	Balance       float64            `json:"balance"`
	ByCategory    map[string]float64 `json:"byCategory,omitempty"`
}
