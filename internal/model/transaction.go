package model

import "time"

// Expense is a single spend transaction against an account.
type Expense struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"accountId"`
	CategoryID  string    `json:"categoryId"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// IncomeSource is a recurring origin of income (salary, freelance, ...).
type IncomeSource struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ExpectedAmount float64 `json:"expectedAmount,omitempty"`
	Frequency      string  `json:"frequency,omitempty"` // monthly, weekly, one-off
}

// Income is a single received payment recorded against a source and account.
type Income struct {
	ID          string    `json:"id"`
	SourceID    string    `json:"sourceId,omitempty"`
	AccountID   string    `json:"accountId"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}
