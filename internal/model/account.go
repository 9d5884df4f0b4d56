package model

import "time"

type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"` // checking, savings, cash, investment
	Balance   float64   `json:"balance"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

type Transfer struct {
	ID            string    `json:"id"`
	FromAccountID string    `json:"fromAccountId"`
	ToAccountID   string    `json:"toAccountId"`
	Amount        float64   `json:"amount"`
	Date          string    `json:"date"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

type CreditCard struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	LastFour    string  `json:"lastFour"`
	CreditLimit float64 `json:"creditLimit"`
	Balance     float64 `json:"balance"`
	DueDay      int     `json:"dueDay,omitempty"`
}

type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"` // card, bank, cash
}
