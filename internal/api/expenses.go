package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/moneywise/client-go/internal/model"
)

// ExpenseFilter narrows a transaction listing. Zero-valued fields are
// omitted from the query: omission means "no filter", not "filter by
// empty".
type ExpenseFilter struct {
	StartDate  string
	EndDate    string
	CategoryID string
	AccountID  string
	Limit      int
}

func (f ExpenseFilter) query() url.Values {
	q := url.Values{}
	if f.StartDate != "" {
		q.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("endDate", f.EndDate)
	}
	if f.CategoryID != "" {
		q.Set("categoryId", f.CategoryID)
	}
	if f.AccountID != "" {
		q.Set("accountId", f.AccountID)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

type ExpenseParams struct {
	AccountID   string  `json:"accountId"`
	CategoryID  string  `json:"categoryId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

func (c *Client) ListExpenses(ctx context.Context, filter ExpenseFilter) ([]model.Expense, error) {
	var expenses []model.Expense
	if err := c.do(ctx, http.MethodGet, "/api/expenses", filter.query(), nil, &expenses); err != nil {
		return nil, err
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}
	return expenses, nil
}

func (c *Client) AddExpense(ctx context.Context, params ExpenseParams) (*model.Expense, error) {
	var expense model.Expense
	if err := c.do(ctx, http.MethodPost, "/api/expenses", nil, params, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (c *Client) UpdateExpense(ctx context.Context, id string, params ExpenseParams) (*model.Expense, error) {
	var expense model.Expense
	if err := c.do(ctx, http.MethodPut, "/api/expenses/"+id, nil, params, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/expenses/"+id, nil, nil, nil)
}
