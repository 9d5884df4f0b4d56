package api

import (
	"context"
	"net/http"

	"github.com/moneywise/client-go/internal/model"
)

type BudgetParams struct {
	Name       string  `json:"name"`
	CategoryID string  `json:"categoryId"`
	Amount     float64 `json:"amount"`
	Period     string  `json:"period"`
	StartDate  string  `json:"startDate,omitempty"`
	EndDate    string  `json:"endDate,omitempty"`
}

func (c *Client) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	var budgets []model.Budget
	if err := c.do(ctx, http.MethodGet, "/api/budgets", nil, nil, &budgets); err != nil {
		return nil, err
	}
	if budgets == nil {
		budgets = []model.Budget{}
	}
	return budgets, nil
}

func (c *Client) GetBudget(ctx context.Context, id string) (*model.Budget, error) {
	var budget model.Budget
	if err := c.do(ctx, http.MethodGet, "/api/budgets/"+id, nil, nil, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (c *Client) CreateBudget(ctx context.Context, params BudgetParams) (*model.Budget, error) {
	var budget model.Budget
	if err := c.do(ctx, http.MethodPost, "/api/budgets", nil, params, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (c *Client) UpdateBudget(ctx context.Context, id string, params BudgetParams) (*model.Budget, error) {
	var budget model.Budget
	if err := c.do(ctx, http.MethodPut, "/api/budgets/"+id, nil, params, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (c *Client) DeleteBudget(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/budgets/"+id, nil, nil, nil)
}
