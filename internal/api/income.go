package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/moneywise/client-go/internal/model"
)

type IncomeSourceParams struct {
	Name           string  `json:"name"`
	ExpectedAmount float64 `json:"expectedAmount,omitempty"`
	Frequency      string  `json:"frequency,omitempty"`
}

type IncomeParams struct {
	SourceID    string  `json:"sourceId,omitempty"`
	AccountID   string  `json:"accountId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"`
}

// IncomeFilter narrows an income listing; zero-valued fields are omitted.
type IncomeFilter struct {
	StartDate string
	EndDate   string
	SourceID  string
}

func (f IncomeFilter) query() url.Values {
	q := url.Values{}
	if f.StartDate != "" {
		q.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("endDate", f.EndDate)
	}
	if f.SourceID != "" {
		q.Set("sourceId", f.SourceID)
	}
	return q
}

func (c *Client) ListIncomeSources(ctx context.Context) ([]model.IncomeSource, error) {
	var sources []model.IncomeSource
	if err := c.do(ctx, http.MethodGet, "/api/income-sources", nil, nil, &sources); err != nil {
		return nil, err
	}
	if sources == nil {
		sources = []model.IncomeSource{}
	}
	return sources, nil
}

func (c *Client) CreateIncomeSource(ctx context.Context, params IncomeSourceParams) (*model.IncomeSource, error) {
	var source model.IncomeSource
	if err := c.do(ctx, http.MethodPost, "/api/income-sources", nil, params, &source); err != nil {
		return nil, err
	}
	return &source, nil
}

func (c *Client) DeleteIncomeSource(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/income-sources/"+id, nil, nil, nil)
}

func (c *Client) ListIncome(ctx context.Context, filter IncomeFilter) ([]model.Income, error) {
	var income []model.Income
	if err := c.do(ctx, http.MethodGet, "/api/income", filter.query(), nil, &income); err != nil {
		return nil, err
	}
	if income == nil {
		income = []model.Income{}
	}
	return income, nil
}

func (c *Client) AddIncome(ctx context.Context, params IncomeParams) (*model.Income, error) {
	var income model.Income
	if err := c.do(ctx, http.MethodPost, "/api/income", nil, params, &income); err != nil {
		return nil, err
	}
	return &income, nil
}

func (c *Client) DeleteIncome(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/income/"+id, nil, nil, nil)
}
