package api

import (
	"context"
	"net/http"

	"github.com/moneywise/client-go/internal/model"
)

type CategoryParams struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, params CategoryParams) (*model.Category, error) {
	var category model.Category
	if err := c.do(ctx, http.MethodPost, "/api/categories", nil, params, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, params CategoryParams) (*model.Category, error) {
	var category model.Category
	if err := c.do(ctx, http.MethodPut, "/api/categories/"+id, nil, params, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/categories/"+id, nil, nil, nil)
}
