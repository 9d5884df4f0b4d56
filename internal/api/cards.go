package api

import (
	"context"
	"net/http"

	"github.com/moneywise/client-go/internal/model"
)

type CreditCardParams struct {
	Name        string  `json:"name"`
	LastFour    string  `json:"lastFour"`
	CreditLimit float64 `json:"creditLimit"`
	Balance     float64 `json:"balance,omitempty"`
	DueDay      int     `json:"dueDay,omitempty"`
}

func (c *Client) ListCreditCards(ctx context.Context) ([]model.CreditCard, error) {
	var cards []model.CreditCard
	if err := c.do(ctx, http.MethodGet, "/api/credit-cards", nil, nil, &cards); err != nil {
		return nil, err
	}
	if cards == nil {
		cards = []model.CreditCard{}
	}
	return cards, nil
}

func (c *Client) CreateCreditCard(ctx context.Context, params CreditCardParams) (*model.CreditCard, error) {
	var card model.CreditCard
	if err := c.do(ctx, http.MethodPost, "/api/credit-cards", nil, params, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) DeleteCreditCard(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/credit-cards/"+id, nil, nil, nil)
}

func (c *Client) ListPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	var methods []model.PaymentMethod
	if err := c.do(ctx, http.MethodGet, "/api/payment-methods", nil, nil, &methods); err != nil {
		return nil, err
	}
	if methods == nil {
		methods = []model.PaymentMethod{}
	}
	return methods, nil
}
