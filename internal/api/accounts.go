package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/moneywise/client-go/internal/model"
)

// Transfer pre-validation errors, reported before any request is issued.
var (
	ErrSameAccount   = errors.New("transfer accounts must differ")
	ErrInvalidAmount = errors.New("transfer amount must be positive")
)

type AccountParams struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency,omitempty"`
}

type TransferParams struct {
	FromAccountID string  `json:"fromAccountId"`
	ToAccountID   string  `json:"toAccountId"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	Description   string  `json:"description,omitempty"`
}

func (c *Client) ListAccounts(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := c.do(ctx, http.MethodGet, "/api/accounts", nil, nil, &accounts); err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []model.Account{}
	}
	return accounts, nil
}

func (c *Client) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	var account model.Account
	if err := c.do(ctx, http.MethodGet, "/api/accounts/"+id, nil, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) CreateAccount(ctx context.Context, params AccountParams) (*model.Account, error) {
	var account model.Account
	if err := c.do(ctx, http.MethodPost, "/api/accounts", nil, params, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) UpdateAccount(ctx context.Context, id string, params AccountParams) (*model.Account, error) {
	var account model.Account
	if err := c.do(ctx, http.MethodPut, "/api/accounts/"+id, nil, params, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/accounts/"+id, nil, nil, nil)
}

// Transfer moves funds between two of the user's accounts. The server
// enforces the same invariants, but they are checked here first to avoid
// the round trip.
func (c *Client) Transfer(ctx context.Context, params TransferParams) (*model.Transfer, error) {
	if params.FromAccountID == params.ToAccountID {
		return nil, ErrSameAccount
	}
	if params.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var transfer model.Transfer
	if err := c.do(ctx, http.MethodPost, "/api/accounts/transfer", nil, params, &transfer); err != nil {
		return nil, err
	}
	return &transfer, nil
}

func (c *Client) ListTransfers(ctx context.Context) ([]model.Transfer, error) {
	var transfers []model.Transfer
	if err := c.do(ctx, http.MethodGet, "/api/transfers", nil, nil, &transfers); err != nil {
		return nil, err
	}
	if transfers == nil {
		transfers = []model.Transfer{}
	}
	return transfers, nil
}
