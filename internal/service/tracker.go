// Package service aggregates resource calls into the composite views the
// front-ends render. It keeps no state between calls: every view load
// re-fetches from the API.
package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/moneywise/client-go/internal/api"
	"github.com/moneywise/client-go/internal/model"
)

// Backend is the slice of the API client the tracker consumes.
type Backend interface {
	ListAccounts(ctx context.Context) ([]model.Account, error)
	ListCreditCards(ctx context.Context) ([]model.CreditCard, error)
	ListPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error)
	ListTransfers(ctx context.Context) ([]model.Transfer, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListBudgets(ctx context.Context) ([]model.Budget, error)
	ListExpenses(ctx context.Context, filter api.ExpenseFilter) ([]model.Expense, error)
	ListIncome(ctx context.Context, filter api.IncomeFilter) ([]model.Income, error)
	AddExpense(ctx context.Context, params api.ExpenseParams) (*model.Expense, error)
	AddIncome(ctx context.Context, params api.IncomeParams) (*model.Income, error)
	CreateCategory(ctx context.Context, params api.CategoryParams) (*model.Category, error)
}

type Tracker struct {
	backend Backend
}

func NewTracker(backend Backend) *Tracker {
	return &Tracker{backend: backend}
}

// Dashboard is the composite accounts-overview view.
type Dashboard struct {
	Accounts        []model.Account
	CreditCards     []model.CreditCard
	PaymentMethods  []model.PaymentMethod
	RecentTransfers []model.Transfer
}

// TotalBalance sums plain account balances; card debt is shown separately.
func (d *Dashboard) TotalBalance() float64 {
	total := 0.0
	for _, account := range d.Accounts {
		total += account.Balance
	}
	return total
}

// Dashboard fetches the view's four dependencies concurrently. The batch is
// all-or-nothing: if any fetch fails, no partial data is returned.
func (t *Tracker) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		accounts, err := t.backend.ListAccounts(ctx)
		if err != nil {
			return fmt.Errorf("accounts: %w", err)
		}
		d.Accounts = accounts
		return nil
	})
	g.Go(func() error {
		cards, err := t.backend.ListCreditCards(ctx)
		if err != nil {
			return fmt.Errorf("credit cards: %w", err)
		}
		d.CreditCards = cards
		return nil
	})
	g.Go(func() error {
		methods, err := t.backend.ListPaymentMethods(ctx)
		if err != nil {
			return fmt.Errorf("payment methods: %w", err)
		}
		d.PaymentMethods = methods
		return nil
	})
	g.Go(func() error {
		transfers, err := t.backend.ListTransfers(ctx)
		if err != nil {
			return fmt.Errorf("transfers: %w", err)
		}
		if len(transfers) > 5 {
			transfers = transfers[:5]
		}
		d.RecentTransfers = transfers
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}

// AddExpense records a spend dated today.
func (t *Tracker) AddExpense(ctx context.Context, accountID, categoryID string, amount float64, description string) (*model.Expense, error) {
	return t.backend.AddExpense(ctx, api.ExpenseParams{
		AccountID:   accountID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: description,
		Date:        time.Now().Format("2006-01-02"),
	})
}

// AddIncome records a received payment dated today.
func (t *Tracker) AddIncome(ctx context.Context, accountID, sourceID string, amount float64, description string) (*model.Income, error) {
	return t.backend.AddIncome(ctx, api.IncomeParams{
		AccountID:   accountID,
		SourceID:    sourceID,
		Amount:      amount,
		Description: description,
		Date:        time.Now().Format("2006-01-02"),
	})
}

func (t *Tracker) Categories(ctx context.Context) ([]model.Category, error) {
	return t.backend.ListCategories(ctx)
}

func (t *Tracker) CreateCategory(ctx context.Context, name, kind string) (*model.Category, error) {
	return t.backend.CreateCategory(ctx, api.CategoryParams{Name: name, Type: kind})
}

func (t *Tracker) Budgets(ctx context.Context) ([]model.Budget, error) {
	return t.backend.ListBudgets(ctx)
}
