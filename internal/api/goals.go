package api

import (
	"context"
	"net/http"

	"github.com/moneywise/client-go/internal/model"
)

type SavingsGoalParams struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"targetAmount"`
	Deadline     string  `json:"deadline,omitempty"`
}

type contributionRequest struct {
	AccountID string  `json:"accountId"`
	Amount    float64 `json:"amount"`
}

type withdrawalRequest struct {
	Amount float64 `json:"amount"`
}

func (c *Client) ListSavingsGoals(ctx context.Context) ([]model.SavingsGoal, error) {
	var goals []model.SavingsGoal
	if err := c.do(ctx, http.MethodGet, "/api/savings-goals", nil, nil, &goals); err != nil {
		return nil, err
	}
	if goals == nil {
		goals = []model.SavingsGoal{}
	}
	return goals, nil
}

func (c *Client) CreateSavingsGoal(ctx context.Context, params SavingsGoalParams) (*model.SavingsGoal, error) {
	var goal model.SavingsGoal
	if err := c.do(ctx, http.MethodPost, "/api/savings-goals", nil, params, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (c *Client) DeleteSavingsGoal(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/savings-goals/"+id, nil, nil, nil)
}

// ContributeToGoal records a contribution from a specific account into a
// goal and returns the created contribution record.
func (c *Client) ContributeToGoal(ctx context.Context, goalID, accountID string, amount float64) (*model.GoalContribution, error) {
	var contribution model.GoalContribution
	body := contributionRequest{AccountID: accountID, Amount: amount}
	if err := c.do(ctx, http.MethodPost, "/api/savings-goals/"+goalID+"/contributions", nil, body, &contribution); err != nil {
		return nil, err
	}
	return &contribution, nil
}

// WithdrawFromGoal takes money back out of a goal. The wire contract only
// carries an amount; unlike contributions there is no account selection.
func (c *Client) WithdrawFromGoal(ctx context.Context, goalID string, amount float64) error {
	return c.do(ctx, http.MethodPost, "/api/savings-goals/"+goalID+"/withdraw", nil, withdrawalRequest{Amount: amount}, nil)
}
