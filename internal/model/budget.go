package model

type Budget struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	CategoryID string  `json:"categoryId"`
	Amount     float64 `json:"amount"`
	Spent      float64 `json:"spent,omitempty"`
	Period     string  `json:"period"` // monthly, weekly, yearly
	StartDate  string  `json:"startDate,omitempty"`
	EndDate    string  `json:"endDate,omitempty"`
}

type SavingsGoal struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      string  `json:"deadline,omitempty"`
}

// GoalContribution is returned when money is moved from an account into a
// savings goal.
type GoalContribution struct {
	ID        string  `json:"id"`
	GoalID    string  `json:"goalId"`
	AccountID string  `json:"accountId"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
}
