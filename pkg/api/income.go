package api

import (
	"context"
	"fmt"
)

// Income roles the platform reports on.
const (
	RoleCoordinator = "coordinator"
	RoleMarketing   = "marketing"
	RoleTrainer     = "trainer"
)

var incomeRoles = map[string]bool{
	RoleCoordinator: true,
	RoleMarketing:   true,
	RoleTrainer:     true,
}

// IncomeReport is the server-computed earnings summary for one user. All
// aggregation happens server-side; the console only displays it.
type IncomeReport struct {
	UserID   string       `json:"user_id"`
	UserName string       `json:"user_name"`
	Role     string       `json:"role"`
	Total    float64      `json:"total"`
	Items    []IncomeItem `json:"items"`
}

type IncomeItem struct {
	SessionName string  `json:"session_name"`
	SessionDate string  `json:"session_date"`
	Amount      float64 `json:"amount"`
}

func (c *Client) Income(ctx context.Context, role, userID string) (IncomeReport, error) {
	var out IncomeReport
	if !incomeRoles[role] {
		return out, fmt.Errorf("unknown income role: %s", role)
	}
	err := c.getJSON(ctx, "/finance/income/"+role+"/"+userID, nil, &out)
	return out, err
}
