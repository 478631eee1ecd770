package domain

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type Goal struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	Deadline      *string   `json:"deadline"` // YYYY-MM-DD, nil when none
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GoalPayload is the wire shape for goal create/update requests.
type GoalPayload struct {
	Name          *string  `json:"name"`
	TargetAmount  *float64 `json:"target_amount"`
	CurrentAmount *float64 `json:"current_amount"`
	Deadline      *string  `json:"deadline"`
}

func (p GoalPayload) MergeWith(existing Goal) GoalPayload {
	merged := p
	if merged.Name == nil {
		merged.Name = &existing.Name
	}
	if merged.TargetAmount == nil {
		merged.TargetAmount = &existing.TargetAmount
	}
	if merged.CurrentAmount == nil {
		merged.CurrentAmount = &existing.CurrentAmount
	}
	if merged.Deadline == nil {
		merged.Deadline = existing.Deadline
	}
	return merged
}

// Validate runs the goal rule chain against the given calendar day
// (normally the validating process's local today). Primitive field
// checks accumulate independently; the cross-field current-vs-target
// rule only runs when both amounts passed their numeric checks.
func (p GoalPayload) Validate(today time.Time) error {
	ve := &financeErrors.ValidationErrors{}

	if p.Name == nil || strings.TrimSpace(*p.Name) == "" {
		ve.Add("name", "Goal name is required")
	} else if utf8.RuneCountInString(strings.TrimSpace(*p.Name)) > 100 {
		ve.Add("name", "Goal name must be less than 100 characters")
	}

	if p.TargetAmount == nil {
		ve.Add("target_amount", "Target amount is required")
	} else if math.IsNaN(*p.TargetAmount) || math.IsInf(*p.TargetAmount, 0) {
		ve.Add("target_amount", "Target amount must be a valid number")
	} else if *p.TargetAmount <= 0 {
		ve.Add("target_amount", "Target amount must be greater than 0")
	}

	if p.CurrentAmount != nil {
		if math.IsNaN(*p.CurrentAmount) || math.IsInf(*p.CurrentAmount, 0) {
			ve.Add("current_amount", "Current amount must be a valid number")
		} else if *p.CurrentAmount < 0 {
			ve.Add("current_amount", "Current amount cannot be negative")
		}
	}

	if p.TargetAmount != nil && p.CurrentAmount != nil &&
		!ve.HasField("target_amount") && !ve.HasField("current_amount") &&
		*p.CurrentAmount > *p.TargetAmount {
		ve.Add("current_amount", "Current amount cannot exceed target amount")
	}

	if p.Deadline != nil && *p.Deadline != "" {
		if !IsValidDate(*p.Deadline) {
			ve.Add("deadline", "Deadline must be in YYYY-MM-DD format")
		} else {
			deadline, _ := time.Parse("2006-01-02", *p.Deadline)
			startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
			if deadline.Before(startOfToday) {
				ve.Add("deadline", "Deadline must be in the future")
			}
		}
	}

	return ve.ErrOrNil()
}

// ToGoal builds the entity from a fully merged, validated payload.
// An empty deadline string means "no deadline".
func (p GoalPayload) ToGoal() Goal {
	goal := Goal{
		Name:         strings.TrimSpace(*p.Name),
		TargetAmount: *p.TargetAmount,
	}
	if p.CurrentAmount != nil {
		goal.CurrentAmount = *p.CurrentAmount
	}
	if p.Deadline != nil && *p.Deadline != "" {
		deadline := *p.Deadline
		goal.Deadline = &deadline
	}
	return goal
}

type GoalRepository interface {
	FindAll() ([]Goal, error)
	FindByID(goalID int) (*Goal, error)
	Save(goal Goal) (*Goal, error)
	Update(goal Goal) (*Goal, error)
	Delete(goalID int) error
}
