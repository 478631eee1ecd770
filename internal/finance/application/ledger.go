package application

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

// The ledger functions below are pure: they aggregate already-fetched
// collections and never touch the store. All money arithmetic happens
// in integer cents so that the reported balance is exactly
// total_income - total_expense, with a single rounding step on the way
// in and none on the way out.

type MonthlySummary struct {
	TotalIncome      float64 `json:"total_income"`
	TotalExpense     float64 `json:"total_expense"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transaction_count"`
}

type CategoryBreakdownEntry struct {
	CategoryID       int     `json:"category_id"`
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	Color            string  `json:"color"`
	Icon             string  `json:"icon"`
	TransactionCount int     `json:"transaction_count"`
	TotalAmount      float64 `json:"total_amount"`
}

type GoalProgress struct {
	ProgressPercentage float64 `json:"progress_percentage"`
	RemainingAmount    float64 `json:"remaining_amount"`
	DaysRemaining      *int    `json:"days_remaining"`
	IsOverdue          bool    `json:"is_overdue"`
	IsCompleted        bool    `json:"is_completed"`
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func fromCents(cents int64) float64 {
	return float64(cents) / 100
}

func roundTwoDecimalPlaces(value float64) float64 {
	return math.Round(value*100) / 100
}

// matchesMonth compares the stored calendar string against a YYYY-MM
// month, timezone-independent by construction.
func matchesMonth(date, month string) bool {
	return len(month) == 7 && strings.HasPrefix(date, month)
}

// ComputeMonthlySummary aggregates one month of transactions. The
// balance is a single signed sum: income adds, expense subtracts.
// An empty month yields all zeros.
func ComputeMonthlySummary(transactions []domain.Transaction, month string) MonthlySummary {
	var incomeCents, expenseCents, balanceCents int64
	count := 0

	for _, transaction := range transactions {
		if !matchesMonth(transaction.Date, month) {
			continue
		}
		count++
		cents := toCents(transaction.Amount)
		switch transaction.Type {
		case domain.TypeIncome:
			incomeCents += cents
			balanceCents += cents
		case domain.TypeExpense:
			expenseCents += cents
			balanceCents -= cents
		}
	}

	return MonthlySummary{
		TotalIncome:      fromCents(incomeCents),
		TotalExpense:     fromCents(expenseCents),
		Balance:          fromCents(balanceCents),
		TransactionCount: count,
	}
}

// ComputeCategoryBreakdown sums each category's transactions within the
// month. Categories with no activity are omitted on purpose: the
// breakdown shows active categories only. Entries are ordered by total
// descending, ties by category ID ascending.
func ComputeCategoryBreakdown(transactions []domain.Transaction, categories []domain.Category, month string) []CategoryBreakdownEntry {
	totalCents := make(map[int]int64)
	counts := make(map[int]int)

	for _, transaction := range transactions {
		if !matchesMonth(transaction.Date, month) {
			continue
		}
		totalCents[transaction.CategoryID] += toCents(transaction.Amount)
		counts[transaction.CategoryID]++
	}

	breakdown := make([]CategoryBreakdownEntry, 0, len(categories))
	for _, category := range categories {
		if totalCents[category.ID] <= 0 {
			continue
		}
		breakdown = append(breakdown, CategoryBreakdownEntry{
			CategoryID:       category.ID,
			Name:             category.Name,
			Type:             category.Type,
			Color:            category.Color,
			Icon:             category.Icon,
			TransactionCount: counts[category.ID],
			TotalAmount:      fromCents(totalCents[category.ID]),
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		if breakdown[i].TotalAmount != breakdown[j].TotalAmount {
			return breakdown[i].TotalAmount > breakdown[j].TotalAmount
		}
		return breakdown[i].CategoryID < breakdown[j].CategoryID
	})

	return breakdown
}

// ComputeGoalProgress derives the progress view of a goal as of the
// given time. Day math runs at calendar-day granularity: asOf is
// truncated to its date, so days_remaining is always a whole number of
// days and a deadline of "today" counts as zero, not overdue.
func ComputeGoalProgress(goal domain.Goal, asOf time.Time) GoalProgress {
	progress := GoalProgress{
		IsCompleted: goal.CurrentAmount >= goal.TargetAmount,
	}

	// target_amount > 0 is guaranteed by validation; a zero target
	// still must not divide.
	if goal.TargetAmount > 0 {
		progress.ProgressPercentage = roundTwoDecimalPlaces(goal.CurrentAmount * 100 / goal.TargetAmount)
	}

	remaining := roundTwoDecimalPlaces(goal.TargetAmount - goal.CurrentAmount)
	if remaining < 0 {
		remaining = 0
	}
	progress.RemainingAmount = remaining

	if goal.Deadline != nil && *goal.Deadline != "" {
		if deadline, err := time.Parse("2006-01-02", *goal.Deadline); err == nil {
			asOfDay := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
			days := int(math.Ceil(deadline.Sub(asOfDay).Hours() / 24))
			progress.DaysRemaining = &days
			progress.IsOverdue = days < 0
		}
	}

	return progress
}
