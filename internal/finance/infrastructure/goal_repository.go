package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

type GoalRepository struct {
	db *sql.DB
}

func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

const selectGoal = `
	SELECT id, name, target_amount, current_amount, to_char(deadline, 'YYYY-MM-DD'), created_at, updated_at
	FROM goals`

func scanGoal(row interface{ Scan(...interface{}) error }) (*domain.Goal, error) {
	var goal domain.Goal
	var deadline sql.NullString
	err := row.Scan(&goal.ID, &goal.Name, &goal.TargetAmount, &goal.CurrentAmount, &deadline, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if deadline.Valid {
		goal.Deadline = &deadline.String
	}
	return &goal, nil
}

func (r *GoalRepository) FindAll() ([]domain.Goal, error) {
	rows, err := r.db.Query(selectGoal + ` ORDER BY deadline ASC NULLS LAST, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *goal)
	}
	return goals, rows.Err()
}

func (r *GoalRepository) FindByID(goalID int) (*domain.Goal, error) {
	goal, err := scanGoal(r.db.QueryRow(selectGoal+` WHERE id = $1`, goalID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return goal, nil
}

func (r *GoalRepository) Save(goal domain.Goal) (*domain.Goal, error) {
	err := r.db.QueryRow(
		`INSERT INTO goals (name, target_amount, current_amount, deadline)
		 VALUES ($1, $2, $3, $4::date)
		 RETURNING id, created_at, updated_at`,
		goal.Name, goal.TargetAmount, goal.CurrentAmount, goal.Deadline,
	).Scan(&goal.ID, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) Update(goal domain.Goal) (*domain.Goal, error) {
	err := r.db.QueryRow(
		`UPDATE goals
		 SET name = $1, target_amount = $2, current_amount = $3, deadline = $4::date, updated_at = now()
		 WHERE id = $5
		 RETURNING created_at, updated_at`,
		goal.Name, goal.TargetAmount, goal.CurrentAmount, goal.Deadline, goal.ID,
	).Scan(&goal.CreatedAt, &goal.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) Delete(goalID int) error {
	_, err := r.db.Exec(`DELETE FROM goals WHERE id = $1`, goalID)
	return err
}
