package infrastructure

import (
	"sort"
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

// MockGoalRepository is an in-memory stand-in used by service and
// handler tests.
type MockGoalRepository struct {
	Goals []domain.Goal
}

func (m *MockGoalRepository) FindAll() ([]domain.Goal, error) {
	goals := make([]domain.Goal, len(m.Goals))
	copy(goals, m.Goals)
	sort.SliceStable(goals, func(i, j int) bool {
		// deadline ascending, undated goals last
		di, dj := goals[i].Deadline, goals[j].Deadline
		switch {
		case di != nil && dj != nil && *di != *dj:
			return *di < *dj
		case di != nil && dj == nil:
			return true
		case di == nil && dj != nil:
			return false
		}
		return goals[i].CreatedAt.After(goals[j].CreatedAt)
	})
	return goals, nil
}

func (m *MockGoalRepository) FindByID(goalID int) (*domain.Goal, error) {
	for _, goal := range m.Goals {
		if goal.ID == goalID {
			found := goal
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockGoalRepository) Save(goal domain.Goal) (*domain.Goal, error) {
	goal.ID = m.maxID() + 1
	goal.CreatedAt = time.Now()
	goal.UpdatedAt = goal.CreatedAt
	m.Goals = append(m.Goals, goal)
	return &goal, nil
}

func (m *MockGoalRepository) Update(goal domain.Goal) (*domain.Goal, error) {
	for i, existing := range m.Goals {
		if existing.ID == goal.ID {
			goal.CreatedAt = existing.CreatedAt
			goal.UpdatedAt = time.Now()
			m.Goals[i] = goal
			return &goal, nil
		}
	}
	return nil, nil
}

func (m *MockGoalRepository) Delete(goalID int) error {
	for i, goal := range m.Goals {
		if goal.ID == goalID {
			m.Goals = append(m.Goals[:i], m.Goals[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockGoalRepository) maxID() int {
	max := 0
	for _, goal := range m.Goals {
		if goal.ID > max {
			max = goal.ID
		}
	}
	return max
}
