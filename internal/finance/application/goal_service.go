package application

import (
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type GoalService struct {
	repo domain.GoalRepository
	now  func() time.Time
}

func NewGoalService(repo domain.GoalRepository) *GoalService {
	return &GoalService{repo: repo, now: time.Now}
}

// GoalWithProgress is the list/detail view: the stored goal decorated
// with its derived progress figures.
type GoalWithProgress struct {
	domain.Goal
	ProgressPercentage float64 `json:"progress_percentage"`
	RemainingAmount    float64 `json:"remaining_amount"`
}

// GoalProgressReport is the progress endpoint payload: all goal fields
// plus the full derived progress view.
type GoalProgressReport struct {
	domain.Goal
	GoalProgress
}

func decorate(goal domain.Goal, asOf time.Time) GoalWithProgress {
	progress := ComputeGoalProgress(goal, asOf)
	return GoalWithProgress{
		Goal:               goal,
		ProgressPercentage: progress.ProgressPercentage,
		RemainingAmount:    progress.RemainingAmount,
	}
}

func (s *GoalService) GetAllGoals() ([]GoalWithProgress, error) {
	goals, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	now := s.now()
	decorated := make([]GoalWithProgress, 0, len(goals))
	for _, goal := range goals {
		decorated = append(decorated, decorate(goal, now))
	}
	return decorated, nil
}

func (s *GoalService) GetGoal(goalID int) (*GoalWithProgress, error) {
	goal, err := s.findGoal(goalID)
	if err != nil {
		return nil, err
	}
	decorated := decorate(*goal, s.now())
	return &decorated, nil
}

func (s *GoalService) GetGoalProgress(goalID int) (*GoalProgressReport, error) {
	goal, err := s.findGoal(goalID)
	if err != nil {
		return nil, err
	}
	return &GoalProgressReport{
		Goal:         *goal,
		GoalProgress: ComputeGoalProgress(*goal, s.now()),
	}, nil
}

func (s *GoalService) CreateGoal(payload domain.GoalPayload) (*GoalWithProgress, error) {
	if payload.CurrentAmount == nil {
		zero := 0.0
		payload.CurrentAmount = &zero
	}

	if err := payload.Validate(s.now()); err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(payload.ToGoal())
	if err != nil {
		return nil, err
	}
	decorated := decorate(*saved, s.now())
	return &decorated, nil
}

func (s *GoalService) UpdateGoal(goalID int, payload domain.GoalPayload) (*GoalWithProgress, error) {
	existing, err := s.findGoal(goalID)
	if err != nil {
		return nil, err
	}

	merged := payload.MergeWith(*existing)
	if err := merged.Validate(s.now()); err != nil {
		return nil, err
	}

	goal := merged.ToGoal()
	goal.ID = goalID
	updated, err := s.repo.Update(goal)
	if err != nil {
		return nil, err
	}
	decorated := decorate(*updated, s.now())
	return &decorated, nil
}

func (s *GoalService) DeleteGoal(goalID int) error {
	if _, err := s.findGoal(goalID); err != nil {
		return err
	}
	return s.repo.Delete(goalID)
}

// GetOverdueGoals returns unfinished goals whose deadline has passed,
// for the daily sweep.
func (s *GoalService) GetOverdueGoals() ([]domain.Goal, error) {
	goals, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	now := s.now()
	var overdue []domain.Goal
	for _, goal := range goals {
		progress := ComputeGoalProgress(goal, now)
		if progress.IsOverdue && !progress.IsCompleted {
			overdue = append(overdue, goal)
		}
	}
	return overdue, nil
}

func (s *GoalService) findGoal(goalID int) (*domain.Goal, error) {
	goal, err := s.repo.FindByID(goalID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, financeErrors.ErrGoalNotFound
	}
	return goal, nil
}
