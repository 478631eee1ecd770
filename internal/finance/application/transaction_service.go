package application

import (
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

// CategoryServiceInterface is the slice of the category service the
// transaction service needs: the existence check behind the one
// side-effecting validation rule, and the category list for the
// monthly breakdown.
type CategoryServiceInterface interface {
	DoesCategoryExist(categoryID int) (bool, error)
	GetAllCategories() ([]domain.Category, error)
}

type TransactionService struct {
	repo            domain.TransactionRepository
	categoryService CategoryServiceInterface
}

func NewTransactionService(repo domain.TransactionRepository, categoryService CategoryServiceInterface) *TransactionService {
	return &TransactionService{repo: repo, categoryService: categoryService}
}

// MonthlySummaryReport is the payload of the summary endpoint: the
// month's totals plus the per-category breakdown.
type MonthlySummaryReport struct {
	Month             string                   `json:"month"`
	Summary           MonthlySummary           `json:"summary"`
	CategoryBreakdown []CategoryBreakdownEntry `json:"category_breakdown"`
}

func (s *TransactionService) GetTransactions(filter domain.TransactionFilter) ([]domain.Transaction, error) {
	transactions, err := s.repo.FindAll(filter)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

func (s *TransactionService) GetTransaction(transactionID int) (*domain.Transaction, error) {
	transaction, err := s.repo.FindByID(transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, financeErrors.ErrTransactionNotFound
	}
	return transaction, nil
}

func (s *TransactionService) CreateTransaction(payload domain.TransactionPayload) (*domain.Transaction, error) {
	if payload.Date == nil || *payload.Date == "" {
		today := time.Now().Format("2006-01-02")
		payload.Date = &today
	}

	if err := payload.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.categoryService.DoesCategoryExist(*payload.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, financeErrors.ErrCategoryNotFound
	}

	transaction := payload.ToTransaction()
	transaction.RoundToTwoDecimalPlaces()
	return s.repo.Save(transaction)
}

func (s *TransactionService) UpdateTransaction(transactionID int, payload domain.TransactionPayload) (*domain.Transaction, error) {
	existing, err := s.GetTransaction(transactionID)
	if err != nil {
		return nil, err
	}

	merged := payload.MergeWith(*existing)
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.categoryService.DoesCategoryExist(*merged.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, financeErrors.ErrCategoryNotFound
	}

	transaction := merged.ToTransaction()
	transaction.ID = transactionID
	transaction.RoundToTwoDecimalPlaces()
	return s.repo.Update(transaction)
}

func (s *TransactionService) DeleteTransaction(transactionID int) error {
	if _, err := s.GetTransaction(transactionID); err != nil {
		return err
	}
	return s.repo.Delete(transactionID)
}

// GetMonthlySummary fetches the month's transactions once and derives
// both the summary and the category breakdown through the ledger
// functions.
func (s *TransactionService) GetMonthlySummary(month string) (*MonthlySummaryReport, error) {
	transactions, err := s.repo.FindByMonth(month)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryService.GetAllCategories()
	if err != nil {
		return nil, err
	}

	return &MonthlySummaryReport{
		Month:             month,
		Summary:           ComputeMonthlySummary(transactions, month),
		CategoryBreakdown: ComputeCategoryBreakdown(transactions, categories, month),
	}, nil
}
