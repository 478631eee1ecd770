package application

import (
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) GetAllCategories() ([]domain.Category, error) {
	categories, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(categoryID int) (*domain.Category, error) {
	category, err := s.repo.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, financeErrors.ErrCategoryNotFound
	}
	return category, nil
}

func (s *CategoryService) DoesCategoryExist(categoryID int) (bool, error) {
	return s.repo.ExistsByID(categoryID)
}

func (s *CategoryService) CreateCategory(payload domain.CategoryPayload) (*domain.Category, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Save(payload.ToCategory())
}

func (s *CategoryService) UpdateCategory(categoryID int, payload domain.CategoryPayload) (*domain.Category, error) {
	existing, err := s.GetCategory(categoryID)
	if err != nil {
		return nil, err
	}

	merged := payload.MergeWith(*existing)
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	category := merged.ToCategory()
	category.ID = categoryID
	return s.repo.Update(category)
}

// DeleteCategory refuses to delete a category that is still referenced
// by transactions; the category and its transactions stay untouched.
func (s *CategoryService) DeleteCategory(categoryID int) error {
	if _, err := s.GetCategory(categoryID); err != nil {
		return err
	}

	referencing, err := s.repo.CountTransactions(categoryID)
	if err != nil {
		return err
	}
	if referencing > 0 {
		return financeErrors.ErrCategoryInUse
	}

	return s.repo.Delete(categoryID)
}
