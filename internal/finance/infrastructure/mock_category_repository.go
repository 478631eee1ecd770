package infrastructure

import (
	"sort"
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

// MockCategoryRepository is an in-memory stand-in used by service and
// handler tests.
type MockCategoryRepository struct {
	Categories   []domain.Category
	Transactions *MockTransactionRepository
}

func (m *MockCategoryRepository) FindAll() ([]domain.Category, error) {
	categories := make([]domain.Category, len(m.Categories))
	copy(categories, m.Categories)
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].Type != categories[j].Type {
			return categories[i].Type < categories[j].Type
		}
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

func (m *MockCategoryRepository) FindByID(categoryID int) (*domain.Category, error) {
	for _, category := range m.Categories {
		if category.ID == categoryID {
			found := category
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepository) ExistsByID(categoryID int) (bool, error) {
	category, _ := m.FindByID(categoryID)
	return category != nil, nil
}

func (m *MockCategoryRepository) Save(category domain.Category) (*domain.Category, error) {
	category.ID = m.maxID() + 1
	category.CreatedAt = time.Now()
	m.Categories = append(m.Categories, category)
	return &category, nil
}

func (m *MockCategoryRepository) Update(category domain.Category) (*domain.Category, error) {
	for i, existing := range m.Categories {
		if existing.ID == category.ID {
			category.CreatedAt = existing.CreatedAt
			m.Categories[i] = category
			return &category, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepository) Delete(categoryID int) error {
	for i, category := range m.Categories {
		if category.ID == categoryID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockCategoryRepository) CountTransactions(categoryID int) (int, error) {
	if m.Transactions == nil {
		return 0, nil
	}
	count := 0
	for _, transaction := range m.Transactions.Transactions {
		if transaction.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (m *MockCategoryRepository) maxID() int {
	max := 0
	for _, category := range m.Categories {
		if category.ID > max {
			max = category.ID
		}
	}
	return max
}
