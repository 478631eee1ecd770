package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
	"github.com/sebuszqo/FinanceTracker/internal/finance/infrastructure"
)

func strPtr(s string) *string      { return &s }
func floatPtr(f float64) *float64  { return &f }
func intPtr(i int) *int            { return &i }

func newCategoryFixture() (*CategoryService, *infrastructure.MockCategoryRepository, *infrastructure.MockTransactionRepository) {
	transactionRepo := &infrastructure.MockTransactionRepository{}
	categoryRepo := &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{
			{ID: 1, Name: "Salary", Type: domain.TypeIncome, Color: "#22c55e", Icon: "💵"},
			{ID: 2, Name: "Food", Type: domain.TypeExpense, Color: "#f97316", Icon: "🍜"},
		},
		Transactions: transactionRepo,
	}
	return NewCategoryService(categoryRepo), categoryRepo, transactionRepo
}

func TestCategoryService_GetAllCategories(t *testing.T) {
	service, _, _ := newCategoryFixture()

	categories, err := service.GetAllCategories()

	require.NoError(t, err)
	require.Len(t, categories, 2)
	// ordered by type then name, so expense comes first
	assert.Equal(t, "Food", categories[0].Name)
	assert.Equal(t, "Salary", categories[1].Name)
}

func TestCategoryService_GetCategory_NotFound(t *testing.T) {
	service, _, _ := newCategoryFixture()

	_, err := service.GetCategory(99)

	assert.ErrorIs(t, err, financeErrors.ErrCategoryNotFound)
}

func TestCategoryService_CreateCategory(t *testing.T) {
	service, repo, _ := newCategoryFixture()

	created, err := service.CreateCategory(domain.CategoryPayload{
		Name: strPtr("Books"),
		Type: strPtr(domain.TypeExpense),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
	assert.Equal(t, domain.DefaultCategoryColor, created.Color)
	assert.Equal(t, domain.DefaultCategoryIcon, created.Icon)
	assert.Len(t, repo.Categories, 3)
}

func TestCategoryService_CreateCategory_Invalid(t *testing.T) {
	service, repo, _ := newCategoryFixture()

	_, err := service.CreateCategory(domain.CategoryPayload{Name: strPtr("Books")})

	assert.True(t, financeErrors.IsValidationErrors(err))
	assert.Len(t, repo.Categories, 2)
}

func TestCategoryService_UpdateCategory_PartialKeepsRest(t *testing.T) {
	service, _, _ := newCategoryFixture()

	updated, err := service.UpdateCategory(2, domain.CategoryPayload{Name: strPtr("Dining")})

	require.NoError(t, err)
	assert.Equal(t, "Dining", updated.Name)
	assert.Equal(t, domain.TypeExpense, updated.Type)
	assert.Equal(t, "#f97316", updated.Color)
	assert.Equal(t, "🍜", updated.Icon)
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	service, repo, _ := newCategoryFixture()

	require.NoError(t, service.DeleteCategory(2))
	assert.Len(t, repo.Categories, 1)
}

func TestCategoryService_DeleteCategory_BlockedWhenInUse(t *testing.T) {
	service, categoryRepo, transactionRepo := newCategoryFixture()
	transactionRepo.Transactions = []domain.Transaction{
		{ID: 1, Amount: 50, Type: domain.TypeExpense, CategoryID: 2, Date: "2025-06-01"},
	}

	err := service.DeleteCategory(2)

	assert.ErrorIs(t, err, financeErrors.ErrCategoryInUse)
	// nothing was deleted
	assert.Len(t, categoryRepo.Categories, 2)
	assert.Len(t, transactionRepo.Transactions, 1)
}

func TestCategoryService_DeleteCategory_NotFound(t *testing.T) {
	service, _, _ := newCategoryFixture()

	assert.ErrorIs(t, service.DeleteCategory(42), financeErrors.ErrCategoryNotFound)
}
