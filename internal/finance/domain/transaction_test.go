package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

func strPtr(s string) *string    { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int          { return &i }

func validTransactionPayload() TransactionPayload {
	return TransactionPayload{
		Amount:     floatPtr(49.99),
		Type:       strPtr(TypeExpense),
		CategoryID: intPtr(3),
		Date:       strPtr("2025-06-15"),
	}
}

func fieldMessages(t *testing.T, err error) map[string]string {
	t.Helper()
	ve, ok := financeErrors.AsValidationErrors(err)
	require.True(t, ok, "expected validation errors, got %v", err)
	messages := make(map[string]string)
	for _, fieldErr := range ve.Errors {
		messages[fieldErr.Field] = fieldErr.Msg
	}
	return messages
}

func TestTransactionPayloadValidate_Valid(t *testing.T) {
	assert.NoError(t, validTransactionPayload().Validate())
}

func TestTransactionPayloadValidate_NegativeAmount(t *testing.T) {
	payload := validTransactionPayload()
	payload.Amount = floatPtr(-10)

	messages := fieldMessages(t, payload.Validate())

	assert.Equal(t, "Amount must be greater than 0", messages["amount"])
	assert.Len(t, messages, 1)
}

func TestTransactionPayloadValidate_ZeroAmount(t *testing.T) {
	payload := validTransactionPayload()
	payload.Amount = floatPtr(0)

	messages := fieldMessages(t, payload.Validate())

	assert.Equal(t, "Amount must be greater than 0", messages["amount"])
}

func TestTransactionPayloadValidate_AccumulatesAllViolations(t *testing.T) {
	messages := fieldMessages(t, TransactionPayload{}.Validate())

	assert.Equal(t, "Amount is required", messages["amount"])
	assert.Equal(t, "Transaction type is required", messages["type"])
	assert.Equal(t, "Category is required", messages["category_id"])
	assert.Equal(t, "Date is required", messages["date"])
	assert.Len(t, messages, 4)
}

func TestTransactionPayloadValidate_BadType(t *testing.T) {
	payload := validTransactionPayload()
	payload.Type = strPtr("transfer")

	messages := fieldMessages(t, payload.Validate())

	assert.Equal(t, "Type must be either income or expense", messages["type"])
}

func TestTransactionPayloadValidate_BadDates(t *testing.T) {
	for _, date := range []string{"15-06-2025", "2025/06/15", "2025-6-5", "2025-13-01", "2025-02-30", "not-a-date"} {
		payload := validTransactionPayload()
		payload.Date = strPtr(date)

		messages := fieldMessages(t, payload.Validate())

		assert.Equal(t, "Date must be in YYYY-MM-DD format", messages["date"], "date %q", date)
	}
}

func TestTransactionPayloadValidate_DescriptionTooLong(t *testing.T) {
	payload := validTransactionPayload()
	payload.Description = strPtr(strings.Repeat("x", 201))

	messages := fieldMessages(t, payload.Validate())

	assert.Equal(t, "Description must be less than 200 characters", messages["description"])

	payload.Description = strPtr(strings.Repeat("x", 200))
	assert.NoError(t, payload.Validate())
}

func TestTransactionPayloadValidate_CategoryMustBePositive(t *testing.T) {
	payload := validTransactionPayload()
	payload.CategoryID = intPtr(0)

	messages := fieldMessages(t, payload.Validate())

	assert.Equal(t, "Category must be selected", messages["category_id"])
}

func TestTransactionPayloadMergeWith(t *testing.T) {
	existing := Transaction{
		Amount:      120.50,
		Type:        TypeExpense,
		CategoryID:  2,
		Description: "groceries",
		Date:        "2025-06-10",
	}

	merged := TransactionPayload{Amount: floatPtr(99.99)}.MergeWith(existing)

	assert.Equal(t, 99.99, *merged.Amount)
	assert.Equal(t, TypeExpense, *merged.Type)
	assert.Equal(t, 2, *merged.CategoryID)
	assert.Equal(t, "groceries", *merged.Description)
	assert.Equal(t, "2025-06-10", *merged.Date)
	assert.NoError(t, merged.Validate())
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("2025-06"))
	assert.False(t, IsValidMonth("2025-6"))
	assert.False(t, IsValidMonth("2025-06-15"))
	assert.False(t, IsValidMonth("june"))
}
