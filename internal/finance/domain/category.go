package domain

import (
	"strings"
	"time"

	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Defaults applied when a category is created without color or icon.
const (
	DefaultCategoryColor = "#3b82f6"
	DefaultCategoryIcon  = "💰"
)

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TypeIncome || transactionType == TypeExpense
}

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"` // "income" or "expense"
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryPayload is the wire shape for category create/update
// requests. Pointer fields distinguish "absent" from zero values so
// partial updates can merge with the stored record.
type CategoryPayload struct {
	Name  *string `json:"name"`
	Type  *string `json:"type"`
	Color *string `json:"color"`
	Icon  *string `json:"icon"`
}

// MergeWith fills every unset field from the existing record, so an
// update can never drop a field into an invalid state by omission.
func (p CategoryPayload) MergeWith(existing Category) CategoryPayload {
	merged := p
	if merged.Name == nil {
		merged.Name = &existing.Name
	}
	if merged.Type == nil {
		merged.Type = &existing.Type
	}
	if merged.Color == nil {
		merged.Color = &existing.Color
	}
	if merged.Icon == nil {
		merged.Icon = &existing.Icon
	}
	return merged
}

func (p CategoryPayload) Validate() error {
	ve := &financeErrors.ValidationErrors{}

	if p.Name == nil || strings.TrimSpace(*p.Name) == "" {
		ve.Add("name", "Name is required")
	}

	if p.Type == nil {
		ve.Add("type", "Type is required")
	} else if !IsValidTransactionType(*p.Type) {
		ve.Add("type", `Type must be either "income" or "expense"`)
	}

	return ve.ErrOrNil()
}

// ToCategory builds the entity from a validated payload, applying
// create defaults for color and icon.
func (p CategoryPayload) ToCategory() Category {
	category := Category{
		Name:  strings.TrimSpace(*p.Name),
		Type:  *p.Type,
		Color: DefaultCategoryColor,
		Icon:  DefaultCategoryIcon,
	}
	if p.Color != nil && *p.Color != "" {
		category.Color = *p.Color
	}
	if p.Icon != nil && *p.Icon != "" {
		category.Icon = *p.Icon
	}
	return category
}

type CategoryRepository interface {
	FindAll() ([]Category, error)
	FindByID(categoryID int) (*Category, error)
	ExistsByID(categoryID int) (bool, error)
	Save(category Category) (*Category, error)
	Update(category Category) (*Category, error)
	Delete(categoryID int) error
	CountTransactions(categoryID int) (int, error)
}
