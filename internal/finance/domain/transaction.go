package domain

import (
	"math"
	"regexp"
	"time"

	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

// Dates cross every boundary as plain calendar strings; month filters
// match on the YYYY-MM prefix, never on parsed instants.
var (
	dateFormatRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthFormatRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

func IsValidDate(date string) bool {
	if !dateFormatRegex.MatchString(date) {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

func IsValidMonth(month string) bool {
	return monthFormatRegex.MatchString(month)
}

type Transaction struct {
	ID          int       `json:"id"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"` // "income" or "expense"
	CategoryID  int       `json:"category_id"`
	Description string    `json:"description"`
	Date        string    `json:"date"` // YYYY-MM-DD
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined category fields, populated on reads only.
	CategoryName  string `json:"category_name,omitempty"`
	CategoryColor string `json:"category_color,omitempty"`
	CategoryIcon  string `json:"category_icon,omitempty"`
}

func (t *Transaction) RoundToTwoDecimalPlaces() {
	t.Amount = math.Round(t.Amount*100) / 100
}

// TransactionPayload is the wire shape for transaction create/update
// requests.
type TransactionPayload struct {
	Amount      *float64 `json:"amount"`
	Type        *string  `json:"type"`
	CategoryID  *int     `json:"category_id"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
}

func (p TransactionPayload) MergeWith(existing Transaction) TransactionPayload {
	merged := p
	if merged.Amount == nil {
		merged.Amount = &existing.Amount
	}
	if merged.Type == nil {
		merged.Type = &existing.Type
	}
	if merged.CategoryID == nil {
		merged.CategoryID = &existing.CategoryID
	}
	if merged.Description == nil {
		merged.Description = &existing.Description
	}
	if merged.Date == nil {
		merged.Date = &existing.Date
	}
	return merged
}

// Validate runs the full rule chain and reports every violation at
// once, one entry per offending field. The category-existence rule is
// not checked here: it needs the category store and lives in the
// service layer.
func (p TransactionPayload) Validate() error {
	ve := &financeErrors.ValidationErrors{}

	if p.Amount == nil {
		ve.Add("amount", "Amount is required")
	} else if math.IsNaN(*p.Amount) || math.IsInf(*p.Amount, 0) {
		ve.Add("amount", "Amount must be a valid number")
	} else if *p.Amount <= 0 {
		ve.Add("amount", "Amount must be greater than 0")
	}

	if p.Type == nil {
		ve.Add("type", "Transaction type is required")
	} else if !IsValidTransactionType(*p.Type) {
		ve.Add("type", "Type must be either income or expense")
	}

	if p.CategoryID == nil {
		ve.Add("category_id", "Category is required")
	} else if *p.CategoryID <= 0 {
		ve.Add("category_id", "Category must be selected")
	}

	if p.Description != nil && len([]rune(*p.Description)) > 200 {
		ve.Add("description", "Description must be less than 200 characters")
	}

	if p.Date == nil {
		ve.Add("date", "Date is required")
	} else if !IsValidDate(*p.Date) {
		ve.Add("date", "Date must be in YYYY-MM-DD format")
	}

	return ve.ErrOrNil()
}

// ToTransaction builds the entity from a fully merged, validated
// payload.
func (p TransactionPayload) ToTransaction() Transaction {
	transaction := Transaction{
		Amount:     *p.Amount,
		Type:       *p.Type,
		CategoryID: *p.CategoryID,
		Date:       *p.Date,
	}
	if p.Description != nil {
		transaction.Description = *p.Description
	}
	return transaction
}

// TransactionFilter narrows list queries; zero values mean "no filter".
type TransactionFilter struct {
	Month      string // YYYY-MM
	Type       string
	CategoryID int
}

type TransactionRepository interface {
	FindAll(filter TransactionFilter) ([]Transaction, error)
	FindByID(transactionID int) (*Transaction, error)
	FindByMonth(month string) ([]Transaction, error)
	Save(transaction Transaction) (*Transaction, error)
	Update(transaction Transaction) (*Transaction, error)
	Delete(transactionID int) error
}
