package infrastructure

import (
	"sort"
	"strings"
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

// MockTransactionRepository is an in-memory stand-in used by service
// and handler tests.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
}

func (m *MockTransactionRepository) FindAll(filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for _, transaction := range m.Transactions {
		if filter.Month != "" && !strings.HasPrefix(transaction.Date, filter.Month) {
			continue
		}
		if filter.Type != "" && transaction.Type != filter.Type {
			continue
		}
		if filter.CategoryID > 0 && transaction.CategoryID != filter.CategoryID {
			continue
		}
		transactions = append(transactions, transaction)
	}
	sort.SliceStable(transactions, func(i, j int) bool {
		if transactions[i].Date != transactions[j].Date {
			return transactions[i].Date > transactions[j].Date
		}
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})
	return transactions, nil
}

func (m *MockTransactionRepository) FindByMonth(month string) ([]domain.Transaction, error) {
	return m.FindAll(domain.TransactionFilter{Month: month})
}

func (m *MockTransactionRepository) FindByID(transactionID int) (*domain.Transaction, error) {
	for _, transaction := range m.Transactions {
		if transaction.ID == transactionID {
			found := transaction
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockTransactionRepository) Save(transaction domain.Transaction) (*domain.Transaction, error) {
	transaction.ID = m.maxID() + 1
	transaction.CreatedAt = time.Now()
	transaction.UpdatedAt = transaction.CreatedAt
	m.Transactions = append(m.Transactions, transaction)
	return &transaction, nil
}

func (m *MockTransactionRepository) Update(transaction domain.Transaction) (*domain.Transaction, error) {
	for i, existing := range m.Transactions {
		if existing.ID == transaction.ID {
			transaction.CreatedAt = existing.CreatedAt
			transaction.UpdatedAt = time.Now()
			m.Transactions[i] = transaction
			return &transaction, nil
		}
	}
	return nil, nil
}

func (m *MockTransactionRepository) Delete(transactionID int) error {
	for i, transaction := range m.Transactions {
		if transaction.ID == transactionID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockTransactionRepository) maxID() int {
	max := 0
	for _, transaction := range m.Transactions {
		if transaction.ID > max {
			max = transaction.ID
		}
	}
	return max
}
