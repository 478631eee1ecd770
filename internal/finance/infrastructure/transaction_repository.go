package infrastructure

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Dates are projected back to YYYY-MM-DD strings at the boundary; the
// month filter compares the same representation the engine does.
const selectTransaction = `
	SELECT
		t.id, t.amount, t.type, t.category_id,
		COALESCE(t.description, ''), to_char(t.date, 'YYYY-MM-DD'),
		t.created_at, t.updated_at,
		COALESCE(c.name, ''), COALESCE(c.color, ''), COALESCE(c.icon, '')
	FROM transactions t
	LEFT JOIN categories c ON t.category_id = c.id`

func scanTransaction(row interface{ Scan(...interface{}) error }) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := row.Scan(
		&transaction.ID, &transaction.Amount, &transaction.Type, &transaction.CategoryID,
		&transaction.Description, &transaction.Date,
		&transaction.CreatedAt, &transaction.UpdatedAt,
		&transaction.CategoryName, &transaction.CategoryColor, &transaction.CategoryIcon,
	)
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *TransactionRepository) FindAll(filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query := selectTransaction + ` WHERE 1=1`
	var args []interface{}

	if filter.Month != "" {
		args = append(args, filter.Month)
		query += ` AND to_char(t.date, 'YYYY-MM') = $` + strconv.Itoa(len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += ` AND t.type = $` + strconv.Itoa(len(args))
	}
	if filter.CategoryID > 0 {
		args = append(args, filter.CategoryID)
		query += ` AND t.category_id = $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY t.date DESC, t.created_at DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) FindByMonth(month string) ([]domain.Transaction, error) {
	return r.FindAll(domain.TransactionFilter{Month: month})
}

func (r *TransactionRepository) FindByID(transactionID int) (*domain.Transaction, error) {
	transaction, err := scanTransaction(r.db.QueryRow(selectTransaction+` WHERE t.id = $1`, transactionID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

func (r *TransactionRepository) Save(transaction domain.Transaction) (*domain.Transaction, error) {
	var id int
	err := r.db.QueryRow(
		`INSERT INTO transactions (amount, type, category_id, description, date)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5::date)
		 RETURNING id`,
		transaction.Amount, transaction.Type, transaction.CategoryID, transaction.Description, transaction.Date,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *TransactionRepository) Update(transaction domain.Transaction) (*domain.Transaction, error) {
	_, err := r.db.Exec(
		`UPDATE transactions
		 SET amount = $1, type = $2, category_id = $3, description = NULLIF($4, ''), date = $5::date, updated_at = now()
		 WHERE id = $6`,
		transaction.Amount, transaction.Type, transaction.CategoryID, transaction.Description, transaction.Date, transaction.ID,
	)
	if err != nil {
		return nil, err
	}
	return r.FindByID(transaction.ID)
}

func (r *TransactionRepository) Delete(transactionID int) error {
	_, err := r.db.Exec(`DELETE FROM transactions WHERE id = $1`, transactionID)
	return err
}
