package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

const selectCategory = `SELECT id, name, type, color, icon, created_at FROM categories`

func (r *CategoryRepository) FindAll() ([]domain.Category, error) {
	rows, err := r.db.Query(selectCategory + ` ORDER BY type, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Type, &category.Color, &category.Icon, &category.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(categoryID int) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRow(selectCategory+` WHERE id = $1`, categoryID).
		Scan(&category.ID, &category.Name, &category.Type, &category.Color, &category.Icon, &category.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) ExistsByID(categoryID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, categoryID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CategoryRepository) Save(category domain.Category) (*domain.Category, error) {
	err := r.db.QueryRow(
		`INSERT INTO categories (name, type, color, icon) VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		category.Name, category.Type, category.Color, category.Icon,
	).Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Update(category domain.Category) (*domain.Category, error) {
	err := r.db.QueryRow(
		`UPDATE categories SET name = $1, type = $2, color = $3, icon = $4 WHERE id = $5 RETURNING created_at`,
		category.Name, category.Type, category.Color, category.Icon, category.ID,
	).Scan(&category.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Delete(categoryID int) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, categoryID)
	return err
}

func (r *CategoryRepository) CountTransactions(categoryID int) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM transactions WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
