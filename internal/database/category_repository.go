package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/seekayel/habla-espanol-ext/pkg/models"
)

// CategoryRepository handles database operations for categories
type CategoryRepository struct{}

// NewCategoryRepository creates a new repository instance
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

// GetAll returns all categories sorted by name
func (r *CategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := DB.SelectContext(ctx, &categories, "SELECT * FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// GetByName returns a category by its unique name
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := DB.GetContext(ctx, &category, "SELECT * FROM categories WHERE name = $1", name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category %q: %w", name, err)
	}
	return &category, nil
}

// Create inserts a new category and fills in its assigned ID
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if DB.DriverName() == "postgres" {
		err := DB.QueryRowContext(
			ctx,
			"INSERT INTO categories (name) VALUES ($1) RETURNING id, created_at, updated_at",
			category.Name,
		).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}
		return nil
	}

	// SQLite path, no RETURNING
	result, err := DB.ExecContext(ctx, "INSERT INTO categories (name) VALUES ($1)", category.Name)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}
	category.ID = id
	return nil
}
