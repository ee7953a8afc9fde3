package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/seekayel/habla-espanol-ext/pkg/models"
)

// PhraseRepository handles database operations for phrases
type PhraseRepository struct{}

// NewPhraseRepository creates a new repository instance
func NewPhraseRepository() *PhraseRepository {
	return &PhraseRepository{}
}

// GetAll returns every phrase in deck order
func (r *PhraseRepository) GetAll(ctx context.Context) ([]models.Phrase, error) {
	var phrases []models.Phrase
	err := DB.SelectContext(ctx, &phrases, "SELECT * FROM phrases ORDER BY position, id")
	if err != nil {
		return nil, fmt.Errorf("failed to get phrases: %w", err)
	}
	return phrases, nil
}

// GetByID returns a phrase by ID
func (r *PhraseRepository) GetByID(ctx context.Context, id int) (*models.Phrase, error) {
	var phrase models.Phrase
	err := DB.GetContext(ctx, &phrase, "SELECT * FROM phrases WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get phrase %d: %w", id, err)
	}
	return &phrase, nil
}

// GetByCategory returns the phrases of one category in deck order
func (r *PhraseRepository) GetByCategory(ctx context.Context, categoryID int64) ([]models.Phrase, error) {
	var phrases []models.Phrase
	err := DB.SelectContext(ctx, &phrases, "SELECT * FROM phrases WHERE category_id = $1 ORDER BY position, id", categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get phrases by category: %w", err)
	}
	return phrases, nil
}

// Create inserts a new phrase and fills in its assigned ID
func (r *PhraseRepository) Create(ctx context.Context, phrase *models.Phrase) error {
	if DB.DriverName() == "postgres" {
		query := `
			INSERT INTO phrases (spanish, english, category_id, image_url, position)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at
		`
		err := DB.QueryRowContext(
			ctx,
			query,
			phrase.Spanish,
			phrase.English,
			phrase.CategoryID,
			phrase.ImageURL,
			phrase.Position,
		).Scan(&phrase.ID, &phrase.CreatedAt, &phrase.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create phrase: %w", err)
		}
		return nil
	}

	// SQLite path, no RETURNING
	result, err := DB.ExecContext(
		ctx,
		`INSERT INTO phrases (spanish, english, category_id, image_url, position)
		 VALUES ($1, $2, $3, $4, $5)`,
		phrase.Spanish,
		phrase.English,
		phrase.CategoryID,
		phrase.ImageURL,
		phrase.Position,
	)
	if err != nil {
		return fmt.Errorf("failed to create phrase: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}
	phrase.ID = int(id)
	return nil
}

// Update modifies an existing phrase
func (r *PhraseRepository) Update(ctx context.Context, phrase *models.Phrase) error {
	_, err := DB.ExecContext(
		ctx,
		`UPDATE phrases SET
			spanish = $1,
			english = $2,
			category_id = $3,
			image_url = $4,
			position = $5,
			updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6`,
		phrase.Spanish,
		phrase.English,
		phrase.CategoryID,
		phrase.ImageURL,
		phrase.Position,
		phrase.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update phrase %d: %w", phrase.ID, err)
	}
	return nil
}

// Search returns phrases whose Spanish or English text contains the query
func (r *PhraseRepository) Search(ctx context.Context, query string) ([]models.Phrase, error) {
	pattern := "%" + query + "%"
	var phrases []models.Phrase
	err := DB.SelectContext(
		ctx,
		&phrases,
		`SELECT * FROM phrases
		 WHERE LOWER(spanish) LIKE LOWER($1) OR LOWER(english) LIKE LOWER($2)
		 ORDER BY position, id`,
		pattern,
		pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search phrases: %w", err)
	}
	return phrases, nil
}

// CountAll returns the number of phrases in the deck
func (r *PhraseRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM phrases")
	if err != nil {
		return 0, fmt.Errorf("failed to count phrases: %w", err)
	}
	return count, nil
}
