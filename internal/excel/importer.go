// Package excel imports phrase decks from spreadsheet files (xlsx or csv).
package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/seekayel/habla-espanol-ext/pkg/models"
)

// PhraseStore is the phrase surface the importer consumes.
type PhraseStore interface {
	GetAll(ctx context.Context) ([]models.Phrase, error)
	Create(ctx context.Context, phrase *models.Phrase) error
	Update(ctx context.Context, phrase *models.Phrase) error
}

// CategoryStore lets the importer create categories on demand.
type CategoryStore interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
}

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath       string // Path to the Excel or CSV file
	SpanishColumn  string // Column with the Spanish phrase
	EnglishColumn  string // Column with the English translation
	CategoryColumn string // Column with the category name
	ImageColumn    string // Column with an optional image URL
	SheetName      string // Name of the sheet to import
	StartRow       int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig(filePath string) ImportConfig {
	return ImportConfig{
		FilePath:       filePath,
		SpanishColumn:  "A",
		EnglishColumn:  "B",
		CategoryColumn: "C",
		ImageColumn:    "D",
		SheetName:      "Sheet1",
		StartRow:       2, // By default, start from the second row (skip header)
	}
}

// DefaultCategory is assigned to rows that leave the category cell empty.
const DefaultCategory = "General"

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed    int
	CategoriesCreated int
	Created           int
	Updated           int
	Skipped           int
	Errors            []string
}

// Importer loads phrase decks into the stores.
type Importer struct {
	phrases    PhraseStore
	categories CategoryStore
}

// NewImporter creates an importer over the given stores.
func NewImporter(phrases PhraseStore, categories CategoryStore) *Importer {
	return &Importer{phrases: phrases, categories: categories}
}

// Import reads the configured file and merges its rows into the deck. Rows
// whose Spanish text already exists in the same category are updated in
// place; new rows are appended to the end of the deck order. Row-level
// problems are collected in the result, not returned as errors.
func (im *Importer) Import(ctx context.Context, config ImportConfig) (*ImportResult, error) {
	state, err := im.loadState(ctx)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return im.importFromCSV(ctx, config, state)
	}
	return im.importFromExcel(ctx, config, state)
}

// importState caches the deck so duplicate checks don't hit the store per row.
type importState struct {
	categoryIDs map[string]int64         // lowercased name -> id
	phrases     map[string]models.Phrase // lowercased spanish + category id -> phrase
	nextPos     int
}

func phraseKey(spanish string, categoryID int64) string {
	return fmt.Sprintf("%s\x00%d", strings.ToLower(strings.TrimSpace(spanish)), categoryID)
}

func (im *Importer) loadState(ctx context.Context) (*importState, error) {
	state := &importState{
		categoryIDs: make(map[string]int64),
		phrases:     make(map[string]models.Phrase),
		nextPos:     1,
	}

	categories, err := im.categories.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get existing categories: %w", err)
	}
	for _, c := range categories {
		state.categoryIDs[strings.ToLower(c.Name)] = c.ID
	}

	phrases, err := im.phrases.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get existing phrases: %w", err)
	}
	for _, p := range phrases {
		state.phrases[phraseKey(p.Spanish, p.CategoryID)] = p
		if p.Position >= state.nextPos {
			state.nextPos = p.Position + 1
		}
	}

	return state, nil
}

// importFromExcel imports phrases from an Excel file
func (im *Importer) importFromExcel(ctx context.Context, config ImportConfig, state *importState) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	for i, row := range rows {
		// Skip header rows
		if i < config.StartRow-1 {
			continue
		}
		im.processRow(ctx, row, config, state, result, i+1)
	}
	return result, nil
}

// importFromCSV imports phrases from a CSV file with the same column layout
func (im *Importer) importFromCSV(ctx context.Context, config ImportConfig, state *importState) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	result := &ImportResult{Errors: make([]string, 0)}
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}

		rowNum++
		if rowNum < config.StartRow {
			continue
		}
		im.processRow(ctx, row, config, state, result, rowNum)
	}
	return result, nil
}

// processRow merges a single data row into the deck.
func (im *Importer) processRow(ctx context.Context, row []string, config ImportConfig, state *importState, result *ImportResult, rowNum int) {
	spanish := cellValue(row, config.SpanishColumn)
	english := cellValue(row, config.EnglishColumn)
	categoryName := cellValue(row, config.CategoryColumn)
	imageURL := cellValue(row, config.ImageColumn)

	// Blank padding rows are common at the end of hand-edited sheets.
	if spanish == "" && english == "" {
		result.Skipped++
		return
	}

	result.TotalProcessed++

	if spanish == "" || english == "" {
		result.Errors = append(result.Errors, fmt.Sprintf("Row %d: spanish and english are both required", rowNum))
		return
	}
	if categoryName == "" {
		categoryName = DefaultCategory
	}

	categoryID, err := im.getOrCreateCategory(ctx, categoryName, state, result)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		return
	}

	key := phraseKey(spanish, categoryID)
	if existing, ok := state.phrases[key]; ok {
		existing.English = english
		existing.ImageURL = imageURL
		if err := im.phrases.Update(ctx, &existing); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: failed to update phrase: %v", rowNum, err))
			return
		}
		state.phrases[key] = existing
		result.Updated++
		return
	}

	phrase := models.Phrase{
		Spanish:    spanish,
		English:    english,
		CategoryID: categoryID,
		ImageURL:   imageURL,
		Position:   state.nextPos,
	}
	if err := im.phrases.Create(ctx, &phrase); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Row %d: failed to create phrase: %v", rowNum, err))
		return
	}
	state.phrases[key] = phrase
	state.nextPos++
	result.Created++
}

// getOrCreateCategory resolves a category name, creating it on first sight.
func (im *Importer) getOrCreateCategory(ctx context.Context, name string, state *importState, result *ImportResult) (int64, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if id, ok := state.categoryIDs[key]; ok {
		return id, nil
	}

	category := &models.Category{Name: strings.TrimSpace(name)}
	if err := im.categories.Create(ctx, category); err != nil {
		return 0, fmt.Errorf("failed to create category: %w", err)
	}
	state.categoryIDs[key] = category.ID
	result.CategoriesCreated++
	return category.ID, nil
}

// cellValue reads a trimmed cell by Excel column letter, tolerating short rows.
func cellValue(row []string, column string) string {
	if column == "" {
		return ""
	}
	idx := columnToIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// columnToIndex converts an Excel column letter to a zero-based index
func columnToIndex(column string) int {
	column = strings.ToUpper(column)
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}
