package excel

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/seekayel/habla-espanol-ext/pkg/models"
)

type fakePhraseStore struct {
	phrases []models.Phrase
	nextID  int
}

func (f *fakePhraseStore) GetAll(ctx context.Context) ([]models.Phrase, error) {
	return f.phrases, nil
}

func (f *fakePhraseStore) Create(ctx context.Context, phrase *models.Phrase) error {
	f.nextID++
	phrase.ID = f.nextID
	f.phrases = append(f.phrases, *phrase)
	return nil
}

func (f *fakePhraseStore) Update(ctx context.Context, phrase *models.Phrase) error {
	for i := range f.phrases {
		if f.phrases[i].ID == phrase.ID {
			f.phrases[i] = *phrase
			return nil
		}
	}
	return nil
}

type fakeCategoryStore struct {
	categories []models.Category
	nextID     int64
}

func (f *fakeCategoryStore) GetAll(ctx context.Context) ([]models.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryStore) Create(ctx context.Context, category *models.Category) error {
	f.nextID++
	category.ID = f.nextID
	f.categories = append(f.categories, *category)
	return nil
}

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.csv")
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestImportCSV(t *testing.T) {
	phrases := &fakePhraseStore{}
	categories := &fakeCategoryStore{}
	importer := NewImporter(phrases, categories)

	path := writeCSV(t,
		"Spanish,English,Category,Image",
		"Hola,Hello,Greetings,https://img.example/hola.png",
		"Adiós,Goodbye,Greetings,",
		"Manzana,Apple,Food,",
	)

	result, err := importer.Import(context.Background(), DefaultImportConfig(path))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if result.Created != 3 || result.Updated != 0 {
		t.Errorf("result = %+v, want 3 created", result)
	}
	if result.CategoriesCreated != 2 {
		t.Errorf("CategoriesCreated = %d, want 2", result.CategoriesCreated)
	}
	if len(result.Errors) != 0 {
		t.Errorf("Errors = %v", result.Errors)
	}

	if len(phrases.phrases) != 3 {
		t.Fatalf("stored %d phrases, want 3", len(phrases.phrases))
	}
	// Deck positions follow file order.
	for i, want := range []string{"Hola", "Adiós", "Manzana"} {
		got := phrases.phrases[i]
		if got.Spanish != want || got.Position != i+1 {
			t.Errorf("phrase %d = %+v, want %s at position %d", i, got, want, i+1)
		}
	}
	if phrases.phrases[0].ImageURL != "https://img.example/hola.png" {
		t.Errorf("ImageURL = %q", phrases.phrases[0].ImageURL)
	}
	// Both Greetings phrases share one category.
	if phrases.phrases[0].CategoryID != phrases.phrases[1].CategoryID {
		t.Error("Greetings phrases got different category IDs")
	}
}

func TestImportCSVUpdatesExisting(t *testing.T) {
	categories := &fakeCategoryStore{
		categories: []models.Category{{ID: 1, Name: "Greetings"}},
		nextID:     1,
	}
	phrases := &fakePhraseStore{
		phrases: []models.Phrase{{
			ID:         1,
			Spanish:    "Hola",
			English:    "Hi",
			CategoryID: 1,
			Position:   4,
		}},
		nextID: 1,
	}
	importer := NewImporter(phrases, categories)

	path := writeCSV(t,
		"Spanish,English,Category,Image",
		"hola,Hello,greetings,", // case-insensitive match on phrase and category
		"Buenos días,Good morning,Greetings,",
	)

	result, err := importer.Import(context.Background(), DefaultImportConfig(path))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if result.Updated != 1 || result.Created != 1 || result.CategoriesCreated != 0 {
		t.Errorf("result = %+v, want 1 updated, 1 created, 0 categories", result)
	}

	if phrases.phrases[0].English != "Hello" {
		t.Errorf("existing phrase not updated: %+v", phrases.phrases[0])
	}
	if phrases.phrases[0].Position != 4 {
		t.Errorf("update moved the phrase to position %d", phrases.phrases[0].Position)
	}
	// New phrases append after the existing deck.
	if phrases.phrases[1].Position != 5 {
		t.Errorf("new phrase position = %d, want 5", phrases.phrases[1].Position)
	}
}

func TestImportCSVRowProblems(t *testing.T) {
	phrases := &fakePhraseStore{}
	categories := &fakeCategoryStore{}
	importer := NewImporter(phrases, categories)

	path := writeCSV(t,
		"Spanish,English,Category,Image",
		"Hola,,Greetings,",  // missing english
		",,,",               // blank padding row
		"Gracias,Thanks,,",  // empty category falls back to the default
	)

	result, err := importer.Import(context.Background(), DefaultImportConfig(path))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Row 2") {
		t.Errorf("Errors = %v, want one error for row 2", result.Errors)
	}
	if result.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", result.Skipped)
	}
	if result.Created != 1 {
		t.Fatalf("Created = %d, want 1", result.Created)
	}
	if categories.categories[0].Name != DefaultCategory {
		t.Errorf("category = %q, want %q", categories.categories[0].Name, DefaultCategory)
	}
}

func TestImportXLSX(t *testing.T) {
	phrases := &fakePhraseStore{}
	categories := &fakeCategoryStore{}
	importer := NewImporter(phrases, categories)

	path := filepath.Join(t.TempDir(), "deck.xlsx")
	f := excelize.NewFile()
	rows := [][]string{
		{"Spanish", "English", "Category", "Image"},
		{"Hola", "Hello", "Greetings", ""},
		{"¿Cómo estás?", "How are you?", "Greetings", ""},
	}
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet1", cell, value); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save xlsx: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close xlsx: %v", err)
	}

	result, err := importer.Import(context.Background(), DefaultImportConfig(path))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if result.Created != 2 || len(result.Errors) != 0 {
		t.Errorf("result = %+v, want 2 created", result)
	}
	if len(phrases.phrases) != 2 || phrases.phrases[1].Spanish != "¿Cómo estás?" {
		t.Errorf("phrases = %+v", phrases.phrases)
	}
}

func TestColumnToIndex(t *testing.T) {
	tests := []struct {
		column string
		want   int
	}{
		{"A", 0},
		{"B", 1},
		{"Z", 25},
		{"AA", 26},
		{"b", 1},
	}
	for _, tt := range tests {
		if got := columnToIndex(tt.column); got != tt.want {
			t.Errorf("columnToIndex(%q) = %d, want %d", tt.column, got, tt.want)
		}
	}
}
