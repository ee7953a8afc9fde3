package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seekayel/habla-espanol-ext/internal/database"
	"github.com/seekayel/habla-espanol-ext/internal/excel"
)

var importSheet string

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a phrase deck from an xlsx or csv file",
	Long: "Reads rows of Spanish, English, Category and optional Image URL and\n" +
		"merges them into the deck. Existing phrases (same Spanish text and\n" +
		"category) are updated in place; new ones are appended in file order.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importSheet, "sheet", "Sheet1", "Worksheet to read (xlsx only)")
	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if _, err := connectDB(); err != nil {
		return err
	}
	defer database.Close()

	importer := excel.NewImporter(database.NewPhraseRepository(), database.NewCategoryRepository())

	config := excel.DefaultImportConfig(args[0])
	config.SheetName = importSheet

	result, err := importer.Import(cmd.Context(), config)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Processed %d rows: %d created, %d updated, %d skipped\n",
		result.TotalProcessed, result.Created, result.Updated, result.Skipped)
	if result.CategoriesCreated > 0 {
		fmt.Fprintf(out, "Created %d new categor%s\n", result.CategoriesCreated, pluralY(result.CategoriesCreated))
	}
	for _, e := range result.Errors {
		fmt.Fprintf(out, "warning: %s\n", e)
	}
	return nil
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
