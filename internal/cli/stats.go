package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/seekayel/habla-espanol-ext/internal/database"
	"github.com/seekayel/habla-espanol-ext/internal/study"
	"github.com/seekayel/habla-espanol-ext/pkg/models"
)

var statsFormat string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics for the deck",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsFormat, "format", "f", "table", "Output format: table or json")
	RootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	if _, err := connectDB(); err != nil {
		return err
	}
	defer database.Close()

	service := study.NewService(study.Stores{
		Phrases:    database.NewPhraseRepository(),
		Progress:   database.NewProgressRepository(),
		Logs:       database.NewReviewLogRepository(),
		Sessions:   database.NewSessionRepository(),
		Categories: database.NewCategoryRepository(),
	})

	stats, err := service.Stats(cmd.Context())
	if err != nil {
		return err
	}

	if statsFormat == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}
	renderStatsTable(cmd, stats)
	return nil
}

func renderStatsTable(cmd *cobra.Command, stats *models.StudyStats) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Total phrases", stats.TotalPhrases},
		{"Learned", stats.Learned},
		{"Mastered", stats.Mastered},
		{"Due now", stats.DueNow},
		{"Due today", stats.DueToday},
		{"Average ease", fmt.Sprintf("%.2f", stats.AverageEase)},
		{"Total reviews", stats.TotalReviews},
		{"Accuracy", fmt.Sprintf("%.0f%%", stats.Accuracy*100)},
	})
	t.Render()
}
