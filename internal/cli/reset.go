package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seekayel/habla-espanol-ext/internal/database"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all review progress",
	Long: "Deletes every progress record, returning the whole deck to the\n" +
		"never-reviewed state. Phrases and the review history are kept.",
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm the wipe")
	RootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetYes {
		return errors.New("refusing to wipe progress without --yes")
	}

	if _, err := connectDB(); err != nil {
		return err
	}
	defer database.Close()

	if err := database.NewProgressRepository().DeleteAll(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "All progress cleared")
	return nil
}
