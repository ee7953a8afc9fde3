package cli

import (
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/seekayel/habla-espanol-ext/internal/api"
	"github.com/seekayel/habla-espanol-ext/internal/database"
	"github.com/seekayel/habla-espanol-ext/internal/notify"
	"github.com/seekayel/habla-espanol-ext/internal/scheduler"
	"github.com/seekayel/habla-espanol-ext/internal/study"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the extension API and the review reminder",
	RunE:  runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := connectDB()
	if err != nil {
		return err
	}
	defer database.Close()

	progress := database.NewProgressRepository()
	service := study.NewService(study.Stores{
		Phrases:    database.NewPhraseRepository(),
		Progress:   progress,
		Logs:       database.NewReviewLogRepository(),
		Sessions:   database.NewSessionRepository(),
		Categories: database.NewCategoryRepository(),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(service)

	// The reminder runs only when Telegram is configured; the API works
	// either way.
	var reminders *scheduler.Scheduler
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		notifier, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			return err
		}
		reminders = scheduler.New(notifier, progress, cfg.ReminderHour)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Serving extension API on %s", cfg.ListenAddr)
		return server.Start(ctx, cfg.ListenAddr)
	})
	if reminders != nil {
		reminders.Start()
		defer reminders.Stop()
		log.Printf("Review reminder armed for %02d:00", cfg.ReminderHour)
	}

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Println("Shut down cleanly")
	return nil
}
