package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Notifier interface for delivering the daily reminder
type Notifier interface {
	SendReminder(count int) error
}

// DueCounter reports how many phrases are due at a point in time.
type DueCounter interface {
	CountDue(ctx context.Context, now time.Time) (int, error)
}

// Scheduler manages the daily review reminder. It checks every hour whether
// the configured reminder hour has arrived and fires at most once per day.
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
	due       DueCounter
	hour      int

	now       func() time.Time
	lastCheck time.Time // day of the last completed reminder check
}

// New creates a scheduler that reminds at the given local hour (0-23).
func New(notifier Notifier, due DueCounter, hour int) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		notifier:  notifier,
		due:       due,
		hour:      hour,
		now:       time.Now,
	}
}

// Start begins running the hourly check in the background.
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminder)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndSendReminder sends the reminder once the reminder hour has
// arrived. A day with nothing due is still marked handled, so a phrase that
// becomes due in the afternoon waits for tomorrow's reminder.
func (s *Scheduler) checkAndSendReminder() {
	now := s.now()
	if now.Hour() < s.hour {
		return
	}
	if sameDay(now, s.lastCheck) {
		return
	}

	count, err := s.due.CountDue(context.Background(), now)
	if err != nil {
		log.Printf("Error counting due phrases: %v", err)
		return
	}
	if count == 0 {
		s.lastCheck = now
		return
	}

	if err := s.notifier.SendReminder(count); err != nil {
		// Not marked handled: the next hourly check retries.
		log.Printf("Error sending reminder: %v", err)
		return
	}
	log.Printf("Sent review reminder for %d due phrase(s)", count)
	s.lastCheck = now
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
