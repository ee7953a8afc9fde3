package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeNotifier struct {
	counts  []int
	sendErr error
}

func (f *fakeNotifier) SendReminder(count int) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.counts = append(f.counts, count)
	return nil
}

type fakeDue struct {
	count int
	err   error
}

func (f *fakeDue) CountDue(ctx context.Context, now time.Time) (int, error) {
	return f.count, f.err
}

func at(hour int) time.Time {
	return time.Date(2025, 3, 10, hour, 30, 0, 0, time.UTC)
}

func newTestScheduler(notifier *fakeNotifier, due *fakeDue, now time.Time) *Scheduler {
	s := New(notifier, due, 9)
	s.now = func() time.Time { return now }
	return s
}

func TestReminderWaitsForConfiguredHour(t *testing.T) {
	notifier := &fakeNotifier{}
	s := newTestScheduler(notifier, &fakeDue{count: 3}, at(8))

	s.checkAndSendReminder()

	if len(notifier.counts) != 0 {
		t.Fatalf("reminder sent at %d:30, want none before hour 9", 8)
	}
}

func TestReminderFiresOncePerDay(t *testing.T) {
	notifier := &fakeNotifier{}
	s := newTestScheduler(notifier, &fakeDue{count: 3}, at(9))

	s.checkAndSendReminder()
	s.now = func() time.Time { return at(15) } // later the same day
	s.checkAndSendReminder()

	if len(notifier.counts) != 1 {
		t.Fatalf("reminder sent %d times, want 1", len(notifier.counts))
	}
	if notifier.counts[0] != 3 {
		t.Errorf("reminder count = %d, want 3", notifier.counts[0])
	}

	s.now = func() time.Time { return at(9).Add(24 * time.Hour) }
	s.checkAndSendReminder()
	if len(notifier.counts) != 2 {
		t.Fatalf("reminder not sent again the next day")
	}
}

func TestNothingDueSkipsButMarksDayHandled(t *testing.T) {
	notifier := &fakeNotifier{}
	due := &fakeDue{count: 0}
	s := newTestScheduler(notifier, due, at(9))

	s.checkAndSendReminder()

	// A phrase becoming due in the afternoon waits for tomorrow.
	due.count = 5
	s.now = func() time.Time { return at(16) }
	s.checkAndSendReminder()

	if len(notifier.counts) != 0 {
		t.Fatalf("reminder sent %d times, want 0 for the handled day", len(notifier.counts))
	}
}

func TestSendFailureRetriesNextHour(t *testing.T) {
	notifier := &fakeNotifier{sendErr: errors.New("telegram down")}
	s := newTestScheduler(notifier, &fakeDue{count: 2}, at(9))

	s.checkAndSendReminder()

	notifier.sendErr = nil
	s.now = func() time.Time { return at(10) }
	s.checkAndSendReminder()

	if len(notifier.counts) != 1 {
		t.Fatalf("reminder sent %d times after retry, want 1", len(notifier.counts))
	}
}

func TestCountErrorDoesNotMarkDayHandled(t *testing.T) {
	notifier := &fakeNotifier{}
	due := &fakeDue{err: errors.New("db closed")}
	s := newTestScheduler(notifier, due, at(9))

	s.checkAndSendReminder()

	due.err = nil
	due.count = 1
	s.now = func() time.Time { return at(10) }
	s.checkAndSendReminder()

	if len(notifier.counts) != 1 {
		t.Fatalf("reminder sent %d times after store recovery, want 1", len(notifier.counts))
	}
}
