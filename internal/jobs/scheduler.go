package jobs

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/yusufakin/eticaret/internal/reminder"
)

// DefaultRunHours are the local wall-clock hours at which the reminder job
// fires: morning, midday and evening.
var DefaultRunHours = []int{10, 14, 18}

// ReminderScheduler invokes the reminder batch job at fixed wall-clock
// times. Runs are strictly sequential; the schedule itself guarantees
// non-overlap.
type ReminderScheduler struct {
	job   *reminder.Job
	hours []int
	timer *time.Timer
	done  chan bool
	now   func() time.Time
}

func NewReminderScheduler(job *reminder.Job, hours []int) *ReminderScheduler {
	if len(hours) == 0 {
		hours = DefaultRunHours
	}
	sorted := append([]int(nil), hours...)
	sort.Ints(sorted)
	return &ReminderScheduler{
		job:   job,
		hours: sorted,
		done:  make(chan bool),
		now:   time.Now,
	}
}

// Start begins the scheduling loop.
func (s *ReminderScheduler) Start(ctx context.Context) {
	slog.Info("starting cart reminder scheduler", "hours", s.hours)

	go func() {
		for {
			next := s.NextRun(s.now())
			s.timer = time.NewTimer(time.Until(next))
			slog.Debug("next reminder run scheduled", "at", next)

			select {
			case <-s.timer.C:
				s.job.Run(ctx)
			case <-s.done:
				s.timer.Stop()
				slog.Info("cart reminder scheduler stopped")
				return
			}
		}
	}()
}

// Stop stops the scheduling loop.
func (s *ReminderScheduler) Stop() {
	close(s.done)
}

// NextRun returns the first configured wall-clock time strictly after now.
func (s *ReminderScheduler) NextRun(now time.Time) time.Time {
	for _, hour := range s.hours {
		candidate := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
		if candidate.After(now) {
			return candidate
		}
	}
	// All of today's slots have passed; first slot tomorrow.
	tomorrow := now.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), s.hours[0], 0, 0, 0, now.Location())
}
