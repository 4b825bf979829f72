// Package scheduler runs the daily reminder job and admin broadcasts.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gramsetu/noticeboard/internal/core/query"
	"github.com/gramsetu/noticeboard/internal/core/store"
	"github.com/gramsetu/noticeboard/internal/transport"
	"github.com/robfig/cron/v3"
)

const reminderHeader = "🔔 *Kal ke karyakram:*"

type Scheduler struct {
	Store  *store.Store
	Sender transport.Sender

	cron *cron.Cron
}

func New(s *store.Store, sender transport.Sender, reminderSpec string) (*Scheduler, error) {
	sched := &Scheduler{
		Store:  s,
		Sender: sender,
		cron:   cron.New(),
	}

	_, err := sched.cron.AddFunc(reminderSpec, func() {
		if err := sched.RunReminders(context.Background()); err != nil {
			log.Printf("reminder run failed: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("bad reminder cron spec %q: %w", reminderSpec, err)
	}

	return sched, nil
}

func (s *Scheduler) Start() { s.cron.Start() }
func (s *Scheduler) Stop()  { s.cron.Stop() }

// RunReminders broadcasts tomorrow's confirmed events to every contact
// that has not opted out, then flips reminderSent on each event.
func (s *Scheduler) RunReminders(ctx context.Context) error {
	tomorrow := time.Now().UTC().Add(24 * time.Hour)
	events, err := s.Store.RemindersDue(ctx, tomorrow)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	blocks := []string{reminderHeader}
	for _, e := range events {
		blocks = append(blocks, query.FormatEvent(e))
	}
	body := strings.Join(blocks, "\n\n")

	sent, err := s.Broadcast(ctx, body)
	if err != nil {
		return err
	}
	log.Printf("reminder sent to %d contacts for %d events", sent, len(events))

	for _, e := range events {
		if err := s.Store.MarkReminderSent(ctx, e.UUID); err != nil {
			log.Printf("failed to mark reminder sent for event %d: %v", e.EventIndex, err)
		}
	}
	return nil
}

// Broadcast sends one message to every non-opted-out contact,
// sequentially; per-contact send failures are logged and skipped.
func (s *Scheduler) Broadcast(ctx context.Context, body string) (int, error) {
	contacts, err := s.Store.Contacts(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, c := range contacts {
		if err := s.Sender.Send(c.Phone, body); err != nil {
			log.Printf("broadcast to %s failed: %v", c.Phone, err)
			continue
		}
		sent++
	}
	return sent, nil
}
