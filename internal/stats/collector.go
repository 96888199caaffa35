// Package stats periodically samples table counts into Prometheus gauges.
// It is observability plumbing only; the request path never depends on it.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/AlexHopeIT/notes-servise-test/internal/metrics"
	"github.com/AlexHopeIT/notes-servise-test/internal/repository"
	"github.com/robfig/cron/v3"
)

type Collector struct {
	users  repository.UserRepository
	notes  repository.NoteRepository
	logger *slog.Logger
	cron   *cron.Cron
}

func NewCollector(users repository.UserRepository, notes repository.NoteRepository, logger *slog.Logger) *Collector {
	return &Collector{
		users:  users,
		notes:  notes,
		logger: logger.With("component", "stats"),
		cron:   cron.New(),
	}
}

// Start samples once immediately, then every minute until Stop.
func (c *Collector) Start() error {
	if _, err := c.cron.AddFunc("@every 1m", func() { c.Sample(context.Background()) }); err != nil {
		return err
	}
	c.Sample(context.Background())
	c.cron.Start()
	return nil
}

// Stop halts the schedule and waits for a running sample to finish.
func (c *Collector) Stop() {
	<-c.cron.Stop().Done()
}

// Sample refreshes the users/notes gauges. Failures are logged and skipped;
// the next tick retries.
func (c *Collector) Sample(ctx context.Context) {
	sampleCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if n, err := c.users.Count(sampleCtx); err != nil {
		c.logger.Warn("sample user count", "error", err)
	} else {
		metrics.UsersTotal.Set(float64(n))
	}

	if n, err := c.notes.Count(sampleCtx); err != nil {
		c.logger.Warn("sample note count", "error", err)
	} else {
		metrics.NotesTotal.Set(float64(n))
	}
}
