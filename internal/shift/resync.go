package shift

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Resyncer periodically reloads active schedules from the store so stale
// local state converges on the authoritative list. Ticks that land while a
// reconciler has an operation in flight are dropped, never queued.
type Resyncer struct {
	service  *Service
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

func NewResyncer(service *Service, schedule string, logger *slog.Logger) *Resyncer {
	return &Resyncer{
		service:  service,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger,
	}
}

func (rs *Resyncer) Start() error {
	_, err := rs.cron.AddFunc(rs.schedule, func() {
		rs.service.ResyncAll(context.Background())
	})
	if err != nil {
		return err
	}

	rs.cron.Start()
	rs.logger.Info("shift resync scheduler started", "schedule", rs.schedule)
	return nil
}

func (rs *Resyncer) Stop() {
	ctx := rs.cron.Stop()
	<-ctx.Done()
	rs.logger.Info("shift resync scheduler stopped")
}
