// Package scheduler runs the registrar notification jobs on cron schedules.
package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"alumni-trace-backend/internal/config"
	"alumni-trace-backend/internal/jobs"
	"alumni-trace-backend/internal/logger"
)

type Scheduler struct {
	cron   *cron.Cron
	runner *jobs.JobRunner
	cfg    config.SchedulerConfig
}

func New(runner *jobs.JobRunner, cfg config.SchedulerConfig) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)
	return &Scheduler{cron: c, runner: runner, cfg: cfg}
}

// Start registers the jobs and begins running them. Schedules use six-field
// cron expressions (seconds first) in UTC.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.RegistrarDigest, s.runner.SendRegistrarDigest); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(s.cfg.StaleRequestReminders, s.runner.SendStaleRequestReminders); err != nil {
		return err
	}

	s.cron.Start()
	logger.Info("Scheduler started",
		"registrar_digest", s.cfg.RegistrarDigest,
		"stale_request_reminders", s.cfg.StaleRequestReminders,
	)
	return nil
}

// Stop halts the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Scheduler stopped")
}
