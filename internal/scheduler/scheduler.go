package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is a named unit of background work run on a cron spec with seconds
// precision, e.g. "0 */15 * * * *".
type Job struct {
	Name    string
	Spec    string
	Timeout time.Duration
	Run     func(ctx context.Context) error
}

type Scheduler struct {
	cron   *cron.Cron
	logger *zap.SugaredLogger
}

func New(logger *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger,
	}
}

func (s *Scheduler) Register(job Job) error {
	if job.Timeout <= 0 {
		job.Timeout = time.Minute
	}
	if _, err := s.cron.AddFunc(job.Spec, s.wrap(job)); err != nil {
		return fmt.Errorf("register %s: %w", job.Name, err)
	}
	s.logger.Infow("scheduled job registered", "job", job.Name, "spec", job.Spec)
	return nil
}

func (s *Scheduler) wrap(job Job) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), job.Timeout)
		defer cancel()

		start := time.Now()
		if err := job.Run(ctx); err != nil {
			s.logger.Errorw("scheduled job failed", "job", job.Name, "error", err.Error())
			return
		}
		s.logger.Infow("scheduled job finished", "job", job.Name, "took", time.Since(start).String())
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs, giving up when ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OverdueSweeper refreshes accrued late fees.
type OverdueSweeper interface {
	SweepOverdue(ctx context.Context) (int, error)
}

func OverdueSweepJob(spec string, sweeper OverdueSweeper, logger *zap.SugaredLogger) Job {
	return Job{
		Name:    "overdue_sweep",
		Spec:    spec,
		Timeout: 5 * time.Minute,
		Run: func(ctx context.Context) error {
			n, err := sweeper.SweepOverdue(ctx)
			if err != nil {
				return err
			}
			if n > 0 {
				logger.Infow("late fees refreshed", "bookings", n)
			}
			return nil
		},
	}
}

type Pruner interface {
	Prune() int
}

// LimiterPruneJob evicts expired rate limiter windows every minute.
func LimiterPruneJob(name string, p Pruner) Job {
	return Job{
		Name: name + "_prune",
		Spec: "0 * * * * *",
		Run: func(context.Context) error {
			p.Prune()
			return nil
		},
	}
}
