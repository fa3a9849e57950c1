// Package scheduler runs the periodic badge recompute job.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrSchedulerNotRunning is returned when a run is requested on a stopped scheduler
var ErrSchedulerNotRunning = errors.New("scheduler is not running")

// BadgeRecomputer recomputes automatic badges for the whole catalog
type BadgeRecomputer interface {
	RecomputeAll(ctx context.Context) error
}

// Config holds the badge scheduler configuration
type Config struct {
	Interval      time.Duration
	JobTimeout    time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

// BadgeScheduler periodically triggers a full badge recompute, the nightly
// maintenance that keeps New/Bestseller/On Sale/Low Stock badges fresh.
type BadgeScheduler struct {
	config     Config
	recomputer BadgeRecomputer
	logger     *zap.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewBadgeScheduler creates a new badge scheduler
func NewBadgeScheduler(config Config, recomputer BadgeRecomputer, logger *zap.Logger) *BadgeScheduler {
	if config.Interval <= 0 {
		config.Interval = 24 * time.Hour
	}
	if config.JobTimeout <= 0 {
		config.JobTimeout = 30 * time.Minute
	}
	return &BadgeScheduler{
		config:     config,
		recomputer: recomputer,
		logger:     logger,
	}
}

// Start starts the scheduler loop
func (s *BadgeScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.loop(ctx)

	s.logger.Info("Badge scheduler started",
		zap.Duration("interval", s.config.Interval),
		zap.Duration("job_timeout", s.config.JobTimeout),
	)

	return nil
}

// Stop gracefully stops the scheduler
func (s *BadgeScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Badge scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Badge scheduler stop timed out")
		return ctx.Err()
	}
}

// RunOnce triggers an immediate recompute outside the regular schedule
func (s *BadgeScheduler) RunOnce(ctx context.Context) error {
	s.mu.Lock()
	running := s.isRunning
	s.mu.Unlock()
	if !running {
		return ErrSchedulerNotRunning
	}

	return s.runJob(ctx)
}

func (s *BadgeScheduler) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.runJob(ctx); err != nil {
				s.logger.Error("badge recompute failed after retries", zap.Error(err))
			}
		}
	}
}

// runJob executes the recompute with a timeout and bounded retries
func (s *BadgeScheduler) runJob(ctx context.Context) error {
	var lastErr error
	attempts := s.config.RetryAttempts + 1

	for attempt := 1; attempt <= attempts; attempt++ {
		jobCtx, cancel := context.WithTimeout(ctx, s.config.JobTimeout)
		err := s.recomputer.RecomputeAll(jobCtx)
		cancel()

		if err == nil {
			s.logger.Info("Badge recompute completed", zap.Int("attempt", attempt))
			return nil
		}

		lastErr = err
		s.logger.Warn("Badge recompute attempt failed",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		if attempt < attempts && s.config.RetryDelay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.config.RetryDelay):
			}
		}
	}

	return lastErr
}
