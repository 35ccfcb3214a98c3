package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mrlokans/gardens/internal/tasks"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SnapshotEnqueuer hands a snapshot export to the task queue.
type SnapshotEnqueuer interface {
	EnqueueSnapshot(path string) (string, error)
}

// SnapshotConfig controls the periodic export.
type SnapshotConfig struct {
	Enabled  bool
	Schedule string
	Path     string
}

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ValidateSchedule reports whether schedule is a five-field cron expression or descriptor.
func ValidateSchedule(schedule string) error {
	if _, err := cronParser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", schedule, err)
	}
	return nil
}

// SnapshotScheduler manages periodic exports of the gardens table
type SnapshotScheduler struct {
	config   SnapshotConfig
	writer   tasks.SnapshotWriter
	enqueuer SnapshotEnqueuer

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewSnapshotScheduler creates a new scheduler instance. When enqueuer is nil
// exports run inline on the cron goroutine.
func NewSnapshotScheduler(config SnapshotConfig, writer tasks.SnapshotWriter, enqueuer SnapshotEnqueuer) *SnapshotScheduler {
	return &SnapshotScheduler{
		config:   config,
		writer:   writer,
		enqueuer: enqueuer,
		cron:     cron.New(cron.WithParser(cronParser)),
	}
}

// Start begins the scheduler if snapshots are enabled
func (s *SnapshotScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.config.Enabled {
		zap.S().Info("Snapshot scheduler: disabled")
		return nil
	}

	if s.config.Path == "" {
		zap.S().Warn("Snapshot scheduler: snapshot path not configured, skipping")
		return nil
	}

	if err := ValidateSchedule(s.config.Schedule); err != nil {
		return err
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, func() {
		if err := s.RunNow(); err != nil {
			zap.S().Errorf("Snapshot scheduler: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule snapshot job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	zap.S().Infof("Snapshot scheduler: started with schedule '%s'. Next run: %v",
		s.config.Schedule, s.cron.Entry(entryID).Schedule.Next(time.Now()))

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler
func (s *SnapshotScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	// Wait for a running export to finish
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cron.Remove(s.entryID)
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.isRunning = false
	s.cancelFunc = nil

	zap.S().Info("Snapshot scheduler: stopped")
}

// IsRunning returns whether the scheduler is active
func (s *SnapshotScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next export will occur
func (s *SnapshotScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	entry := s.cron.Entry(s.entryID)
	if entry.Schedule == nil {
		return nil
	}
	next := entry.Schedule.Next(time.Now())
	return &next
}

// RunNow enqueues an export, or performs it directly without a task queue.
func (s *SnapshotScheduler) RunNow() error {
	if s.enqueuer != nil {
		id, err := s.enqueuer.EnqueueSnapshot(s.config.Path)
		if err != nil {
			return err
		}
		zap.S().Infof("Snapshot scheduler: enqueued export task %s", id)
		return nil
	}

	if s.writer == nil {
		return fmt.Errorf("snapshot exporter not configured")
	}
	start := time.Now()
	result, err := s.writer.Export(s.config.Path)
	if err != nil {
		return fmt.Errorf("snapshot export failed: %w", err)
	}
	zap.S().Infof("Snapshot scheduler: exported %d gardens to %s in %v",
		result.Gardens, result.Path, time.Since(start).Round(time.Millisecond))
	return nil
}
