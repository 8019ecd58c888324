// Package scheduler drives the recurring batch jobs on their cadences.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

// Handler is the entry point of a scheduled job run.
type Handler func(ctx context.Context) error

// entry is one registered job with its re-entrancy guard.
type entry struct {
	id      string
	cadence string
	handler Handler
	running atomic.Bool
}

// Scheduler owns the registry of recurring jobs and their cadence timers.
// One instance lives for the whole process; jobs are registered before Start
// and fire until Stop. A fire that overlaps a still-running invocation of
// the same job is skipped, so no job ever runs re-entrantly. Distinct jobs
// may run concurrently.
type Scheduler struct {
	cron    *cron.Cron
	mu      sync.Mutex
	entries map[string]*entry
	baseCtx context.Context
	started bool
}

// New creates a scheduler with standard 5-field cron cadences.
func New() *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		entries: make(map[string]*entry),
		baseCtx: context.Background(),
	}
}

// Register adds a job to the registry under the given cron cadence.
// Registration is rejected after Start and for duplicate job IDs.
func (s *Scheduler) Register(jobID, cadence string, handler Handler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return fmt.Errorf("cannot register job %q: scheduler already started", jobID)
	}
	if _, exists := s.entries[jobID]; exists {
		return fmt.Errorf("job %q is already registered", jobID)
	}

	e := &entry{
		id:      jobID,
		cadence: cadence,
		handler: handler,
	}

	if _, err := s.cron.AddFunc(cadence, func() { s.fire(e) }); err != nil {
		return fmt.Errorf("invalid cadence %q for job %q: %w", cadence, jobID, err)
	}

	s.entries[jobID] = e
	return nil
}

// Start begins firing registered jobs. The given context is passed to every
// job run; cancelling it signals in-flight runs to wind down.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.baseCtx = ctx
	s.started = true
	jobCount := len(s.entries)
	s.mu.Unlock()

	s.cron.Start()
	slog.Info("Job scheduler started", "jobs", jobCount)
}

// Stop halts the cadence timers and blocks until in-flight runs complete.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("Job scheduler stopped")
}

// RunNow triggers a registered job outside its cadence. The overlap guard
// still applies: a job whose previous run is active is not started again.
func (s *Scheduler) RunNow(jobID string) error {
	s.mu.Lock()
	e, ok := s.entries[jobID]
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("job %q is not registered", jobID)
	}

	if !e.running.CompareAndSwap(false, true) {
		return domainerror.NewJobError(
			domainerror.ErrCodeJobAlreadyRunning,
			fmt.Sprintf("job %q is already running", jobID),
			domainerror.ErrJobAlreadyRunning,
		)
	}
	defer e.running.Store(false)

	return e.handler(s.baseCtx)
}

// fire executes one scheduled invocation of a job, enforcing the guard.
func (s *Scheduler) fire(e *entry) {
	if !e.running.CompareAndSwap(false, true) {
		slog.Warn("Skipping job fire, previous run still active", "job", e.id)
		return
	}
	defer e.running.Store(false)

	s.mu.Lock()
	ctx := s.baseCtx
	s.mu.Unlock()

	logger := slog.With("job", e.id)
	logger.Info("Job run started")
	start := time.Now()

	if err := e.handler(ctx); err != nil {
		// The run is retried on the next cadence fire.
		logger.Error("Job run failed", "error", err, "duration", time.Since(start))
		return
	}

	logger.Info("Job run completed", "duration", time.Since(start))
}
