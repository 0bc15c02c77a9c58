// Package task runs fire-and-forget background work with bounded concurrency.
package task

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Func is a unit of background work.
type Func func(ctx context.Context) error

// Config contains runner configuration.
type Config struct {
	MaxConcurrent int
}

// DefaultConfig returns the default runner configuration.
func DefaultConfig() *Config {
	return &Config{MaxConcurrent: 8}
}

// Runner executes submitted work in goroutines, at most MaxConcurrent at a
// time. Work still waiting for a slot when Stop is called is dropped.
type Runner struct {
	logger    *zap.Logger
	semaphore chan struct{}

	// mu orders wg.Add in Submit before wg.Wait in Stop.
	mu      sync.Mutex
	stopCh  chan struct{}
	stopped bool
	wg      sync.WaitGroup
}

// NewRunner creates a new runner.
func NewRunner(logger *zap.Logger, config *Config) *Runner {
	if config == nil || config.MaxConcurrent <= 0 {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{
		logger:    logger.Named("task-runner"),
		semaphore: make(chan struct{}, config.MaxConcurrent),
		stopCh:    make(chan struct{}),
	}
}

// Submit schedules fn under name. It returns false once the runner is stopped.
func (r *Runner) Submit(name string, fn Func) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		r.logger.Debug("runner stopped, task dropped", zap.String("task", name))
		return false
	}

	r.wg.Add(1)
	go r.execute(name, fn)
	return true
}

func (r *Runner) execute(name string, fn Func) {
	defer r.wg.Done()

	select {
	case <-r.stopCh:
		r.logger.Debug("runner stopped, task dropped", zap.String("task", name))
		return
	case r.semaphore <- struct{}{}:
		defer func() { <-r.semaphore }()
	}

	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("task panicked", zap.String("task", name), zap.Any("panic", p))
		}
	}()

	if err := fn(context.Background()); err != nil {
		r.logger.Warn("task failed", zap.String("task", name), zap.Error(err))
		return
	}
	r.logger.Debug("task completed", zap.String("task", name))
}

// Wait blocks until all submitted work has finished or been dropped.
func (r *Runner) Wait() {
	r.wg.Wait()
}

// Stop rejects new work, drops work still waiting for a slot and waits for
// running work to finish.
func (r *Runner) Stop() {
	r.mu.Lock()
	if !r.stopped {
		r.stopped = true
		close(r.stopCh)
	}
	r.mu.Unlock()

	r.wg.Wait()
}

// Stopped reports whether Stop has been called.
func (r *Runner) Stopped() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stopped
}
