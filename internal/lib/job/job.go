// Package job provides in-process background job execution.
//
// Handlers enqueue work against the current request with Enqueue; the
// handler pipeline hands the recorded jobs to the Service only after
// the response has been written. Jobs are fire-and-forget:
//
//   - each job runs at most once, on a worker goroutine
//   - a job failure or panic is logged and discarded, never surfaced
//     to any response and never able to crash the process
//   - jobs get a fresh context, decoupled from the client connection
//   - nothing is persisted; pending jobs die with the process
package job

import (
	"context"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Job is a unit of background work. The context it receives belongs to
// the dispatcher, not to the request that enqueued it: an already
// dispatched job keeps running even if the client goes away.
type Job func(ctx context.Context)

// Service runs background jobs on a fixed pool of worker goroutines.
type Service struct {
	logger      *zerolog.Logger
	queue       chan Job
	concurrency int

	wg sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

// NewService creates a Service with the given worker count and queue
// buffer. Workers do not start until Start is called.
func NewService(logger *zerolog.Logger, concurrency, buffer int) *Service {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{
		logger:      logger,
		queue:       make(chan Job, buffer),
		concurrency: concurrency,
	}
}

// Start launches the worker goroutines.
func (s *Service) Start() {
	s.logger.Info().Int("workers", s.concurrency).Msg("starting background job workers")

	for i := 0; i < s.concurrency; i++ {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			for j := range s.queue {
				s.run(j)
			}
		}()
	}
}

// Dispatch hands a job to the worker pool.
//
// It blocks only when the queue buffer is full. After Stop, jobs are
// dropped with a log line instead of panicking on a closed channel.
func (s *Service) Dispatch(j Job) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.stopped {
		s.logger.Warn().Msg("job dispatched after shutdown, dropping")
		return
	}

	s.queue <- j
}

// DispatchAll dispatches every job recorded for a finished request.
func (s *Service) DispatchAll(jobs []Job) {
	for _, j := range jobs {
		s.Dispatch(j)
	}
}

// QueueDepth returns the number of jobs waiting for a worker.
func (s *Service) QueueDepth() int {
	return len(s.queue)
}

// Stop closes the intake and waits for queued and in-flight jobs to
// finish. Dispatch calls made after Stop are dropped.
func (s *Service) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.queue)
	s.mu.Unlock()

	s.logger.Info().Msg("stopping background job workers")
	s.wg.Wait()
}

// run executes a single job with panic containment. The recover
// boundary is what keeps a broken job from taking the process down.
func (s *Service) run(j Job) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Msg("background job panicked")
		}
	}()

	j(context.Background())
}

// pendingKey is the echo context key under which jobs enqueued during
// a request are collected until the response has been written.
const pendingKey = "pending_jobs"

// Enqueue records a job against the current request. The job is not
// started here; the handler pipeline dispatches it after the response
// is committed, and only on the success path.
func Enqueue(c echo.Context, j Job) {
	pending, _ := c.Get(pendingKey).([]Job)
	c.Set(pendingKey, append(pending, j))
}

// Pending returns the jobs recorded for this request, or nil.
func Pending(c echo.Context) []Job {
	pending, _ := c.Get(pendingKey).([]Job)
	return pending
}
