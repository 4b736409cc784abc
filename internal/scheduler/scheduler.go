package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/WorldLoot_Go/internal/logger"
	"github.com/osse101/WorldLoot_Go/internal/worker"
)

// Scheduler enqueues jobs on a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run every interval, starting one interval from now.
// A tick that finds the pool queue full is dropped so a slow job never piles up runs.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	logger.Debug(LogMsgScheduled, "job", name, "interval", interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := s.workerPool.TryEnqueue(job); err != nil {
					logger.Warn(LogMsgTickSkipped, "job", name, "error", err)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all tickers. Jobs already queued are left to the pool.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
