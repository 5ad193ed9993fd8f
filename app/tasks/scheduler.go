package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/codejedi-ai/portfolio-api/app/cache"
	"github.com/codejedi-ai/portfolio-api/app/cfg"
	"github.com/codejedi-ai/portfolio-api/app/content"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

type Scheduler struct {
	responseCache *cache.Cache
	fetchers      map[string]content.PayloadFetcher
	purger        CachePurger
	interval      time.Duration
	workerCount   int
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	taskQueue     chan TaskInterface
}

func NewScheduler(responseCache *cache.Cache, fetchers map[string]content.PayloadFetcher, purger CachePurger) TaskSchedulerInterface {
	ctx, cancel := context.WithCancel(context.Background())
	appCfg := cfg.Get()

	return &Scheduler{
		responseCache: responseCache,
		fetchers:      fetchers,
		purger:        purger,
		interval:      time.Duration(appCfg.SchedulerInterval) * time.Second,
		workerCount:   appCfg.WorkerCount,
		ctx:           ctx,
		cancel:        cancel,
		taskQueue:     make(chan TaskInterface, 100),
	}
}

func (s *Scheduler) Start() {
	for i := 0; i < s.workerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.enqueueRefreshTasks()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.enqueueRefreshTasks()
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	close(s.taskQueue)
}

func (s *Scheduler) EnqueueTask(task TaskInterface) error {
	// Checked before the send: the queue channel is closed on Stop.
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
	}

	select {
	case s.taskQueue <- task:
		return nil
	default:
		return fmt.Errorf("task queue is full")
	}
}

func (s *Scheduler) enqueueRefreshTasks() {
	if len(s.fetchers) == 0 {
		slog.Debug("No content fetchers registered")
		return
	}

	for contentType, fetcher := range s.fetchers {
		task := NewRefreshContentTask(contentType, s.responseCache, fetcher)
		if err := s.EnqueueTask(task); err != nil {
			slog.Warn("Failed to enqueue RefreshContentTask", "content_type", contentType, "error", err)
		}
	}

	if s.purger != nil {
		task := NewPurgeCacheTask(s.purger, 24*time.Hour)
		if err := s.EnqueueTask(task); err != nil {
			slog.Warn("Failed to enqueue PurgeCacheTask", "error", err)
		}
	}
}

func (s *Scheduler) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case task, ok := <-s.taskQueue:
			if !ok {
				return
			}
			s.executeTask(id, task)

		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) executeTask(workerID int, task TaskInterface) {
	task.Start()

	taskCtx, cancel := context.WithTimeout(s.ctx, 2*time.Minute)
	defer cancel()

	err := task.Execute(taskCtx)

	if err != nil {
		slog.Error("Worker task execution failed", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", err)

		if task.CanRetry() {
			task.IncrementRetryCount()
			retryDelay := time.Duration(1<<uint(task.GetRetryCount()-1)) * time.Second
			if retryDelay > 30*time.Second {
				retryDelay = 30 * time.Second
			}

			slog.Warn("Task retry scheduled", "type", string(task.GetType()), "content_type", task.GetContentType(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "delay", retryDelay.String())

			go func() {
				time.Sleep(retryDelay)
				select {
				case <-s.ctx.Done():
					slog.Debug("Scheduler stopped, skipping task retry", "type", string(task.GetType()), "id", task.GetID())
					return
				default:
					if retryErr := s.EnqueueTask(task); retryErr != nil {
						slog.Error("Failed to re-enqueue task for retry", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", retryErr)
					}
				}
			}()
		} else {
			slog.Error("Task failed after maximum retries", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "last_error", err)
		}
	}
}
