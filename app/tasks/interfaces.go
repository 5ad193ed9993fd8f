package tasks

// TaskSchedulerInterface defines the interface for background task
// scheduling. The scheduler keeps cache entries warm by re-fetching each
// content type ahead of TTL expiry, so request latency stays flat even when
// the content source is slow.
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}
