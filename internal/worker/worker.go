package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/nexconsult/juris-api/internal/cnj"
	"github.com/nexconsult/juris-api/internal/logger"
	"github.com/nexconsult/juris-api/internal/models"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// ErrPoolStopped is reported for jobs submitted after Stop
var ErrPoolStopped = errors.New("worker pool stopped")

// Result statuses
const (
	StatusSuccess = "success"
	StatusCached  = "cached"
	StatusError   = "error"
)

// Searcher looks a single case up; DataJudClient satisfies it
type Searcher interface {
	Search(ctx context.Context, c cnj.CaseNumber) (*models.DataJudResponse, error)
}

// SearchFunc adapts a function to Searcher
type SearchFunc func(ctx context.Context, c cnj.CaseNumber) (*models.DataJudResponse, error)

// Search calls f(ctx, c)
func (f SearchFunc) Search(ctx context.Context, c cnj.CaseNumber) (*models.DataJudResponse, error) {
	return f(ctx, c)
}

// Pool runs DataJud lookups on a fixed set of workers
type Pool struct {
	workers  int
	jobQueue chan *job
	searcher Searcher
	logger   *logrus.Entry

	activeWorkers atomic.Int32
	startTime     time.Time

	jobs        metric.Int64Counter
	jobDuration metric.Float64Histogram

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// Stats describe the pool at a point in time. Job totals are exported as
// datajud_worker_jobs_total.
type Stats struct {
	ActiveWorkers int32     `json:"active_workers"`
	Workers       int       `json:"workers"`
	QueueSize     int       `json:"queue_size"`
	StartTime     time.Time `json:"start_time"`
}

type job struct {
	id      string
	input   string
	ctx     context.Context
	created time.Time
	result  chan models.DataJudBatchItem
}

// NewPool creates a pool whose instruments are registered on meter, or on a
// no-op meter when nil; call Start before submitting work
func NewPool(workers, queueSize int, searcher Searcher, meter metric.Meter, log *logrus.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("worker")
	}
	ctx, cancel := context.WithCancel(context.Background())

	p := &Pool{
		workers:   workers,
		jobQueue:  make(chan *job, queueSize),
		searcher:  searcher,
		logger:    logger.WithComponent(log, "worker"),
		startTime: time.Now(),
		ctx:       ctx,
		cancel:    cancel,
	}

	p.jobs, _ = meter.Int64Counter("datajud_worker_jobs_total",
		metric.WithDescription("Bulk DataJud jobs by status"))
	p.jobDuration, _ = meter.Float64Histogram("datajud_worker_job_duration_seconds",
		metric.WithDescription("Bulk DataJud job duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30))
	_, _ = meter.Int64ObservableGauge("datajud_worker_active",
		metric.WithDescription("Workers running a job"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(int64(p.activeWorkers.Load()))
			return nil
		}))
	_, _ = meter.Int64ObservableGauge("datajud_worker_queue",
		metric.WithDescription("Jobs waiting for a worker"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(int64(len(p.jobQueue)))
			return nil
		}))

	return p
}

// Start launches the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.work(i)
	}

	p.logger.WithField("workers", p.workers).Info("Worker pool started")
}

// Stop stops the workers and waits for them to return. Jobs still queued are
// answered with ErrPoolStopped.
func (p *Pool) Stop() {
	p.once.Do(func() {
		p.logger.Info("Stopping worker pool...")
		p.cancel()
		p.wg.Wait()

		for {
			select {
			case j := <-p.jobQueue:
				j.result <- errorItem(j, ErrPoolStopped)
			default:
				p.logger.Info("Worker pool stopped")
				return
			}
		}
	})
}

// ProcessBatch looks every input up and returns the items in input order.
// Inputs that are not valid case numbers come back as error items.
func (p *Pool) ProcessBatch(ctx context.Context, inputs []string) models.DataJudBatchResponse {
	start := time.Now()

	jobs := make([]*job, len(inputs))
	for i, input := range inputs {
		jobs[i] = &job{
			id:      uuid.New().String(),
			input:   input,
			ctx:     ctx,
			created: time.Now(),
			result:  make(chan models.DataJudBatchItem, 1),
		}
	}

	for _, j := range jobs {
		select {
		case p.jobQueue <- j:
		case <-p.ctx.Done():
			j.result <- errorItem(j, ErrPoolStopped)
		case <-ctx.Done():
			j.result <- errorItem(j, ctx.Err())
		}
	}

	response := models.DataJudBatchResponse{
		Results: make([]models.DataJudBatchItem, len(jobs)),
		Total:   len(jobs),
	}
	for i, j := range jobs {
		item := p.await(j)
		response.Results[i] = item

		switch item.Status {
		case StatusSuccess:
			response.Success++
		case StatusCached:
			response.Success++
			response.Cached++
		default:
			response.Errors++
		}
	}

	response.DurationMs = time.Since(start).Milliseconds()
	response.Timestamp = time.Now()
	return response
}

// await returns the result of j. A result that is already there wins over a
// stopped pool; jobs queued after the drain in Stop are never picked up.
func (p *Pool) await(j *job) models.DataJudBatchItem {
	select {
	case item := <-j.result:
		return item
	default:
	}

	select {
	case item := <-j.result:
		return item
	case <-p.ctx.Done():
		select {
		case item := <-j.result:
			return item
		default:
			return errorItem(j, ErrPoolStopped)
		}
	}
}

// GetStats returns a snapshot of the pool
func (p *Pool) GetStats() Stats {
	return Stats{
		ActiveWorkers: p.activeWorkers.Load(),
		Workers:       p.workers,
		QueueSize:     len(p.jobQueue),
		StartTime:     p.startTime,
	}
}

func (p *Pool) work(id int) {
	defer p.wg.Done()

	p.logger.WithField("worker_id", id).Debug("Worker started")

	for {
		select {
		case <-p.ctx.Done():
			p.logger.WithField("worker_id", id).Debug("Worker stopped")
			return
		case j := <-p.jobQueue:
			j.result <- p.process(id, j)
		}
	}
}

func (p *Pool) process(workerID int, j *job) models.DataJudBatchItem {
	p.activeWorkers.Add(1)
	defer p.activeWorkers.Add(-1)

	started := time.Now()
	entry := p.logger.WithFields(logrus.Fields{
		"worker_id": workerID,
		"job_id":    j.id,
		"numero":    j.input,
	})

	if err := j.ctx.Err(); err != nil {
		p.record(j.ctx, StatusError, started)
		return errorItem(j, err)
	}

	caseNumber, err := cnj.Parse(j.input)
	if err != nil {
		p.record(j.ctx, StatusError, started)
		return errorItem(j, err)
	}

	data, err := p.searcher.Search(j.ctx, caseNumber)
	if err != nil {
		p.record(j.ctx, StatusError, started)
		entry.WithFields(logrus.Fields{
			"error":    err.Error(),
			"duration": time.Since(started),
		}).Warn("Job failed")
		return errorItem(j, err)
	}

	entry.WithField("duration", time.Since(started)).Debug("Job completed")

	status := StatusSuccess
	if data.Cache {
		status = StatusCached
	}
	p.record(j.ctx, status, started)
	return models.DataJudBatchItem{
		JobID:  j.id,
		Input:  j.input,
		Status: status,
		Data:   data,
	}
}

func (p *Pool) record(ctx context.Context, status string, started time.Time) {
	attrs := metric.WithAttributes(attribute.String("status", status))
	p.jobs.Add(ctx, 1, attrs)
	p.jobDuration.Record(ctx, time.Since(started).Seconds(), attrs)
}

func errorItem(j *job, err error) models.DataJudBatchItem {
	return models.DataJudBatchItem{
		JobID:  j.id,
		Input:  j.input,
		Status: StatusError,
		Error:  err.Error(),
	}
}
