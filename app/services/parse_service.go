package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/helpers/utils"
	"github.com/freight-parser/internal/gazetteer"
	"github.com/freight-parser/internal/metrics"
	"github.com/freight-parser/internal/normalizer"
	"github.com/freight-parser/internal/parser"
	"github.com/freight-parser/internal/search"
)

// ErrEmptyMessage is returned when a parse request carries no text.
var ErrEmptyMessage = errors.New("message must not be empty")

// Job status constants.
const (
	JobStatusPending = "pending"
	JobStatusRunning = "running"
	JobStatusDone    = "done"
	JobStatusFailed  = "failed"
)

// Finished jobs and their results are kept for pickup, then swept: by age
// after jobRetention, and oldest-first beyond maxRetainedJobs.
const (
	jobRetention    = time.Hour
	maxRetainedJobs = 100
)

// JobStatus tracks one batch parse job.
type JobStatus struct {
	JobID     string    `json:"job_id"`
	Status    string    `json:"status"`
	Progress  float64   `json:"progress"`
	Processed int       `json:"processed"`
	Total     int       `json:"total"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ParseService orchestrates the engine: cache lookup, parse, cache fill,
// review queueing, suggestions and batch jobs.
type ParseService struct {
	parser    *parser.Parser
	gaz       *gazetteer.Gazetteer
	cache     ICacheService
	reviews   *ReviewService
	suggester *search.Suggester // nil when Meilisearch is disabled
	logger    *zap.Logger
	startTime time.Time

	workers int

	mu         sync.RWMutex
	jobs       map[string]*JobStatus
	jobResults map[string][]*models.ParseResult
}

// NewParseService wires the engine to its infrastructure. suggester may
// be nil; suggestions then come from the in-process fuzzy matcher only.
func NewParseService(p *parser.Parser, g *gazetteer.Gazetteer, cache ICacheService, reviews *ReviewService, suggester *search.Suggester, workers int, logger *zap.Logger) *ParseService {
	if workers <= 0 {
		workers = 4
	}
	return &ParseService{
		parser:     p,
		gaz:        g,
		cache:      cache,
		reviews:    reviews,
		suggester:  suggester,
		logger:     logger,
		startTime:  time.Now(),
		workers:    workers,
		jobs:       make(map[string]*JobStatus),
		jobResults: make(map[string][]*models.ParseResult),
	}
}

// ParseMessage runs one message through cache and engine. The bool result
// reports a cache hit. A cache backend error degrades to a live parse,
// never a request failure.
func (ps *ParseService) ParseMessage(ctx context.Context, raw string, useCache bool) (*models.ParseResult, bool, error) {
	if raw == "" {
		return nil, false, ErrEmptyMessage
	}
	start := time.Now()
	defer func() { metrics.ParseDuration.Observe(time.Since(start).Seconds()) }()

	key := utils.Fingerprint(normalizer.Normalize(raw))

	if useCache && ps.cache != nil {
		cached, found, err := ps.cache.Get(ctx, key)
		if err != nil {
			ps.logger.Warn("cache lookup failed, parsing live", zap.Error(err))
		}
		if found {
			metrics.ParseTotal.WithLabelValues("hit").Inc()
			metrics.CacheHits.WithLabelValues("hit").Inc()
			return cached, true, nil
		}
		metrics.CacheHits.WithLabelValues("miss").Inc()
	}

	result := ps.parser.Parse(raw)
	if result.HasLocation() {
		metrics.ParseTotal.WithLabelValues("parsed").Inc()
	} else {
		metrics.ParseTotal.WithLabelValues("empty").Inc()
	}

	if useCache && ps.cache != nil {
		if err := ps.cache.Set(ctx, key, result); err != nil {
			ps.logger.Warn("cache fill failed", zap.Error(err))
		}
	}

	if ps.reviews != nil && ps.reviews.ShouldReview(result) {
		go func(r *models.ParseResult) {
			bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if _, err := ps.reviews.Enqueue(bgCtx, r); err != nil {
				ps.logger.Warn("review enqueue failed", zap.Error(err))
				return
			}
			metrics.ReviewsQueued.Inc()
		}(result)
	}
	return result, false, nil
}

// Suggest returns fuzzy location candidates for a token the resolver
// could not place. A token that resolves strictly yields no suggestions.
func (ps *ParseService) Suggest(ctx context.Context, token string, max int) []gazetteer.Suggestion {
	norm := normalizer.Normalize(token)
	if norm == "" {
		return nil
	}
	if m := ps.gaz.Resolve(norm); m.Kind != gazetteer.MatchNone {
		return nil
	}
	if ps.suggester != nil {
		return ps.suggester.Suggest(ctx, norm, max)
	}
	return ps.gaz.Suggest(norm, max)
}

// StartBatch launches an asynchronous batch job over a worker pool and
// returns its id immediately.
func (ps *ParseService) StartBatch(messages []string, useCache bool) (string, error) {
	if len(messages) == 0 {
		return "", ErrEmptyMessage
	}

	jobID := utils.GenerateUUID()
	job := &JobStatus{
		JobID:     jobID,
		Status:    JobStatusPending,
		Total:     len(messages),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	ps.mu.Lock()
	ps.sweepJobsLocked()
	ps.jobs[jobID] = job
	ps.jobResults[jobID] = make([]*models.ParseResult, len(messages))
	ps.mu.Unlock()

	go ps.runBatch(jobID, messages, useCache)
	return jobID, nil
}

// runBatch fans the messages out to the worker pool. Result order matches
// input order.
func (ps *ParseService) runBatch(jobID string, messages []string, useCache bool) {
	ps.updateJob(jobID, func(j *JobStatus) { j.Status = JobStatusRunning })

	type indexed struct {
		idx int
		raw string
	}
	work := make(chan indexed)
	var wg sync.WaitGroup
	var processed int64
	var countMu sync.Mutex

	for w := 0; w < ps.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range work {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				result, _, err := ps.ParseMessage(ctx, item.raw, useCache)
				cancel()
				if err != nil {
					result = &models.ParseResult{Raw: item.raw, ParsedAt: time.Now()}
				}

				ps.mu.Lock()
				ps.jobResults[jobID][item.idx] = result
				ps.mu.Unlock()

				countMu.Lock()
				processed++
				done := processed
				countMu.Unlock()

				ps.updateJob(jobID, func(j *JobStatus) {
					j.Processed = int(done)
					j.Progress = float64(done) / float64(j.Total)
				})
			}
		}()
	}

	for i, raw := range messages {
		work <- indexed{idx: i, raw: raw}
	}
	close(work)
	wg.Wait()

	ps.updateJob(jobID, func(j *JobStatus) {
		j.Status = JobStatusDone
		j.Progress = 1.0
		j.Message = "completed"
	})
	metrics.BatchJobs.WithLabelValues(JobStatusDone).Inc()
	ps.logger.Info("batch job finished",
		zap.String("job_id", jobID), zap.Int("messages", len(messages)))
}

// GetJob returns the status of a batch job.
func (ps *ParseService) GetJob(jobID string) (*JobStatus, bool) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	job, ok := ps.jobs[jobID]
	if !ok {
		return nil, false
	}
	copied := *job
	return &copied, true
}

// GetJobResults returns the results of a finished batch job.
func (ps *ParseService) GetJobResults(jobID string) ([]*models.ParseResult, bool) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	job, ok := ps.jobs[jobID]
	if !ok || job.Status != JobStatusDone {
		return nil, false
	}
	return ps.jobResults[jobID], true
}

// Uptime reports how long the service has been running.
func (ps *ParseService) Uptime() time.Duration { return time.Since(ps.startTime) }

// sweepJobsLocked drops finished jobs past their retention, then evicts
// the oldest finished jobs while over the cap. Running jobs are never
// touched. Caller holds ps.mu.
func (ps *ParseService) sweepJobsLocked() {
	cutoff := time.Now().Add(-jobRetention)
	var finished []*JobStatus
	for id, job := range ps.jobs {
		if job.Status != JobStatusDone && job.Status != JobStatusFailed {
			continue
		}
		if job.UpdatedAt.Before(cutoff) {
			delete(ps.jobs, id)
			delete(ps.jobResults, id)
			continue
		}
		finished = append(finished, job)
	}

	excess := len(ps.jobs) - maxRetainedJobs
	if excess <= 0 {
		return
	}
	sort.Slice(finished, func(i, j int) bool {
		return finished[i].UpdatedAt.Before(finished[j].UpdatedAt)
	})
	for _, job := range finished {
		if excess <= 0 {
			break
		}
		delete(ps.jobs, job.JobID)
		delete(ps.jobResults, job.JobID)
		excess--
	}
}

func (ps *ParseService) updateJob(jobID string, fn func(*JobStatus)) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if job, ok := ps.jobs[jobID]; ok {
		fn(job)
		job.UpdatedAt = time.Now()
	}
}
