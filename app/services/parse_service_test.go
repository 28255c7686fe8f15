package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/freight-parser/helpers/utils"
	"github.com/freight-parser/internal/gazetteer"
	"github.com/freight-parser/internal/parser"
)

func newTestParseService(t *testing.T) *ParseService {
	t.Helper()
	gaz := gazetteer.New()
	cache, err := NewMemoryCacheService(100, time.Minute)
	require.NoError(t, err)
	return NewParseService(parser.New(gaz), gaz, cache, nil, nil, 2, zap.NewNop())
}

func TestParseMessage_Basic(t *testing.T) {
	ps := newTestParseService(t)

	result, cacheHit, err := ps.ParseMessage(context.Background(), "istanbuldan ankaraya tir lazim", true)
	require.NoError(t, err)
	assert.False(t, cacheHit)
	require.NotNil(t, result.Locations.Origin)
	assert.Equal(t, "istanbul", result.Locations.Origin.ProvinceName)
	require.NotNil(t, result.Locations.Destination)
	assert.Equal(t, "ankara", result.Locations.Destination.ProvinceName)
}

func TestParseMessage_CacheHit(t *testing.T) {
	ps := newTestParseService(t)
	ctx := context.Background()

	first, hit, err := ps.ParseMessage(ctx, "izmirden bursaya parsiyel", true)
	require.NoError(t, err)
	assert.False(t, hit)

	second, hit, err := ps.ParseMessage(ctx, "izmirden bursaya parsiyel", true)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, first.Locations.Origin.ProvinceName, second.Locations.Origin.ProvinceName)
}

func TestParseMessage_CacheKeyIsNormalized(t *testing.T) {
	ps := newTestParseService(t)
	ctx := context.Background()

	_, hit, err := ps.ParseMessage(ctx, "İzmir'den Bursa'ya yük var", true)
	require.NoError(t, err)
	assert.False(t, hit)

	// Same message after normalization, different raw spelling.
	_, hit, err = ps.ParseMessage(ctx, "izmirden bursaya yuk var", true)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestParseMessage_CacheDisabled(t *testing.T) {
	ps := newTestParseService(t)
	ctx := context.Background()

	_, hit, err := ps.ParseMessage(ctx, "adanadan mersine", false)
	require.NoError(t, err)
	assert.False(t, hit)

	_, hit, err = ps.ParseMessage(ctx, "adanadan mersine", false)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestParseMessage_Empty(t *testing.T) {
	ps := newTestParseService(t)

	_, _, err := ps.ParseMessage(context.Background(), "", true)
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestSuggest_ResolvableTokenYieldsNothing(t *testing.T) {
	ps := newTestParseService(t)

	got := ps.Suggest(context.Background(), "istanbul", 5)
	assert.Empty(t, got, "a known province needs no suggestions")
}

func TestSuggest_TypoFallsBackToFuzzy(t *testing.T) {
	ps := newTestParseService(t)

	got := ps.Suggest(context.Background(), "istanbl", 5)
	require.NotEmpty(t, got)
	assert.Equal(t, "istanbul", got[0].Name)
}

func TestStartBatch_RunsToCompletion(t *testing.T) {
	ps := newTestParseService(t)

	messages := []string{
		"istanbuldan ankaraya tir",
		"izmirden bursaya kamyonet",
		"adanadan mersine 20 ton",
	}
	jobID, err := ps.StartBatch(messages, false)
	require.NoError(t, err)
	require.NotEmpty(t, jobID)

	deadline := time.Now().Add(5 * time.Second)
	var done bool
	for time.Now().Before(deadline) {
		job, ok := ps.GetJob(jobID)
		require.True(t, ok)
		if job.Status == JobStatusDone {
			done = true
			assert.Equal(t, len(messages), job.Processed)
			assert.Equal(t, 1.0, job.Progress)
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.True(t, done, "batch job did not finish in time")

	results, ok := ps.GetJobResults(jobID)
	require.True(t, ok)
	require.Len(t, results, len(messages))
	// Results keep input order.
	assert.Equal(t, "istanbul", results[0].Locations.Origin.ProvinceName)
	assert.Equal(t, "izmir", results[1].Locations.Origin.ProvinceName)
	assert.Equal(t, "adana", results[2].Locations.Origin.ProvinceName)
}

func TestStartBatch_Empty(t *testing.T) {
	ps := newTestParseService(t)

	_, err := ps.StartBatch(nil, false)
	assert.Error(t, err)
}

func TestJobSweep_DropsExpiredFinishedJobs(t *testing.T) {
	ps := newTestParseService(t)

	stale := &JobStatus{
		JobID:     "stale",
		Status:    JobStatusDone,
		UpdatedAt: time.Now().Add(-2 * jobRetention),
	}
	fresh := &JobStatus{
		JobID:     "fresh",
		Status:    JobStatusDone,
		UpdatedAt: time.Now(),
	}
	running := &JobStatus{
		JobID:     "running",
		Status:    JobStatusRunning,
		UpdatedAt: time.Now().Add(-2 * jobRetention),
	}
	ps.mu.Lock()
	for _, j := range []*JobStatus{stale, fresh, running} {
		ps.jobs[j.JobID] = j
		ps.jobResults[j.JobID] = nil
	}
	ps.sweepJobsLocked()
	ps.mu.Unlock()

	_, ok := ps.GetJob("stale")
	assert.False(t, ok, "expired finished job must be swept")
	_, ok = ps.GetJob("fresh")
	assert.True(t, ok)
	_, ok = ps.GetJob("running")
	assert.True(t, ok, "a running job is never swept, however old")
}

func TestJobSweep_CapsRetainedJobs(t *testing.T) {
	ps := newTestParseService(t)

	ps.mu.Lock()
	for i := 0; i < maxRetainedJobs+10; i++ {
		id := utils.GenerateUUID()
		ps.jobs[id] = &JobStatus{
			JobID:     id,
			Status:    JobStatusDone,
			UpdatedAt: time.Now().Add(-time.Duration(i) * time.Second),
		}
		ps.jobResults[id] = nil
	}
	ps.sweepJobsLocked()
	retained := len(ps.jobs)
	resultsRetained := len(ps.jobResults)
	ps.mu.Unlock()

	assert.LessOrEqual(t, retained, maxRetainedJobs)
	assert.Equal(t, retained, resultsRetained, "results map must shrink with the jobs map")
}

func TestGetJob_Unknown(t *testing.T) {
	ps := newTestParseService(t)

	_, ok := ps.GetJob("no-such-job")
	assert.False(t, ok)

	_, ok = ps.GetJobResults("no-such-job")
	assert.False(t, ok)
}
