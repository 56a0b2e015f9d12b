package sync

import (
	"context"
	"log/slog"
	"time"

	"github.com/dkovacevic/newsdata-sync/internal/newsdata"
	"github.com/dkovacevic/newsdata-sync/internal/storage"
	"github.com/google/uuid"
)

// Fetcher is the upstream article source. *newsdata.Client satisfies it;
// tests stub it.
type Fetcher interface {
	Latest(ctx context.Context, params newsdata.Params) (*newsdata.Envelope, error)
}

type State string

const (
	StateFetching    State = "FETCHING"
	StateNormalizing State = "NORMALIZING"
	StatePersisting  State = "PERSISTING"
	StateDone        State = "DONE"
)

type Outcome string

const (
	// OutcomeSynced means articles were fetched and the persist step ran.
	// Report.Err still carries a storage failure with the partial count.
	OutcomeSynced Outcome = "synced"
	// OutcomeEmpty means the fetch succeeded with zero articles.
	OutcomeEmpty Outcome = "empty"
	// OutcomeAPIFailure means the fetch raised or the API answered
	// non-success. Nothing was persisted.
	OutcomeAPIFailure Outcome = "api_failure"
)

// Report is the structured result of one run: how many articles the fetch
// returned and how many rows were applied before any failure.
type Report struct {
	RunID   uuid.UUID
	Outcome Outcome
	Fetched int
	Stored  int
	Err     error
}

const defaultSampleSize = 5

// Job is one fetch-normalize-persist cycle over the upstream API and the
// configured store. Strictly sequential, runs once, keeps no state between
// invocations beyond what is durable in the store.
type Job struct {
	fetcher    Fetcher
	storer     storage.Storer
	profile    *Profile
	sampleSize int
}

type JobOption func(*Job)

// WithSampleSize bounds the post-run readback. Zero disables it.
func WithSampleSize(n int) JobOption {
	return func(j *Job) {
		j.sampleSize = n
	}
}

func NewJob(fetcher Fetcher, storer storage.Storer, profile *Profile, opts ...JobOption) *Job {
	if profile == nil {
		profile = DefaultProfile()
	}
	j := &Job{
		fetcher:    fetcher,
		storer:     storer,
		profile:    profile,
		sampleSize: defaultSampleSize,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Run executes one cycle. The returned report is never nil; the error
// mirrors Report.Err so callers can treat the run as a plain error value.
func (j *Job) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	report := &Report{RunID: uuid.New()}
	log := slog.With("run_id", report.RunID)

	log.Info("sync run starting", "state", StateFetching, "query", j.profile.Query, "language", j.profile.Language)

	env, err := j.fetcher.Latest(ctx, j.profile.Params())
	if err != nil {
		report.Outcome = OutcomeAPIFailure
		report.Err = err
		log.Error("failed to fetch articles", "state", StateDone, "error", err)
		return report, err
	}

	report.Fetched = len(env.Results)
	if report.Fetched == 0 {
		report.Outcome = OutcomeEmpty
		log.Info("no articles found to store", "state", StateDone)
		return report, nil
	}
	log.Info("articles fetched", "state", StateNormalizing, "count", report.Fetched)

	articles := newsdata.MapArticles(env.Results)

	log.Info("persisting articles", "state", StatePersisting, "count", len(articles))

	stored, err := j.storer.UpsertAll(ctx, articles)
	report.Outcome = OutcomeSynced
	report.Stored = stored
	if err != nil {
		report.Err = err
		log.Error("failed to persist articles", "state", StateDone, "stored", stored, "fetched", report.Fetched, "error", err)
		return report, err
	}

	log.Info("sync run completed",
		"state", StateDone,
		"fetched", report.Fetched,
		"stored", report.Stored,
		"duration", time.Since(start))

	j.logSample(ctx, log)

	return report, nil
}

// logSample reads back a bounded sample of rows as an operational sanity
// check. Failures here don't affect the run result.
func (j *Job) logSample(ctx context.Context, log *slog.Logger) {
	if j.sampleSize <= 0 {
		return
	}

	sample, err := j.storer.Sample(ctx, j.sampleSize)
	if err != nil {
		log.Error("failed to sample stored articles", "error", err)
		return
	}

	for _, a := range sample {
		log.Info("stored article",
			"id", a.ID,
			"title", strOrEmpty(a.Title),
			"source", strOrEmpty(a.Source))
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
