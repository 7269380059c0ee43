package search

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/ppiankov/vendorscout/internal/cache"
	"github.com/ppiankov/vendorscout/internal/model"
	"github.com/ppiankov/vendorscout/internal/worker"
)

// Executor fans queries out to the provider with bounded concurrency.
// Per-query failures are logged and contribute zero results; the batch
// itself never fails. Results accumulate under a mutex, so a cancelled
// context abandons in-flight queries without corrupting what was already
// collected.
type Executor struct {
	provider Provider
	limiter  *worker.Limiter
	cache    cache.Cache // optional
	logger   *zap.Logger
	workers  int
	limit    int // result cap per query
	rateURL  string
}

// ExecutorOption customizes an executor
type ExecutorOption func(*Executor)

// WithCache injects a query-result cache
func WithCache(c cache.Cache) ExecutorOption {
	return func(e *Executor) { e.cache = c }
}

// WithLogger sets the structured logger
func WithLogger(logger *zap.Logger) ExecutorOption {
	return func(e *Executor) { e.logger = logger }
}

// NewExecutor creates an executor for the given provider
func NewExecutor(provider Provider, cfg *model.Config, opts ...ExecutorOption) *Executor {
	workers := cfg.Concurrency.SearchWorkers
	if workers <= 0 {
		workers = 5
	}
	limit := cfg.Provider.ResultLimit
	if limit <= 0 {
		limit = 20
	}

	e := &Executor{
		provider: provider,
		limiter:  worker.NewLimiter(cfg.Provider.RatePerSec, cfg.Provider.Burst),
		logger:   zap.NewNop(),
		workers:  workers,
		limit:    limit,
		rateURL:  cfg.Provider.BaseURL,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run executes all queries and returns the accumulated raw results.
// Result order follows query order; a failed query contributes nothing.
func (e *Executor) Run(ctx context.Context, queries []model.SearchQuery) []model.RawResult {
	if len(queries) == 0 {
		return nil
	}

	perQuery := make([][]model.RawResult, len(queries))
	var mu sync.Mutex
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, e.workers)

	for i, q := range queries {
		wg.Add(1)
		go func(idx int, query model.SearchQuery) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results := e.runOne(ctx, query)

			mu.Lock()
			perQuery[idx] = results
			mu.Unlock()
		}(i, q)
	}

	wg.Wait()

	var all []model.RawResult
	for _, results := range perQuery {
		all = append(all, results...)
	}
	return all
}

// runOne resolves a single query via cache or provider
func (e *Executor) runOne(ctx context.Context, q model.SearchQuery) []model.RawResult {
	key := cache.QueryKey(e.provider.Name(), q.Text)

	if e.cache != nil {
		if data, found := e.cache.Get(key); found {
			var cached []model.RawResult
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached
			}
			// Corrupt entries are dropped and refetched
			_ = e.cache.Delete(key)
		}
	}

	if err := e.limiter.Wait(ctx, e.rateURL); err != nil {
		e.logger.Warn("rate limit wait aborted",
			zap.String("query", q.Text),
			zap.Error(err))
		return nil
	}

	results, err := e.provider.Search(ctx, q.Text, e.limit)
	if err != nil {
		e.logger.Warn("query failed, continuing with zero results",
			zap.String("query", q.Text),
			zap.String("strategy", string(q.Strategy)),
			zap.Error(err))
		return nil
	}

	if e.cache != nil && len(results) > 0 {
		if data, err := json.Marshal(results); err == nil {
			_ = e.cache.Set(key, data, 0)
		}
	}

	return results
}
