package engine

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ppiankov/vendorscout/internal/cache"
	"github.com/ppiankov/vendorscout/internal/dedupe"
	"github.com/ppiankov/vendorscout/internal/extract"
	"github.com/ppiankov/vendorscout/internal/model"
	"github.com/ppiankov/vendorscout/internal/query"
	"github.com/ppiankov/vendorscout/internal/score"
	"github.com/ppiankov/vendorscout/internal/search"
	"github.com/ppiankov/vendorscout/internal/store"
	"github.com/ppiankov/vendorscout/internal/validate"
)

const defaultMaxResults = 10

// Engine orchestrates one vendor discovery: query generation, search
// fan-out, validation, extraction, scoring, deduplication, and ranking.
// Everything after the search stage is pure and synchronous; the engine
// holds no state between discoveries.
type Engine struct {
	cfg       *model.Config
	generator *query.Generator
	executor  *search.Executor
	validator *validate.Validator
	extractor *extract.Extractor
	scorer    *score.Scorer
	dedup     *dedupe.Deduplicator
	store     store.Store // optional
	logger    *zap.Logger
}

// Option customizes an engine
type Option func(*options)

type options struct {
	provider search.Provider
	cache    cache.Cache
	store    store.Store
	logger   *zap.Logger
}

// WithProvider injects a search provider, replacing the configured one
func WithProvider(p search.Provider) Option {
	return func(o *options) { o.provider = p }
}

// WithCache injects a query-result cache
func WithCache(c cache.Cache) Option {
	return func(o *options) { o.cache = c }
}

// WithStore injects an optional report store
func WithStore(s store.Store) Option {
	return func(o *options) { o.store = s }
}

// WithLogger sets the structured logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New creates an engine from config. The only error is the hard
// configuration failure of a missing provider credential (and only when
// no provider is injected).
func New(cfg *model.Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	if o.provider == nil {
		client, err := search.NewSerperClient(cfg.Provider, cfg.HTTP)
		if err != nil {
			return nil, err
		}
		o.provider = client
	}

	execOpts := []search.ExecutorOption{search.WithLogger(o.logger)}
	if o.cache != nil {
		execOpts = append(execOpts, search.WithCache(o.cache))
	}

	classifier := validate.NewDirectoryClassifier(&cfg.Directories)

	return &Engine{
		cfg:       cfg,
		generator: query.NewGenerator(&cfg.Directories),
		executor:  search.NewExecutor(o.provider, cfg, execOpts...),
		validator: validate.NewValidator(),
		extractor: extract.NewExtractor(classifier),
		scorer:    score.NewScorer(classifier),
		dedup:     dedupe.New(cfg.Dedup.SimilarityThreshold),
		store:     o.store,
		logger:    o.logger,
	}, nil
}

// Discover runs the full pipeline for one (category, location) request.
// Partial and empty results are successful; per-query search failures
// only shrink the result set.
func (e *Engine) Discover(ctx context.Context, req model.Request) (*model.Report, error) {
	if req.MaxResults <= 0 {
		req.MaxResults = defaultMaxResults
	}

	queries := e.generator.Generate(req)
	raws := e.executor.Run(ctx, queries)
	validated := e.validator.Filter(raws)
	candidates := e.scoreCandidates(req, validated)
	records := e.dedup.Dedupe(candidates)

	rankVendors(records)
	if len(records) > req.MaxResults {
		records = records[:req.MaxResults]
	}

	report := &model.Report{
		Success:    true,
		Category:   req.Category,
		Location:   req.Location,
		Vendors:    records,
		TotalFound: len(records),
		Meta: model.Metadata{
			QueriesIssued: len(queries),
			RawResults:    len(raws),
			Validated:     len(validated),
			Final:         len(records),
			GeneratedAt:   time.Now().UTC(),
		},
	}

	e.logger.Info("discovery complete",
		zap.String("category", req.Category),
		zap.String("location", req.Location),
		zap.Int("queries", len(queries)),
		zap.Int("raw", len(raws)),
		zap.Int("validated", len(validated)),
		zap.Int("final", len(records)))

	// Persistence is best-effort: a failing store never fails discovery
	if e.store != nil {
		if err := e.store.Save(ctx, report); err != nil {
			e.logger.Warn("store save failed", zap.Error(err))
		}
	}

	return report, nil
}

// scoreCandidates extracts fields from each validated result, scores it,
// and applies the post-scoring contact quality gate
func (e *Engine) scoreCandidates(req model.Request, validated []model.RawResult) []model.Candidate {
	base := model.SearchQuery{
		Category: strings.ToLower(strings.TrimSpace(req.Category)),
		Location: strings.TrimSpace(req.Location),
	}

	var candidates []model.Candidate
	for _, r := range validated {
		c := e.extractor.Extract(base, r)
		c.Score = e.scorer.Score(r)
		if e.scorer.Keep(c) {
			candidates = append(candidates, c)
		}
	}
	return candidates
}

// rankVendors sorts by total score descending; the sort is stable so
// discovery order breaks ties
func rankVendors(records []model.VendorRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score.TotalScore > records[j].Score.TotalScore
	})
}
