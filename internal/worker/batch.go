package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/vendorscout/internal/model"
)

// Discoverer runs one vendor discovery
type Discoverer interface {
	Discover(ctx context.Context, req model.Request) (*model.Report, error)
}

// DiscoverJob is one (category, location) discovery in a batch
type DiscoverJob struct {
	Request    model.Request
	Discoverer Discoverer
}

// DiscoverResult pairs a batch request with its report or error
type DiscoverResult struct {
	Request model.Request
	Report  *model.Report
	Error   error
}

// GetError returns the job error, if any
func (r *DiscoverResult) GetError() error {
	return r.Error
}

// Execute runs the discovery
func (j *DiscoverJob) Execute(ctx context.Context) Result {
	report, err := j.Discoverer.Discover(ctx, j.Request)
	return &DiscoverResult{
		Request: j.Request,
		Report:  report,
		Error:   err,
	}
}

// BatchProcessor runs multiple discoveries concurrently through the pool
type BatchProcessor struct {
	discoverer  Discoverer
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(discoverer Discoverer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		discoverer:  discoverer,
		concurrency: concurrency,
	}
}

// Process runs all requests and returns one result per request
func (b *BatchProcessor) Process(ctx context.Context, requests []model.Request) []*DiscoverResult {
	if len(requests) == 0 {
		return []*DiscoverResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, req := range requests {
		pool.Submit(&DiscoverJob{Request: req, Discoverer: b.discoverer})
	}

	results := pool.Wait()

	discoverResults := make([]*DiscoverResult, len(results))
	for i, result := range results {
		discoverResults[i] = result.(*DiscoverResult)
	}

	return discoverResults
}

// ProcessFile reads "category,location" pairs from a file and runs them
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string, maxResults int) ([]*DiscoverResult, error) {
	requests, err := ReadRequestsFromFile(filePath, maxResults)
	if err != nil {
		return nil, fmt.Errorf("read requests: %w", err)
	}

	return b.Process(ctx, requests), nil
}

// ReadRequestsFromFile parses one "category,location" pair per line.
// Blank lines and #-comments are skipped; duplicate pairs are dropped.
func ReadRequestsFromFile(filePath string, maxResults int) ([]model.Request, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var requests []model.Request
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: expected \"category,location\", got %q", lineNo, line)
		}

		category := strings.TrimSpace(parts[0])
		location := strings.TrimSpace(parts[1])
		if category == "" || location == "" {
			return nil, fmt.Errorf("line %d: empty category or location", lineNo)
		}

		key := strings.ToLower(category + "," + location)
		if seen[key] {
			continue
		}
		seen[key] = true

		requests = append(requests, model.Request{
			Category:   category,
			Location:   location,
			MaxResults: maxResults,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return requests, nil
}
