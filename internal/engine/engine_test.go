package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/ppiankov/vendorscout/internal/model"
	"github.com/ppiankov/vendorscout/internal/store"
)

// scriptedProvider returns the same fixed result set for every query
type scriptedProvider struct {
	results []model.RawResult
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) Search(ctx context.Context, query string, limit int) ([]model.RawResult, error) {
	return p.results, nil
}

// onceProvider returns results for the first query only, so raw counts
// stay predictable in end-to-end assertions
type onceProvider struct {
	results []model.RawResult
	served  bool
}

func (p *onceProvider) Name() string { return "once" }

func (p *onceProvider) Search(ctx context.Context, query string, limit int) ([]model.RawResult, error) {
	if p.served {
		return nil, nil
	}
	p.served = true
	return p.results, nil
}

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Concurrency.SearchWorkers = 1
	cfg.Provider.RatePerSec = 1000
	cfg.Provider.Burst = 100
	return cfg
}

// mixedResults returns 10 raw results of which 3 are collection pages
func mixedResults() []model.RawResult {
	raws := []model.RawResult{
		{Title: "Top 10 Delhi Photographers", Snippet: "contact the best", Link: "https://listicle.example.com/a"},
		{Title: "Top 10 Delhi Photographers 2024", Snippet: "contact the best", Link: "https://listicle.example.com/b"},
		{Title: "Top 10 Delhi Photographers Ranked", Snippet: "contact the best", Link: "https://listicle.example.com/c"},
	}
	names := []string{
		"Pixel Studio", "Candid Frames Studio", "Lotus Lens Films",
		"Shutter Stories", "Moment Makers Studio", "Frame Factory",
		"Golden Hour Films",
	}
	domains := []string{
		"pixelstudio.in", "candidframes.com", "lotuslens.co.in",
		"shutterstories.net", "momentmakers.in", "framefactory.org",
		"goldenhourfilms.com",
	}
	for i, name := range names {
		raws = append(raws, model.RawResult{
			Title:   name,
			Snippet: fmt.Sprintf("Contact us at 9876%d 4321%d for candid shoots.", i, i),
			Link:    "https://" + domains[i],
		})
	}
	return raws
}

func TestEngine_MissingCredentialsIsFatal(t *testing.T) {
	cfg := testConfig()
	cfg.Provider.APIKey = ""

	if _, err := New(cfg); err == nil {
		t.Error("Expected hard configuration error without API key")
	}
}

func TestEngine_EndToEndFiltersCollectionPages(t *testing.T) {
	e, err := New(testConfig(), WithProvider(&onceProvider{results: mixedResults()}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	report, err := e.Discover(context.Background(), model.Request{
		Category:   "photography",
		Location:   "Delhi",
		MaxResults: 20,
	})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	if !report.Success {
		t.Error("Expected success")
	}
	if report.Meta.RawResults != 10 {
		t.Fatalf("Expected 10 raw results, got %d", report.Meta.RawResults)
	}
	if report.Meta.Validated != 7 {
		t.Errorf("Expected exactly 7 validated candidates, got %d", report.Meta.Validated)
	}
	if report.TotalFound > 7 {
		t.Errorf("Expected at most 7 vendors after dedup, got %d", report.TotalFound)
	}
	if report.TotalFound == 0 {
		t.Error("Expected non-empty vendor list")
	}
}

func TestEngine_RankingAndTruncation(t *testing.T) {
	results := []model.RawResult{
		{
			Title:   "Quiet Lens Films",
			Snippet: "Portfolio of our services. Book now.",
			Link:    "https://quietlens.example.com",
		},
		{
			Title:   "Pixel Studio Photography",
			Snippet: "Call us at 98765 43210 or email info@pixel.in. Rated 4.8/5 in reviews.",
			Link:    "https://www.justdial.com/Delhi/Pixel-Studio",
		},
	}
	e, err := New(testConfig(), WithProvider(&onceProvider{results: results}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	report, err := e.Discover(context.Background(), model.Request{
		Category: "photography", Location: "Delhi", MaxResults: 1,
	})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	if report.TotalFound != 1 {
		t.Fatalf("Expected truncation to 1 vendor, got %d", report.TotalFound)
	}
	if report.Vendors[0].Name != "Pixel Studio Photography" {
		t.Errorf("Expected the high-signal vendor ranked first, got %q", report.Vendors[0].Name)
	}
}

func TestEngine_EmptyResultsStillSucceed(t *testing.T) {
	e, err := New(testConfig(), WithProvider(&scriptedProvider{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	report, err := e.Discover(context.Background(), model.Request{
		Category: "catering", Location: "Mumbai",
	})
	if err != nil {
		t.Fatalf("Expected success with empty results, got %v", err)
	}
	if !report.Success || report.TotalFound != 0 {
		t.Errorf("Expected successful empty report, got %+v", report)
	}
}

func TestEngine_SavesToStore(t *testing.T) {
	s := store.NewMemoryStore()
	e, err := New(testConfig(),
		WithProvider(&onceProvider{results: mixedResults()}),
		WithStore(s))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = e.Discover(context.Background(), model.Request{
		Category: "photography", Location: "Delhi",
	})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	saved, err := s.Load(context.Background(), "photography", "Delhi")
	if err != nil {
		t.Fatalf("Expected report persisted, got %v", err)
	}
	if saved.Category != "photography" {
		t.Errorf("Unexpected stored report %+v", saved)
	}
}

func TestEngine_MetadataCounts(t *testing.T) {
	e, err := New(testConfig(), WithProvider(&onceProvider{results: mixedResults()}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	report, err := e.Discover(context.Background(), model.Request{
		Category: "photography", Location: "Delhi",
	})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	if report.Meta.QueriesIssued == 0 {
		t.Error("Expected queries issued recorded")
	}
	if report.Meta.Final != report.TotalFound {
		t.Error("Expected final count to match total found")
	}
	if report.Meta.GeneratedAt.IsZero() {
		t.Error("Expected timestamp set")
	}
}
