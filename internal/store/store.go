package store

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/ppiankov/vendorscout/internal/model"
)

// ErrNotFound is returned when no report exists for a (category, location)
var ErrNotFound = errors.New("store: report not found")

// Store persists discovery reports keyed by (category, location). The
// engine treats persistence as optional: discovery works identically with
// no store configured, and store failures never fail a discovery.
type Store interface {
	Save(ctx context.Context, report *model.Report) error
	Load(ctx context.Context, category, location string) (*model.Report, error)
	Close() error
}

// Key normalizes a (category, location) pair into a lookup key
func Key(category, location string) string {
	return normalize(category) + "|" + normalize(location)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MemoryStore keeps reports in process memory, mainly for tests and
// single-run usage
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[string]*model.Report
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[string]*model.Report)}
}

// Save stores a report, replacing any previous one for the same pair
func (s *MemoryStore) Save(ctx context.Context, report *model.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[Key(report.Category, report.Location)] = report
	return nil
}

// Load returns the stored report or ErrNotFound
func (s *MemoryStore) Load(ctx context.Context, category, location string) (*model.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.reports[Key(category, location)]
	if !ok {
		return nil, ErrNotFound
	}
	return report, nil
}

// Close is a no-op for the memory store
func (s *MemoryStore) Close() error {
	return nil
}
