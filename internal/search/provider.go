package search

import (
	"context"
	"errors"

	"github.com/ppiankov/vendorscout/internal/model"
)

// ErrMissingCredentials is the one hard configuration failure: without an
// API key no discovery is attempted at all.
var ErrMissingCredentials = errors.New("search provider: missing API key")

// Provider is the external web search API. Implementations return zero or
// more raw result triples for a query; transient failures surface as
// errors and the executor treats them as zero results.
type Provider interface {
	Search(ctx context.Context, query string, limit int) ([]model.RawResult, error)
	Name() string
}
