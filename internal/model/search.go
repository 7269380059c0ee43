package model

// StrategyTag records which generation rule produced a search query
type StrategyTag string

const (
	StrategyBusinessName StrategyTag = "business_name" // direct-business query with negative terms
	StrategyDirectory    StrategyTag = "directory"     // site-restricted query against a trusted directory
	StrategyExclusion    StrategyTag = "exclusion"     // fixed exclusion-suffix query
	StrategyProprietor   StrategyTag = "proprietor"    // proprietor/owner pattern query
)

// SearchQuery is one targeted query for a (category, location) pair.
// Queries are generated fresh per request and never mutated.
type SearchQuery struct {
	Category string      `json:"category"`
	Location string      `json:"location"`
	Text     string      `json:"text"`
	Strategy StrategyTag `json:"strategy"`
}

// RawResult is a single result triple as returned by the search provider.
// Fields may be empty; the triple is never mutated after collection.
type RawResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}
