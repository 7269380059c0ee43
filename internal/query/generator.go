package query

import (
	"fmt"
	"strings"

	"github.com/ppiankov/vendorscout/internal/model"
)

const (
	maxQueries  = 20
	maxQueryLen = 140
)

// exclusionSuffix suppresses listicle and directory pages
const exclusionSuffix = `-"top" -"best" -"list of" -blog -directory`

// contactTerms are paired with site-restricted directory queries
var contactTerms = []string{"contact phone", "contact details", "phone number"}

// proprietorTerms target pages written by or about a single owner
var proprietorTerms = []string{"proprietor", "owner", `"founded by"`}

// Generator builds targeted search queries for a (category, location) pair.
// Generation is deterministic: identical inputs always produce the same
// ordered query list.
type Generator struct {
	synonyms    map[string][]string
	directories []string
}

// NewGenerator creates a generator using the configured trusted directories
// for site-restricted queries. At most three directories are used.
func NewGenerator(dirs *model.DirectoryConfig) *Generator {
	directories := dirs.HighValueDomains
	if len(directories) > 3 {
		directories = directories[:3]
	}

	return &Generator{
		synonyms: map[string][]string{
			"photography": {"photographer", "photography studio"},
			"catering":    {"caterer", "catering service"},
			"decoration":  {"decorator", "event decor"},
			"makeup":      {"makeup artist", "bridal makeup"},
			"venue":       {"banquet hall", "wedding venue"},
			"music":       {"dj", "live band"},
		},
		directories: directories,
	}
}

// Generate returns at most 20 queries across four strategies.
// Queries exceeding the character budget are dropped; duplicates (after
// trimming) are removed while preserving order.
func (g *Generator) Generate(req model.Request) []model.SearchQuery {
	category := strings.ToLower(strings.TrimSpace(req.Category))
	location := strings.TrimSpace(req.Location)

	var queries []model.SearchQuery
	add := func(strategy model.StrategyTag, text string) {
		queries = append(queries, model.SearchQuery{
			Category: category,
			Location: location,
			Text:     strings.TrimSpace(text),
			Strategy: strategy,
		})
	}

	// 1. Direct-business queries with negative terms per category synonym
	for _, syn := range g.synonymsFor(category) {
		add(model.StrategyBusinessName,
			fmt.Sprintf(`"%s" %s -"top" -"best" -"list"`, location, syn))
		add(model.StrategyBusinessName,
			fmt.Sprintf(`%s in %s contact -"top 10" -"best"`, syn, location))
	}
	if req.Theme != "" {
		add(model.StrategyBusinessName,
			fmt.Sprintf(`%s %s %s -"top" -"best"`, strings.ToLower(req.Theme), category, location))
	}

	// 2. Site-restricted queries against trusted directories, each paired
	// with a contact-related term
	for i, domain := range g.directories {
		term := contactTerms[i%len(contactTerms)]
		add(model.StrategyDirectory,
			fmt.Sprintf(`site:%s %s %s %s`, domain, category, location, term))
	}

	// 3. Exclusion-heavy queries with the fixed negative suffix
	add(model.StrategyExclusion,
		fmt.Sprintf(`%s %s %s`, category, location, exclusionSuffix))
	add(model.StrategyExclusion,
		fmt.Sprintf(`%s services %s %s`, category, location, exclusionSuffix))

	// 4. Proprietor/owner pattern queries
	for _, term := range proprietorTerms {
		add(model.StrategyProprietor,
			fmt.Sprintf(`"%s" %s %s`, location, category, term))
	}

	return capQueries(dedupeQueries(queries))
}

// synonymsFor returns category synonyms, falling back to the category itself
func (g *Generator) synonymsFor(category string) []string {
	if syns, ok := g.synonyms[category]; ok {
		return append([]string{category}, syns...)
	}
	return []string{category}
}

// dedupeQueries removes duplicate query texts while preserving order and
// drops queries over the character budget
func dedupeQueries(queries []model.SearchQuery) []model.SearchQuery {
	seen := make(map[string]bool)
	var unique []model.SearchQuery

	for _, q := range queries {
		if q.Text == "" || len(q.Text) > maxQueryLen {
			continue
		}
		key := strings.ToLower(q.Text)
		if !seen[key] {
			seen[key] = true
			unique = append(unique, q)
		}
	}

	return unique
}

func capQueries(queries []model.SearchQuery) []model.SearchQuery {
	if len(queries) > maxQueries {
		return queries[:maxQueries]
	}
	return queries
}
