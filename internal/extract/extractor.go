package extract

import (
	"strings"

	"github.com/ppiankov/vendorscout/internal/model"
	"github.com/ppiankov/vendorscout/internal/validate"
)

// Extractor pulls structured vendor attributes out of validated search
// results. Every sub-extractor is total: malformed or empty input yields
// empty-string / zero / empty-list defaults, never an error.
type Extractor struct {
	classifier  *validate.DirectoryClassifier
	priceTable  map[string]model.PriceRange
	specialties map[string][]string
}

// specialtyCategories fixes the lookup order for compound categories so
// extraction stays deterministic
var specialtyCategories = []string{"photography", "catering", "decoration", "makeup", "venue", "music"}

// NewExtractor creates an extractor using the configured directory
// allow-lists for the verified flag
func NewExtractor(classifier *validate.DirectoryClassifier) *Extractor {
	return &Extractor{
		classifier: classifier,
		priceTable: map[string]model.PriceRange{
			"photography": {Min: 15000, Max: 150000},
			"catering":    {Min: 20000, Max: 300000},
			"decoration":  {Min: 10000, Max: 200000},
			"makeup":      {Min: 5000, Max: 50000},
			"venue":       {Min: 50000, Max: 500000},
			"music":       {Min: 10000, Max: 100000},
		},
		specialties: map[string][]string{
			"photography": {"candid", "pre-wedding", "cinematic", "drone", "traditional", "portrait"},
			"catering":    {"vegetarian", "multi-cuisine", "live counters", "jain", "buffet", "south indian"},
			"decoration":  {"floral", "theme decor", "stage", "lighting", "mandap", "balloon"},
			"makeup":      {"bridal", "hd makeup", "airbrush", "hairstyling", "party makeup"},
			"venue":       {"banquet", "lawn", "rooftop", "poolside", "air conditioned"},
			"music":       {"bollywood", "live band", "sufi", "sangeet", "dhol"},
		},
	}
}

// Extract builds a Candidate from a validated result. It never runs on
// rejected results; callers filter through the validator first.
func (e *Extractor) Extract(q model.SearchQuery, r model.RawResult) model.Candidate {
	text := r.Title + " " + r.Snippet
	rating, confidence := extractRating(text)

	return model.Candidate{
		Name:             extractName(r.Title),
		Category:         q.Category,
		Location:         q.Location,
		Description:      strings.TrimSpace(r.Snippet),
		Website:          strings.TrimSpace(r.Link),
		Phone:            extractPhone(text),
		Email:            extractEmail(text),
		Rating:           rating,
		RatingConfidence: confidence,
		WeightedRating:   rating * confidence,
		Price:            e.priceRange(q.Category),
		Specialties:      e.extractSpecialties(q.Category, text),
		Verified:         e.classifier.Trusted(r.Link),
		Social:           extractSocial(text, r.Link),
	}
}

// priceRange looks up the category price band, scanning for a known
// category keyword inside compound categories ("wedding photography").
// The scan follows the fixed specialtyCategories order so a category
// matching two keywords always resolves the same way.
func (e *Extractor) priceRange(category string) model.PriceRange {
	category = strings.ToLower(category)
	if pr, ok := e.priceTable[category]; ok {
		return pr
	}
	for _, keyword := range specialtyCategories {
		if strings.Contains(category, keyword) {
			return e.priceTable[keyword]
		}
	}
	return model.PriceRange{Min: 5000, Max: 100000}
}

// extractSpecialties matches the category keyword dictionary against the
// text, deduplicated and capped at five entries
func (e *Extractor) extractSpecialties(category, text string) []string {
	category = strings.ToLower(category)
	keywords := e.specialties[category]
	if keywords == nil {
		for _, cat := range specialtyCategories {
			if strings.Contains(category, cat) {
				keywords = e.specialties[cat]
				break
			}
		}
	}

	lowered := strings.ToLower(text)
	seen := make(map[string]bool)
	var found []string
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) && !seen[kw] {
			seen[kw] = true
			found = append(found, kw)
			if len(found) == 5 {
				break
			}
		}
	}
	return found
}
