package score

import (
	"regexp"
	"strings"

	"github.com/ppiankov/vendorscout/internal/model"
	"github.com/ppiankov/vendorscout/internal/validate"
)

// Composite weights. The total is always derived from the sub-scores:
// total = 2*vendor + 3*domain + 2*specific + 1*rating + 1*contact.
const (
	weightVendor   = 2
	weightDomain   = 3
	weightSpecific = 2
	weightRating   = 1
	weightContact  = 1
)

// vendorKeywords are generic trade words: +2 per keyword in the title,
// +1 per occurrence in the snippet
var vendorKeywords = []string{
	"photographer", "caterer", "decorator", "planner", "studio",
	"makeup artist", "vendor", "events", "dj",
}

// specificNouns identify a concrete business in the title: +2 each
var specificNouns = []string{
	"studio", "palace", "resort", "banquet", "farmhouse",
	"caterers", "decorators", "photography", "films", "hall",
}

// contactKeywords each add +1 to the contact score when present
var contactKeywords = []string{
	"contact", "call", "book", "enquiry", "phone", "email",
}

// ratingKeywords each add +1 to the rating score when present
var ratingKeywords = []string{
	"rating", "rated", "reviews", "stars", "testimonials",
}

var (
	phoneRe = regexp.MustCompile(`(?:\+91[\s-]?|0)?[6-9]\d{4}[\s-]?\d{5}`)
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
)

// Scorer computes the weighted composite relevance/quality score for a
// candidate. Scoring is a pure function of the result text and link:
// rescoring the same candidate always yields the same breakdown.
type Scorer struct {
	classifier *validate.DirectoryClassifier
}

// NewScorer creates a scorer using the configured directory tiers for the
// domain sub-score
func NewScorer(classifier *validate.DirectoryClassifier) *Scorer {
	return &Scorer{classifier: classifier}
}

// Score computes the breakdown for a candidate derived from r
func (s *Scorer) Score(r model.RawResult) model.ScoreBreakdown {
	title := strings.ToLower(r.Title)
	snippet := strings.ToLower(r.Snippet)

	b := model.ScoreBreakdown{
		VendorScore:   vendorScore(title, snippet),
		DomainScore:   s.domainScore(r.Link),
		SpecificScore: specificScore(title),
		RatingScore:   ratingScore(snippet),
	}
	b.ContactScore, b.ContactTypes = contactScore(r.Snippet, snippet)
	b.TotalScore = Total(b)

	return b
}

// Total recomputes the composite from the sub-scores
func Total(b model.ScoreBreakdown) int {
	return weightVendor*b.VendorScore +
		weightDomain*b.DomainScore +
		weightSpecific*b.SpecificScore +
		weightRating*b.RatingScore +
		weightContact*b.ContactScore
}

// Keep is the post-scoring quality gate: a candidate survives if any
// contact type was found, the total clears the floor, or the link is from
// a trusted directory.
func (s *Scorer) Keep(c model.Candidate) bool {
	return len(c.Score.ContactTypes) >= 1 ||
		c.Score.TotalScore >= 3 ||
		s.classifier.Trusted(c.Website)
}

func vendorScore(title, snippet string) int {
	score := 0
	for _, kw := range vendorKeywords {
		if strings.Contains(title, kw) {
			score += 2
		}
		score += strings.Count(snippet, kw)
	}
	return score
}

func (s *Scorer) domainScore(link string) int {
	switch s.classifier.Classify(link) {
	case validate.TierHighValue:
		return 5
	case validate.TierTrusted:
		return 3
	default:
		return 0
	}
}

func specificScore(title string) int {
	score := 0
	for _, noun := range specificNouns {
		if strings.Contains(title, noun) {
			score += 2
		}
	}
	return score
}

func ratingScore(snippet string) int {
	score := 0
	for _, kw := range ratingKeywords {
		if strings.Contains(snippet, kw) {
			score++
		}
	}
	return score
}

// contactScore awards +4 for a phone match, +3 for an email match, and +1
// per distinct contact keyword. ContactTypes records the kinds found.
func contactScore(snippet, lowered string) (int, []string) {
	score := 0
	var types []string

	if phoneRe.MatchString(snippet) {
		score += 4
		types = append(types, "phone")
	}
	if emailRe.MatchString(snippet) {
		score += 3
		types = append(types, "email")
	}

	keywordHit := false
	for _, kw := range contactKeywords {
		if strings.Contains(lowered, kw) {
			score++
			keywordHit = true
		}
	}
	if keywordHit {
		types = append(types, "keyword")
	}

	return score, types
}
