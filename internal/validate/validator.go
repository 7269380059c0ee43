package validate

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/ppiankov/vendorscout/internal/model"
)

// collectionWords mark listicle/aggregator titles
var collectionWords = []string{
	"top ", "best ", "list of", "agents", "services in",
	"booking agents", "compare", "near you", "10 ", "ultimate",
}

// categoryPhrases mark generic category-page titles
var categoryPhrases = []string{
	"services in", "booking service", "providers in", "service providers",
}

// contentMarkers mark blog/guide content
var contentMarkers = []string{
	"blog", "how to", "ultimate guide", "tips for", "guide to",
}

// directorySegments are URL path segments of collection pages
var directorySegments = []string{
	"/directory/", "/category/", "/venues/", "/listings/",
	"/search/", "/vendors/", "/tags/",
}

// contactIndicators are positive contact signals in snippets
var contactIndicators = []string{
	"contact", "booking", "call us", "enquiry", "+91", "phone",
}

// specificIndicators mark a single business talking about itself
var specificIndicators = []string{
	"our services", "portfolio", "book now", "we offer", "our team",
}

var (
	// proper-noun business name followed by a venue/trade noun
	namePatternTrade = regexp.MustCompile(`[A-Z][a-z]+\s+(?:Studio|Studios|Palace|Resort|Resorts|Caterers|Catering|Decor|Decorators|Events|Photography|Films|Banquets|Banquet|Hall|Halls|Farms|Gardens|Venue|Planners)\b`)
	// two consecutive capitalized words
	namePatternProper = regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+\b`)
	// company suffix patterns
	namePatternSuffix = regexp.MustCompile(`(?:Pvt\.?\s*Ltd|Private Limited|LLP|Enterprises|Group|&\s*(?:Sons|Co))\b`)

	phonePattern = regexp.MustCompile(`(?:\+91[\s-]?|0)?[6-9]\d{4}[\s-]?\d{5}`)
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
)

// Validator decides whether a raw search result describes an individual
// business listing rather than a directory, blog, or collection page.
// All checks are pure and deterministic; gates are ordered cheapest first
// so the common rejection exits early.
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// Accept reports whether the result clears every gate
func (v *Validator) Accept(r model.RawResult) bool {
	ok, _ := v.Check(r)
	return ok
}

// Check runs the gates in order and returns the first rejection reason,
// or true with an empty reason if the result passes
func (v *Validator) Check(r model.RawResult) (bool, string) {
	title := strings.ToLower(r.Title)
	snippet := strings.ToLower(r.Snippet)
	link := strings.ToLower(r.Link)

	// 1. Collection-page gate
	for _, word := range collectionWords {
		if strings.Contains(title, word) {
			return false, "collection_page"
		}
	}

	// 2. Service-category gate
	for _, phrase := range categoryPhrases {
		if strings.Contains(title, phrase) {
			return false, "category_page"
		}
	}

	// 3. Content gate
	for _, marker := range contentMarkers {
		if strings.Contains(title, marker) || strings.Contains(snippet, marker) {
			return false, "blog_content"
		}
	}

	// 4. Directory-URL gate
	if path := linkPath(link); path != "" {
		for _, segment := range directorySegments {
			if strings.Contains(path, segment) {
				return false, "directory_url"
			}
		}
	}

	// 5. Positive business-name gate (original case matters here)
	if !looksLikeBusinessName(r.Title) {
		return false, "no_business_name"
	}

	// 6. Positive signal gate: contact indicator or specific-business indicator
	if !hasContactSignal(r.Snippet, snippet) && !hasSpecificSignal(snippet) {
		return false, "no_business_signal"
	}

	return true, ""
}

// Filter returns only the results that pass validation, preserving order
func (v *Validator) Filter(results []model.RawResult) []model.RawResult {
	var accepted []model.RawResult
	for _, r := range results {
		if v.Accept(r) {
			accepted = append(accepted, r)
		}
	}
	return accepted
}

// linkPath extracts the URL path with a trailing slash so segment matching
// also catches paths that end in a directory word
func linkPath(link string) string {
	parsed, err := url.Parse(link)
	if err != nil {
		return link
	}
	path := parsed.Path
	if path != "" && !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return path
}

func looksLikeBusinessName(title string) bool {
	return namePatternTrade.MatchString(title) ||
		namePatternProper.MatchString(title) ||
		namePatternSuffix.MatchString(title)
}

func hasContactSignal(snippet, lowered string) bool {
	if phonePattern.MatchString(snippet) || emailPattern.MatchString(snippet) {
		return true
	}
	for _, indicator := range contactIndicators {
		if strings.Contains(lowered, indicator) {
			return true
		}
	}
	return false
}

func hasSpecificSignal(lowered string) bool {
	for _, indicator := range specificIndicators {
		if strings.Contains(lowered, indicator) {
			return true
		}
	}
	return false
}
