package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/vendorscout/internal/model"
)

func isWordByte(b byte) bool {
	return b == '_' || b == '.' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

var (
	// Indian-style 10-digit mobile numbers with optional country code
	phoneRe = regexp.MustCompile(`(?:\+91[\s-]?|0)?([6-9]\d{4}[\s-]?\d{5})`)

	// standard email grammar, optionally behind a label
	emailRe = regexp.MustCompile(`(?i)(?:e-?mail|contact|info)?\s*[:\-]?\s*([a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,})`)

	// rating in "4.5/5", "4.5 stars", "rating: 4.5" forms. The number must
	// not continue a longer one, so "4.75/5" reads 4.75 rather than 5/5.
	ratingSlashRe = regexp.MustCompile(`(?:^|[^\d.])(\d(?:\.\d{1,2})?)\s*/\s*5`)
	ratingStarsRe = regexp.MustCompile(`(?i)(?:^|[^\d.])(\d(?:\.\d{1,2})?)\s*stars?`)
	ratingLabelRe = regexp.MustCompile(`(?i)rating[:\s]+(\d(?:\.\d{1,2})?)`)

	// review/user counts, e.g. "230 reviews", "1,200+ ratings"
	reviewCountRe = regexp.MustCompile(`(?i)([\d,]+)\+?\s*(?:reviews|ratings|users|votes)`)

	instagramRe = regexp.MustCompile(`@([A-Za-z][A-Za-z0-9_.]{2,29})`)
	facebookRe  = regexp.MustCompile(`facebook\.com/([A-Za-z0-9_.\-]+)`)
	whatsappRe  = regexp.MustCompile(`(?:wa\.me/|api\.whatsapp\.com/send\?phone=)(\d{6,15})`)
	mapsRe      = regexp.MustCompile(`https?://(?:maps\.google\.[a-z.]+|www\.google\.[a-z.]+/maps|goo\.gl/maps)[^\s"']*`)

	// title noise stripped during name extraction
	nameNoiseRe = regexp.MustCompile(`(?i)\s*[|\-–]\s*(?:justdial|sulekha|wedmegood|weddingz|shaadisaga|indiamart|contact(?:\s+(?:details|number|us))?|phone(?:\s+number)?|reviews?|photos?)\s*$`)
	trailingServicesRe = regexp.MustCompile(`(?i)\s+services\s*$`)
)

const minNameLen = 3

// extractName cleans a result title down to a business name. If stripping
// collapses the title below the minimum length it falls back to the text
// before the first colon/dash, then to the first three words.
func extractName(title string) string {
	name := strings.TrimSpace(title)

	// Peel trailing noise segments repeatedly; titles often stack them
	// ("Sharma Caterers - Contact Details | Justdial").
	for {
		stripped := nameNoiseRe.ReplaceAllString(name, "")
		stripped = trailingServicesRe.ReplaceAllString(stripped, "")
		stripped = strings.TrimSpace(stripped)
		if stripped == name {
			break
		}
		name = stripped
	}

	if len(name) >= minNameLen {
		return name
	}

	// Fallback: text before the first colon or dash
	if idx := strings.IndexAny(title, ":-"); idx > 0 {
		head := strings.TrimSpace(title[:idx])
		if len(head) >= minNameLen {
			return head
		}
	}

	// Last resort: first three words of the original title
	words := strings.Fields(title)
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.TrimSpace(strings.Join(words, " "))
}

// extractPhone returns the first phone match, or empty
func extractPhone(text string) string {
	m := phoneRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// extractEmail returns the first email match, or empty
func extractEmail(text string) string {
	m := emailRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// extractRating finds a rating and derives confidence from the review
// count via a fixed step function. Confidence is 0.1 when a rating is
// present but no sample size is known, and 0 when there is no rating.
func extractRating(text string) (rating float64, confidence float64) {
	for _, re := range []*regexp.Regexp{ratingSlashRe, ratingStarsRe, ratingLabelRe} {
		if m := re.FindStringSubmatch(text); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil && v <= 5 {
				rating = v
				break
			}
		}
	}
	if rating == 0 {
		return 0, 0
	}

	return rating, ratingConfidence(extractReviewCount(text))
}

// extractReviewCount returns the review/user sample size, or 0
func extractReviewCount(text string) int {
	m := reviewCountRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0
	}
	return n
}

// ratingConfidence maps sample size to confidence
func ratingConfidence(count int) float64 {
	switch {
	case count >= 100:
		return 1.0
	case count >= 50:
		return 0.8
	case count >= 20:
		return 0.6
	case count >= 10:
		return 0.4
	case count >= 5:
		return 0.2
	default:
		return 0.1
	}
}

// extractSocial pulls social handles and map links from the text and link
func extractSocial(text, link string) model.SocialLinks {
	combined := text + " " + link
	var s model.SocialLinks

	for _, loc := range instagramRe.FindAllStringSubmatchIndex(combined, -1) {
		// An @ preceded by a word character is an email, not a handle
		if loc[0] > 0 && isWordByte(combined[loc[0]-1]) {
			continue
		}
		s.Instagram = combined[loc[2]:loc[3]]
		break
	}
	if m := facebookRe.FindStringSubmatch(combined); m != nil {
		s.Facebook = "facebook.com/" + m[1]
	}
	if m := whatsappRe.FindStringSubmatch(combined); m != nil {
		s.WhatsApp = "wa.me/" + m[1]
	}
	if m := mapsRe.FindString(combined); m != "" {
		s.Maps = m
	}

	return s
}
