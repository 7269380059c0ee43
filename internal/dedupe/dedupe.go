package dedupe

import (
	"strings"

	"github.com/ppiankov/vendorscout/internal/model"
	"github.com/ppiankov/vendorscout/internal/validate"
)

// strictStopPhrases mark names too generic to key a strict-pass identity;
// candidates whose name contains one are skipped in the strict pass
var strictStopPhrases = []string{
	"top 10", "best of", "directory of", "list of", "services",
}

// relaxedStopNames is the tiny stoplist of the relaxed pass: only exact
// matches are skipped there
var relaxedStopNames = []string{
	"top 10", "best of", "directory of",
}

const minKeyNameLen = 3

// Deduplicator merges candidates that refer to the same real-world
// business, keeping the highest-scoring whole candidate. Fields are never
// merged across candidates.
type Deduplicator struct {
	threshold float64
}

// New creates a deduplicator. A non-positive threshold falls back to 0.85.
func New(threshold float64) *Deduplicator {
	if threshold <= 0 || threshold > 1 {
		threshold = 0.85
	}
	return &Deduplicator{threshold: threshold}
}

// Dedupe reduces candidates to vendor records. Candidates whose names are
// too generic to anchor a strict identity are routed through the relaxed
// key instead of being dropped, so distinct vendors always survive. If the
// strict pass empties a non-empty input it falls back to the relaxed key
// for everything, and as a last resort to the input itself: a non-empty
// filtered list never dedupes to nothing.
func (d *Deduplicator) Dedupe(candidates []model.Candidate) []model.VendorRecord {
	if len(candidates) == 0 {
		return []model.VendorRecord{}
	}

	records, skipped := d.strictPass(candidates)
	if len(records) == 0 {
		records = d.relaxedPass(candidates)
	} else if len(skipped) > 0 {
		records = append(records, d.relaxedPass(skipped)...)
	}
	if len(records) == 0 {
		records = passthrough(candidates)
	}

	return records
}

// strictPass compares normalized names and website domains pairwise.
// Names that are too short or too generic cannot anchor an identity; those
// candidates are returned to the caller for relaxed keying rather than
// merged here.
func (d *Deduplicator) strictPass(candidates []model.Candidate) ([]model.VendorRecord, []model.Candidate) {
	var kept []model.VendorRecord
	var skipped []model.Candidate

	for _, c := range candidates {
		name := normalizeName(c.Name)
		if len(name) < minKeyNameLen || containsStopPhrase(name) {
			skipped = append(skipped, c)
			continue
		}
		domain := validate.Domain(c.Website)

		merged := false
		for i := range kept {
			if d.sameBusiness(name, domain, kept[i]) {
				kept[i] = absorb(kept[i], c)
				merged = true
				break
			}
		}
		if !merged {
			kept = append(kept, model.VendorRecord{Candidate: c})
		}
	}

	return kept, skipped
}

// relaxedPass keys on the first 10 characters of the normalized name plus
// the domain, skipping only names shorter than 3 characters or exactly on
// the tiny stoplist
func (d *Deduplicator) relaxedPass(candidates []model.Candidate) []model.VendorRecord {
	seen := make(map[string]int)
	var kept []model.VendorRecord

	for _, c := range candidates {
		name := normalizeName(c.Name)
		if len(name) < minKeyNameLen || isRelaxedStopName(name) {
			continue
		}

		key := relaxedKey(name, validate.Domain(c.Website))
		if idx, ok := seen[key]; ok {
			kept[idx] = absorb(kept[idx], c)
			continue
		}
		seen[key] = len(kept)
		kept = append(kept, model.VendorRecord{Candidate: c})
	}

	return kept
}

// passthrough wraps the filtered list unchanged, prioritizing availability
// over strict uniqueness
func passthrough(candidates []model.Candidate) []model.VendorRecord {
	records := make([]model.VendorRecord, len(candidates))
	for i, c := range candidates {
		records[i] = model.VendorRecord{Candidate: c}
	}
	return records
}

// sameBusiness reports whether (name, domain) identifies the same business
// as an already-kept record
func (d *Deduplicator) sameBusiness(name, domain string, r model.VendorRecord) bool {
	keptName := normalizeName(r.Name)
	keptDomain := validate.Domain(r.Website)

	if name == keptName {
		return true
	}
	if domain != "" && domain == keptDomain {
		return true
	}
	if Ratio(name, keptName) >= d.threshold {
		return true
	}
	if domain != "" && keptDomain != "" && Ratio(domain, keptDomain) >= d.threshold {
		return true
	}
	return false
}

// absorb resolves a duplicate pair: the candidate with the higher
// preference score survives whole, and the merge counter advances
func absorb(r model.VendorRecord, c model.Candidate) model.VendorRecord {
	merged := r.MergedFrom + 1
	if preference(c) > preference(r.Candidate) {
		r = model.VendorRecord{Candidate: c}
	}
	r.MergedFrom = merged
	return r
}

// preference orders duplicates: match score when present, otherwise the
// rating scaled to a comparable magnitude
func preference(c model.Candidate) float64 {
	if c.Score.TotalScore > 0 {
		return float64(c.Score.TotalScore)
	}
	return c.Rating * 20
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func relaxedKey(name, domain string) string {
	if len(name) > 10 {
		name = name[:10]
	}
	return name + "|" + domain
}

func containsStopPhrase(name string) bool {
	for _, phrase := range strictStopPhrases {
		if strings.Contains(name, phrase) {
			return true
		}
	}
	return false
}

func isRelaxedStopName(name string) bool {
	for _, stop := range relaxedStopNames {
		if name == stop {
			return true
		}
	}
	return false
}
