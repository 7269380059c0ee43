package model

// PriceRange is an estimated price band in INR for a vendor's category
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// SocialLinks holds social/maps handles extracted from result text
type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
	Maps      string `json:"maps,omitempty"`
}

// ScoreBreakdown is the transparent per-candidate scoring record.
// TotalScore is always recomputed from the sub-scores, never set directly.
type ScoreBreakdown struct {
	VendorScore   int      `json:"vendor_score"`
	DomainScore   int      `json:"domain_score"`
	ContactScore  int      `json:"contact_score"`
	SpecificScore int      `json:"specific_score"`
	RatingScore   int      `json:"rating_score"`
	TotalScore    int      `json:"total_score"`
	ContactTypes  []string `json:"contact_types,omitempty"` // which contact kinds were found: phone, email, keyword
}

// Candidate is a search result that passed validation and field extraction
// but has not yet been deduplicated.
type Candidate struct {
	Name             string      `json:"name"`
	Category         string      `json:"category"`
	Location         string      `json:"location"`
	Description      string      `json:"description,omitempty"`
	Website          string      `json:"website,omitempty"`
	Phone            string      `json:"phone,omitempty"`
	Email            string      `json:"email,omitempty"`
	Rating           float64     `json:"rating,omitempty"`
	RatingConfidence float64     `json:"rating_confidence,omitempty"`
	WeightedRating   float64     `json:"weighted_rating,omitempty"`
	Price            PriceRange  `json:"price_range"`
	Specialties      []string    `json:"specialties,omitempty"`
	Verified         bool        `json:"verified"`
	Social           SocialLinks `json:"social"`

	Score ScoreBreakdown `json:"score"`
}

// VendorRecord is a Candidate that survived deduplication and is part of
// the final ranked output. MergedFrom counts absorbed duplicates.
type VendorRecord struct {
	Candidate
	MergedFrom int `json:"merged_from"`
}
