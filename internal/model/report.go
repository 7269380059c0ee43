package model

import "time"

// Request describes one vendor discovery call
type Request struct {
	Category   string `json:"category"`
	Location   string `json:"location"`
	BudgetMin  int    `json:"budget_min,omitempty"`
	BudgetMax  int    `json:"budget_max,omitempty"`
	GuestCount int    `json:"guest_count,omitempty"`
	Theme      string `json:"theme,omitempty"`
	MaxResults int    `json:"max_results,omitempty"`
}

// Metadata captures per-discovery diagnostics
type Metadata struct {
	QueriesIssued int       `json:"queries_issued"`
	RawResults    int       `json:"raw_results"`
	Validated     int       `json:"validated"`
	Final         int       `json:"final"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// Report is the complete output of one discovery call.
// Success is false only on a hard configuration failure; partial or empty
// vendor lists are still a successful discovery.
type Report struct {
	Success    bool           `json:"success"`
	Category   string         `json:"category"`
	Location   string         `json:"location"`
	Vendors    []VendorRecord `json:"vendors"`
	TotalFound int            `json:"total_found"`
	Meta       Metadata       `json:"metadata"`
}
