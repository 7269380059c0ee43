package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/vendorscout/internal/model"
)

// Renderer writes discovery reports as JSON or Markdown
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// RenderMarkdown writes a human-readable vendor list
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Vendors: %s in %s\n\n", report.Category, report.Location)
	fmt.Fprintf(&b, "Found %d vendors (%d raw results, %d validated, %d queries).\n\n",
		report.TotalFound, report.Meta.RawResults, report.Meta.Validated, report.Meta.QueriesIssued)

	for i, v := range report.Vendors {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, v.Name)
		fmt.Fprintf(&b, "- Score: %d\n", v.Score.TotalScore)
		if v.Website != "" {
			fmt.Fprintf(&b, "- Website: %s\n", v.Website)
		}
		if v.Phone != "" {
			fmt.Fprintf(&b, "- Phone: %s\n", v.Phone)
		}
		if v.Email != "" {
			fmt.Fprintf(&b, "- Email: %s\n", v.Email)
		}
		if v.Rating > 0 {
			fmt.Fprintf(&b, "- Rating: %.1f (confidence %.1f)\n", v.Rating, v.RatingConfidence)
		}
		if len(v.Specialties) > 0 {
			fmt.Fprintf(&b, "- Specialties: %s\n", strings.Join(v.Specialties, ", "))
		}
		if v.Verified {
			fmt.Fprintf(&b, "- Verified listing\n")
		}
		if v.MergedFrom > 0 {
			fmt.Fprintf(&b, "- Merged duplicates: %d\n", v.MergedFrom)
		}
		fmt.Fprintf(&b, "- Estimated price: %d - %d INR\n\n", v.Price.Min, v.Price.Max)
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\nGenerated by VendorScout at %s\n",
			report.Meta.GeneratedAt.Format("2006-01-02 15:04 UTC"))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	return nil
}

// RenderSummary prints a short result summary to stderr
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Fprintf(os.Stderr, "\n%s in %s: %d vendors\n", report.Category, report.Location, report.TotalFound)
	for i, v := range report.Vendors {
		line := fmt.Sprintf("  %2d. %-30s score=%d", i+1, v.Name, v.Score.TotalScore)
		if v.Phone != "" {
			line += "  " + v.Phone
		}
		fmt.Fprintln(os.Stderr, line)
	}
}
