package dedupe

import (
	"testing"

	"github.com/ppiankov/vendorscout/internal/model"
)

func cand(name, website string, total int) model.Candidate {
	return model.Candidate{
		Name:    name,
		Website: website,
		Score:   model.ScoreBreakdown{TotalScore: total},
	}
}

func TestDedupe_IdenticalNamesKeepHigherScore(t *testing.T) {
	d := New(0.85)

	records := d.Dedupe([]model.Candidate{
		cand("Royal Decor Studio", "https://a.example.com", 10),
		cand("Royal Decor Studio", "https://b.example.com", 25),
	})

	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].Score.TotalScore != 25 {
		t.Errorf("Expected the higher-scoring candidate to survive, got score %d", records[0].Score.TotalScore)
	}
	if records[0].MergedFrom != 1 {
		t.Errorf("Expected merged_from 1, got %d", records[0].MergedFrom)
	}
}

func TestDedupe_FuzzyNameMerge(t *testing.T) {
	d := New(0.85)

	records := d.Dedupe([]model.Candidate{
		cand("Royal Decor Studio", "https://royaldecor.in", 12),
		cand("Royal Decor Studios", "https://royaldecorstudios.in", 8),
	})

	if len(records) != 1 {
		t.Fatalf("Expected fuzzy merge into 1 record, got %d", len(records))
	}
	if records[0].Name != "Royal Decor Studio" {
		t.Errorf("Expected higher-scoring representative, got %q", records[0].Name)
	}
}

func TestDedupe_SameDomainMerges(t *testing.T) {
	d := New(0.85)

	records := d.Dedupe([]model.Candidate{
		cand("Pixel Studio", "https://www.pixelstudio.in/about", 5),
		cand("Pixel Photography House", "https://pixelstudio.in/contact", 9),
	})

	if len(records) != 1 {
		t.Fatalf("Expected domain-based merge, got %d records", len(records))
	}
}

func TestDedupe_DistinctNamesNeverCollapse(t *testing.T) {
	d := New(0.85)

	input := []model.Candidate{
		cand("Sharma Caterers", "https://sharma.example.com", 5),
		cand("Pixel Studio", "https://pixel.example.com", 6),
		cand("Royal Palace Banquets", "https://royal.example.com", 7),
		cand("Green Leaf Decor", "https://greenleaf.example.com", 8),
		cand("Mehta Makeup Artists", "https://mehta.example.com", 9),
	}

	records := d.Dedupe(input)
	if len(records) != 5 {
		t.Fatalf("Expected 5 distinct records, got %d", len(records))
	}
}

func TestDedupe_RelaxedFallback(t *testing.T) {
	d := New(0.85)

	// Names containing strict stop phrases are skipped by the strict pass,
	// so it yields zero survivors; the relaxed pass must recover them.
	input := []model.Candidate{
		cand("Sharma Catering Services", "https://sharma.example.com", 5),
		cand("Pixel Wedding Services", "https://pixel.example.com", 6),
	}

	records := d.Dedupe(input)
	if len(records) != 2 {
		t.Fatalf("Expected relaxed pass to recover 2 records, got %d", len(records))
	}
}

func TestDedupe_GenericNamesSurviveAlongsideStrictOnes(t *testing.T) {
	d := New(0.85)

	// A name the strict pass cannot key must not vanish just because other
	// candidates keyed fine; it is recovered through the relaxed key.
	input := []model.Candidate{
		cand("Sharma Services Catering", "https://sharma.example.com", 5),
		cand("Pixel Studio", "https://pixel.example.com", 6),
	}

	records := d.Dedupe(input)
	if len(records) != 2 {
		t.Fatalf("Expected both distinct vendors kept, got %d", len(records))
	}

	names := map[string]bool{}
	for _, r := range records {
		names[r.Name] = true
	}
	if !names["Sharma Services Catering"] || !names["Pixel Studio"] {
		t.Errorf("Expected both vendors present, got %v", names)
	}
}

func TestDedupe_GenericNameDuplicatesStillMerge(t *testing.T) {
	d := New(0.85)

	records := d.Dedupe([]model.Candidate{
		cand("Sharma Services", "https://sharma.example.com", 5),
		cand("Sharma Services", "https://sharma.example.com", 9),
		cand("Pixel Studio", "https://pixel.example.com", 6),
	})

	if len(records) != 2 {
		t.Fatalf("Expected the two generic-name duplicates to merge, got %d records", len(records))
	}
	for _, r := range records {
		if r.Name == "Sharma Services" && r.Score.TotalScore != 9 {
			t.Errorf("Expected the higher-scoring duplicate to survive, got score %d", r.Score.TotalScore)
		}
	}
}

func TestDedupe_NonEmptyInputNeverEmptiesOutput(t *testing.T) {
	d := New(0.85)

	// Even names the relaxed pass would skip must not produce an empty
	// result: the passthrough fallback returns the filtered list as-is.
	input := []model.Candidate{
		cand("top 10", "", 1),
		cand("ab", "", 1),
	}

	records := d.Dedupe(input)
	if len(records) == 0 {
		t.Fatal("Expected non-empty output for non-empty input")
	}
}

func TestDedupe_PreferenceFallsBackToRating(t *testing.T) {
	d := New(0.85)

	low := cand("Royal Decor Studio", "https://a.example.com", 0)
	low.Rating = 3.0
	high := cand("Royal Decor Studio", "https://b.example.com", 0)
	high.Rating = 4.5

	records := d.Dedupe([]model.Candidate{low, high})
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].Rating != 4.5 {
		t.Errorf("Expected rating*20 preference to keep the 4.5 candidate, got %v", records[0].Rating)
	}
}

func TestDedupe_EmptyInput(t *testing.T) {
	d := New(0.85)
	if records := d.Dedupe(nil); len(records) != 0 {
		t.Errorf("Expected empty output, got %d", len(records))
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b string
		min  float64
		max  float64
	}{
		{"royal decor studio", "royal decor studio", 1, 1},
		{"royal decor studio", "royal decor studios", 0.85, 1},
		{"sharma caterers", "pixel studio", 0, 0.5},
		{"", "anything", 0, 0},
	}

	for _, tt := range tests {
		got := Ratio(tt.a, tt.b)
		if got < tt.min || got > tt.max {
			t.Errorf("Ratio(%q, %q) = %v, want within [%v, %v]", tt.a, tt.b, got, tt.min, tt.max)
		}
	}
}
