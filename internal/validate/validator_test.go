package validate

import (
	"testing"

	"github.com/ppiankov/vendorscout/internal/model"
)

func TestValidator_RejectsCollectionPages(t *testing.T) {
	v := NewValidator()

	titles := []string{
		"Top 10 Caterers in Mumbai",
		"Best Wedding Photographers 2024",
		"List of Banquet Halls Delhi",
		"Booking Agents for DJs",
	}

	for _, title := range titles {
		r := model.RawResult{
			Title:   title,
			Snippet: "Contact us for booking, call 98765 43210",
			Link:    "https://example.com/page",
		}
		ok, reason := v.Check(r)
		if ok {
			t.Errorf("Expected rejection for %q", title)
		}
		if reason != "collection_page" {
			t.Errorf("Expected collection_page reason for %q, got %q", title, reason)
		}
	}
}

func TestValidator_RejectsBlogContent(t *testing.T) {
	v := NewValidator()

	r := model.RawResult{
		Title:   "Sharma Photography",
		Snippet: "Ultimate guide on choosing a photographer for your wedding",
		Link:    "https://example.com/post",
	}

	ok, reason := v.Check(r)
	if ok {
		t.Error("Expected rejection of guide content")
	}
	if reason != "blog_content" {
		t.Errorf("Expected blog_content reason, got %q", reason)
	}
}

func TestValidator_RejectsDirectoryURLs(t *testing.T) {
	v := NewValidator()

	links := []string{
		"https://example.com/directory/photographers",
		"https://example.com/category/catering",
		"https://example.com/venues/delhi",
	}

	for _, link := range links {
		r := model.RawResult{
			Title:   "Sharma Photography",
			Snippet: "Our services include candid shoots. Book now.",
			Link:    link,
		}
		ok, reason := v.Check(r)
		if ok {
			t.Errorf("Expected rejection for link %q", link)
		}
		if reason != "directory_url" {
			t.Errorf("Expected directory_url reason for %q, got %q", link, reason)
		}
	}
}

func TestValidator_RequiresBusinessName(t *testing.T) {
	v := NewValidator()

	r := model.RawResult{
		Title:   "cheap catering available here",
		Snippet: "Contact us at 98765 43210",
		Link:    "https://example.com/page",
	}

	ok, reason := v.Check(r)
	if ok {
		t.Error("Expected rejection without a business-name pattern")
	}
	if reason != "no_business_name" {
		t.Errorf("Expected no_business_name reason, got %q", reason)
	}
}

func TestValidator_RequiresBusinessSignal(t *testing.T) {
	v := NewValidator()

	r := model.RawResult{
		Title:   "Royal Palace Banquets",
		Snippet: "a venue somewhere in the city",
		Link:    "https://royalpalace.example.com",
	}

	ok, reason := v.Check(r)
	if ok {
		t.Error("Expected rejection without contact or specific-business signal")
	}
	if reason != "no_business_signal" {
		t.Errorf("Expected no_business_signal reason, got %q", reason)
	}
}

func TestValidator_AcceptsIndividualBusiness(t *testing.T) {
	v := NewValidator()

	results := []model.RawResult{
		{
			Title:   "Royal Decor Studio - Wedding Decoration",
			Snippet: "Contact us at 98765 43210 for stage and floral decor",
			Link:    "https://royaldecorstudio.in",
		},
		{
			Title:   "Sharma Caterers Pvt Ltd",
			Snippet: "Our services include multi-cuisine catering. Book now.",
			Link:    "https://sharmacaterers.in/about",
		},
	}

	for _, r := range results {
		if ok, reason := v.Check(r); !ok {
			t.Errorf("Expected acceptance for %q, rejected with %q", r.Title, reason)
		}
	}
}

func TestValidator_FilterPreservesOrder(t *testing.T) {
	v := NewValidator()

	input := []model.RawResult{
		{Title: "Top 10 Delhi Photographers", Snippet: "contact", Link: "https://a.example"},
		{Title: "Pixel Studio", Snippet: "Book now, call 98765 43210", Link: "https://pixel.example"},
		{Title: "Lens Craft Films", Snippet: "Our services and portfolio", Link: "https://lenscraft.example"},
	}

	out := v.Filter(input)
	if len(out) != 2 {
		t.Fatalf("Expected 2 accepted results, got %d", len(out))
	}
	if out[0].Title != "Pixel Studio" || out[1].Title != "Lens Craft Films" {
		t.Error("Expected discovery order preserved")
	}
}
