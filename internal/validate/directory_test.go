package validate

import (
	"testing"

	"github.com/ppiankov/vendorscout/internal/model"
)

func TestDirectoryClassifier_Tiers(t *testing.T) {
	c := NewDirectoryClassifier(&model.DirectoryConfig{
		HighValueDomains: []string{"justdial.com", "sulekha.com"},
		TrustedDomains:   []string{"indiamart.com"},
	})

	tests := []struct {
		link string
		want Tier
	}{
		{"https://www.justdial.com/Delhi/Sharma-Caterers", TierHighValue},
		{"https://mumbai.sulekha.com/royal-decor", TierHighValue},
		{"https://www.indiamart.com/lens-craft", TierTrusted},
		{"https://lenscraft.example.com", TierUnknown},
		{"", TierUnknown},
		{"://bad url", TierUnknown},
	}

	for _, tt := range tests {
		if got := c.Classify(tt.link); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.link, got, tt.want)
		}
	}
}

func TestDirectoryClassifier_NilConfigUsesDefaults(t *testing.T) {
	c := NewDirectoryClassifier(nil)

	if !c.Trusted("https://www.justdial.com/listing") {
		t.Error("Expected default high-value domain to be trusted")
	}
	if c.Trusted("https://random.example.com") {
		t.Error("Expected unknown domain to be untrusted")
	}
}

func TestDomain_Normalization(t *testing.T) {
	tests := []struct {
		link string
		want string
	}{
		{"https://www.JustDial.com:443/path", "justdial.com"},
		{"sharmacaterers.in/contact", "sharmacaterers.in"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Domain(tt.link); got != tt.want {
			t.Errorf("Domain(%q) = %q, want %q", tt.link, got, tt.want)
		}
	}
}
