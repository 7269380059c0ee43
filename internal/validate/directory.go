package validate

import (
	"net/url"
	"strings"

	"github.com/ppiankov/vendorscout/internal/model"
)

// Tier classifies the trust level of a result's domain
type Tier int

const (
	TierUnknown   Tier = 0 // not a known directory
	TierHighValue Tier = 1 // high-signal directory, strongest domain score
	TierTrusted   Tier = 2 // broader trusted directory set
)

func (t Tier) String() string {
	switch t {
	case TierHighValue:
		return "high_value"
	case TierTrusted:
		return "trusted"
	default:
		return "unknown"
	}
}

// DirectoryClassifier classifies result links against the configured
// trusted-directory allow-lists
type DirectoryClassifier struct {
	highValue map[string]bool
	trusted   map[string]bool
}

// NewDirectoryClassifier creates a classifier from config. A nil config
// falls back to the built-in defaults.
func NewDirectoryClassifier(cfg *model.DirectoryConfig) *DirectoryClassifier {
	if cfg == nil {
		cfg = &model.DefaultConfig().Directories
	}

	c := &DirectoryClassifier{
		highValue: make(map[string]bool),
		trusted:   make(map[string]bool),
	}
	for _, domain := range cfg.HighValueDomains {
		c.highValue[strings.ToLower(domain)] = true
	}
	for _, domain := range cfg.TrustedDomains {
		c.trusted[strings.ToLower(domain)] = true
	}

	return c
}

// Classify returns the tier for a result link. Subdomains of a listed
// domain classify the same as the domain itself.
func (c *DirectoryClassifier) Classify(link string) Tier {
	host := hostOf(link)
	if host == "" {
		return TierUnknown
	}

	if matchesDomain(host, c.highValue) {
		return TierHighValue
	}
	if matchesDomain(host, c.trusted) {
		return TierTrusted
	}
	return TierUnknown
}

// Trusted reports whether the link belongs to any allow-listed directory
func (c *DirectoryClassifier) Trusted(link string) bool {
	return c.Classify(link) != TierUnknown
}

// Domain returns the normalized host for a link, stripping port and www
func Domain(link string) string {
	return hostOf(link)
}

func hostOf(link string) string {
	if link == "" {
		return ""
	}
	if !strings.Contains(link, "://") {
		link = "https://" + link
	}
	parsed, err := url.Parse(link)
	if err != nil {
		return ""
	}

	host := strings.ToLower(parsed.Host)
	if idx := strings.Index(host, ":"); idx > 0 {
		host = host[:idx]
	}
	host = strings.TrimPrefix(host, "www.")
	return host
}

func matchesDomain(host string, domains map[string]bool) bool {
	if domains[host] {
		return true
	}
	for domain := range domains {
		if strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}
