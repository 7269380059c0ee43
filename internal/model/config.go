package model

import "time"

// Config is the complete engine configuration. It is built once at startup
// (flags > env > config file > defaults) and passed explicitly into the
// engine; there is no process-global state.
type Config struct {
	Provider    ProviderConfig    `yaml:"provider"`
	HTTP        HTTPConfig        `yaml:"http"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Cache       CacheConfig       `yaml:"cache"`
	Dedup       DedupConfig       `yaml:"dedup"`
	Directories DirectoryConfig   `yaml:"directories"`
	Output      OutputConfig      `yaml:"output"`
}

// ProviderConfig configures the external search provider
type ProviderConfig struct {
	Name        string  `yaml:"name"`
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url"`
	Locale      string  `yaml:"locale"`       // gl parameter, e.g. "in"
	ResultLimit int     `yaml:"result_limit"` // max results requested per query
	RatePerSec  float64 `yaml:"rate_per_sec"` // provider request rate
	Burst       int     `yaml:"burst"`
}

// HTTPConfig configures the provider HTTP client
type HTTPConfig struct {
	Timeout    time.Duration `yaml:"timeout"`
	UserAgent  string        `yaml:"user_agent"`
	HTTPProxy  string        `yaml:"http_proxy"`
	HTTPSProxy string        `yaml:"https_proxy"`
	NoProxy    string        `yaml:"no_proxy"`
}

// ConcurrencyConfig bounds the search fan-out
type ConcurrencyConfig struct {
	SearchWorkers int `yaml:"search_workers"`
}

// CacheConfig configures the query-response cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// DedupConfig tunes deduplication. The similarity threshold is deliberately
// a setting, not a constant: 0.85 has proven aggressive on noisy names.
type DedupConfig struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
}

// DirectoryConfig lists trusted directory domains by tier.
// HighValue domains score highest and mark listings as verified.
type DirectoryConfig struct {
	HighValueDomains []string `yaml:"high_value_domains"`
	TrustedDomains   []string `yaml:"trusted_domains"`
}

// OutputConfig configures report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			Name:        "serper",
			BaseURL:     "https://google.serper.dev/search",
			Locale:      "in",
			ResultLimit: 20,
			RatePerSec:  2,
			Burst:       4,
		},
		HTTP: HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "VendorScout/0.1 (+https://github.com/ppiankov/vendorscout)",
		},
		Concurrency: ConcurrencyConfig{
			SearchWorkers: 5,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   6 * time.Hour,
		},
		Dedup: DedupConfig{
			SimilarityThreshold: 0.85,
		},
		Directories: DirectoryConfig{
			HighValueDomains: []string{
				"justdial.com",
				"sulekha.com",
				"wedmegood.com",
			},
			TrustedDomains: []string{
				"indiamart.com",
				"weddingz.in",
				"shaadisaga.com",
				"urbancompany.com",
				"weddingwire.in",
			},
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
