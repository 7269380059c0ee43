package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/vendorscout/internal/cache"
	"github.com/ppiankov/vendorscout/internal/engine"
	"github.com/ppiankov/vendorscout/internal/model"
	"github.com/ppiankov/vendorscout/internal/store"
)

var (
	outJSON    string
	outMD      string
	timeout    time.Duration
	userAgent  string
	maxResults int
	budgetMin  int
	budgetMax  int
	guestCount int
	theme      string
	noCache    bool
	noFooter   bool
	dbPath     string
	httpProxy  string
	httpsProxy string
)

// discoverCmd represents the discover command
var discoverCmd = &cobra.Command{
	Use:   "discover <category> <location>",
	Short: "Discover vendors for a category in a location",
	Long: `Discover runs the full aggregation pipeline for one request:
- Generate diversified search queries for the category and location
- Execute them concurrently against the search provider
- Filter out directories, blogs, and collection pages
- Extract contact details, ratings, and specialties
- Score, deduplicate, and rank the surviving candidates

Example:
  vendorscout discover photography Delhi
  vendorscout discover catering Mumbai --max 15 --json vendors.json
  vendorscout discover "wedding decor" Jaipur --budget-min 20000 --budget-max 80000`,
	Args: cobra.ExactArgs(2),
	RunE: runDiscover,
}

func init() {
	rootCmd.AddCommand(discoverCmd)

	// Output flags
	discoverCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	discoverCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	discoverCmd.Flags().IntVar(&maxResults, "max", 10, "maximum vendors in the report")

	// Request refinement flags
	discoverCmd.Flags().IntVar(&budgetMin, "budget-min", 0, "minimum budget in INR (optional)")
	discoverCmd.Flags().IntVar(&budgetMax, "budget-max", 0, "maximum budget in INR (optional)")
	discoverCmd.Flags().IntVar(&guestCount, "guests", 0, "expected guest count (optional)")
	discoverCmd.Flags().StringVar(&theme, "theme", "", "event theme, e.g. traditional (optional)")

	// HTTP flags
	discoverCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall discovery timeout")
	discoverCmd.Flags().StringVar(&userAgent, "ua", "VendorScout/0.1 (+https://github.com/ppiankov/vendorscout)", "HTTP User-Agent")
	discoverCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable query cache (force fresh searches)")
	discoverCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	discoverCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	discoverCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// Persistence flags
	discoverCmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path for storing reports (optional)")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	category, location := args[0], args[1]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Discovering: %s in %s\n", category, location)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	opts, cleanup, err := engineOptions(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	e, err := engine.New(cfg, opts...)
	if err != nil {
		return fmt.Errorf("configure engine: %w", err)
	}

	report, err := e.Discover(ctx, model.Request{
		Category:   category,
		Location:   location,
		BudgetMin:  budgetMin,
		BudgetMax:  budgetMax,
		GuestCount: guestCount,
		Theme:      theme,
		MaxResults: maxResults,
	})
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	return renderReport(cfg, report)
}

// buildConfig assembles the engine configuration from flags and env
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Provider.APIKey = apiKey()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if cfg.Provider.APIKey == "" {
		return nil, fmt.Errorf("SERPER_API_KEY environment variable not set")
	}

	if cfg.Cache.Enabled && cfg.Cache.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("find home directory: %w", err)
		}
		cfg.Cache.Dir = filepath.Join(home, ".vendorscout", "cache")
	}

	return cfg, nil
}

// engineOptions wires the optional cache, store, and logger. The cleanup
// function closes whatever was opened.
func engineOptions(cfg *model.Config) ([]engine.Option, func(), error) {
	cleanup := func() {}

	logger, err := newLogger()
	if err != nil {
		return nil, cleanup, fmt.Errorf("build logger: %w", err)
	}
	opts := []engine.Option{engine.WithLogger(logger)}

	if cfg.Cache.Enabled {
		opts = append(opts, engine.WithCache(
			cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)))
	}

	if dbPath != "" {
		db, err := store.NewSQLiteStore(dbPath)
		if err != nil {
			return nil, cleanup, fmt.Errorf("open database: %w", err)
		}
		opts = append(opts, engine.WithStore(db))
		cleanup = func() { _ = db.Close() }
	}

	return opts, cleanup, nil
}

// renderReport writes the requested outputs and a summary to stderr
func renderReport(cfg *model.Config, report *model.Report) error {
	renderer := engine.NewRenderer(cfg.Output.IncludeFooter)

	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", outJSON)
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", outMD)
	}

	renderer.RenderSummary(report)
	return nil
}
