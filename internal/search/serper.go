package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html"

	"github.com/ppiankov/vendorscout/internal/model"
	"github.com/ppiankov/vendorscout/internal/util"
)

const maxResponseBytes = 2_000_000

// SerperClient talks to a serper.dev-style search API: a JSON POST with
// the query returns organic results as {title, link, snippet} objects.
type SerperClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	locale     string
	userAgent  string
}

type serperRequest struct {
	Query  string `json:"q"`
	Num    int    `json:"num"`
	Locale string `json:"gl,omitempty"`
}

type serperResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
}

// NewSerperClient creates a provider client from config. A missing API
// key is a hard configuration error.
func NewSerperClient(provider model.ProviderConfig, httpCfg model.HTTPConfig) (*SerperClient, error) {
	if provider.APIKey == "" {
		return nil, ErrMissingCredentials
	}

	baseURL := provider.BaseURL
	if baseURL == "" {
		baseURL = model.DefaultConfig().Provider.BaseURL
	}

	return &SerperClient{
		httpClient: &http.Client{
			Timeout: httpCfg.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(httpCfg.HTTPProxy, httpCfg.HTTPSProxy, httpCfg.NoProxy),
			},
		},
		apiKey:    provider.APIKey,
		baseURL:   baseURL,
		locale:    provider.Locale,
		userAgent: httpCfg.UserAgent,
	}, nil
}

// Name identifies the provider in logs and cache keys
func (c *SerperClient) Name() string {
	return "serper"
}

// Search issues one provider request and returns the raw result triples.
// Provider highlight markup in titles and snippets is stripped before the
// triples reach validation.
func (c *SerperClient) Search(ctx context.Context, query string, limit int) ([]model.RawResult, error) {
	payload, err := json.Marshal(serperRequest{
		Query:  query,
		Num:    limit,
		Locale: c.locale,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var parsed serperResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	results := make([]model.RawResult, 0, len(parsed.Organic))
	for _, item := range parsed.Organic {
		results = append(results, model.RawResult{
			Title:   stripMarkup(item.Title),
			Snippet: stripMarkup(item.Snippet),
			Link:    strings.TrimSpace(item.Link),
		})
	}

	return results, nil
}

// stripMarkup removes highlight tags (<b>, <em>) the provider embeds in
// titles and snippets, keeping only the text content
func stripMarkup(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}

	var buf strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			buf.WriteString(tokenizer.Token().Data)
		}
	}

	return strings.TrimSpace(buf.String())
}
