package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dab97/stats-rgsu/internal/core/storage"
)

const (
	defaultBaseURL  = "https://api.notion.com/v1"
	defaultVersion  = "2022-06-28"
	maxPageSize     = 100
	defaultMaxPages = 500
	defaultTimeout  = 30 * time.Second

	errorBodyLimit = 512
)

// HTTPClient matches net/http.Client Do signature for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config defines settings for the Notion client.
type Config struct {
	Token      string
	DatabaseID string
	BaseURL    string
	Version    string
	PageSize   int
	MaxPages   int
	Timeout    time.Duration
}

// Client queries one Notion database, following cursors until exhausted.
type Client struct {
	token      string
	databaseID string
	baseURL    string
	version    string
	pageSize   int
	maxPages   int
	httpClient HTTPClient
}

// NewClient creates a Notion client. A nil httpClient gets a net/http client
// with cfg.Timeout.
func NewClient(httpClient HTTPClient, cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = defaultBaseURL
	}
	version := cfg.Version
	if version == "" {
		version = defaultVersion
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	maxPages := cfg.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	return &Client{
		token:      strings.TrimSpace(cfg.Token),
		databaseID: strings.TrimSpace(cfg.DatabaseID),
		baseURL:    base,
		version:    version,
		pageSize:   pageSize,
		maxPages:   maxPages,
		httpClient: httpClient,
	}
}

// Configured reports whether both the token and the database id are set.
func (c *Client) Configured() bool {
	return c.token != "" && c.databaseID != ""
}

type queryRequest struct {
	PageSize    int    `json:"page_size"`
	StartCursor string `json:"start_cursor,omitempty"`
}

type queryResponse struct {
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// QueryAll returns every page of the database. It returns
// storage.ErrNotConfigured without any request when credentials are missing,
// and wraps every other failure in storage.ErrUnavailable. No retries.
func (c *Client) QueryAll(ctx context.Context) ([]Page, error) {
	if !c.Configured() {
		return nil, storage.ErrNotConfigured
	}

	var (
		all    []Page
		cursor string
	)
	for page := 0; ; page++ {
		if page >= c.maxPages {
			return nil, fmt.Errorf("%w: pagination exceeded %d pages", storage.ErrUnavailable, c.maxPages)
		}

		resp, err := c.queryPage(ctx, cursor)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
		}
		all = append(all, resp.Results...)

		if !resp.HasMore || resp.NextCursor == nil || *resp.NextCursor == "" {
			break
		}
		cursor = *resp.NextCursor
	}

	slog.Info("[Notion] Database query complete", "pages", len(all))
	return all, nil
}

func (c *Client) queryPage(ctx context.Context, cursor string) (*queryResponse, error) {
	body, err := json.Marshal(queryRequest{PageSize: c.pageSize, StartCursor: cursor})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/databases/%s/query", c.baseURL, c.databaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, fmt.Errorf("notion status %d: %s", resp.StatusCode, strings.TrimSpace(string(excerpt)))
	}

	var out queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}
