// Package directory gates account provisioning on an external
// employee-directory service. Lookups are cached and upstream failures
// fall back to a configured allow/deny decision instead of propagating.
package directory

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/gravadigital/eventi-api/internal/config"
	"github.com/gravadigital/eventi-api/internal/logger"
)

// Gate checks whether an email belongs to a current employee
type Gate interface {
	IsEmployee(email string) bool
}

// Client is the HTTP-backed Gate implementation
type Client struct {
	baseURL       string
	httpClient    *http.Client
	cache         *expirable.LRU[string, bool]
	fallbackAllow bool
	log           *log.Logger
}

type existsResponse struct {
	Exists bool `json:"exists"`
}

// New creates a directory client from configuration
func New(cfg *config.Config) *Client {
	return NewClient(cfg.Directory.URL, cfg.Directory.FallbackAllow, cfg.Directory.Timeout, cfg.Directory.CacheSize, cfg.Directory.CacheTTL)
}

// NewClient creates a directory client with explicit parameters
func NewClient(baseURL string, fallbackAllow bool, timeout time.Duration, cacheSize int, cacheTTL time.Duration) *Client {
	return &Client{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		httpClient:    &http.Client{Timeout: timeout},
		cache:         expirable.NewLRU[string, bool](cacheSize, nil, cacheTTL),
		fallbackAllow: fallbackAllow,
		log:           logger.Directory(),
	}
}

// IsEmployee checks if an email belongs to a valid employee. Results are
// cached on the lowercased email; when the directory is unreachable the
// configured fallback decision is returned.
func (c *Client) IsEmployee(email string) bool {
	key := strings.ToLower(email)

	if cached, ok := c.cache.Get(key); ok {
		return cached
	}

	exists, err := c.lookup(email)
	if err != nil {
		c.log.Warn("Employee directory unreachable", "email", email, "fallback_allow", c.fallbackAllow, "error", err)
		return c.fallbackAllow
	}

	c.cache.Add(key, exists)
	return exists
}

func (c *Client) lookup(email string) (bool, error) {
	endpoint := c.baseURL + "/employees?email=" + url.QueryEscape(email)

	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return false, fmt.Errorf("directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("directory returned status %d", resp.StatusCode)
	}

	var body existsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("failed to decode directory response: %w", err)
	}

	return body.Exists, nil
}
