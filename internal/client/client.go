package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/Rorical/ChairFinder/internal/models"
)

const (
	RecommendPath      = "/api/recommend"
	QuickRecommendPath = "/api/quick-recommend"

	maxResponseBytes = 10 << 20
	probeTimeout     = 5 * time.Second
)

var Version = "dev"

// ResponseError reports a response that could not be used as an envelope
type ResponseError struct {
	Status int
	Err    error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("unusable response (status %d): %v", e.Status, e.Err)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

var errMissingRecommendations = errors.New("success response without recommendations")

// Client talks to the recommendation server
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}

	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Recommend sends a free-text query. A nil error means an envelope was
// decoded; the envelope may still report success=false.
func (c *Client) Recommend(ctx context.Context, query string) (*models.Envelope, error) {
	return c.post(ctx, RecommendPath, models.QueryRequest{Query: query})
}

// QuickRecommend asks for a predefined category
func (c *Client) QuickRecommend(ctx context.Context, t models.QuickType) (*models.Envelope, error) {
	return c.post(ctx, QuickRecommendPath, models.QuickRequest{Type: t})
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) (*models.Envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ResolveURL(path), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "ChairFinder/"+Version)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, &ResponseError{Status: resp.StatusCode, Err: fmt.Errorf("failed to read body: %w", err)}
	}
	if len(data) > maxResponseBytes {
		return nil, &ResponseError{Status: resp.StatusCode, Err: errors.New("response body too large")}
	}

	var env models.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &ResponseError{Status: resp.StatusCode, Err: fmt.Errorf("failed to decode envelope: %w", err)}
	}

	if env.Success && env.Recommendations == nil {
		return nil, &ResponseError{Status: resp.StatusCode, Err: errMissingRecommendations}
	}

	return &env, nil
}

// ResolveURL resolves a server-relative reference (such as an image path)
// against the base URL. Absolute URLs are returned unchanged.
func (c *Client) ResolveURL(ref string) string {
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if r.IsAbs() {
		return r.String()
	}

	base := *c.baseURL
	if strings.HasPrefix(r.Path, "/") {
		base.Path = strings.TrimRight(base.Path, "/") + r.Path
	} else {
		base.Path = strings.TrimRight(base.Path, "/") + "/" + r.Path
	}
	base.RawPath = ""
	base.RawQuery = r.RawQuery
	base.Fragment = ""
	return base.String()
}

// ProbeImage reports whether the image at ref can be loaded
func (c *Client) ProbeImage(ctx context.Context, ref string) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.ResolveURL(ref), nil)
	if err != nil {
		return fmt.Errorf("failed to create probe: %w", err)
	}
	req.Header.Set("User-Agent", "ChairFinder/"+Version)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("image probe failed: %w", err)
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("image probe returned %s", resp.Status)
	}
	return nil
}
