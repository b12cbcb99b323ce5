package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// API Docs: https://wiki.openstreetmap.org/wiki/Overpass_API
const (
	DefaultURL     = "https://overpass-api.de/api/interpreter"
	DefaultTimeout = 25 * time.Second
)

// StatusError is a non-2xx interpreter response. 429 and 5xx are transient.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("overpass returned status %d: %s", e.Code, e.Body)
}

// Temporary reports whether retrying the request may succeed
func (e *StatusError) Temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

type Client struct {
	httpClient *http.Client
	url        string
	timeout    time.Duration
	logger     *slog.Logger
}

// NewClient creates an interpreter client. timeout bounds the server-side
// query; the HTTP client allows a little longer so the server can answer first.
func NewClient(interpreterURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if interpreterURL == "" {
		interpreterURL = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout + 10*time.Second},
		url:        interpreterURL,
		timeout:    timeout,
		logger:     logger.With("component", "overpass"),
	}
}

// BuildAmenityQuery returns an Overpass QL query for nodes and ways tagged
// amenity=<amenity> within radiusMeters of the coordinate.
func BuildAmenityQuery(amenity string, radiusMeters int, latitude, longitude float64, timeout time.Duration) string {
	around := fmt.Sprintf("(around:%d,%s,%s)",
		radiusMeters,
		strconv.FormatFloat(latitude, 'f', -1, 64),
		strconv.FormatFloat(longitude, 'f', -1, 64),
	)
	filter := fmt.Sprintf(`["amenity"=%s]`, strconv.Quote(amenity))

	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];\n", int(timeout.Seconds()))
	b.WriteString("(\n")
	fmt.Fprintf(&b, "  node%s%s;\n", filter, around)
	fmt.Fprintf(&b, "  way%s%s;\n", filter, around)
	b.WriteString(");\n")
	b.WriteString("out center;\n")
	return b.String()
}

// SearchAmenity returns all elements tagged amenity=<amenity> around the coordinate
func (c *Client) SearchAmenity(ctx context.Context, amenity string, radiusMeters int, latitude, longitude float64) (*APIResponse, error) {
	query := BuildAmenityQuery(amenity, radiusMeters, latitude, longitude, c.timeout)

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	// runtime errors come back as 200 with a remark and no elements
	if apiResp.Remark != "" && len(apiResp.Elements) == 0 && strings.Contains(strings.ToLower(apiResp.Remark), "error") {
		return nil, fmt.Errorf("overpass query failed: %s", apiResp.Remark)
	}

	c.logger.Debug("overpass search complete",
		"amenity", amenity,
		"radius_m", radiusMeters,
		"elements", len(apiResp.Elements),
		"duration", time.Since(start),
	)

	return &apiResp, nil
}
