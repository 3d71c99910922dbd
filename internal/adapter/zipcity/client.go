// Package zipcity resolves free-text place names through the NWS
// zip/city search form.
package zipcity

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/weather-cli/internal/domain"
)

// coordParams are the redirect query parameter pairs the search result
// may carry coordinates under, in preference order.
var coordParams = [][2]string{
	{"textField1", "textField2"},
	{"lat", "lon"},
}

// Client implements domain.PlaceSearcher against the search endpoint.
type Client struct {
	httpClient *http.Client
	searchURL  string
	logger     *slog.Logger
}

// NewClient creates a place search client.
func NewClient(searchURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		searchURL:  searchURL,
		logger:     logger,
	}
}

// SearchPlace submits the query to the search form and reads the
// resolved coordinates out of the redirect target's query string.
func (c *Client) SearchPlace(ctx context.Context, query string) (domain.Coordinate, error) {
	form := url.Values{
		"inputstring": {query},
		"btnSearch":   {"Go"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.searchURL, strings.NewReader(form.Encode()))
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("place search request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	// Redirects were followed; the final request URL is the search
	// result location.
	result := resp.Request.URL
	c.logger.Debug("place search resolved", "query", query, "result", result.String())

	q := result.Query()
	for _, pair := range coordParams {
		latStr, lonStr := q.Get(pair[0]), q.Get(pair[1])
		if latStr == "" || lonStr == "" {
			continue
		}
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		return domain.Coordinate{Lat: lat, Lon: lon}, nil
	}
	return domain.Coordinate{}, fmt.Errorf("search result for %q carries no coordinates", query)
}
