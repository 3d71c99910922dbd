// Package nws implements the forecast fetcher and zip lookup against
// the National Weather Service endpoints.
package nws

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"github.com/couchcryptid/weather-cli/internal/domain"
	"github.com/couchcryptid/weather-cli/internal/dwml"
)

// Config holds the endpoint and throttling settings for the client.
type Config struct {
	ForecastURL       string // MapClick endpoint returning DWML
	ZipListURL        string // NDFD listZipCodeList endpoint
	Timeout           time.Duration
	RequestsPerSecond float64
}

// Client talks to the NWS forecast and zip listing services. It
// implements domain.ZipResolver and the CLI's forecast fetcher port.
type Client struct {
	httpClient *http.Client
	cfg        Config
	limiter    *rate.Limiter
	clock      clockwork.Clock
	logger     *slog.Logger
}

// NewClient creates an NWS client. Requests are throttled to
// cfg.RequestsPerSecond; the NWS asks automated clients to pace
// themselves.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		clock:      clockwork.NewRealClock(),
		logger:     logger,
	}
}

// SetClock swaps the time source used for request timing. Tests inject
// a fake for deterministic logs.
func (c *Client) SetClock(clk clockwork.Clock) {
	c.clock = clk
}

// FetchForecast retrieves and parses the DWML forecast document for a
// coordinate. Transport and status failures surface as FetchError;
// payloads not rooted at <dwml> surface as ParseError.
func (c *Client) FetchForecast(ctx context.Context, coord domain.Coordinate) (*dwml.Document, error) {
	params := url.Values{
		"lat":      {strconv.FormatFloat(coord.Lat, 'f', -1, 64)},
		"lon":      {strconv.FormatFloat(coord.Lon, 'f', -1, 64)},
		"FcstType": {"dwml"},
	}
	body, err := c.get(ctx, c.cfg.ForecastURL, params)
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}
	defer body.Close()

	doc, err := dwml.Parse(body)
	if err != nil {
		return nil, &domain.ParseError{Err: err}
	}
	return doc, nil
}

// zipListResponse is the NDFD reply to listZipCodeList: space-separated
// "lat,lon" pairs inside a latLonList element.
type zipListResponse struct {
	XMLName    xml.Name `xml:"dwml"`
	LatLonList string   `xml:"latLonList"`
}

// ResolveZip looks up a zip code through the NDFD listing endpoint.
// Only the first returned pair is used.
func (c *Client) ResolveZip(ctx context.Context, zip string) (domain.Coordinate, error) {
	params := url.Values{
		"listZipCodeList": {zip},
	}
	body, err := c.get(ctx, c.cfg.ZipListURL, params)
	if err != nil {
		return domain.Coordinate{}, err
	}
	defer body.Close()

	var resp zipListResponse
	if err := xml.NewDecoder(body).Decode(&resp); err != nil {
		return domain.Coordinate{}, fmt.Errorf("decode zip listing: %w", err)
	}

	pairs := strings.Fields(resp.LatLonList)
	if len(pairs) == 0 {
		return domain.Coordinate{}, fmt.Errorf("no coordinates listed for zip %s", zip)
	}
	lat, lon, ok := strings.Cut(pairs[0], ",")
	if !ok {
		return domain.Coordinate{}, fmt.Errorf("malformed coordinate pair %q for zip %s", pairs[0], zip)
	}
	latF, latErr := strconv.ParseFloat(lat, 64)
	lonF, lonErr := strconv.ParseFloat(lon, 64)
	if latErr != nil || lonErr != nil {
		return domain.Coordinate{}, fmt.Errorf("malformed coordinate pair %q for zip %s", pairs[0], zip)
	}
	return domain.Coordinate{Lat: latF, Lon: lonF}, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (io.ReadCloser, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := c.clock.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nws request: %w", err)
	}
	c.logger.Debug("nws request",
		"url", endpoint,
		"status", resp.StatusCode,
		"elapsed", c.clock.Since(start),
	)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("nws returned status %d: %s", resp.StatusCode, body)
	}
	return resp.Body, nil
}
