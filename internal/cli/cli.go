// Package cli parses arguments, wires the adapters together, and maps
// failures to exit codes.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/couchcryptid/weather-cli/internal/adapter/nws"
	"github.com/couchcryptid/weather-cli/internal/adapter/zipcity"
	"github.com/couchcryptid/weather-cli/internal/config"
	"github.com/couchcryptid/weather-cli/internal/domain"
	"github.com/couchcryptid/weather-cli/internal/dwml"
	"github.com/couchcryptid/weather-cli/internal/observability"
	"github.com/couchcryptid/weather-cli/internal/render"
)

const usage = `usage: weather [-v] zipcode
       weather [-v] latitude longitude
       weather [-v] location-string...`

// ForecastFetcher retrieves the DWML document for a coordinate.
type ForecastFetcher interface {
	FetchForecast(ctx context.Context, coord domain.Coordinate) (*dwml.Document, error)
}

// Run is the CLI entry point. The returned code is the process exit
// status: 0 on success, 1 on usage or any handled or unexpected error.
func Run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("weather", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "include worded forecasts in the report")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stdout, usage)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger := observability.NewLogger(cfg)

	nwsClient := nws.NewClient(nws.Config{
		ForecastURL:       cfg.ForecastURL,
		ZipListURL:        cfg.ZipListURL,
		Timeout:           cfg.FetchTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
	}, logger)
	searcher := zipcity.NewClient(cfg.SearchURL, cfg.FetchTimeout, logger)
	resolver := domain.NewResolver(nwsClient, searcher, logger)

	opts := render.Options{Verbose: *verbose, Color: true}
	return run(context.Background(), fs.Args(), resolver, nwsClient, opts, stdout, stderr)
}

// run executes one resolve → fetch → extract → render cycle.
func run(
	ctx context.Context,
	args []string,
	resolver *domain.Resolver,
	fetcher ForecastFetcher,
	opts render.Options,
	stdout, stderr io.Writer,
) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "unexpected error: %v\n%s", r, debug.Stack())
			code = 1
		}
	}()

	coord, err := resolver.Resolve(ctx, args)
	if err != nil {
		return fail(stderr, err)
	}

	doc, err := fetcher.FetchForecast(ctx, coord)
	if err != nil {
		return fail(stderr, err)
	}

	report, err := domain.Extract(doc)
	if err != nil {
		return fail(stderr, err)
	}
	report.Point = coord

	fmt.Fprint(stdout, render.Report(report, opts))
	return 0
}

// fail prints a one-line message for handled domain errors; anything
// else gets the error plus a full diagnostic trace.
func fail(stderr io.Writer, err error) int {
	if domain.IsDomain(err) {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintf(stderr, "unexpected error: %v\n%s", err, debug.Stack())
	return 1
}
