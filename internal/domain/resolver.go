package domain

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
)

// ZipResolver converts a 5-digit zip code to coordinates.
type ZipResolver interface {
	ResolveZip(ctx context.Context, zip string) (Coordinate, error)
}

// PlaceSearcher geocodes a free-text place name.
type PlaceSearcher interface {
	SearchPlace(ctx context.Context, query string) (Coordinate, error)
}

// zipTable holds pre-resolved zip codes checked before any network call.
var zipTable = map[string]Coordinate{
	"02134": {Lat: 42.35830, Lon: -71.13166},
	"10001": {Lat: 40.75368, Lon: -73.99721},
	"60601": {Lat: 41.88531, Lon: -87.62217},
	"80401": {Lat: 39.73890, Lon: -105.21500},
	"94103": {Lat: 37.77554, Lon: -122.41550},
	"98101": {Lat: 47.61040, Lon: -122.33530},
}

// Resolver turns CLI arguments into a coordinate by trying a fixed
// sequence of strategies.
type Resolver struct {
	zips   ZipResolver
	places PlaceSearcher
	logger *slog.Logger
}

// NewResolver creates a Resolver over the given remote collaborators.
func NewResolver(zips ZipResolver, places PlaceSearcher, logger *slog.Logger) *Resolver {
	return &Resolver{
		zips:   zips,
		places: places,
		logger: logger,
	}
}

// Resolve classifies args by shape and runs the matching strategy,
// falling through to the free-text place search when earlier strategies
// do not produce a result. Failures of the zip lookup are swallowed:
// the original digits are re-submitted as a place-name query.
func (r *Resolver) Resolve(ctx context.Context, args []string) (Coordinate, error) {
	if len(args) == 1 && isZip(args[0]) {
		zip := args[0]
		if coord, ok := zipTable[zip]; ok {
			return coord, nil
		}
		coord, err := r.zips.ResolveZip(ctx, zip)
		if err == nil {
			return coord, nil
		}
		r.logger.Debug("zip lookup failed, retrying as place search", "zip", zip, "error", err)
	} else if len(args) == 2 {
		lat, latErr := strconv.ParseFloat(args[0], 64)
		lon, lonErr := strconv.ParseFloat(args[1], 64)
		if latErr == nil && lonErr == nil {
			return Coordinate{Lat: lat, Lon: lon}, nil
		}
	}

	query := strings.Join(args, " ")
	coord, err := r.places.SearchPlace(ctx, query)
	if err != nil {
		return Coordinate{}, &LocationError{Input: query, Err: err}
	}
	return coord, nil
}

func isZip(s string) bool {
	if len(s) != 5 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
