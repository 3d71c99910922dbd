// Package domain models National Weather Service (NWS) point forecasts
// and resolves user-supplied locations to coordinates.
//
// # Location Resolution
//
// Input arrives as raw CLI arguments and is classified by shape:
//
//	Single 5-digit numeric token  →  zip code
//	Exactly two float tokens      →  explicit latitude/longitude
//	Anything else                 →  free-text place name
//
// Zip codes consult a small fixed table before any network call; misses
// go to the remote NDFD zip listing. A zip lookup that reaches the
// remote service and fails is swallowed, and the original digits fall
// through to the free-text place search. Each strategy converts its own
// failure into fallthrough rather than aborting resolution; only when
// the final strategy fails does resolution return a [LocationError].
//
// # Forecast Extraction
//
// Extraction joins the document's data series on the time layouts they
// declare. Daily maximum/minimum temperatures and precipitation
// probabilities become timestamp-keyed maps; the short and worded
// forecast series, which must share a layout, drive the ordered period
// list, picking up temperatures and precipitation by timestamp where
// present. An empty precipitation slot means unknown, not zero, and
// contributes no entry. The short and worded layout keys disagreeing is
// a fatal consistency violation: it indicates the document's timelines
// are not comparably indexed, and positional alignment would lie.
package domain
