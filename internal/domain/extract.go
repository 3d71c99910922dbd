package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/couchcryptid/weather-cli/internal/dwml"
)

const unknownLocation = "Unknown location"

// Extract normalizes a parsed DWML document into a Report. The caller
// fills in Report.Point; the document's own point block is ignored in
// favor of the coordinate the forecast was requested for.
func Extract(doc *dwml.Document) (*Report, error) {
	data := doc.Data

	// Layout key → ordered timestamps, plus a side map from timestamp
	// to period display name gathered across all layouts.
	layouts := make(map[string][]string, len(data.TimeLayouts))
	periodNames := make(map[string]string)
	for _, tl := range data.TimeLayouts {
		if tl.Key == "" {
			return nil, &ExtractionError{Msg: "time layout missing layout-key"}
		}
		times := make([]string, 0, len(tl.StartTimes))
		for _, st := range tl.StartTimes {
			ts := strings.TrimSpace(st.Value)
			times = append(times, ts)
			if st.PeriodName != "" {
				periodNames[ts] = st.PeriodName
			}
		}
		layouts[tl.Key] = times
	}

	params := data.Parameters

	maxTemps := make(map[string]int)
	minTemps := make(map[string]int)
	for _, series := range params.Temperatures {
		var dst map[string]int
		switch series.Type {
		case "maximum":
			dst = maxTemps
		case "minimum":
			dst = minTemps
		default:
			continue
		}
		if err := zipIntSeries(dst, series, layouts); err != nil {
			return nil, err
		}
	}

	if params.Precipitation == nil {
		return nil, &ExtractionError{Msg: "missing probability-of-precipitation series"}
	}
	precip := make(map[string]int)
	if err := zipIntSeries(precip, *params.Precipitation, layouts); err != nil {
		return nil, err
	}

	periods, err := buildPeriods(params, layouts, periodNames, maxTemps, minTemps, precip)
	if err != nil {
		return nil, err
	}

	if data.Location == nil {
		return nil, &ExtractionError{Msg: "missing location node"}
	}
	name := data.Location.Description
	if name == "" {
		name = data.Location.AreaDescription
	}
	if name == "" {
		name = unknownLocation
	}
	elevation := strings.TrimSpace(data.Location.Height)
	if elevation == "" {
		return nil, &ExtractionError{Msg: "location node missing height"}
	}

	var hazards []Hazard
	for _, series := range params.Hazards {
		for _, cond := range series.Conditions {
			for _, h := range cond.Hazards {
				hazards = append(hazards, Hazard{Headline: h.Headline, URL: h.TextURL})
			}
		}
	}

	return &Report{
		Location:  name,
		Elevation: elevation,
		Periods:   periods,
		Hazards:   hazards,
	}, nil
}

// buildPeriods joins the short and worded forecast series in lockstep
// over their shared time layout. The two series declaring different
// layouts is a consistency violation, never reconciled positionally.
func buildPeriods(
	params dwml.Parameters,
	layouts map[string][]string,
	periodNames map[string]string,
	maxTemps, minTemps, precip map[string]int,
) ([]ForecastPeriod, error) {
	if params.Weather == nil {
		return nil, &ExtractionError{Msg: "missing weather series"}
	}
	if params.Worded == nil {
		return nil, &ExtractionError{Msg: "missing wordedForecast series"}
	}
	if params.Weather.Layout != params.Worded.Layout {
		return nil, &ExtractionError{Msg: fmt.Sprintf(
			"short and worded forecasts use different time layouts (%q vs %q)",
			params.Weather.Layout, params.Worded.Layout,
		)}
	}
	times, ok := layouts[params.Weather.Layout]
	if !ok {
		return nil, &ExtractionError{Msg: fmt.Sprintf("weather series references unknown time layout %q", params.Weather.Layout)}
	}

	n := min(len(times), len(params.Weather.Conditions), len(params.Worded.Texts))
	periods := make([]ForecastPeriod, 0, n)
	for i := 0; i < n; i++ {
		ts := times[i]
		name, ok := periodNames[ts]
		if !ok {
			return nil, &ExtractionError{Msg: fmt.Sprintf("timestamp %s has no period name", ts)}
		}
		p := ForecastPeriod{
			Name:   name,
			Short:  params.Weather.Conditions[i].Summary,
			Worded: strings.TrimSpace(params.Worded.Texts[i]),
		}
		if v, ok := maxTemps[ts]; ok {
			p.High = &v
		}
		if v, ok := minTemps[ts]; ok {
			p.Low = &v
		}
		if v, ok := precip[ts]; ok {
			p.Precip = &v
		}
		periods = append(periods, p)
	}
	return periods, nil
}

// zipIntSeries zips a numeric series against its declared layout's
// timestamps. Empty slots contribute no entry: unknown is not zero.
func zipIntSeries(dst map[string]int, series dwml.ValueSeries, layouts map[string][]string) error {
	times, ok := layouts[series.Layout]
	if !ok {
		return &ExtractionError{Msg: fmt.Sprintf("series references unknown time layout %q", series.Layout)}
	}
	if len(series.Values) > len(times) {
		return &ExtractionError{Msg: fmt.Sprintf("series carries %d values for %d timestamps in layout %q",
			len(series.Values), len(times), series.Layout)}
	}
	for i, v := range series.Values {
		if v.Empty() {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v.Text))
		if err != nil {
			return &ExtractionError{Msg: fmt.Sprintf("non-numeric value %q in layout %q", v.Text, series.Layout)}
		}
		dst[times[i]] = n
	}
	return nil
}
