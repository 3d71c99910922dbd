// Package dwml holds the typed document model for NWS Digital Weather
// Markup Language (DWML) forecast responses.
//
// # Data Source
//
// DWML documents come from the forecast.weather.gov MapClick endpoint
// (FcstType=dwml). The format is schema-defined by the National Digital
// Forecast Database (NDFD); this package models only the subset the
// report needs: the location block, time layouts, and the temperature,
// precipitation, weather, worded-forecast, and hazards series.
//
// # Time Layouts
//
// A time layout is a named ordered list of start-valid-time entries,
// identified by a layout-key such as "k-p12h-n13-1". Several layouts
// coexist in one document: daily max/min temperatures use 24-hour
// layouts while the narrative series use 12-hour layouts. Every data
// series declares the layout it is indexed by via its time-layout
// attribute; values are positional against that layout's timestamps.
//
// # Unknown Values
//
// Numeric series mark unknown slots with xsi:nil="true" or an empty
// value element. [Value.Empty] treats both the same way.
package dwml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Document is the typed representation of a DWML forecast response.
// Parse builds it in a single pass; extraction code never touches raw XML.
type Document struct {
	XMLName xml.Name `xml:"dwml"`
	Data    Data     `xml:"data"`
}

// Data is the forecast payload: one location, its time layouts, and the
// data series bound to them.
type Data struct {
	Location    *Location    `xml:"location"`
	TimeLayouts []TimeLayout `xml:"time-layout"`
	Parameters  Parameters   `xml:"parameters"`
}

// Location describes the forecast point.
type Location struct {
	Key             string `xml:"location-key"`
	Description     string `xml:"description"`
	AreaDescription string `xml:"area-description"`
	Height          string `xml:"height"`
	Point           Point  `xml:"point"`
}

// Point is the lat/lon pair the document was generated for.
type Point struct {
	Latitude  float64 `xml:"latitude,attr"`
	Longitude float64 `xml:"longitude,attr"`
}

// TimeLayout is a named ordered sequence of timestamps.
type TimeLayout struct {
	Key        string      `xml:"layout-key"`
	StartTimes []StartTime `xml:"start-valid-time"`
}

// StartTime is one timestamp in a layout, optionally carrying a
// human-readable period name such as "Tonight".
type StartTime struct {
	PeriodName string `xml:"period-name,attr"`
	Value      string `xml:",chardata"`
}

// Parameters holds the data series for the location.
type Parameters struct {
	Temperatures  []ValueSeries  `xml:"temperature"`
	Precipitation *ValueSeries   `xml:"probability-of-precipitation"`
	Weather       *WeatherSeries `xml:"weather"`
	Worded        *WordedSeries  `xml:"wordedForecast"`
	Hazards       []HazardSeries `xml:"hazards"`
}

// ValueSeries is a numeric series bound to a time layout. Type
// distinguishes maximum from minimum temperature series.
type ValueSeries struct {
	Type   string  `xml:"type,attr"`
	Layout string  `xml:"time-layout,attr"`
	Values []Value `xml:"value"`
}

// Value is one slot in a numeric series.
type Value struct {
	Nil  string `xml:"nil,attr"`
	Text string `xml:",chardata"`
}

// Empty reports whether the slot carries no value for its timestamp.
func (v Value) Empty() bool {
	return v.Nil == "true" || strings.TrimSpace(v.Text) == ""
}

// WeatherSeries carries the short forecast summaries.
type WeatherSeries struct {
	Layout     string             `xml:"time-layout,attr"`
	Conditions []WeatherCondition `xml:"weather-conditions"`
}

// WeatherCondition is one short forecast, e.g. "Partly Cloudy".
type WeatherCondition struct {
	Summary string `xml:"weather-summary,attr"`
}

// WordedSeries carries the long narrative forecasts.
type WordedSeries struct {
	Layout string   `xml:"time-layout,attr"`
	Texts  []string `xml:"text"`
}

// HazardSeries groups active hazard conditions.
type HazardSeries struct {
	Layout     string            `xml:"time-layout,attr"`
	Conditions []HazardCondition `xml:"hazard-conditions"`
}

// HazardCondition wraps zero or more hazard entries.
type HazardCondition struct {
	Hazards []HazardEntry `xml:"hazard"`
}

// HazardEntry is one active advisory.
type HazardEntry struct {
	Headline string `xml:"headline,attr"`
	TextURL  string `xml:"hazardTextURL"`
}

// Parse decodes a DWML payload in a single structured pass. A payload
// not rooted at <dwml> is rejected.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode dwml: %w", err)
	}
	return &doc, nil
}
