package domain

// Coordinate is a WGS-84 latitude/longitude pair.
type Coordinate struct {
	Lat float64
	Lon float64
}

// ForecastPeriod is one forecast time slot with its associated values.
// High, Low, and Precip are nil when the document carries no value for
// the period's timestamp.
type ForecastPeriod struct {
	Name   string // period display name, e.g. "Tonight"
	High   *int   // daily maximum temperature
	Low    *int   // daily minimum temperature
	Short  string // short forecast, e.g. "Partly Cloudy"
	Precip *int   // precipitation chance in percent
	Worded string // long narrative forecast
}

// Hazard is an active weather advisory.
type Hazard struct {
	Headline string
	URL      string
}

// Report is the normalized forecast for one location, ready to render.
type Report struct {
	Location  string // display name of the forecast point
	Elevation string // station height as reported, no unit conversion
	Point     Coordinate
	Periods   []ForecastPeriod
	Hazards   []Hazard
}
