package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weather-cli/internal/dwml"
)

// Timestamps for the narrative (12-hour) and daily (24-hour) layouts.
const (
	tsTonight     = "2026-08-23T18:00:00-06:00"
	tsMonday      = "2026-08-24T06:00:00-06:00"
	tsMondayNight = "2026-08-24T18:00:00-06:00"
)

// fixtureDoc builds a document with two time-layout groups: a 12-hour
// narrative layout driving three periods, plus daily max/min layouts.
// The precipitation series leaves its second slot empty.
func fixtureDoc() *dwml.Document {
	return &dwml.Document{
		Data: dwml.Data{
			Location: &dwml.Location{
				Key:         "point1",
				Description: "Golden, CO",
				Height:      "5675",
			},
			TimeLayouts: []dwml.TimeLayout{
				{
					Key: "k-p12h-n3-1",
					StartTimes: []dwml.StartTime{
						{PeriodName: "Tonight", Value: tsTonight},
						{PeriodName: "Monday", Value: tsMonday},
						{PeriodName: "Monday Night", Value: tsMondayNight},
					},
				},
				{
					Key: "k-p24h-n1-2",
					StartTimes: []dwml.StartTime{
						{Value: tsMonday},
					},
				},
				{
					Key: "k-p24h-n2-3",
					StartTimes: []dwml.StartTime{
						{Value: tsTonight},
						{Value: tsMondayNight},
					},
				},
			},
			Parameters: dwml.Parameters{
				Temperatures: []dwml.ValueSeries{
					{
						Type:   "maximum",
						Layout: "k-p24h-n1-2",
						Values: []dwml.Value{{Text: "59"}},
					},
					{
						Type:   "minimum",
						Layout: "k-p24h-n2-3",
						Values: []dwml.Value{{Text: "38"}, {Text: "41"}},
					},
				},
				Precipitation: &dwml.ValueSeries{
					Type:   "12 hour",
					Layout: "k-p12h-n3-1",
					Values: []dwml.Value{{Text: "10"}, {Nil: "true"}, {Text: "20"}},
				},
				Weather: &dwml.WeatherSeries{
					Layout: "k-p12h-n3-1",
					Conditions: []dwml.WeatherCondition{
						{Summary: "Partly Cloudy"},
						{Summary: "Sunny"},
						{Summary: "Chance Snow"},
					},
				},
				Worded: &dwml.WordedSeries{
					Layout: "k-p12h-n3-1",
					Texts: []string{
						"Partly cloudy, with a low around 38.",
						"Sunny, with a high near 59.",
						"A chance of snow after midnight.",
					},
				},
				Hazards: []dwml.HazardSeries{
					{
						Conditions: []dwml.HazardCondition{
							{
								Hazards: []dwml.HazardEntry{
									{
										Headline: "Winter Storm Watch",
										TextURL:  "https://forecast.weather.gov/showsigwx.php?warnzone=COZ039",
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestExtract_FullDocument(t *testing.T) {
	report, err := Extract(fixtureDoc())
	require.NoError(t, err)

	assert.Equal(t, "Golden, CO", report.Location)
	assert.Equal(t, "5675", report.Elevation)
	require.Len(t, report.Periods, 3)

	tonight := report.Periods[0]
	assert.Equal(t, "Tonight", tonight.Name)
	assert.Nil(t, tonight.High)
	require.NotNil(t, tonight.Low)
	assert.Equal(t, 38, *tonight.Low)
	assert.Equal(t, "Partly Cloudy", tonight.Short)
	require.NotNil(t, tonight.Precip)
	assert.Equal(t, 10, *tonight.Precip)
	assert.Equal(t, "Partly cloudy, with a low around 38.", tonight.Worded)

	monday := report.Periods[1]
	assert.Equal(t, "Monday", monday.Name)
	require.NotNil(t, monday.High)
	assert.Equal(t, 59, *monday.High)
	assert.Nil(t, monday.Low)
	assert.Nil(t, monday.Precip, "empty slot means unknown, not zero")

	mondayNight := report.Periods[2]
	assert.Equal(t, "Monday Night", mondayNight.Name)
	require.NotNil(t, mondayNight.Low)
	assert.Equal(t, 41, *mondayNight.Low)
	require.NotNil(t, mondayNight.Precip)
	assert.Equal(t, 20, *mondayNight.Precip)

	require.Len(t, report.Hazards, 1)
	assert.Equal(t, "Winter Storm Watch", report.Hazards[0].Headline)
	assert.Equal(t, "https://forecast.weather.gov/showsigwx.php?warnzone=COZ039", report.Hazards[0].URL)
}

func TestExtract_LayoutMismatchFails(t *testing.T) {
	doc := fixtureDoc()
	doc.Data.Parameters.Worded.Layout = "k-p12h-n3-other"
	doc.Data.TimeLayouts = append(doc.Data.TimeLayouts, dwml.TimeLayout{
		Key: "k-p12h-n3-other",
		StartTimes: []dwml.StartTime{
			{PeriodName: "Tonight", Value: tsTonight},
			{PeriodName: "Monday", Value: tsMonday},
			{PeriodName: "Monday Night", Value: tsMondayNight},
		},
	})

	_, err := Extract(doc)

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Contains(t, err.Error(), "different time layouts")
}

func TestExtract_EmptyTextPrecipValueSkipped(t *testing.T) {
	doc := fixtureDoc()
	// Empty chardata rather than xsi:nil; both mean unknown.
	doc.Data.Parameters.Precipitation.Values[1] = dwml.Value{Text: "  "}

	report, err := Extract(doc)
	require.NoError(t, err)
	assert.Nil(t, report.Periods[1].Precip)
}

func TestExtract_ZeroPrecipIsNotUnknown(t *testing.T) {
	doc := fixtureDoc()
	doc.Data.Parameters.Precipitation.Values[1] = dwml.Value{Text: "0"}

	report, err := Extract(doc)
	require.NoError(t, err)
	require.NotNil(t, report.Periods[1].Precip)
	assert.Equal(t, 0, *report.Periods[1].Precip)
}

func TestExtract_MissingSeriesFails(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dwml.Document)
		want   string
	}{
		{
			name:   "no weather series",
			mutate: func(d *dwml.Document) { d.Data.Parameters.Weather = nil },
			want:   "missing weather series",
		},
		{
			name:   "no worded series",
			mutate: func(d *dwml.Document) { d.Data.Parameters.Worded = nil },
			want:   "missing wordedForecast series",
		},
		{
			name:   "no precipitation series",
			mutate: func(d *dwml.Document) { d.Data.Parameters.Precipitation = nil },
			want:   "missing probability-of-precipitation series",
		},
		{
			name:   "no location node",
			mutate: func(d *dwml.Document) { d.Data.Location = nil },
			want:   "missing location node",
		},
		{
			name:   "location missing height",
			mutate: func(d *dwml.Document) { d.Data.Location.Height = "" },
			want:   "missing height",
		},
		{
			name: "series references unknown layout",
			mutate: func(d *dwml.Document) {
				d.Data.Parameters.Temperatures[0].Layout = "k-missing"
			},
			want: "unknown time layout",
		},
		{
			name: "timestamp without period name",
			mutate: func(d *dwml.Document) {
				d.Data.TimeLayouts[0].StartTimes[1].PeriodName = ""
			},
			want: "no period name",
		},
		{
			name: "non-numeric temperature value",
			mutate: func(d *dwml.Document) {
				d.Data.Parameters.Temperatures[0].Values[0].Text = "warm"
			},
			want: "non-numeric value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := fixtureDoc()
			tt.mutate(doc)

			_, err := Extract(doc)

			var extractErr *ExtractionError
			require.ErrorAs(t, err, &extractErr)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestExtract_LocationNameFallbacks(t *testing.T) {
	doc := fixtureDoc()
	doc.Data.Location.Description = ""
	doc.Data.Location.AreaDescription = "Jefferson County, Colorado"

	report, err := Extract(doc)
	require.NoError(t, err)
	assert.Equal(t, "Jefferson County, Colorado", report.Location)

	doc.Data.Location.AreaDescription = ""
	report, err = Extract(doc)
	require.NoError(t, err)
	assert.Equal(t, "Unknown location", report.Location)
}

func TestExtract_NoHazards(t *testing.T) {
	doc := fixtureDoc()
	doc.Data.Parameters.Hazards = nil

	report, err := Extract(doc)
	require.NoError(t, err)
	assert.Empty(t, report.Hazards)
}
