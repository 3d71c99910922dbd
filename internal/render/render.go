// Package render formats a normalized forecast report for the terminal.
// It consumes already-extracted data only; no document walking happens
// here.
package render

import (
	"fmt"
	"strings"

	"github.com/couchcryptid/weather-cli/internal/domain"
)

const (
	defaultWidth = 80
	ruleWidth    = 40
)

// Options controls report formatting.
type Options struct {
	Verbose bool // include wrapped worded forecasts
	Color   bool // ANSI bold on headings
	Width   int  // wrap column for worded forecasts; 0 means 80
}

// Report renders the forecast as terminal text.
func Report(rep *domain.Report, opts Options) string {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	style := styler(opts.Color)
	rule := strings.Repeat("-", ruleWidth)

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%.4f, %.4f) %s ft\n",
		style(rep.Location), rep.Point.Lat, rep.Point.Lon, rep.Elevation)
	b.WriteString(rule + "\n")

	for _, p := range rep.Periods {
		segments := []string{style(p.Name + ":")}
		if p.High != nil {
			segments = append(segments, fmt.Sprintf("High: %d", *p.High))
		}
		if p.Low != nil {
			segments = append(segments, fmt.Sprintf("Low: %d", *p.Low))
		}
		segments = append(segments, p.Short)
		if p.Precip != nil {
			segments = append(segments, fmt.Sprintf("(%d%%)", *p.Precip))
		}
		b.WriteString(strings.Join(segments, " ") + "\n")

		if opts.Verbose {
			for _, line := range wrap(p.Worded, opts.Width) {
				b.WriteString(line + "\n")
			}
			b.WriteString("\n")
		}
	}

	if len(rep.Hazards) > 0 {
		b.WriteString(rule + "\n")
		b.WriteString(style("Hazards:") + "\n")
		b.WriteString(rule + "\n")
		for _, h := range rep.Hazards {
			b.WriteString(style(h.Headline) + "\n")
			b.WriteString(h.URL + "\n")
		}
	}
	return b.String()
}

func styler(color bool) func(string) string {
	if !color {
		return func(s string) string { return s }
	}
	return func(s string) string { return "\x1b[1m" + s + "\x1b[0m" }
}

// wrap breaks text into lines no longer than width, never splitting a
// word. A single word longer than width gets its own line.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	lines := make([]string, 0, 1+len(text)/width)
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
