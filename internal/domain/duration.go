// Package domain contains the core business entities and rules for the trip
// offer aggregation system. These entities are provider-agnostic and form the
// foundation upon which all other components are built.
package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Duration is a parsed itinerary or segment duration.
// The canonical rendering is "Xh Ym" with both units always present.
type Duration struct {
	Hours   int
	Minutes int
}

// isoDurationRegex matches the compact ISO 8601 time form used by the offer
// oracle, e.g. "PT9H30M", "PT45M", "PT2H".
var isoDurationRegex = regexp.MustCompile(`^PT(\d+H)?(\d+M)?`)

// ParseDuration parses either the ISO 8601 compact form ("PT9H30M") or the
// human-readable form ("9h 30m") into a Duration. Missing units default to
// zero. Input that matches neither grammar yields the zero Duration; callers
// own the contract of feeding well-formed provider data.
func ParseDuration(text string) Duration {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "PT") {
		m := isoDurationRegex.FindStringSubmatch(text)
		if m == nil {
			return Duration{}
		}
		var d Duration
		if m[1] != "" {
			d.Hours, _ = strconv.Atoi(strings.TrimSuffix(m[1], "H"))
		}
		if m[2] != "" {
			d.Minutes, _ = strconv.Atoi(strings.TrimSuffix(m[2], "M"))
		}
		return d
	}

	var d Duration
	switch {
	case strings.Contains(text, "h"):
		parts := strings.SplitN(text, "h", 2)
		d.Hours, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
		rest := strings.TrimSpace(parts[1])
		if strings.Contains(rest, "m") {
			d.Minutes, _ = strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(rest, "m")))
		}
	case strings.Contains(text, "m"):
		d.Minutes, _ = strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(text, "m")))
	}
	return d
}

// String renders the canonical "Xh Ym" form.
func (d Duration) String() string {
	return fmt.Sprintf("%dh %dm", d.Hours, d.Minutes)
}

// TotalMinutes returns the duration as integral minutes.
func (d Duration) TotalMinutes() int {
	return d.Hours*60 + d.Minutes
}

// MarshalJSON renders the duration as its canonical string form, so the
// canonical Offer shape carries "9h 30m" on the wire.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON accepts any string the codec can parse.
func (d *Duration) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("duration must be a JSON string: %w", err)
	}
	*d = ParseDuration(s)
	return nil
}
