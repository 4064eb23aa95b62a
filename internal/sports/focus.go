// Package sports holds the sports-section heuristics: seasonal focus modes,
// team alias tables, relevance scoring, and event-key extraction.
package sports

import "time"

// Focus modes. Auto resolves from the calendar month.
const (
	FocusCollegeBasketball = "college_basketball"
	FocusNBA               = "nba"
	FocusBaseball          = "baseball"
	FocusFootball          = "football"
	FocusBroad             = "broad"
	FocusAuto              = "auto"
)

// seasonTable maps month ranges to the seasonal focus, first match wins.
var seasonTable = []struct {
	from, to time.Month
	mode     string
}{
	{time.January, time.March, FocusCollegeBasketball},
	{time.April, time.June, FocusNBA},
	{time.July, time.August, FocusBaseball},
	{time.September, time.November, FocusFootball},
	{time.December, time.December, FocusCollegeBasketball},
}

// ResolveFocus returns the effective focus mode for a run. Unknown modes
// fall back to broad.
func ResolveFocus(mode string, month time.Month) string {
	switch mode {
	case FocusCollegeBasketball, FocusNBA, FocusBaseball, FocusFootball, FocusBroad:
		return mode
	case FocusAuto, "":
		for _, row := range seasonTable {
			if month >= row.from && month <= row.to {
				return row.mode
			}
		}
	}
	return FocusBroad
}
