package sports

import "strings"

// The publication's home region reads "Miami" as the university in Oxford,
// Ohio, not Miami, Florida. Florida-team stories leak into feed searches for
// "Miami" and have to be filtered out as noise.
var floridaSignals = []string{
	"miami heat", "miami dolphins", "miami marlins", "miami hurricanes",
	"inter miami", "miami-dade", "south beach", "florida",
}

var ohioSignals = []string{
	"miami university", "redhawks", "oxford", "mid-american",
	"miami valley", "ohio",
}

// IsFloridaNoise reports whether a sports text mentioning Miami is about
// Florida teams with no local signal. Texts carrying any Ohio signal are
// never rejected by this filter.
func IsFloridaNoise(text string) bool {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, "miami") {
		return false
	}

	for _, signal := range ohioSignals {
		if strings.Contains(lower, signal) {
			return false
		}
	}
	for _, signal := range floridaSignals {
		if strings.Contains(lower, signal) {
			return true
		}
	}
	return false
}
