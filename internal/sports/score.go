package sports

import "strings"

// Keyword tables for relevance scoring. Previews are prioritized over
// recaps, so upcoming-game intent scores up and postgame language scores
// down.
var upcomingTerms = []string{
	"preview", "tonight", "kickoff", "tipoff", "first pitch", "matchup",
	"hosts", "host", "visits", "faces", "game time", "this week",
	"this weekend", "upcoming", "schedule", " vs ", " vs.",
}

var recapTerms = []string{
	"recap", "final score", "highlights", "postgame", "takeaways",
	"beat", "beats", "defeated", "defeats", "falls to", "fell to",
	"wins over", "loses to", "routed", "edged",
}

var localTerms = []string{
	"oxford", "talawanda", "miami university", "butler county",
	"miami valley", "high school",
}

const (
	upcomingWeight     = 4
	localWeight        = 5
	onModeTeamWeight   = 6
	broadTeamWeight    = 3
	offModeTeamPenalty = 4
	recapPenalty       = 3
)

// Score ranks a sports candidate for selection order. The value is a
// relative signal only; candidates are sorted by it before quota-limited
// selection.
func Score(title, snippet, mode string) int {
	text := strings.ToLower(title + " " + snippet)
	score := 0

	for _, term := range upcomingTerms {
		if strings.Contains(text, term) {
			score += upcomingWeight
		}
	}
	for _, term := range recapTerms {
		if strings.Contains(text, term) {
			score -= recapPenalty
		}
	}
	for _, term := range localTerms {
		if strings.Contains(text, term) {
			score += localWeight
		}
	}

	for _, id := range ExtractTeams(text) {
		switch {
		case mode == FocusBroad:
			score += broadTeamWeight
		case teamOnMode(id, mode):
			score += onModeTeamWeight
		default:
			score -= offModeTeamPenalty
		}
	}

	return score
}
