package sports

import (
	"sort"
	"strings"
)

// resultVerbs signal that a text reports an outcome rather than previews a
// game; two teams plus a result verb produce a result: key.
var resultVerbs = []string{
	"beat", "beats", "defeat", "defeats", "defeated", "falls to",
	"fell to", "tops", "topped", "downs", "downed", "edges", "edged",
	"routs", "routed", "upsets", "upset", "wins over", "loses to",
	"win over", "victory over",
}

// EventKeys derives the fingerprint keys for the real-world sporting events
// a text covers: team:<id> for every mentioned team, matchup:<a>|<b> for
// every pair, and result:<a>|<b> when a result verb co-occurs with at least
// two teams. Keys namespace "the same game" across independently worded
// coverage.
func EventKeys(text string) []string {
	lower := strings.ToLower(text)
	ids := ExtractTeams(lower)
	if len(ids) == 0 {
		return nil
	}
	sort.Strings(ids)

	keys := make([]string, 0, len(ids)+len(ids)*(len(ids)-1)/2)
	for _, id := range ids {
		keys = append(keys, "team:"+id)
	}

	hasResult := false
	if len(ids) >= 2 {
		for _, verb := range resultVerbs {
			if strings.Contains(lower, verb) {
				hasResult = true
				break
			}
		}
	}

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			pair := ids[i] + "|" + ids[j]
			keys = append(keys, "matchup:"+pair)
			if hasResult {
				keys = append(keys, "result:"+pair)
			}
		}
	}

	return keys
}
