package sports

import (
	"regexp"
	"strings"
)

// Team identifies a covered club and the focus modes in which it is
// considered on-season.
type Team struct {
	ID      string
	Aliases []string
	Modes   []string
}

// teams covered by the sports section. Alias matching is word-boundary for
// short aliases so "reds" does not fire inside "spreadsheet".
var teams = []Team{
	{
		ID:      "redhawks",
		Aliases: []string{"miami redhawks", "redhawks", "miami university"},
		Modes:   []string{FocusCollegeBasketball, FocusFootball, FocusBaseball},
	},
	{
		ID:      "talawanda",
		Aliases: []string{"talawanda", "talawanda braves"},
		Modes:   []string{FocusCollegeBasketball, FocusFootball, FocusBaseball},
	},
	{
		ID:      "bearcats",
		Aliases: []string{"cincinnati bearcats", "bearcats"},
		Modes:   []string{FocusCollegeBasketball, FocusFootball},
	},
	{
		ID:      "musketeers",
		Aliases: []string{"xavier musketeers", "musketeers", "xavier"},
		Modes:   []string{FocusCollegeBasketball},
	},
	{
		ID:      "flyers",
		Aliases: []string{"dayton flyers", "flyers"},
		Modes:   []string{FocusCollegeBasketball},
	},
	{
		ID:      "buckeyes",
		Aliases: []string{"ohio state buckeyes", "buckeyes", "ohio state"},
		Modes:   []string{FocusFootball, FocusCollegeBasketball},
	},
	{
		ID:      "bengals",
		Aliases: []string{"cincinnati bengals", "bengals"},
		Modes:   []string{FocusFootball},
	},
	{
		ID:      "reds",
		Aliases: []string{"cincinnati reds", "reds"},
		Modes:   []string{FocusBaseball},
	},
	{
		ID:      "cavaliers",
		Aliases: []string{"cleveland cavaliers", "cavaliers", "cavs"},
		Modes:   []string{FocusNBA},
	},
	{
		ID:      "guardians",
		Aliases: []string{"cleveland guardians", "guardians"},
		Modes:   []string{FocusBaseball},
	},
}

var shortAliasExprs = map[string]*regexp.Regexp{}

func init() {
	for _, team := range teams {
		for _, alias := range team.Aliases {
			if !strings.Contains(alias, " ") && len(alias) <= 5 {
				shortAliasExprs[alias] = regexp.MustCompile(`\b` + regexp.QuoteMeta(alias) + `\b`)
			}
		}
	}
}

func aliasMatches(text, alias string) bool {
	if re, ok := shortAliasExprs[alias]; ok {
		return re.MatchString(text)
	}
	return strings.Contains(text, alias)
}

// ExtractTeams returns the IDs of all covered teams mentioned in text.
// Text must already be lowercased.
func ExtractTeams(text string) []string {
	var ids []string
	for _, team := range teams {
		for _, alias := range team.Aliases {
			if aliasMatches(text, alias) {
				ids = append(ids, team.ID)
				break
			}
		}
	}
	return ids
}

func teamOnMode(id, mode string) bool {
	for _, team := range teams {
		if team.ID != id {
			continue
		}
		for _, m := range team.Modes {
			if m == mode {
				return true
			}
		}
	}
	return false
}
