package dedupe

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTokens(t *testing.T) {
	tokens := Tokens("The City Council Approves a New Budget!")
	assert.Equal(t, []string{"city", "council", "approves", "budget"}, tokens)
}

func TestTokens_DropsShortTokens(t *testing.T) {
	tokens := Tokens("MU at OSU in a big game")
	assert.NotContains(t, tokens, "mu")
	assert.NotContains(t, tokens, "at")
	assert.Contains(t, tokens, "big")
	assert.Contains(t, tokens, "game")
}

func TestSimilarTitles_Identical(t *testing.T) {
	assert.True(t, SimilarTitles(
		"Council approves downtown parking changes",
		"Council approves downtown parking changes",
	))
}

func TestSimilarTitles_CaseAndWordOrderVariant(t *testing.T) {
	// The canonical rewrite case: case change plus one extra word.
	assert.True(t, SimilarTitles(
		"City Council Approves Budget",
		"City council approves new budget",
	))
}

func TestSimilarTitles_NoSharedTokens(t *testing.T) {
	assert.False(t, SimilarTitles(
		"Farmers market opens Saturday",
		"Township hires police chief",
	))
}

func TestSimilarTitles_EmptyTitle(t *testing.T) {
	assert.False(t, SimilarTitles("", "City council approves budget"))
}

func TestSimilarTitles_HighOverlapLongTitles(t *testing.T) {
	// A padded rewrite still keeps the shorter title's vocabulary.
	assert.True(t, SimilarTitles(
		"Talawanda school board approves teacher contract",
		"Talawanda school board approves new three year teacher contract after months of negotiation",
	))
}

func TestIndex_MatchesTitle(t *testing.T) {
	ix := NewIndex()
	ix.AddTitle("City Council Approves Budget")

	assert.True(t, ix.MatchesTitle("City council approves new budget"))
	assert.False(t, ix.MatchesTitle("Library announces summer reading program"))
}

func TestIndex_MatchesTitle_AgreesWithSimilarTitles(t *testing.T) {
	known := "City Council Approves Budget"
	variants := []string{
		"City council approves new budget",
		"Library announces summer reading program",
		"Council budget approved after lengthy debate",
		"",
	}

	ix := NewIndex()
	ix.AddTitle(known)
	for _, v := range variants {
		assert.Equal(t, SimilarTitles(known, v), ix.MatchesTitle(v), v)
	}
}

func TestIndex_MatchesEvent(t *testing.T) {
	ix := NewIndex()
	ix.AddEventKeys([]string{"matchup:bearcats|redhawks", "team:redhawks"})

	assert.True(t, ix.MatchesEvent([]string{"team:redhawks"}))
	assert.True(t, ix.MatchesEvent([]string{"matchup:bearcats|redhawks", "team:bearcats"}))
	assert.False(t, ix.MatchesEvent([]string{"team:bengals"}))
	assert.False(t, ix.MatchesEvent(nil))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "city-council-approves-budget", Slugify("City Council Approves Budget!"))
	assert.Equal(t, "redhawks-top-bearcats-72-68", Slugify("RedHawks top Bearcats, 72-68"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestSlugify_TruncatesOnWordBoundary(t *testing.T) {
	long := "an extremely long headline that keeps going and going and going far past any reasonable slug length limit"
	slug := Slugify(long)
	assert.LessOrEqual(t, len(slug), 80)
	assert.NotEqual(t, byte('-'), slug[len(slug)-1])
}

func TestSlugify_TruncationKeepsRunesIntact(t *testing.T) {
	long := strings.Repeat("é", 100)
	slug := Slugify(long)
	assert.LessOrEqual(t, len(slug), 80)
	assert.True(t, utf8.ValidString(slug))

	hyphenless := strings.Repeat("é", 39) + "x" + strings.Repeat("é", 60)
	slug = Slugify(hyphenless)
	assert.LessOrEqual(t, len(slug), 80)
	assert.True(t, utf8.ValidString(slug))
}
