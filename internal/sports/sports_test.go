package sports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveFocus_AutoByMonth(t *testing.T) {
	cases := []struct {
		month time.Month
		want  string
	}{
		{time.January, FocusCollegeBasketball},
		{time.March, FocusCollegeBasketball},
		{time.April, FocusNBA},
		{time.June, FocusNBA},
		{time.July, FocusBaseball},
		{time.August, FocusBaseball},
		{time.September, FocusFootball},
		{time.November, FocusFootball},
		{time.December, FocusCollegeBasketball},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ResolveFocus(FocusAuto, tc.month), "month %s", tc.month)
	}
}

func TestResolveFocus_ExplicitOverride(t *testing.T) {
	assert.Equal(t, FocusBaseball, ResolveFocus(FocusBaseball, time.January))
	assert.Equal(t, FocusBroad, ResolveFocus("unknown", time.January))
}

func TestExtractTeams(t *testing.T) {
	ids := ExtractTeams("miami redhawks host the cincinnati bearcats tonight")
	assert.ElementsMatch(t, []string{"redhawks", "bearcats"}, ids)
}

func TestExtractTeams_ShortAliasWordBoundary(t *testing.T) {
	assert.Empty(t, ExtractTeams("new spreadsheet for budget tracking"))
	assert.Equal(t, []string{"reds"}, ExtractTeams("the reds open the homestand friday"))
}

func TestScore_PreviewBeatsRecap(t *testing.T) {
	preview := Score("RedHawks host Bearcats tonight", "Tipoff is at 7 pm in Oxford", FocusCollegeBasketball)
	recap := Score("RedHawks beat Bearcats", "Final score and postgame takeaways", FocusCollegeBasketball)
	assert.Greater(t, preview, recap)
}

func TestScore_OffModeTeamSuppressed(t *testing.T) {
	onMode := Score("Reds open series against Guardians", "", FocusBaseball)
	offMode := Score("Reds open series against Guardians", "", FocusFootball)
	assert.Greater(t, onMode, offMode)
}

func TestEventKeys_TeamAndMatchup(t *testing.T) {
	keys := EventKeys("RedHawks host Bearcats tonight in Oxford")
	assert.Contains(t, keys, "team:redhawks")
	assert.Contains(t, keys, "team:bearcats")
	assert.Contains(t, keys, "matchup:bearcats|redhawks")
	assert.NotContains(t, keys, "result:bearcats|redhawks")
}

func TestEventKeys_ResultVerb(t *testing.T) {
	keys := EventKeys("RedHawks beat Bearcats 72-68")
	assert.Contains(t, keys, "result:bearcats|redhawks")
}

func TestEventKeys_NoTeams(t *testing.T) {
	assert.Nil(t, EventKeys("council approves parking changes"))
}

func TestEventKeys_SingleTeamNoResultKey(t *testing.T) {
	keys := EventKeys("RedHawks beat the spread")
	assert.Equal(t, []string{"team:redhawks"}, keys)
}

func TestIsFloridaNoise(t *testing.T) {
	assert.True(t, IsFloridaNoise("Miami Heat clinch playoff spot"))
	assert.False(t, IsFloridaNoise("Miami University announces new athletic director"))
	// Ohio signal wins even with Florida terms present.
	assert.False(t, IsFloridaNoise("Miami RedHawks recruit transfers from Miami Hurricanes"))
	// No Miami mention at all.
	assert.False(t, IsFloridaNoise("Bengals sign veteran linebacker"))
}
