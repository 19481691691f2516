package soccer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTagsClassifiesContinentalClubCompetition(t *testing.T) {
	tags := DeriveTags("uefa.champions")
	assert.Equal(t, []string{"continental", "club", "league", "mens"}, tags)
}

func TestDeriveTagsClassifiesDomesticCupCompetition(t *testing.T) {
	tags := DeriveTags("ger.dfb_pokal")
	assert.Equal(t, []string{"domestic", "club", "cup", "mens"}, tags)
}

func TestDeriveTagsClassifiesDomesticLeague(t *testing.T) {
	tags := DeriveTags("eng.1")
	assert.Equal(t, []string{"domestic", "club", "league", "mens"}, tags)
}

func TestDeriveTagsClassifiesWorldNationalTeamCompetition(t *testing.T) {
	tags := DeriveTags("fifa.world")
	assert.Equal(t, []string{"world", "national", "league", "mens"}, tags)
}

func TestDeriveTagsClassifiesWomensCompetition(t *testing.T) {
	tags := DeriveTags("eng.w.1")
	assert.Equal(t, []string{"domestic", "club", "league", "womens"}, tags)
}

func TestDeriveTagsClassifiesYouthCompetition(t *testing.T) {
	tags := DeriveTags("fifa.u20")
	assert.Equal(t, []string{"world", "club", "league", "youth"}, tags)
}

func TestKnownLeagueSlugsHasNoDuplicatesAndCoversMajorDomestics(t *testing.T) {
	seen := make(map[string]bool, len(KnownLeagueSlugs))
	for _, slug := range KnownLeagueSlugs {
		assert.False(t, seen[slug], "duplicate slug %s", slug)
		seen[slug] = true
		assert.NotEmpty(t, slug)
	}
	assert.Contains(t, KnownLeagueSlugs, "eng.1")
	assert.Contains(t, KnownLeagueSlugs, "uefa.champions")
	assert.Contains(t, KnownLeagueSlugs, "fifa.world")
}
