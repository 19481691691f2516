package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSubstitutesKnownPlaceholders(t *testing.T) {
	vars := map[string]string{
		"team_name":     "Lions",
		"opponent_name": "Tigers",
	}
	got := Render("{team_name} vs {opponent_name}", vars)
	assert.Equal(t, "Lions vs Tigers", got)
}

func TestRenderUnknownPlaceholderBecomesEmpty(t *testing.T) {
	got := Render("Next: {opponent_name.next}", map[string]string{})
	assert.Equal(t, "Next: ", got)
}

func TestRenderLeavesNonPlaceholderTextUntouched(t *testing.T) {
	got := Render("No braces here, 100% literal.", map[string]string{})
	assert.Equal(t, "No braces here, 100% literal.", got)
}

func TestRenderDistinguishesSuffixedVariants(t *testing.T) {
	vars := map[string]string{
		"opponent_name":      "Tigers",
		"opponent_name.next": "Bears",
		"opponent_name.last": "Wolves",
	}
	got := Render("{opponent_name} {opponent_name.next} {opponent_name.last}", vars)
	assert.Equal(t, "Tigers Bears Wolves", got)
}
