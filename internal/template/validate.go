package template

import (
	"fmt"
	"sort"
	"strings"

	"github.com/albapepper/teamarr/internal/model"
)

// ValidateTemplate checks every format string a template carries against
// ValidatePlaceholders and joins the offending tokens into a single error,
// naming the field they came from. Returns nil when every placeholder use
// is legal for its variable's strategy.
func ValidateTemplate(t model.Template) error {
	fields := []struct {
		name   string
		format string
	}{
		{"title_format", t.TitleFormat},
		{"subtitle_format", t.SubtitleFormat},
		{"pregame_template", t.PregameTemplate},
		{"postgame_template", t.PostgameTemplate},
		{"idle_template", t.IdleTemplate},
	}

	var bad []string
	for _, f := range fields {
		for _, tok := range ValidatePlaceholders(f.format) {
			bad = append(bad, fmt.Sprintf("%s: %s", f.name, tok))
		}
	}
	for i, opt := range t.DescriptionOptions {
		for _, tok := range ValidatePlaceholders(opt.Text) {
			bad = append(bad, fmt.Sprintf("description_options[%d]: %s", i, tok))
		}
	}

	if len(bad) == 0 {
		return nil
	}
	sort.Strings(bad)
	return fmt.Errorf("invalid placeholder slot(s): %s", strings.Join(bad, ", "))
}
