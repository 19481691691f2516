package upstream

import (
	"context"
	"fmt"
	"net/url"
)

// FetchTSDBTeamByName queries TheSportsDB for a team by name, used for
// soccer cross-reference discovery. The returned espn_id field is the only
// sanctioned cross-provider coalescing path.
func (c *Client) FetchTSDBTeamByName(ctx context.Context, name string) (*TsdbTeamDoc, error) {
	q := url.Values{}
	q.Set("t", name)
	u := fmt.Sprintf("%s/%s/searchteams.php?%s", c.tsdbBaseURL, c.tsdbAPIKey, q.Encode())

	body, err := c.getJSON(ctx, c.tsdbBreaker, u)
	if err != nil {
		return nil, err
	}
	doc, err := decodeJSON[TsdbTeamDoc](body)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ESPNCrossRef returns the ESPN team id discovered via TheSportsDB's
// explicit idESPN field for the given TSDB team name, or "" if absent.
func ESPNCrossRef(doc *TsdbTeamDoc) string {
	if doc == nil {
		return ""
	}
	for _, t := range doc.Teams {
		if t.ESPNID != "" {
			return t.ESPNID
		}
	}
	return ""
}
