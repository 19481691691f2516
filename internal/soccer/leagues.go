// Package soccer implements the Tier S soccer league crawl: discover every
// league the primary provider exposes, fetch its team list, and build the
// provider_team_id -> [league_slug...] reverse index.
package soccer

import "strings"

// KnownLeagueSlugs is the crawl seed list: a fixed set of soccer league
// slugs under the primary provider's "soccer" sport namespace, covering the
// major domestic, continental, international, women's, and youth
// competitions crawled on a cold refresh. It is not read from
// configuration; leagues missing from this list are not crawled.
var KnownLeagueSlugs = []string{
	// England
	"eng.1", "eng.2", "eng.3", "eng.4", "eng.fa", "eng.league_cup", "eng.charity",
	// Spain
	"esp.1", "esp.2", "esp.copa_del_rey", "esp.super_cup",
	// Italy
	"ita.1", "ita.2", "ita.coppa_italia", "ita.super_cup",
	// Germany
	"ger.1", "ger.2", "ger.dfb_pokal", "ger.super_cup",
	// France
	"fra.1", "fra.2", "fra.coupe_de_france",
	// Portugal, Netherlands, Belgium, Scotland
	"por.1", "ned.1", "bel.1", "sco.1", "sco.league_cup",
	// Other domestic leagues
	"usa.1", "mex.1", "bra.1", "bra.copa_do_brasil", "arg.1", "jpn.1", "chn.1",
	"tur.1", "rsa.1", "sau.1", "aus.1",
	// Continental club competitions
	"uefa.champions", "uefa.europa", "uefa.europa.conf", "uefa.super_cup",
	"conmebol.libertadores", "conmebol.sudamericana",
	"concacaf.champions",
	// National team competitions
	"fifa.world", "fifa.worldq.uefa", "fifa.worldq.concacaf", "fifa.worldq.conmebol",
	"uefa.euro", "uefa.nations", "conmebol.copa_america", "concacaf.gold",
	"fifa.confederations",
	// Women's
	"eng.w.1", "usa.w.1", "uefa.w.champions", "fifa.w.world",
	// Youth
	"uefa.u21", "fifa.u20", "fifa.u17",
}

// DeriveTags classifies a league slug into the closed, multi-valued tag set
// {domestic, continental, world, club, national, league, cup, mens, womens,
// youth} by pattern match, matching the primary provider's slug conventions
//.
func DeriveTags(slug string) []string {
	tags := make(map[string]bool)

	switch {
	case strings.HasPrefix(slug, "uefa.") || strings.HasPrefix(slug, "conmebol.") || strings.HasPrefix(slug, "concacaf."):
		tags["continental"] = true
	case strings.HasPrefix(slug, "fifa."):
		tags["world"] = true
	default:
		tags["domestic"] = true
	}

	switch {
	case strings.Contains(slug, "world") || (strings.Contains(slug, "euro") && !strings.Contains(slug, "europa")) || strings.Contains(slug, "copa_america") ||
		strings.Contains(slug, "gold") || strings.Contains(slug, "nations") || strings.Contains(slug, "confederations"):
		tags["national"] = true
	default:
		tags["club"] = true
	}

	switch {
	case strings.Contains(slug, "cup") || strings.Contains(slug, "coppa") || strings.Contains(slug, "coupe") ||
		strings.Contains(slug, "copa") || strings.Contains(slug, "pokal") || strings.Contains(slug, "super"):
		tags["cup"] = true
	default:
		tags["league"] = true
	}

	if strings.Contains(slug, ".w.") || strings.HasSuffix(slug, ".w") {
		tags["womens"] = true
	} else if strings.Contains(slug, "u21") || strings.Contains(slug, "u20") || strings.Contains(slug, "u17") {
		tags["youth"] = true
	} else {
		tags["mens"] = true
	}

	ordered := make([]string, 0, len(tags))
	for _, t := range tagOrder {
		if tags[t] {
			ordered = append(ordered, t)
		}
	}
	return ordered
}

// tagOrder fixes a deterministic iteration order over the closed tag set so
// stored tag lists are reproducible across refreshes.
var tagOrder = []string{
	"domestic", "continental", "world", "club", "national",
	"league", "cup", "mens", "womens", "youth",
}
