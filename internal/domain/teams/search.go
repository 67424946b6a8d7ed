package teams

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Match is a ranked search hit; lower Distance is better.
type Match struct {
	Team     Team `json:"team"`
	Distance int  `json:"distance"`
}

// Search ranks teams against a free-text query. Exact id or abbreviation hits rank first,
// then fuzzy matches over name and city ordered by Levenshtein distance.
func (d *Directory) Search(query string, limit int) []Match {
	query = strings.TrimSpace(query)
	if d == nil || query == "" {
		return nil
	}
	lowered := strings.ToLower(query)

	var matches []Match
	for _, id := range d.ids {
		t := d.teams[id]
		if best, ok := bestDistance(t, query, lowered); ok {
			matches = append(matches, Match{Team: t, Distance: best})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Team.ID < matches[j].Team.ID
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func bestDistance(t Team, query, lowered string) (int, bool) {
	if strings.EqualFold(t.ID, query) {
		return -1, true
	}
	for _, abbr := range t.Abbreviations {
		if strings.EqualFold(abbr, query) {
			return -1, true
		}
	}

	best, found := 0, false
	for _, target := range []string{t.Name, t.City, t.City + " " + t.Name} {
		if target == "" || !fuzzy.MatchNormalizedFold(query, target) {
			continue
		}
		dist := fuzzy.LevenshteinDistance(lowered, strings.ToLower(target))
		if !found || dist < best {
			best, found = dist, true
		}
	}
	return best, found
}
