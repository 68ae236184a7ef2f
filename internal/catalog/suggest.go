package catalog

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest offers "did you mean" candidates for a query that found nothing.
// Titles and artists are ranked by fuzzy distance, then popularity.
func (c *Catalog) Suggest(query string, limit int) []Song {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || limit <= 0 {
		return nil
	}
	labels := make([]string, len(c.songs))
	for i, s := range c.songs {
		labels[i] = s.Title + " " + s.Artist
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return nil
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return c.songs[ranks[i].OriginalIndex].Popularity > c.songs[ranks[j].OriginalIndex].Popularity
	})
	out := make([]Song, 0, limit)
	for _, rank := range ranks {
		if len(out) == limit {
			break
		}
		out = append(out, cloneSong(c.songs[rank.OriginalIndex]))
	}
	return out
}
