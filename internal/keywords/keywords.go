// Package keywords derives the dashboard's keyword buttons from the topic
// table.
//
// Every topic carries a Representation cell holding a list literal of
// keywords. Extract parses those cells, flattens and dedupes the keywords
// and sorts them. Partition then bisects the sorted list by position into a
// "negative" first half and a "positive" second half. The split carries no
// information about how a keyword relates to review sentiment.
//
// All functions are pure and safe for concurrent use.
package keywords

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/spacesedan/sentidash/internal/models"
)

// Groups is the sorted keyword set split at its midpoint.
type Groups struct {
	Negative []string `json:"negative"`
	Positive []string `json:"positive"`
}

// Len returns the total number of keywords in both groups.
func (g Groups) Len() int {
	return len(g.Negative) + len(g.Positive)
}

// Extract parses every non-blank representation cell and returns the unique
// keywords in ascending order. Cells that fail to parse, or parse to
// something other than a list, contribute nothing.
func Extract(representations []string) []string {
	seen := make(map[string]struct{})
	out := []string{}

	for i, rep := range representations {
		if strings.TrimSpace(rep) == "" {
			continue
		}
		words, err := ParseList(rep)
		if err != nil {
			slog.Debug("[Keywords] Skipping unparsable representation",
				slog.Int("row", i),
				slog.String("error", err.Error()))
			continue
		}
		for _, w := range words {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}

	slices.Sort(out)
	return out
}

// Partition splits sorted keywords at len/2. The first half is the negative
// group, the remainder the positive group, so a single keyword lands in the
// positive group.
func Partition(sorted []string) Groups {
	mid := len(sorted) / 2
	return Groups{
		Negative: append([]string{}, sorted[:mid]...),
		Positive: append([]string{}, sorted[mid:]...),
	}
}

// ExtractGroups runs Extract over the topics' representations and
// partitions the result.
func ExtractGroups(topics []models.Topic) Groups {
	reps := make([]string, 0, len(topics))
	for _, t := range topics {
		reps = append(reps, t.Representation)
	}
	return Partition(Extract(reps))
}
