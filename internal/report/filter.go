package report

import (
	"strings"

	"github.com/spacesedan/sentidash/internal/models"
	"github.com/spacesedan/sentidash/internal/selection"
	"github.com/spacesedan/sentidash/internal/sentiment"
)

// FilterReviews returns, in their original order, the reviews whose
// sentiment matches the selected group and whose text contains the keyword
// ignoring case. The keyword is a plain substring, never a pattern. Reviews
// with missing text never match, and an inactive selection matches nothing.
func FilterReviews(reviews []models.Review, sel selection.Selection) []models.Review {
	if !sel.Active() {
		return nil
	}

	label := sel.Group.String()
	needle := strings.ToLower(sel.Keyword)

	matched := []models.Review{}
	for _, r := range reviews {
		if !r.HasText() || sentiment.Normalize(r.Sentiment) != label {
			continue
		}
		if strings.Contains(strings.ToLower(r.Text), needle) {
			matched = append(matched, r)
		}
	}
	return matched
}
