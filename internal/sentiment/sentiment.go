// Package sentiment summarizes precomputed review sentiment labels.
package sentiment

import (
	"strings"

	"github.com/spacesedan/sentidash/internal/models"
)

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
)

// Summary is the positive/negative split of a review collection.
type Summary struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
}

// Normalize lowercases a sentiment label so "Positive" and "POSITIVE" compare
// equal. Nothing else is stripped: " positive" is not a positive label.
func Normalize(label string) string {
	return strings.ToLower(label)
}

// Aggregate counts reviews labelled positive and negative. Any other label,
// including a missing one, is ignored.
func Aggregate(reviews []models.Review) Summary {
	var s Summary
	for _, r := range reviews {
		switch Normalize(r.Sentiment) {
		case LabelPositive:
			s.Positive++
		case LabelNegative:
			s.Negative++
		}
	}
	return s
}

func (s Summary) Total() int {
	return s.Positive + s.Negative
}

// Empty reports whether there is nothing to chart.
func (s Summary) Empty() bool {
	return s.Total() == 0
}

// NegativeShare is the negative portion of the total as a percentage.
func (s Summary) NegativeShare() float64 {
	if s.Empty() {
		return 0
	}
	return float64(s.Negative) * 100 / float64(s.Total())
}

// PositiveShare is the positive portion of the total as a percentage.
func (s Summary) PositiveShare() float64 {
	if s.Empty() {
		return 0
	}
	return float64(s.Positive) * 100 / float64(s.Total())
}
