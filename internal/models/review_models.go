package models

// Review is one row of the review sentiments table. Blank cells load as
// empty strings and count as missing.
type Review struct {
	Text      string `json:"text" dynamodbav:"text"`
	Sentiment string `json:"sentiment" dynamodbav:"sentiment"`
}

// HasText reports whether the review text cell was present.
func (r Review) HasText() bool {
	return r.Text != ""
}
