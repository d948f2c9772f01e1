package models

// Topic is one row of the topic results table. Representation holds the
// topic keywords encoded as a list literal, e.g. "['great', 'fast']".
// Other columns of the table are not read.
type Topic struct {
	Representation string `json:"representation" dynamodbav:"Representation"`
}
