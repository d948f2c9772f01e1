// Package selection holds the dashboard's active keyword selection.
//
// A Selection is a plain value. The zero value is Unselected; a selected
// value carries the keyword group and the keyword. Toggle computes the next
// state from the current one and a button activation, and Store implementations
// keep one Selection per browser session between requests.
package selection

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Group identifies which keyword grid a button belongs to.
type Group int

const (
	GroupNone Group = iota
	GroupNegative
	GroupPositive
)

var ErrUnknownGroup = errors.New("selection: unknown group")

// ParseGroup accepts "negative" or "positive" in any letter case.
func ParseGroup(s string) (Group, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "negative":
		return GroupNegative, nil
	case "positive":
		return GroupPositive, nil
	default:
		return GroupNone, fmt.Errorf("%w: %q", ErrUnknownGroup, s)
	}
}

// String returns the sentiment label the group filters on.
func (g Group) String() string {
	switch g {
	case GroupNegative:
		return "negative"
	case GroupPositive:
		return "positive"
	default:
		return ""
	}
}

// Title returns the capitalized label used in headings.
func (g Group) Title() string {
	switch g {
	case GroupNegative:
		return "Negative"
	case GroupPositive:
		return "Positive"
	default:
		return ""
	}
}

func (g Group) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *Group) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*g = GroupNone
		return nil
	}
	parsed, err := ParseGroup(string(b))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Selection is the active (group, keyword) pair. The zero value means
// nothing is selected.
type Selection struct {
	Group   Group  `json:"group"`
	Keyword string `json:"keyword"`
}

// Unselected is the initial state.
var Unselected = Selection{}

// Select builds a selected state.
func Select(group Group, keyword string) Selection {
	return Selection{Group: group, Keyword: keyword}
}

// Active reports whether a keyword is selected.
func (s Selection) Active() bool {
	return s.Group != GroupNone
}

// Is reports whether s is the selected state for this group and keyword.
func (s Selection) Is(group Group, keyword string) bool {
	return s.Active() && s.Group == group && s.Keyword == keyword
}

// Toggle returns the state after activating next while in current.
// Activating the selected pair again clears it; anything else replaces it.
func Toggle(current, next Selection) Selection {
	if !next.Active() {
		return current
	}
	if current == next {
		return Unselected
	}
	return next
}

func encode(s Selection) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decode(raw string) (Selection, error) {
	var s Selection
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Unselected, err
	}
	if !s.Active() {
		return Unselected, nil
	}
	return s, nil
}
