package figure

import (
	"fmt"
	"iter"
	"regexp"
)

// Match is a single element occurrence within a document.
type Match struct {
	Start      int // byte offset of '<' of the opening tag
	End        int // byte offset just past the closing tag
	Span       string
	Attributes string
	Body       string
}

func (m Match) Figure() Figure {
	return New(m.Attributes, m.Body)
}

type Matcher struct {
	tagName string
	pattern *regexp.Regexp
}

// NewMatcher returns a matcher for the case-sensitive element name tagName.
// The name must be followed by whitespace or '>'. The body capture is
// non-greedy and may be empty, so each closing tag ends its own occurrence.
func NewMatcher(tagName string) *Matcher {
	name := regexp.QuoteMeta(tagName)

	return &Matcher{
		tagName: tagName,
		pattern: regexp.MustCompile(fmt.Sprintf(`(?s)<%s(?:\s+([^>]*))?>(.*?)</%s>`, name, name)),
	}
}

func (m *Matcher) TagName() string {
	return m.tagName
}

// All yields the non-overlapping occurrences in text from left to right.
func (m *Matcher) All(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		pos := 0
		for pos < len(text) {
			loc := m.pattern.FindStringSubmatchIndex(text[pos:])
			if loc == nil {
				return
			}

			match := Match{
				Start: pos + loc[0],
				End:   pos + loc[1],
				Span:  text[pos+loc[0] : pos+loc[1]],
				Body:  text[pos+loc[4] : pos+loc[5]],
			}
			if loc[2] >= 0 {
				match.Attributes = text[pos+loc[2] : pos+loc[3]]
			}

			if !yield(match) {
				return
			}

			pos = match.End
		}
	}
}

// Count returns the number of occurrences in text.
func (m *Matcher) Count(text string) int {
	n := 0
	for range m.All(text) {
		n++
	}

	return n
}
