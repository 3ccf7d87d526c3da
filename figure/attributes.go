package figure

import "regexp"

// A key starts the span or follows whitespace, so hyphenated keys such as
// data-src are captured whole. Values are double quoted without escapes; an
// embedded quote ends the value.
var attributePattern = regexp.MustCompile(`(?:^|\s)([a-zA-Z_][\w-]*)="([^"]+)"`)

type Attribute struct {
	Key   string
	Value string
}

// ParseAttributes returns all key="value" pairs of an attribute span in source order.
func ParseAttributes(attrs string) []Attribute {
	groups := attributePattern.FindAllStringSubmatch(attrs, -1)
	if len(groups) == 0 {
		return nil
	}

	result := make([]Attribute, 0, len(groups))
	for _, g := range groups {
		result = append(result, Attribute{Key: g[1], Value: g[2]})
	}

	return result
}
