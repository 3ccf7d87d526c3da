package document

import (
	"fmt"
	"regexp"
)

func importPattern(tagName string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`import %s from "[^"]+";?\n*`, regexp.QuoteMeta(tagName)))
}

// StripImports removes `import <tagName> from "...";` declarations together with
// the newlines following them. Other statements are left untouched.
func StripImports(text string, tagName string) string {
	return importPattern(tagName).ReplaceAllLiteralString(text, "")
}
