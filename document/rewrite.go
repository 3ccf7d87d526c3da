package document

import (
	"regexp"
	"strings"

	"gitlab.com/begraf/figconv/figure"
)

// Rewriter replaces every element occurrence of one document with its rendered
// block and strips the then unused component import.
type Rewriter struct {
	matcher *figure.Matcher
	imports *regexp.Regexp
}

func NewRewriter(tagName string) *Rewriter {
	return &Rewriter{
		matcher: figure.NewMatcher(tagName),
		imports: importPattern(tagName),
	}
}

var defaultRewriter = NewRewriter(figure.DefaultTagName)

// Rewrite converts text using the default element name.
func Rewrite(text string) string {
	return defaultRewriter.Rewrite(text)
}

func (r *Rewriter) TagName() string {
	return r.matcher.TagName()
}

// Rewrite replaces all occurrences in a single left to right pass over the
// original text and then removes the imports.
func (r *Rewriter) Rewrite(text string) string {
	out, _ := r.RewriteCount(text)

	return out
}

// RewriteCount is Rewrite that also reports the number of replaced occurrences.
func (r *Rewriter) RewriteCount(text string) (string, int) {
	replaced, n := r.replaceFigures(text)

	return r.imports.ReplaceAllLiteralString(replaced, ""), n
}

// Figures returns the parsed occurrences of text without rewriting it.
func (r *Rewriter) Figures(text string) []figure.Figure {
	var figures []figure.Figure
	for match := range r.matcher.All(text) {
		figures = append(figures, match.Figure())
	}

	return figures
}

func (r *Rewriter) replaceFigures(text string) (string, int) {
	var (
		b    strings.Builder
		last int
		n    int
	)

	for match := range r.matcher.All(text) {
		if n == 0 {
			b.Grow(len(text))
		}

		b.WriteString(text[last:match.Start])
		_, _ = match.Figure().WriteTo(&b)
		last = match.End
		n++
	}

	if n == 0 {
		return text, 0
	}

	b.WriteString(text[last:])

	return b.String(), n
}
