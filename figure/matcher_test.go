package figure

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(m *Matcher, text string) []Match {
	return slices.Collect(m.All(text))
}

func TestMatcherNoMatch(t *testing.T) {
	m := NewMatcher(DefaultTagName)

	require.Empty(t, collect(m, ""))
	require.Empty(t, collect(m, "# Title\n\nJust text with <figure>lowercase</figure>.\n"))
	require.Empty(t, collect(m, `<Figure src="a.png">never closed`))
	require.Empty(t, collect(m, `<FigureCaption src="a.png">x</Figure>`))
	require.Empty(t, collect(m, `<Figures>x</Figure>`))
}

func TestMatcherEmptyBody(t *testing.T) {
	m := NewMatcher(DefaultTagName)

	matches := collect(m, `<Figure src="a.png"></Figure>`)
	require.Len(t, matches, 1)
	require.Equal(t, "", matches[0].Body)
	require.Equal(t, `src="a.png"`, matches[0].Attributes)
}

func TestMatcherEmptyBodyFollowedByFigure(t *testing.T) {
	m := NewMatcher(DefaultTagName)
	text := "<Figure src=\"a.png\"></Figure>\n\n<Figure src=\"b.png\">two</Figure>"

	matches := collect(m, text)
	require.Len(t, matches, 2)
	require.Equal(t, `<Figure src="a.png"></Figure>`, matches[0].Span)
	require.Equal(t, "", matches[0].Body)
	require.Equal(t, "two", matches[1].Body)
	require.Equal(t, "b.png", matches[1].Figure().Src)
}

func TestMatcherNameBoundary(t *testing.T) {
	m := NewMatcher(DefaultTagName)

	matches := collect(m, "<FigureCaption>no</FigureCaption> <Figure\tsrc=\"a.png\">yes</Figure>")
	require.Len(t, matches, 1)
	require.Equal(t, "yes", matches[0].Body)
	require.Equal(t, `src="a.png"`, matches[0].Attributes)
}

func TestMatcherSingle(t *testing.T) {
	m := NewMatcher(DefaultTagName)
	text := "before\n<Figure src=\"a.png\" alt=\"x\">caption</Figure>\nafter"

	matches := collect(m, text)
	require.Len(t, matches, 1)

	match := matches[0]
	require.Equal(t, `<Figure src="a.png" alt="x">caption</Figure>`, match.Span)
	require.Equal(t, `src="a.png" alt="x"`, match.Attributes)
	require.Equal(t, "caption", match.Body)
	require.Equal(t, match.Span, text[match.Start:match.End])
}

func TestMatcherNoAttributes(t *testing.T) {
	m := NewMatcher(DefaultTagName)

	matches := collect(m, "<Figure>caption</Figure>")
	require.Len(t, matches, 1)
	require.Equal(t, "", matches[0].Attributes)
	require.Equal(t, "caption", matches[0].Body)
}

func TestMatcherMultiline(t *testing.T) {
	m := NewMatcher(DefaultTagName)
	text := "<Figure\n  src=\"a.png\"\n  darkSrc=\"b.png\"\n>\n  Some *markdown* and <code>html</code>\n</Figure>"

	matches := collect(m, text)
	require.Len(t, matches, 1)
	require.Equal(t, "src=\"a.png\"\n  darkSrc=\"b.png\"\n", matches[0].Attributes)
	require.Equal(t, "\n  Some *markdown* and <code>html</code>\n", matches[0].Body)
}

func TestMatcherMultipleInstances(t *testing.T) {
	m := NewMatcher(DefaultTagName)
	text := `<Figure src="a.png">one</Figure>

middle

<Figure src="b.png">two</Figure>`

	matches := collect(m, text)
	require.Len(t, matches, 2)
	require.Equal(t, "one", matches[0].Body)
	require.Equal(t, "two", matches[1].Body)
	require.Equal(t, "b.png", matches[1].Figure().Src)
	require.Less(t, matches[0].End, matches[1].Start)
}

func TestMatcherCaseSensitive(t *testing.T) {
	m := NewMatcher(DefaultTagName)
	require.Equal(t, 0, m.Count(`<figure src="a.png">x</figure>`))
	require.Equal(t, 0, m.Count(`<FIGURE src="a.png">x</FIGURE>`))
}

func TestMatcherCustomTag(t *testing.T) {
	m := NewMatcher("Image.Block")
	require.Equal(t, "Image.Block", m.TagName())
	require.Equal(t, 1, m.Count(`<Image.Block src="a.png">x</Image.Block>`))
	require.Equal(t, 0, m.Count(`<ImageXBlock src="a.png">x</ImageXBlock>`))
}

func TestMatcherStopsEarly(t *testing.T) {
	m := NewMatcher(DefaultTagName)
	text := `<Figure src="a">1</Figure><Figure src="b">2</Figure><Figure src="c">3</Figure>`

	var seen []string
	for match := range m.All(text) {
		seen = append(seen, match.Body)
		if len(seen) == 2 {
			break
		}
	}

	require.Equal(t, []string{"1", "2"}, seen)
}
