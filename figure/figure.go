package figure

import "gitlab.com/begraf/figconv/option"

// Name of the markup element replaced by the converter.
const DefaultTagName = "Figure"

// Recognized attribute keys.
const (
	SrcAttributeName     = "src"
	DarkSrcAttributeName = "darkSrc"
	AltAttributeName     = "alt"
)

// Figure is one parsed element occurrence. Body is the verbatim inner text.
type Figure struct {
	Src     string
	DarkSrc option.Option[string]
	Alt     option.Option[string]
	Body    string
}

// New builds a Figure from the raw attribute span and body of a match.
// Unknown keys are dropped and repeated keys keep the last value.
func New(attrs string, body string) Figure {
	fig := Figure{
		Body: body,
	}

	for _, attr := range ParseAttributes(attrs) {
		switch attr.Key {
		case SrcAttributeName:
			fig.Src = attr.Value
		case DarkSrcAttributeName:
			fig.DarkSrc = option.Some(attr.Value)
		case AltAttributeName:
			fig.Alt = option.Some(attr.Value)
		}
	}

	return fig
}

func (f Figure) HasDarkSrc() bool {
	return f.DarkSrc.IsSome()
}

func (f Figure) HasAlt() bool {
	return f.Alt.IsSome()
}
