package figure

import (
	"io"
	"strings"
)

// Render serializes the figure into a plain <figure> block without a trailing newline.
func (f Figure) Render() string {
	var b strings.Builder
	_, _ = f.WriteTo(&b)

	return b.String()
}

func (f Figure) String() string {
	return f.Render()
}

// WriteTo writes the rendered block to w.
func (f Figure) WriteTo(w io.Writer) (int64, error) {
	bw := &countingWriter{w: w}

	bw.WriteString("<figure>\n")
	bw.WriteString(`  <a href="` + f.Src + `" title="Click to enlarge" target="_blank">` + "\n")
	bw.WriteString("    <picture>\n")

	// The light and dark sources are only ever written as a pair.
	if f.HasDarkSrc() {
		bw.WriteString(`      <source srcset="` + f.Src + `" media="(prefers-color-scheme: light)" />` + "\n")
		bw.WriteString(`      <source srcset="` + f.DarkSrc.Get() + `" media="(prefers-color-scheme: dark)" />` + "\n")
	}

	bw.WriteString(`      <img src="` + f.Src + `"`)
	if f.HasAlt() {
		bw.WriteString(` alt="` + f.Alt.Get() + `"`)
	}
	bw.WriteString(" />\n")

	bw.WriteString("    </picture>\n")
	bw.WriteString("  </a>\n")
	bw.WriteString("  <figcaption>" + f.Body + "</figcaption>\n")
	bw.WriteString("</figure>")

	return bw.n, bw.err
}

// countingWriter keeps the first error and stops writing afterwards.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) WriteString(s string) {
	if c.err != nil {
		return
	}

	n, err := io.WriteString(c.w, s)
	c.n += int64(n)
	c.err = err
}
