// Package inspect renders converted documents and reports the figures found in
// the resulting HTML.
package inspect

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
	nethtml "golang.org/x/net/html"
)

type Source struct {
	Srcset string `yaml:"srcset"`
	Media  string `yaml:"media"`
}

// Summary describes one rendered <figure> element.
type Summary struct {
	Href     string   `yaml:"href"`
	Src      string   `yaml:"src"`
	Alt      *string  `yaml:"alt,omitempty"`
	Sources  []Source `yaml:"sources,omitempty"`
	Images   int      `yaml:"images"`
	Caption  string   `yaml:"caption"`
	Elements int      `yaml:"-"` // element children of <figure>
}

func (s Summary) HasAlt() bool {
	return s.Alt != nil
}

var markdown = goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe()))

// RenderHTML converts markdown to HTML, keeping raw HTML blocks.
func RenderHTML(source []byte) ([]byte, error) {
	var buffer bytes.Buffer
	if err := markdown.Convert(source, &buffer); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	return buffer.Bytes(), nil
}

// Figures renders markdown and summarizes every <figure> in document order.
// A raw HTML block ends at a blank line, so a caption containing one is only
// summarized up to that line.
func Figures(source []byte) ([]Summary, error) {
	rendered, err := RenderHTML(source)
	if err != nil {
		return nil, err
	}

	return FiguresFromHTML(rendered)
}

func FiguresFromHTML(rendered []byte) ([]Summary, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(rendered))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	var summaries []Summary

	doc.Find("figure").Each(func(i int, s *goquery.Selection) {
		summary := Summary{
			Href:     s.Find("a").First().AttrOr("href", ""),
			Src:      s.Find("img").First().AttrOr("src", ""),
			Images:   s.Find("img").Length(),
			Elements: countElementChildren(s.Nodes[0]),
		}

		if alt, ok := s.Find("img").First().Attr("alt"); ok {
			summary.Alt = &alt
		}

		s.Find("picture source").Each(func(i int, src *goquery.Selection) {
			summary.Sources = append(summary.Sources, Source{
				Srcset: src.AttrOr("srcset", ""),
				Media:  src.AttrOr("media", ""),
			})
		})

		caption, err := s.Find("figcaption").First().Html()
		if err == nil {
			summary.Caption = strings.TrimSpace(caption)
		}

		summaries = append(summaries, summary)
	})

	return summaries, nil
}

func countElementChildren(n *nethtml.Node) int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == nethtml.ElementNode {
			count++
		}
	}

	return count
}
