package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/ducban/minimalist-cv/internal/richtext"
)

// RichHTML renders a rich text block to HTML. Unlike the wire flattening,
// rendering is strict: a node kind outside the closed set panics, and the
// section boundary turns that panic into the section's fallback.
func RichHTML(b richtext.Block) template.HTML {
	var sb strings.Builder
	for _, n := range b {
		writeNode(&sb, n)
	}
	return template.HTML(sb.String())
}

func writeNode(sb *strings.Builder, n richtext.Node) {
	switch n.Kind {
	case richtext.KindText:
		sb.WriteString(template.HTMLEscapeString(n.Text))
	case richtext.KindEmphasis:
		sb.WriteString("<em>")
		sb.WriteString(template.HTMLEscapeString(n.Text))
		sb.WriteString("</em>")
	case richtext.KindLink:
		sb.WriteString(`<a href="`)
		sb.WriteString(template.HTMLEscapeString(safeHref(n.Href)))
		sb.WriteString(`" target="_blank" rel="noopener noreferrer">`)
		sb.WriteString(template.HTMLEscapeString(n.Text))
		sb.WriteString("</a>")
	case richtext.KindParagraph:
		sb.WriteString("<p>")
		for _, c := range n.Children {
			writeNode(sb, c)
		}
		sb.WriteString("</p>")
	case richtext.KindList:
		sb.WriteString("<ul>")
		for _, c := range n.Children {
			sb.WriteString("<li>")
			if c.Kind == richtext.KindParagraph {
				// List items are authored as paragraphs; unwrap them so
				// the markup stays flat.
				for _, cc := range c.Children {
					writeNode(sb, cc)
				}
			} else {
				writeNode(sb, c)
			}
			sb.WriteString("</li>")
		}
		sb.WriteString("</ul>")
	default:
		panic(fmt.Sprintf("unknown rich text node kind %s", n.Kind))
	}
}

// safeHref allows the handful of link schemes the page uses and defuses
// anything else.
func safeHref(href string) string {
	trimmed := strings.TrimSpace(href)
	lower := strings.ToLower(trimmed)
	switch {
	case strings.HasPrefix(lower, "http://"),
		strings.HasPrefix(lower, "https://"),
		strings.HasPrefix(lower, "mailto:"),
		strings.HasPrefix(lower, "tel:"),
		strings.HasPrefix(trimmed, "/"),
		strings.HasPrefix(trimmed, "#"):
		return trimmed
	default:
		return "#"
	}
}
