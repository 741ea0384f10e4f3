package content

import (
	"fmt"
	"strings"
)

// PlainText renders a document as plain lines for terminal display. Headings
// are returned with heading set so callers can style them.
func (d Document) PlainText() []Line {
	lines := make([]Line, 0, len(d.Blocks)*2)
	for i, b := range d.Blocks {
		if i > 0 && b.Heading != "" {
			lines = append(lines, Line{})
		}
		switch {
		case b.Heading != "":
			lines = append(lines, Line{Text: b.Heading, Heading: true})
		case b.Paragraph != "":
			lines = append(lines, Line{Text: b.Paragraph})
		case b.Warning != "":
			lines = append(lines, Line{Text: "! " + b.Warning, Warning: true})
		case len(b.Ordered) > 0:
			for n, item := range b.Ordered {
				lines = append(lines, Line{Text: fmt.Sprintf("%d. %s", n+1, item)})
			}
		case len(b.Bullets) > 0:
			for _, item := range b.Bullets {
				lines = append(lines, Line{Text: "• " + item})
			}
		case len(b.Terms) > 0:
			for _, term := range b.Terms {
				lines = append(lines, Line{Text: term.Name})
				for _, detail := range term.Details {
					lines = append(lines, Line{Text: "  " + detail})
				}
			}
		case b.Link != nil:
			lines = append(lines, Line{Text: b.Link.Before + b.Link.Label + " (" + b.Link.URL + ")" + b.Link.After})
		}
	}
	return lines
}

// Line is one logical line of terminal copy.
type Line struct {
	Text    string
	Heading bool
	Warning bool
}

// String joins the document's plain lines.
func (d Document) String() string {
	lines := d.PlainText()
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return strings.Join(out, "\n")
}
