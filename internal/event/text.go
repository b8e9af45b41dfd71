package event

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockElements end a line of text when reducing HTML to plain text
const blockElements = "p, div, li, br, h1, h2, h3, h4, h5, h6, tr"

// PlainText reduces an HTML fragment to readable plain text, one line per
// block element, with runs of whitespace collapsed.
func PlainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	doc.Find("script, style").Remove()
	doc.Find(blockElements).Each(func(i int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})

	lines := strings.Split(doc.Text(), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n"), nil
}
