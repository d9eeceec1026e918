package normalize

import (
	"strings"

	"golang.org/x/net/html"
)

// Flatten reduces an HTML fragment to its visible text. Script and style
// subtrees are dropped entirely, remaining tags are stripped with text nodes
// concatenated in document order, and whitespace runs collapse to a single
// space. It never fails: malformed markup is tolerated by the parser, and the
// worst case is an empty string.
func Flatten(fragment string) string {
	node, err := html.Parse(strings.NewReader(fragment))
	if err != nil || node == nil {
		return ""
	}
	var b strings.Builder
	collectText(&b, node)
	return collapseSpaces(b.String())
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style":
			return
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}

// collapseSpaces folds any run of whitespace (spaces, tabs, newlines) into a
// single space and trims the ends.
func collapseSpaces(s string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimRight(b.String(), " ")
}
