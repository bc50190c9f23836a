package tool

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// skipElements are subtrees that never contribute visible text.
var skipElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"head":     true,
}

// ExtractText parses HTML and returns its visible text: text nodes joined
// with single spaces, NFC-normalized, whitespace collapsed, trimmed, with all
// runes in Unicode category So removed. The So strip is the emoji heuristic;
// it knowingly also drops some legitimate symbol characters (certain currency
// and math marks). Callers depend on that output, so it stays.
//
// Malformed HTML degrades to partial or empty text; this never fails.
// Idempotent on already-extracted text.
func ExtractText(htmlSrc string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlSrc))
	if err != nil {
		return ""
	}

	var b strings.Builder
	for _, root := range doc.Selection.Nodes {
		collectText(root, &b)
	}
	return normalizeText(b.String())
}

// collectText appends every visible text node under n, separated by spaces.
func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
		return
	}
	if n.Type == html.ElementNode && skipElements[n.Data] {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// normalizeText applies NFC normalization, strips So-category runes, and
// collapses whitespace runs to single spaces.
func normalizeText(s string) string {
	s = norm.NFC.String(s)
	s = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.So, r) {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// TruncateWords keeps the first limit whitespace-delimited tokens of text,
// rejoined with single spaces. No truncation marker is added. A limit <= 0
// returns the text unchanged. Idempotent.
func TruncateWords(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) <= limit {
		return text
	}
	return strings.Join(words[:limit], " ")
}

// Excerpt returns the first n runes of text, appending "..." only when the
// text was actually cut. Unlike TruncateWords, excerpt truncation is marked.
func Excerpt(text string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}
