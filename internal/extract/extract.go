// Package extract pulls analyzable text out of saved page snapshots.
// Social platforms put the interesting parts of a post (caption, author,
// description) into Open Graph metadata, so the extractor reads meta tags
// first and falls back to visible body text.
package extract

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Document is the simplified representation of a snapshot: the page title,
// the best available description (Open Graph preferred), and the visible
// text with boilerplate removed.
type Document struct {
	Title       string
	Description string
	Text        string
}

// FromHTML extracts a Document from raw HTML. Malformed markup degrades to
// whatever could be parsed; the result is never an error. All fields are
// NFC-normalized so downstream keyword matching sees one representation
// per character.
func FromHTML(input []byte) Document {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return Document{}
	}

	doc := Document{
		Title:       strings.TrimSpace(findTitle(node)),
		Description: strings.TrimSpace(findDescription(node)),
	}

	// Prefer semantic content containers over the whole body.
	content := findFirst(node, "main")
	if content == nil {
		content = findFirst(node, "article")
	}
	if content == nil {
		content = findFirst(node, "body")
	}
	var b strings.Builder
	if content != nil {
		collectText(&b, content)
	}
	doc.Text = normalizeWhitespace(b.String())

	doc.Title = norm.NFC.String(doc.Title)
	doc.Description = norm.NFC.String(doc.Description)
	doc.Text = norm.NFC.String(doc.Text)
	return doc
}

// findTitle prefers the og:title meta property and falls back to <title>.
func findTitle(n *html.Node) string {
	if og := metaContent(n, "og:title"); og != "" {
		return og
	}
	head := findFirst(n, "head")
	if head == nil {
		return ""
	}
	t := findFirst(head, "title")
	if t == nil || t.FirstChild == nil {
		return ""
	}
	return t.FirstChild.Data
}

// findDescription prefers og:description, then the plain description meta.
func findDescription(n *html.Node) string {
	if og := metaContent(n, "og:description"); og != "" {
		return og
	}
	return metaContent(n, "description")
}

// metaContent returns the content attribute of the first meta tag whose
// property or name matches key.
func metaContent(n *html.Node, key string) string {
	var res string
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != "" {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, "meta") {
			var matched bool
			var content string
			for _, attr := range cur.Attr {
				k := strings.ToLower(attr.Key)
				if (k == "property" || k == "name") && strings.EqualFold(attr.Val, key) {
					matched = true
				}
				if k == "content" {
					content = attr.Val
				}
			}
			if matched && strings.TrimSpace(content) != "" {
				res = content
				return
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != "" {
				return
			}
		}
	}
	dfs(n)
	return res
}

func findFirst(n *html.Node, tag string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

// collectText walks the content tree appending visible text, separating
// block elements with newlines and skipping chrome like nav and footer.
func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "nav", "header", "footer", "aside", "iframe", "form":
			return
		case "br", "hr":
			b.WriteString("\n")
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "ul", "ol", "blockquote":
			b.WriteString("\n")
		}
	}

	if n.Type == html.TextNode {
		data := strings.ReplaceAll(n.Data, "\t", " ")
		data = strings.ReplaceAll(data, "\r", " ")
		b.WriteString(data)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}

	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote":
			b.WriteString("\n\n")
		case "li":
			b.WriteString("\n")
		}
	}
}

// normalizeWhitespace collapses space runs within lines and squeezes
// consecutive blank lines down to one.
func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(out) > 0 && out[len(out)-1] == "" {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, strings.Join(strings.Fields(trimmed), " "))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	return strings.Join(out, "\n")
}
