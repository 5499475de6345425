package tools

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// HTMLToTextTool strips markup from an HTML document so the plain text can
// be handed to text_analysis.
// Inputs:
// - html: string (required)
// Output: whitespace-compacted text.
type HTMLToTextTool struct{}

func (t *HTMLToTextTool) Name() string { return "html_to_text" }

func (t *HTMLToTextTool) Execute(ctx context.Context, inputs map[string]any) (any, string, error) {
	htmlStr, _ := inputs["html"].(string)
	if strings.TrimSpace(htmlStr) == "" {
		return "", "", nil
	}
	root, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return nil, "", err
	}
	var b strings.Builder
	collectText(root, &b, false)
	out := strings.TrimSpace(compactWhitespace(b.String()))
	return out, fmt.Sprintf("chars=%d", len(out)), nil
}

func collectText(n *html.Node, b *strings.Builder, hidden bool) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "template":
			hidden = true
		case "br", "p", "div", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
		}
	}
	if !hidden && n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b, hidden)
	}
}

func compactWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
