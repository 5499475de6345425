package tools

import (
	"context"
	"strings"
	"testing"
)

func TestHTMLToTextStripsMarkup(t *testing.T) {
	in := `<html><head><style>p{color:red}</style><script>alert(1)</script></head>` +
		`<body><h1>Launch Day</h1><p>Rockets   launched  today.</p><p>Crews cheered.</p></body></html>`
	out, logs, err := (&HTMLToTextTool{}).Execute(context.Background(), map[string]any{"html": in})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	text := out.(string)
	if strings.Contains(text, "alert") || strings.Contains(text, "color:red") {
		t.Fatalf("script/style leaked into text: %q", text)
	}
	want := "Launch Day\nRockets launched today.\nCrews cheered."
	if text != want {
		t.Fatalf("text=%q, want %q", text, want)
	}
	if !strings.HasPrefix(logs, "chars=") {
		t.Fatalf("logs=%q", logs)
	}
}

func TestHTMLToTextEmptyInput(t *testing.T) {
	out, _, err := (&HTMLToTextTool{}).Execute(context.Background(), map[string]any{"html": "   "})
	if err != nil || out.(string) != "" {
		t.Fatalf("got (%v, %v), want empty string", out, err)
	}
}

func TestExtractLinksResolvesRelative(t *testing.T) {
	in := `<a href="/docs">Docs</a> <a href="https://example.org/x">Ext</a> <a>no href</a>`
	out, _, err := (&ExtractLinksTool{}).Execute(context.Background(), map[string]any{
		"html":     in,
		"base_url": "https://example.com",
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	links := out.([]map[string]string)
	if len(links) != 2 {
		t.Fatalf("got %d links, want 2: %v", len(links), links)
	}
	if links[0]["href"] != "https://example.com/docs" || links[0]["text"] != "Docs" {
		t.Fatalf("unexpected first link: %v", links[0])
	}
}

func TestExtractLinksHonorsMax(t *testing.T) {
	in := strings.Repeat(`<a href="https://example.com/a">a</a>`, 10)
	out, _, err := (&ExtractLinksTool{}).Execute(context.Background(), map[string]any{
		"html": in,
		"max":  float64(4),
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if links := out.([]map[string]string); len(links) != 4 {
		t.Fatalf("got %d links, want 4", len(links))
	}
}

func TestExpandPages(t *testing.T) {
	got := expandPages("1-3,7,2", 10)
	want := []int{1, 2, 3, 7}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if out := expandPages("8-12", 10); len(out) != 3 {
		t.Fatalf("out-of-range pages not clipped: %v", out)
	}
	if out := expandPages("", 10); out != nil {
		t.Fatalf("empty spec should yield nil, got %v", out)
	}
}

func TestRegistryNames(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&HTMLToTextTool{})
	reg.Register(&FetchURLTool{})
	names := reg.Names()
	if len(names) != 2 || names[0] != "fetch_url" || names[1] != "html_to_text" {
		t.Fatalf("Names()=%v", names)
	}
	if _, ok := reg.Get("html_to_text"); !ok {
		t.Fatal("registered tool not found")
	}
	if _, ok := reg.Get("missing"); ok {
		t.Fatal("unregistered tool found")
	}
}
