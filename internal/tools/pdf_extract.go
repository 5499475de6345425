package tools

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	pdfx "github.com/ledongthuc/pdf"
)

// PDFExtractTool pulls plain text out of an uploaded PDF so documents can be
// summarized and analyzed.
// Inputs:
// - data_base64: string (required; raw base64 or data: URI)
// - pages: string (optional; e.g. "1-3,7", default all)
// - max_bytes: number (optional; default PDF_MAX_BYTES or 20 MiB)
// - max_pages: number (optional; default PDF_MAX_PAGES or 20)
// Output: extracted text; logs carry page and byte counts.
type PDFExtractTool struct{}

func (t *PDFExtractTool) Name() string { return "pdf_extract" }

func (t *PDFExtractTool) Execute(ctx context.Context, inputs map[string]any) (any, string, error) {
	dataB64 := getString(inputs, "data_base64")
	if dataB64 == "" {
		return nil, "", fmt.Errorf("missing data_base64")
	}
	maxBytes := getInt(inputs, "max_bytes", envInt("PDF_MAX_BYTES", 20*1024*1024))
	maxPages := getInt(inputs, "max_pages", envInt("PDF_MAX_PAGES", 20))

	// Allow data: URIs.
	if i := strings.Index(dataB64, ","); i != -1 {
		dataB64 = dataB64[i+1:]
	}
	buf, err := base64.StdEncoding.DecodeString(dataB64)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64: %w", err)
	}
	if len(buf) > maxBytes {
		return nil, "", fmt.Errorf("pdf too large: %d bytes > limit %d", len(buf), maxBytes)
	}

	reader, err := pdfx.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return nil, "", fmt.Errorf("open pdf: %w", err)
	}
	totalPages := reader.NumPage()

	selected := expandPages(getString(inputs, "pages"), totalPages)
	if len(selected) == 0 {
		for i := 1; i <= totalPages; i++ {
			selected = append(selected, i)
		}
	}
	if len(selected) > maxPages {
		selected = selected[:maxPages]
	}

	var out strings.Builder
	for _, pageNum := range selected {
		select {
		case <-ctx.Done():
			return nil, "", ctx.Err()
		default:
		}
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			out.WriteString(text)
			out.WriteString("\n\n")
		}
	}
	logs := fmt.Sprintf("pages=%d/%d bytes=%d", len(selected), totalPages, len(buf))
	return strings.TrimSpace(out.String()), logs, nil
}

// expandPages parses a "1-3,7" style page spec against the page count,
// deduplicated, in spec order.
func expandPages(spec string, total int) []int {
	var out []int
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return out
	}
	seen := map[int]struct{}{}
	add := func(n int) {
		if n >= 1 && n <= total {
			if _, ok := seen[n]; !ok {
				out = append(out, n)
				seen[n] = struct{}{}
			}
		}
	}
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.Contains(part, "-") {
			rng := strings.SplitN(part, "-", 2)
			a, _ := strconv.Atoi(strings.TrimSpace(rng[0]))
			b, _ := strconv.Atoi(strings.TrimSpace(rng[1]))
			if a > b {
				a, b = b, a
			}
			for i := a; i <= b; i++ {
				add(i)
			}
		} else {
			n, _ := strconv.Atoi(part)
			add(n)
		}
	}
	return out
}
