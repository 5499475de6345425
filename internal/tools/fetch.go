package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FetchURLTool performs a bounded GET so remote pages can feed the analysis
// pipeline.
// Inputs:
// - url: string (required)
// - max_bytes: number (optional; default FETCH_MAX_BYTES or 2 MiB)
// Output: response body as a string; logs carry status and truncation.
type FetchURLTool struct{}

func (t *FetchURLTool) Name() string { return "fetch_url" }

func (t *FetchURLTool) Execute(ctx context.Context, inputs map[string]any) (any, string, error) {
	url := getString(inputs, "url")
	if url == "" {
		return nil, "", fmt.Errorf("missing url")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("User-Agent", "raiden-alpha/1.0")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	max := getInt(inputs, "max_bytes", envInt("FETCH_MAX_BYTES", 2<<20))
	lr := io.LimitedReader{R: resp.Body, N: int64(max)}
	body, err := io.ReadAll(&lr)
	if err != nil {
		return nil, "", err
	}
	logs := fmt.Sprintf("status=%d bytes=%d", resp.StatusCode, len(body))
	if lr.N == 0 {
		logs += " truncated=true"
	}
	return string(body), logs, nil
}
