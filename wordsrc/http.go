package wordsrc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultHTTPTimeout = 30 * time.Second

// HTTP fetches a line-delimited word list.
type HTTP struct {
	URL    string
	Client *http.Client
	// Sorted sorts the list after download.
	Sorted bool
}

// Words
func (h *HTTP) Words(ctx context.Context) ([]string, error) {
	client := h.Client
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, h.URL)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: %s: %s", ErrStatus, h.URL, resp.Status)
	}

	var body io.Reader = resp.Body
	if strings.HasSuffix(req.URL.Path, zstdExt) {
		dec, err := decompressReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		body = dec
	}

	words, err := readLines(ctx, body)
	if err != nil {
		return nil, err
	}
	if h.Sorted {
		words = sorted(words)
	}
	return words, nil
}
