package renderer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/eringen/portfolio/content"
)

// Fetcher retrieves the content document for a page session.
type Fetcher interface {
	Fetch(ctx context.Context) (content.Document, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context) (content.Document, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context) (content.Document, error) {
	return f(ctx)
}

// maxBodySize bounds how much of a content response is read.
const maxBodySize = 1 << 20

// HTTPFetcher requests the content document from a provider URL.
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

// NewHTTPFetcher returns a fetcher for url. A nil client gets a 10s timeout.
func NewHTTPFetcher(url string, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPFetcher{URL: url, Client: client}
}

// Fetch implements Fetcher. Transport failures yield *NetworkError, while
// non-2xx statuses and undecodable bodies yield *BadResponseError.
func (f *HTTPFetcher) Fetch(ctx context.Context) (content.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return content.Document{}, &NetworkError{URL: f.URL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return content.Document{}, &NetworkError{URL: f.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return content.Document{}, &BadResponseError{StatusCode: resp.StatusCode}
	}

	var doc content.Document
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&doc); err != nil {
		return content.Document{}, &BadResponseError{StatusCode: resp.StatusCode, Err: err}
	}
	return doc, nil
}

// SourceFetcher reads the document straight from an in-process source.
// Source failures surface as a 500 BadResponseError, which is what the
// provider endpoint would answer for the same fault.
type SourceFetcher struct {
	Source content.Source
}

// Fetch implements Fetcher.
func (f SourceFetcher) Fetch(ctx context.Context) (content.Document, error) {
	doc, err := f.Source.Content(ctx)
	if err != nil {
		return content.Document{}, &BadResponseError{StatusCode: http.StatusInternalServerError, Err: err}
	}
	return doc, nil
}
