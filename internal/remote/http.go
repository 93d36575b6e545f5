package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ruminaider/quotesync/internal/quote"
)

const (
	// DefaultTimeout bounds every remote call.
	DefaultTimeout = 10 * time.Second
	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 1 << 20
)

// HTTPTransport implements Transport over plain HTTP requests.
type HTTPTransport struct {
	readURL  string
	writeURL string
	timeout  time.Duration
	client   *http.Client
}

// HTTPOption configures an HTTPTransport.
type HTTPOption func(*HTTPTransport)

// WithTimeout sets the per-call timeout. Non-positive values keep the default.
func WithTimeout(d time.Duration) HTTPOption {
	return func(t *HTTPTransport) {
		if d > 0 {
			t.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(t *HTTPTransport) { t.client = c }
}

// NewHTTPTransport returns a transport that GETs records from readURL and
// POSTs the collection to writeURL.
func NewHTTPTransport(readURL, writeURL string, opts ...HTTPOption) *HTTPTransport {
	t := &HTTPTransport{
		readURL:  readURL,
		writeURL: writeURL,
		timeout:  DefaultTimeout,
		client:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Read fetches at most limit records. The limit is passed as the _limit query
// parameter and enforced again on the decoded result.
func (t *HTTPTransport) Read(ctx context.Context, limit int) ([]Record, error) {
	target, err := withLimit(t.readURL, limit)
	if err != nil {
		return nil, &TransportError{Op: "read", URL: t.readURL, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &TransportError{Op: "read", URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "read", URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, &TransportError{Op: "read", URL: target, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &TransportError{Op: "read", URL: target, Err: err}
	}

	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &quote.FormatError{Index: -1, Reason: "remote payload is not a list of records", Err: err}
	}
	if records == nil {
		return nil, &quote.FormatError{Index: -1, Reason: "remote payload is not a list of records"}
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Write posts the full collection. Only the response status is inspected.
func (t *HTTPTransport) Write(ctx context.Context, quotes []quote.Quote) error {
	var buf bytes.Buffer
	if quotes == nil {
		quotes = []quote.Quote{}
	}
	if err := json.NewEncoder(&buf).Encode(quotes); err != nil {
		return fmt.Errorf("encoding quotes: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.writeURL, &buf)
	if err != nil {
		return &TransportError{Op: "write", URL: t.writeURL, Err: err}
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	resp, err := t.client.Do(req)
	if err != nil {
		return &TransportError{Op: "write", URL: t.writeURL, Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Op: "write", URL: t.writeURL, StatusCode: resp.StatusCode}
	}
	return nil
}

func withLimit(raw string, limit int) (string, error) {
	if raw == "" {
		return "", errors.New("no URL configured")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if limit > 0 {
		q := u.Query()
		q.Set("_limit", strconv.Itoa(limit))
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
