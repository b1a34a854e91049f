// internal/lexicon/wordnik.go
//
// Wordnik-compatible definition and example lookups.
// Endpoints used:
//   - GET {base}/word.json/{word}/definitions → JSON array of {text, ...}
//   - GET {base}/word.json/{word}/examples    → {"examples":[{text, ...}]}
//
// An empty array/object, or a 404, means "nothing available" and is not an
// error. A body that is not JSON of the expected shape is ErrUnparseable.

package lexicon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// ErrUnparseable is returned for payloads that are not JSON of the expected shape.
var ErrUnparseable = errors.New("lexicon: unparseable payload")

const maxPayload = 256 << 10

var markup = regexp.MustCompile(`<[^>]*>`)

// Wordnik queries a Wordnik-style REST API.
type Wordnik struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewWordnik builds a client for baseURL (e.g. https://api.wordnik.com/v4).
func NewWordnik(baseURL, apiKey string, timeout time.Duration) *Wordnik {
	return &Wordnik{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// Definition returns the first non-empty definition of word.
func (w *Wordnik) Definition(ctx context.Context, word string) (string, error) {
	body, err := w.get(ctx, word, "definitions", "3")
	if err != nil || body == nil {
		return "", err
	}
	res := gjson.ParseBytes(body)
	if !res.IsArray() {
		return "", fmt.Errorf("%w: definitions for %q", ErrUnparseable, word)
	}
	for _, d := range res.Array() {
		if t := clean(d.Get("text").String()); t != "" {
			return t, nil
		}
	}
	return "", nil
}

// Example returns the first example sentence using word.
func (w *Wordnik) Example(ctx context.Context, word string) (string, error) {
	body, err := w.get(ctx, word, "examples", "1")
	if err != nil || body == nil {
		return "", err
	}
	res := gjson.ParseBytes(body)
	if !res.IsObject() {
		return "", fmt.Errorf("%w: examples for %q", ErrUnparseable, word)
	}
	for _, e := range res.Get("examples").Array() {
		if t := clean(e.Get("text").String()); t != "" {
			return t, nil
		}
	}
	return "", nil
}

// get fetches a word sub-resource. A nil body with nil error means 404.
func (w *Wordnik) get(ctx context.Context, word, resource, limit string) ([]byte, error) {
	u := fmt.Sprintf("%s/word.json/%s/%s", w.baseURL, url.PathEscape(strings.ToLower(word)), resource)
	q := url.Values{}
	q.Set("limit", limit)
	if w.apiKey != "" {
		q.Set("api_key", w.apiKey)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	res, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", resource, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, nil
	case res.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("lexicon %s: status %d", resource, res.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(res.Body, maxPayload))
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: read body: %w", resource, err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: %s for %q", ErrUnparseable, resource, word)
	}
	return body, nil
}

// clean strips inline markup and collapses whitespace.
func clean(s string) string {
	return strings.Join(strings.Fields(markup.ReplaceAllString(s, "")), " ")
}
