package words

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// ErrUnparseable is returned when a word service answers with something
// that is not a single word.
var ErrUnparseable = errors.New("words: unparseable payload")

const maxPayload = 4 << 10

// Remote fetches random words from an HTTP word service.
//
// The service is called as GET <baseURL>?<lengthParam>=<n> and may answer
// with a bare word, a JSON string, or a JSON array whose first element is
// the word.
type Remote struct {
	client      *http.Client
	baseURL     string
	lengthParam string
}

// NewRemote builds a Remote client with the given request timeout.
func NewRemote(baseURL, lengthParam string, timeout time.Duration) *Remote {
	if lengthParam == "" {
		lengthParam = "length"
	}
	return &Remote{
		client:      &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		lengthParam: lengthParam,
	}
}

// RandomWord asks the service for a word of the given length.
func (r *Remote) RandomWord(ctx context.Context, length int) (string, error) {
	u, err := url.Parse(r.baseURL)
	if err != nil {
		return "", fmt.Errorf("word service url: %w", err)
	}
	q := u.Query()
	q.Set(r.lengthParam, strconv.Itoa(length))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	res, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("word service: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("word service: status %d", res.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(res.Body, maxPayload))
	if err != nil {
		return "", fmt.Errorf("word service: read body: %w", err)
	}
	word, err := parseWord(body)
	if err != nil {
		return "", err
	}
	log.Debug().Int("length", length).Str("word", word).Msg("remote word")
	return word, nil
}

// parseWord extracts a lowercase word from a word-service payload.
func parseWord(body []byte) (string, error) {
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrUnparseable)
	}
	if gjson.Valid(raw) {
		res := gjson.Parse(raw)
		switch {
		case res.IsArray():
			res = res.Get("0")
			if res.Type != gjson.String {
				return "", fmt.Errorf("%w: %.40q", ErrUnparseable, raw)
			}
		case res.Type != gjson.String:
			return "", fmt.Errorf("%w: %.40q", ErrUnparseable, raw)
		}
		raw = res.String()
	}
	w := strings.ToLower(strings.TrimSpace(raw))
	if w == "" || !isAlpha(w) {
		return "", fmt.Errorf("%w: %.40q", ErrUnparseable, raw)
	}
	return w, nil
}
