package lexicon

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

// Provider is implemented by Wordnik and Cached.
type Provider interface {
	Definition(ctx context.Context, word string) (string, error)
	Example(ctx context.Context, word string) (string, error)
}

// Cache is the key/value store used to remember lookups.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
}

// Cached remembers non-empty lookups of an underlying provider.
// Cache failures are logged and otherwise ignored.
type Cached struct {
	next  Provider
	cache Cache
}

// NewCached wraps next with cache.
func NewCached(next Provider, cache Cache) *Cached {
	return &Cached{next: next, cache: cache}
}

// Definition implements Provider.
func (c *Cached) Definition(ctx context.Context, word string) (string, error) {
	return c.lookup(ctx, "definition", word, c.next.Definition)
}

// Example implements Provider.
func (c *Cached) Example(ctx context.Context, word string) (string, error) {
	return c.lookup(ctx, "example", word, c.next.Example)
}

func (c *Cached) lookup(ctx context.Context, kind, word string, fetch func(context.Context, string) (string, error)) (string, error) {
	key := kind + ":" + strings.ToLower(word)
	if v, ok, err := c.cache.Get(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("lexicon cache get")
	} else if ok {
		return v, nil
	}

	v, err := fetch(ctx, word)
	if err != nil || v == "" {
		return v, err
	}
	if err := c.cache.Put(ctx, key, v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("lexicon cache put")
	}
	return v, nil
}
