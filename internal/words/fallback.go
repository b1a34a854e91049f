package words

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// Provider is the shape shared by every word source in this package.
type Provider interface {
	RandomWord(ctx context.Context, length int) (string, error)
}

// Fallback tries each provider in order and returns the first word found.
type Fallback []Provider

// RandomWord implements Provider.
func (f Fallback) RandomWord(ctx context.Context, length int) (string, error) {
	var errs []error
	for i, p := range f {
		w, err := p.RandomWord(ctx, length)
		if err == nil && w != "" {
			return w, nil
		}
		if err == nil {
			err = ErrNoWord
		}
		log.Warn().Err(err).Int("provider", i).Int("length", length).Msg("word provider failed, trying next")
		errs = append(errs, err)
		if ctx.Err() != nil {
			break
		}
	}
	if len(errs) == 0 {
		return "", ErrNoWord
	}
	return "", errors.Join(errs...)
}
