package metrics

import (
	"context"
	"time"

	"github.com/robalobadob/spellingbee/internal/game"
)

// observe records one provider call.
func (m *Metrics) observe(provider string, start time.Time, text string, err error) {
	status := "ok"
	switch {
	case err != nil:
		status = "error"
	case text == "":
		status = "empty"
	}
	m.ProviderRequestsTotal.WithLabelValues(provider, status).Inc()
	m.ProviderRequestDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
}

type words struct {
	next game.WordProvider
	m    *Metrics
}

// Words wraps a word provider so every call is counted and timed.
func (m *Metrics) Words(next game.WordProvider) game.WordProvider {
	return &words{next: next, m: m}
}

func (w *words) RandomWord(ctx context.Context, length int) (string, error) {
	start := time.Now()
	word, err := w.next.RandomWord(ctx, length)
	w.m.observe("word", start, word, err)
	return word, err
}

type lexicon struct {
	next game.LexiconProvider
	m    *Metrics
}

// Lexicon wraps a lexicon provider so every call is counted and timed.
func (m *Metrics) Lexicon(next game.LexiconProvider) game.LexiconProvider {
	return &lexicon{next: next, m: m}
}

func (l *lexicon) Definition(ctx context.Context, word string) (string, error) {
	start := time.Now()
	text, err := l.next.Definition(ctx, word)
	l.m.observe("definition", start, text, err)
	return text, err
}

func (l *lexicon) Example(ctx context.Context, word string) (string, error) {
	start := time.Now()
	text, err := l.next.Example(ctx, word)
	l.m.observe("example", start, text, err)
	return text, err
}
