package metrics

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedWords struct {
	word string
	err  error
}

func (f fixedWords) RandomWord(context.Context, int) (string, error) { return f.word, f.err }

type fixedLexicon struct{ text string }

func (f fixedLexicon) Definition(context.Context, string) (string, error) { return f.text, nil }
func (f fixedLexicon) Example(context.Context, string) (string, error)    { return "", nil }

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()

	assert.NotNil(t, m.TurnsTotal)
	assert.NotNil(t, m.FailuresTotal)
	assert.NotNil(t, m.ProviderRequestsTotal)
	assert.NotNil(t, m.ProviderRequestDuration)
	assert.NotNil(t, m.Registry())
}

func TestRecordTurnAndFailure(t *testing.T) {
	m := NewMetrics()

	m.RecordTurn("correct")
	m.RecordTurn("correct")
	m.RecordFailure("unknown_intent")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.TurnsTotal.WithLabelValues("correct")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FailuresTotal.WithLabelValues("unknown_intent")))
}

func TestProviderWrappers(t *testing.T) {
	m := NewMetrics()
	ctx := context.Background()

	w, err := m.Words(fixedWords{word: "cat"}).RandomWord(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "cat", w)

	_, err = m.Words(fixedWords{err: errors.New("down")}).RandomWord(ctx, 3)
	assert.Error(t, err)

	lex := m.Lexicon(fixedLexicon{text: "a feline"})
	d, _ := lex.Definition(ctx, "cat")
	assert.Equal(t, "a feline", d)
	_, _ = lex.Example(ctx, "cat")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProviderRequestsTotal.WithLabelValues("word", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProviderRequestsTotal.WithLabelValues("word", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProviderRequestsTotal.WithLabelValues("definition", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProviderRequestsTotal.WithLabelValues("example", "empty")))
}

func TestHandlerServesMetrics(t *testing.T) {
	m := NewMetrics()
	m.RecordTurn("welcome")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `skill_turns_total{action="welcome"} 1`)
}
