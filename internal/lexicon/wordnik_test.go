package lexicon

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWordnikServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("api_key"))
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if body == "500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestWordnikDefinition(t *testing.T) {
	srv := newWordnikServer(t, map[string]string{
		"/word.json/cat/definitions":  `[{"text":""},{"text":"A small <xref>carnivorous</xref>   mammal."}]`,
		"/word.json/void/definitions": `[]`,
		"/word.json/junk/definitions": `not json`,
		"/word.json/obj/definitions":  `{"text":"x"}`,
		"/word.json/err/definitions":  `500`,
	})
	w := NewWordnik(srv.URL+"/", "secret", time.Second)
	ctx := context.Background()

	got, err := w.Definition(ctx, "Cat")
	require.NoError(t, err)
	assert.Equal(t, "A small carnivorous mammal.", got)

	got, err = w.Definition(ctx, "void")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = w.Definition(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = w.Definition(ctx, "junk")
	assert.ErrorIs(t, err, ErrUnparseable)

	_, err = w.Definition(ctx, "obj")
	assert.ErrorIs(t, err, ErrUnparseable)

	_, err = w.Definition(ctx, "err")
	assert.ErrorContains(t, err, "status 500")
}

func TestWordnikExample(t *testing.T) {
	srv := newWordnikServer(t, map[string]string{
		"/word.json/cat/examples":  `{"examples":[{"text":"The cat sat on the mat."}]}`,
		"/word.json/void/examples": `{}`,
		"/word.json/arr/examples":  `[1,2]`,
	})
	w := NewWordnik(srv.URL, "secret", time.Second)
	ctx := context.Background()

	got, err := w.Example(ctx, "cat")
	require.NoError(t, err)
	assert.Equal(t, "The cat sat on the mat.", got)

	got, err = w.Example(ctx, "void")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = w.Example(ctx, "arr")
	assert.ErrorIs(t, err, ErrUnparseable)
}

type mockProvider struct{ mock.Mock }

func (m *mockProvider) Definition(ctx context.Context, word string) (string, error) {
	args := m.Called(ctx, word)
	return args.String(0), args.Error(1)
}

func (m *mockProvider) Example(ctx context.Context, word string) (string, error) {
	args := m.Called(ctx, word)
	return args.String(0), args.Error(1)
}

type mapCache struct {
	data   map[string]string
	getErr error
}

func (c *mapCache) Get(_ context.Context, key string) (string, bool, error) {
	if c.getErr != nil {
		return "", false, c.getErr
	}
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *mapCache) Put(_ context.Context, key, value string) error {
	c.data[key] = value
	return nil
}

func TestCachedStoresOnlyHits(t *testing.T) {
	next := &mockProvider{}
	next.On("Definition", mock.Anything, "Cat").Return("a feline", nil).Once()
	next.On("Example", mock.Anything, "cat").Return("", nil).Twice()
	cache := &mapCache{data: map[string]string{}}
	c := NewCached(next, cache)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		got, err := c.Definition(ctx, "Cat")
		require.NoError(t, err)
		assert.Equal(t, "a feline", got)
	}
	assert.Equal(t, "a feline", cache.data["definition:cat"])

	for i := 0; i < 2; i++ {
		got, err := c.Example(ctx, "cat")
		require.NoError(t, err)
		assert.Empty(t, got)
	}
	assert.NotContains(t, cache.data, "example:cat")

	next.AssertExpectations(t)
}

func TestCachedPassesThroughErrors(t *testing.T) {
	next := &mockProvider{}
	next.On("Definition", mock.Anything, "cat").Return("", ErrUnparseable)
	c := NewCached(next, &mapCache{data: map[string]string{}, getErr: errors.New("disk gone")})

	_, err := c.Definition(context.Background(), "cat")
	assert.ErrorIs(t, err, ErrUnparseable)
}
