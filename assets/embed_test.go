package assets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordList(t *testing.T) {
	words, err := WordList()
	require.NoError(t, err)
	require.NotEmpty(t, words)

	for _, w := range words {
		assert.NotEmpty(t, w)
		assert.False(t, strings.HasPrefix(w, "#"), w)
		assert.Equal(t, strings.ToLower(w), w)
	}
}
