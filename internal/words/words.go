// internal/words/words.go
//
// Local word provider backed by a word list.
//
// Responsibilities:
//   - Load the bundled list (assets/words.txt) or a file named by WORDS_FILE.
//   - Index words by length for quick random picks.
//   - Supply RandomWord for the dispatcher, and Stats for diagnostics.
//
// Constraints:
//   • Words must be alphabetic (a–z) and are normalised to lowercase.
//   • Picks use crypto/rand, like the rest of the server.

package words

import (
	"bufio"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/spellingbee/assets"
)

// ErrNoWord is returned when no word of the requested length exists.
var ErrNoWord = errors.New("words: no word of requested length")

// List is an in-memory word provider. It is read-only after construction.
type List struct {
	byLength map[int][]string
	total    int
}

// NewList builds a provider from the given words, skipping invalid entries.
func NewList(ws []string) *List {
	l := &List{byLength: make(map[int][]string)}
	for _, w := range ws {
		w = strings.TrimSpace(strings.ToLower(w))
		if w == "" || !isAlpha(w) {
			continue
		}
		l.byLength[len(w)] = append(l.byLength[len(w)], w)
		l.total++
	}
	return l
}

// Load reads the list from path, or from the bundled assets if path is empty.
func Load(path string) (*List, error) {
	var ws []string
	var err error
	if path == "" {
		ws, err = assets.WordList()
	} else {
		ws, err = readWordFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load word list: %w", err)
	}
	l := NewList(ws)
	if l.total == 0 {
		return nil, errors.New("words: word list is empty")
	}
	return l, nil
}

// RandomWord returns a cryptographically random word of the given length.
func (l *List) RandomWord(ctx context.Context, length int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	pool := l.byLength[length]
	if len(pool) == 0 {
		return "", fmt.Errorf("%w: %d", ErrNoWord, length)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
	if err != nil {
		return "", err
	}
	return pool[n.Int64()], nil
}

// Stats returns the number of loaded words and the number per length.
func (l *List) Stats() (total int, perLength map[int]int) {
	perLength = make(map[int]int, len(l.byLength))
	for n, ws := range l.byLength {
		perLength[n] = len(ws)
	}
	return l.total, perLength
}

// Uncovered returns the lengths from want that have no word in the list.
func (l *List) Uncovered(want []int) []int {
	var missing []int
	for _, n := range want {
		if len(l.byLength[n]) == 0 {
			missing = append(missing, n)
		}
	}
	return missing
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
