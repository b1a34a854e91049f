// assets/embed.go
//
// Bundled data shipped inside the binary.
//   - words.txt: the default spelling list, one word per line.

package assets

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
)

// FS holds the embedded asset files.
//
//go:embed words.txt
var FS embed.FS

// WordList returns the bundled spelling words, lowercased.
// Blank lines and lines starting with '#' are skipped.
func WordList() ([]string, error) {
	return wordLines("words.txt")
}

// wordLines reads one entry per line from an embedded file.
func wordLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open embedded %s: %w", name, err)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		words = append(words, strings.ToLower(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read embedded %s: %w", name, err)
	}
	return words, nil
}
