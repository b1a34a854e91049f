package game

import (
	"fmt"
	"sort"
	"strings"
)

// Difficulty is a named tier controlling word length and points.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
	Unfair Difficulty = "unfair"
)

// Level is the configuration of one difficulty.
type Level struct {
	MinLength int
	MaxLength int
	Points    int
}

// Table is the immutable difficulty configuration handed to a Dispatcher.
type Table struct {
	levels map[Difficulty]Level
	order  []Difficulty
}

// DefaultTable returns the standard easy/medium/hard/unfair table.
func DefaultTable() Table {
	t, _ := NewTable(
		[]Difficulty{Easy, Medium, Hard, Unfair},
		[]Level{
			{MinLength: 3, MaxLength: 5, Points: 2},
			{MinLength: 6, MaxLength: 9, Points: 6},
			{MinLength: 10, MaxLength: 14, Points: 10},
			{MinLength: 15, MaxLength: 20, Points: 15},
		},
	)
	return t
}

// NewTable builds a table from parallel slices of names and levels.
func NewTable(names []Difficulty, levels []Level) (Table, error) {
	if len(names) != len(levels) {
		return Table{}, fmt.Errorf("difficulty table: %d names for %d levels", len(names), len(levels))
	}
	t := Table{levels: make(map[Difficulty]Level, len(names))}
	for i, n := range names {
		l := levels[i]
		if n == "" {
			return Table{}, fmt.Errorf("difficulty table: empty name at %d", i)
		}
		if _, dup := t.levels[n]; dup {
			return Table{}, fmt.Errorf("difficulty table: duplicate %q", n)
		}
		if l.MinLength < 1 || l.MaxLength < l.MinLength {
			return Table{}, fmt.Errorf("difficulty table: bad range %d-%d for %q", l.MinLength, l.MaxLength, n)
		}
		if l.Points < 0 {
			return Table{}, fmt.Errorf("difficulty table: negative points for %q", n)
		}
		t.levels[n] = l
		t.order = append(t.order, n)
	}
	return t, nil
}

// Lookup returns the level for d.
func (t Table) Lookup(d Difficulty) (Level, bool) {
	l, ok := t.levels[d]
	return l, ok
}

// Names lists the difficulties in table order.
func (t Table) Names() []Difficulty {
	return append([]Difficulty(nil), t.order...)
}

// Lengths lists every word length some difficulty can draw, ascending.
func (t Table) Lengths() []int {
	seen := map[int]bool{}
	var out []int
	for _, d := range t.order {
		l := t.levels[d]
		for n := l.MinLength; n <= l.MaxLength; n++ {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	sort.Ints(out)
	return out
}

// spokenList renders the names as "easy, medium, hard or unfair".
func (t Table) spokenList() string {
	names := make([]string, len(t.order))
	for i, d := range t.order {
		names[i] = string(d)
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
