package game

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// InputKind tags the variant held by an Input.
type InputKind int

const (
	InputNone InputKind = iota
	InputDifficulty
	InputCommand
	InputSpelling
	InputUnrecognized
)

func (k InputKind) String() string {
	switch k {
	case InputNone:
		return "none"
	case InputDifficulty:
		return "difficulty"
	case InputCommand:
		return "command"
	case InputSpelling:
		return "spelling"
	case InputUnrecognized:
		return "unrecognized"
	}
	return "unknown"
}

// Command is a game command recognised from its spoken synonyms.
type Command string

const (
	CommandDefinition Command = "definition"
	CommandSkip       Command = "skip"
	CommandExample    Command = "example"
	CommandRepeat     Command = "repeat"
	CommandFinish     Command = "finish"
)

// synonyms maps folded phrases to commands.
var synonyms = map[string]Command{
	"definition":    CommandDefinition,
	"define":        CommandDefinition,
	"skip":          CommandSkip,
	"next word":     CommandSkip,
	"get next word": CommandSkip,
	"example":       CommandExample,
	"give example":  CommandExample,
	"repeat":        CommandRepeat,
	"repeat word":   CommandRepeat,
	"finish game":   CommandFinish,
	"end":           CommandFinish,
}

// Input is the classified form of what the player said.
// Exactly one of Difficulty, Command or Text is meaningful, selected by Kind.
type Input struct {
	Kind       InputKind
	Difficulty Difficulty
	Command    Command
	Text       string // spelling attempt (letters only) or the raw unrecognized phrase
}

func NoInput() Input                     { return Input{Kind: InputNone} }
func DifficultyInput(d Difficulty) Input { return Input{Kind: InputDifficulty, Difficulty: d} }
func CommandInput(c Command) Input       { return Input{Kind: InputCommand, Command: c} }
func SpellingInput(letters string) Input { return Input{Kind: InputSpelling, Text: letters} }
func UnrecognizedInput(raw string) Input { return Input{Kind: InputUnrecognized, Text: raw} }

// ParseInput classifies the two slot values delivered with a turn.
//
// Rules:
//   - commandSlot wins when it holds anything other than a difficulty name.
//   - a difficulty name in either slot yields a Difficulty.
//   - an unknown value in difficultySlot is Unrecognized.
//   - both slots empty is None.
func ParseInput(t Table, difficultySlot, commandSlot string) Input {
	cmd := normalize(commandSlot)
	if cmd != "" {
		if _, ok := t.Lookup(Difficulty(cmd)); ok {
			return DifficultyInput(Difficulty(cmd))
		}
		return classifyPhrase(cmd, commandSlot)
	}
	diff := normalize(difficultySlot)
	if diff == "" {
		return NoInput()
	}
	if _, ok := t.Lookup(Difficulty(diff)); ok {
		return DifficultyInput(Difficulty(diff))
	}
	return UnrecognizedInput(strings.TrimSpace(difficultySlot))
}

// classifyPhrase handles a normalized, non-difficulty phrase.
func classifyPhrase(folded, raw string) Input {
	folded = strings.TrimRight(folded, ".!?")
	if c, ok := synonyms[folded]; ok {
		return CommandInput(c)
	}
	if isLetters(folded) {
		return SpellingInput(folded)
	}
	if letters, ok := spelledOut(folded); ok {
		return SpellingInput(letters)
	}
	return UnrecognizedInput(strings.TrimSpace(raw))
}

// normalize trims, collapses inner whitespace and case-folds s.
func normalize(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}

// sameWord compares two words ignoring case.
func sameWord(a, b string) bool {
	return normalize(a) == normalize(b)
}

// isLetters reports whether s is a non-empty run of letters.
func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// spelledOut joins letters said one at a time ("c. a. t", "c a t").
func spelledOut(s string) (string, bool) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '.' || r == ',' || r == '-'
	})
	if len(parts) < 2 {
		return "", false
	}
	var b strings.Builder
	for _, p := range parts {
		rs := []rune(p)
		if len(rs) != 1 || !unicode.IsLetter(rs[0]) {
			return "", false
		}
		b.WriteRune(rs[0])
	}
	return b.String(), true
}
