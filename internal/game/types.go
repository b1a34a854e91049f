// internal/game/types.go
//
// Core type definitions for the spelling bee dialogue.
// Defines:
//   - Session: the per-conversation attribute bag carried by the caller.
//   - Action: the coarse outcome of a turn (used for logging and metrics).
//   - Reply: speech, reprompt and the mutated session for one turn.
//   - WordProvider / LexiconProvider: the external collaborators.

package game

import "context"

// Session holds the state of a single spelling bee conversation.
// It is supplied whole by the caller on every turn and returned whole.
// Score is a pointer so that "no game" and "zero points" stay distinct.
type Session struct {
	Difficulty  Difficulty `json:"difficulty,omitempty"`
	CurrentWord string     `json:"currentWord,omitempty"`
	Score       *int       `json:"score,omitempty"`
}

// Active reports whether a game is in progress.
func (s Session) Active() bool {
	return s.Difficulty != "" && s.CurrentWord != ""
}

// Points returns the current score, or 0 when no game is running.
func (s Session) Points() int {
	if s.Score == nil {
		return 0
	}
	return *s.Score
}

// clone returns a deep copy so replies never alias the caller's score.
func (s Session) clone() Session {
	if s.Score != nil {
		v := *s.Score
		s.Score = &v
	}
	return s
}

// Action is the outcome of a single turn.
type Action string

const (
	ActionWelcome          Action = "welcome"
	ActionSelectDifficulty Action = "select_difficulty"
	ActionStart            Action = "start"
	ActionDefinition       Action = "definition"
	ActionExample          Action = "example"
	ActionSkip             Action = "skip"
	ActionRepeat           Action = "repeat"
	ActionFinish           Action = "finish"
	ActionCorrect          Action = "correct"
	ActionIncorrect        Action = "incorrect"
	ActionUnrecognized     Action = "unrecognized"
	ActionUnavailable      Action = "unavailable"
)

// Reply is the result of a turn.
type Reply struct {
	Speech   string
	Reprompt string
	Session  Session
	Action   Action
	EndGame  bool // true once the player finished the game
}

// WordProvider supplies random words of a requested length.
// The returned word is trusted to have that length.
type WordProvider interface {
	RandomWord(ctx context.Context, length int) (string, error)
}

// LexiconProvider supplies definitions and example sentences.
// An empty string with a nil error means nothing is available.
type LexiconProvider interface {
	Definition(ctx context.Context, word string) (string, error)
	Example(ctx context.Context, word string) (string, error)
}
