// internal/game/engine.go
//
// Dialogue dispatcher for a single spelling bee turn.
// Responsibilities:
//   - Infer game state from the caller-supplied Session.
//   - Start games, draw words, score spelling attempts.
//   - Answer definition/example/repeat/skip/finish commands.
//   - Turn provider failures into spoken apologies, never into errors.
//
// Notes:
//   - The Dispatcher holds no per-conversation state; it is safe to share
//     between goroutines as long as its providers and Rand are.
//   - Word lengths are drawn uniformly from the difficulty's inclusive range.
package game

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/rs/zerolog/log"
)

// Rand draws integers in [0, n).
type Rand interface {
	IntN(n int) int
}

// Dispatcher runs spelling bee turns.
type Dispatcher struct {
	table   Table
	words   WordProvider
	lexicon LexiconProvider
	rnd     Rand
}

// Option customises a Dispatcher.
type Option func(*Dispatcher)

// WithRand replaces the crypto-backed length picker (useful for tests).
func WithRand(r Rand) Option {
	return func(d *Dispatcher) { d.rnd = r }
}

// NewDispatcher wires a dispatcher to its difficulty table and providers.
func NewDispatcher(t Table, words WordProvider, lexicon LexiconProvider, opts ...Option) *Dispatcher {
	d := &Dispatcher{table: t, words: words, lexicon: lexicon, rnd: cryptoRand{}}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Table returns the difficulty configuration in use.
func (d *Dispatcher) Table() Table { return d.table }

// Welcome is the prompt for a player who has not chosen a difficulty.
func (d *Dispatcher) Welcome(s Session) Reply {
	return Reply{
		Speech:   welcomeSpeech(d.table),
		Reprompt: difficultyReprompt(d.table),
		Session:  s.clone(),
		Action:   ActionWelcome,
	}
}

// Help explains the commands mid-game and falls back to Welcome otherwise.
func (d *Dispatcher) Help(s Session) Reply {
	s = s.clone()
	if _, active := d.activeLevel(&s); !active {
		return d.Welcome(Session{})
	}
	return Reply{
		Speech:   wordSpeech(s.CurrentWord) + " " + commandHint,
		Reprompt: spellReprompt(s.CurrentWord),
		Session:  s,
		Action:   ActionRepeat,
	}
}

// Finish ends the game, whatever state it was in.
func (d *Dispatcher) Finish() Reply {
	return Reply{Speech: goodbye, Session: Session{}, Action: ActionFinish, EndGame: true}
}

// Turn evaluates one player input against the session.
func (d *Dispatcher) Turn(ctx context.Context, s Session, in Input) Reply {
	s = s.clone()
	level, active := d.activeLevel(&s)
	if !active {
		return d.idleTurn(ctx, in)
	}

	switch in.Kind {
	case InputCommand:
		switch in.Command {
		case CommandDefinition:
			return d.definition(ctx, s)
		case CommandExample:
			return d.example(ctx, s)
		case CommandSkip:
			return d.skip(ctx, s, level)
		case CommandRepeat:
			return Reply{
				Speech:   wordSpeech(s.CurrentWord),
				Reprompt: spellReprompt(s.CurrentWord),
				Session:  s,
				Action:   ActionRepeat,
			}
		case CommandFinish:
			return d.Finish()
		}
	case InputSpelling:
		return d.attempt(ctx, s, level, in.Text)
	case InputDifficulty:
		// Mid-game a difficulty name is just a word being spelled.
		return d.attempt(ctx, s, level, string(in.Difficulty))
	}

	return Reply{
		Speech:   unrecognized,
		Reprompt: spellReprompt(s.CurrentWord),
		Session:  s,
		Action:   ActionUnrecognized,
	}
}

// activeLevel reports whether s holds a game under a known difficulty.
// The difficulty is matched case-insensitively and stored back in table form.
func (d *Dispatcher) activeLevel(s *Session) (Level, bool) {
	if !s.Active() {
		return Level{}, false
	}
	diff := Difficulty(normalize(string(s.Difficulty)))
	l, ok := d.table.Lookup(diff)
	if !ok {
		log.Warn().Str("difficulty", string(s.Difficulty)).Msg("session carries unknown difficulty; resetting")
		return Level{}, false
	}
	s.Difficulty = diff
	return l, true
}

// idleTurn handles the turns before a game has started.
func (d *Dispatcher) idleTurn(ctx context.Context, in Input) Reply {
	switch in.Kind {
	case InputNone:
		return d.Welcome(Session{})
	case InputDifficulty:
		return d.start(ctx, in.Difficulty)
	}
	return Reply{
		Speech:   selectDifficultySpeech(d.table),
		Reprompt: difficultyReprompt(d.table),
		Session:  Session{},
		Action:   ActionSelectDifficulty,
	}
}

func (d *Dispatcher) start(ctx context.Context, diff Difficulty) Reply {
	level, ok := d.table.Lookup(diff)
	if !ok {
		return Reply{
			Speech:   selectDifficultySpeech(d.table),
			Reprompt: difficultyReprompt(d.table),
			Action:   ActionSelectDifficulty,
		}
	}
	word, err := d.draw(ctx, level)
	if err != nil {
		return Reply{
			Speech:   noWordRightNow + " " + difficultyReprompt(d.table),
			Reprompt: difficultyReprompt(d.table),
			Action:   ActionUnavailable,
		}
	}
	score := 0
	return Reply{
		Speech:   wordSpeech(word) + " " + commandHint,
		Reprompt: spellReprompt(word),
		Session:  Session{Difficulty: diff, CurrentWord: word, Score: &score},
		Action:   ActionStart,
	}
}

func (d *Dispatcher) skip(ctx context.Context, s Session, level Level) Reply {
	word, err := d.draw(ctx, level)
	if err != nil {
		return Reply{
			Speech:   stillSpeech(s.CurrentWord),
			Reprompt: spellReprompt(s.CurrentWord),
			Session:  s,
			Action:   ActionUnavailable,
		}
	}
	s.CurrentWord = word
	return Reply{
		Speech:   wordSpeech(word),
		Reprompt: spellReprompt(word),
		Session:  s,
		Action:   ActionSkip,
	}
}

// attempt scores a spelling and moves on to a fresh word either way.
func (d *Dispatcher) attempt(ctx context.Context, s Session, level Level, spelled string) Reply {
	previous := s.CurrentWord
	r := Reply{Action: ActionIncorrect}
	var head string
	if sameWord(spelled, previous) {
		score := s.Points() + level.Points
		s.Score = &score
		r.Action = ActionCorrect
		head = fmt.Sprintf("Correct. Your score is now %d.", score)
	} else {
		head = "Incorrect. The correct spelling is " + spellOut(previous)
	}

	word, err := d.draw(ctx, level)
	if err != nil {
		r.Speech = head + " " + stillSpeech(previous)
		r.Reprompt = spellReprompt(previous)
		r.Session = s
		return r
	}
	s.CurrentWord = word
	r.Speech = head + " The next word is " + word + "."
	r.Reprompt = spellReprompt(word)
	r.Session = s
	return r
}

func (d *Dispatcher) definition(ctx context.Context, s Session) Reply {
	text, err := d.lexicon.Definition(ctx, s.CurrentWord)
	if err != nil {
		log.Warn().Err(err).Str("word", s.CurrentWord).Msg("definition lookup failed")
	}
	speech := fmt.Sprintf("Sorry, no definition is available for %s.", s.CurrentWord)
	if err == nil && text != "" {
		speech = fmt.Sprintf("The definition of %s is: %s", s.CurrentWord, text)
	}
	return Reply{
		Speech:   speech,
		Reprompt: spellReprompt(s.CurrentWord),
		Session:  s,
		Action:   ActionDefinition,
	}
}

func (d *Dispatcher) example(ctx context.Context, s Session) Reply {
	text, err := d.lexicon.Example(ctx, s.CurrentWord)
	if err != nil {
		log.Warn().Err(err).Str("word", s.CurrentWord).Msg("example lookup failed")
	}
	speech := fmt.Sprintf("Sorry, no example is available for %s.", s.CurrentWord)
	if err == nil && text != "" {
		speech = fmt.Sprintf("An example of %s is: %s", s.CurrentWord, text)
	}
	return Reply{
		Speech:   speech,
		Reprompt: spellReprompt(s.CurrentWord),
		Session:  s,
		Action:   ActionExample,
	}
}

// draw picks a length in the level's range and fetches a word of it.
func (d *Dispatcher) draw(ctx context.Context, level Level) (string, error) {
	length := level.MinLength + d.rnd.IntN(level.MaxLength-level.MinLength+1)
	word, err := d.words.RandomWord(ctx, length)
	if err == nil && word == "" {
		err = fmt.Errorf("word provider returned nothing for length %d", length)
	}
	if err != nil {
		log.Warn().Err(err).Int("length", length).Msg("draw word")
		return "", err
	}
	return word, nil
}

// cryptoRand is the default Rand, backed by crypto/rand.
type cryptoRand struct{}

func (cryptoRand) IntN(n int) int {
	if n <= 1 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}
