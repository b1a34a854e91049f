package cli

import (
	"bytes"
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/spellingbee/internal/config"
	"github.com/robalobadob/spellingbee/internal/game"
	"github.com/robalobadob/spellingbee/internal/skill"
)

type fixedWords struct{ word string }

func (f fixedWords) RandomWord(context.Context, int) (string, error) { return f.word, nil }

type fixedLexicon struct{}

func (fixedLexicon) Definition(context.Context, string) (string, error) {
	return "a small domesticated feline", nil
}
func (fixedLexicon) Example(context.Context, string) (string, error) { return "", nil }

func newPlayHandler() *skill.Handler {
	d := game.NewDispatcher(game.DefaultTable(), fixedWords{"cat"}, fixedLexicon{}, game.WithRand(rand.New(rand.NewPCG(7, 8))))
	return skill.NewHandler(d, "", nil)
}

func TestPlaySession(t *testing.T) {
	in := strings.NewReader("easy\ndefinition\nc a t\ndog\nfinish game\nnever read\n")
	var out bytes.Buffer

	require.NoError(t, play(context.Background(), newPlayHandler(), in, &out))

	got := out.String()
	assert.Contains(t, got, "Welcome to Spelling Bee")
	assert.Contains(t, got, "The word is cat.")
	assert.Contains(t, got, "The definition of cat is: a small domesticated feline")
	assert.Contains(t, got, "Correct. Your score is now 2.")
	assert.Contains(t, got, "Incorrect. The correct spelling is c. a. t.")
	assert.Contains(t, got, "Ending game. Goodbye.")
	assert.NotContains(t, got, "never read")
}

func TestPlayStopsAtEOF(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, play(context.Background(), newPlayHandler(), strings.NewReader("hard\n"), &out))

	assert.Contains(t, out.String(), "The word is cat.")
	assert.True(t, strings.HasSuffix(out.String(), "> \n"))
}

func TestPlayStopIntent(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, play(context.Background(), newPlayHandler(), strings.NewReader("stop\nmedium\n"), &out))

	assert.Contains(t, out.String(), "Goodbye")
	assert.NotContains(t, out.String(), "The word is")
}

func TestUtterance(t *testing.T) {
	in := utterance("  Skip ")
	assert.Equal(t, skill.IntentSpellingBee, in.Name)
	assert.Equal(t, "Skip", in.SlotValue(skill.SlotCommandOrDifficulty))
	assert.Equal(t, "", in.SlotValue(skill.SlotDifficulty))

	assert.Equal(t, "", utterance("").SlotValue(skill.SlotCommandOrDifficulty))
	assert.Equal(t, skill.IntentHelp, utterance("HELP").Name)
	assert.Equal(t, skill.IntentStop, utterance("quit").Name)
}

func TestBuildAppInMemory(t *testing.T) {
	a, err := buildApp(config.Config{WordnikAPIURL: "http://127.0.0.1:1", WordAPILengthParam: "length"}, nil)
	require.NoError(t, err)
	defer a.close()

	total, perLength := a.list.Stats()
	assert.Greater(t, total, 0)
	for n := 3; n <= 20; n++ {
		assert.Greater(t, perLength[n], 0, "length %d", n)
	}
	assert.Equal(t, []game.Difficulty{game.Easy, game.Medium, game.Hard, game.Unfair}, a.dispatcher.Table().Names())
}

func TestRootCommand(t *testing.T) {
	cmd := GetRootCmd()
	cmd.SetArgs([]string{"--version"})
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "spellingbee version 0.1.0")

	for _, name := range []string{"serve", "play"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("log-level"))
}

func TestBuildAppWarnsOnLengthGaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\ndog\nbird\n"), 0o644))

	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	a, err := buildApp(config.Config{WordsFile: path, WordnikAPIURL: "http://127.0.0.1:1"}, nil)
	require.NoError(t, err)
	defer a.close()

	assert.Contains(t, buf.String(), "word list has no words for some lengths")
	assert.Contains(t, buf.String(), `"lengths":[5,6,7,8,9,10,11,12,13,14,15,16,17,18,19,20]`)
}
