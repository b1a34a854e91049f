package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/spellingbee/internal/game"
	"github.com/robalobadob/spellingbee/internal/skill"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	Long: `Play Spelling Bee from the terminal. Each line you type is sent to the
skill as if it had been spoken: a difficulty, a command, or a spelling.
Type "help" for the command list and "stop" to quit.`,
	RunE: runPlayCmd,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlayCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a, err := buildApp(cfg, nil)
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	h := skill.NewHandler(a.dispatcher, "", nil)
	return play(cmd.Context(), h, cmd.InOrStdin(), cmd.OutOrStdout())
}

// play runs one session against h, reading utterances from in until the
// game ends or in is exhausted.
func play(ctx context.Context, h *skill.Handler, in io.Reader, out io.Writer) error {
	sessionID := "play." + uuid.NewString()
	var attrs game.Session

	turn := func(req skill.Request, isNew bool) (bool, error) {
		req.RequestID = "play.req." + uuid.NewString()
		res, err := h.Handle(ctx, &skill.RequestEnvelope{
			Version: "1.0",
			Session: skill.Session{New: isNew, SessionID: sessionID, Attributes: attrs},
			Request: req,
		})
		if err != nil {
			return false, err
		}
		if sp := res.Response.OutputSpeech; sp != nil {
			fmt.Fprintln(out, sp.Text)
		}
		attrs = res.SessionAttributes
		return res.Response.ShouldEndSession, nil
	}

	if _, err := turn(skill.Request{Type: skill.LaunchRequest}, true); err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			break
		}
		done, err := turn(skill.Request{Type: skill.IntentRequest, Intent: utterance(sc.Text())}, false)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	fmt.Fprintln(out)
	log.Debug().Str("sessionId", sessionID).Msg("input closed")
	return nil
}

// utterance maps a typed line onto the intent the voice model would produce.
func utterance(line string) *skill.Intent {
	text := strings.TrimSpace(line)
	switch strings.ToLower(text) {
	case "help":
		return &skill.Intent{Name: skill.IntentHelp}
	case "stop", "quit", "exit":
		return &skill.Intent{Name: skill.IntentStop}
	case "cancel":
		return &skill.Intent{Name: skill.IntentCancel}
	}
	slots := map[string]skill.Slot{
		skill.SlotDifficulty: {Name: skill.SlotDifficulty},
	}
	if text != "" {
		slots[skill.SlotCommandOrDifficulty] = skill.Slot{Name: skill.SlotCommandOrDifficulty, Value: text}
	}
	return &skill.Intent{Name: skill.IntentSpellingBee, Slots: slots}
}
