// internal/skill/envelope.go
//
// Wire types for the voice platform's request/response envelope.
// Only the fields the skill reads or writes are modelled.

package skill

import "github.com/robalobadob/spellingbee/internal/game"

// Request types delivered by the platform.
const (
	LaunchRequest       = "LaunchRequest"
	IntentRequest       = "IntentRequest"
	SessionEndedRequest = "SessionEndedRequest"
)

// Intent and slot names declared by the interaction model.
const (
	IntentSpellingBee = "SpellingBee"
	IntentHelp        = "AMAZON.HelpIntent"
	IntentStop        = "AMAZON.StopIntent"
	IntentCancel      = "AMAZON.CancelIntent"

	SlotDifficulty          = "Difficulty"
	SlotCommandOrDifficulty = "CommandOrDifficulty"
)

// RequestEnvelope is the body of one turn.
type RequestEnvelope struct {
	Version string  `json:"version"`
	Session Session `json:"session"`
	Request Request `json:"request"`
}

// Session is the platform's session block. Attributes carry the game state.
type Session struct {
	New         bool         `json:"new"`
	SessionID   string       `json:"sessionId"`
	Application Application  `json:"application"`
	Attributes  game.Session `json:"attributes"`
}

// Application identifies the skill the request was addressed to.
type Application struct {
	ApplicationID string `json:"applicationId"`
}

// Request is the typed request block.
type Request struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId"`
	Timestamp string  `json:"timestamp,omitempty"`
	Locale    string  `json:"locale,omitempty"`
	Reason    string  `json:"reason,omitempty"`
	Intent    *Intent `json:"intent,omitempty"`
}

// Intent is the NLU result for an IntentRequest.
type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

// Slot is one named value extracted from the utterance.
type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// SlotValue returns the value of slot name, or "" when it is absent.
func (i *Intent) SlotValue(name string) string {
	if i == nil || i.Slots == nil {
		return ""
	}
	return i.Slots[name].Value
}

// ResponseEnvelope is returned for every handled turn.
type ResponseEnvelope struct {
	Version           string       `json:"version"`
	SessionAttributes game.Session `json:"sessionAttributes"`
	Response          Response     `json:"response"`
}

// Response is the speechlet part of the envelope.
type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

// OutputSpeech is plain text for the platform to synthesise.
type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Card is the simple card shown in the companion app.
type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Reprompt is spoken if the user stays silent.
type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

// buildResponse assembles the envelope for a dispatcher reply.
func buildResponse(title string, r game.Reply) *ResponseEnvelope {
	res := Response{ShouldEndSession: r.EndGame}
	if r.Speech != "" {
		res.OutputSpeech = &OutputSpeech{Type: "PlainText", Text: r.Speech}
		res.Card = &Card{Type: "Simple", Title: "Spelling Bee - " + title, Content: r.Speech}
	}
	if r.Reprompt != "" {
		res.Reprompt = &Reprompt{OutputSpeech: OutputSpeech{Type: "PlainText", Text: r.Reprompt}}
	}
	return &ResponseEnvelope{Version: "1.0", SessionAttributes: r.Session, Response: res}
}
