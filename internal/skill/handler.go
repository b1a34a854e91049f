// internal/skill/handler.go
//
// Routes one platform request to the spelling bee dispatcher.
// Responsibilities:
//   - Check the application id when one is configured.
//   - Route LaunchRequest / IntentRequest / SessionEndedRequest.
//   - Extract and classify slots for the SpellingBee intent.
//   - Build the response envelope (shouldEndSession follows the game).
//
// Unknown intents and request types are the only skill-level faults.

package skill

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/spellingbee/internal/game"
)

var (
	ErrBadRequest          = errors.New("skill: malformed request envelope")
	ErrUnknownIntent       = errors.New("skill: unknown intent")
	ErrUnknownRequest      = errors.New("skill: unknown request type")
	ErrApplicationMismatch = errors.New("skill: request addressed to another application")
)

// Recorder receives per-turn outcomes; *metrics.Metrics implements it.
type Recorder interface {
	RecordTurn(action string)
	RecordFailure(reason string)
}

type nopRecorder struct{}

func (nopRecorder) RecordTurn(string)    {}
func (nopRecorder) RecordFailure(string) {}

// Handler answers platform requests.
type Handler struct {
	dispatcher *game.Dispatcher
	appID      string
	rec        Recorder
}

// NewHandler builds a Handler. appID may be empty to accept any application;
// rec may be nil.
func NewHandler(d *game.Dispatcher, appID string, rec Recorder) *Handler {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &Handler{dispatcher: d, appID: appID, rec: rec}
}

// Handle answers one request envelope.
func (h *Handler) Handle(ctx context.Context, env *RequestEnvelope) (*ResponseEnvelope, error) {
	res, err := h.handle(ctx, env)
	if err != nil {
		h.rec.RecordFailure(failureReason(err))
		log.Error().Err(err).
			Str("requestId", env.Request.RequestID).
			Str("type", env.Request.Type).
			Msg("skill request failed")
	}
	return res, err
}

func (h *Handler) handle(ctx context.Context, env *RequestEnvelope) (*ResponseEnvelope, error) {
	if h.appID != "" && env.Session.Application.ApplicationID != h.appID {
		return nil, fmt.Errorf("%w: %q", ErrApplicationMismatch, env.Session.Application.ApplicationID)
	}

	if env.Session.New {
		log.Info().
			Str("sessionId", env.Session.SessionID).
			Str("requestId", env.Request.RequestID).
			Msg("session started")
	}

	switch env.Request.Type {
	case LaunchRequest:
		return h.reply("Welcome", h.dispatcher.Welcome(game.Session{})), nil
	case IntentRequest:
		return h.onIntent(ctx, env)
	case SessionEndedRequest:
		log.Info().
			Str("sessionId", env.Session.SessionID).
			Str("reason", env.Request.Reason).
			Msg("session ended")
		return &ResponseEnvelope{Version: "1.0", Response: Response{ShouldEndSession: true}}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRequest, env.Request.Type)
}

func (h *Handler) onIntent(ctx context.Context, env *RequestEnvelope) (*ResponseEnvelope, error) {
	intent := env.Request.Intent
	if intent == nil {
		return nil, fmt.Errorf("%w: intent request without intent", ErrUnknownIntent)
	}
	attrs := env.Session.Attributes

	switch intent.Name {
	case IntentSpellingBee:
		in := game.ParseInput(
			h.dispatcher.Table(),
			intent.SlotValue(SlotDifficulty),
			intent.SlotValue(SlotCommandOrDifficulty),
		)
		log.Debug().
			Str("sessionId", env.Session.SessionID).
			Str("input", in.Kind.String()).
			Msg("spelling bee turn")
		return h.reply("Spelling Bee", h.dispatcher.Turn(ctx, attrs, in)), nil
	case IntentHelp:
		return h.reply("Help", h.dispatcher.Help(attrs)), nil
	case IntentStop, IntentCancel:
		return h.reply("Goodbye", h.dispatcher.Finish()), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownIntent, intent.Name)
}

func (h *Handler) reply(title string, r game.Reply) *ResponseEnvelope {
	h.rec.RecordTurn(string(r.Action))
	return buildResponse(title, r)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrUnknownIntent):
		return "unknown_intent"
	case errors.Is(err, ErrUnknownRequest):
		return "unknown_request"
	case errors.Is(err, ErrApplicationMismatch):
		return "application_mismatch"
	}
	return "other"
}
