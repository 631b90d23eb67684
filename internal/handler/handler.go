package handler

import (
	"context"
	"errors"
	"time"

	"quiethelp/internal/conversation"
	"quiethelp/internal/middleware"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler translates Telegram updates into conversation events
type Handler struct {
	bot     *tele.Bot
	engine  *conversation.Engine
	logger  *zap.Logger
	timeout time.Duration
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	engine *conversation.Engine,
	logger *zap.Logger,
	timeout time.Duration,
) *Handler {
	return &Handler{
		bot:     bot,
		engine:  engine,
		logger:  logger,
		timeout: timeout,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(
		middleware.PrivateOnly(h.logger),
		middleware.LogUpdates(h.logger),
	)

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/ask", h.handleAsk)

	// Photos captioned with /ask
	h.bot.Handle(tele.OnPhoto, h.handlePhoto)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnProgram, h.handleChoice(conversation.TriggerProgram))
	h.bot.Handle(&btnSemester, h.handleChoice(conversation.TriggerSemester))
	h.bot.Handle(&btnClass, h.handleChoice(conversation.TriggerClass))

	// Anything else, e.g. buttons from older versions of the bot
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// dispatch runs one event through the engine under a deadline
func (h *Handler) dispatch(c tele.Context, ev conversation.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	responder := &chatResponder{bot: h.bot, c: c, logger: h.logger}
	err := h.engine.Handle(ctx, ev, responder)

	if errors.Is(err, conversation.ErrStaleEvent) {
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: msgStaleButton})
		}
		return nil
	}

	if c.Callback() != nil {
		if ackErr := c.Respond(); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
	}
	return err
}

func eventFor(c tele.Context, trigger conversation.Trigger) conversation.Event {
	ev := conversation.Event{
		UserID:  c.Sender().ID,
		Trigger: trigger,
	}
	if chat := c.Chat(); chat != nil {
		ev.ChatID = chat.ID
	}
	return ev
}

const msgStaleButton = "This button is no longer active."

// Inline keyboard buttons. Payloads travel in the callback data.
var (
	btnProgram  = tele.Btn{Unique: string(conversation.TriggerProgram)}
	btnSemester = tele.Btn{Unique: string(conversation.TriggerSemester)}
	btnClass    = tele.Btn{Unique: string(conversation.TriggerClass)}
)

// choiceMarkup renders a choice set as one button per row
func choiceMarkup(choices []conversation.Choice) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(choices))
	for _, choice := range choices {
		rows = append(rows, markup.Row(markup.Data(choice.Label, string(choice.Trigger), choice.Payload)))
	}
	markup.Inline(rows...)
	return markup
}
