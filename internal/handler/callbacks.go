package handler

import (
	"strings"
	"unicode"

	"quiethelp/internal/conversation"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleChoice returns the handler for one kind of button
func (h *Handler) handleChoice(trigger conversation.Trigger) tele.HandlerFunc {
	return func(c tele.Context) error {
		callback := c.Callback()
		if callback == nil {
			h.logger.Warn("handleChoice: callback is nil")
			return nil
		}

		ev := eventFor(c, trigger)
		ev.Payload = cleanCallbackData(callback.Data)
		return h.dispatch(c, ev)
	}
}

// handleCallback acknowledges callbacks no registered button matched
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", cleanCallbackData(callback.Data)),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)
	return c.Respond(&tele.CallbackResponse{Text: msgStaleButton})
}
