package handler

import (
	"strings"

	"quiethelp/internal/conversation"
	"quiethelp/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("User started bot",
		zap.Int64("user_id", c.Sender().ID),
	)
	return h.dispatch(c, eventFor(c, conversation.TriggerStart))
}

// handleAsk handles /ask sent as a text message
func (h *Handler) handleAsk(c tele.Context) error {
	ev := eventFor(c, conversation.TriggerAsk)
	if msg := c.Message(); msg != nil {
		ev.Text = strings.TrimSpace(msg.Payload)
		ev.Photos = photoVariants(msg.Photo)
	}
	return h.dispatch(c, ev)
}

// handlePhoto handles photos whose caption is an /ask command
func (h *Handler) handlePhoto(c tele.Context) error {
	msg := c.Message()
	if msg == nil {
		return nil
	}

	command, args, ok := parseCommand(msg.Caption, h.bot.Me.Username)
	if !ok || command != string(conversation.TriggerAsk) {
		h.logger.Debug("Ignoring photo without /ask caption", zap.Int64("user_id", c.Sender().ID))
		return nil
	}

	ev := eventFor(c, conversation.TriggerAsk)
	ev.Text = args
	ev.Photos = photoVariants(msg.Photo)
	return h.dispatch(c, ev)
}

// parseCommand splits "/cmd@bot args" into its command and arguments.
// Commands addressed to another bot are rejected.
func parseCommand(text, botName string) (string, string, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}

	head, args, _ := strings.Cut(text[1:], " ")
	command, target, addressed := strings.Cut(head, "@")
	if command == "" {
		return "", "", false
	}
	if addressed && botName != "" && !strings.EqualFold(target, botName) {
		return "", "", false
	}

	return command, strings.TrimSpace(args), true
}

// photoVariants converts the transport's photo into resolution variants.
// Telebot keeps only the highest resolution size of a message photo.
func photoVariants(photo *tele.Photo) []domain.PhotoVariant {
	if photo == nil || photo.FileID == "" {
		return nil
	}
	return []domain.PhotoVariant{{
		FileID: photo.FileID,
		Width:  photo.Width,
		Height: photo.Height,
	}}
}
