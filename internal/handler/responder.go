package handler

import (
	"context"
	"strconv"
	"strings"

	"quiethelp/internal/conversation"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// chatResponder answers in the chat an update came from
type chatResponder struct {
	bot    *tele.Bot
	c      tele.Context
	logger *zap.Logger
}

func (r *chatResponder) Send(ctx context.Context, reply conversation.Reply) (conversation.MessageRef, error) {
	if err := ctx.Err(); err != nil {
		return conversation.MessageRef{}, err
	}

	msg, err := r.bot.Send(r.c.Recipient(), reply.Text, replyOptions(reply)...)
	if err != nil {
		return conversation.MessageRef{}, err
	}
	return messageRef(msg), nil
}

// Edit updates the message whose button was pressed. Like the rest of the
// bot it falls back to a new message when the edit is rejected.
func (r *chatResponder) Edit(ctx context.Context, reply conversation.Reply) (conversation.MessageRef, error) {
	callback := r.c.Callback()
	if callback == nil || callback.Message == nil {
		return r.Send(ctx, reply)
	}
	if err := ctx.Err(); err != nil {
		return conversation.MessageRef{}, err
	}

	msg, err := r.bot.Edit(callback.Message, reply.Text, replyOptions(reply)...)
	if err != nil {
		// Already edited by a concurrent callback
		if strings.Contains(err.Error(), "message is not modified") {
			return messageRef(callback.Message), nil
		}

		r.logger.Warn("Failed to edit message, sending new",
			zap.Error(err),
			zap.Int64("user_id", r.c.Sender().ID),
			zap.String("callback_id", callback.ID),
		)
		return r.Send(ctx, reply)
	}

	if msg == nil {
		msg = callback.Message
	}
	return messageRef(msg), nil
}

func (r *chatResponder) Pin(ctx context.Context, ref conversation.MessageRef) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.bot.Pin(tele.StoredMessage{
		MessageID: strconv.Itoa(ref.MessageID),
		ChatID:    ref.ChatID,
	})
}

func replyOptions(reply conversation.Reply) []interface{} {
	if len(reply.Choices) == 0 {
		return nil
	}
	return []interface{}{choiceMarkup(reply.Choices)}
}

func messageRef(msg *tele.Message) conversation.MessageRef {
	ref := conversation.MessageRef{MessageID: msg.ID}
	if msg.Chat != nil {
		ref.ChatID = msg.Chat.ID
	}
	return ref
}
