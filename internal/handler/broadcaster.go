package handler

import (
	"context"

	tele "gopkg.in/telebot.v3"
)

// destination is a chat addressed by numeric id or @username
type destination string

func (d destination) Recipient() string {
	return string(d)
}

// ChannelBroadcaster posts to a channel through the bot.
// It implements service.Broadcaster.
type ChannelBroadcaster struct {
	bot *tele.Bot
}

// NewChannelBroadcaster creates a new broadcaster
func NewChannelBroadcaster(bot *tele.Bot) *ChannelBroadcaster {
	return &ChannelBroadcaster{bot: bot}
}

// SendText posts a plain text message
func (b *ChannelBroadcaster) SendText(ctx context.Context, to, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := b.bot.Send(destination(to), text)
	return err
}

// SendPhoto posts an already uploaded photo with a caption
func (b *ChannelBroadcaster) SendPhoto(ctx context.Context, to, fileID, caption string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	photo := &tele.Photo{
		File:    tele.File{FileID: fileID},
		Caption: caption,
	}
	_, err := b.bot.Send(destination(to), photo)
	return err
}
