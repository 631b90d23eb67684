package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// PrivateOnly drops updates that come from groups or channels, where
// asking would reveal the sender
func PrivateOnly(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if chat := c.Chat(); chat != nil && chat.Type != tele.ChatPrivate {
				logger.Debug("Dropping update from non-private chat",
					zap.Int64("chat_id", chat.ID),
					zap.String("chat_type", string(chat.Type)),
				)
				return nil
			}
			return next(c)
		}
	}
}
