package middleware

import (
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// LogUpdates logs every handled update with its duration.
// Message text is never logged since questions are anonymous.
func LogUpdates(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			started := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.Duration("duration", time.Since(started)),
			}
			if sender := c.Sender(); sender != nil {
				fields = append(fields, zap.Int64("user_id", sender.ID))
			}
			if callback := c.Callback(); callback != nil {
				fields = append(fields, zap.String("callback", callback.Unique))
			}

			if err != nil {
				logger.Warn("Update failed", append(fields, zap.Error(err))...)
			} else {
				logger.Debug("Update handled", fields...)
			}
			return err
		}
	}
}
