package service

import (
	"context"
	"fmt"

	"quiethelp/internal/domain"

	"go.uber.org/zap"
)

// Broadcaster delivers messages to a broadcast destination
type Broadcaster interface {
	SendText(ctx context.Context, destination, text string) error
	SendPhoto(ctx context.Context, destination, fileID, caption string) error
}

// RelayService posts numbered questions to the channel
type RelayService struct {
	broadcaster Broadcaster
	destination string
	logger      *zap.Logger
}

// NewRelayService creates a new relay service
func NewRelayService(broadcaster Broadcaster, destination string, logger *zap.Logger) *RelayService {
	return &RelayService{
		broadcaster: broadcaster,
		destination: destination,
		logger:      logger,
	}
}

// Deliver sends the question once. Photos go out with the caption attached.
func (s *RelayService) Deliver(ctx context.Context, q domain.Question) error {
	var err error
	if q.HasAttachment() {
		err = s.broadcaster.SendPhoto(ctx, s.destination, q.Attachment, q.Caption())
	} else {
		err = s.broadcaster.SendText(ctx, s.destination, q.Caption())
	}

	if err != nil {
		s.logger.Error("Failed to relay question",
			zap.Int64("number", q.Number),
			zap.String("hashtag", q.Hashtag),
			zap.Error(err),
		)
		return fmt.Errorf("relay question %d: %w", q.Number, err)
	}

	s.logger.Info("Question relayed",
		zap.Int64("number", q.Number),
		zap.String("hashtag", q.Hashtag),
		zap.Bool("with_photo", q.HasAttachment()),
	)
	return nil
}
