package conversation

import (
	"context"

	"quiethelp/internal/domain"
)

// Trigger identifies what a user did
type Trigger string

const (
	TriggerStart    Trigger = "start"
	TriggerAsk      Trigger = "ask"
	TriggerProgram  Trigger = "program"
	TriggerSemester Trigger = "semester"
	TriggerClass    Trigger = "class"
)

// Event is one inbound user action
type Event struct {
	UserID  int64
	ChatID  int64
	Trigger Trigger
	// Payload is the opaque value carried by a pressed button
	Payload string
	// Text holds the arguments of a command
	Text   string
	Photos []domain.PhotoVariant
}

// Choice is one button of a choice set
type Choice struct {
	Label   string
	Trigger Trigger
	Payload string
}

// Reply is an outbound message with optional buttons
type Reply struct {
	Text    string
	Choices []Choice
}

// MessageRef points at a message the transport delivered
type MessageRef struct {
	ChatID    int64
	MessageID int
}

// Responder talks back to the user who triggered the event
type Responder interface {
	// Send posts a new message
	Send(ctx context.Context, reply Reply) (MessageRef, error)
	// Edit replaces the message carrying the pressed button, or sends a
	// new one when there is nothing to edit
	Edit(ctx context.Context, reply Reply) (MessageRef, error)
	// Pin pins a message in its chat
	Pin(ctx context.Context, ref MessageRef) error
}

// Profiles is the profile service used by the engine
type Profiles interface {
	Register(ctx context.Context, userID int64, program, semester string) (*domain.UserProfile, error)
	Classes(ctx context.Context, userID int64) (*domain.UserProfile, []string, error)
}

// Sequencer allocates question numbers
type Sequencer interface {
	Next(ctx context.Context) (int64, error)
}

// Relay delivers questions to the channel
type Relay interface {
	Deliver(ctx context.Context, q domain.Question) error
}
