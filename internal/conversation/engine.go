package conversation

import (
	"context"
	"errors"
	"sync"
	"time"

	"quiethelp/internal/catalog"
	"quiethelp/internal/domain"

	"go.uber.org/zap"
)

// ErrStaleEvent is returned for events that are not valid in the user's
// current state, such as a button left over from an earlier flow
var ErrStaleEvent = errors.New("event not valid in current state")

type transition func(e *Engine, ctx context.Context, ev Event, s *domain.Session, r Responder) error

// Entry points are accepted in every state and replace any stale session
var entryPoints = map[Trigger]transition{
	TriggerStart: (*Engine).startOnboarding,
	TriggerAsk:   (*Engine).startQuestion,
}

// transitions lists the only events each state accepts
var transitions = map[domain.SessionState]map[Trigger]transition{
	domain.StateAwaitingProgram: {
		TriggerProgram: (*Engine).chooseProgram,
	},
	domain.StateAwaitingSemester: {
		TriggerSemester: (*Engine).chooseSemester,
	},
	domain.StateAwaitingClass: {
		TriggerClass: (*Engine).chooseClass,
	},
}

// Engine drives onboarding and question submission for every user
type Engine struct {
	profiles Profiles
	sequence Sequencer
	relay    Relay
	logger   *zap.Logger
	now      func() time.Time

	// User sessions (in-memory state machine)
	sessions   map[int64]*domain.Session
	sessionsMu sync.RWMutex

	// Per-user locks so a user's events never run concurrently
	locks   map[int64]*sync.Mutex
	locksMu sync.Mutex
}

// NewEngine creates a new conversation engine
func NewEngine(profiles Profiles, sequence Sequencer, relay Relay, logger *zap.Logger) *Engine {
	return &Engine{
		profiles: profiles,
		sequence: sequence,
		relay:    relay,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[int64]*domain.Session),
		locks:    make(map[int64]*sync.Mutex),
	}
}

// Handle processes one event. Events of the same user are serialized.
// It returns ErrStaleEvent when the event does not fit the current state,
// and transport errors from the responder.
func (e *Engine) Handle(ctx context.Context, ev Event, r Responder) error {
	lock := e.userLock(ev.UserID)
	lock.Lock()
	defer lock.Unlock()

	session := e.session(ev.UserID)

	step, ok := entryPoints[ev.Trigger]
	if !ok {
		step, ok = transitions[session.State][ev.Trigger]
	}
	if !ok {
		e.logger.Debug("Ignoring event outside current state",
			zap.Int64("user_id", ev.UserID),
			zap.String("state", string(session.State)),
			zap.String("trigger", string(ev.Trigger)),
		)
		return ErrStaleEvent
	}

	err := step(e, ctx, ev, &session, r)
	e.store(ev.UserID, session)
	return err
}

// State returns the user's current state
func (e *Engine) State(userID int64) domain.SessionState {
	return e.session(userID).State
}

// Sweep drops sessions that have not been touched for maxAge and returns
// how many were removed
func (e *Engine) Sweep(maxAge time.Duration) int {
	cutoff := e.now().Add(-maxAge)

	e.sessionsMu.Lock()
	defer e.sessionsMu.Unlock()

	removed := 0
	for userID, s := range e.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(e.sessions, userID)
			removed++
		}
	}
	return removed
}

func (e *Engine) startOnboarding(ctx context.Context, ev Event, s *domain.Session, r Responder) error {
	e.logger.Info("User started onboarding", zap.Int64("user_id", ev.UserID))

	*s = domain.Session{State: domain.StateAwaitingProgram}
	_, err := r.Send(ctx, Reply{Text: msgSelectProgram, Choices: programChoices()})
	return err
}

func (e *Engine) chooseProgram(ctx context.Context, ev Event, s *domain.Session, r Responder) error {
	program, ok := programFromPayload(ev.Payload)
	if !ok {
		e.logger.Warn("Unknown program payload",
			zap.Int64("user_id", ev.UserID),
			zap.String("payload", ev.Payload),
		)
		return ErrStaleEvent
	}

	s.State = domain.StateAwaitingSemester
	s.Draft.Program = program
	_, err := r.Edit(ctx, Reply{Text: msgSelectSemester, Choices: semesterChoices()})
	return err
}

func (e *Engine) chooseSemester(ctx context.Context, ev Event, s *domain.Session, r Responder) error {
	if !catalog.IsSemester(ev.Payload) {
		e.logger.Warn("Unknown semester payload",
			zap.Int64("user_id", ev.UserID),
			zap.String("payload", ev.Payload),
		)
		return ErrStaleEvent
	}

	program := s.Draft.Program
	*s = domain.Session{State: domain.StateIdle}

	profile, err := e.profiles.Register(ctx, ev.UserID, program, ev.Payload)
	if err != nil {
		e.logger.Error("Failed to register profile",
			zap.Int64("user_id", ev.UserID),
			zap.Error(err),
		)
		_, sendErr := r.Edit(ctx, Reply{Text: msgSaveFailed})
		return sendErr
	}

	ref, err := r.Edit(ctx, Reply{Text: profileSummary(profile)})
	if err != nil {
		return err
	}

	if err := r.Pin(ctx, ref); err != nil {
		e.logger.Warn("Failed to pin profile summary",
			zap.Int64("user_id", ev.UserID),
			zap.Int64("chat_id", ref.ChatID),
			zap.Error(err),
		)
	}
	return nil
}

func (e *Engine) startQuestion(ctx context.Context, ev Event, s *domain.Session, r Responder) error {
	profile, classes, err := e.profiles.Classes(ctx, ev.UserID)
	switch {
	case errors.Is(err, domain.ErrUnregisteredUser):
		_, sendErr := r.Send(ctx, Reply{Text: msgRegisterFirst})
		return sendErr
	case errors.Is(err, domain.ErrEmptyCatalogEntry):
		e.logger.Warn("Profile has no classes",
			zap.Int64("user_id", ev.UserID),
			zap.String("program", profile.Program),
			zap.String("semester", profile.Semester),
		)
		_, sendErr := r.Send(ctx, Reply{Text: msgNoClasses})
		return sendErr
	case err != nil:
		e.logger.Error("Failed to load profile", zap.Int64("user_id", ev.UserID), zap.Error(err))
		_, sendErr := r.Send(ctx, Reply{Text: msgTryLater})
		return sendErr
	}

	*s = domain.Session{
		State: domain.StateAwaitingClass,
		Draft: domain.Draft{
			Program:    profile.Program,
			Question:   ev.Text,
			Attachment: domain.LargestVariant(ev.Photos),
			Classes:    classes,
		},
	}

	_, err = r.Send(ctx, Reply{Text: msgChooseClass, Choices: classChoices(classes)})
	return err
}

func (e *Engine) chooseClass(ctx context.Context, ev Event, s *domain.Session, r Responder) error {
	hashtag, ok := hashtagFromPayload(ev.Payload, s.Draft.Classes)
	if !ok {
		e.logger.Warn("Unknown class payload",
			zap.Int64("user_id", ev.UserID),
			zap.String("payload", ev.Payload),
		)
		return ErrStaleEvent
	}

	draft := s.Draft
	*s = domain.Session{State: domain.StateIdle}

	n, err := e.sequence.Next(ctx)
	if err != nil {
		_, sendErr := r.Edit(ctx, Reply{Text: msgSendFailed})
		return sendErr
	}

	q := domain.Question{
		Number:     n,
		Hashtag:    hashtag,
		Text:       draft.Question,
		Attachment: draft.Attachment,
	}
	if err := e.relay.Deliver(ctx, q); err != nil {
		_, sendErr := r.Edit(ctx, Reply{Text: msgSendFailed})
		return sendErr
	}

	_, err = r.Edit(ctx, Reply{Text: msgSent})
	return err
}

// session returns a copy of the user's session, idle when there is none
func (e *Engine) session(userID int64) domain.Session {
	e.sessionsMu.RLock()
	defer e.sessionsMu.RUnlock()

	s, exists := e.sessions[userID]
	if !exists {
		return domain.Session{State: domain.StateIdle}
	}
	return *s
}

func (e *Engine) store(userID int64, s domain.Session) {
	e.sessionsMu.Lock()
	defer e.sessionsMu.Unlock()

	if s.State == domain.StateIdle {
		delete(e.sessions, userID)
		return
	}
	s.UpdatedAt = e.now()
	e.sessions[userID] = &s
}

func (e *Engine) userLock(userID int64) *sync.Mutex {
	e.locksMu.Lock()
	defer e.locksMu.Unlock()

	lock, exists := e.locks[userID]
	if !exists {
		lock = &sync.Mutex{}
		e.locks[userID] = lock
	}
	return lock
}
