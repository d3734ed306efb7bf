package conversation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ridness/clubbot/core/logger"
	"log/slog"
)

var (
	// ErrAlreadyActive is returned by Start when the chat has a live session.
	ErrAlreadyActive = errors.New("conversation: session already active")
	// ErrNoSession is returned by Advance when the chat has no live session.
	ErrNoSession = errors.New("conversation: no active session")
)

// DefaultTTL is how long an idle session lives before the janitor reclaims it.
const DefaultTTL = 30 * time.Minute

// Registry owns all live sessions, keyed by chat. It serializes advances
// per session while letting different chats progress in parallel.
type Registry struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	machines map[Kind]Machine
	ttl      time.Duration

	// OnExpire, when set, is invoked outside registry locks for every
	// session the janitor reclaims. Reclaim behaves like cancellation.
	OnExpire func(chatID int64, kind Kind)

	now func() time.Time
}

// NewRegistry builds a registry for the given machines. A non-positive ttl
// falls back to DefaultTTL.
func NewRegistry(ttl time.Duration, machines ...Machine) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	r := &Registry{
		sessions: make(map[int64]*Session),
		machines: make(map[Kind]Machine, len(machines)),
		ttl:      ttl,
		now:      time.Now,
	}
	for _, m := range machines {
		r.machines[m.Kind()] = m
	}
	return r
}

// InProgress reports whether the chat has a live session.
func (r *Registry) InProgress(chatID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[chatID]
	return ok
}

// Get returns the kind of the chat's live session, if any.
func (r *Registry) Get(chatID int64) (Kind, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[chatID]
	if !ok {
		return "", false
	}
	return s.Kind, true
}

// Active returns the number of live sessions.
func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Start creates a session for the chat and returns the opening prompt.
// seed pre-populates collected fields (e.g. item and member contact for a
// preorder). A chat with a live session gets ErrAlreadyActive.
func (r *Registry) Start(ctx context.Context, chatID int64, kind Kind, seed map[string]string) (StepResult, error) {
	machine, ok := r.machines[kind]
	if !ok {
		return StepResult{}, fmt.Errorf("conversation: unknown kind %q", kind)
	}

	now := r.now()
	s := &Session{
		ChatID:    chatID,
		Kind:      kind,
		startedAt: now,
		touchedAt: now,
	}
	for k, v := range seed {
		s.set(k, v)
	}

	r.mu.Lock()
	if _, exists := r.sessions[chatID]; exists {
		r.mu.Unlock()
		return StepResult{}, ErrAlreadyActive
	}
	r.sessions[chatID] = s
	r.mu.Unlock()

	res := machine.Start(s)
	logger.Info(ctx, "session", "session.started",
		slog.Int64("chat_id", chatID),
		slog.String("kind", string(kind)),
		slog.String("step", string(s.Step)),
	)
	return res, nil
}

// Advance feeds one user turn to the chat's live session. Terminal results
// evict the session before returning, so a follow-up message from the same
// chat is routed statelessly again.
func (r *Registry) Advance(ctx context.Context, chatID int64, ev Event) (StepResult, error) {
	r.mu.Lock()
	s, ok := r.sessions[chatID]
	r.mu.Unlock()
	if !ok {
		return StepResult{}, ErrNoSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return StepResult{}, ErrNoSession
	}
	s.touch(r.now())

	machine := r.machines[s.Kind]
	res := machine.Advance(s, ev)

	if res.Status != StatusContinue {
		s.ended = true
		r.evict(chatID, s)
	}

	logger.Debug(ctx, "session", "session.advanced",
		slog.Int64("chat_id", chatID),
		slog.String("kind", string(s.Kind)),
		slog.String("step", string(s.Step)),
		slog.String("outcome", statusName(res.Status)),
	)
	return res, nil
}

// End force-terminates the chat's session, if any. Used when a handler
// fails mid-step: the session must not be left stuck.
func (r *Registry) End(ctx context.Context, chatID int64) {
	r.mu.Lock()
	s, ok := r.sessions[chatID]
	if ok {
		delete(r.sessions, chatID)
	}
	r.mu.Unlock()
	if !ok {
		return
	}
	s.mu.Lock()
	s.ended = true
	s.mu.Unlock()
	logger.Info(ctx, "session", "session.ended",
		slog.Int64("chat_id", chatID),
		slog.String("kind", string(s.Kind)),
	)
}

func (r *Registry) evict(chatID int64, s *Session) {
	r.mu.Lock()
	if cur, ok := r.sessions[chatID]; ok && cur == s {
		delete(r.sessions, chatID)
	}
	r.mu.Unlock()
}

// RunJanitor reclaims idle sessions until the context is done. Reclaimed
// sessions end as if cancelled; OnExpire lets the caller notify the chat.
func (r *Registry) RunJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = time.Minute
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *Registry) sweep(ctx context.Context) {
	deadline := r.now().Add(-r.ttl)

	r.mu.Lock()
	snapshot := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		snapshot = append(snapshot, s)
	}
	r.mu.Unlock()

	// Lock order is session then registry, same as Advance.
	for _, s := range snapshot {
		s.mu.Lock()
		idle := !s.ended && s.touchedAt.Before(deadline)
		if idle {
			s.ended = true
		}
		s.mu.Unlock()
		if !idle {
			continue
		}
		r.evict(s.ChatID, s)
		logger.Info(ctx, "session", "session.expired",
			slog.Int64("chat_id", s.ChatID),
			slog.String("kind", string(s.Kind)),
		)
		if r.OnExpire != nil {
			r.OnExpire(s.ChatID, s.Kind)
		}
	}
}

func statusName(s Status) string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	case StatusDeclined:
		return "declined"
	default:
		return "unknown"
	}
}
