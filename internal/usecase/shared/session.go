package shared

import (
	"context"
	"sync"
	"time"

	"booking-flow/internal/domain/booking"
	"booking-flow/internal/pkg/clock"
)

const (
	TaskAutoAdvance  = "auto-advance"
	TaskConfirmation = "confirmation"
)

// Session serialises every access to one wizard. Timer tasks and HTTP
// requests both go through Do/View.
type Session struct {
	id       string
	mu       sync.Mutex
	wizard   *booking.Wizard
	tasks    *TaskGroup
	ctx      context.Context
	cancel   context.CancelFunc
	lastSeen time.Time
	gen      uint64
}

func NewSession(id string, clk clock.Clock) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		id:       id,
		wizard:   booking.NewWizard(),
		tasks:    NewTaskGroup(clk),
		ctx:      ctx,
		cancel:   cancel,
		lastSeen: clk.Now(),
	}
}

func (s *Session) ID() string { return s.id }

// Do runs fn with exclusive access to the wizard and marks the session active.
func (s *Session) Do(now time.Time, fn func(w *booking.Wizard) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return ErrSessionClosed
	}
	s.lastSeen = now
	return fn(s.wizard)
}

// View runs fn with exclusive access without touching the activity time.
func (s *Session) View(fn func(w *booking.Wizard)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.wizard)
}

func (s *Session) Tasks() *TaskGroup { return s.tasks }

// Bump starts a new navigation generation and returns it. Call only inside
// Do or View.
func (s *Session) Bump() uint64 {
	s.gen++
	return s.gen
}

// Generation reports the current navigation generation. Call only inside Do
// or View.
func (s *Session) Generation() uint64 { return s.gen }

// Context is cancelled when the session ends.
func (s *Session) Context() context.Context { return s.ctx }

func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Close cancels the session context and every pending task.
func (s *Session) Close() {
	s.cancel()
	s.tasks.Close()
}

type SessionStore interface {
	Save(s *Session)
	Get(id string) (*Session, bool)
	Delete(id string) (*Session, bool)
	List() []*Session
}
