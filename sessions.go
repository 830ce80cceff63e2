package main

import (
	"context"
	"log/slog"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const inboxSize = 32

// Session is the per-user conversation state. All event handling for one
// user happens on that user's single mailbox goroutine, so events from the
// same user are processed strictly in arrival order while different users
// interleave freely.
type Session struct {
	UserID int64
	ChatID int64

	mu                 sync.Mutex
	membershipVerified bool
	greeted            bool
	currentMenu        string
	menuMsgID          int
	lastSeen           time.Time
	cancelReveal       context.CancelFunc
	closed             bool

	inbox chan tgbotapi.Update
}

func newSession(userID, chatID int64) *Session {
	return &Session{
		UserID:   userID,
		ChatID:   chatID,
		lastSeen: time.Now(),
		inbox:    make(chan tgbotapi.Update, inboxSize),
	}
}

// Enqueue hands an event to the session's mailbox. A full mailbox drops
// the event rather than blocking the shared update loop.
func (s *Session) Enqueue(u tgbotapi.Update) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.inbox <- u:
		return true
	default:
		slog.Warn("Session inbox full, dropping event", "user", s.UserID)
		return false
	}
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.inbox)
}

func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// MarkGreeted flips the greeted flag, reporting whether this call was the
// first. The one-time greeting sequence keys off it.
func (s *Session) MarkGreeted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.greeted {
		return false
	}
	s.greeted = true
	return true
}

func (s *Session) Verified() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.membershipVerified
}

func (s *Session) SetVerified(v bool) {
	s.mu.Lock()
	s.membershipVerified = v
	s.mu.Unlock()
}

// Menu returns the current menu id ("" until the first render) and the
// message id of the menu surface being edited in place.
func (s *Session) Menu() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentMenu, s.menuMsgID
}

func (s *Session) SetMenu(menuID string, msgID int) {
	s.mu.Lock()
	s.currentMenu = menuID
	if msgID != 0 {
		s.menuMsgID = msgID
	}
	s.mu.Unlock()
}

// SetRevealCancel stores the cancel handle of an in-flight greeting reveal.
func (s *Session) SetRevealCancel(cancel context.CancelFunc) {
	s.mu.Lock()
	s.cancelReveal = cancel
	s.mu.Unlock()
}

// CancelReveal aborts any in-flight reveal animation. Called from the
// update loop when a newer event for this user arrives.
func (s *Session) CancelReveal() {
	s.mu.Lock()
	cancel := s.cancelReveal
	s.cancelReveal = nil
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// SessionStore holds every live session keyed by user id. Insertion is
// guarded so two near-simultaneous first events from the same user resolve
// to one session.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*Session)}
}

// GetOrCreate returns the user's session, creating it lazily. The second
// return value reports whether this call created it.
func (st *SessionStore) GetOrCreate(userID, chatID int64) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[userID]
	st.mu.RUnlock()
	if ok {
		return s, false
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[userID]; ok {
		return s, false
	}
	s = newSession(userID, chatID)
	st.sessions[userID] = s
	return s, true
}

func (st *SessionStore) Get(userID int64) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[userID]
	return s, ok
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// EvictIdle removes sessions idle for longer than maxIdle, stopping their
// mailbox goroutines. onEvict runs for each removed session.
func (st *SessionStore) EvictIdle(maxIdle time.Duration, onEvict func(*Session)) int {
	cutoff := time.Now().Add(-maxIdle)

	st.mu.Lock()
	var victims []*Session
	for id, s := range st.sessions {
		if s.IdleSince().Before(cutoff) {
			victims = append(victims, s)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	for _, s := range victims {
		s.close()
		if onEvict != nil {
			onEvict(s)
		}
	}
	return len(victims)
}
