package chat

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sant0-9/concierge/internal/content"
	"github.com/sant0-9/concierge/internal/intent"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role   Role
	Text   string
	Intent intent.ID
	At     time.Time
}

// Session is one conversation with a visitor
type Session struct {
	svc *Service

	mu       sync.Mutex
	id       string
	locale   content.Locale
	messages []Message
}

func (s *Service) NewSession(locale content.Locale) *Session {
	if !locale.Valid() {
		locale = s.locale
	}
	return &Session{
		svc:    s,
		id:     uuid.NewString(),
		locale: locale,
	}
}

func (ss *Session) ID() string {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.id
}

func (ss *Session) Locale() content.Locale {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.locale
}

func (ss *Session) SetLocale(l content.Locale) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.locale = l.OrDefault()
}

// Ask answers query in the session locale and records both turns.
// Nothing is recorded when the query is rejected.
func (ss *Session) Ask(ctx context.Context, query string) (*Reply, error) {
	locale := ss.Locale()
	reply, err := ss.svc.Ask(ctx, Request{Query: query, Locale: string(locale)})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ss.mu.Lock()
	ss.messages = append(ss.messages,
		Message{Role: RoleUser, Text: query, At: now},
		Message{Role: RoleAssistant, Text: reply.Text, Intent: reply.Intent, At: now},
	)
	ss.mu.Unlock()
	return reply, nil
}

// History returns a copy of the conversation so far
func (ss *Session) History() []Message {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	out := make([]Message, len(ss.messages))
	copy(out, ss.messages)
	return out
}

// Reset starts a new conversation with a fresh id, keeping the locale
func (ss *Session) Reset() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.id = uuid.NewString()
	ss.messages = nil
}
