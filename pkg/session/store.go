package session

import (
	"context"
	"sync"
	"time"
)

// Store keeps per-sender sessions with a TTL measured from last activity.
// Expiry is lazy: an expired session is replaced by a fresh one on next
// access, nothing sweeps in the background.
//
// Update is the atomic read-modify-write primitive: two near-simultaneous
// messages from the same sender must not lose a history append or an order
// transition. Different senders never contend with each other.
type Store interface {
	Get(ctx context.Context, senderID string) (*Session, error)
	Update(ctx context.Context, senderID string, fn func(*Session)) error
	Delete(ctx context.Context, senderID string) error
}

// Memory is the in-process Store. Each sender has its own entry lock, so
// concurrent updates for distinct senders proceed independently.
type Memory struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]*memoryEntry
}

type memoryEntry struct {
	mu   sync.Mutex
	sess *Session
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*memoryEntry),
	}
}

// Get returns a copy of the sender's session, or nil if absent or expired.
func (m *Memory) Get(ctx context.Context, senderID string) (*Session, error) {
	m.mu.Lock()
	e, ok := m.entries[senderID]
	m.mu.Unlock()
	if !ok {
		return nil, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess == nil || m.expired(e.sess) {
		return nil, nil
	}
	return e.sess.clone(), nil
}

// Update applies fn to the sender's session under that sender's lock,
// creating a fresh session first when none exists or the old one expired.
func (m *Memory) Update(ctx context.Context, senderID string, fn func(*Session)) error {
	m.mu.Lock()
	e, ok := m.entries[senderID]
	if !ok {
		e = &memoryEntry{}
		m.entries[senderID] = e
	}
	m.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess == nil || m.expired(e.sess) {
		e.sess = &Session{SenderID: senderID}
	}
	fn(e.sess)
	e.sess.LastActivity = m.now()
	return nil
}

func (m *Memory) Delete(ctx context.Context, senderID string) error {
	m.mu.Lock()
	delete(m.entries, senderID)
	m.mu.Unlock()
	return nil
}

func (m *Memory) expired(s *Session) bool {
	return m.ttl > 0 && m.now().Sub(s.LastActivity) > m.ttl
}
