// Package chat holds the chat panel state: the visibility flag, the
// append-only conversation store, the pending input buffer and the reply
// fetcher that feeds the store.
package chat

import (
	"sync"

	"github.com/diogo/chatpanel/internal/models"
)

// Listener is called after each append, in append order.
type Listener func(msg models.Message)

// Store is an ordered, append-only sequence of messages. It is safe for
// concurrent use; fetch goroutines append to it while the UI reads it.
type Store struct {
	mu        sync.RWMutex
	messages  []models.Message
	listeners []Listener

	// notifyMu serializes listener calls so they observe append order
	notifyMu sync.Mutex
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		messages: []models.Message{},
	}
}

// Append adds msg to the end of the sequence and notifies listeners.
func (s *Store) Append(msg models.Message) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(msg)
	}
}

// Messages returns a copy of the full ordered sequence
func (s *Store) Messages() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Last returns the newest message from sender, if any.
func (s *Store) Last(sender models.Sender) (models.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].Sender == sender {
			return s.messages[i], true
		}
	}
	return models.Message{}, false
}

// Subscribe registers fn to be called after every subsequent append.
// Listeners run on the appending goroutine and must not block for long.
func (s *Store) Subscribe(fn Listener) {
	if fn == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// copy-on-write so Append can iterate without holding mu
	next := make([]Listener, len(s.listeners), len(s.listeners)+1)
	copy(next, s.listeners)
	s.listeners = append(next, fn)
}
