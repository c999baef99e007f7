package chat

import (
	"sync"

	"github.com/diogo/chatpanel/internal/api"
	"github.com/diogo/chatpanel/internal/models"
)

// Panel composes the visibility flag, the pending input buffer, the
// conversation store and the reply fetcher.
type Panel struct {
	visibility Visibility
	store      *Store
	fetcher    *Fetcher

	mu    sync.Mutex
	input string
}

// NewPanel creates a closed panel with an empty conversation
func NewPanel(store *Store, fetcher *Fetcher) *Panel {
	return &Panel{
		store:   store,
		fetcher: fetcher,
	}
}

// Toggle opens or closes the panel and returns the new state
func (p *Panel) Toggle() bool {
	return p.visibility.Toggle()
}

// IsOpen reports whether the panel is shown
func (p *Panel) IsOpen() bool {
	return p.visibility.IsOpen()
}

// SetInput replaces the pending input buffer
func (p *Panel) SetInput(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.input = s
}

// Input returns the pending input buffer
func (p *Panel) Input() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.input
}

// Send submits the pending input. On acceptance the buffer is cleared
// before Send returns; blank input leaves both buffer and store untouched.
func (p *Panel) Send() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.fetcher.Submit(p.input) {
		return false
	}
	p.input = ""
	return true
}

// Messages returns the conversation in display order
func (p *Panel) Messages() []models.Message {
	return p.store.Messages()
}

// Pending returns the number of replies still being fetched
func (p *Panel) Pending() int {
	return p.fetcher.InFlight()
}

// Store returns the conversation store
func (p *Panel) Store() *Store {
	return p.store
}

// Fetcher returns the reply fetcher
func (p *Panel) Fetcher() *Fetcher {
	return p.fetcher
}

// New wires a store, a fetcher for client and a panel together
func New(client api.Generator, opts ...FetcherOption) *Panel {
	store := NewStore()
	return NewPanel(store, NewFetcher(client, store, opts...))
}
