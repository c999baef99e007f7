package chat

import "sync"

// Visibility is the open/closed flag of the panel. It starts closed.
type Visibility struct {
	mu   sync.RWMutex
	open bool
}

// Toggle flips the flag and returns the new state
func (v *Visibility) Toggle() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.open = !v.open
	return v.open
}

// IsOpen reports whether the panel is shown
func (v *Visibility) IsOpen() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.open
}
