package socket

import (
	"sync"

	"flare_server/services"
)

// Conn is the slice of a socket connection the registry needs: the emit
// surface the notifier uses plus the connection id for safe removal.
type Conn interface {
	services.Connection
	ID() string
}

// Registry tracks the live socket connection per user. It implements
// services.ConnectionRegistry for in-process delivery; one connection per
// user, a newer registration replaces the previous one.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]Conn
}

// NewRegistry creates an empty connection registry.
func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]Conn)}
}

// Register associates a user with a live connection.
func (reg *Registry) Register(userID string, c Conn) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.conns[userID] = c
}

// Unregister removes the user's connection, but only if it is still the
// one identified by connID. A disconnect arriving after the user already
// reconnected must not evict the fresh connection.
func (reg *Registry) Unregister(userID, connID string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if current, ok := reg.conns[userID]; ok && current.ID() == connID {
		delete(reg.conns, userID)
	}
}

// Lookup returns the user's live connection, if any.
func (reg *Registry) Lookup(userID string) (services.Connection, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	c, ok := reg.conns[userID]
	if !ok {
		return nil, false
	}
	return c, true
}
