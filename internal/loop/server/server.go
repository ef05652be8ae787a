// Package server tracks the connections hosted by one process so they can be
// counted and told to leave on shutdown. Each connection runs its own game
// session; nothing here touches simulation state.
package server

import (
	"sort"
	"sync"
	"time"
)

// Registry is the interface frame drivers use to announce themselves.
type Registry interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	ReportScore(clientID, score int)
	Count() int
}

// Server owns the set of live client handles.
type Server struct {
	mu           sync.RWMutex
	clients      map[int]*ClientHandle
	nextClientID int
	closing      bool
}

var _ Registry = (*Server)(nil)

// ClientHandle represents one connected client.
type ClientHandle struct {
	ID       int
	Username string
	Joined   time.Time
	EventsCh chan ClientEvent // Events sent to the client

	score int // Guarded by Server.mu
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
)

// PlayerInfo is a read-only view of a connected client.
type PlayerInfo struct {
	ID       int       `json:"id"`
	Username string    `json:"username"`
	Joined   time.Time `json:"joined"`
	Score    int       `json:"score"`
}

// NewServer creates an empty registry.
func NewServer() *Server {
	return &Server{
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
	}
}

// RegisterClient registers a new client and returns its handle. A client
// registering during shutdown is told to leave right away.
func (s *Server) RegisterClient(username string) *ClientHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle := &ClientHandle{
		ID:       s.nextClientID,
		Username: username,
		Joined:   time.Now(),
		EventsCh: make(chan ClientEvent, 4),
	}
	s.nextClientID++
	s.clients[handle.ID] = handle

	if s.closing {
		handle.EventsCh <- ClientEvent{Type: EventServerShutdown}
	}
	return handle
}

// UnregisterClient removes a client and closes its event channel. Unknown ids
// are ignored.
func (s *Server) UnregisterClient(clientID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if handle, ok := s.clients[clientID]; ok {
		close(handle.EventsCh)
		delete(s.clients, clientID)
	}
}

// ReportScore records a client's current score for Players.
func (s *Server) ReportScore(clientID, score int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if handle, ok := s.clients[clientID]; ok {
		handle.score = score
	}
}

// Count returns the number of connected clients.
func (s *Server) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Players lists connected clients by join order.
func (s *Server) Players() []PlayerInfo {
	s.mu.RLock()
	players := make([]PlayerInfo, 0, len(s.clients))
	for _, h := range s.clients {
		players = append(players, PlayerInfo{ID: h.ID, Username: h.Username, Joined: h.Joined, Score: h.score})
	}
	s.mu.RUnlock()

	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players
}

// Shutdown notifies every connected client and waits for them to disconnect,
// up to timeout. It reports whether all clients left in time.
func (s *Server) Shutdown(timeout time.Duration) bool {
	s.mu.Lock()
	s.closing = true
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.Unlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if s.Count() == 0 {
			return true
		}
		select {
		case <-deadline:
			return false
		case <-ticker.C:
		}
	}
}
