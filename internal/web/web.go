// Package web serves the game to browsers: a static canvas page plus a
// WebSocket endpoint that runs one game session per connection and streams
// snapshots back every frame.
package web

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/tomz197/orbit-arcade/internal/config"
	"github.com/tomz197/orbit-arcade/internal/loop/server"
)

//go:embed index.html
var indexHTML []byte

// Message is the JSON envelope for everything sent over the socket.
type Message struct {
	Type    string `json:"type"` // "snapshot", "event" or "shutdown"
	Payload any    `json:"payload,omitempty"`
}

// Command is a player action received from the browser.
type Command struct {
	Type string  `json:"type"` // start, restart, move_left, move_right, move_to, fire
	X    float64 `json:"x,omitempty"`
}

// Handler routes the page, the socket and the player list.
type Handler struct {
	registry *server.Server
	game     config.GameConfig
	log      *log.Logger
	upgrader websocket.Upgrader
	mux      *http.ServeMux
}

// NewHandler creates the web host's HTTP handler.
func NewHandler(reg *server.Server, game config.GameConfig, logger *log.Logger) *Handler {
	h := &Handler{
		registry: reg,
		game:     game,
		log:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		mux: http.NewServeMux(),
	}
	h.mux.HandleFunc("GET /{$}", h.handleIndex)
	h.mux.HandleFunc("GET /ws", h.ServeWs)
	h.mux.HandleFunc("GET /api/players", h.handlePlayers)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

// handlePlayers returns the connected players as JSON.
func (h *Handler) handlePlayers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.registry.Players()); err != nil {
		h.log.Warn("encode players", "err", err)
	}
}

// ServeWs upgrades the request and runs a game for the connection until
// either side closes it.
func (h *Handler) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade", "err", err, "remote", r.RemoteAddr)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = r.RemoteAddr
	}
	c := newConn(h, conn, name)
	go c.readPump()
	c.run()
}
