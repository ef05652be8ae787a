package web

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/tomz197/orbit-arcade/internal/loop/server"
	"github.com/tomz197/orbit-arcade/internal/loop/session"
)

const (
	writeWait      = 2 * time.Second
	maxMessageSize = 512
)

// conn is one browser connection. The run goroutine owns the session and is
// the only writer to the socket; readPump only decodes commands.
type conn struct {
	h      *Handler
	ws     *websocket.Conn
	handle *server.ClientHandle
	sess   *session.Session
	log    *log.Logger

	cmds   chan Command
	done   chan struct{} // Closed when readPump exits
	events []session.Event
	snap   session.Snapshot
}

func newConn(h *Handler, ws *websocket.Conn, name string) *conn {
	c := &conn{
		h:    h,
		ws:   ws,
		log:  h.log.With("client", name),
		cmds: make(chan Command, 64),
		done: make(chan struct{}),
	}
	c.handle = h.registry.RegisterClient(name)
	c.sess = session.New(session.Options{
		Logger:  c.log,
		OnEvent: func(ev session.Event) { c.events = append(c.events, ev) },
	})
	return c
}

// readPump decodes commands until the connection fails.
func (c *conn) readPump() {
	defer close(c.done)
	c.ws.SetReadLimit(maxMessageSize)

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Debug("websocket read", "err", err)
			}
			return
		}
		var cmd Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			c.log.Debug("bad command", "err", err)
			continue
		}
		select {
		case c.cmds <- cmd:
		default:
			// Game loop is behind; drop input rather than block the socket.
		}
	}
}

// run is the frame loop of the connection.
func (c *conn) run() {
	defer func() {
		c.sess.Close()
		c.h.registry.UnregisterClient(c.handle.ID)
		c.ws.Close()
		c.log.Debug("websocket closed")
	}()

	ticker := time.NewTicker(c.h.game.FrameTime())
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case ev, ok := <-c.handle.EventsCh:
			if !ok || ev.Type == server.EventServerShutdown {
				c.write(Message{Type: "shutdown"})
				c.ws.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(writeWait))
				return
			}
		case <-ticker.C:
			if err := c.frame(); err != nil {
				if !errors.Is(err, websocket.ErrCloseSent) {
					c.log.Debug("websocket write", "err", err)
				}
				return
			}
		}
	}
}

// frame applies queued commands, advances the session and sends the result.
func (c *conn) frame() error {
	c.drainCommands()
	c.sess.Tick()
	c.sess.SnapshotInto(&c.snap)

	for _, ev := range c.events {
		if err := c.write(Message{Type: "event", Payload: ev}); err != nil {
			return err
		}
		// A new game reports its zero score.
		c.h.registry.ReportScore(c.handle.ID, ev.Score)
	}
	c.events = c.events[:0]

	return c.write(Message{Type: "snapshot", Payload: &c.snap})
}

func (c *conn) drainCommands() {
	for {
		select {
		case cmd := <-c.cmds:
			c.apply(cmd)
		default:
			return
		}
	}
}

func (c *conn) apply(cmd Command) {
	switch cmd.Type {
	case "start":
		c.sess.Start()
	case "restart":
		c.sess.Restart()
	case "move_left":
		c.sess.MoveLeft()
	case "move_right":
		c.sess.MoveRight()
	case "move_to":
		c.sess.MoveTo(cmd.X)
	case "fire":
		c.sess.Fire()
	default:
		c.log.Debug("unknown command", "type", cmd.Type)
	}
}

func (c *conn) write(msg Message) error {
	c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteJSON(msg)
}
