// Package client drives one terminal connection: it reads keys and mouse
// reports, runs the connection's game session once per frame and renders the
// snapshot with the half-block canvas.
package client

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/orbit-arcade/internal/config"
	"github.com/tomz197/orbit-arcade/internal/draw"
	"github.com/tomz197/orbit-arcade/internal/input"
	"github.com/tomz197/orbit-arcade/internal/logging"
	loopconfig "github.com/tomz197/orbit-arcade/internal/loop/config"
	"github.com/tomz197/orbit-arcade/internal/loop/server"
	"github.com/tomz197/orbit-arcade/internal/loop/session"
	"github.com/tomz197/orbit-arcade/internal/timer"
)

// shutdownDisplay is how long the shutdown notice stays up before the client
// disconnects on its own.
const shutdownDisplay = 5 * time.Second

// View is the world rectangle shown on the canvas.
var View = draw.Rect{
	MinX: loopconfig.ViewMinX,
	MaxX: loopconfig.ViewMaxX,
	MinY: loopconfig.ViewMinY,
	MaxY: loopconfig.ViewMaxY,
}

// Client handles rendering and input for a single connection.
type Client struct {
	registry     server.Registry
	handle       *server.ClientHandle
	sess         *session.Session
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	clock        timer.Clock
	game         config.GameConfig
	log          *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Game         config.GameConfig
	Logger       *log.Logger
	Clock        timer.Clock // Wall clock when nil
	Rand         *rand.Rand  // Time-seeded when nil
}

// NewClient creates a client registered with the given registry.
func NewClient(reg server.Registry, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	clock := opts.Clock
	if clock == nil {
		clock = timer.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	c := &Client{
		registry:     reg,
		handle:       reg.RegisterClient(opts.Username),
		state:        NewClientState(clock.Now()),
		chunkWriter:  draw.NewChunkWriter(w),
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		clock:        clock,
		game:         opts.Game,
		log:          logger.With("client", opts.Username),
	}
	c.sess = session.New(session.Options{
		Clock:   clock,
		Rand:    opts.Rand,
		Logger:  c.log,
		OnEvent: c.onEvent,
	})

	termWidth, termHeight, _ := termSizeFunc()
	width, height, offsetCol, offsetRow := c.fit(termWidth, termHeight)
	c.canvas = draw.NewCanvas(width, height, View)
	c.canvas.SetOffset(offsetCol, offsetRow)
	return c
}

// Run starts the client loop. Blocks until the player quits, goes idle for
// too long, the connection drops or the server shuts down.
func (c *Client) Run() error {
	defer c.close()

	cw := c.chunkWriter
	cw.HideCursor()
	cw.WriteString(input.EnableMouse)
	cw.ClearScreen()
	if err := cw.Flush(); err != nil {
		return err
	}

	frameTime := c.game.FrameTime()
	for c.state.Running {
		frameStart := time.Now()

		c.processInput()
		c.processServerEvents(frameTime)
		c.updateScreen()
		c.applyInput()

		c.sess.Tick()
		c.sess.SnapshotInto(&c.state.Snapshot)
		c.state.agePopups()

		if err := c.drawFrame(); err != nil {
			return err
		}

		if elapsed := time.Since(frameStart); elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}

	cw.WriteString(input.DisableMouse)
	cw.ClearScreen()
	cw.ShowCursor()
	return cw.Flush()
}

func (c *Client) close() {
	c.sess.Close()
	c.registry.UnregisterClient(c.handle.ID)
}

// processInput reads this frame's input and tracks inactivity.
func (c *Client) processInput() {
	in := input.ReadInput(c.inputStream)
	c.state.Input = in
	if in.Closed {
		c.state.Running = false
		return
	}

	now := c.clock.Now()
	idle := now.Sub(c.state.lastInput)
	switch {
	case len(in.Pressed) > 0:
		c.state.lastInput = now
		c.state.isInactive = false
	case c.game.InactivityDisconnect.Duration > 0 && idle > c.game.InactivityDisconnect.Duration:
		c.log.Info("disconnecting inactive client", "idle", idle.Round(time.Second))
		c.state.Running = false
	case c.game.InactivityWarn.Duration > 0 && idle > c.game.InactivityWarn.Duration:
		c.state.isInactive = true
	}

	if in.Quit {
		c.state.Running = false
	}
}

// applyInput turns this frame's input into session commands.
func (c *Client) applyInput() {
	in := c.state.Input
	if c.state.shuttingDown || c.state.isInactive {
		return
	}

	switch c.sess.State() {
	case session.StateIdle:
		if in.Start() {
			c.sess.Start()
		}
	case session.StateGameOver:
		if in.Start() {
			c.sess.Restart()
		}
	case session.StatePlaying:
		for i := 0; i < in.Left; i++ {
			c.sess.MoveLeft()
		}
		for i := 0; i < in.Right; i++ {
			c.sess.MoveRight()
		}
		if in.Pointer >= 0 {
			c.sess.MoveTo(c.canvas.TerminalToWorldX(in.Pointer))
		}
		if in.Fire {
			c.sess.Fire()
		}
	}
}

// processServerEvents handles events from the registry.
func (c *Client) processServerEvents(frameTime time.Duration) {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				c.state.Running = false
				return
			}
			if event.Type == server.EventServerShutdown && !c.state.shuttingDown {
				c.state.shuttingDown = true
				c.state.shutdownTimer = shutdownDisplay
			}
		default:
			if c.state.shuttingDown {
				c.state.shutdownTimer -= frameTime
				if c.state.shutdownTimer <= 0 {
					c.state.Running = false
				}
			}
			return
		}
	}
}

// onEvent receives gameplay events from the session.
func (c *Client) onEvent(ev session.Event) {
	switch ev.Type {
	case session.EventAsteroidHit, session.EventAsteroidDestroyed:
		c.state.popups = append(c.state.popups, popup{
			x:      ev.X,
			y:      ev.Y,
			text:   fmt.Sprintf("+%d", ev.ScoreAdd),
			frames: popupFrames,
		})
		c.registry.ReportScore(c.handle.ID, ev.Score)
	case session.EventGameOver:
		c.state.lastReason = ev.Reason
		c.registry.ReportScore(c.handle.ID, ev.Score)
		c.log.Info("game over", "score", ev.Score, "reason", ev.Reason)
	case session.EventSessionStarted:
		c.state.popups = c.state.popups[:0]
		c.registry.ReportScore(c.handle.ID, 0)
	}
}

// updateScreen handles terminal resize. On actual size changes it clears the
// terminal to remove residue outside the new canvas area.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	width, height, offsetCol, offsetRow := c.fit(termWidth, termHeight)

	if width != c.canvas.TerminalWidth() || height != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.chunkWriter.ClearScreen()
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(width, height)
	c.canvas.SetOffset(offsetCol, offsetRow)
}

func (c *Client) fit(termWidth, termHeight int) (width, height, offsetCol, offsetRow int) {
	maxW, maxH := c.game.MaxTermWidth, c.game.MaxTermHeight
	if maxW <= 0 {
		maxW = termWidth
	}
	if maxH <= 0 {
		maxH = termHeight
	}
	return draw.FitCanvas(termWidth, termHeight, maxW, maxH, View.Width()/View.Height())
}
