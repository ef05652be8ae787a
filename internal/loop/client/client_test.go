package client

import (
	"bufio"
	"bytes"
	"io"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/orbit-arcade/internal/config"
	"github.com/tomz197/orbit-arcade/internal/input"
	loopconfig "github.com/tomz197/orbit-arcade/internal/loop/config"
	"github.com/tomz197/orbit-arcade/internal/loop/server"
	"github.com/tomz197/orbit-arcade/internal/loop/session"
	"github.com/tomz197/orbit-arcade/internal/timer"
)

// syncBuffer is a bytes.Buffer safe to read while the client writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testGameConfig() config.GameConfig {
	return config.GameConfig{
		FrameRate:            200,
		MaxTermWidth:         120,
		MaxTermHeight:        40,
		InactivityWarn:       config.Duration{Duration: 90 * time.Second},
		InactivityDisconnect: config.Duration{Duration: 120 * time.Second},
	}
}

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

func newTestClient(t *testing.T, reg server.Registry, clock timer.Clock) (*Client, *io.PipeWriter) {
	t.Helper()
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	c := NewClient(reg, bufio.NewReader(pr), io.Discard, ClientOptions{
		TermSizeFunc: fixedSize(100, 40),
		Username:     "tester",
		Game:         testGameConfig(),
		Clock:        clock,
		Rand:         rand.New(rand.NewSource(1)),
	})
	return c, pw
}

func TestRunStartPlayQuit(t *testing.T) {
	reg := server.NewServer()
	pr, pw := io.Pipe()
	var out syncBuffer

	c := NewClient(reg, bufio.NewReader(pr), &out, ClientOptions{
		TermSizeFunc: fixedSize(100, 40),
		Username:     "pilot",
		Game:         testGameConfig(),
	})
	require.Equal(t, 1, reg.Count())

	done := make(chan error, 1)
	go func() { done <- c.Run() }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Controls")
	}, 2*time.Second, 5*time.Millisecond, "start screen")

	_, err := pw.Write([]byte(" "))
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Score: ")
	}, 2*time.Second, 5*time.Millisecond, "playing HUD")

	_, err = pw.Write([]byte("q"))
	require.NoError(t, err)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("client did not quit")
	}
	assert.Zero(t, reg.Count(), "client unregistered")
	assert.True(t, strings.HasSuffix(out.String(), "\033[?25h"), "cursor restored")
	pw.Close()
}

func TestInactivity(t *testing.T) {
	clock := timer.NewManualClock(time.Unix(1_700_000_000, 0))
	c, _ := newTestClient(t, server.NewServer(), clock)

	clock.Add(91 * time.Second)
	c.processInput()
	assert.True(t, c.state.isInactive)
	assert.True(t, c.state.Running)

	clock.Add(30 * time.Second)
	c.processInput()
	assert.False(t, c.state.Running)
}

func TestApplyInputPointer(t *testing.T) {
	c, _ := newTestClient(t, server.NewServer(), timer.NewManualClock(time.Unix(0, 0)))

	c.state.Input = input.Input{Fire: true, Pointer: -1}
	c.applyInput()
	require.Equal(t, session.StatePlaying, c.sess.State(), "space starts the game")

	col := c.canvas.OffsetCol() + c.canvas.TerminalWidth()/4
	c.state.Input = input.Input{Pointer: col}
	c.applyInput()
	snap := c.sess.Snapshot()
	assert.InDelta(t, c.canvas.TerminalToWorldX(col), snap.Ship.X, 1e-9)

	c.state.Input = input.Input{Right: 40, Pointer: -1}
	c.applyInput()
	assert.Equal(t, loopconfig.ShipMaxX, c.sess.Snapshot().Ship.X)
}

func TestShutdownCountdown(t *testing.T) {
	reg := server.NewServer()
	c, _ := newTestClient(t, reg, timer.NewManualClock(time.Unix(0, 0)))

	c.handle.EventsCh <- server.ClientEvent{Type: server.EventServerShutdown}
	c.processServerEvents(time.Second)
	assert.True(t, c.state.shuttingDown)
	assert.True(t, c.state.Running)

	c.processServerEvents(shutdownDisplay)
	assert.False(t, c.state.Running)
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0:00", formatElapsed(0))
	assert.Equal(t, "1:05", formatElapsed(65))
}
