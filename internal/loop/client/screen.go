package client

import (
	"fmt"
	"math"
	"time"

	"github.com/tomz197/orbit-arcade/internal/draw"
	"github.com/tomz197/orbit-arcade/internal/loop/session"
)

// asteroidRadius is the drawn radius of a full-health asteroid, just inside
// its hit range.
const asteroidRadius = 0.45

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On screen transitions, do a full terminal clear so UI elements from
	// the previous screen don't persist.
	if c.state.screenChanged() {
		c.chunkWriter.ClearScreen()
		c.canvas.ForceRedraw()
	}

	c.canvas.Clear()
	if c.showWorld() {
		c.drawWorld(&c.state.Snapshot)
	}

	c.canvas.Render(c.chunkWriter)
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI(&c.state.Snapshot)

	return c.chunkWriter.Flush()
}

func (c *Client) showWorld() bool {
	return !c.state.shuttingDown && !c.state.isInactive && c.state.Snapshot.State != session.StateIdle
}

// drawWorld paints the snapshot's entities onto the canvas.
func (c *Client) drawWorld(snap *session.Snapshot) {
	cv := c.canvas

	for _, a := range snap.Asteroids {
		cv.Asteroid(a.X, a.Y, asteroidRadius*a.Scale, float64(a.ID), draw.AsteroidColor(a.Color))
	}
	for _, b := range snap.Bullets {
		cv.Bullet(b.X, b.Y, draw.ColorBullet)
	}
	if snap.State == session.StatePlaying {
		cv.Ship(snap.Ship.RenderX, snap.Ship.Y, draw.ColorShip)
	}
	for _, e := range snap.Explosions {
		cv.Explosion(e.X, e.Y, e.Progress)
	}
}

// drawUI draws the text overlay for the current screen.
func (c *Client) drawUI(snap *session.Snapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := c.canvas.OffsetCol() + termWidth/2
	centerY := c.canvas.OffsetRow() + termHeight/2

	if c.state.shuttingDown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch snap.State {
	case session.StateIdle:
		c.drawStartScreen(centerX, centerY)
	case session.StatePlaying:
		c.drawPlayingHUD(snap)
		c.drawPopups()
	case session.StateGameOver:
		c.drawGameOverScreen(centerX, centerY, snap)
	}
}

// writeCentered writes text centred on col and marks it for repaint.
func (c *Client) writeCentered(col, row int, text string) {
	start := col - len(text)/2
	c.chunkWriter.WriteAt(start, row, text)
	c.canvas.MarkTextDirty(start, row, len(text))
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int) {
	titleArt := []string{
		`  ___  ___ ___ ___ _____     _   ___  ___   _   ___  ___  `,
		` / _ \| _ \ _ )_ _|_   _|   /_\ | _ \/ __| /_\ |   \| __| `,
		`| (_) |   / _ \| |  | |    / _ \|   / (__ / _ \| |) | _|  `,
		` \___/|_|_\___/___| |_|   /_/ \_\_|_\\___/_/ \_\___/|___| `,
	}

	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}

	cw := c.chunkWriter
	titleStartY := centerY - 7
	for i, line := range titleArt {
		cw.WriteColorAt(centerX-titleWidth/2, titleStartY+i, draw.ColorShip, line)
		c.canvas.MarkTextDirty(centerX-titleWidth/2, titleStartY+i, titleWidth)
	}

	c.writeCentered(centerX, titleStartY+len(titleArt)+1, "~ Hold the line. Nothing gets past. ~")

	controlsY := titleStartY + len(titleArt) + 3
	c.writeCentered(centerX, controlsY, "Controls")
	controlLines := []string{
		"A D / < >  . . . .  Move",
		"Mouse  . . . . . .  Aim ",
		"SPACE / W  . . . . Shoot",
		"Q  . . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		c.writeCentered(centerX, controlsY+1+i, line)
	}

	if time.Now().UnixMilli()/600%2 == 0 {
		c.writeCentered(centerX, controlsY+len(controlLines)+2, ">>  Press SPACE to Start  <<")
	} else {
		c.writeCentered(centerX, controlsY+len(controlLines)+2, "                            ")
	}
}

// drawPlayingHUD draws the in-game HUD. Fields use fixed-width formatting so
// shrinking values don't leave residual characters on screen.
func (c *Client) drawPlayingHUD(snap *session.Snapshot) {
	left := c.canvas.OffsetCol() + 2
	right := c.canvas.OffsetCol() + c.canvas.TerminalWidth() - 1
	top := c.canvas.OffsetRow() + 1
	bottom := c.canvas.OffsetRow() + c.canvas.TerminalHeight()

	scoreText := fmt.Sprintf("Score: %-8d", snap.Score)
	c.chunkWriter.WriteColorAt(left, top, draw.ColorText, scoreText)
	c.canvas.MarkTextDirty(left, top, len(scoreText))

	timeText := fmt.Sprintf("Time: %-6s", formatElapsed(snap.Elapsed))
	c.chunkWriter.WriteColorAt(right-len(timeText), top, draw.ColorText, timeText)
	c.canvas.MarkTextDirty(right-len(timeText), top, len(timeText))

	pilotsText := fmt.Sprintf("Pilots: %-4d", c.registry.Count())
	c.chunkWriter.WriteColorAt(right-len(pilotsText), bottom, draw.ColorDim, pilotsText)
	c.canvas.MarkTextDirty(right-len(pilotsText), bottom, len(pilotsText))
}

// drawPopups draws score labels where asteroids were hit.
func (c *Client) drawPopups() {
	for _, p := range c.state.popups {
		col, row := c.canvas.WorldToTerminal(p.x, p.y)
		col -= len(p.text) / 2
		if !c.insideCanvas(col, row, len(p.text)) {
			continue
		}
		c.chunkWriter.WriteColorAt(col, row, draw.ColorFlash, p.text)
		c.canvas.MarkTextDirty(col, row, len(p.text))
	}
}

func (c *Client) insideCanvas(col, row, n int) bool {
	minCol := c.canvas.OffsetCol() + 1
	minRow := c.canvas.OffsetRow() + 1
	return col >= minCol && col+n-1 < minCol+c.canvas.TerminalWidth() &&
		row >= minRow && row < minRow+c.canvas.TerminalHeight()
}

// drawGameOverScreen draws the game over screen over the fading explosion.
func (c *Client) drawGameOverScreen(centerX, centerY int, snap *session.Snapshot) {
	titleArt := []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
	}

	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}

	cw := c.chunkWriter
	titleStartY := centerY - 6
	for i, line := range titleArt {
		cw.WriteColorAt(centerX-titleWidth/2, titleStartY+i, draw.ColorWarning, line)
		c.canvas.MarkTextDirty(centerX-titleWidth/2, titleStartY+i, titleWidth)
	}

	y := titleStartY + len(titleArt) + 1
	if reason := reasonText(c.state.lastReason); reason != "" {
		c.writeCentered(centerX, y, reason)
	}
	c.writeCentered(centerX, y+2, fmt.Sprintf("Score: %d", snap.Score))
	c.writeCentered(centerX, y+3, fmt.Sprintf("Survived %s", formatElapsed(snap.Elapsed)))

	prompt := ">>  Press SPACE to Restart  <<"
	if time.Now().UnixMilli()/600%2 != 0 {
		prompt = "                              "
	}
	c.writeCentered(centerX, y+5, prompt)
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-2, "INACTIVITY WARNING")

	left := c.game.InactivityDisconnect.Duration - c.clock.Now().Sub(c.state.lastInput)
	seconds := max(int(math.Ceil(left.Seconds())), 0)
	c.writeCentered(centerX, centerY, fmt.Sprintf("You will be disconnected in %3d seconds.", seconds))
	c.writeCentered(centerX, centerY+2, "Press any key to continue")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	c.writeCentered(centerX, centerY-1, "The server is restarting for maintenance.")
	c.writeCentered(centerX, centerY, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer.Seconds()) + 1
	c.writeCentered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	c.writeCentered(centerX, centerY+4, "Press Q to disconnect now")
}

func reasonText(r session.GameOverReason) string {
	switch r {
	case session.ReasonShipCollision:
		return "An asteroid hit your ship."
	case session.ReasonPassThrough:
		return "An asteroid slipped past you."
	default:
		return ""
	}
}

// formatElapsed renders whole seconds as m:ss.
func formatElapsed(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
