// Package loop runs a single-player game on a local terminal.
package loop

import (
	"bufio"
	"io"

	"github.com/charmbracelet/log"
	"github.com/tomz197/orbit-arcade/internal/config"
	"github.com/tomz197/orbit-arcade/internal/draw"
	"github.com/tomz197/orbit-arcade/internal/loop/client"
	"github.com/tomz197/orbit-arcade/internal/loop/server"
)

// Run plays one game session on r and w until the player quits. The local
// host is a registry of one, so the frame driver is the same one SSH
// connections use.
func Run(r *bufio.Reader, w io.Writer, game config.GameConfig, logger *log.Logger) error {
	reg := server.NewServer()
	c := client.NewClient(reg, r, w, client.ClientOptions{
		TermSizeFunc: draw.DefaultTermSizeFunc,
		Username:     "local",
		Game:         game,
		Logger:       logger,
	})
	return c.Run()
}
