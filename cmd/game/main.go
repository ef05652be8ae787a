package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/tomz197/orbit-arcade/internal/config"
	"github.com/tomz197/orbit-arcade/internal/logging"
	"github.com/tomz197/orbit-arcade/internal/loop"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("ORBIT_CONFIG"))
	if err != nil {
		return err
	}

	// Stdout belongs to the renderer, so logs go to a file if asked for.
	var logOut io.Writer = io.Discard
	if path := os.Getenv("ORBIT_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := logging.New(logOut, cfg.Log, "game")
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(reader, os.Stdout, cfg.Game, logger)
}
