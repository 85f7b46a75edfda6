package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroids-classic/internal/audio"
	"github.com/tomz197/asteroids-classic/internal/config"
	"github.com/tomz197/asteroids-classic/internal/loop"
	"github.com/tomz197/asteroids-classic/internal/store"
	"golang.org/x/term"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr so they can be redirected away from the game screen.
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "asteroids"})
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.LogLevel)
		level = log.InfoLevel
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		// stderr shares the game screen; only errors may interrupt it.
		level = max(level, log.ErrorLevel)
	}
	logger.SetLevel(level)

	var player audio.Player = audio.Nop{}
	if cfg.AudioEnabled {
		bp, err := audio.NewBeepPlayer()
		if err != nil {
			logger.Warn("audio unavailable, playing silently", "err", err)
		} else {
			defer bp.Close()
			player = bp
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(ctx, reader, os.Stdout, loop.Options{
		Config: cfg,
		Store:  store.Open(cfg.HighScorePath),
		Audio:  player,
		Logger: logger,
	})
	if err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
