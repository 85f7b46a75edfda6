package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/asteroids-classic/internal/audio"
	"github.com/tomz197/asteroids-classic/internal/config"
	"github.com/tomz197/asteroids-classic/internal/draw"
	"github.com/tomz197/asteroids-classic/internal/game"
	"github.com/tomz197/asteroids-classic/internal/loop"
	"github.com/tomz197/asteroids-classic/internal/store"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	log.Info("ssh config", "host", host, "port", port, "hostKeyPath", hostKeyPath)

	// Every session plays its own game; only the high score file is shared.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	games := &gameHandler{
		ctx:    ctx,
		cfg:    cfg,
		scores: store.Open(cfg.HighScorePath),
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		log.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Info("starting ssh server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal("server error", "err", err)
		}
	}()

	<-done
	log.Info("shutting down server")

	// End running games so their sessions can close.
	cancel()
	games.wait(10 * time.Second)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.Fatal("shutdown error", "err", err)
	}
}

// gameHandler runs one game per SSH session.
type gameHandler struct {
	ctx    context.Context
	cfg    config.Config
	scores game.HighScoreStore
	wg     sync.WaitGroup
}

// middleware handles SSH sessions and runs the game.
func (g *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		g.wg.Add(1)
		defer g.wg.Done()

		logger := log.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		logger.Info("new game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(g.ctx)
		defer cancel()
		go func() {
			select {
			case <-sess.Context().Done():
				cancel()
			case <-ctx.Done():
			}
		}()

		err := loop.Run(ctx, bufio.NewReader(sess), sess, loop.Options{
			Config:       g.cfg,
			Store:        g.scores,
			Audio:        audio.Nop{}, // the server has no speaker for remote players
			TermSizeFunc: sizeTracker.getSize,
			Logger:       logger,
		})
		if err != nil {
			logger.Error("game error", "err", err)
		}

		logger.Info("session ended")
		next(sess)
	}
}

// wait blocks until all games have ended or the timeout passes.
func (g *gameHandler) wait(timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		log.Warn("games still running after shutdown timeout")
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
