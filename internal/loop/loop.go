// Package loop drives a game session at a fixed tick rate:
// input, then simulation, then audio, then drawing.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroids-classic/internal/audio"
	"github.com/tomz197/asteroids-classic/internal/config"
	"github.com/tomz197/asteroids-classic/internal/draw"
	"github.com/tomz197/asteroids-classic/internal/game"
	"github.com/tomz197/asteroids-classic/internal/input"
)

// Renderer draws a frame of the game.
type Renderer interface {
	Render(f game.Frame) error
}

// Options configures Run. Zero values fall back to defaults.
type Options struct {
	Config       config.Config
	Store        game.HighScoreStore
	Audio        audio.Player
	Renderer     Renderer // nil draws to w with a TerminalRenderer
	TermSizeFunc draw.TermSizeFunc
	Rand         *rand.Rand
	Logger       *log.Logger
}

// driver holds everything one running game needs between ticks.
type driver struct {
	session  *game.Session
	tracker  input.Tracker
	director *audio.Director
	renderer Renderer
}

// Run plays one game session until the player quits, the input ends or
// ctx is cancelled. It blocks for the session's lifetime.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	cfg := opts.Config
	if cfg.TickRate == 0 {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	d := &driver{
		session: game.NewSession(cfg, game.Options{
			Store:  opts.Store,
			Rand:   opts.Rand,
			Logger: logger,
		}),
		director: audio.NewDirector(opts.Audio, cfg.TickRate),
		renderer: opts.Renderer,
	}
	if d.renderer == nil {
		tr := draw.NewTerminalRenderer(w, opts.TermSizeFunc, cfg.Width, cfg.Height)
		defer tr.Close()
		d.renderer = tr
	}

	stream := input.StartStream(r)
	frameTime := time.Second / time.Duration(cfg.TickRate)
	logger.Debug("session started", "tick", frameTime, "highscore", d.session.HighScore)

	for {
		frameStart := time.Now()

		select {
		case <-ctx.Done():
			logger.Debug("session cancelled", "score", d.session.Score)
			return nil
		default:
		}

		quit, err := d.frame(input.ReadInput(stream))
		if err != nil {
			return err
		}
		if quit {
			logger.Debug("session ended", "score", d.session.Score, "level", d.session.Level+1)
			return nil
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}
}

// frame runs one tick: apply input edges, advance the game, play sounds
// and draw.
func (d *driver) frame(in input.Input) (quit bool, err error) {
	if in.Quit {
		return true, nil
	}

	for _, it := range d.tracker.Update(in) {
		if it.Down {
			d.session.KeyDown(it.Action)
		} else {
			d.session.KeyUp(it.Action)
		}
	}

	events := d.session.Tick()
	d.director.Update(events)

	if err := d.renderer.Render(d.session.Frame()); err != nil {
		return false, fmt.Errorf("render: %w", err)
	}
	return false, nil
}
