package loop

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroids-classic/internal/audio"
	"github.com/tomz197/asteroids-classic/internal/config"
	"github.com/tomz197/asteroids-classic/internal/game"
	"github.com/tomz197/asteroids-classic/internal/input"
	"github.com/tomz197/asteroids-classic/internal/store"
)

type frameRecorder struct {
	frames []game.Frame
	err    error
}

func (f *frameRecorder) Render(fr game.Frame) error {
	f.frames = append(f.frames, fr)
	return f.err
}

func newDriver(t *testing.T, r Renderer) *driver {
	t.Helper()
	cfg := config.Default()
	return &driver{
		session: game.NewSession(cfg, game.Options{
			Rand:   rand.New(rand.NewPCG(5, 6)),
			Logger: log.New(io.Discard),
		}),
		director: audio.NewDirector(audio.Nop{}, cfg.TickRate),
		renderer: r,
	}
}

func TestFrameAppliesInputAndTicks(t *testing.T) {
	rec := &frameRecorder{}
	d := newDriver(t, rec)
	d.session.Asteroids = nil

	if quit, err := d.frame(input.Input{Fire: true, Thrust: true}); quit || err != nil {
		t.Fatalf("frame() = %v, %v", quit, err)
	}
	if len(rec.frames) != 1 {
		t.Fatalf("%d frames rendered, want 1", len(rec.frames))
	}
	f := rec.frames[0]
	if f.Tick != 1 || len(f.Lasers) != 1 || !f.Ship.Thrusting {
		t.Errorf("frame = tick %d, %d lasers, thrusting %v", f.Tick, len(f.Lasers), f.Ship.Thrusting)
	}

	d.frame(input.Input{Fire: true})
	if n := len(d.session.Ship.Lasers); n != 1 {
		t.Errorf("holding fire shot %d lasers, want 1", n)
	}
	if d.session.Ship.Thrusting {
		t.Error("thrust still on after release")
	}
}

func TestFrameQuit(t *testing.T) {
	rec := &frameRecorder{}
	d := newDriver(t, rec)

	quit, err := d.frame(input.Input{Quit: true})
	if !quit || err != nil {
		t.Fatalf("frame() = %v, %v, want quit", quit, err)
	}
	if len(rec.frames) != 0 {
		t.Error("quit frame was rendered")
	}
}

func TestFrameRenderError(t *testing.T) {
	errBroken := errors.New("broken pipe")
	d := newDriver(t, &frameRecorder{err: errBroken})

	if _, err := d.frame(input.Input{}); !errors.Is(err, errBroken) {
		t.Errorf("err = %v, want %v", err, errBroken)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	rec := &frameRecorder{}
	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), bufio.NewReader(strings.NewReader("q")), io.Discard, Options{
			Renderer: rec,
			Logger:   log.New(io.Discard),
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on q")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, bufio.NewReader(pr), io.Discard, Options{
			Renderer: &frameRecorder{},
			Logger:   log.New(io.Discard),
		})
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}

func TestRunDrawsToTerminal(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Default()
	err := Run(context.Background(), bufio.NewReader(strings.NewReader("")), &out, Options{
		Config:       cfg,
		Store:        &store.MemoryStore{},
		TermSizeFunc: func() (int, int, error) { return 100, 40, nil },
		Logger:       log.New(io.Discard),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "\033[?25h") {
		t.Error("terminal cursor not restored")
	}
}
