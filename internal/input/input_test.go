package input

import (
	"bufio"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroids-classic/internal/config"
	"github.com/tomz197/asteroids-classic/internal/game"
)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Input
	}{
		{"letters", "aw ", Input{Left: true, Thrust: true, Fire: true}},
		{"vim keys", "lI", Input{Right: true, Thrust: true}},
		{"arrows", "\x1b[A\x1b[D", Input{Thrust: true, Left: true}},
		{"right arrow", "\x1b[C", Input{Right: true}},
		{"down arrow ignored", "\x1b[B", Input{}},
		{"quit", "q", Input{Quit: true}},
		{"ctrl-c", "\x03", Input{Quit: true}},
		{"unknown", "zx9", Input{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Now()
			s := &Stream{}
			parseBytes(&s.state, []byte(tt.in), now)
			if got := s.read(now); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestKeysReleaseAfterHoldWindow(t *testing.T) {
	now := time.Now()
	s := &Stream{}
	parseBytes(&s.state, []byte("a"), now)

	if in := s.read(now.Add(keyHoldDuration / 2)); !in.Left {
		t.Error("key released inside the hold window")
	}
	if in := s.read(now.Add(keyHoldDuration)); in.Left {
		t.Error("key still held after the hold window")
	}
}

func TestStreamQuitsWhenReaderEnds(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("d")))

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if in := ReadInput(s); in.Quit {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("stream never reported Quit after EOF")
}

func TestTrackerEdges(t *testing.T) {
	var tr Tracker

	got := tr.Update(Input{Left: true, Fire: true})
	want := []Intent{{game.ActionRotateLeft, true}, {game.ActionFire, true}}
	if !equalIntents(got, want) {
		t.Fatalf("press: got %v, want %v", got, want)
	}

	if got := tr.Update(Input{Left: true, Fire: true}); len(got) != 0 {
		t.Fatalf("hold: got %v, want nothing", got)
	}

	got = tr.Update(Input{Right: true})
	want = []Intent{{game.ActionRotateLeft, false}, {game.ActionFire, false}, {game.ActionRotateRight, true}}
	if !equalIntents(got, want) {
		t.Fatalf("switch: got %v, want %v", got, want)
	}
}

func TestTrackerDrivesSession(t *testing.T) {
	s := game.NewSession(config.Default(), game.Options{Logger: log.New(io.Discard)})
	s.Asteroids = nil
	var tr Tracker

	apply := func(in Input) {
		for _, it := range tr.Update(in) {
			if it.Down {
				s.KeyDown(it.Action)
			} else {
				s.KeyUp(it.Action)
			}
		}
	}

	apply(Input{Left: true})
	apply(Input{Right: true})
	if s.Ship.Rotation >= 0 {
		t.Errorf("rotation = %v, want clockwise after switching keys", s.Ship.Rotation)
	}
	apply(Input{})
	if s.Ship.Rotation != 0 {
		t.Errorf("rotation = %v after release, want 0", s.Ship.Rotation)
	}
}

func equalIntents(a, b []Intent) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
