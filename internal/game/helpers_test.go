package game

import (
	"errors"
	"io"
	"math/rand/v2"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroids-classic/internal/config"
	"github.com/tomz197/asteroids-classic/internal/object"
)

type memStore struct {
	score   int
	loadErr error
	saveErr error
	saves   []int
}

func (m *memStore) LoadHighScore() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.score, nil
}

func (m *memStore) SaveHighScore(score int) error {
	m.saves = append(m.saves, score)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.score = score
	return nil
}

var errDisk = errors.New("disk on fire")

func newTestSession(t *testing.T, mutate ...func(*config.Config)) (*Session, *memStore) {
	t.Helper()
	cfg := config.Default()
	for _, m := range mutate {
		m(&cfg)
	}
	store := &memStore{}
	s := NewSession(cfg, Options{
		Store:  store,
		Rand:   rand.New(rand.NewPCG(7, 11)),
		Logger: log.New(io.Discard),
	})
	return s, store
}

// still creates an asteroid of the given tier that does not move.
func still(s *Session, x, y float64, size object.AsteroidSize) object.Asteroid {
	a := s.factory.NewAsteroid(x, y, size, s.Level)
	a.VX, a.VY = 0, 0
	return a
}

// parked creates a laser that does not move.
func parked(x, y float64) object.Laser {
	return object.Laser{X: x, Y: y}
}

func countEvents(events []Event, typ EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func findEvent(events []Event, typ EventType) (Event, bool) {
	for _, e := range events {
		if e.Type == typ {
			return e, true
		}
	}
	return Event{}, false
}
