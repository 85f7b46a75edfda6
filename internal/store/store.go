// Package store persists the best score between runs.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tomz197/asteroids-classic/internal/game"
	"github.com/vmihailenco/msgpack/v5"
)

// Open returns a FileStore for path, or a MemoryStore when path is empty.
func Open(path string) game.HighScoreStore {
	if path == "" {
		return &MemoryStore{}
	}
	return NewFileStore(path)
}

// record is the on-disk high score format.
type record struct {
	HighScore int       `msgpack:"highScore"`
	UpdatedAt time.Time `msgpack:"updatedAt"`
}

// FileStore keeps the high score in a msgpack file. It is safe for
// concurrent use by several sessions in one process.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by the file at path. The file is
// created on the first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// LoadHighScore reads the stored score. A missing file is a score of 0.
func (s *FileStore) LoadHighScore() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.read()
	if err != nil {
		return 0, err
	}
	return rec.HighScore, nil
}

// SaveHighScore stores score unless the file already holds a higher one,
// which happens when several sessions share the file.
func (s *FileStore) SaveHighScore(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, err := s.read(); err == nil && rec.HighScore >= score {
		return nil
	}

	data, err := msgpack.Marshal(record{HighScore: score, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

func (s *FileStore) read() (record, error) {
	var rec record
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return rec, nil
	}
	if err != nil {
		return rec, fmt.Errorf("read high score: %w", err)
	}
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("decode high score %s: %w", s.path, err)
	}
	return rec, nil
}

// MemoryStore keeps the high score in memory.
type MemoryStore struct {
	mu    sync.Mutex
	score int
}

func (m *MemoryStore) LoadHighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

func (m *MemoryStore) SaveHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = max(m.score, score)
	return nil
}
