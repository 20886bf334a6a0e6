package portal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/gymms/portal/internal/models"
)

// SessionStore persists the single client-local session record. Load returns
// (nil, nil) when no session is stored.
type SessionStore interface {
	Load() (*models.Session, error)
	Save(s *models.Session) error
	Clear() error
}

// FileSessionStore keeps the session record in one JSON file per client,
// the localStorage analog. Reads and writes are synchronous.
type FileSessionStore struct {
	path string
}

// NewFileSessionStore returns a store backed by <dir>/<clientID>.json.
func NewFileSessionStore(dir, clientID string) *FileSessionStore {
	return &FileSessionStore{path: filepath.Join(dir, clientID+".json")}
}

func (f *FileSessionStore) Load() (*models.Session, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

func (f *FileSessionStore) Save(s *models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (f *FileSessionStore) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemorySessionStore holds the session record in memory. Used when no
// session directory is configured, and by tests.
type MemorySessionStore struct {
	mu      sync.Mutex
	session *models.Session
}

func (m *MemorySessionStore) Load() (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil, nil
	}
	s := *m.session
	return &s, nil
}

func (m *MemorySessionStore) Save(s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *s
	m.session = &copied
	return nil
}

func (m *MemorySessionStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}
