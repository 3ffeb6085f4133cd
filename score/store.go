package score

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	// ErrNotFound is returned by Store.Get for an absent key
	ErrNotFound = errors.New("score: key not found")

	// ErrStoreUnavailable wraps backend I/O failures
	ErrStoreUnavailable = errors.New("score: store unavailable")
)

// Store is the external key-value collaborator backing the leaderboard
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// MemoryStore is an in-process Store
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryStore) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// FileStore keeps one <key>.toml file per key under a base directory
type FileStore struct {
	basePath string
}

// NewFileStore creates a store rooted at basePath
func NewFileStore(basePath string) *FileStore {
	return &FileStore{basePath: basePath}
}

// FilePath returns the path backing key
func (f *FileStore) FilePath(key string) string {
	return filepath.Join(f.basePath, key+".toml")
}

func (f *FileStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(f.FilePath(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return data, nil
}

// Put writes through a temp file and rename so readers never see partial data
func (f *FileStore) Put(key string, value []byte) error {
	if err := os.MkdirAll(f.basePath, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	path := f.FilePath(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}
