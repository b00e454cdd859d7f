// Package storage is the device-local key/value store used for the cart, the ledger and as a
// cache of the catalog when the remote backend cannot be reached.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
)

const (
	KeyCart             = "cart"
	KeyCustomOrders     = "customOrders"
	KeyCharges          = "charges"
	KeyInvestments      = "investments"
	KeyRevenues         = "revenues"
	KeyProducts         = "products"
	KeyCategories       = "categories"
	KeyMessages         = "messages"
	KeyAdminCredentials = "adminCredentials"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// CartKey is the key of one device's cart.
func CartKey(deviceID string) string {
	return KeyCart + "-" + deviceID
}

type LocalStore interface {
	// Load decodes the value stored under key into dest. It returns false when the key is missing.
	Load(key string, dest interface{}) (bool, error)
	Save(key string, value interface{}) error
}

// FileStore keeps one JSON document per key inside a directory.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create local store dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("invalid local store key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func (s *FileStore) Load(key string, dest interface{}) (bool, error) {
	p, err := s.path(key)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read local key %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode local key %s: %w", key, err)
	}
	return true, nil
}

func (s *FileStore) Save(key string, value interface{}) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode local key %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write local key %s: %w", key, err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write local key %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write local key %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write local key %s: %w", key, err)
	}
	return nil
}

// MemoryStore is a LocalStore kept entirely in memory; values are stored encoded so that
// reads behave like the file store.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(key string, dest interface{}) (bool, error) {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode local key %s: %w", key, err)
	}
	return true, nil
}

func (s *MemoryStore) Save(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode local key %s: %w", key, err)
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}
