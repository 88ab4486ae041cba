// Package state implements the provisioning receipt store.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/toolup/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ReceiptStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.Receipt
}

// NewStore creates a ReceiptStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.Receipt),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read receipt store")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal receipt store")
	}

	return nil
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal receipt store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create directory for receipt store")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write receipt store")
	}

	return nil
}

// Get retrieves the receipt for a tool, or nil if none exists.
func (s *Store) Get(tool string) (*domain.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	receipt, ok := s.cache[tool]
	if !ok {
		return nil, nil
	}
	return &receipt, nil
}

// Put stores or replaces the receipt for a tool and persists the store.
func (s *Store) Put(receipt domain.Receipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[receipt.Tool] = receipt
	return s.save()
}

// All returns every stored receipt, ordered by tool name.
func (s *Store) All() ([]domain.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	receipts := make([]domain.Receipt, 0, len(s.cache))
	for _, r := range s.cache {
		receipts = append(receipts, r)
	}
	slices.SortFunc(receipts, func(a, b domain.Receipt) int {
		return strings.Compare(a.Tool, b.Tool)
	})
	return receipts, nil
}
