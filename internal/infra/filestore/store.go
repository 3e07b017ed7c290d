// Package filestore provides a file-based implementation of domain.KVStore.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/focusboard/internal/domain"
)

// Store keeps each key in its own file under a directory.
// Access from concurrent processes is serialized with flock on dir/.lock.
type Store struct {
	dir      string
	lockPath string
}

// Ensure Store implements domain.KVStore.
var _ domain.KVStore = (*Store)(nil)

// New creates a Store rooted at dir. The directory is created on first write.
func New(dir string) *Store {
	return &Store{
		dir:      dir,
		lockPath: filepath.Join(dir, ".lock"),
	}
}

// Get returns the content stored under key, or nil if absent.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	var content []byte
	err := s.withLock(syscall.LOCK_SH, func() error {
		data, err := os.ReadFile(s.path(key))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("read %s: %w", key, err)
		}
		content = data
		return nil
	})
	return content, err
}

// Set replaces the content of key atomically.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	return s.withLock(syscall.LOCK_EX, func() error {
		path := s.path(key)

		// Write to temp file first, then rename for atomicity
		tmpPath := path + ".tmp"
		if err := os.WriteFile(tmpPath, value, 0o600); err != nil {
			return fmt.Errorf("write temp file: %w", err)
		}
		if err := os.Rename(tmpPath, path); err != nil {
			_ = os.Remove(tmpPath) // Clean up
			return fmt.Errorf("rename temp file: %w", err)
		}
		return nil
	})
}

// Delete removes key. A missing key is not an error.
func (s *Store) Delete(_ context.Context, key string) error {
	return s.withLock(syscall.LOCK_EX, func() error {
		if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", key, err)
		}
		return nil
	})
}

// path maps a key to a file name; keys are escaped so separators stay inside dir.
func (s *Store) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}

func (s *Store) withLock(lockType int, fn func() error) error {
	lock, err := s.acquireLock(lockType)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)
	return fn()
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}
