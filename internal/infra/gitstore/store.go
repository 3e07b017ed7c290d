// Package gitstore provides a Git plumbing-based implementation of domain.KVStore.
package gitstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/runoshun/focusboard/internal/domain"
)

// Store keeps values as blobs referenced from refs in a repository.
// Nothing touches the working tree or the branch history.
//
// Data structure:
//
//	refs/<namespace>/kv/
//	  <escaped key> → blob (value)
type Store struct {
	repo      *git.Repository
	namespace string
	mu        sync.RWMutex
}

// Ensure Store implements domain.KVStore.
var _ domain.KVStore = (*Store)(nil)

// New opens the repository at repoPath (searching parent directories).
func New(repoPath, namespace string) (*Store, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	return NewWithRepo(repo, namespace), nil
}

// NewWithRepo creates a new Store with an existing repository instance.
func NewWithRepo(repo *git.Repository, namespace string) *Store {
	if namespace == "" {
		namespace = domain.AppName
	}
	return &Store{repo: repo, namespace: namespace}
}

// keyRef returns the ref name for a key. Characters git forbids in ref
// names are percent-escaped.
func (s *Store) keyRef(key string) plumbing.ReferenceName {
	escaped := url.PathEscape(key)
	escaped = strings.NewReplacer(":", "%3A", "..", "%2E%2E", "~", "%7E", "^", "%5E").Replace(escaped)
	return plumbing.ReferenceName("refs/" + s.namespace + "/kv/" + escaped)
}

// Get returns the blob referenced by key, or nil if the ref does not exist.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, err := s.repo.Reference(s.keyRef(key), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ref for %s: %w", key, err)
	}
	return s.readBlob(ref.Hash())
}

// Set writes value as a blob and points the key's ref at it.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash, err := s.writeBlob(value)
	if err != nil {
		return err
	}
	ref := plumbing.NewHashReference(s.keyRef(key), hash)
	if err := s.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("set ref for %s: %w", key, err)
	}
	return nil
}

// Delete removes the key's ref. The blob is left for git gc.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Storer.RemoveReference(s.keyRef(key)); err != nil {
		if !errors.Is(err, plumbing.ErrReferenceNotFound) {
			return fmt.Errorf("remove ref for %s: %w", key, err)
		}
	}
	return nil
}

// writeBlob writes data to a blob and returns the hash.
func (s *Store) writeBlob(data []byte) (plumbing.Hash, error) {
	obj := s.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(int64(len(data)))

	writer, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("create blob writer: %w", err)
	}

	if _, writeErr := writer.Write(data); writeErr != nil {
		_ = writer.Close()
		return plumbing.ZeroHash, fmt.Errorf("write blob: %w", writeErr)
	}
	_ = writer.Close()

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store blob: %w", err)
	}

	return hash, nil
}

func (s *Store) readBlob(hash plumbing.Hash) ([]byte, error) {
	blob, err := s.repo.BlobObject(hash)
	if err != nil {
		return nil, fmt.Errorf("get blob: %w", err)
	}

	reader, err := blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read blob data: %w", err)
	}
	return data, nil
}
