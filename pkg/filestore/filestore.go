package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 50 * time.Millisecond

// Store keeps key/value pairs in a single JSON object file. Every operation
// takes an exclusive lock on a sibling ".lock" file, so two processes
// sharing a path don't interleave writes.
type Store struct {
	path string
	lock *flock.Flock
}

// Open prepares a store at path, creating parent directories as needed.
// The data file itself is created on the first Put.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}
	return &Store{
		path: path,
		lock: flock.New(path + ".lock"),
	}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	var ok bool
	err := s.withLock(ctx, func() error {
		data, err := s.read()
		if err != nil {
			return err
		}
		value, ok = data[key]
		return nil
	})
	return value, ok, err
}

func (s *Store) Put(ctx context.Context, key, value string) error {
	return s.withLock(ctx, func() error {
		data, err := s.read()
		if err != nil {
			return err
		}
		data[key] = value
		return s.write(data)
	})
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.withLock(ctx, func() error {
		data, err := s.read()
		if err != nil {
			return err
		}
		if _, ok := data[key]; !ok {
			return nil
		}
		delete(data, key)
		return s.write(data)
	})
}

// Close releases the lock file handle
func (s *Store) Close() error {
	return s.lock.Close()
}

func (s *Store) withLock(ctx context.Context, fn func() error) error {
	locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("failed to lock store: %w", err)
	}
	if !locked {
		return fmt.Errorf("failed to lock store: %s is held by another process", s.lock.Path())
	}
	defer s.lock.Unlock()

	return fn()
}

func (s *Store) read() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	data := map[string]string{}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse store file: %w", err)
	}
	return data, nil
}

// write replaces the data file via a temp file and rename so a crash never
// leaves a half-written file behind
func (s *Store) write(data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
