package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/danieljhkim/projswitch/internal/catalog"
	"github.com/danieljhkim/projswitch/internal/clock"
	"github.com/danieljhkim/projswitch/internal/fsops"
)

// Store persists the fingerprint and the cached entry list between runs.
type Store interface {
	// LoadFingerprint loads the stored fingerprint.
	// Returns os.ErrNotExist if none has been stored.
	LoadFingerprint() (*Fingerprint, error)

	// SaveFingerprint stores the fingerprint atomically.
	SaveFingerprint(fp *Fingerprint) error

	// CachedEntries returns the last cached entry list, synchronously.
	// Returns os.ErrNotExist if nothing is cached.
	CachedEntries() ([]catalog.Entry, error)

	// SaveEntries caches the entry list atomically.
	SaveEntries(entries []catalog.Entry) error

	// ClearEntries drops the cached entry list.
	ClearEntries() error

	// ClearFingerprint drops the stored fingerprint, forcing a full
	// invalidation on the next assessment.
	ClearFingerprint() error
}

// entryCache is the on-disk envelope of the cached entry list.
type entryCache struct {
	// UpdatedAt is when the cache was written.
	UpdatedAt time.Time `json:"updatedAt"`

	// Entries is the cached launcher entry list.
	Entries []catalog.Entry `json:"entries"`
}

// FileStore implements Store using JSON files in the cache directory.
type FileStore struct {
	fs       fsops.FS
	cacheDir string
	clock    clock.Clock
}

// NewFileStore creates a FileStore writing under cacheDir.
func NewFileStore(fs fsops.FS, cacheDir string, clk clock.Clock) *FileStore {
	return &FileStore{fs: fs, cacheDir: cacheDir, clock: clk}
}

func (s *FileStore) fingerprintPath() string {
	return filepath.Join(s.cacheDir, "fingerprint.json")
}

func (s *FileStore) entriesPath() string {
	return filepath.Join(s.cacheDir, "entries.json")
}

// LoadFingerprint loads the stored fingerprint.
func (s *FileStore) LoadFingerprint() (*Fingerprint, error) {
	data, err := s.fs.ReadFile(s.fingerprintPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to read fingerprint: %w", err)
	}

	var fp Fingerprint
	if err := json.Unmarshal(data, &fp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fingerprint: %w", err)
	}

	return &fp, nil
}

// SaveFingerprint stores the fingerprint atomically.
func (s *FileStore) SaveFingerprint(fp *Fingerprint) error {
	data, err := json.MarshalIndent(fp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal fingerprint: %w", err)
	}

	if err := s.fs.AtomicWrite(s.fingerprintPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write fingerprint: %w", err)
	}

	return nil
}

// CachedEntries returns the last cached entry list.
func (s *FileStore) CachedEntries() ([]catalog.Entry, error) {
	data, err := s.fs.ReadFile(s.entriesPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to read entry cache: %w", err)
	}

	var cache entryCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entry cache: %w", err)
	}

	return cache.Entries, nil
}

// SaveEntries caches the entry list atomically, stamped with the current time.
func (s *FileStore) SaveEntries(entries []catalog.Entry) error {
	cache := entryCache{
		UpdatedAt: s.clock.Now(),
		Entries:   entries,
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entry cache: %w", err)
	}

	if err := s.fs.AtomicWrite(s.entriesPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write entry cache: %w", err)
	}

	return nil
}

// ClearEntries drops the cached entry list.
func (s *FileStore) ClearEntries() error {
	if err := s.fs.Remove(s.entriesPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear entry cache: %w", err)
	}
	return nil
}

// ClearFingerprint drops the stored fingerprint.
func (s *FileStore) ClearFingerprint() error {
	if err := s.fs.Remove(s.fingerprintPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear fingerprint: %w", err)
	}
	return nil
}
