// Package verification persists per-document review status. It is the
// single source of truth for verification state; the disclosure gate only
// reads it and reviewer actions are its only writers.
package verification

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/trucred/trucred/internal/common"
	"github.com/trucred/trucred/internal/model"
)

// Store is a flat key-value record store backed by a single JSON file,
// keyed "{category-label}_{stored-filename}". Every mutation is a scoped
// load-mutate-persist of the whole file; the design assumes a single
// concurrent writer, so two simultaneous reviewer actions may overwrite
// each other.
type Store struct {
	now  func() time.Time
	path string
}

// NewStore creates a store over the given JSON file path. The file does not
// need to exist yet.
func NewStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: store path", common.ErrInvalidConfig)
	}
	return &Store{path: path, now: time.Now}, nil
}

// Key builds the record key for a document in a slot.
func Key(slot model.DocumentSlot, storedName string) string {
	return slot.Label() + "_" + storedName
}

// Load reads every record. A missing file is an empty ledger; a file that
// cannot be decoded is fatal, because treating corruption as empty would
// silently erase real verification history. Legacy records stored as a bare
// status string are upgraded in memory to the structured form with
// uploaded_at stamped at load time.
func (s *Store) Load() (map[string]model.VerificationRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]model.VerificationRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read verification store: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrStoreCorrupted, s.path, err)
	}

	records := make(map[string]model.VerificationRecord, len(raw))
	for key, value := range raw {
		record, err := s.decodeRecord(value)
		if err != nil {
			return nil, fmt.Errorf("%w: record %q: %v", common.ErrStoreCorrupted, key, err)
		}
		records[key] = record
	}

	return records, nil
}

func (s *Store) decodeRecord(value json.RawMessage) (model.VerificationRecord, error) {
	// Legacy form: the value is just the status string.
	var legacy string
	if err := json.Unmarshal(value, &legacy); err == nil {
		uploaded := s.now()
		return model.VerificationRecord{
			Status:     model.NormalizeStatus(legacy),
			UploadedAt: &uploaded,
		}, nil
	}

	var record model.VerificationRecord
	if err := json.Unmarshal(value, &record); err != nil {
		return model.VerificationRecord{}, err
	}
	record.Status = model.NormalizeStatus(string(record.Status))
	return record, nil
}

// Get returns the record for a key, or common.ErrNotFound.
func (s *Store) Get(key string) (model.VerificationRecord, error) {
	records, err := s.Load()
	if err != nil {
		return model.VerificationRecord{}, err
	}
	record, ok := records[key]
	if !ok {
		return model.VerificationRecord{}, fmt.Errorf("%w: %s", common.ErrNotFound, key)
	}
	return record, nil
}

// Keys returns every record key in sorted order.
func (s *Store) Keys() ([]string, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(records))
	for key := range records {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// Put creates or replaces the record for a key.
func (s *Store) Put(key string, record model.VerificationRecord) error {
	return s.mutate(func(records map[string]model.VerificationRecord) error {
		records[key] = record
		return nil
	})
}

// Create registers a freshly uploaded document as Pending.
func (s *Store) Create(key string) error {
	uploaded := s.now()
	return s.Put(key, model.VerificationRecord{
		Status:     model.StatusPending,
		UploadedAt: &uploaded,
	})
}

// SetStatus applies a reviewer verdict to an existing record. Moving into
// Verified stamps VerifiedAt; moving to any other status clears it.
func (s *Store) SetStatus(key string, status model.VerificationStatus) error {
	return s.mutate(func(records map[string]model.VerificationRecord) error {
		record, ok := records[key]
		if !ok {
			return fmt.Errorf("%w: %s", common.ErrNotFound, key)
		}
		record.Status = status
		if status == model.StatusVerified {
			verified := s.now()
			record.VerifiedAt = &verified
		} else {
			record.VerifiedAt = nil
		}
		records[key] = record
		return nil
	})
}

// Delete removes the record for a key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	return s.mutate(func(records map[string]model.VerificationRecord) error {
		delete(records, key)
		return nil
	})
}

func (s *Store) mutate(fn func(map[string]model.VerificationRecord) error) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(records); err != nil {
		return err
	}
	return s.persist(records)
}

func (s *Store) persist(records map[string]model.VerificationRecord) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode verification store: %w", err)
	}

	// Write-then-rename so a crash mid-write never leaves a corrupt store.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write verification store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace verification store: %w", err)
	}
	return nil
}
