// Package documents manages uploaded proof documents and keeps the
// verification ledger in step with them.
package documents

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/trucred/trucred/internal/common"
	"github.com/trucred/trucred/internal/model"
	"github.com/trucred/trucred/internal/verification"
)

// Store holds uploaded documents under a root directory with one
// subdirectory per slot, and registers each upload in the verification
// ledger as Pending.
type Store struct {
	ledger *verification.Store
	root   string
}

// NewStore creates a document store rooted at dir.
func NewStore(dir string, ledger *verification.Store) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("%w: uploads directory", common.ErrInvalidConfig)
	}
	return &Store{root: dir, ledger: ledger}, nil
}

// Save stores an uploaded document and creates its Pending verification
// record. The stored name gets a random prefix so two applicants uploading
// "statement.pdf" never collide.
func (s *Store) Save(slot model.DocumentSlot, filename string, r io.Reader) (string, error) {
	dir := filepath.Join(s.root, slot.Dir())
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	storedName := uuid.NewString()[:8] + "_" + filepath.Base(filename)
	path := filepath.Join(dir, storedName)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to create document file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write document: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close document: %w", err)
	}

	if err := s.ledger.Create(verification.Key(slot, storedName)); err != nil {
		return "", err
	}

	return storedName, nil
}

// List returns the stored document names for a slot, sorted. Hidden files
// (editor droppings, .DS_Store) are skipped. A slot nobody has uploaded to
// yet is an empty list, not an error.
func (s *Store) List(slot model.DocumentSlot) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, slot.Dir()))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a stored document and then its verification record. If the
// file cannot be removed the record is left untouched, so the ledger never
// claims a deletion that did not happen; the caller gets a non-fatal warning.
func (s *Store) Delete(slot model.DocumentSlot, storedName string) error {
	path := filepath.Join(s.root, slot.Dir(), filepath.Base(storedName))
	if err := os.Remove(path); err != nil {
		return common.NewUserError("could not delete document, verification record kept", err)
	}
	return s.ledger.Delete(verification.Key(slot, storedName))
}

// Records collects the verification records for every document in every
// slot, keyed by slot, in the shape the disclosure gate consumes. A file on
// disk with no ledger entry counts as Pending: review simply has not seen
// it yet.
func (s *Store) Records() (map[model.DocumentSlot][]model.VerificationRecord, error) {
	ledger, err := s.ledger.Load()
	if err != nil {
		return nil, err
	}

	docs := make(map[model.DocumentSlot][]model.VerificationRecord)
	for _, slot := range model.AllSlots() {
		names, err := s.List(slot)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			record, ok := ledger[verification.Key(slot, name)]
			if !ok {
				record = model.VerificationRecord{Status: model.StatusPending}
			}
			docs[slot] = append(docs[slot], record)
		}
	}
	return docs, nil
}
