// Package testutil provides shared fixtures for store-backed tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/trucred/trucred/internal/documents"
	"github.com/trucred/trucred/internal/verification"
)

// Stores bundles a temp-dir verification ledger with a document store
// wired to it.
type Stores struct {
	Ledger    *verification.Store
	Documents *documents.Store
	Dir       string
}

// SetupStores creates a verification ledger and document store under a
// per-test temporary directory. Cleanup is handled by t.TempDir.
func SetupStores(t *testing.T) *Stores {
	t.Helper()

	dir := t.TempDir()
	ledger, err := verification.NewStore(filepath.Join(dir, "verification_status.json"))
	if err != nil {
		t.Fatalf("failed to create verification store: %v", err)
	}
	docs, err := documents.NewStore(filepath.Join(dir, "uploads"), ledger)
	if err != nil {
		t.Fatalf("failed to create document store: %v", err)
	}

	return &Stores{
		Ledger:    ledger,
		Documents: docs,
		Dir:       dir,
	}
}
