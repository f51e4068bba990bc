package main

import (
	"github.com/trucred/trucred/internal/config"
	"github.com/trucred/trucred/internal/documents"
	"github.com/trucred/trucred/internal/verification"
)

// initStores wires the verification ledger and document store from config.
func initStores() (*verification.Store, *documents.Store, error) {
	config.SetDefaults()

	ledger, err := verification.NewStore(config.VerificationFile())
	if err != nil {
		return nil, nil, err
	}

	docs, err := documents.NewStore(config.UploadsDir(), ledger)
	if err != nil {
		return nil, nil, err
	}

	return ledger, docs, nil
}
