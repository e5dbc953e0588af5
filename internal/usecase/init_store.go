package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// InitStoreInput contains the input parameters for InitStore.
type InitStoreInput struct {
	DataDir string // Path to the data directory
}

// InitStoreOutput contains the output from InitStore.
type InitStoreOutput struct {
	DataDir            string // Path to the data directory
	AlreadyInitialized bool   // True if the store already existed
}

// InitStore creates the data directory and an empty goal store.
type InitStore struct {
	snapshots domain.SnapshotStore
}

// NewInitStore creates a new InitStore use case.
func NewInitStore(snapshots domain.SnapshotStore) *InitStore {
	return &InitStore{snapshots: snapshots}
}

// Execute initializes the data directory. Running it twice is harmless.
func (uc *InitStore) Execute(_ context.Context, in InitStoreInput) (*InitStoreOutput, error) {
	alreadyInitialized := uc.snapshots.IsInitialized()

	if in.DataDir != "" {
		if err := os.MkdirAll(in.DataDir, 0o750); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	if err := uc.snapshots.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize goal store: %w", err)
	}

	return &InitStoreOutput{
		DataDir:            in.DataDir,
		AlreadyInitialized: alreadyInitialized,
	}, nil
}
