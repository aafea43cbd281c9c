package usecase

import (
	"errors"

	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")

	// Store failures keep their docstore identity so callers can match either.
	ErrStoreUnavailable     = docstore.ErrUnavailable
	ErrStoreOperationFailed = docstore.ErrOperationFailed
)

// storeError maps a missing document to ErrNotFound and passes other store
// failures through untouched.
func storeError(err error) error {
	if errors.Is(err, docstore.ErrNotFound) {
		return errors.Join(ErrNotFound, err)
	}
	return err
}
