// Package storage declares the persistence contract of the presell service.
// The postgres subpackage implements it, and mock holds the generated gomock
// doubles used by service tests.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is everything a handle can do regardless of whether it is
// bound to a transaction.
type AllStorage interface {
	PresellStorage
	TrustedDomainStorage
	JobStorage
}

// TxStorage is a handle bound to one transaction. Creating a presell and
// queueing its capture job go through the same TxStorage so that neither is
// visible without the other. The handle must not be used after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the long-lived handle shared by the API and the workers.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error

	// Begin starts a transaction. Calling it on a transactional handle fails
	// with ErrAlreadyInTx.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
