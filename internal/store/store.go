// Package store provides the transactional persistence handle every
// mutating operation in the core goes through. It replaces the original
// source's "shared_conn smuggled through optional parameters" pattern
// (season_transition_service.py) with an explicit Txn value threaded
// through call signatures, so a caller can never forget to participate
// in the caller's transaction.
package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Store wraps a database handle and opens Txns against it.
type Store struct {
	db *sql.DB
}

// New returns a Store backed by db.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Txn is an explicit transaction handle passed to every mutating store
// call. Unlike a bare *sql.Tx, it is scoped to one dynasty for the
// lifetime of the transaction so that repository methods can assert
// dynasty isolation without extra plumbing (spec.md invariant 1).
type Txn struct {
	tx        *sql.Tx
	dynastyID string
}

// Begin opens a new transaction scoped to dynastyID.
func (s *Store) Begin(ctx context.Context, dynastyID string) (*Txn, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &Txn{tx: tx, dynastyID: dynastyID}, nil
}

// DynastyID returns the dynasty this Txn is scoped to.
func (t *Txn) DynastyID() string {
	return t.dynastyID
}

// Tx exposes the underlying *sql.Tx for repositories outside this package
// that need to participate in the same transaction.
func (t *Txn) Tx() *sql.Tx {
	return t.tx
}

// Commit commits the underlying transaction.
func (t *Txn) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back the underlying transaction. Calling it after a
// successful Commit is a no-op error from database/sql and is safe to
// ignore via defer.
func (t *Txn) Rollback() error {
	return t.tx.Rollback()
}

// WithTxn runs fn inside a new transaction, committing on success and
// rolling back if fn returns an error or panics.
func (s *Store) WithTxn(ctx context.Context, dynastyID string, fn func(*Txn) error) (err error) {
	txn, err := s.Begin(ctx, dynastyID)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			txn.Rollback()
			panic(p)
		}
		if err != nil {
			txn.Rollback()
			return
		}
		err = txn.Commit()
	}()
	return fn(txn)
}
