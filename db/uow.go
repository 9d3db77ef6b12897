package db

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

// Operation is deferred work executed inside the transaction.
// Returning an error rolls the whole unit back.
type Operation func(tx *gorm.DB) error

// UnitOfWork collects inserts, deletes and custom operations and applies them
// in a single transaction on Commit. A UnitOfWork is meant to live for one
// request; the root *gorm.DB it wraps is shared and safe for concurrent use.
type UnitOfWork struct {
	root *gorm.DB

	ops      []Operation
	toCreate []any
	toDelete []any

	// afterCommit runs after a successful commit, outside the transaction.
	afterCommit []func(ctx context.Context)
	// afterRollback runs after a rollback, outside the transaction.
	afterRollback []func(ctx context.Context, err error)

	mu sync.Mutex
}

// New creates a UnitOfWork on top of root. No transaction is started until Commit.
func New(root *gorm.DB) *UnitOfWork {
	return &UnitOfWork{root: root}
}

// Do queues a custom operation.
func (u *UnitOfWork) Do(op Operation) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.ops = append(u.ops, op)
}

// Add tracks an entity to be inserted on commit. Generated primary keys are
// written back into the entity, so pass a pointer.
func (u *UnitOfWork) Add(entity any) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.toCreate = append(u.toCreate, entity)
}

// RegisterDelete tracks an entity to be deleted on commit.
func (u *UnitOfWork) RegisterDelete(entity any) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.toDelete = append(u.toDelete, entity)
}

// AfterCommit registers a callback for a successful commit.
func (u *UnitOfWork) AfterCommit(cb func(ctx context.Context)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.afterCommit = append(u.afterCommit, cb)
}

// AfterRollback registers a callback for a rolled back commit. It receives the
// error that caused the rollback.
func (u *UnitOfWork) AfterRollback(cb func(ctx context.Context, err error)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.afterRollback = append(u.afterRollback, cb)
}

// Commit begins a transaction and applies custom operations, then inserts, then
// deletes. Operations run first so they can load the entities registered for
// deletion. On error the transaction is rolled back and the pending work stays
// queued; call Clear to discard it.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	u.mu.Lock()
	ops := append([]Operation(nil), u.ops...)
	creates := append([]any(nil), u.toCreate...)
	deletes := append([]any(nil), u.toDelete...)
	afterCommit := append([]func(context.Context){}, u.afterCommit...)
	afterRollback := append([]func(context.Context, error){}, u.afterRollback...)
	u.mu.Unlock()

	txErr := u.root.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			if err := op(tx); err != nil {
				return err
			}
		}
		for _, e := range creates {
			if err := tx.Create(e).Error; err != nil {
				return err
			}
		}
		for _, e := range deletes {
			if err := tx.Delete(e).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if txErr != nil {
		for _, cb := range afterRollback {
			// a panicking callback must not hide txErr
			func() { defer func() { _ = recover() }(); cb(ctx, txErr) }()
		}
		return txErr
	}

	u.Clear()
	for _, cb := range afterCommit {
		func() { defer func() { _ = recover() }(); cb(ctx) }()
	}
	return nil
}

// Clear discards all pending work and callbacks.
func (u *UnitOfWork) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.ops = nil
	u.toCreate = nil
	u.toDelete = nil
	u.afterCommit = nil
	u.afterRollback = nil
}
