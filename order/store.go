package order

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"tableside/db"
)

// Event names published after a committed change.
const (
	EventCreated = "order.created"
	EventDeleted = "order.deleted"
)

// Publisher receives committed order changes.
type Publisher interface {
	Publish(ctx context.Context, event, key string, payload any) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, string, any) error { return nil }

// Store owns the persisted orders. Every write runs in its own unit of work.
type Store struct {
	db  *gorm.DB
	pub Publisher
	log zerolog.Logger
}

// NewStore returns a Store on gdb. A nil pub disables change events.
func NewStore(gdb *gorm.DB, pub Publisher, log zerolog.Logger) *Store {
	if pub == nil {
		pub = nopPublisher{}
	}
	return &Store{db: gdb, pub: pub, log: log.With().Str("component", "order-store").Logger()}
}

// Migrate creates or updates the orders table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Order{}); err != nil {
		return fmt.Errorf("migrate orders: %w", err)
	}
	return nil
}

// Create persists a new order and returns it with its assigned id. Input is
// stored as given; callers validate beforehand.
func (s *Store) Create(ctx context.Context, customerName string, tableNumber int, orders string) (Order, error) {
	o := &Order{CustomerName: customerName, TableNumber: tableNumber, Orders: orders}

	uow := db.New(s.db)
	uow.Add(o)
	uow.AfterCommit(func(ctx context.Context) { s.publish(ctx, EventCreated, *o) })
	uow.AfterRollback(func(_ context.Context, err error) {
		s.log.Debug().Err(err).Int("table_number", tableNumber).Msg("create rolled back")
	})

	if err := uow.Commit(ctx); err != nil {
		return Order{}, &PersistenceError{Op: "create", Err: err}
	}
	s.log.Info().Uint("id", o.ID).Int("table_number", o.TableNumber).Msg("order created")
	return *o, nil
}

// List returns every order by ascending id.
func (s *Store) List(ctx context.Context) ([]Order, error) {
	orders := make([]Order, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&orders).Error; err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	return orders, nil
}

// Delete removes the order with the given id. It returns ErrNotFound when no
// such order exists. Lookup and delete share one transaction.
func (s *Store) Delete(ctx context.Context, id uint) error {
	var found Order

	uow := db.New(s.db)
	uow.Do(func(tx *gorm.DB) error {
		if err := tx.First(&found, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return nil
	})
	uow.RegisterDelete(&found)
	uow.AfterCommit(func(ctx context.Context) { s.publish(ctx, EventDeleted, found) })
	uow.AfterRollback(func(_ context.Context, err error) {
		if !errors.Is(err, ErrNotFound) {
			s.log.Debug().Err(err).Uint("id", id).Msg("delete rolled back")
		}
	})

	if err := uow.Commit(ctx); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("order %d: %w", id, ErrNotFound)
		}
		return &PersistenceError{Op: "delete", Err: err}
	}
	s.log.Info().Uint("id", id).Msg("order deleted")
	return nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// publish failures are logged only; the change is already committed.
func (s *Store) publish(ctx context.Context, event string, o Order) {
	key := strconv.FormatUint(uint64(o.ID), 10)
	if err := s.pub.Publish(ctx, event, key, o.Record()); err != nil {
		s.log.Error().Err(err).Str("event", event).Uint("id", o.ID).Msg("publish order event")
	}
}
