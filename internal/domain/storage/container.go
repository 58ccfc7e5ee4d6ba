package storage

import (
	"context"
	"fmt"

	"github.com/Zorochan404/adv-backend-sub001/internal/domain/bookings"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/topups"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/users"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Container holds the pool-backed repositories for reads outside a
// transaction.
type Container struct {
	pool     *pgxpool.Pool
	Users    users.Store
	Bookings bookings.Store
	Ledger   topups.Ledger
}

func NewContainer(db *pgxpool.Pool) *Container {
	return &Container{
		pool:     db,
		Users:    users.NewRepository(db),
		Bookings: bookings.NewRepository(db),
		Ledger:   topups.NewRepository(db),
	}
}

// WithBookingTx runs fn with repositories bound to a single transaction and
// commits only when fn succeeds.
func (c *Container) WithBookingTx(ctx context.Context, fn func(tx bookings.TxStores) error) error {
	if c.pool == nil {
		return fmt.Errorf("storage container has no pool")
	}

	tx, err := c.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx) // no-op after commit
	}()

	if err := fn(bookings.TxStores{
		Bookings: bookings.NewRepository(tx),
		Ledger:   topups.NewRepository(tx),
	}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
