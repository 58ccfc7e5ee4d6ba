package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Zorochan404/adv-backend-sub001/internal/domain/topups"
	"github.com/lib/pq"
)

// Store reads the vehicle and extension catalog. It is read-mostly and shared
// by every booking, so it runs on its own database/sql pool.
type Store interface {
	GetCar(ctx context.Context, id int64) (*Car, error)
	GetParking(ctx context.Context, id int64) (*Parking, error)
	GetTopup(ctx context.Context, id int64) (*topups.Topup, error)
	ListActiveTopups(ctx context.Context) ([]topups.Topup, error)
}

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetCar(ctx context.Context, id int64) (*Car, error) {
	const query = `
		SELECT c.id, c.name, c.vendor_id, c.parking_id, c.price, c.discounted_price,
		       COALESCE(cc.category, ''), cc.late_fee_rate, c.images, c.is_available
		FROM cars c
		LEFT JOIN car_catalog cc ON cc.id = c.catalog_id
		WHERE c.id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	var (
		car        Car
		discounted sql.NullFloat64
		rate       sql.NullFloat64
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&car.ID,
		&car.Name,
		&car.VendorID,
		&car.ParkingID,
		&car.Price,
		&discounted,
		&car.Category,
		&rate,
		pq.Array(&car.Images),
		&car.IsAvailable,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}

	if discounted.Valid {
		car.DiscountedPrice = &discounted.Float64
	}
	if rate.Valid {
		car.LateFeeRate = &rate.Float64
	}
	return &car, nil
}

func (r *Repository) GetParking(ctx context.Context, id int64) (*Parking, error) {
	const query = `SELECT id, name, COALESCE(address, '') FROM parkings WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	var p Parking
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrParkingNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repository) GetTopup(ctx context.Context, id int64) (*topups.Topup, error) {
	const query = `
		SELECT id, name, COALESCE(category, ''), duration, price, is_active, created_by, created_at
		FROM topups
		WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	var t topups.Topup
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Category, &t.DurationHours, &t.Price, &t.IsActive, &t.CreatedBy, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, topups.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *Repository) ListActiveTopups(ctx context.Context) ([]topups.Topup, error) {
	const query = `
		SELECT id, name, COALESCE(category, ''), duration, price, is_active, created_by, created_at
		FROM topups
		WHERE is_active = true
		ORDER BY duration ASC, price ASC`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []topups.Topup{}
	for rows.Next() {
		var t topups.Topup
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.DurationHours, &t.Price, &t.IsActive, &t.CreatedBy, &t.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
